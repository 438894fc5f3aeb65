// Copyright 2016 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package eval

import "github.com/finchbuild/finch/ast"

// TargetKind classifies what add_library/add_executable/CPMAddPackage
// produced, before package target maps it onto a Buck2 rule kind.
type TargetKind int

const (
	KindUnknown TargetKind = iota
	KindStaticLib
	KindSharedLib
	KindInterfaceLib
	KindExecutable
	KindCustom
	// KindExternalPackage is a dependency pulled in via CPMAddPackage, not
	// declared with add_library/add_executable. Its SourceKind/Source/
	// Version fields carry what package target needs to decide between a
	// PrebuiltCxxLibrary (git/github checkout) and an HttpArchive (URL
	// tarball) rule.
	KindExternalPackage
)

func (k TargetKind) String() string {
	switch k {
	case KindStaticLib:
		return "StaticLib"
	case KindSharedLib:
		return "SharedLib"
	case KindInterfaceLib:
		return "InterfaceLib"
	case KindExecutable:
		return "Executable"
	case KindCustom:
		return "Custom"
	case KindExternalPackage:
		return "ExternalPackage"
	default:
		return "Unknown"
	}
}

// Target is one discovered build target: the evaluator's output unit
// before package target turns it into a Buck2 rule.
type Target struct {
	Name string
	Kind TargetKind
	// SourceDir is the directory of the CMakeLists.txt/.cmake file that
	// declared this target, as the file's path was given to the parser
	// (under the discovery root, root prefix included), filled in by
	// EvaluateFile once the whole file has been walked. package target
	// and package emit use it to decide BUCK file layout (§4.6's "one
	// BUCK file per source directory" rule).
	SourceDir   string
	Sources     []string
	Headers     []string
	IncludeDirs []string
	CompileDefs []string
	CompileOpts []string
	LinkLibs    []string

	// CPM-sourced targets only (Kind == KindExternalPackage):
	CPMSourceKind ast.CPMSourceKind
	CPMSource     string
	CPMVersion    *ast.CPMVersion
	// CPMProps carries CPMAddPackage's OPTIONS (k->v) and a couple of
	// CPMFindPackage-only fields (git_tag, components) that don't warrant
	// their own Target field since only CPM-sourced targets ever set them.
	CPMProps map[string]string

	// Confidence is, for add_library/add_executable, the lowest confidence
	// among the evaluated source arguments; the name and the kind keyword
	// do not lower it. A target is recorded whatever its confidence —
	// §4.4 prefers over-generation to silent loss — and carries that
	// confidence forward so the emitter/pipeline can warn about it.
	Confidence Confidence
}

// Properties returns t's CPM option/property map, allocating it on first
// use so CPM handlers can write into it unconditionally.
func (t *Target) Properties() map[string]string {
	if t.CPMProps == nil {
		t.CPMProps = map[string]string{}
	}
	return t.CPMProps
}

func libraryKind(keyword string) TargetKind {
	switch keyword {
	case "SHARED":
		return KindSharedLib
	case "INTERFACE":
		return KindInterfaceLib
	case "MODULE", "OBJECT":
		return KindCustom
	default:
		return KindStaticLib
	}
}
