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

package ast

// CPMSourceKind classifies where a CPMAddPackage's source comes from.
type CPMSourceKind int

const (
	CPMSourceUnknown CPMSourceKind = iota
	CPMSourceGitHub
	CPMSourceGitURL
	CPMSourceURL
	CPMSourceLocal
)

func (k CPMSourceKind) String() string {
	switch k {
	case CPMSourceGitHub:
		return "GitHub"
	case CPMSourceGitURL:
		return "GitURL"
	case CPMSourceURL:
		return "URL"
	case CPMSourceLocal:
		return "Local"
	default:
		return "Unknown"
	}
}

// CPMVersion is a recognized CPM VERSION spec, classified as exact
// (`@X.Y`) or minimum (`>=X.Y`).
type CPMVersion struct {
	Version string
	Exact   bool
}

// CPMAddPackage is a recognized `CPMAddPackage(...)` call, either the
// shorthand `"gh:owner/repo@version"` form or the keyword-driven form.
type CPMAddPackage struct {
	base
	Name                string
	SourceKind          CPMSourceKind
	Source              string
	Version             *CPMVersion
	Options             map[string]string
	FindPackageFallback bool
}

func (*CPMAddPackage) stmtTag() {}

// CPMFindPackage is a recognized `CPMFindPackage(...)` call.
type CPMFindPackage struct {
	base
	Name       string
	Version    *CPMVersion
	Components []string
	GitHub     string
	GitTag     string
}

func (*CPMFindPackage) stmtTag() {}

// CPMUsePackageLock is a recognized `CPMUsePackageLock(path)` call.
type CPMUsePackageLock struct {
	base
	Path string
}

func (*CPMUsePackageLock) stmtTag() {}

// CPMDeclarePackage is a recognized `CPMDeclarePackage(...)` call.
type CPMDeclarePackage struct {
	base
	Name    string
	Version string
	GitHub  string
	Git     string
}

func (*CPMDeclarePackage) stmtTag() {}
