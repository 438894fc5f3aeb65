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

// ProjectAnalysis is one file's (or, after Merge, a whole tree's) worth of
// evaluated state: the project() name/version, every discovered Target,
// the final value of every top-level variable, and any warnings collected
// along the way (a downgraded-confidence set(), an unresolved foreach
// bound, an unrecognized command).
type ProjectAnalysis struct {
	ProjectName    string
	ProjectVersion string
	Targets        []*Target
	Variables      map[string]string
	CacheVars      map[string]string
	Warnings       []string
}

func newProjectAnalysis() *ProjectAnalysis {
	return &ProjectAnalysis{
		Variables: map[string]string{},
		CacheVars: map[string]string{},
	}
}

// Merge combines per-file analyses produced by concurrent evaluation
// (§5's parallel-discovery mode) into one. First non-empty project
// name/version wins (CMake's own semantics: the root CMakeLists.txt's
// project() call is authoritative); target lists concatenate in the
// order given; variable/cache maps union with a later argument's entries
// overwriting an earlier one's on key collision; warnings concatenate.
func Merge(analyses ...*ProjectAnalysis) *ProjectAnalysis {
	out := newProjectAnalysis()
	for _, a := range analyses {
		if a == nil {
			continue
		}
		if out.ProjectName == "" {
			out.ProjectName = a.ProjectName
		}
		if out.ProjectVersion == "" {
			out.ProjectVersion = a.ProjectVersion
		}
		out.Targets = append(out.Targets, a.Targets...)
		for k, v := range a.Variables {
			out.Variables[k] = v
		}
		for k, v := range a.CacheVars {
			out.CacheVars[k] = v
		}
		out.Warnings = append(out.Warnings, a.Warnings...)
	}
	return out
}
