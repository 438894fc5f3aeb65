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

// evalCPMAddPackage turns a recognized CPMAddPackage node into a Target
// of KindExternalPackage, carrying the fields package (target mapper)
// needs to choose between a PrebuiltCxxLibrary and an HttpArchive rule.
func (e *Evaluator) evalCPMAddPackage(ctx *EvaluationContext, n *ast.CPMAddPackage) {
	t := &Target{
		Name:          n.Name,
		Kind:          KindExternalPackage,
		CPMSourceKind: n.SourceKind,
		CPMSource:     n.Source,
		CPMVersion:    n.Version,
		Confidence:    Likely,
	}
	for k, v := range n.Options {
		t.Properties()[k] = v
	}
	ctx.AddTarget(t)
	if n.FindPackageFallback {
		e.warnf("CPMAddPackage(%s) declares a find_package fallback, which is not evaluated against a real system (§1 Non-goal)", n.Name)
	}
}

// evalCPMFindPackage records a CPMFindPackage call as a lower-confidence
// external-package Target: unlike CPMAddPackage it only expresses intent
// to find an already-installed package, with no concrete fetchable source.
func (e *Evaluator) evalCPMFindPackage(ctx *EvaluationContext, n *ast.CPMFindPackage) {
	source := n.GitHub
	kind := ast.CPMSourceGitHub
	if source == "" {
		kind = ast.CPMSourceUnknown
	}
	t := &Target{
		Name:          n.Name,
		Kind:          KindExternalPackage,
		CPMSourceKind: kind,
		CPMSource:     source,
		CPMVersion:    n.Version,
		Confidence:    Uncertain,
	}
	if n.GitTag != "" {
		t.Properties()["git_tag"] = n.GitTag
	}
	if len(n.Components) > 0 {
		t.Properties()["components"] = joinSemicolon(n.Components)
	}
	ctx.AddTarget(t)
}

func joinSemicolon(items []string) string {
	out := ""
	for i, s := range items {
		if i > 0 {
			out += ";"
		}
		out += s
	}
	return out
}
