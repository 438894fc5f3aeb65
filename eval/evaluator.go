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

import (
	"fmt"
	"path"

	"github.com/finchbuild/finch/ast"
	"github.com/finchbuild/finch/ferror"
	"github.com/finchbuild/finch/source"
)

// maxEvalDepth bounds nested if/foreach/while evaluation (§4.4's
// recursion guard). CMake inputs nest arbitrarily; this is a circuit
// breaker against a pathological or cyclic-looking input, not a realistic
// limit on ordinary CMakeLists.txt nesting.
const maxEvalDepth = 100

// Evaluator walks one file's AST against a scope chain rooted at a fresh
// EvaluationContext, producing a ProjectAnalysis. It carries no state
// beyond one file's evaluation and is not safe to reuse (or share) across
// concurrent file workers — §5 requires each file to own its own
// evaluator/interner pair.
type Evaluator struct {
	depth    int
	warnings []string
	errs     []*ferror.Error
}

// NewEvaluator returns an Evaluator ready to walk one file.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// EvaluateFile walks file's top-level statements against a fresh root
// context and returns the resulting ProjectAnalysis plus any analysis
// errors serious enough to report (not local confidence downgrades, which
// are folded into Warnings instead, per §4.4's "evaluation errors are
// local" failure semantics).
func EvaluateFile(file *ast.File) (*ProjectAnalysis, []*ferror.Error) {
	e := NewEvaluator()
	ctx := NewRootContext()
	e.evalStmts(ctx, file.Stmts)

	dir := path.Dir(file.Path)
	pa := newProjectAnalysis()
	for _, t := range ctx.Targets() {
		if t.SourceDir == "" {
			t.SourceDir = dir
		}
		pa.Targets = append(pa.Targets, t)
	}
	if v, ok := ctx.Lookup("PROJECT_NAME"); ok {
		pa.ProjectName = Text(v)
	}
	if v, ok := ctx.Lookup("PROJECT_VERSION"); ok {
		pa.ProjectVersion = Text(v)
	}
	for name, v := range ctx.variables {
		pa.Variables[name] = Text(v)
	}
	for name, v := range *ctx.cacheVars {
		pa.CacheVars[name] = Text(v)
	}
	pa.Warnings = append(pa.Warnings, e.warnings...)
	return pa, e.errs
}

func (e *Evaluator) warnf(format string, args ...interface{}) {
	e.warnings = append(e.warnings, fmt.Sprintf(format, args...))
}

// enterNested increments the recursion-guard depth, reporting (once) and
// refusing to descend further if the cap is exceeded. The returned bool
// is false when the caller should skip evaluating the nested block.
func (e *Evaluator) enterNested(loc source.Location) bool {
	e.depth++
	if e.depth > maxEvalDepth {
		if len(e.errs) == 0 || e.errs[len(e.errs)-1].Message != errMaxDepth {
			e.errs = append(e.errs, ferror.NewAnalysisError(loc, ferror.InvalidConfiguration, errMaxDepth))
		}
		return false
	}
	return true
}

func (e *Evaluator) exitNested() { e.depth-- }

const errMaxDepth = "maximum nested if/foreach/while evaluation depth exceeded"
