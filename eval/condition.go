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
	"os"
	"regexp"
	"strings"

	"github.com/finchbuild/finch/ast"
	"golang.org/x/mod/semver"
)

// numericComparisonOps and stringComparisonOps mirror parser/condition.go's
// comparisonOps, split by whether the operator compares numerically,
// lexically, or via a dedicated rule (VERSION_*, MATCHES, IN_LIST).
var numericComparisonOps = map[string]bool{
	"EQUAL": true, "LESS": true, "GREATER": true, "LESS_EQUAL": true, "GREATER_EQUAL": true,
}

var stringComparisonOps = map[string]bool{
	"STREQUAL": true, "STRLESS": true, "STRGREATER": true,
	"STRLESS_EQUAL": true, "STRGREATER_EQUAL": true,
}

var versionComparisonOps = map[string]bool{
	"VERSION_EQUAL": true, "VERSION_LESS": true, "VERSION_GREATER": true,
	"VERSION_LESS_EQUAL": true, "VERSION_GREATER_EQUAL": true,
}

func (e *Evaluator) evalBinaryOp(ctx *EvaluationContext, n *ast.BinaryOp) EvaluatedValue {
	switch n.Op {
	case "AND":
		l := e.evalExpr(ctx, n.Left)
		if !Truthy(l) {
			return BoolValue(false, minKnownConfidence(l))
		}
		r := e.evalExpr(ctx, n.Right)
		return BoolValue(Truthy(r), minKnownConfidence(l, r))
	case "OR":
		l := e.evalExpr(ctx, n.Left)
		if Truthy(l) {
			return BoolValue(true, minKnownConfidence(l))
		}
		r := e.evalExpr(ctx, n.Right)
		return BoolValue(Truthy(r), minKnownConfidence(l, r))
	}

	l := e.evalExpr(ctx, n.Left)
	r := e.evalExpr(ctx, n.Right)
	conf := minKnownConfidence(l, r)
	if conf == Unknown {
		return BoolValue(false, Unknown)
	}

	switch {
	case numericComparisonOps[n.Op]:
		return BoolValue(compareNumeric(n.Op, toFloat(l), toFloat(r)), conf)
	case stringComparisonOps[n.Op]:
		return BoolValue(compareString(n.Op, Text(l), Text(r)), conf)
	case versionComparisonOps[n.Op]:
		return BoolValue(compareVersion(n.Op, Text(l), Text(r)), conf)
	case n.Op == "MATCHES":
		return BoolValue(matchesRegex(Text(l), Text(r)), conf)
	case n.Op == "IN_LIST":
		// The right operand names a list variable, as in CMake.
		list := TextList(r)
		if name, ok := bareVariableName(n.Right); ok {
			if v, found := ctx.Lookup(name); found {
				list = TextList(v)
			}
		}
		return BoolValue(inList(Text(l), list), conf)
	}
	return BoolValue(false, Unknown)
}

func (e *Evaluator) evalUnaryOp(ctx *EvaluationContext, n *ast.UnaryOp) EvaluatedValue {
	switch n.Op {
	case "NOT":
		v := e.evalExpr(ctx, n.Operand)
		return BoolValue(!Truthy(v), minKnownConfidence(v))
	case "DEFINED":
		name, _ := bareVariableName(n.Operand)
		_, ok := ctx.Lookup(name)
		return BoolValue(ok, Certain)
	case "EXISTS":
		path, _ := bareVariableName(n.Operand)
		v := e.evalExpr(ctx, n.Operand)
		if path == "" {
			path = Text(v)
		}
		if !v.Known() && path == "" {
			return BoolValue(false, Unknown)
		}
		// A real filesystem check only tells us about finch's own host,
		// which need not match the project's target build environment —
		// Likely, not Certain, per §4.4's confidence model.
		_, err := os.Stat(path)
		return BoolValue(err == nil, Likely)
	case "TARGET":
		name, _ := bareVariableName(n.Operand)
		_, ok := ctx.FindTarget(name)
		return BoolValue(ok, Certain)
	case "COMMAND":
		name, _ := bareVariableName(n.Operand)
		return BoolValue(isRecognizedCommand(name), Likely)
	case "POLICY", "TEST":
		// Neither CMake policies nor CTest test registration are tracked
		// by this evaluator.
		return BoolValue(false, Unknown)
	}
	return BoolValue(false, Unknown)
}

func (e *Evaluator) evalFunctionCall(ctx *EvaluationContext, n *ast.FunctionCall) EvaluatedValue {
	switch strings.ToUpper(n.Name) {
	case "TARGET":
		if len(n.Args) != 1 {
			return BoolValue(false, Unknown)
		}
		name, _ := bareVariableName(n.Args[0])
		_, ok := ctx.FindTarget(name)
		return BoolValue(ok, Certain)
	case "COMMAND":
		if len(n.Args) != 1 {
			return BoolValue(false, Unknown)
		}
		name, _ := bareVariableName(n.Args[0])
		return BoolValue(isRecognizedCommand(name), Likely)
	}
	return BoolValue(false, Unknown)
}

// minKnownConfidence returns the minimum confidence across vs, or Unknown
// if any operand is not Known — an unresolved operand makes the whole
// comparison untrustworthy, not just "a bit less trustworthy".
func minKnownConfidence(vs ...EvaluatedValue) Confidence {
	conf := Certain
	for _, v := range vs {
		if !v.Known() {
			return Unknown
		}
		conf = conf.Min(v.Confidence)
	}
	return conf
}

func compareNumeric(op string, l, r float64) bool {
	switch op {
	case "EQUAL":
		return l == r
	case "LESS":
		return l < r
	case "GREATER":
		return l > r
	case "LESS_EQUAL":
		return l <= r
	case "GREATER_EQUAL":
		return l >= r
	}
	return false
}

func compareString(op, l, r string) bool {
	switch op {
	case "STREQUAL":
		return l == r
	case "STRLESS":
		return l < r
	case "STRGREATER":
		return l > r
	case "STRLESS_EQUAL":
		return l <= r
	case "STRGREATER_EQUAL":
		return l >= r
	}
	return false
}

// compareVersion implements CMake's VERSION_* family: dot-separated
// numeric component comparison, not lexical string order (so "9" <
// "10"). Normalizing to semver's "vX.Y.Z" form lets this reuse
// semver.Compare instead of hand-rolling component-wise comparison.
func compareVersion(op, l, r string) bool {
	cmp := semver.Compare(normalizeVersion(l), normalizeVersion(r))
	switch op {
	case "VERSION_EQUAL":
		return cmp == 0
	case "VERSION_LESS":
		return cmp < 0
	case "VERSION_GREATER":
		return cmp > 0
	case "VERSION_LESS_EQUAL":
		return cmp <= 0
	case "VERSION_GREATER_EQUAL":
		return cmp >= 0
	}
	return false
}

// normalizeVersion turns a bare CMake version string ("3.20", "1") into
// the "vMAJOR.MINOR.PATCH" form golang.org/x/mod/semver requires.
func normalizeVersion(v string) string {
	parts := strings.Split(v, ".")
	for len(parts) < 3 {
		parts = append(parts, "0")
	}
	return "v" + strings.Join(parts[:3], ".")
}

func matchesRegex(s, pattern string) bool {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(s)
}

func inList(s string, list []string) bool {
	for _, it := range list {
		if it == s {
			return true
		}
	}
	return false
}

// isRecognizedCommand reports whether name is one of the commands eval's
// dispatch table (commands.go) actually handles — used by the
// condition-context `COMMAND(name)` test.
func isRecognizedCommand(name string) bool {
	_, ok := commandHandlers[strings.ToLower(name)]
	return ok
}
