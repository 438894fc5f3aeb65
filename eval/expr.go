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

	"github.com/finchbuild/finch/ast"
	"github.com/zclconf/go-cty/cty"
)

// evalExpr evaluates n against ctx, dispatching by the closed Expr
// variant set (§3). This is the only entry point the rest of the package
// calls to turn an ast.Expr into an EvaluatedValue.
func (e *Evaluator) evalExpr(ctx *EvaluationContext, n ast.Expr) EvaluatedValue {
	switch v := n.(type) {
	case *ast.StringLiteral:
		return e.interpolate(ctx, v.Value)
	case *ast.NumberLiteral:
		return NumberValue(v.IntOrFloat, Certain)
	case *ast.BooleanLiteral:
		return BoolValue(v.Value, Certain)
	case *ast.Identifier:
		return StringValue(v.Name, Certain)
	case *ast.Variable:
		return e.evalVariable(ctx, v)
	case *ast.ListExpression:
		return e.evalListExpression(ctx, v)
	case *ast.GeneratorExpression:
		// Preserved opaquely: full generator-expression evaluation is an
		// explicit Non-goal. The surrounding `$<...>` is not part of
		// v.Text, so it's restored here for any downstream consumer that
		// renders this value back out.
		return StringValue("$<"+v.Text+">", Uncertain)
	case *ast.BracketExpression:
		// Bracket arguments are not variable-expanded in CMake itself.
		return StringValue(v.Content, Certain)
	case *ast.BinaryOp:
		return e.evalBinaryOp(ctx, v)
	case *ast.UnaryOp:
		return e.evalUnaryOp(ctx, v)
	case *ast.FunctionCall:
		return e.evalFunctionCall(ctx, v)
	case *ast.ErrorNode:
		return UnknownOf(cty.String)
	default:
		return UnknownOf(cty.String)
	}
}

// evalVariable implements §4.4's variable-reference semantics: a scope-
// chain hit returns the stored value; a miss returns the literal `${name}`
// form at Unknown confidence so the emitter can surface it later.
// $ENV{name} reads the host environment at Uncertain confidence (the
// build environment finch runs in need not match the target's); $CACHE{}
// reads the cache-variable table directly, bypassing the scope chain.
func (e *Evaluator) evalVariable(ctx *EvaluationContext, v *ast.Variable) EvaluatedValue {
	switch v.Scope {
	case ast.ScopeEnv:
		if val, ok := os.LookupEnv(v.Name); ok {
			return StringValue(val, Uncertain)
		}
		return StringValue("", Uncertain)
	case ast.ScopeCache:
		if val, ok := ctx.LookupCache(v.Name); ok {
			return val
		}
		return StringValue("${CACHE{"+v.Name+"}}", Unknown)
	default:
		if val, ok := ctx.Lookup(v.Name); ok {
			return val
		}
		return StringValue("${"+v.Name+"}", Unknown)
	}
}

// evalListExpression evaluates each element and concatenates their text
// forms with n.Separator, per §3's ListExpression ("a semicolon- or
// interpolation-split sequence"): the common case is a handful of string/
// variable pieces from one split quoted argument, e.g. `${PREFIX}_${SUFFIX}`
// splitting into a 3-element ListExpression with Separator "". Confidence
// is the minimum across elements, matching set()'s multi-value rule.
func (e *Evaluator) evalListExpression(ctx *EvaluationContext, n *ast.ListExpression) EvaluatedValue {
	if len(n.Elements) == 0 {
		return StringValue("", Certain)
	}
	conf := Certain
	var text string
	for i, el := range n.Elements {
		v := e.evalExpr(ctx, el)
		conf = conf.Min(v.Confidence)
		if i > 0 {
			text += n.Separator
		}
		text += Text(v)
	}
	return StringValue(text, conf)
}
