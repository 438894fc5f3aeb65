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

// evalStmts evaluates stmts in order against ctx. Untaken if/elseif/else
// branches are never passed to this function at all (§4.4: "no side
// effects"), so there is no separate "skip" mode to thread through here.
func (e *Evaluator) evalStmts(ctx *EvaluationContext, stmts []ast.Stmt) {
	for _, s := range stmts {
		e.evalStmt(ctx, s)
	}
}

func (e *Evaluator) evalStmt(ctx *EvaluationContext, stmt ast.Stmt) {
	switch n := stmt.(type) {
	case *ast.CommandCall:
		e.evalCommand(ctx, n)
	case *ast.IfStatement:
		e.evalIf(ctx, n)
	case *ast.WhileStatement:
		e.evalWhile(ctx, n)
	case *ast.ForEachStatement:
		e.evalForEach(ctx, n)
	case *ast.FunctionDef, *ast.MacroDef:
		// Recorded but never invoked (§4.4, and spec.md's explicit
		// Non-goal: "macro/function expansion at call sites").
	case *ast.CPMAddPackage:
		e.evalCPMAddPackage(ctx, n)
	case *ast.CPMFindPackage:
		e.evalCPMFindPackage(ctx, n)
	case *ast.CPMUsePackageLock:
		e.warnf("CPMUsePackageLock(%s) recognized but not resolved against a lockfile", n.Path)
	case *ast.CPMDeclarePackage:
		e.warnf("CPMDeclarePackage(%s) recognized but not resolved into a usable CPMAddPackage", n.Name)
	case *ast.Block:
		e.evalStmts(ctx, n.Stmts)
	case *ast.ErrorNode:
		// Already reported by the parser; nothing to evaluate.
	}
}

func (e *Evaluator) evalIf(ctx *EvaluationContext, n *ast.IfStatement) {
	proceed := e.enterNested(n.Pos())
	defer e.exitNested()
	if !proceed {
		return
	}

	if Truthy(e.evalCondition(ctx, n.Condition)) {
		e.evalStmts(ctx, n.Then)
		return
	}
	for _, b := range n.ElseIfs {
		if Truthy(e.evalCondition(ctx, b.Condition)) {
			e.evalStmts(ctx, b.Body)
			return
		}
	}
	e.evalStmts(ctx, n.Else)
}

// evalCondition evaluates an if()/elseif() condition. A bare unquoted word
// that names a defined variable (including the seeded platform checks such
// as WIN32) yields that variable's value, as CMake's if() dereferences it;
// anything else is evaluated as an ordinary expression.
func (e *Evaluator) evalCondition(ctx *EvaluationContext, cond ast.Expr) EvaluatedValue {
	if sl, ok := cond.(*ast.StringLiteral); ok && !sl.Quoted {
		if v, found := ctx.Lookup(sl.Value); found {
			return v
		}
	}
	return e.evalExpr(ctx, cond)
}

// evalWhile never executes the loop body: §4.4 explicitly allows a while
// loop to evaluate to Unknown and be skipped when its bound cannot be
// trusted, and a while condition is in general data-dependent in a way a
// one-shot offline partial evaluator cannot safely bound. The condition is
// still evaluated once, for its side effect on confidence warnings.
func (e *Evaluator) evalWhile(ctx *EvaluationContext, n *ast.WhileStatement) {
	proceed := e.enterNested(n.Pos())
	defer e.exitNested()
	if !proceed {
		return
	}

	cond := e.evalExpr(ctx, n.Condition)
	if Truthy(cond) {
		e.warnf("while() body at %s not evaluated (partial evaluation does not bound loop iteration)", n.Pos())
	}
}

func (e *Evaluator) evalForEach(ctx *EvaluationContext, n *ast.ForEachStatement) {
	proceed := e.enterNested(n.Pos())
	defer e.exitNested()
	if !proceed {
		return
	}

	iterations, ok := e.resolveForEachItems(ctx, n)
	if !ok {
		e.warnf("foreach() at %s not evaluated (loop bound could not be resolved to a concrete list)", n.Pos())
		return
	}
	for _, binding := range iterations {
		child := ctx.Child()
		for name, v := range binding {
			child.Set(name, v)
		}
		e.evalStmts(child, n.Body)
	}
}

// resolveForEachItems expands n's loop-kind/items into one variable
// binding map per iteration, or ok=false if the bound cannot be trusted
// at Likely-or-better confidence (§4.4's "safe implementation may refuse
// to iterate" allowance).
func (e *Evaluator) resolveForEachItems(ctx *EvaluationContext, n *ast.ForEachStatement) ([]map[string]EvaluatedValue, bool) {
	switch n.LoopKind {
	case ast.LoopBare, ast.LoopInItems:
		items, ok := e.resolveConcreteList(ctx, n.Items)
		if !ok || len(n.Vars) != 1 {
			return nil, false
		}
		var out []map[string]EvaluatedValue
		for _, it := range items {
			out = append(out, map[string]EvaluatedValue{n.Vars[0]: it})
		}
		return out, true

	case ast.LoopInLists:
		if len(n.Vars) != 1 {
			return nil, false
		}
		var all []EvaluatedValue
		for _, listVarExpr := range n.Items {
			name, ok := bareVariableName(listVarExpr)
			if !ok {
				return nil, false
			}
			v, ok := ctx.Lookup(name)
			if !ok || !v.Known() || v.Confidence < Likely {
				return nil, false
			}
			for _, s := range TextList(v) {
				all = append(all, StringValue(s, v.Confidence))
			}
		}
		var out []map[string]EvaluatedValue
		for _, it := range all {
			out = append(out, map[string]EvaluatedValue{n.Vars[0]: it})
		}
		return out, true

	case ast.LoopInZipList:
		var lists [][]string
		for _, listVarExpr := range n.Items {
			name, ok := bareVariableName(listVarExpr)
			if !ok {
				return nil, false
			}
			v, ok := ctx.Lookup(name)
			if !ok || !v.Known() || v.Confidence < Likely {
				return nil, false
			}
			lists = append(lists, TextList(v))
		}
		if len(lists) != len(n.Vars) {
			return nil, false
		}
		maxLen := 0
		for _, l := range lists {
			if len(l) > maxLen {
				maxLen = len(l)
			}
		}
		var out []map[string]EvaluatedValue
		for i := 0; i < maxLen; i++ {
			binding := map[string]EvaluatedValue{}
			for vi, name := range n.Vars {
				s := ""
				if i < len(lists[vi]) {
					s = lists[vi][i]
				}
				binding[name] = StringValue(s, Likely)
			}
			out = append(out, binding)
		}
		return out, true

	case ast.LoopRange:
		nums, ok := e.resolveConcreteNumbers(ctx, n.Items)
		if !ok || len(n.Vars) != 1 {
			return nil, false
		}
		start, stop, step := rangeBounds(nums)
		if step == 0 {
			return nil, false
		}
		var out []map[string]EvaluatedValue
		for i := start; (step > 0 && i <= stop) || (step < 0 && i >= stop); i += step {
			out = append(out, map[string]EvaluatedValue{n.Vars[0]: NumberValue(float64(i), Likely)})
			if len(out) > maxRangeIterations {
				break
			}
		}
		return out, true
	}
	return nil, false
}

// maxRangeIterations backstops a pathological RANGE() call (e.g. a typo'd
// step of the wrong sign that resolveForEachItems already guards against,
// or simply an enormous range) from generating an unbounded binding list.
const maxRangeIterations = 100000

func rangeBounds(nums []float64) (start, stop, step int) {
	switch len(nums) {
	case 1:
		return 0, int(nums[0]), 1
	case 2:
		return int(nums[0]), int(nums[1]), 1
	default:
		step = int(nums[2])
		return int(nums[0]), int(nums[1]), step
	}
}

func (e *Evaluator) resolveConcreteNumbers(ctx *EvaluationContext, items []ast.Expr) ([]float64, bool) {
	if len(items) == 0 || len(items) > 3 {
		return nil, false
	}
	var out []float64
	for _, it := range items {
		v := e.evalExpr(ctx, it)
		if !v.Known() || v.Confidence < Likely {
			return nil, false
		}
		out = append(out, toFloat(v))
	}
	return out, true
}

// resolveConcreteList evaluates items and returns one EvaluatedValue per
// resolved element, flattening any list-valued element, or ok=false if
// any element's confidence falls below Likely.
func (e *Evaluator) resolveConcreteList(ctx *EvaluationContext, items []ast.Expr) ([]EvaluatedValue, bool) {
	var out []EvaluatedValue
	for _, it := range items {
		v := e.evalExpr(ctx, it)
		if !v.Known() || v.Confidence < Likely {
			return nil, false
		}
		if v.Value.Type().IsListType() {
			for _, s := range TextList(v) {
				out = append(out, StringValue(s, v.Confidence))
			}
			continue
		}
		out = append(out, v)
	}
	return out, true
}

func bareVariableName(e ast.Expr) (string, bool) {
	switch n := e.(type) {
	case *ast.StringLiteral:
		return n.Value, true
	case *ast.Identifier:
		return n.Name, true
	case *ast.Variable:
		return n.Name, true
	}
	return "", false
}
