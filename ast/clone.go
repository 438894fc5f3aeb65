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

// CloneExpr returns a deep copy of e: every nested Expr is itself cloned,
// so mutating the result (were that ever permitted) cannot affect e.
// Nodes are otherwise immutable after construction; CloneExpr exists for
// callers that need an independent copy of a tree.
func CloneExpr(e Expr) Expr {
	if e == nil {
		return nil
	}
	switch x := e.(type) {
	case *StringLiteral:
		c := *x
		return &c
	case *NumberLiteral:
		c := *x
		return &c
	case *BooleanLiteral:
		c := *x
		return &c
	case *Variable:
		c := *x
		return &c
	case *Identifier:
		c := *x
		return &c
	case *ListExpression:
		c := *x
		c.Elements = cloneExprs(x.Elements)
		return &c
	case *GeneratorExpression:
		c := *x
		return &c
	case *BracketExpression:
		c := *x
		return &c
	case *BinaryOp:
		c := *x
		c.Left = CloneExpr(x.Left)
		c.Right = CloneExpr(x.Right)
		return &c
	case *UnaryOp:
		c := *x
		c.Operand = CloneExpr(x.Operand)
		return &c
	case *FunctionCall:
		c := *x
		c.Args = cloneExprs(x.Args)
		return &c
	case *ErrorNode:
		c := *x
		return &c
	default:
		return e
	}
}

func cloneExprs(exprs []Expr) []Expr {
	if exprs == nil {
		return nil
	}
	out := make([]Expr, len(exprs))
	for i, e := range exprs {
		out[i] = CloneExpr(e)
	}
	return out
}

// CloneStmt returns a deep copy of s.
func CloneStmt(s Stmt) Stmt {
	if s == nil {
		return nil
	}
	switch x := s.(type) {
	case *CommandCall:
		c := *x
		c.Args = cloneExprs(x.Args)
		return &c
	case *FunctionDef:
		c := *x
		c.Params = append([]string(nil), x.Params...)
		c.Body = cloneStmts(x.Body)
		return &c
	case *MacroDef:
		c := *x
		c.Params = append([]string(nil), x.Params...)
		c.Body = cloneStmts(x.Body)
		return &c
	case *IfStatement:
		c := *x
		c.Condition = CloneExpr(x.Condition)
		c.Then = cloneStmts(x.Then)
		c.ElseIfs = make([]ElseIfBranch, len(x.ElseIfs))
		for i, b := range x.ElseIfs {
			c.ElseIfs[i] = ElseIfBranch{Condition: CloneExpr(b.Condition), Body: cloneStmts(b.Body)}
		}
		c.Else = cloneStmts(x.Else)
		return &c
	case *WhileStatement:
		c := *x
		c.Condition = CloneExpr(x.Condition)
		c.Body = cloneStmts(x.Body)
		return &c
	case *ForEachStatement:
		c := *x
		c.Vars = append([]string(nil), x.Vars...)
		c.Items = cloneExprs(x.Items)
		c.Body = cloneStmts(x.Body)
		return &c
	case *Block:
		c := *x
		c.Stmts = cloneStmts(x.Stmts)
		return &c
	case *File:
		c := *x
		c.Stmts = cloneStmts(x.Stmts)
		return &c
	case *CPMAddPackage:
		c := *x
		c.Options = cloneStringMap(x.Options)
		return &c
	case *CPMFindPackage:
		c := *x
		c.Components = append([]string(nil), x.Components...)
		return &c
	case *CPMUsePackageLock:
		c := *x
		return &c
	case *CPMDeclarePackage:
		c := *x
		return &c
	case *ErrorNode:
		c := *x
		return &c
	default:
		return s
	}
}

func cloneStmts(stmts []Stmt) []Stmt {
	if stmts == nil {
		return nil
	}
	out := make([]Stmt, len(stmts))
	for i, s := range stmts {
		out[i] = CloneStmt(s)
	}
	return out
}

func cloneStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
