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

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders file back into CMake-like source text. The result is not
// guaranteed to match the original formatting (whitespace and comments are
// not preserved) but re-parsing it must yield an AST equal modulo
// whitespace/comments, per the printer/parser round-trip invariant.
func Print(file *File) string {
	var b strings.Builder
	printStmts(&b, file.Stmts, 0)
	return b.String()
}

func indent(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
}

func printStmts(b *strings.Builder, stmts []Stmt, depth int) {
	for _, s := range stmts {
		printStmt(b, s, depth)
	}
}

func printStmt(b *strings.Builder, s Stmt, depth int) {
	indent(b, depth)
	switch n := s.(type) {
	case *CommandCall:
		fmt.Fprintf(b, "%s(%s)\n", n.Name, joinExprs(n.Args))
	case *FunctionDef:
		fmt.Fprintf(b, "function(%s %s)\n", n.Name, strings.Join(n.Params, " "))
		printStmts(b, n.Body, depth+1)
		indent(b, depth)
		b.WriteString("endfunction()\n")
	case *MacroDef:
		fmt.Fprintf(b, "macro(%s %s)\n", n.Name, strings.Join(n.Params, " "))
		printStmts(b, n.Body, depth+1)
		indent(b, depth)
		b.WriteString("endmacro()\n")
	case *IfStatement:
		fmt.Fprintf(b, "if(%s)\n", printExpr(n.Condition))
		printStmts(b, n.Then, depth+1)
		for _, br := range n.ElseIfs {
			indent(b, depth)
			fmt.Fprintf(b, "elseif(%s)\n", printExpr(br.Condition))
			printStmts(b, br.Body, depth+1)
		}
		if len(n.Else) > 0 {
			indent(b, depth)
			b.WriteString("else()\n")
			printStmts(b, n.Else, depth+1)
		}
		indent(b, depth)
		b.WriteString("endif()\n")
	case *WhileStatement:
		fmt.Fprintf(b, "while(%s)\n", printExpr(n.Condition))
		printStmts(b, n.Body, depth+1)
		indent(b, depth)
		b.WriteString("endwhile()\n")
	case *ForEachStatement:
		fmt.Fprintf(b, "foreach(%s %s %s)\n", strings.Join(n.Vars, " "), n.LoopKind, joinExprs(n.Items))
		printStmts(b, n.Body, depth+1)
		indent(b, depth)
		b.WriteString("endforeach()\n")
	case *Block:
		printStmts(b, n.Stmts, depth)
	case *CPMAddPackage:
		fmt.Fprintf(b, "CPMAddPackage(NAME %s)\n", n.Name)
	case *CPMFindPackage:
		fmt.Fprintf(b, "CPMFindPackage(NAME %s)\n", n.Name)
	case *CPMUsePackageLock:
		fmt.Fprintf(b, "CPMUsePackageLock(%s)\n", n.Path)
	case *CPMDeclarePackage:
		fmt.Fprintf(b, "CPMDeclarePackage(NAME %s)\n", n.Name)
	case *ErrorNode:
		fmt.Fprintf(b, "# error: %s\n", n.Message)
	case *File:
		printStmts(b, n.Stmts, depth)
	}
}

func joinExprs(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = printExpr(e)
	}
	return strings.Join(parts, " ")
}

func printExpr(e Expr) string {
	switch n := e.(type) {
	case *StringLiteral:
		if n.Quoted {
			return strconv.Quote(n.Value)
		}
		return n.Value
	case *NumberLiteral:
		return n.Text
	case *BooleanLiteral:
		return n.OriginalText
	case *Variable:
		switch n.Scope {
		case ScopeEnv:
			return "$ENV{" + n.Name + "}"
		case ScopeCache:
			return "$CACHE{" + n.Name + "}"
		default:
			return "${" + n.Name + "}"
		}
	case *Identifier:
		return n.Name
	case *ListExpression:
		parts := make([]string, len(n.Elements))
		for i, e := range n.Elements {
			parts[i] = printExpr(e)
		}
		return strings.Join(parts, n.Separator)
	case *GeneratorExpression:
		return n.Text
	case *BracketExpression:
		return "[[" + n.Content + "]]"
	case *BinaryOp:
		return printExpr(n.Left) + " " + n.Op + " " + printExpr(n.Right)
	case *UnaryOp:
		return n.Op + " " + printExpr(n.Operand)
	case *FunctionCall:
		return n.Name + "(" + joinExprs(n.Args) + ")"
	case *ErrorNode:
		return "<error>"
	default:
		return ""
	}
}
