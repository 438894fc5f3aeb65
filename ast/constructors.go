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

import "github.com/finchbuild/finch/source"

// Constructors for every non-error node variant, since base's fields are
// unexported and callers outside this package (the parser, clone, tests)
// cannot otherwise populate it in a composite literal.

func NewIdentifier(loc source.Location, name string) *Identifier {
	return &Identifier{base: base{Loc: loc}, Name: name}
}

func NewCommandCall(loc source.Location, name string, args []Expr) *CommandCall {
	return &CommandCall{base: base{Loc: loc}, Name: name, Args: args}
}

func NewFunctionDef(loc source.Location, name string, params []string, body []Stmt) *FunctionDef {
	return &FunctionDef{base: base{Loc: loc}, Name: name, Params: params, Body: body}
}

func NewMacroDef(loc source.Location, name string, params []string, body []Stmt) *MacroDef {
	return &MacroDef{base: base{Loc: loc}, Name: name, Params: params, Body: body}
}

func NewIfStatement(loc source.Location, cond Expr, then []Stmt, elseIfs []ElseIfBranch, els []Stmt) *IfStatement {
	return &IfStatement{base: base{Loc: loc}, Condition: cond, Then: then, ElseIfs: elseIfs, Else: els}
}

func NewWhileStatement(loc source.Location, cond Expr, body []Stmt) *WhileStatement {
	return &WhileStatement{base: base{Loc: loc}, Condition: cond, Body: body}
}

func NewForEachStatement(loc source.Location, vars []string, kind LoopKind, items []Expr, body []Stmt) *ForEachStatement {
	return &ForEachStatement{base: base{Loc: loc}, Vars: vars, LoopKind: kind, Items: items, Body: body}
}

func NewBlock(loc source.Location, stmts []Stmt) *Block {
	return &Block{base: base{Loc: loc}, Stmts: stmts}
}

func NewFile(loc source.Location, path string, stmts []Stmt) *File {
	return &File{base: base{Loc: loc}, Path: path, Stmts: stmts}
}

func NewStringLiteral(loc source.Location, value string, quoted bool) *StringLiteral {
	return &StringLiteral{base: base{Loc: loc}, Value: value, Quoted: quoted}
}

func NewNumberLiteral(loc source.Location, text string, val float64) *NumberLiteral {
	return &NumberLiteral{base: base{Loc: loc}, Text: text, IntOrFloat: val}
}

func NewBooleanLiteral(loc source.Location, value bool, originalText string) *BooleanLiteral {
	return &BooleanLiteral{base: base{Loc: loc}, Value: value, OriginalText: originalText}
}

func NewVariable(loc source.Location, name string, scope VarScope) *Variable {
	return &Variable{base: base{Loc: loc}, Name: name, Scope: scope}
}

func NewListExpression(loc source.Location, elements []Expr, separator string) *ListExpression {
	return &ListExpression{base: base{Loc: loc}, Elements: elements, Separator: separator}
}

func NewGeneratorExpression(loc source.Location, text string) *GeneratorExpression {
	return &GeneratorExpression{base: base{Loc: loc}, Text: text}
}

func NewBracketExpression(loc source.Location, content string, quoted bool) *BracketExpression {
	return &BracketExpression{base: base{Loc: loc}, Content: content, Quoted: quoted}
}

func NewBinaryOp(loc source.Location, left Expr, op string, right Expr) *BinaryOp {
	return &BinaryOp{base: base{Loc: loc}, Left: left, Op: op, Right: right}
}

func NewUnaryOp(loc source.Location, op string, operand Expr) *UnaryOp {
	return &UnaryOp{base: base{Loc: loc}, Op: op, Operand: operand}
}

func NewFunctionCall(loc source.Location, name string, args []Expr) *FunctionCall {
	return &FunctionCall{base: base{Loc: loc}, Name: name, Args: args}
}

func NewCPMAddPackage(loc source.Location, name string, kind CPMSourceKind, source_ string, version *CPMVersion, opts map[string]string, fallback bool) *CPMAddPackage {
	return &CPMAddPackage{
		base: base{Loc: loc}, Name: name, SourceKind: kind, Source: source_,
		Version: version, Options: opts, FindPackageFallback: fallback,
	}
}

func NewCPMFindPackage(loc source.Location, name string, version *CPMVersion, components []string, gitHub, gitTag string) *CPMFindPackage {
	return &CPMFindPackage{
		base: base{Loc: loc}, Name: name, Version: version,
		Components: components, GitHub: gitHub, GitTag: gitTag,
	}
}

func NewCPMUsePackageLock(loc source.Location, path string) *CPMUsePackageLock {
	return &CPMUsePackageLock{base: base{Loc: loc}, Path: path}
}

func NewCPMDeclarePackage(loc source.Location, name, version, gitHub, git string) *CPMDeclarePackage {
	return &CPMDeclarePackage{base: base{Loc: loc}, Name: name, Version: version, GitHub: gitHub, Git: git}
}
