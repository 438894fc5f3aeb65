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

// ListExpression is a semicolon- or interpolation-split sequence of
// elements, e.g. the result of splitting a quoted string containing
// `${...}` references, or a `;`-joined unquoted argument.
type ListExpression struct {
	base
	Elements  []Expr
	Separator string
}

func (*ListExpression) exprTag() {}

// GeneratorExpression is a `$<...>` generator expression, preserved
// opaquely: this spec does not evaluate generator expressions (Non-goal).
type GeneratorExpression struct {
	base
	Text string
}

func (*GeneratorExpression) exprTag() {}

// BracketExpression is a `[=*[ ... ]=*]` bracket argument.
type BracketExpression struct {
	base
	Content string
	Quoted  bool
}

func (*BracketExpression) exprTag() {}

// BinaryOp is a two-operand condition expression, e.g. `AND`, `OR`,
// `STREQUAL`, `VERSION_LESS`, as found inside if()/while() conditions.
type BinaryOp struct {
	base
	Left  Expr
	Op    string
	Right Expr
}

func (*BinaryOp) exprTag() {}

// UnaryOp is a one-operand condition expression, e.g. `NOT`, `DEFINED`,
// `EXISTS`.
type UnaryOp struct {
	base
	Op      string
	Operand Expr
}

func (*UnaryOp) exprTag() {}

// FunctionCall is a condition-context call like `TARGET(foo)` appearing
// inside an if()/while() expression, distinct from a top-level CommandCall
// statement.
type FunctionCall struct {
	base
	Name string
	Args []Expr
}

func (*FunctionCall) exprTag() {}
