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

// Package ast defines the immutable CMake abstract syntax tree: the closed
// set of node variants, a visitor dispatch mechanism, a string interner,
// and a deep-clone operation. Nodes are built once by the parser and never
// mutated afterward; children are owned exclusively by their parent.
package ast

import "github.com/finchbuild/finch/source"

// Node is the common interface implemented by every AST variant.
type Node interface {
	// Pos returns the location of the first token that produced this node.
	Pos() source.Location
	// IsErrorNode reports whether this node stands in for a parse failure.
	IsErrorNode() bool
}

// Stmt is any node that may appear directly inside a Block: a command
// invocation, a control-flow construct, a definition, or an ErrorNode.
type Stmt interface {
	Node
	stmtTag()
}

// Expr is any node that evaluates to a value: a literal, a reference, a
// compound expression, or an ErrorNode standing in for a malformed one.
type Expr interface {
	Node
	exprTag()
}

// base carries the fields common to every node: its source location and
// whether it is an error stand-in. Embed it to satisfy Node without
// repeating Pos/IsErrorNode on every variant.
type base struct {
	Loc     source.Location
	IsError bool
}

func (b base) Pos() source.Location { return b.Loc }
func (b base) IsErrorNode() bool     { return b.IsError }

// Identifier is a bare, non-variable, non-literal name — a command name, a
// function parameter, a CPM keyword target. Names are interned: two
// Identifiers with the same text share backing storage via the owning
// Interner.
type Identifier struct {
	base
	Name string
}

func (*Identifier) exprTag() {}
