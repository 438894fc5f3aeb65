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

// ParseErrorCategory mirrors the parse error categories in the error
// model (ferror.ParseCategory) without creating an import cycle: ast
// is a leaf package and must not depend on ferror.
type ParseErrorCategory int

const (
	CategoryUnknown ParseErrorCategory = iota
	CategoryUnexpectedToken
	CategoryUnterminatedString
	CategoryInvalidSyntax
	CategoryUnknownCommand
	CategoryTooManyArguments
	CategoryTooFewArguments
	CategoryInvalidEscape
	CategoryUnbalancedParens
	CategoryUnexpectedEOF
)

// ErrorNode stands in for a parse failure anywhere a statement or an
// argument was expected, letting the parser keep producing a usable
// partial tree after recording an error (§8: error-free parses yield zero
// ErrorNodes).
type ErrorNode struct {
	base
	Message  string
	Category ParseErrorCategory
}

func (e *ErrorNode) stmtTag() {}
func (e *ErrorNode) exprTag() {}

// NewErrorNode constructs an ErrorNode located at loc with IsError set, so
// it is always ready to satisfy Node.IsErrorNode() == true.
func NewErrorNode(loc source.Location, message string, category ParseErrorCategory) *ErrorNode {
	return &ErrorNode{
		base:     base{Loc: loc, IsError: true},
		Message:  message,
		Category: category,
	}
}
