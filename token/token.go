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

// Package token defines the lexical tokens produced by the CMake lexer.
package token

import "github.com/finchbuild/finch/source"

// Kind classifies a Token.
type Kind int

const (
	Invalid Kind = iota
	Eof

	Identifier
	String
	Number
	Variable
	GeneratorExpr

	LeftParen
	RightParen
	LeftBracket
	RightBracket
	Semicolon

	Comment
	BracketComment
	Newline
	Whitespace
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case Eof:
		return "Eof"
	case Identifier:
		return "Identifier"
	case String:
		return "String"
	case Number:
		return "Number"
	case Variable:
		return "Variable"
	case GeneratorExpr:
		return "GeneratorExpr"
	case LeftParen:
		return "LeftParen"
	case RightParen:
		return "RightParen"
	case LeftBracket:
		return "LeftBracket"
	case RightBracket:
		return "RightBracket"
	case Semicolon:
		return "Semicolon"
	case Comment:
		return "Comment"
	case BracketComment:
		return "BracketComment"
	case Newline:
		return "Newline"
	case Whitespace:
		return "Whitespace"
	default:
		return "Unknown"
	}
}

// ValueKind tags which field of Token.Value is meaningful.
type ValueKind int

const (
	NoValue ValueKind = iota
	StringValue
	NumberValue
)

// VarScope distinguishes ${x}, $ENV{x}, and $CACHE{x} references. It is
// carried on Variable tokens so the parser doesn't need to re-lex the name.
type VarScope int

const (
	ScopeNormal VarScope = iota
	ScopeEnv
	ScopeCache
)

// Token is one lexical unit. RawText is the exact slice of source text the
// token was produced from; for String tokens it includes the surrounding
// quotes or bracket delimiters; for everything else it is the literal text.
type Token struct {
	Kind      Kind
	ValueKind ValueKind
	Str       string // meaningful iff ValueKind == StringValue
	Num       float64
	Quoted    bool // for String: was the source form `"..."` (vs bracket/unquoted)
	VarScope  VarScope
	Location  source.Location
	RawText   string
}

// IsTrivia reports whether the token is whitespace/comment noise the parser
// normally skips outside of argument-list boundaries.
func (t Token) IsTrivia() bool {
	switch t.Kind {
	case Whitespace, Comment, BracketComment, Newline:
		return true
	default:
		return false
	}
}
