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

package parser

import (
	"strings"

	"github.com/finchbuild/finch/ast"
	"github.com/finchbuild/finch/token"
)

// comparisonOps is the fixed set of binary comparison/test keywords CMake
// recognizes inside if()/while() conditions, ordered by nothing in
// particular (all are handled at the same precedence level).
var comparisonOps = map[string]bool{
	"STREQUAL": true, "STRLESS": true, "STRGREATER": true,
	"STRLESS_EQUAL": true, "STRGREATER_EQUAL": true,
	"EQUAL": true, "LESS": true, "GREATER": true,
	"LESS_EQUAL": true, "GREATER_EQUAL": true,
	"VERSION_EQUAL": true, "VERSION_LESS": true, "VERSION_GREATER": true,
	"VERSION_LESS_EQUAL": true, "VERSION_GREATER_EQUAL": true,
	"MATCHES": true, "IN_LIST": true,
}

// unaryTestOps take a single operand: `DEFINED FOO`, `EXISTS path`,
// `TARGET name`, `COMMAND name`, `POLICY name`.
var unaryTestOps = map[string]bool{
	"DEFINED": true, "EXISTS": true, "TARGET": true,
	"COMMAND": true, "POLICY": true, "TEST": true,
}

// parseParenthesizedCondition parses `(condition)` as used by if/while/
// elseif headers.
func (p *Parser) parseParenthesizedCondition() ast.Expr {
	if _, ok := p.expect(token.LeftParen, "'('"); !ok {
		return ast.NewErrorNode(p.curLoc(), "expected '(' to start condition", ast.CategoryUnexpectedToken)
	}
	cond := p.parseCondition()
	if _, ok := p.expect(token.RightParen, "')'"); !ok {
		p.synchronize()
	}
	return cond
}

// parseCondition is the entry point of the precedence-climbing grammar:
// parseCondition -> parseOrExpr -> parseAndExpr -> parseNotExpr ->
// parseComparison -> parsePrimaryCond.
func (p *Parser) parseCondition() ast.Expr {
	return p.parseOrExpr()
}

func (p *Parser) parseOrExpr() ast.Expr {
	left := p.parseAndExpr()
	for p.curIsKeyword("OR") {
		opTok := p.advance()
		right := p.parseAndExpr()
		left = ast.NewBinaryOp(opTok.Location, left, "OR", right)
	}
	return left
}

func (p *Parser) parseAndExpr() ast.Expr {
	left := p.parseNotExpr()
	for p.curIsKeyword("AND") {
		opTok := p.advance()
		right := p.parseNotExpr()
		left = ast.NewBinaryOp(opTok.Location, left, "AND", right)
	}
	return left
}

func (p *Parser) parseNotExpr() ast.Expr {
	if p.curIsKeyword("NOT") {
		opTok := p.advance()
		operand := p.parseNotExpr()
		return ast.NewUnaryOp(opTok.Location, "NOT", operand)
	}
	return p.parseComparison()
}

func (p *Parser) parseComparison() ast.Expr {
	left := p.parsePrimaryCond()
	if word, ok := p.curKeywordUpper(); ok && comparisonOps[word] {
		opTok := p.advance()
		right := p.parsePrimaryCond()
		return ast.NewBinaryOp(opTok.Location, left, word, right)
	}
	return left
}

// parsePrimaryCond parses an atomic condition term: a parenthesized
// sub-condition, a unary test (DEFINED/EXISTS/TARGET/COMMAND/POLICY/TEST),
// a condition-context function call, or a bare argument value (a variable
// reference or literal is truthy per CMake's normal rules).
func (p *Parser) parsePrimaryCond() ast.Expr {
	if p.cur().Kind == token.LeftParen {
		return p.parseParenthesizedCondition()
	}

	if word, ok := p.curKeywordUpper(); ok && unaryTestOps[word] {
		opTok := p.advance()
		if p.cur().Kind == token.LeftParen {
			// `TARGET(foo)`-style call form.
			args := p.parseCallArgs()
			return ast.NewFunctionCall(opTok.Location, word, args)
		}
		operand := p.parsePrimaryArgument()
		return ast.NewUnaryOp(opTok.Location, word, operand)
	}

	if p.cur().Kind == token.Identifier {
		if fc, ok := p.tryParseConditionCall(); ok {
			return fc
		}
	}

	return p.parsePrimaryArgument()
}

// tryParseConditionCall recognizes `NAME(args...)` used as a condition
// function call (as opposed to a bare identifier argument). It only
// commits if a LeftParen immediately follows the identifier.
func (p *Parser) tryParseConditionCall() (ast.Expr, bool) {
	if p.lookahead(1).Kind != token.LeftParen {
		return nil, false
	}
	nameTok := p.advance()
	args := p.parseCallArgs()
	return ast.NewFunctionCall(nameTok.Location, nameTok.Str, args), true
}

func (p *Parser) parseCallArgs() []ast.Expr {
	p.expect(token.LeftParen, "'('")
	args := p.parseArgList()
	p.expect(token.RightParen, "')'")
	return args
}

// curIsKeyword reports whether the current token is an unquoted
// Identifier equal (case-insensitively) to kw.
func (p *Parser) curIsKeyword(kw string) bool {
	tok := p.cur()
	return tok.Kind == token.Identifier && strings.EqualFold(tok.Str, kw)
}

// curKeywordUpper returns the current token's text upper-cased, iff it is
// an unquoted Identifier.
func (p *Parser) curKeywordUpper() (string, bool) {
	tok := p.cur()
	if tok.Kind != token.Identifier {
		return "", false
	}
	return strings.ToUpper(tok.Str), true
}
