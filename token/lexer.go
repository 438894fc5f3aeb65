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

package token

import (
	"strconv"
	"strings"

	"github.com/finchbuild/finch/source"
)

// Error is a lexical error: a message tied to a location in the source.
type Error struct {
	Msg string
	Loc source.Location
}

func (e *Error) Error() string { return e.Loc.String() + ": " + e.Msg }

// Lexer produces one Token per call to Next from a source.Buffer. It is
// single-pass: callers that need lookahead wrap a Lexer in a Peeker.
type Lexer struct {
	buf *source.Buffer
	pos int
}

// New returns a Lexer reading from the start of buf.
func New(buf *source.Buffer) *Lexer {
	return &Lexer{buf: buf}
}

// Pos returns the current byte offset the lexer will resume scanning from.
func (l *Lexer) Pos() int { return l.pos }

// Seek repositions the lexer to an absolute byte offset, used by Peeker to
// restore a saved position after a lookahead.
func (l *Lexer) Seek(pos int) { l.pos = pos }

func (l *Lexer) content() string { return l.buf.Content() }

func (l *Lexer) at(i int) byte {
	c := l.content()
	if i < 0 || i >= len(c) {
		return 0
	}
	return c[i]
}

func (l *Lexer) loc(offset int) source.Location { return l.buf.LocationAt(offset) }

// Next scans and returns the next token, or a lexical Error.
func (l *Lexer) Next() (Token, error) {
	for {
		c := l.content()

		// Rule 1: skip spaces/tabs/\r; backslash-newline is a continuation.
		for l.pos < len(c) {
			ch := c[l.pos]
			if ch == ' ' || ch == '\t' || ch == '\r' {
				l.pos++
				continue
			}
			if ch == '\\' && l.at(l.pos+1) == '\n' {
				l.pos += 2
				continue
			}
			break
		}

		if l.pos >= len(c) {
			return Token{Kind: Eof, Location: l.loc(l.pos)}, nil
		}

		start := l.pos
		ch := c[l.pos]

		switch {
		case ch == '\n':
			l.pos++
			return Token{Kind: Newline, Location: l.loc(start), RawText: "\n"}, nil

		case ch == '#':
			if eq, ok := scanBracketOpen(c, l.pos+1); ok {
				return l.lexBracket(start, eq, BracketComment)
			}
			// Line comment: consume to end of line, then loop for the next
			// real token (line comments are not themselves tokens).
			for l.pos < len(c) && c[l.pos] != '\n' {
				l.pos++
			}
			continue

		case ch == '(':
			l.pos++
			return Token{Kind: LeftParen, Location: l.loc(start), RawText: "("}, nil
		case ch == ')':
			l.pos++
			return Token{Kind: RightParen, Location: l.loc(start), RawText: ")"}, nil
		case ch == ';':
			l.pos++
			return Token{Kind: Semicolon, Location: l.loc(start), RawText: ";"}, nil

		case ch == '[':
			if eq, ok := scanBracketOpen(c, l.pos); ok {
				return l.lexBracket(start, eq, String)
			}
			l.pos++
			return Token{Kind: LeftBracket, Location: l.loc(start), RawText: "["}, nil

		case ch == ']':
			l.pos++
			return Token{Kind: RightBracket, Location: l.loc(start), RawText: "]"}, nil

		case ch == '"':
			return l.lexQuotedString(start)

		case ch == '$' && l.at(l.pos+1) == '{':
			return l.lexVariable(start, ScopeNormal, l.pos+2)
		case ch == '$' && l.at(l.pos+1) == '<':
			return l.lexGeneratorExpr(start)
		case ch == '$' && hasPrefixAt(c, l.pos+1, "ENV{"):
			return l.lexVariable(start, ScopeEnv, l.pos+1+len("ENV{"))
		case ch == '$' && hasPrefixAt(c, l.pos+1, "CACHE{"):
			return l.lexVariable(start, ScopeCache, l.pos+1+len("CACHE{"))

		case isDigit(ch) || (ch == '.' && isDigit(l.at(l.pos+1))):
			return l.lexNumber(start)

		case isIdentStart(ch) || isUnquotedChar(ch):
			return l.lexUnquoted(start)

		default:
			l.pos++
			return Token{Kind: Invalid, Location: l.loc(start), RawText: string(ch)},
				&Error{Msg: "unexpected character " + strconv.QuoteRune(rune(ch)), Loc: l.loc(start)}
		}
	}
}

func hasPrefixAt(s string, i int, prefix string) bool {
	if i < 0 || i+len(prefix) > len(s) {
		return false
	}
	return s[i:i+len(prefix)] == prefix
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isUnquotedChar reports whether c may appear as the first character of an
// unquoted argument that is not an identifier-looking token, e.g. a bare
// path fragment like "-DFOO=1" or "/usr/include".
func isUnquotedChar(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '(', ')', ';', '"', '#', 0:
		return false
	default:
		return true
	}
}

// scanBracketOpen checks whether s[i:] begins a bracket-argument opener
// "[=*[": a '[' , zero or more '=', then '['. It returns the equals count
// and whether the pattern matched at all.
func scanBracketOpen(s string, i int) (int, bool) {
	if i >= len(s) || s[i] != '[' {
		return 0, false
	}
	j := i + 1
	eq := 0
	for j < len(s) && s[j] == '=' {
		eq++
		j++
	}
	if j < len(s) && s[j] == '[' {
		return eq, true
	}
	return 0, false
}

// lexBracket scans a bracket argument or bracket comment starting at
// start, where start..start+1+eq+1 is the opener "[=*[" (for a bracket
// argument) or "#[=*[" when kind is BracketComment (the caller has already
// located the opener after the '#'). Content runs until a matching
// "]=*]" with the same equals count.
func (l *Lexer) lexBracket(start, eq int, kind Kind) (Token, error) {
	c := l.content()
	openerLen := 1 + eq + 1 // '[' + '='*eq + '['
	var openStart int
	if kind == BracketComment {
		openStart = start + 1 // skip the '#'
	} else {
		openStart = start
	}
	contentStart := openStart + openerLen

	closer := "]" + strings.Repeat("=", eq) + "]"
	idx := strings.Index(c[contentStart:], closer)
	if idx < 0 {
		l.pos = len(c)
		return Token{Kind: Invalid, Location: l.loc(start)},
			&Error{Msg: "unterminated bracket " + bracketNoun(kind), Loc: l.loc(start)}
	}
	contentEnd := contentStart + idx
	end := contentEnd + len(closer)
	l.pos = end

	return Token{
		Kind:     kind,
		ValueKind: StringValue,
		Str:       c[contentStart:contentEnd],
		Quoted:    false,
		Location:  l.loc(start),
		RawText:   c[start:end],
	}, nil
}

func bracketNoun(k Kind) string {
	if k == BracketComment {
		return "comment"
	}
	return "argument"
}

func (l *Lexer) lexQuotedString(start int) (Token, error) {
	c := l.content()
	i := start + 1 // skip opening quote
	var sb strings.Builder
	for {
		if i >= len(c) {
			l.pos = i
			return Token{Kind: Invalid, Location: l.loc(start)},
				&Error{Msg: "unterminated string literal", Loc: l.loc(start)}
		}
		ch := c[i]
		if ch == '"' {
			i++
			break
		}
		if ch == '\\' {
			next := byte(0)
			if i+1 < len(c) {
				next = c[i+1]
			}
			switch next {
			case 'n':
				sb.WriteByte('\n')
				i += 2
			case 't':
				sb.WriteByte('\t')
				i += 2
			case 'r':
				sb.WriteByte('\r')
				i += 2
			case '\\':
				sb.WriteByte('\\')
				i += 2
			case '"':
				sb.WriteByte('"')
				i += 2
			case '$':
				sb.WriteByte('$')
				i += 2
			case ';':
				sb.WriteByte(';')
				i += 2
			default:
				// Unknown escape: preserve both characters verbatim.
				sb.WriteByte('\\')
				i++
				if i < len(c) {
					sb.WriteByte(c[i])
					i++
				}
			}
			continue
		}
		sb.WriteByte(ch)
		i++
	}
	l.pos = i
	return Token{
		Kind:      String,
		ValueKind: StringValue,
		Str:       sb.String(),
		Quoted:    true,
		Location:  l.loc(start),
		RawText:   c[start:i],
	}, nil
}

func (l *Lexer) lexVariable(start int, scope VarScope, nameStart int) (Token, error) {
	c := l.content()
	i := nameStart
	for i < len(c) && c[i] != '}' {
		i++
	}
	if i >= len(c) {
		l.pos = i
		return Token{Kind: Invalid, Location: l.loc(start)},
			&Error{Msg: "unterminated variable reference", Loc: l.loc(start)}
	}
	name := c[nameStart:i]
	i++ // consume '}'
	l.pos = i
	return Token{
		Kind:      Variable,
		ValueKind: StringValue,
		Str:       name,
		VarScope:  scope,
		Location:  l.loc(start),
		RawText:   c[start:i],
	}, nil
}

func (l *Lexer) lexGeneratorExpr(start int) (Token, error) {
	c := l.content()
	i := start + 2 // skip "$<"
	depth := 1
	for i < len(c) && depth > 0 {
		switch c[i] {
		case '<':
			depth++
		case '>':
			depth--
		}
		i++
	}
	if depth != 0 {
		l.pos = i
		return Token{Kind: Invalid, Location: l.loc(start)},
			&Error{Msg: "unterminated generator expression", Loc: l.loc(start)}
	}
	l.pos = i
	return Token{
		Kind:      GeneratorExpr,
		ValueKind: StringValue,
		Str:       c[start:i],
		Location:  l.loc(start),
		RawText:   c[start:i],
	}, nil
}

func (l *Lexer) lexNumber(start int) (Token, error) {
	c := l.content()
	i := start
	for i < len(c) && isDigit(c[i]) {
		i++
	}
	if i < len(c) && c[i] == '.' {
		i++
		for i < len(c) && isDigit(c[i]) {
			i++
		}
	}
	if i < len(c) && (c[i] == 'e' || c[i] == 'E') {
		j := i + 1
		if j < len(c) && (c[j] == '+' || c[j] == '-') {
			j++
		}
		if j < len(c) && isDigit(c[j]) {
			i = j
			for i < len(c) && isDigit(c[i]) {
				i++
			}
		}
	}
	l.pos = i
	text := c[start:i]
	num, _ := strconv.ParseFloat(text, 64)
	return Token{
		Kind:      Number,
		ValueKind: NumberValue,
		Num:       num,
		Location:  l.loc(start),
		RawText:   text,
	}, nil
}

// lexUnquoted scans a run of unquoted-argument text. Escapes \; \  \( \) \$
// \@ \\ \# insert the escaped character literally; \<newline> is a line
// continuation. The run stops at whitespace, parens, semicolon, quote,
// comment, or EOF. Embedded ${...} / $<...> text is kept verbatim here and
// stays inside the one unquoted StringLiteral the parser builds from this
// token; the evaluator expands ${...} references when it interpolates it.
func (l *Lexer) lexUnquoted(start int) (Token, error) {
	c := l.content()
	i := start
	var sb strings.Builder
	for i < len(c) {
		ch := c[i]
		if ch == '\\' {
			next := byte(0)
			if i+1 < len(c) {
				next = c[i+1]
			}
			if next == '\n' {
				i += 2
				continue
			}
			switch next {
			case ';', ' ', '(', ')', '$', '@', '\\', '#':
				sb.WriteByte(next)
				i += 2
				continue
			}
			sb.WriteByte(ch)
			i++
			continue
		}
		if !isUnquotedChar(ch) {
			break
		}
		sb.WriteByte(ch)
		i++
	}
	l.pos = i
	return Token{
		Kind:      Identifier,
		ValueKind: StringValue,
		Str:       sb.String(),
		Quoted:    false,
		Location:  l.loc(start),
		RawText:   c[start:i],
	}, nil
}
