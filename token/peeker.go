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

// Peeker wraps a Lexer with a buffer of already-scanned tokens so a parser
// can look arbitrarily far ahead without losing its place. Errors
// encountered while filling the lookahead buffer are remembered and
// replayed once the offending token is actually consumed.
type Peeker struct {
	lex  *Lexer
	buf  []Token
	errs []error
}

// NewPeeker returns a Peeker reading from lex.
func NewPeeker(lex *Lexer) *Peeker {
	return &Peeker{lex: lex}
}

func (p *Peeker) fill(n int) {
	for len(p.buf) <= n {
		tok, err := p.lex.Next()
		p.buf = append(p.buf, tok)
		p.errs = append(p.errs, err)
		if tok.Kind == Eof {
			break
		}
	}
}

// Peek returns the token n positions ahead of the current one (Peek(0) is
// the next token to be consumed by Next).
func (p *Peeker) Peek(n int) Token {
	p.fill(n)
	if n >= len(p.buf) {
		return p.buf[len(p.buf)-1] // Eof
	}
	return p.buf[n]
}

// PeekError returns the lexical error, if any, associated with Peek(n).
func (p *Peeker) PeekError(n int) error {
	p.fill(n)
	if n >= len(p.errs) {
		return nil
	}
	return p.errs[n]
}

// Next consumes and returns the next token along with any lexical error
// produced while scanning it.
func (p *Peeker) Next() (Token, error) {
	p.fill(0)
	tok := p.buf[0]
	err := p.errs[0]
	if tok.Kind != Eof {
		p.buf = p.buf[1:]
		p.errs = p.errs[1:]
	}
	return tok, err
}

// Mark captures a position that Reset can later rewind to, allowing
// speculative parsing with backtracking.
type Mark struct {
	bufLen int
	pos    int
	buf    []Token
	errs   []error
}

// Save returns a Mark representing the Peeker's current lookahead state.
func (p *Peeker) Save() Mark {
	bufCopy := make([]Token, len(p.buf))
	copy(bufCopy, p.buf)
	errCopy := make([]error, len(p.errs))
	copy(errCopy, p.errs)
	return Mark{bufLen: len(p.buf), pos: p.lex.Pos(), buf: bufCopy, errs: errCopy}
}

// Restore rewinds the Peeker to a previously Saved Mark.
func (p *Peeker) Restore(m Mark) {
	p.buf = m.buf
	p.errs = m.errs
	p.lex.Seek(m.pos)
}
