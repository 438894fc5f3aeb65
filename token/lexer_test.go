package token

import (
	"testing"

	"github.com/finchbuild/finch/source"
)

func lexAll(t *testing.T, content string) []Token {
	t.Helper()
	buf := source.New("t.cmake", []byte(content))
	l := New(buf)
	var toks []Token
	for {
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("lex error: %v", err)
		}
		toks = append(toks, tok)
		if tok.Kind == Eof {
			return toks
		}
	}
}

func kinds(toks []Token) []Kind {
	ks := make([]Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestLexSimpleCommand(t *testing.T) {
	toks := lexAll(t, `add_library(foo STATIC a.cpp)`)
	want := []Kind{Identifier, LeftParen, Identifier, Whitespace, Identifier, Whitespace, Identifier, RightParen, Eof}
	// Whitespace is never emitted by the lexer (rule 1 silently skips it).
	want = []Kind{Identifier, LeftParen, Identifier, Identifier, Identifier, RightParen, Eof}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexQuotedStringEscapes(t *testing.T) {
	toks := lexAll(t, `"a\nb\tc\\d\"e\$f\;g\qh"`)
	if toks[0].Kind != String {
		t.Fatalf("kind = %v, want String", toks[0].Kind)
	}
	want := "a\nb\tc\\d\"e$f;g\\qh"
	if toks[0].Str != want {
		t.Errorf("Str = %q, want %q", toks[0].Str, want)
	}
}

func TestLexUnterminatedString(t *testing.T) {
	buf := source.New("t.cmake", []byte(`"abc`))
	l := New(buf)
	_, err := l.Next()
	if err == nil {
		t.Fatal("expected unterminated string error")
	}
}

func TestLexBracketArgument(t *testing.T) {
	toks := lexAll(t, `[==[hello ]] world]==]`)
	if toks[0].Kind != String {
		t.Fatalf("kind = %v, want String", toks[0].Kind)
	}
	if toks[0].Str != "hello ]] world" {
		t.Errorf("Str = %q", toks[0].Str)
	}
}

func TestLexBracketComment(t *testing.T) {
	toks := lexAll(t, "#[=[ a comment ]=]\nset(a 1)")
	if toks[0].Kind != BracketComment {
		t.Fatalf("kind = %v, want BracketComment", toks[0].Kind)
	}
	if toks[0].Str != " a comment " {
		t.Errorf("Str = %q", toks[0].Str)
	}
}

func TestLexLineCommentSkipped(t *testing.T) {
	toks := lexAll(t, "# a comment\nset(a 1)")
	if toks[0].Kind != Newline {
		t.Fatalf("first kind = %v, want Newline (comment should be swallowed)", toks[0].Kind)
	}
}

func TestLexVariableScopes(t *testing.T) {
	toks := lexAll(t, `${FOO} $ENV{BAR} $CACHE{BAZ}`)
	if toks[0].VarScope != ScopeNormal || toks[0].Str != "FOO" {
		t.Errorf("got %+v", toks[0])
	}
	if toks[1].VarScope != ScopeEnv || toks[1].Str != "BAR" {
		t.Errorf("got %+v", toks[1])
	}
	if toks[2].VarScope != ScopeCache || toks[2].Str != "BAZ" {
		t.Errorf("got %+v", toks[2])
	}
}

func TestLexGeneratorExpression(t *testing.T) {
	toks := lexAll(t, `$<CONFIG:Debug>`)
	if toks[0].Kind != GeneratorExpr {
		t.Fatalf("kind = %v, want GeneratorExpr", toks[0].Kind)
	}
	if toks[0].Str != "$<CONFIG:Debug>" {
		t.Errorf("Str = %q", toks[0].Str)
	}
}

func TestLexNumber(t *testing.T) {
	toks := lexAll(t, `3.14`)
	if toks[0].Kind != Number {
		t.Fatalf("kind = %v, want Number", toks[0].Kind)
	}
	if toks[0].Num != 3.14 {
		t.Errorf("Num = %v", toks[0].Num)
	}
}

func TestRawTextMatchesSource(t *testing.T) {
	content := `add_executable(app main.cpp)`
	buf := source.New("t.cmake", []byte(content))
	l := New(buf)
	for {
		tok, err := l.Next()
		if err != nil {
			t.Fatal(err)
		}
		if tok.Kind == Eof {
			break
		}
		got := buf.Slice(tok.Location.Offset, tok.Location.Offset+len(tok.RawText))
		if got != tok.RawText {
			t.Errorf("token %+v: source slice %q != RawText %q", tok, got, tok.RawText)
		}
	}
}
