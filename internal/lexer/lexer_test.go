package lexer

import (
	"testing"

	"github.com/cmsl-lang/cmsl/internal/diag"
	"github.com/cmsl-lang/cmsl/pkg/token"
)

func tokenize(t *testing.T, input string) ([]token.Token, *diag.Collector) {
	t.Helper()
	c := diag.NewCollector()
	toks := New(input, c).Tokenize()
	return toks, c
}

func TestLexerKeywordsAndIdentifiers(t *testing.T) {
	toks, c := tokenize(t, "class Foo { int bar; }")
	if len(c.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", c.Diagnostics)
	}
	want := []token.Kind{
		token.KW_CLASS, token.IDENT, token.LBRACE,
		token.KW_INT, token.IDENT, token.SEMICOLON, token.RBRACE, token.EOF,
	}
	assertKinds(t, toks, want)
}

func TestLexerLiterals(t *testing.T) {
	toks, c := tokenize(t, `42 3.5 "hi there" true false`)
	if len(c.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", c.Diagnostics)
	}
	want := []token.Kind{token.INT, token.DOUBLE, token.STRING, token.KW_TRUE, token.KW_FALSE, token.EOF}
	assertKinds(t, toks, want)
	if got := toks[2].StringValue(); got != "hi there" {
		t.Errorf("string value = %q, want %q", got, "hi there")
	}
	if toks[2].Lexeme != `"hi there"` {
		t.Errorf("string lexeme = %q, want %q", toks[2].Lexeme, `"hi there"`)
	}
}

func TestLexerOperators(t *testing.T) {
	toks, _ := tokenize(t, "+ += - -= * *= / /= = == != < <= > >= | || & &&")
	want := []token.Kind{
		token.PLUS, token.PLUS_EQUAL, token.MINUS, token.MINUS_EQUAL,
		token.STAR, token.STAR_EQUAL, token.SLASH, token.SLASH_EQUAL,
		token.EQUAL, token.EQUAL_EQUAL, token.NOT_EQUAL,
		token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL,
		token.PIPE, token.PIPE_PIPE, token.AMP, token.AMP_AMP, token.EOF,
	}
	assertKinds(t, toks, want)
}

func TestLexerUnterminatedString(t *testing.T) {
	_, c := tokenize(t, `"unterminated`)
	if len(c.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(c.Diagnostics))
	}
	if c.Diagnostics[0].Category != diag.CategoryLex {
		t.Errorf("category = %s, want lex", c.Diagnostics[0].Category)
	}
}

func TestLexerIllegalByte(t *testing.T) {
	_, c := tokenize(t, "int x = `;")
	if len(c.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(c.Diagnostics))
	}
}

func TestLexerCommentsAreSkipped(t *testing.T) {
	toks, c := tokenize(t, "int x; // trailing comment\n/* block\ncomment */ int y;")
	if len(c.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", c.Diagnostics)
	}
	want := []token.Kind{
		token.KW_INT, token.IDENT, token.SEMICOLON,
		token.KW_INT, token.IDENT, token.SEMICOLON, token.EOF,
	}
	assertKinds(t, toks, want)
}

func TestLexerNoTokenGaps(t *testing.T) {
	// Concatenating token ranges back to back (ignoring the implied
	// whitespace gaps) must never overlap or regress in line order.
	toks, _ := tokenize(t, "int x = 1 + 2;")
	for i := 1; i < len(toks); i++ {
		prev, cur := toks[i-1], toks[i]
		if cur.Range.Begin.Offset < prev.Range.End.Offset {
			t.Fatalf("token %d begins before token %d ends", i, i-1)
		}
	}
}

func assertKinds(t *testing.T, toks []token.Token, want []token.Kind) {
	t.Helper()
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, tok := range toks {
		if tok.Kind != want[i] {
			t.Errorf("token %d: kind = %s, want %s", i, tok.Kind, want[i])
		}
	}
}
