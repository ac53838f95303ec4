package token

import "testing"

func TestPositionString(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
		want string
	}{
		{"simple", Position{Line: 1, Column: 5}, "1:5"},
		{"larger numbers", Position{Line: 123, Column: 456}, "123:456"},
		{"zero", Position{}, "0:0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.String(); got != tt.want {
				t.Errorf("Position.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPositionIsValid(t *testing.T) {
	if (Position{}).IsValid() {
		t.Error("zero Position should not be valid")
	}
	if !(Position{Line: 1, Column: 1}).IsValid() {
		t.Error("Position{1,1} should be valid")
	}
}

func TestLookupIdent(t *testing.T) {
	cases := map[string]Kind{
		"if":      KW_IF,
		"class":   KW_CLASS,
		"int":     KW_INT,
		"list":    KW_LIST,
		"myVar":   IDENT,
		"Project": IDENT, // case-sensitive, unlike the DWScript-style teacher
	}
	for lexeme, want := range cases {
		if got := LookupIdent(lexeme); got != want {
			t.Errorf("LookupIdent(%q) = %s, want %s", lexeme, got, want)
		}
	}
}

func TestKindPredicates(t *testing.T) {
	if !INT.IsLiteral() {
		t.Error("INT should be a literal kind")
	}
	if !KW_WHILE.IsKeyword() {
		t.Error("KW_WHILE should be a keyword kind")
	}
	if !KW_LIST.IsBuiltinType() {
		t.Error("KW_LIST should be a builtin type kind")
	}
	if KW_LIST.IsKeyword() {
		t.Error("KW_LIST should not double as a control-flow keyword")
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Kind: IDENT, Lexeme: "foo", Range: Range{Begin: Position{Line: 2, Column: 3}}}
	want := "IDENT 'foo' @2:3"
	if got := tok.String(); got != want {
		t.Errorf("Token.String() = %q, want %q", got, want)
	}
}
