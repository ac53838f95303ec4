package token

// Kind identifies the lexical category of a Token. The set is fixed and
// finite: punctuators, operators, keywords, builtin type names, literals,
// identifiers, and the UNDEF sentinel.
type Kind int

// Token kind constants, grouped the way the lexer recognises them.
const (
	UNDEF Kind = iota // sentinel; never returned from lexing
	EOF
	ILLEGAL

	literalBegin
	IDENT
	INT
	DOUBLE
	STRING
	literalEnd

	keywordBegin
	KW_IF
	KW_ELSE
	KW_WHILE
	KW_RETURN
	KW_CLASS
	KW_ENUM
	KW_TRUE
	KW_FALSE
	keywordEnd

	builtinTypeBegin
	KW_BOOL
	KW_INT
	KW_DOUBLE
	KW_STRING
	KW_LIST
	KW_VERSION
	KW_PROJECT
	KW_LIBRARY
	KW_EXECUTABLE
	KW_VOID
	builtinTypeEnd

	// Delimiters
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET
	SEMICOLON
	COMMA
	DOT
	COLON
	LESS
	GREATER

	// Arithmetic operators
	PLUS
	MINUS
	STAR
	SLASH
	PLUS_EQUAL
	MINUS_EQUAL
	STAR_EQUAL
	SLASH_EQUAL

	// Assignment / comparison / logical
	EQUAL
	EQUAL_EQUAL
	NOT_EQUAL
	LESS_EQUAL
	GREATER_EQUAL
	PIPE
	PIPE_PIPE
	AMP
	AMP_AMP
	BANG
)

var kindStrings = [...]string{
	UNDEF:         "UNDEF",
	EOF:           "EOF",
	ILLEGAL:       "ILLEGAL",
	IDENT:         "IDENT",
	INT:           "INT",
	DOUBLE:        "DOUBLE",
	STRING:        "STRING",
	KW_IF:         "if",
	KW_ELSE:       "else",
	KW_WHILE:      "while",
	KW_RETURN:     "return",
	KW_CLASS:      "class",
	KW_ENUM:       "enum",
	KW_TRUE:       "true",
	KW_FALSE:      "false",
	KW_BOOL:       "bool",
	KW_INT:        "int",
	KW_DOUBLE:     "double",
	KW_STRING:     "string",
	KW_LIST:       "list",
	KW_VERSION:    "version",
	KW_PROJECT:    "project",
	KW_LIBRARY:    "library",
	KW_EXECUTABLE: "executable",
	KW_VOID:       "void",
	LPAREN:        "(",
	RPAREN:        ")",
	LBRACE:        "{",
	RBRACE:        "}",
	LBRACKET:      "[",
	RBRACKET:      "]",
	SEMICOLON:     ";",
	COMMA:         ",",
	DOT:           ".",
	COLON:         ":",
	LESS:          "<",
	GREATER:       ">",
	PLUS:          "+",
	MINUS:         "-",
	STAR:          "*",
	SLASH:         "/",
	PLUS_EQUAL:    "+=",
	MINUS_EQUAL:   "-=",
	STAR_EQUAL:    "*=",
	SLASH_EQUAL:   "/=",
	EQUAL:         "=",
	EQUAL_EQUAL:   "==",
	NOT_EQUAL:     "!=",
	LESS_EQUAL:    "<=",
	GREATER_EQUAL: ">=",
	PIPE:          "|",
	PIPE_PIPE:     "||",
	AMP:           "&",
	AMP_AMP:       "&&",
	BANG:          "!",
}

// String returns the canonical spelling (for operators/keywords) or the
// category name (for literals and sentinels).
func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindStrings) && kindStrings[k] != "" {
		return kindStrings[k]
	}
	return "UNKNOWN"
}

// IsLiteral reports whether k is one of the literal token categories.
func (k Kind) IsLiteral() bool { return k > literalBegin && k < literalEnd }

// IsKeyword reports whether k is a control-flow or declaration keyword.
func (k Kind) IsKeyword() bool { return k > keywordBegin && k < keywordEnd }

// IsBuiltinType reports whether k names one of the builtin fundamental or
// build-domain types.
func (k Kind) IsBuiltinType() bool { return k > builtinTypeBegin && k < builtinTypeEnd }

// keywords maps the exact source spelling to its Kind, used by the lexer to
// classify an identifier-shaped lexeme.
var keywords = map[string]Kind{
	"if":         KW_IF,
	"else":       KW_ELSE,
	"while":      KW_WHILE,
	"return":     KW_RETURN,
	"class":      KW_CLASS,
	"enum":       KW_ENUM,
	"true":       KW_TRUE,
	"false":      KW_FALSE,
	"bool":       KW_BOOL,
	"int":        KW_INT,
	"double":     KW_DOUBLE,
	"string":     KW_STRING,
	"list":       KW_LIST,
	"version":    KW_VERSION,
	"project":    KW_PROJECT,
	"library":    KW_LIBRARY,
	"executable": KW_EXECUTABLE,
	"void":       KW_VOID,
}

// LookupIdent classifies a lexeme matching the identifier grammar as either
// a specific keyword/builtin-type Kind or the generic IDENT kind.
func LookupIdent(lexeme string) Kind {
	if kind, ok := keywords[lexeme]; ok {
		return kind
	}
	return IDENT
}

// Token is the unit produced by the lexer and carried into the AST: a kind,
// the source range it occupies, and a view into the original buffer (never a
// copy, matching the original's source_view design).
type Token struct {
	Kind   Kind
	Range  Range
	Lexeme string
}

// Pos returns the token's starting position, the most common access pattern
// for diagnostics.
func (t Token) Pos() Position { return t.Range.Begin }

// String renders the token for debug output: "<kind> 'lexeme' @pos".
func (t Token) String() string {
	return t.Kind.String() + " '" + t.Lexeme + "' @" + t.Pos().String()
}

// StringValue returns the decoded content of a STRING token (quotes
// stripped). Lexeme stores the raw source slice per the lexeme_view
// contract of §3; this is the view callers that want the value use instead.
func (t Token) StringValue() string {
	if t.Kind != STRING || len(t.Lexeme) < 2 {
		return t.Lexeme
	}
	return t.Lexeme[1 : len(t.Lexeme)-1]
}
