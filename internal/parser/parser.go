// Package parser implements CMSL's recursive-descent parser: a hand-written
// Pratt parser for expressions (grounded on the teacher's precedence-table
// and prefix/infix-function-map design in
// internal/parser/parser.go) layered under straightforward recursive
// descent for declarations and statements. On error it reports through the
// diag.Observer and resynchronises at the next ';' or '}' (§4.2) rather
// than aborting the parse.
package parser

import (
	"fmt"
	"strconv"

	"github.com/cmsl-lang/cmsl/internal/diag"
	"github.com/cmsl-lang/cmsl/pkg/ast"
	"github.com/cmsl-lang/cmsl/pkg/token"
)

// Precedence levels, lowest to highest, mirroring the grammar's layering
// in §4.2 (assignment is right-associative and binds loosest; postfix
// binds tightest).
const (
	_ int = iota
	lowest
	assignPrec
	orPrec
	andPrec
	equalityPrec
	relationalPrec
	addPrec
	mulPrec
	unaryPrec
	postfixPrec
)

var precedences = map[token.Kind]int{
	token.EQUAL:         assignPrec,
	token.PIPE_PIPE:     orPrec,
	token.AMP_AMP:       andPrec,
	token.EQUAL_EQUAL:   equalityPrec,
	token.NOT_EQUAL:     equalityPrec,
	token.LESS:          relationalPrec,
	token.LESS_EQUAL:    relationalPrec,
	token.GREATER:       relationalPrec,
	token.GREATER_EQUAL: relationalPrec,
	token.PLUS:          addPrec,
	token.MINUS:         addPrec,
	token.PLUS_EQUAL:    addPrec,
	token.MINUS_EQUAL:   addPrec,
	token.STAR:          mulPrec,
	token.SLASH:         mulPrec,
	token.STAR_EQUAL:    mulPrec,
	token.SLASH_EQUAL:   mulPrec,
	token.LPAREN:        postfixPrec,
	token.LBRACKET:      postfixPrec,
	token.DOT:           postfixPrec,
}

type prefixParseFn func() ast.Expr
type infixParseFn func(left ast.Expr) ast.Expr

// Parser consumes a pre-lexed token slice (the lexer's Tokenize output) and
// produces an ast.TranslationUnit. Token buffering up front keeps
// backtracking trivial: the parser only ever needs to save/restore an
// integer index.
type Parser struct {
	toks     []token.Token
	pos      int
	observer diag.Observer

	prefixFns map[token.Kind]prefixParseFn
	infixFns  map[token.Kind]infixParseFn
}

// New builds a Parser over toks (typically the full output of
// lexer.Tokenize, always EOF-terminated).
func New(toks []token.Token, observer diag.Observer) *Parser {
	p := &Parser{toks: toks, observer: observer}
	p.prefixFns = map[token.Kind]prefixParseFn{
		token.IDENT:    p.parseIdentifierOrCall,
		token.INT:      p.parseIntLiteral,
		token.DOUBLE:   p.parseDoubleLiteral,
		token.STRING:   p.parseStringLiteral,
		token.KW_TRUE:  p.parseBoolLiteral,
		token.KW_FALSE: p.parseBoolLiteral,
		token.LPAREN:   p.parseParenExpr,
		token.LBRACE:   p.parseInitializerList,
		token.MINUS:    p.parseUnary,
		token.BANG:     p.parseUnary,
	}
	// Builtin type names also start constructor calls: `int(x)`, `project("app")`.
	for k := token.KW_BOOL; k <= token.KW_VOID; k++ {
		p.prefixFns[k] = p.parseIdentifierOrCall
	}
	p.infixFns = map[token.Kind]infixParseFn{
		token.EQUAL:         p.parseBinary,
		token.PIPE_PIPE:     p.parseBinary,
		token.AMP_AMP:       p.parseBinary,
		token.EQUAL_EQUAL:   p.parseBinary,
		token.NOT_EQUAL:     p.parseBinary,
		token.LESS:          p.parseBinary,
		token.LESS_EQUAL:    p.parseBinary,
		token.GREATER:       p.parseBinary,
		token.GREATER_EQUAL: p.parseBinary,
		token.PLUS:          p.parseBinary,
		token.MINUS:         p.parseBinary,
		token.PLUS_EQUAL:    p.parseBinary,
		token.MINUS_EQUAL:   p.parseBinary,
		token.STAR:          p.parseBinary,
		token.SLASH:         p.parseBinary,
		token.STAR_EQUAL:    p.parseBinary,
		token.SLASH_EQUAL:   p.parseBinary,
		token.DOT:           p.parseMemberOrMethodCall,
		token.LBRACKET:      p.parseIndex,
	}
	return p
}

// cur returns the token at the current position without consuming it.
func (p *Parser) cur() token.Token {
	if p.pos >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF
	}
	return p.toks[p.pos]
}

func (p *Parser) peek(n int) token.Token {
	idx := p.pos + n
	if idx >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[idx]
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) at(k token.Kind) bool { return p.cur().Kind == k }

// expect consumes the current token if it has kind k, else reports a parse
// diagnostic and returns the (wrong) current token without advancing, so
// callers can keep building a partial node for recovery.
func (p *Parser) expect(k token.Kind) token.Token {
	if p.at(k) {
		return p.advance()
	}
	p.errorf(p.cur().Range, "expected %s, found %s %q", k, p.cur().Kind, p.cur().Lexeme)
	return p.cur()
}

func (p *Parser) errorf(rng token.Range, format string, args ...any) {
	p.observer.NotifyError(diag.NewParseError(rng, fmt.Sprintf(format, args...)))
}

// synchronize discards tokens up to and including the next ';', or up to
// (but not including) the next '}', or to EOF, per §4.2's
// resynchronisation rule, so one malformed statement
// doesn't cascade into spurious follow-on errors.
func (p *Parser) synchronize() {
	for !p.at(token.EOF) {
		if p.at(token.SEMICOLON) {
			p.advance()
			return
		}
		if p.at(token.RBRACE) {
			return
		}
		p.advance()
	}
}

// Parse runs the full translation_unit production and returns the AST
// regardless of whether diagnostics were reported; callers check the
// diag.Collector's fatal flag before proceeding to semantic analysis.
func (p *Parser) Parse() *ast.TranslationUnit {
	tu := &ast.TranslationUnit{}
	for !p.at(token.EOF) {
		before := p.pos
		d := p.parseDecl()
		if d != nil {
			tu.Decls = append(tu.Decls, d)
		}
		p.ensureProgress(before)
	}
	return tu
}

// ensureProgress forces the cursor forward by one token if a parse step
// consumed nothing, which otherwise wedges the enclosing loop forever on a
// token no production accepts.
func (p *Parser) ensureProgress(before int) {
	if p.pos == before && !p.at(token.EOF) {
		p.advance()
	}
}

func (p *Parser) parseIntLiteral() ast.Expr {
	t := p.advance()
	v, err := strconv.ParseInt(t.Lexeme, 10, 64)
	if err != nil {
		p.errorf(t.Range, "invalid integer literal %q", t.Lexeme)
	}
	return &ast.IntLiteral{Tok: t, Value: v}
}

func (p *Parser) parseDoubleLiteral() ast.Expr {
	t := p.advance()
	v, err := strconv.ParseFloat(t.Lexeme, 64)
	if err != nil {
		p.errorf(t.Range, "invalid double literal %q", t.Lexeme)
	}
	return &ast.DoubleLiteral{Tok: t, Value: v}
}

func (p *Parser) parseStringLiteral() ast.Expr {
	t := p.advance()
	return &ast.StringLiteral{Tok: t, Value: t.StringValue()}
}

func (p *Parser) parseBoolLiteral() ast.Expr {
	t := p.advance()
	return &ast.BoolLiteral{Tok: t, Value: t.Kind == token.KW_TRUE}
}
