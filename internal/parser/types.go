package parser

import (
	"github.com/cmsl-lang/cmsl/pkg/ast"
	"github.com/cmsl-lang/cmsl/pkg/token"
)

// parseType implements `type := id ('<' type (',' type)* '>')?`, plus the
// trailing '&' the grammar's §4.5 implicit-reference notes assume but §4.2
// doesn't spell literally — a reference marker is legal wherever a type is,
// e.g. a function parameter declared `int& out`.
func (p *Parser) parseType() ast.TypeRepresentation {
	var name token.Token
	if p.at(token.IDENT) || p.cur().Kind.IsBuiltinType() {
		name = p.advance()
	} else {
		p.errorf(p.cur().Range, "expected a type name, found %s %q", p.cur().Kind, p.cur().Lexeme)
		name = p.cur()
	}
	tr := ast.TypeRepresentation{Tokens: []token.Token{name}, Rng: name.Range}
	if p.at(token.LESS) {
		p.advance()
		tr.Nested = append(tr.Nested, p.parseType())
		for p.at(token.COMMA) {
			p.advance()
			tr.Nested = append(tr.Nested, p.parseType())
		}
		end := p.expect(token.GREATER)
		tr.Rng.End = end.Range.End
	}
	if p.at(token.AMP_AMP) {
		// lexer emits '&&' for two consecutive '&'; a lone reference marker
		// always lexes as AMP, handled below. AMP_AMP here would be a
		// malformed `T&&`, which CMSL has no use for.
		p.errorf(p.cur().Range, "unexpected '&&' in type position")
	}
	if p.at(token.AMP) {
		ref := p.advance()
		tr.Reference = true
		tr.Rng.End = ref.Range.End
	}
	return tr
}
