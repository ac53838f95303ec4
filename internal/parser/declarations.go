package parser

import (
	"github.com/cmsl-lang/cmsl/pkg/ast"
	"github.com/cmsl-lang/cmsl/pkg/token"
)

// parseDecl implements one iteration of `translation_unit := (class_decl |
// enum_decl | function_decl)*`. It never returns nil: on a malformed
// declaration the sub-parser reports a diagnostic and still returns a
// (possibly partial) node.
func (p *Parser) parseDecl() ast.Decl {
	switch p.cur().Kind {
	case token.KW_CLASS:
		return p.parseClassDecl()
	case token.KW_ENUM:
		return p.parseEnumDecl()
	default:
		return p.parseFunctionDecl()
	}
}

// parseClassDecl implements `'class' id '{' member* '}' ';'`, splitting
// each member into a Field or a Method by whether a '(' follows the name.
func (p *Parser) parseClassDecl() ast.Decl {
	begin := p.advance() // 'class'
	name := p.expect(token.IDENT)
	p.expect(token.LBRACE)

	c := &ast.ClassDecl{NameTok: name}
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		before := p.pos
		typ := p.parseType()
		memberName := p.expect(token.IDENT)
		if p.at(token.LPAREN) {
			c.Methods = append(c.Methods, p.finishFunctionDecl(typ, memberName))
			p.ensureProgress(before)
			continue
		}
		p.expect(token.SEMICOLON)
		c.Fields = append(c.Fields, ast.Field{Type: typ, Name: memberName})
		p.ensureProgress(before)
	}
	end := p.expect(token.RBRACE)
	p.expect(token.SEMICOLON)
	c.Rng = token.Range{Begin: begin.Range.Begin, End: end.Range.End}
	return c
}

// parseEnumDecl implements `'enum' id '{' enum_case (',' enum_case)* '}' ';'`
// where `enum_case := id ('=' expr)?` (§3's [EXPANSION]).
func (p *Parser) parseEnumDecl() ast.Decl {
	begin := p.advance() // 'enum'
	name := p.expect(token.IDENT)
	p.expect(token.LBRACE)

	e := &ast.EnumDecl{NameTok: name}
	if !p.at(token.RBRACE) {
		e.Cases = append(e.Cases, p.parseEnumCase())
		for p.at(token.COMMA) {
			p.advance()
			e.Cases = append(e.Cases, p.parseEnumCase())
		}
	}
	end := p.expect(token.RBRACE)
	p.expect(token.SEMICOLON)
	e.Rng = token.Range{Begin: begin.Range.Begin, End: end.Range.End}
	return e
}

func (p *Parser) parseEnumCase() ast.EnumCase {
	name := p.expect(token.IDENT)
	c := ast.EnumCase{NameTok: name}
	if p.at(token.EQUAL) {
		p.advance()
		c.Initializer = p.parseExpr()
	}
	return c
}

// parseFunctionDecl implements `type id '(' params? ')' block` for
// top-level free functions.
func (p *Parser) parseFunctionDecl() ast.Decl {
	typ := p.parseType()
	name := p.expect(token.IDENT)
	return p.finishFunctionDecl(typ, name)
}

// finishFunctionDecl parses the `'(' params? ')' block` suffix shared by
// free functions and class methods, given the already-parsed return type
// and name.
func (p *Parser) finishFunctionDecl(returnType ast.TypeRepresentation, name token.Token) *ast.FunctionDecl {
	p.expect(token.LPAREN)
	var params []ast.Param
	if !p.at(token.RPAREN) {
		params = append(params, p.parseParam())
		for p.at(token.COMMA) {
			p.advance()
			params = append(params, p.parseParam())
		}
	}
	p.expect(token.RPAREN)
	body := p.parseBlock()
	return &ast.FunctionDecl{
		NameTok:    name,
		ReturnType: returnType,
		Params:     params,
		Body:       body,
		Rng:        token.Range{Begin: returnType.Rng.Begin, End: body.Rng.End},
	}
}

func (p *Parser) parseParam() ast.Param {
	typ := p.parseType()
	name := p.expect(token.IDENT)
	return ast.Param{Type: typ, Name: name}
}
