package parser

import (
	"github.com/cmsl-lang/cmsl/pkg/ast"
	"github.com/cmsl-lang/cmsl/pkg/token"
)

// parseBlock implements `'{' stmt* '}'`. A statement that fails to parse is
// resynchronised at the next ';' or '}' (§4.2) rather than aborting the
// whole block.
func (p *Parser) parseBlock() *ast.Block {
	begin := p.expect(token.LBRACE)
	b := &ast.Block{}
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		before := p.pos
		s := p.parseStmt()
		if s != nil {
			b.Stmts = append(b.Stmts, s)
		} else {
			p.synchronize()
		}
		p.ensureProgress(before)
	}
	end := p.expect(token.RBRACE)
	b.Rng = token.Range{Begin: begin.Range.Begin, End: end.Range.End}
	return b
}

// parseStmt implements `stmt := return_stmt | if_else | while |
// variable_decl | expr_stmt`. A variable_decl is distinguished from an
// expr_stmt by lookahead: `type id` followed by '=', ';', where the first
// token names a builtin type, a known class/enum spelling pattern (an
// IDENT followed directly by another IDENT), or a generic `list<...>` —
// the parser accepts any `IDENT IDENT` or `builtin-type IDENT` pairing as
// the start of a declaration, matching the grammar's `type id` shape.
func (p *Parser) parseStmt() ast.Stmt {
	switch p.cur().Kind {
	case token.KW_RETURN:
		return p.parseReturnStmt()
	case token.KW_IF:
		return p.parseIfElse()
	case token.KW_WHILE:
		return p.parseWhile()
	case token.LBRACE:
		return p.parseBlock()
	}
	if p.looksLikeVariableDecl() {
		return p.parseVariableDecl()
	}
	return p.parseExprStmt()
}

// looksLikeVariableDecl reports whether the upcoming tokens spell `type id`:
// either a builtin-type keyword followed by an identifier, or an identifier
// (a class/enum name, possibly generic via `<...>`) followed eventually by
// a second identifier before the statement-ending '=' or ';'.
func (p *Parser) looksLikeVariableDecl() bool {
	if !p.cur().Kind.IsBuiltinType() && p.cur().Kind != token.IDENT {
		return false
	}
	if p.peek(1).Kind == token.IDENT {
		return true
	}
	if p.peek(1).Kind == token.LESS {
		// Scan past a balanced '<...>' to see if an identifier follows,
		// distinguishing `list<int> xs;` from a `<`-comparison expression
		// statement such as `a < b;`.
		depth := 0
		i := 1
		for {
			k := p.peek(i).Kind
			if k == token.EOF {
				return false
			}
			if k == token.LESS {
				depth++
			} else if k == token.GREATER {
				depth--
				if depth == 0 {
					return p.peek(i+1).Kind == token.IDENT
				}
			} else if k == token.SEMICOLON {
				return false
			}
			i++
		}
	}
	return false
}

func (p *Parser) parseVariableDecl() ast.Stmt {
	typ := p.parseType()
	name := p.expect(token.IDENT)
	v := &ast.VariableDecl{Type: typ, NameTok: name}
	if p.at(token.EQUAL) {
		p.advance()
		v.Initializer = p.parseExpr()
	}
	end := p.expect(token.SEMICOLON)
	v.Rng = token.Range{Begin: typ.Rng.Begin, End: end.Range.End}
	return v
}

func (p *Parser) parseExprStmt() ast.Stmt {
	x := p.parseExpr()
	end := p.expect(token.SEMICOLON)
	return &ast.ExprStmt{X: x, Rng: token.Range{Begin: x.Range().Begin, End: end.Range.End}}
}

func (p *Parser) parseReturnStmt() ast.Stmt {
	begin := p.advance() // 'return'
	r := &ast.ReturnStmt{Rng: begin.Range}
	if !p.at(token.SEMICOLON) {
		r.Value = p.parseExpr()
	}
	end := p.expect(token.SEMICOLON)
	r.Rng = token.Range{Begin: begin.Range.Begin, End: end.Range.End}
	return r
}

// parseIfElse implements `if (cond) block (else if (cond) block)* (else
// block)?`, folded into ast.IfElse's flat Branches + optional Else shape.
func (p *Parser) parseIfElse() ast.Stmt {
	begin := p.advance() // 'if'
	ie := &ast.IfElse{}
	ie.Branches = append(ie.Branches, p.parseIfBranch())
	end := ie.Branches[0].Body.Rng.End
	for p.at(token.KW_ELSE) && p.peek(1).Kind == token.KW_IF {
		p.advance() // 'else'
		p.advance() // 'if'
		br := p.parseIfBranch()
		ie.Branches = append(ie.Branches, br)
		end = br.Body.Rng.End
	}
	if p.at(token.KW_ELSE) {
		p.advance()
		ie.Else = p.parseBlock()
		end = ie.Else.Rng.End
	}
	ie.Rng = token.Range{Begin: begin.Range.Begin, End: end}
	return ie
}

func (p *Parser) parseIfBranch() ast.Branch {
	p.expect(token.LPAREN)
	cond := p.parseExpr()
	p.expect(token.RPAREN)
	body := p.parseBlock()
	return ast.Branch{Condition: cond, Body: body}
}

func (p *Parser) parseWhile() ast.Stmt {
	begin := p.advance() // 'while'
	p.expect(token.LPAREN)
	cond := p.parseExpr()
	p.expect(token.RPAREN)
	body := p.parseBlock()
	return &ast.While{Condition: cond, Body: body, Rng: token.Range{Begin: begin.Range.Begin, End: body.Rng.End}}
}
