package parser

import (
	"github.com/cmsl-lang/cmsl/pkg/ast"
	"github.com/cmsl-lang/cmsl/pkg/token"
)

// parseExpression is the Pratt loop: parse one prefix operand, then fold in
// infix operators whose precedence is >= minPrec, left to right — except
// assignPrec, which the grammar defines as right-associative
// (`assignment := orelse ('=' assignment)?`), handled below by recursing
// into the same precedence rather than the next one up.
func (p *Parser) parseExpression(minPrec int) ast.Expr {
	prefix, ok := p.prefixFns[p.cur().Kind]
	if !ok {
		p.errorf(p.cur().Range, "unexpected token %s %q in expression", p.cur().Kind, p.cur().Lexeme)
		p.advance()
		return &ast.StringLiteral{} // placeholder so the caller has a non-nil node to recover with
	}
	left := prefix()

	for {
		prec, ok := precedences[p.cur().Kind]
		if !ok || prec < minPrec {
			break
		}
		infix := p.infixFns[p.cur().Kind]
		if infix == nil {
			break
		}
		left = infix(left)
	}
	return left
}

func (p *Parser) parseExpr() ast.Expr { return p.parseExpression(lowest) }

// parseBinary handles every token-precedence-table entry that is a plain
// left-operand/operator/right-operand shape: arithmetic, comparison,
// logical, assignment, and compound assignment. Assignment recurses at its
// own precedence (right-associative); everything else recurses one level
// up (left-associative).
func (p *Parser) parseBinary(left ast.Expr) ast.Expr {
	op := p.advance()
	next := precedences[op.Kind] + 1
	if op.Kind == token.EQUAL {
		next = assignPrec
	}
	right := p.parseExpression(next)
	return &ast.BinaryOp{
		Left:  left,
		Op:    op,
		Right: right,
		Rng:   token.Range{Begin: left.Range().Begin, End: right.Range().End},
	}
}

// parseUnary implements the unary := ('-' | '!')? postfix layer that
// resolves §9's unary-minus redesign flag.
func (p *Parser) parseUnary() ast.Expr {
	op := p.advance()
	operand := p.parseExpression(unaryPrec)
	return &ast.UnaryOp{Op: op, Operand: operand, Rng: token.Range{Begin: op.Range.Begin, End: operand.Range().End}}
}

func (p *Parser) parseParenExpr() ast.Expr {
	begin := p.advance() // '('
	inner := p.parseExpr()
	end := p.expect(token.RPAREN)
	return &ast.Paren{Inner: inner, Rng: token.Range{Begin: begin.Range.Begin, End: end.Range.End}}
}

// parseInitializerList handles `'{' expr (',' expr)* '}'`, legal only
// where the analyser can infer a target list type (§4.4).
func (p *Parser) parseInitializerList() ast.Expr {
	begin := p.advance() // '{'
	var elems []ast.Expr
	if !p.at(token.RBRACE) {
		elems = append(elems, p.parseExpr())
		for p.at(token.COMMA) {
			p.advance()
			elems = append(elems, p.parseExpr())
		}
	}
	end := p.expect(token.RBRACE)
	return &ast.InitializerList{Elements: elems, Rng: token.Range{Begin: begin.Range.Begin, End: end.Range.End}}
}

// parseIdentifierOrCall handles both a bare identifier and `id '(' args? ')'`
// — the two primary productions that start with IDENT.
func (p *Parser) parseIdentifierOrCall() ast.Expr {
	name := p.advance()
	if !p.at(token.LPAREN) {
		return &ast.Identifier{Tok: name}
	}
	p.advance() // '('
	args := p.parseArgs()
	end := p.expect(token.RPAREN)
	return &ast.FunctionCall{Callee: name, Args: args, Rng: token.Range{Begin: name.Range.Begin, End: end.Range.End}}
}

func (p *Parser) parseArgs() []ast.Expr {
	var args []ast.Expr
	if p.at(token.RPAREN) {
		return args
	}
	args = append(args, p.parseExpr())
	for p.at(token.COMMA) {
		p.advance()
		args = append(args, p.parseExpr())
	}
	return args
}

// parseMemberOrMethodCall handles the '.' postfix production: a field read
// (MemberAccess) if no '(' follows the member name, or a method call
// (MemberFunctionCall) otherwise.
func (p *Parser) parseMemberOrMethodCall(receiver ast.Expr) ast.Expr {
	p.advance() // '.'
	member := p.expect(token.IDENT)
	if !p.at(token.LPAREN) {
		return &ast.MemberAccess{Receiver: receiver, Member: member, Rng: token.Range{Begin: receiver.Range().Begin, End: member.Range.End}}
	}
	p.advance() // '('
	args := p.parseArgs()
	end := p.expect(token.RPAREN)
	return &ast.MemberFunctionCall{
		Receiver: receiver,
		Method:   member,
		Args:     args,
		Rng:      token.Range{Begin: receiver.Range().Begin, End: end.Range.End},
	}
}

// parseIndex handles the [EXPANSION] `postfix '[' expr ']'` production for
// list<T>.operator[].
func (p *Parser) parseIndex(receiver ast.Expr) ast.Expr {
	p.advance() // '['
	idx := p.parseExpr()
	end := p.expect(token.RBRACKET)
	return &ast.IndexExpr{Receiver: receiver, Index: idx, Rng: token.Range{Begin: receiver.Range().Begin, End: end.Range.End}}
}
