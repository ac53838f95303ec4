package ast

import "github.com/cmsl-lang/cmsl/pkg/token"

// Identifier is a bare name reference (id_ref in §3).
type Identifier struct {
	Tok token.Token
}

func (*Identifier) exprNode()            {}
func (i *Identifier) Range() token.Range { return i.Tok.Range }
func (i *Identifier) Name() string       { return i.Tok.Lexeme }
func (i *Identifier) String() string     { return i.Name() }

// BoolLiteral, IntLiteral, DoubleLiteral, StringLiteral are the four literal
// node kinds named in §3.
type BoolLiteral struct {
	Tok   token.Token
	Value bool
}

func (*BoolLiteral) exprNode()            {}
func (b *BoolLiteral) Range() token.Range { return b.Tok.Range }
func (b *BoolLiteral) String() string     { return b.Tok.Lexeme }

type IntLiteral struct {
	Tok   token.Token
	Value int64
}

func (*IntLiteral) exprNode()            {}
func (n *IntLiteral) Range() token.Range { return n.Tok.Range }
func (n *IntLiteral) String() string     { return n.Tok.Lexeme }

type DoubleLiteral struct {
	Tok   token.Token
	Value float64
}

func (*DoubleLiteral) exprNode()            {}
func (n *DoubleLiteral) Range() token.Range { return n.Tok.Range }
func (n *DoubleLiteral) String() string     { return n.Tok.Lexeme }

type StringLiteral struct {
	Tok   token.Token
	Value string
}

func (*StringLiteral) exprNode()            {}
func (s *StringLiteral) Range() token.Range { return s.Tok.Range }
func (s *StringLiteral) String() string     { return s.Tok.Lexeme }

// BinaryOp is any two-operand arithmetic, comparison, logical, assignment,
// or compound-assignment expression. Op carries the operator token so the
// analyser can dispatch on its Kind directly.
type BinaryOp struct {
	Left  Expr
	Op    token.Token
	Right Expr
	Rng   token.Range
}

func (*BinaryOp) exprNode()            {}
func (b *BinaryOp) Range() token.Range { return b.Rng }
func (b *BinaryOp) String() string     { return b.Op.Lexeme }

// UnaryOp is `('-' | '!') operand`, resolving the open question in §4.2:
// the lexer emits no separate unary-minus token, so the parser builds this
// node directly from a MINUS or BANG token at the unary precedence layer.
type UnaryOp struct {
	Op      token.Token
	Operand Expr
	Rng     token.Range
}

func (*UnaryOp) exprNode()            {}
func (u *UnaryOp) Range() token.Range { return u.Rng }
func (u *UnaryOp) String() string     { return u.Op.Lexeme + u.Operand.String() }

// MemberAccess is `postfix '.' id` without a following call — a field or
// property read.
type MemberAccess struct {
	Receiver Expr
	Member   token.Token
	Rng      token.Range
}

func (*MemberAccess) exprNode()            {}
func (m *MemberAccess) Range() token.Range { return m.Rng }
func (m *MemberAccess) String() string     { return m.Receiver.String() + "." + m.Member.Lexeme }

// FunctionCall is `id '(' args? ')'` — a free-function or constructor call.
type FunctionCall struct {
	Callee token.Token
	Args   []Expr
	Rng    token.Range
}

func (*FunctionCall) exprNode()            {}
func (f *FunctionCall) Range() token.Range { return f.Rng }
func (f *FunctionCall) String() string     { return f.Callee.Lexeme + "(...)" }

// MemberFunctionCall is `postfix '.' id '(' args? ')'` — a method call.
type MemberFunctionCall struct {
	Receiver Expr
	Method   token.Token
	Args     []Expr
	Rng      token.Range
}

func (*MemberFunctionCall) exprNode()            {}
func (m *MemberFunctionCall) Range() token.Range { return m.Rng }
func (m *MemberFunctionCall) String() string {
	return m.Receiver.String() + "." + m.Method.Lexeme + "(...)"
}

// IndexExpr is `postfix '[' expr ']'` — §4.3's [EXPANSION] list operator[].
type IndexExpr struct {
	Receiver Expr
	Index    Expr
	Rng      token.Range
}

func (*IndexExpr) exprNode()            {}
func (i *IndexExpr) Range() token.Range { return i.Rng }
func (i *IndexExpr) String() string     { return i.Receiver.String() + "[...]" }

// InitializerList is `'{' expr (',' expr)* '}'`, only legal where the
// analyser can infer a target list type (§4.4).
type InitializerList struct {
	Elements []Expr
	Rng      token.Range
}

func (*InitializerList) exprNode()            {}
func (il *InitializerList) Range() token.Range { return il.Rng }
func (il *InitializerList) String() string     { return "{...}" }

// Paren is a parenthesised expression, kept as its own node only so source
// ranges round-trip exactly; it carries no semantics beyond its Inner.
type Paren struct {
	Inner Expr
	Rng   token.Range
}

func (*Paren) exprNode()            {}
func (p *Paren) Range() token.Range { return p.Rng }
func (p *Paren) String() string     { return "(" + p.Inner.String() + ")" }
