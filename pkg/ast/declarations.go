package ast

import "github.com/cmsl-lang/cmsl/pkg/token"

// Param is a single function parameter: a type reference and a name.
type Param struct {
	Type TypeRepresentation
	Name token.Token
}

// FunctionDecl is a free or member function declaration: `type id '(' params? ')' block`.
type FunctionDecl struct {
	NameTok    token.Token
	ReturnType TypeRepresentation
	Params     []Param
	Body       *Block
	Rng        token.Range
}

func (*FunctionDecl) declNode()            {}
func (f *FunctionDecl) Range() token.Range { return f.Rng }
func (f *FunctionDecl) Name() string       { return f.NameTok.Lexeme }
func (f *FunctionDecl) String() string     { return "func " + f.Name() }

// Field is a class member variable declaration.
type Field struct {
	Type TypeRepresentation
	Name token.Token
}

// ClassDecl is `'class' id '{' member* '}' ';'`, where member is a field or
// a method (FunctionDecl).
type ClassDecl struct {
	NameTok token.Token
	Fields  []Field
	Methods []*FunctionDecl
	Rng     token.Range
}

func (*ClassDecl) declNode()            {}
func (c *ClassDecl) Range() token.Range { return c.Rng }
func (c *ClassDecl) Name() string       { return c.NameTok.Lexeme }
func (c *ClassDecl) String() string     { return "class " + c.Name() }

// EnumCase is a single `name` or `name = expr` case within an enum_decl.
// §3's [EXPANSION]: values default to 0,1,2,... in declaration order when
// the initializer is omitted.
type EnumCase struct {
	NameTok     token.Token
	Initializer Expr // nil when the case has no explicit value
}

// EnumDecl is `'enum' id '{' case (',' case)* '}' ';'`.
type EnumDecl struct {
	NameTok token.Token
	Cases   []EnumCase
	Rng     token.Range
}

func (*EnumDecl) declNode()            {}
func (e *EnumDecl) Range() token.Range { return e.Rng }
func (e *EnumDecl) Name() string       { return e.NameTok.Lexeme }
func (e *EnumDecl) String() string     { return "enum " + e.Name() }

// VariableDecl is `type id ('=' expr)? ';'`, valid both as a statement and
// (restricted to Initializer == nil) as a class field via Field above.
type VariableDecl struct {
	Type        TypeRepresentation
	NameTok     token.Token
	Initializer Expr // nil when uninitialized
	Rng         token.Range
}

func (*VariableDecl) stmtNode()            {}
func (v *VariableDecl) Range() token.Range { return v.Rng }
func (v *VariableDecl) Name() string       { return v.NameTok.Lexeme }
func (v *VariableDecl) String() string     { return "var " + v.Name() }
