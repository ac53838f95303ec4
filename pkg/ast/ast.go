// Package ast defines the CMSL abstract syntax tree: the typed output of
// the parser, before name resolution or type checking. Every node carries
// the source range it was parsed from; children are owned, there are no
// cycles.
package ast

import "github.com/cmsl-lang/cmsl/pkg/token"

// Node is the base interface every AST node satisfies.
type Node interface {
	Range() token.Range
	String() string
}

// Expr is any node that produces a value.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any node that performs an action.
type Stmt interface {
	Node
	stmtNode()
}

// Decl is any top-level declaration: a class, an enum, or a free function.
type Decl interface {
	Node
	declNode()
}

// TranslationUnit is the root of a parsed source file: an ordered sequence
// of class, enum, and free-function declarations (the translation_unit
// production of §4.2's grammar).
type TranslationUnit struct {
	Decls []Decl
}

func (tu *TranslationUnit) Range() token.Range {
	if len(tu.Decls) == 0 {
		return token.Range{}
	}
	return token.Range{Begin: tu.Decls[0].Range().Begin, End: tu.Decls[len(tu.Decls)-1].Range().End}
}
func (tu *TranslationUnit) String() string { return "<translation_unit>" }

// TypeRepresentation is the textual spelling of a type reference inside the
// AST, per §3: a token list (to spell nested generics such as
// `list<list<int>>`), an ordered list of nested TypeRepresentations for
// generic arguments, and a reference flag.
type TypeRepresentation struct {
	Tokens    []token.Token
	Nested    []TypeRepresentation
	Reference bool
	Rng       token.Range
}

// Name returns the primary (outermost) type name, e.g. "list" for
// "list<int>" or "int" for "int&".
func (tr TypeRepresentation) Name() string {
	if len(tr.Tokens) == 0 {
		return ""
	}
	return tr.Tokens[0].Lexeme
}

// String renders the type the way it was spelled in source, e.g.
// "list<list<int>>" or "int&".
func (tr TypeRepresentation) String() string {
	s := tr.Name()
	if len(tr.Nested) > 0 {
		s += "<"
		for i, n := range tr.Nested {
			if i > 0 {
				s += ", "
			}
			s += n.String()
		}
		s += ">"
	}
	if tr.Reference {
		s += "&"
	}
	return s
}
