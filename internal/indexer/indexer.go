// Package indexer implements §6's token/entry stream for editor tooling: a
// stdlib-only walk over the parsed AST that classifies every name-shaped
// token into one of a fixed set of entry kinds, preserving the original
// API's C-shaped ParseSource/Index/Destroy* contract (original_source's
// indexer_export.cpp and index_entry.hpp) even though Go's garbage
// collector makes the Destroy* calls unnecessary.
package indexer

import (
	"fmt"
	"strings"

	"github.com/cmsl-lang/cmsl/internal/diag"
	"github.com/cmsl-lang/cmsl/internal/lexer"
	"github.com/cmsl-lang/cmsl/internal/parser"
	"github.com/cmsl-lang/cmsl/pkg/ast"
	"github.com/cmsl-lang/cmsl/pkg/token"
)

// EntryType classifies one indexed token, mirroring the original's
// index_entry_type enum member-for-member.
type EntryType int

const (
	Type EntryType = iota
	Identifier
	ParameterDeclarationIdentifier
	ClassMemberIdentifier
	OperatorFunction
	FunctionCallName
)

func (t EntryType) String() string {
	switch t {
	case Type:
		return "type"
	case Identifier:
		return "identifier"
	case ParameterDeclarationIdentifier:
		return "parameter_declaration_identifier"
	case ClassMemberIdentifier:
		return "class_member_identifier"
	case OperatorFunction:
		return "operator_function"
	case FunctionCallName:
		return "function_call_name"
	default:
		return "unknown"
	}
}

// Entry is one classified token: a half-open [Begin, End) byte-offset span
// in the original source, its Type, and an unresolved cross-reference
// destination. Destination/DestinationPath resolution (go-to-definition)
// requires the fully analysed SEMA tree rather than the bare AST this
// package walks, and is left at its "unresolved" sentinel (-1, "") here —
// a consumer wanting resolved destinations runs the sema package itself
// and joins on Begin/End.
type Entry struct {
	Begin, End      int
	Destination     int
	Type            EntryType
	DestinationPath string
}

// Handle is an opaque parsed-source handle, the Go analogue of the
// original's void* handle returned by parse_source.
type Handle struct {
	Path string
	TU   *ast.TranslationUnit
}

// ParseSource lexes and parses text, returning a Handle ready for Index.
// Lex/parse diagnostics are collected internally; a non-nil error is
// returned only when at least one was reported, with every message joined
// so a CLI caller can print them without re-running the pipeline itself.
func ParseSource(text []byte, path string) (*Handle, error) {
	collector := diag.NewCollector()
	toks := lexer.New(string(text), collector).Tokenize()
	tu := parser.New(toks, collector).Parse()

	if len(collector.Diagnostics) > 0 {
		msgs := make([]string, len(collector.Diagnostics))
		for i, d := range collector.Diagnostics {
			msgs[i] = d.Error()
		}
		return &Handle{Path: path, TU: tu}, fmt.Errorf("%s", strings.Join(msgs, "\n"))
	}
	return &Handle{Path: path, TU: tu}, nil
}

// DestroyParsedSource is a no-op kept for API-shape parity with the
// original's destroy_parsed_source — Go's garbage collector reclaims h.
func DestroyParsedSource(h *Handle) {}

// DestroyIndexEntries is a no-op kept for API-shape parity with the
// original's destroy_index_entries.
func DestroyIndexEntries(entries []Entry) {}

// Index walks h's AST, producing one Entry per name-shaped token: type
// references, declared identifiers, parameters, class members, operators,
// and call names.
func Index(h *Handle) []Entry {
	w := &walker{}
	for _, d := range h.TU.Decls {
		w.decl(d)
	}
	return w.entries
}

type walker struct {
	entries []Entry
}

func (w *walker) emit(rng token.Range, typ EntryType) {
	w.entries = append(w.entries, Entry{
		Begin: rng.Begin.Offset, End: rng.End.Offset,
		Destination: -1, Type: typ,
	})
}

func (w *walker) typeRef(tr ast.TypeRepresentation) {
	for _, tok := range tr.Tokens {
		w.emit(tok.Range, Type)
	}
	for _, nested := range tr.Nested {
		w.typeRef(nested)
	}
}

func (w *walker) decl(d ast.Decl) {
	switch decl := d.(type) {
	case *ast.ClassDecl:
		w.emit(decl.NameTok.Range, Type)
		for _, f := range decl.Fields {
			w.typeRef(f.Type)
			w.emit(f.Name.Range, ClassMemberIdentifier)
		}
		for _, m := range decl.Methods {
			w.function(m, true)
		}
	case *ast.EnumDecl:
		w.emit(decl.NameTok.Range, Type)
		for _, c := range decl.Cases {
			w.emit(c.NameTok.Range, ClassMemberIdentifier)
			if c.Initializer != nil {
				w.expr(c.Initializer)
			}
		}
	case *ast.FunctionDecl:
		w.function(decl, false)
	}
}

func (w *walker) function(fd *ast.FunctionDecl, isMethod bool) {
	w.typeRef(fd.ReturnType)
	if isMethod {
		w.emit(fd.NameTok.Range, ClassMemberIdentifier)
	} else {
		w.emit(fd.NameTok.Range, Identifier)
	}
	for _, p := range fd.Params {
		w.typeRef(p.Type)
		w.emit(p.Name.Range, ParameterDeclarationIdentifier)
	}
	if fd.Body != nil {
		w.block(fd.Body)
	}
}

func (w *walker) block(b *ast.Block) {
	for _, s := range b.Stmts {
		w.stmt(s)
	}
}

func (w *walker) stmt(s ast.Stmt) {
	switch st := s.(type) {
	case *ast.Block:
		w.block(st)
	case *ast.ExprStmt:
		w.expr(st.X)
	case *ast.VariableDecl:
		w.typeRef(st.Type)
		w.emit(st.NameTok.Range, Identifier)
		if st.Initializer != nil {
			w.expr(st.Initializer)
		}
	case *ast.ReturnStmt:
		if st.Value != nil {
			w.expr(st.Value)
		}
	case *ast.IfElse:
		for _, br := range st.Branches {
			w.expr(br.Condition)
			w.block(br.Body)
		}
		if st.Else != nil {
			w.block(st.Else)
		}
	case *ast.While:
		w.expr(st.Condition)
		w.block(st.Body)
	}
}

func (w *walker) expr(e ast.Expr) {
	switch x := e.(type) {
	case *ast.Identifier:
		w.emit(x.Tok.Range, Identifier)
	case *ast.BoolLiteral, *ast.IntLiteral, *ast.DoubleLiteral, *ast.StringLiteral:
		// literals name nothing; no entry.
	case *ast.BinaryOp:
		w.expr(x.Left)
		w.emit(x.Op.Range, OperatorFunction)
		w.expr(x.Right)
	case *ast.UnaryOp:
		w.emit(x.Op.Range, OperatorFunction)
		w.expr(x.Operand)
	case *ast.MemberAccess:
		w.expr(x.Receiver)
		w.emit(x.Member.Range, Identifier)
	case *ast.FunctionCall:
		w.emit(x.Callee.Range, FunctionCallName)
		for _, a := range x.Args {
			w.expr(a)
		}
	case *ast.MemberFunctionCall:
		w.expr(x.Receiver)
		w.emit(x.Method.Range, FunctionCallName)
		for _, a := range x.Args {
			w.expr(a)
		}
	case *ast.IndexExpr:
		w.expr(x.Receiver)
		w.expr(x.Index)
	case *ast.InitializerList:
		for _, el := range x.Elements {
			w.expr(el)
		}
	case *ast.Paren:
		w.expr(x.Inner)
	}
}
