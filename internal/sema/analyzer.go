package sema

import (
	"fmt"

	"github.com/cmsl-lang/cmsl/internal/builtins"
	"github.com/cmsl-lang/cmsl/internal/diag"
	"github.com/cmsl-lang/cmsl/internal/types"
	"github.com/cmsl-lang/cmsl/pkg/ast"
	"github.com/cmsl-lang/cmsl/pkg/token"
)

// Analyzer walks a parsed ast.TranslationUnit and produces a Program: the
// AST -> SEMA pass of §4.4. Analysis is declarations-first — every class
// and free function is registered as a signature before any body is
// analysed — so mutual reference between top-level declarations works
// regardless of source order, mirroring the teacher's two-pass Analyzer
// (internal/semantic/analyzer.go's NewAnalyzer + the separate
// analyze_classes_decl.go / analyze_functions.go passes it drives).
type Analyzer struct {
	in       *types.Interner
	catalog  *builtins.Catalog
	observer diag.Observer
	global   *Scope

	// classMethods holds the identity-stable FunctionSymbols created for
	// each user class's methods during the declaration pass, keyed by
	// class name, so the body-analysis pass can attach Body to the same
	// symbol objects later method calls within the class resolve against.
	classMethods map[string][]*FunctionSymbol
	// userClasses marks class names declared by CMSL source (as opposed
	// to the builtin project/library/executable/version class-shaped
	// types), so memberCandidates knows whether "no candidates for this
	// name" means "not found" or "fall back to the builtin table".
	userClasses map[string]bool

	currentReturnType types.Type
	currentClass      *types.ClassType
}

// New returns an Analyzer with a fresh Interner seeded with the builtin
// catalog, ready to analyse one translation unit.
func New(observer diag.Observer) *Analyzer {
	in := types.NewInterner()
	catalog := builtins.New(in)
	global := NewScope()

	for _, ff := range catalog.FreeFunctions {
		global.DefineFunction(ff.Name, &FunctionSymbol{
			Name: ff.Name, Params: ff.Params, ReturnType: ff.ReturnType,
			IsBuiltin: true, BuiltinKind: int(ff.Kind),
		})
	}

	return &Analyzer{
		in: in, catalog: catalog, observer: observer, global: global,
		classMethods: make(map[string][]*FunctionSymbol),
		userClasses:  make(map[string]bool),
	}
}

// Interner exposes the type interner so the evaluator and facade can share
// it (e.g. to build list<T> instances of the right element type).
func (a *Analyzer) Interner() *types.Interner { return a.in }

// Catalog exposes the builtin catalog the evaluator's dispatch table needs
// alongside the SEMA tree.
func (a *Analyzer) Catalog() *builtins.Catalog { return a.catalog }

func (a *Analyzer) errorf(rng token.Range, format string, args ...any) {
	a.observer.NotifyError(diag.NewResolveError(rng, fmt.Sprintf(format, args...)))
}

// Analyze runs the full declarations-first pass and returns the resulting
// Program.
func (a *Analyzer) Analyze(tu *ast.TranslationUnit) *Program {
	prog := &Program{}

	// Pass 1: register every class's fields and every function's
	// signature, so bodies analysed in pass 2 can call forward and
	// reference sibling classes.
	var classDecls []*ast.ClassDecl
	var fnDecls []*ast.FunctionDecl
	for _, d := range tu.Decls {
		switch decl := d.(type) {
		case *ast.ClassDecl:
			classDecls = append(classDecls, decl)
			a.declareClassSignature(decl)
		case *ast.EnumDecl:
			a.declareEnum(decl)
		case *ast.FunctionDecl:
			fnDecls = append(fnDecls, decl)
			a.declareFunctionSignature(decl, nil)
		}
	}

	// Pass 1b: now that every class's field list is known, resolve each
	// class's method signatures (they may take/return sibling classes).
	for _, cd := range classDecls {
		ct, _ := a.in.LookupClass(cd.NameTok.Lexeme)
		for _, m := range cd.Methods {
			a.declareFunctionSignature(m, ct)
		}
	}

	// Pass 2: analyse bodies.
	for _, cd := range classDecls {
		prog.Classes = append(prog.Classes, a.analyzeClassBody(cd))
	}
	for _, fd := range fnDecls {
		sym, _ := a.global.Lookup(fd.Name())
		fn := a.resolveOverloadSymbol(sym, fd)
		prog.Functions = append(prog.Functions, a.analyzeFunctionBody(fd, fn))
	}

	return prog
}

// resolveType converts a parsed ast.TypeRepresentation into a types.Type,
// instantiating list<T> on demand and reporting a diagnostic for an
// unresolvable name.
func (a *Analyzer) resolveType(tr ast.TypeRepresentation) types.Type {
	var base types.Type
	if tr.Name() == "list" {
		if len(tr.Nested) != 1 {
			a.errorf(tr.Rng, "list requires exactly one type argument")
			base = types.Void
		} else {
			base = a.in.ListOf(a.resolveType(tr.Nested[0]))
		}
	} else if t, ok := a.in.LookupNamed(tr.Name()); ok {
		base = t
	} else {
		a.errorf(tr.Rng, "unknown type %q", tr.Name())
		base = types.Void
	}
	if tr.Reference {
		return a.in.ReferenceTo(base)
	}
	return base
}

func (a *Analyzer) declareClassSignature(cd *ast.ClassDecl) {
	if _, exists := a.in.LookupClass(cd.NameTok.Lexeme); exists {
		a.errorf(cd.Range(), "class %q already declared", cd.NameTok.Lexeme)
		return
	}
	ct := &types.ClassType{Name: cd.NameTok.Lexeme}
	for _, f := range cd.Fields {
		ct.Fields = append(ct.Fields, types.Field{Name: f.Name.Lexeme, Type: a.resolveType(f.Type)})
	}
	a.in.RegisterClass(ct)
	a.userClasses[ct.Name] = true
}

func (a *Analyzer) declareEnum(ed *ast.EnumDecl) {
	if _, exists := a.in.LookupEnum(ed.NameTok.Lexeme); exists {
		a.errorf(ed.Range(), "enum %q already declared", ed.NameTok.Lexeme)
		return
	}
	et := &types.EnumType{Name: ed.NameTok.Lexeme, Values: make(map[string]int64)}
	next := int64(0)
	for _, c := range ed.Cases {
		v := next
		if c.Initializer != nil {
			lit, ok := c.Initializer.(*ast.IntLiteral)
			if !ok {
				a.errorf(c.Initializer.Range(), "enum case initializer must be an integer literal")
			} else {
				v = lit.Value
			}
		}
		if _, dup := et.Values[c.NameTok.Lexeme]; dup {
			a.errorf(c.NameTok.Range, "duplicate enum case %q", c.NameTok.Lexeme)
			continue
		}
		et.Cases = append(et.Cases, c.NameTok.Lexeme)
		et.Values[c.NameTok.Lexeme] = v
		next = v + 1
	}
	a.in.RegisterEnum(et)
}

// declareFunctionSignature registers fd's signature (not its body) in the
// global scope (receiver == nil) or as a member of receiver.
func (a *Analyzer) declareFunctionSignature(fd *ast.FunctionDecl, receiver *types.ClassType) {
	var params []types.Type
	for _, p := range fd.Params {
		params = append(params, a.resolveType(p.Type))
	}
	ret := a.resolveType(fd.ReturnType)

	fn := &FunctionSymbol{Name: fd.Name(), Params: params, ReturnType: ret}
	if receiver != nil {
		fn.ReceiverType = receiver
		receiver.Members = append(receiver.Members, types.Member{Name: fd.Name(), Params: params, ReturnType: ret})
		a.classMethods[receiver.Name] = append(a.classMethods[receiver.Name], fn)
	} else {
		a.global.DefineFunction(fd.Name(), fn)
	}
}

// memberCandidates returns every overload of name callable on a value of
// receiverType: identity-stable FunctionSymbols (carrying Body once
// analysed) for a user class, or freshly built ones from the builtin
// member table for a builtin class-shaped type or a list<T> instantiation.
func (a *Analyzer) memberCandidates(receiverType types.Type, name string) []*FunctionSymbol {
	if receiverType == nil {
		return nil
	}
	t := types.Deref(receiverType)

	var fundamentalTable []types.Member
	switch t.Kind() {
	case types.KindBool:
		fundamentalTable = a.catalog.BoolMembers
	case types.KindInt:
		fundamentalTable = a.catalog.IntMembers
	case types.KindDouble:
		fundamentalTable = a.catalog.DoubleMembers
	case types.KindString:
		fundamentalTable = a.catalog.StringMembers
	}
	if fundamentalTable != nil {
		var matched []types.Member
		for _, m := range fundamentalTable {
			if m.Name == name {
				matched = append(matched, m)
			}
		}
		return builtinCandidatesFromMembers(matched, t)
	}
	switch rt := t.(type) {
	case *types.ClassType:
		if a.userClasses[rt.Name] {
			var out []*FunctionSymbol
			for _, s := range a.classMethods[rt.Name] {
				if s.Name == name {
					out = append(out, s)
				}
			}
			return out
		}
		return builtinCandidatesFromMembers(rt.MembersByName(name), rt)
	case *types.ListType:
		members := builtins.ListMembers(a.in, rt.Element)
		var matched []types.Member
		for _, m := range members {
			if m.Name == name {
				matched = append(matched, m)
			}
		}
		return builtinCandidatesFromMembers(matched, rt)
	case *types.EnumType:
		var matched []types.Member
		for _, m := range builtins.EnumMembers() {
			if m.Name == name {
				matched = append(matched, m)
			}
		}
		return builtinCandidatesFromMembers(matched, rt)
	default:
		return nil
	}
}

func builtinCandidatesFromMembers(members []types.Member, receiver types.Type) []*FunctionSymbol {
	var out []*FunctionSymbol
	for _, m := range members {
		out = append(out, &FunctionSymbol{
			Name: m.Name, Params: m.Params, ReturnType: m.ReturnType,
			IsBuiltin: true, BuiltinKind: m.Kind, ReceiverType: receiver,
		})
	}
	return out
}

// resolveMethodSymbol finds, among ct's registered methods named md.Name(),
// the identity-stable FunctionSymbol declareFunctionSignature created for md
// — matched by parameter types, mirroring resolveOverloadSymbol — so the
// body analysed here attaches to the very symbol memberCandidates will later
// hand out to sibling method calls.
func (a *Analyzer) resolveMethodSymbol(ct *types.ClassType, md *ast.FunctionDecl) *FunctionSymbol {
	for _, cand := range a.classMethods[ct.Name] {
		if cand.Name != md.Name() || cand.Body != nil || len(cand.Params) != len(md.Params) {
			continue
		}
		match := true
		for i, p := range cand.Params {
			if !types.Equal(p, a.resolveType(md.Params[i].Type)) {
				match = false
				break
			}
		}
		if match {
			return cand
		}
	}
	return nil
}

// resolveOverloadSymbol finds, among sym's overloads, the one matching
// fd's already-resolved parameter types (exact arity + param-type match,
// since declareFunctionSignature registered exactly one overload per
// ast.FunctionDecl in the same order bodies are visited).
func (a *Analyzer) resolveOverloadSymbol(sym *Symbol, fd *ast.FunctionDecl) *FunctionSymbol {
	if sym == nil {
		return nil
	}
	for _, cand := range sym.Functions {
		if len(cand.Params) != len(fd.Params) {
			continue
		}
		match := true
		for i, p := range cand.Params {
			if !types.Equal(p, a.resolveType(fd.Params[i].Type)) {
				match = false
				break
			}
		}
		if match && cand.Body == nil {
			return cand
		}
	}
	return nil
}
