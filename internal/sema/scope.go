// Package sema implements CMSL's semantic analyser: the AST -> SEMA tree
// pass described in §4.4. It resolves every identifier against a layered
// scope chain, performs overload resolution over candidate sets collected
// scope-by-scope (§4.6), and materialises implicit conversions as explicit
// Cast nodes (§4.5) rather than leaving them implicit for the evaluator to
// rediscover. Grounded on the teacher's symbol-table-centric analyser
// (internal/semantic/symbol_table.go, internal/semantic/analyzer.go),
// narrowed to CMSL's case-sensitive, non-overload-directive world.
package sema

import "github.com/cmsl-lang/cmsl/internal/types"

// Symbol is one name bound in a Scope: a variable/parameter/field, or a
// slot holding every overload of a function name.
type Symbol struct {
	Name      string
	Type      types.Type // variable symbols only; nil for function symbols
	Functions []*FunctionSymbol
	// IsField marks a symbol standing in for an implicit-this field
	// access inside a method body: a bare identifier naming a field of
	// the receiver class resolves to one of these rather than a
	// VarRef-style storage slot.
	IsField    bool
	FieldIndex int
}

// IsFunction reports whether sym names one or more functions rather than a
// variable.
func (s *Symbol) IsFunction() bool { return len(s.Functions) > 0 }

// FunctionSymbol is one overload of a free function or member function.
type FunctionSymbol struct {
	Name       string
	Params     []types.Type
	ReturnType types.Type
	Body       *Block // nil for builtins, whose behaviour lives in internal/eval's dispatch table
	IsBuiltin  bool
	// BuiltinKind tags IsBuiltin functions with the opaque dispatch
	// identifier internal/eval switches on (see internal/builtins.Kind).
	BuiltinKind int
	// ReceiverType is non-nil for member functions: the class (or
	// builtin class-shaped type) the function is called on.
	ReceiverType types.Type
	// ParamSymbols carries the named parameter Symbols analyzeFunctionBody
	// bound Body's scope to, so internal/eval can bind each call argument
	// to the right name without re-deriving it from Params' bare types.
	// nil for builtins, which bind no named parameters.
	ParamSymbols []*Symbol
}

// Scope is one layer of the lookup chain described in §4.6: overload
// resolution walks candidate sets layer by layer, and failure inside an
// inner layer's candidate set hides outer candidates rather than falling
// through to them.
type Scope struct {
	vars  map[string]*Symbol
	outer *Scope
}

// NewScope returns a root scope with no parent.
func NewScope() *Scope {
	return &Scope{vars: make(map[string]*Symbol)}
}

// Nested returns a new scope layered on top of s.
func (s *Scope) Nested() *Scope {
	return &Scope{vars: make(map[string]*Symbol), outer: s}
}

// DefineVar binds name to a variable of type t in this scope, shadowing
// any outer binding of the same name.
func (s *Scope) DefineVar(name string, t types.Type) *Symbol {
	sym := &Symbol{Name: name, Type: t}
	s.vars[name] = sym
	return sym
}

// DefineField binds name to an implicit-this field access at fieldIndex,
// used when entering a method body so bare field names resolve without an
// explicit receiver expression.
func (s *Scope) DefineField(name string, t types.Type, fieldIndex int) *Symbol {
	sym := &Symbol{Name: name, Type: t, IsField: true, FieldIndex: fieldIndex}
	s.vars[name] = sym
	return sym
}

// DefineFunction adds fn as an overload of name in this scope.
func (s *Scope) DefineFunction(name string, fn *FunctionSymbol) {
	sym, ok := s.vars[name]
	if !ok {
		sym = &Symbol{Name: name}
		s.vars[name] = sym
	}
	sym.Functions = append(sym.Functions, fn)
}

// LookupLayers returns, from innermost to outermost, the Symbol bound to
// name in each scope that defines it. Overload resolution (§4.6) consumes
// this layer by layer and stops at the first layer with at least one
// candidate, even if none of that layer's candidates match the call —
// it never falls through to an outer layer once an inner one defines the
// name.
func (s *Scope) LookupLayers(name string) []*Symbol {
	var layers []*Symbol
	for sc := s; sc != nil; sc = sc.outer {
		if sym, ok := sc.vars[name]; ok {
			layers = append(layers, sym)
		}
	}
	return layers
}

// Lookup returns the innermost binding of name, or (nil, false).
func (s *Scope) Lookup(name string) (*Symbol, bool) {
	for sc := s; sc != nil; sc = sc.outer {
		if sym, ok := sc.vars[name]; ok {
			return sym, true
		}
	}
	return nil, false
}
