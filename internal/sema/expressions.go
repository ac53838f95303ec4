package sema

import (
	"github.com/cmsl-lang/cmsl/internal/types"
	"github.com/cmsl-lang/cmsl/pkg/ast"
	"github.com/cmsl-lang/cmsl/pkg/token"
)

// operatorMemberNames maps a binary/unary operator token to the builtin
// member name §4.3's catalog registers it under (e.g. PLUS -> "operator+"),
// so analyzeBinary/analyzeUnary can resolve operand support through the
// very same overload machinery a named method call goes through, rather
// than hand-rolling a second type-compatibility table.
var operatorMemberNames = map[token.Kind]string{
	token.EQUAL_EQUAL:   "operator==",
	token.NOT_EQUAL:     "operator!=",
	token.LESS:          "operator<",
	token.LESS_EQUAL:    "operator<=",
	token.GREATER:       "operator>",
	token.GREATER_EQUAL: "operator>=",
	token.PLUS:          "operator+",
	token.MINUS:         "operator-",
	token.STAR:          "operator*",
	token.SLASH:         "operator/",
	token.PLUS_EQUAL:    "operator+=",
	token.MINUS_EQUAL:   "operator-=",
	token.STAR_EQUAL:    "operator*=",
	token.SLASH_EQUAL:   "operator/=",
	token.PIPE_PIPE:     "operator||",
	token.AMP_AMP:       "operator&&",
}

// analyzeExpr resolves e against scope with no expected type.
func (a *Analyzer) analyzeExpr(e ast.Expr, scope *Scope) Expr {
	return a.analyzeExprWithTarget(e, scope, nil)
}

// analyzeExprWithTarget resolves e against scope, using target (when
// non-nil) to disambiguate expressions that have no type of their own —
// currently only `{ ... }` initializer lists, which need a declared
// list<T> to know what T is.
func (a *Analyzer) analyzeExprWithTarget(e ast.Expr, scope *Scope, target types.Type) Expr {
	switch expr := e.(type) {
	case *ast.BoolLiteral:
		return &BoolLit{typed: typed{T: types.Bool, Rng: expr.Range()}, Value: expr.Value}
	case *ast.IntLiteral:
		return &IntLit{typed: typed{T: types.Int, Rng: expr.Range()}, Value: expr.Value}
	case *ast.DoubleLiteral:
		return &DoubleLit{typed: typed{T: types.Double, Rng: expr.Range()}, Value: expr.Value}
	case *ast.StringLiteral:
		return &StringLit{typed: typed{T: types.String, Rng: expr.Range()}, Value: expr.Value}
	case *ast.Identifier:
		return a.analyzeIdentifier(expr, scope)
	case *ast.Paren:
		return a.analyzeExprWithTarget(expr.Inner, scope, target)
	case *ast.UnaryOp:
		return a.analyzeUnary(expr, scope)
	case *ast.BinaryOp:
		return a.analyzeBinary(expr, scope)
	case *ast.MemberAccess:
		return a.analyzeMemberAccess(expr, scope)
	case *ast.FunctionCall:
		return a.analyzeFunctionCall(expr, scope)
	case *ast.MemberFunctionCall:
		return a.analyzeMethodCall(expr, scope)
	case *ast.IndexExpr:
		return a.analyzeIndex(expr, scope)
	case *ast.InitializerList:
		return a.analyzeInitializerList(expr, scope, target)
	default:
		a.errorf(e.Range(), "internal: unhandled expression kind %T", e)
		return &IntLit{typed: typed{T: types.Int, Rng: e.Range()}}
	}
}

// analyzeIdentifier resolves a bare name: a local/parameter/global variable
// (VarRef), an implicit-this field of the enclosing method's receiver
// (SelfFieldRef), or a diagnostic for an undeclared name used as a value
// (function names are resolved directly by analyzeFunctionCall instead).
func (a *Analyzer) analyzeIdentifier(id *ast.Identifier, scope *Scope) Expr {
	sym, ok := scope.Lookup(id.Name())
	if !ok || sym.IsFunction() {
		a.errorf(id.Range(), "undeclared identifier %q", id.Name())
		return &IntLit{typed: typed{T: types.Int, Rng: id.Range()}}
	}
	if sym.IsField {
		return &SelfFieldRef{typed: typed{T: sym.Type, Rng: id.Range()}, FieldIndex: sym.FieldIndex, FieldName: sym.Name}
	}
	return &VarRef{typed: typed{T: sym.Type, Rng: id.Range()}, Sym: sym}
}

// analyzeUnary type-checks '-'/'!' against the operand's builtin
// operator-unary/operator! member, materialising the redesign-flag unary
// node (§9) as a typed Unary SEMA node.
func (a *Analyzer) analyzeUnary(u *ast.UnaryOp, scope *Scope) Expr {
	operand := a.analyzeExpr(u.Operand, scope)
	operand = dereferenceForValue(operand, u.Rng)

	var name string
	switch u.Op.Kind {
	case token.MINUS:
		name = "operator-unary"
	case token.BANG:
		name = "operator!"
	default:
		a.errorf(u.Rng, "internal: unhandled unary operator %s", u.Op.Kind)
		return &IntLit{typed: typed{T: types.Int, Rng: u.Rng}}
	}

	// '!' has no catalog entry (bool has no dedicated NOT member, per
	// original_source's boolean member table); type-check it directly.
	if u.Op.Kind == token.BANG {
		if operand.Type().Kind() != types.KindBool {
			a.errorf(u.Rng, "operator! requires a bool operand, found %s", operand.Type())
		}
		return &Unary{typed: typed{T: types.Bool, Rng: u.Rng}, Op: u.Op, Operand: operand}
	}

	cands := a.memberCandidates(operand.Type(), name)
	winner, _ := a.resolveCall(cands, name, nil, u.Rng)
	if winner == nil {
		return &Unary{typed: typed{T: operand.Type(), Rng: u.Rng}, Op: u.Op, Operand: operand}
	}
	return &Unary{typed: typed{T: winner.ReturnType, Rng: u.Rng}, Op: u.Op, Operand: operand}
}

// analyzeBinary type-checks every two-operand operator (arithmetic,
// comparison, logical, assignment, compound assignment) by resolving the
// operator's name against the left operand's builtin member table — the
// same overload machinery a named method call uses (§4.5/§4.6) — rather
// than a separate ad hoc compatibility table.
func (a *Analyzer) analyzeBinary(b *ast.BinaryOp, scope *Scope) Expr {
	left := a.analyzeExpr(b.Left, scope)
	right := a.analyzeExpr(b.Right, scope)

	isCompoundAssignment := b.Op.Kind == token.PLUS_EQUAL || b.Op.Kind == token.MINUS_EQUAL ||
		b.Op.Kind == token.STAR_EQUAL || b.Op.Kind == token.SLASH_EQUAL
	isAssignment := b.Op.Kind == token.EQUAL || isCompoundAssignment
	if isAssignment && !isLvalue(left) {
		a.errorf(b.Rng, "left-hand side of %q is not assignable", b.Op.Lexeme)
	}

	// Plain assignment is a universal language construct, not an
	// overloaded member — the catalog only carries "operator=" entries
	// for bool/int/double, which would otherwise make `s = "x";` or
	// `list1 = list2;` fail to resolve. Type-check it structurally
	// against the left-hand side's own type instead (the referenced type
	// when the left-hand side is a T&, so the assignment writes through).
	if b.Op.Kind == token.EQUAL {
		rhs := a.convertTo(dereferenceForValue(right, b.Right.Range()), types.Deref(left.Type()), b.Rng)
		return &Binary{typed: typed{T: left.Type(), Rng: b.Rng}, Op: b.Op, Left: left, Right: rhs}
	}

	lhsForLookup := left
	if !isAssignment {
		lhsForLookup = dereferenceForValue(left, b.Left.Range())
	}
	// '&&'/'||' are bool's members only; an int left operand converts to
	// bool first so `1 && 0` resolves the same way `true && false` does.
	if b.Op.Kind == token.AMP_AMP || b.Op.Kind == token.PIPE_PIPE {
		lhsForLookup = a.convertTo(lhsForLookup, types.Bool, b.Left.Range())
		left = lhsForLookup
	}
	rhs := dereferenceForValue(right, b.Right.Range())

	name, ok := operatorMemberNames[b.Op.Kind]
	if !ok {
		a.errorf(b.Rng, "internal: unhandled binary operator %s", b.Op.Kind)
		return &Binary{typed: typed{T: types.Bool, Rng: b.Rng}, Op: b.Op, Left: left, Right: right}
	}

	cands := a.memberCandidates(lhsForLookup.Type(), name)
	winner, convertedArgs := a.resolveCall(cands, name, []Expr{rhs}, b.Rng)
	if winner == nil {
		return &Binary{typed: typed{T: lhsForLookup.Type(), Rng: b.Rng}, Op: b.Op, Left: left, Right: convertedArgs[0]}
	}
	return &Binary{typed: typed{T: winner.ReturnType, Rng: b.Rng}, Op: b.Op, Left: left, Right: convertedArgs[0]}
}

// dereferenceForValue collapses a T& expression to T so it can be used as
// an operand value; assignment targets are kept as references by the
// caller instead of going through this helper.
func dereferenceForValue(e Expr, rng token.Range) Expr {
	if ref, ok := e.Type().(*types.ReferenceType); ok {
		return &Cast{typed: typed{T: ref.Referenced, Rng: rng}, Kind: CastDereference, X: e}
	}
	return e
}

// analyzeMemberAccess resolves `receiver.field`: either a user class
// field read, an enum case reference (`Color.Red`, where the "receiver" is
// actually an enum type name rather than a value), or — when receiver is
// itself an implicit-this field access — still a plain FieldAccess, since
// CMSL has no privileged access syntax beyond the field index lookup
// itself.
func (a *Analyzer) analyzeMemberAccess(m *ast.MemberAccess, scope *Scope) Expr {
	if id, ok := m.Receiver.(*ast.Identifier); ok {
		if _, isVar := scope.Lookup(id.Name()); !isVar {
			if et, ok := a.in.LookupEnum(id.Name()); ok {
				return a.resolveEnumCase(et, m.Member, m.Rng)
			}
		}
	}

	receiver := a.analyzeExpr(m.Receiver, scope)
	ct, ok := types.Deref(receiver.Type()).(*types.ClassType)
	if !ok {
		a.errorf(m.Rng, "%s has no field %q", receiver.Type(), m.Member.Lexeme)
		return &IntLit{typed: typed{T: types.Int, Rng: m.Rng}}
	}
	idx := -1
	for i, f := range ct.Fields {
		if f.Name == m.Member.Lexeme {
			idx = i
			break
		}
	}
	if idx < 0 {
		a.errorf(m.Rng, "%s has no field %q", ct, m.Member.Lexeme)
		return &IntLit{typed: typed{T: types.Int, Rng: m.Rng}}
	}
	field := ct.Fields[idx]
	return &FieldAccess{typed: typed{T: field.Type, Rng: m.Rng}, Receiver: receiver, FieldIndex: idx, FieldName: field.Name}
}

// resolveEnumCase looks up member among et's declared cases, reporting a
// diagnostic for an unknown case name rather than letting it fall through
// to "undeclared identifier" (the enum type itself resolved fine; only the
// case name is at fault).
func (a *Analyzer) resolveEnumCase(et *types.EnumType, member token.Token, rng token.Range) Expr {
	ord, ok := et.ValueOf(member.Lexeme)
	if !ok {
		a.errorf(rng, "%s has no case %q", et, member.Lexeme)
		return &IntLit{typed: typed{T: types.Int, Rng: rng}}
	}
	return &EnumCaseRef{typed: typed{T: et, Rng: rng}, Case: member.Lexeme, Ordinal: ord}
}

// analyzeFunctionCall resolves a free-function or constructor call using
// §4.6's layered scope-candidate rule. A name with no free-function binding
// falls back, inside a method body, to an implicit-self method call — CMSL
// has no `this` keyword, so `get()` called from a sibling method of the
// same class parses identically to a free-function call.
func (a *Analyzer) analyzeFunctionCall(fc *ast.FunctionCall, scope *Scope) Expr {
	name := fc.Callee.Lexeme
	args := a.analyzeArgs(fc.Args, scope)

	if layers := scope.LookupLayers(name); len(layers) > 0 {
		sym := layers[0]
		if !sym.IsFunction() {
			a.errorf(fc.Rng, "%q is not a function", name)
			return &Call{typed: typed{T: types.Void, Rng: fc.Rng}, Args: args}
		}
		winner, converted := a.resolveCall(sym.Functions, name, args, fc.Rng)
		if winner == nil {
			return &Call{typed: typed{T: types.Void, Rng: fc.Rng}, Args: converted}
		}
		return &Call{typed: typed{T: winner.ReturnType, Rng: fc.Rng}, Callee: winner, Args: converted}
	}

	if a.currentClass != nil {
		if cands := a.memberCandidates(a.currentClass, name); len(cands) > 0 {
			winner, converted := a.resolveCall(cands, name, args, fc.Rng)
			self := &SelfRef{typed: typed{T: a.currentClass, Rng: fc.Rng}}
			if winner == nil {
				return &MethodCall{typed: typed{T: types.Void, Rng: fc.Rng}, Receiver: self, Args: converted}
			}
			return &MethodCall{typed: typed{T: winner.ReturnType, Rng: fc.Rng}, Receiver: self, Callee: winner, Args: converted}
		}
	}

	// A name that is not a declared function but does name a type
	// (a fundamental, or a builtin/user class) is a constructor call —
	// `bool(x)`, `version(1, 2, 3)`, `project("app")` all parse as
	// ast.FunctionCall, resolved here against that type's own "Ctor"
	// members rather than a bespoke constructor-call AST node.
	if t, ok := a.in.LookupNamed(name); ok {
		if cands := a.memberCandidates(t, name); len(cands) > 0 {
			winner, converted := a.resolveCall(cands, name, args, fc.Rng)
			if winner == nil {
				return &Call{typed: typed{T: t, Rng: fc.Rng}, Args: converted}
			}
			return &Call{typed: typed{T: winner.ReturnType, Rng: fc.Rng}, Callee: winner, Args: converted}
		}
	}

	a.errorf(fc.Rng, "undeclared function %q", name)
	return &Call{typed: typed{T: types.Void, Rng: fc.Rng}, Args: args}
}

// analyzeMethodCall resolves `receiver.method(args)` against the
// receiver's flat member-candidate set.
func (a *Analyzer) analyzeMethodCall(mc *ast.MemberFunctionCall, scope *Scope) Expr {
	receiver := a.analyzeExpr(mc.Receiver, scope)
	args := a.analyzeArgs(mc.Args, scope)
	winner, converted := a.resolveMethodCall(receiver.Type(), mc.Method.Lexeme, args, mc.Rng)
	if winner == nil {
		return &MethodCall{typed: typed{T: types.Void, Rng: mc.Rng}, Receiver: receiver, Args: converted}
	}
	return &MethodCall{typed: typed{T: winner.ReturnType, Rng: mc.Rng}, Receiver: receiver, Callee: winner, Args: converted}
}

func (a *Analyzer) analyzeArgs(args []ast.Expr, scope *Scope) []Expr {
	out := make([]Expr, len(args))
	for i, arg := range args {
		out[i] = a.analyzeExpr(arg, scope)
	}
	return out
}

// analyzeIndex resolves `receiver[at]`, §4.3's [EXPANSION] list operator[],
// through the same member-resolution path as a named method.
func (a *Analyzer) analyzeIndex(ix *ast.IndexExpr, scope *Scope) Expr {
	receiver := a.analyzeExpr(ix.Receiver, scope)
	at := a.analyzeExpr(ix.Index, scope)
	winner, converted := a.resolveMethodCall(receiver.Type(), "operator[]", []Expr{at}, ix.Rng)
	if winner == nil {
		return &Index{typed: typed{T: types.Int, Rng: ix.Rng}, Receiver: receiver, At: converted[0]}
	}
	return &Index{typed: typed{T: winner.ReturnType, Rng: ix.Rng}, Receiver: receiver, At: converted[0]}
}

// analyzeInitializerList resolves `{ ... }` against target, required to be
// a list<T> — CMSL has no way to infer an initializer list's type on its
// own (§4.4).
func (a *Analyzer) analyzeInitializerList(il *ast.InitializerList, scope *Scope, target types.Type) Expr {
	lt, ok := target.(*types.ListType)
	if !ok {
		a.errorf(il.Rng, "initializer list requires a list<T> target type")
		return &InitList{typed: typed{T: types.Void, Rng: il.Rng}}
	}
	elems := make([]Expr, len(il.Elements))
	for i, e := range il.Elements {
		elems[i] = a.convertTo(a.analyzeExpr(e, scope), lt.Element, e.Range())
	}
	return &InitList{typed: typed{T: lt, Rng: il.Rng}, Elements: elems}
}
