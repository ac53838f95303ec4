package sema

import (
	"github.com/cmsl-lang/cmsl/internal/types"
	"github.com/cmsl-lang/cmsl/pkg/token"
)

// convertTo inserts the Cast nodes permitted by §4.5 to bring e's type to
// target, or reports a diagnostic and returns e unchanged if no permitted
// conversion exists. target == nil means "no expectation" and is a no-op.
func (a *Analyzer) convertTo(e Expr, target types.Type, rng token.Range) Expr {
	if e == nil || target == nil {
		return e
	}
	src := e.Type()
	if types.Equal(src, target) {
		return e
	}

	// Dereferencing T& in a value context produces T.
	if _, wantsRef := target.(*types.ReferenceType); !wantsRef {
		if srcRef, ok := src.(*types.ReferenceType); ok {
			if types.Equal(srcRef.Referenced, target) {
				return &Cast{typed: typed{T: target, Rng: rng}, Kind: CastDereference, X: e}
			}
			// fall through: dereference then try further numeric/enum conversions
			e = &Cast{typed: typed{T: srcRef.Referenced, Rng: rng}, Kind: CastDereference, X: e}
			src = srcRef.Referenced
		}
	}

	// Taking a reference to a non-temporary lvalue produces T&.
	if wantRef, ok := target.(*types.ReferenceType); ok {
		if types.Equal(src, wantRef.Referenced) {
			if !isLvalue(e) {
				a.errorf(rng, "cannot bind a reference to a temporary value")
				return e
			}
			return &Cast{typed: typed{T: target, Rng: rng}, Kind: CastTakeReference, X: e}
		}
		a.errorf(rng, "cannot convert %s to %s", src, target)
		return e
	}

	switch {
	case src.Kind() == types.KindInt && target.Kind() == types.KindDouble:
		return &Cast{typed: typed{T: target, Rng: rng}, Kind: CastIntToDouble, X: e}
	case src.Kind() == types.KindInt && target.Kind() == types.KindBool:
		return &Cast{typed: typed{T: target, Rng: rng}, Kind: CastIntToBool, X: e}
	case src.Kind() == types.KindBool && target.Kind() == types.KindInt:
		return &Cast{typed: typed{T: target, Rng: rng}, Kind: CastBoolToInt, X: e}
	case src.Kind() == types.KindEnum && target.Kind() == types.KindInt:
		return &Cast{typed: typed{T: target, Rng: rng}, Kind: CastEnumToInt, X: e}
	}

	a.errorf(rng, "cannot convert %s to %s", src, target)
	return e
}

// canConvert reports whether arg's type is reachable from target by one
// permitted implicit conversion (or is already identical), without emitting
// diagnostics or building a Cast — used by overload scoring (§4.6) to test
// candidates before committing to one. A T& target additionally requires arg
// to be an lvalue: a candidate that would only bind its reference parameter
// to a temporary is not viable (§7's reference-to-temporary overload
// failure), matching the rejection convertTo performs when it actually
// builds the CastTakeReference.
func canConvert(arg Expr, target types.Type) bool {
	src := arg.Type()
	if types.Equal(src, target) {
		return true
	}
	if srcRef, ok := src.(*types.ReferenceType); ok {
		if types.Equal(srcRef.Referenced, target) {
			return true
		}
		src = srcRef.Referenced
	}
	if wantRef, ok := target.(*types.ReferenceType); ok {
		return types.Equal(src, wantRef.Referenced) && isLvalue(arg)
	}
	switch {
	case src.Kind() == types.KindInt && target.Kind() == types.KindDouble,
		src.Kind() == types.KindInt && target.Kind() == types.KindBool,
		src.Kind() == types.KindBool && target.Kind() == types.KindInt,
		src.Kind() == types.KindEnum && target.Kind() == types.KindInt:
		return true
	}
	return false
}

// isLvalue reports whether e names storage that can be referenced: a
// variable, a field, or an indexed element — never a literal or the
// result of an arithmetic expression.
func isLvalue(e Expr) bool {
	switch e.(type) {
	case *VarRef, *SelfFieldRef, *FieldAccess, *Index:
		return true
	default:
		return false
	}
}
