package eval

import (
	"github.com/cmsl-lang/cmsl/internal/builtins"
	"github.com/cmsl-lang/cmsl/internal/sema"
	"github.com/cmsl-lang/cmsl/internal/value"
	"github.com/cmsl-lang/cmsl/pkg/token"
)

// operatorKey pairs a runtime value Kind with the token operator applied to
// it, the key binaryKinds is looked up by to find the single catalog
// entry that both `a + b` and a hypothetical `a.operator+(b)` would
// resolve to — one dispatch table services both call shapes (§4.3/§4.5).
type operatorKey struct {
	recv value.Kind
	op   token.Kind
}

var binaryKinds = map[operatorKey]builtins.Kind{
	{value.KindBool, token.EQUAL_EQUAL}: builtins.BoolOperatorEqualEqual,
	{value.KindBool, token.NOT_EQUAL}:   builtins.BoolOperatorNotEqual,
	{value.KindBool, token.PIPE_PIPE}:   builtins.BoolOperatorPipePipe,
	{value.KindBool, token.AMP_AMP}:     builtins.BoolOperatorAmpAmp,

	{value.KindInt, token.EQUAL_EQUAL}:   builtins.IntOperatorEqualEqual,
	{value.KindInt, token.NOT_EQUAL}:     builtins.IntOperatorNotEqual,
	{value.KindInt, token.LESS}:          builtins.IntOperatorLess,
	{value.KindInt, token.LESS_EQUAL}:    builtins.IntOperatorLessEqual,
	{value.KindInt, token.GREATER}:       builtins.IntOperatorGreater,
	{value.KindInt, token.GREATER_EQUAL}: builtins.IntOperatorGreaterEqual,
	{value.KindInt, token.PLUS}:          builtins.IntOperatorPlus,
	{value.KindInt, token.MINUS}:         builtins.IntOperatorMinus,
	{value.KindInt, token.STAR}:          builtins.IntOperatorStar,
	{value.KindInt, token.SLASH}:         builtins.IntOperatorSlash,
	{value.KindInt, token.PLUS_EQUAL}:    builtins.IntOperatorPlusEqual,
	{value.KindInt, token.MINUS_EQUAL}:   builtins.IntOperatorMinusEqual,
	{value.KindInt, token.STAR_EQUAL}:    builtins.IntOperatorStarEqual,
	{value.KindInt, token.SLASH_EQUAL}:   builtins.IntOperatorSlashEqual,

	{value.KindDouble, token.EQUAL_EQUAL}:   builtins.DoubleOperatorEqualEqual,
	{value.KindDouble, token.NOT_EQUAL}:     builtins.DoubleOperatorNotEqual,
	{value.KindDouble, token.LESS}:          builtins.DoubleOperatorLess,
	{value.KindDouble, token.LESS_EQUAL}:    builtins.DoubleOperatorLessEqual,
	{value.KindDouble, token.GREATER}:       builtins.DoubleOperatorGreater,
	{value.KindDouble, token.GREATER_EQUAL}: builtins.DoubleOperatorGreaterEqual,
	{value.KindDouble, token.PLUS}:          builtins.DoubleOperatorPlus,
	{value.KindDouble, token.MINUS}:         builtins.DoubleOperatorMinus,
	{value.KindDouble, token.STAR}:          builtins.DoubleOperatorStar,
	{value.KindDouble, token.SLASH}:         builtins.DoubleOperatorSlash,
	{value.KindDouble, token.PLUS_EQUAL}:    builtins.DoubleOperatorPlusEqual,
	{value.KindDouble, token.MINUS_EQUAL}:   builtins.DoubleOperatorMinusEqual,
	{value.KindDouble, token.STAR_EQUAL}:    builtins.DoubleOperatorStarEqual,
	{value.KindDouble, token.SLASH_EQUAL}:   builtins.DoubleOperatorSlashEqual,

	{value.KindString, token.EQUAL_EQUAL}:   builtins.StringOperatorEqualEqual,
	{value.KindString, token.NOT_EQUAL}:     builtins.StringOperatorNotEqual,
	{value.KindString, token.LESS}:          builtins.StringOperatorLess,
	{value.KindString, token.LESS_EQUAL}:    builtins.StringOperatorLessEqual,
	{value.KindString, token.GREATER}:       builtins.StringOperatorGreater,
	{value.KindString, token.GREATER_EQUAL}: builtins.StringOperatorGreaterEqual,
	{value.KindString, token.PLUS}:          builtins.StringOperatorPlus,
	{value.KindString, token.PLUS_EQUAL}:    builtins.StringOperatorPlusEqual,

	{value.KindVersion, token.EQUAL_EQUAL}:   builtins.VersionOperatorEqualEqual,
	{value.KindVersion, token.NOT_EQUAL}:     builtins.VersionOperatorNotEqual,
	{value.KindVersion, token.LESS}:          builtins.VersionOperatorLess,
	{value.KindVersion, token.LESS_EQUAL}:    builtins.VersionOperatorLessEqual,
	{value.KindVersion, token.GREATER}:       builtins.VersionOperatorGreater,
	{value.KindVersion, token.GREATER_EQUAL}: builtins.VersionOperatorGreaterEqual,
}

// evalBinary executes every two-operand operator (§4.5/§9): plain
// assignment writes through the left-hand side's Cell directly; compound
// assignment reads-modifies-writes it through the same dispatch table as
// the corresponding plain operator; '&&'/'||' short-circuit without
// evaluating the right operand once the outcome is already known.
func (e *Evaluator) evalBinary(b *sema.Binary, frame *Frame) value.Value {
	if b.Op.Kind == token.EQUAL {
		cell := e.evalCell(b.Left, frame)
		rv := e.evalExpr(b.Right, frame)
		cell.Set(rv.Copy())
		return cell.Get()
	}

	switch b.Op.Kind {
	case token.PLUS_EQUAL, token.MINUS_EQUAL, token.STAR_EQUAL, token.SLASH_EQUAL:
		cell := e.evalCell(b.Left, frame)
		cur := cell.Get()
		rv := e.evalExpr(b.Right, frame)
		kind, ok := binaryKinds[operatorKey{cur.Kind(), b.Op.Kind}]
		if !ok {
			e.internalError(b.Rng, "no compound-assignment dispatch for %s on %s", b.Op.Kind, cur.Kind())
			return cur
		}
		result := e.dispatchBuiltin(kind, cur, []value.Value{rv}, b.Rng)
		cell.Set(result)
		return result
	case token.AMP_AMP:
		lv := e.evalExpr(b.Left, frame).(value.Bool)
		if !lv.Value {
			return value.Bool{Value: false}
		}
		rv := e.evalExpr(b.Right, frame).(value.Bool)
		return value.Bool{Value: rv.Value}
	case token.PIPE_PIPE:
		lv := e.evalExpr(b.Left, frame).(value.Bool)
		if lv.Value {
			return value.Bool{Value: true}
		}
		rv := e.evalExpr(b.Right, frame).(value.Bool)
		return value.Bool{Value: rv.Value}
	}

	lv := e.evalExpr(b.Left, frame)
	rv := e.evalExpr(b.Right, frame)
	kind, ok := binaryKinds[operatorKey{lv.Kind(), b.Op.Kind}]
	if !ok {
		e.internalError(b.Rng, "no binary dispatch for %s on %s", b.Op.Kind, lv.Kind())
		return lv
	}
	return e.dispatchBuiltin(kind, lv, []value.Value{rv}, b.Rng)
}

// evalUnary executes '-' and '!'. '!' has no catalog member (per the
// analyser's comment in analyzeUnary) so it is handled directly rather
// than through dispatchBuiltin.
func (e *Evaluator) evalUnary(u *sema.Unary, frame *Frame) value.Value {
	v := e.evalExpr(u.Operand, frame)
	switch u.Op.Kind {
	case token.BANG:
		return value.Bool{Value: !v.(value.Bool).Value}
	case token.MINUS:
		switch vv := v.(type) {
		case value.Int:
			return value.Int{Value: -vv.Value}
		case value.Double:
			return value.Double{Value: -vv.Value}
		}
	}
	e.internalError(u.Rng, "no unary dispatch for %s on %s", u.Op.Kind, v.Kind())
	return v
}
