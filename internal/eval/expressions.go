package eval

import (
	"github.com/cmsl-lang/cmsl/internal/diag"
	"github.com/cmsl-lang/cmsl/internal/sema"
	"github.com/cmsl-lang/cmsl/internal/types"
	"github.com/cmsl-lang/cmsl/internal/value"
)

// evalExpr is the main expression dispatcher (§4.7): every SEMA expression
// node evaluates to an instance the caller owns. Reading a value out of
// storage (a variable, a field, a list element) always copies it (§4.5);
// receiver-position evaluation goes through evalReceiver instead, which
// aliases rather than copies so method calls and nested field assignment
// can mutate the real object.
func (e *Evaluator) evalExpr(expr sema.Expr, frame *Frame) value.Value {
	switch x := expr.(type) {
	case *sema.BoolLit:
		return value.Bool{Value: x.Value}
	case *sema.IntLit:
		return value.Int{Value: x.Value}
	case *sema.DoubleLit:
		return value.Double{Value: x.Value}
	case *sema.StringLit:
		return value.String{Value: x.Value}
	case *sema.EnumCaseRef:
		return &value.Enum{Class: x.Type().(*types.EnumType), Case: x.Case, Ordinal: x.Ordinal}
	case *sema.VarRef, *sema.SelfFieldRef, *sema.FieldAccess, *sema.Index:
		return e.evalCell(expr, frame).Get().Copy()
	case *sema.SelfRef:
		return frame.self
	case *sema.Cast:
		return e.evalCast(x, frame)
	case *sema.Binary:
		return e.evalBinary(x, frame)
	case *sema.Unary:
		return e.evalUnary(x, frame)
	case *sema.Call:
		return e.evalCall(x, frame)
	case *sema.MethodCall:
		return e.evalMethodCall(x, frame)
	case *sema.InitList:
		return e.evalInitList(x, frame)
	default:
		return e.internalError(expr.Range(), "unhandled expression node %T", expr)
	}
}

// evalReceiver evaluates expr for use as a method/field/index receiver:
// lvalue-shaped and self-shaped expressions are read without copying, so
// calling a mutating method or assigning through a chained field reaches
// the real object rather than a fresh copy of it.
func (e *Evaluator) evalReceiver(expr sema.Expr, frame *Frame) value.Value {
	switch expr.(type) {
	case *sema.VarRef, *sema.SelfFieldRef, *sema.FieldAccess, *sema.Index:
		return e.evalCell(expr, frame).Get()
	case *sema.SelfRef:
		return frame.self
	default:
		return e.evalExpr(expr, frame)
	}
}

// evalCell resolves expr to the Cell backing its storage, without ever
// copying: the single navigation primitive used by assignment, reference
// taking (CastTakeReference), and chained receiver access.
func (e *Evaluator) evalCell(expr sema.Expr, frame *Frame) *value.Cell {
	switch x := expr.(type) {
	case *sema.VarRef:
		c, ok := frame.lookup(x.Sym.Name)
		if !ok {
			e.internalError(x.Rng, "unbound variable %q", x.Sym.Name)
			return value.NewCell(value.Zero(x.Sym.Type))
		}
		return c
	case *sema.SelfFieldRef:
		if frame.self == nil {
			e.internalError(x.Rng, "field %q referenced with no receiver bound", x.FieldName)
			return value.NewCell(value.Void{})
		}
		return frame.self.Fields[x.FieldIndex]
	case *sema.FieldAccess:
		recv := e.evalReceiver(x.Receiver, frame)
		inst, ok := recv.(*value.Instance)
		if !ok {
			e.internalError(x.Rng, "field access on non-instance value")
			return value.NewCell(value.Void{})
		}
		return inst.Fields[x.FieldIndex]
	case *sema.Index:
		recv := e.evalReceiver(x.Receiver, frame)
		lst, ok := recv.(*value.List)
		if !ok {
			e.internalError(x.Rng, "index access on non-list value")
			return value.NewCell(value.Void{})
		}
		at := e.evalExpr(x.At, frame)
		i, ok := at.(value.Int)
		if !ok || i.Value < 0 || int(i.Value) >= len(lst.Elements) {
			e.runtimeFatal(x.Rng, "list index %v out of range (size %d)", at, len(lst.Elements))
			return value.NewCell(value.Zero(lst.Element))
		}
		return lst.Elements[i.Value]
	case *sema.Cast:
		// CastTakeReference/CastDereference both name the same underlying
		// storage as their operand; the distinction matters only to the
		// caller deciding whether to Borrow() or Copy() what comes back.
		return e.evalCell(x.X, frame)
	default:
		e.observer.NotifyError(diag.NewInternal(expr.Range(), "expression is not an lvalue"))
		return value.NewCell(value.Void{})
	}
}

// bindingCellFor resolves expr to the Cell a new reference binding should
// alias — a function parameter bound by T&, or a `T& r = ...;` local —
// collapsing through an explicit CastTakeReference to its lvalue operand.
func (e *Evaluator) bindingCellFor(expr sema.Expr, frame *Frame) *value.Cell {
	if c, ok := expr.(*sema.Cast); ok && c.Kind == sema.CastTakeReference {
		expr = c.X
	}
	return value.Borrow(e.evalCell(expr, frame))
}

func (e *Evaluator) evalCast(c *sema.Cast, frame *Frame) value.Value {
	switch c.Kind {
	case sema.CastIntToDouble:
		return value.Double{Value: float64(e.evalExpr(c.X, frame).(value.Int).Value)}
	case sema.CastIntToBool:
		return value.Bool{Value: e.evalExpr(c.X, frame).(value.Int).Value != 0}
	case sema.CastBoolToInt:
		v := int64(0)
		if e.evalExpr(c.X, frame).(value.Bool).Value {
			v = 1
		}
		return value.Int{Value: v}
	case sema.CastEnumToInt:
		return value.Int{Value: e.evalExpr(c.X, frame).(*value.Enum).Ordinal}
	case sema.CastDereference, sema.CastTakeReference:
		return e.evalCell(c.X, frame).Get().Copy()
	default:
		return e.internalError(c.Rng, "unhandled cast kind %d", c.Kind)
	}
}

// evalInitList evaluates a `{ ... }` initializer against its resolved
// list<T> target type, copying each element into a freshly owned Cell
// (§4.5 — a list literal owns none of its source expressions' storage).
func (e *Evaluator) evalInitList(il *sema.InitList, frame *Frame) value.Value {
	lt, ok := types.Deref(il.Type()).(*types.ListType)
	if !ok {
		return e.internalError(il.Rng, "initializer list has non-list type %s", il.Type())
	}
	lst := value.NewList(lt.Element)
	for _, elem := range il.Elements {
		lst.PushBack(e.evalExpr(elem, frame))
	}
	return lst
}
