package eval

import (
	"github.com/cmsl-lang/cmsl/internal/builtins"
	"github.com/cmsl-lang/cmsl/internal/sema"
	"github.com/cmsl-lang/cmsl/internal/types"
	"github.com/cmsl-lang/cmsl/internal/value"
)

// mutatesSelfString names the string builtin members that edit their
// receiver in place (§4.3's clear/insert/erase/replace/resize/lower/upper)
// rather than returning a fresh value without touching it. Every other
// builtin's receiver is either a pointer type that already mutates through
// aliasing (*List, *Version, *BuildTarget, *Instance) or is non-mutating,
// so only string — a plain value type — needs this explicit write-back.
var mutatesSelfString = map[builtins.Kind]bool{
	builtins.StringClear:              true,
	builtins.StringInsertPosStr:       true,
	builtins.StringErasePos:           true,
	builtins.StringErasePosCount:      true,
	builtins.StringReplacePosCountStr: true,
	builtins.StringResizeNewSize:      true,
	builtins.StringResizeNewSizeFill:  true,
	builtins.StringLower:              true,
	builtins.StringUpper:              true,
}

// evalCall executes a Call node: a free-function call, or a constructor
// call (bool(x), version(1,2,3), project("app")) resolved by
// analyzeFunctionCall's type-name fallback (§4.3) — constructors have no
// receiver of their own, Void{} stands in for one.
func (e *Evaluator) evalCall(c *sema.Call, frame *Frame) value.Value {
	if c.Callee == nil {
		return value.Void{}
	}
	if c.Callee.IsBuiltin {
		args := e.evalArgValues(c.Args, frame)
		return e.dispatchBuiltin(builtins.Kind(c.Callee.BuiltinKind), value.Void{}, args, c.Rng)
	}
	argCells := e.evalArgCells(c.Callee, c.Args, frame)
	return e.callFunction(c.Callee, nil, argCells)
}

// evalMethodCall executes a MethodCall node. The receiver is evaluated
// through evalReceiver so a user method body — or a mutating string
// builtin — reaches the real object rather than a throwaway copy.
func (e *Evaluator) evalMethodCall(mc *sema.MethodCall, frame *Frame) value.Value {
	if mc.Callee == nil {
		return value.Void{}
	}

	var receiverCell *value.Cell
	if isLvalueExpr(mc.Receiver) {
		receiverCell = e.evalCell(mc.Receiver, frame)
	}
	receiver := e.evalReceiver(mc.Receiver, frame)

	if mc.Callee.IsBuiltin {
		kind := builtins.Kind(mc.Callee.BuiltinKind)
		args := e.evalArgValues(mc.Args, frame)
		result := e.dispatchBuiltin(kind, receiver, args, mc.Rng)
		if receiverCell != nil && receiver.Kind() == value.KindString && mutatesSelfString[kind] {
			receiverCell.Set(result)
		}
		if mc.Callee.ReturnType != nil && mc.Callee.ReturnType.Kind() == types.KindVoid {
			return value.Void{}
		}
		return result
	}

	argCells := e.evalArgCells(mc.Callee, mc.Args, frame)
	return e.callFunction(mc.Callee, receiver, argCells)
}

// isLvalueExpr reports whether expr names storage evalCell can resolve,
// unwrapping the Cast nodes evalCell itself unwraps.
func isLvalueExpr(expr sema.Expr) bool {
	switch x := expr.(type) {
	case *sema.VarRef, *sema.SelfFieldRef, *sema.FieldAccess, *sema.Index:
		return true
	case *sema.Cast:
		return isLvalueExpr(x.X)
	default:
		return false
	}
}

// evalArgValues evaluates every argument as a fresh owned value, for
// builtin dispatch (which only ever reads arguments by value).
func (e *Evaluator) evalArgValues(argExprs []sema.Expr, frame *Frame) []value.Value {
	out := make([]value.Value, len(argExprs))
	for i, a := range argExprs {
		out[i] = e.evalExpr(a, frame)
	}
	return out
}

// evalArgCells binds every argument to the Cell its parameter should see:
// a Borrow of the original lvalue for a T& parameter, or a freshly owned
// copy for a by-value parameter (§4.5).
func (e *Evaluator) evalArgCells(fn *sema.FunctionSymbol, argExprs []sema.Expr, frame *Frame) []*value.Cell {
	out := make([]*value.Cell, len(argExprs))
	for i, a := range argExprs {
		if i < len(fn.Params) {
			if _, ok := fn.Params[i].(*types.ReferenceType); ok {
				out[i] = e.bindingCellFor(a, frame)
				continue
			}
		}
		out[i] = value.NewCell(e.evalExpr(a, frame).Copy())
	}
	return out
}

// callFunction runs a user-defined function or method body in a fresh root
// frame: argCells bind directly to the callee's ParamSymbols (already
// Borrowed where needed by evalArgCells); receiver becomes the frame's
// implicit self when it is an Instance (free functions pass nil).
func (e *Evaluator) callFunction(fn *sema.FunctionSymbol, receiver value.Value, argCells []*value.Cell) value.Value {
	var self *value.Instance
	if inst, ok := receiver.(*value.Instance); ok {
		self = inst
	}
	frame := newRootFrame(self)
	for i, sym := range fn.ParamSymbols {
		if i < len(argCells) {
			frame.define(sym.Name, argCells[i])
		}
	}

	if fn.Body != nil {
		e.execBlock(fn.Body, frame)
	}

	if frame.call.returned {
		return frame.call.ret
	}
	if fn.ReturnType == nil {
		return value.Void{}
	}
	return value.Zero(fn.ReturnType)
}
