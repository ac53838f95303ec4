package eval

import (
	"github.com/cmsl-lang/cmsl/internal/sema"
	"github.com/cmsl-lang/cmsl/internal/value"
)

// execBlock runs every statement of block in a scope nested under frame,
// stopping at the first statement boundary after a return or a fatal
// diagnostic (§5: the sticky fatal flag is only ever checked between
// statements, never mid-statement).
func (e *Evaluator) execBlock(block *sema.Block, frame *Frame) {
	inner := frame.nested()
	for _, stmt := range block.Stmts {
		if inner.call.returned || e.fatalOccurred() {
			return
		}
		e.execStmt(stmt, inner)
	}
}

func (e *Evaluator) execStmt(stmt sema.Stmt, frame *Frame) {
	switch s := stmt.(type) {
	case *sema.Block:
		e.execBlock(s, frame)
	case *sema.ExprStmt:
		e.evalExpr(s.X, frame)
	case *sema.VarDeclStmt:
		var cell *value.Cell
		if s.Initializer != nil {
			cell = value.NewCell(e.evalExpr(s.Initializer, frame).Copy())
		} else {
			cell = value.NewCell(value.Zero(s.Sym.Type))
		}
		frame.define(s.Sym.Name, cell)
	case *sema.ReturnStmt:
		if s.Value != nil {
			frame.call.ret = e.evalExpr(s.Value, frame)
		} else {
			frame.call.ret = value.Void{}
		}
		frame.call.returned = true
	case *sema.IfStmt:
		e.execIf(s, frame)
	case *sema.WhileStmt:
		e.execWhile(s, frame)
	default:
		e.internalError(stmt.Range(), "unhandled statement node %T", stmt)
	}
}

// execIf evaluates each branch's condition left to right (§5) and runs the
// first whose condition is true; an unmatched Else runs if present.
func (e *Evaluator) execIf(s *sema.IfStmt, frame *Frame) {
	for _, br := range s.Branches {
		cond := e.evalExpr(br.Condition, frame)
		if cond.(value.Bool).Value {
			e.execBlock(br.Body, frame)
			return
		}
	}
	if s.Else != nil {
		e.execBlock(s.Else, frame)
	}
}

func (e *Evaluator) execWhile(s *sema.WhileStmt, frame *Frame) {
	for {
		if frame.call.returned || e.fatalOccurred() {
			return
		}
		cond := e.evalExpr(s.Condition, frame)
		if !cond.(value.Bool).Value {
			return
		}
		e.execBlock(s.Body, frame)
	}
}
