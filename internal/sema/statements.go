package sema

import (
	"github.com/cmsl-lang/cmsl/internal/types"
	"github.com/cmsl-lang/cmsl/pkg/ast"
)

func (a *Analyzer) analyzeBlock(b *ast.Block, scope *Scope) *Block {
	out := &Block{Rng: b.Rng}
	for _, s := range b.Stmts {
		if analyzed := a.analyzeStmt(s, scope); analyzed != nil {
			out.Stmts = append(out.Stmts, analyzed)
		}
	}
	return out
}

func (a *Analyzer) analyzeStmt(s ast.Stmt, scope *Scope) Stmt {
	switch stmt := s.(type) {
	case *ast.ExprStmt:
		return &ExprStmt{X: a.analyzeExpr(stmt.X, scope), Rng: stmt.Rng}
	case *ast.ReturnStmt:
		return a.analyzeReturn(stmt, scope)
	case *ast.IfElse:
		return a.analyzeIfElse(stmt, scope)
	case *ast.While:
		return a.analyzeWhile(stmt, scope)
	case *ast.VariableDecl:
		return a.analyzeVariableDecl(stmt, scope)
	case *ast.Block:
		return a.analyzeBlock(stmt, scope.Nested())
	default:
		a.errorf(s.Range(), "internal: unhandled statement kind %T", s)
		return nil
	}
}

func (a *Analyzer) analyzeReturn(r *ast.ReturnStmt, scope *Scope) Stmt {
	out := &ReturnStmt{Rng: r.Rng}
	if r.Value == nil {
		if a.currentReturnType != nil && !types.Equal(a.currentReturnType, types.Void) {
			a.errorf(r.Rng, "missing return value for a function returning %s", a.currentReturnType)
		}
		return out
	}
	val := a.analyzeExpr(r.Value, scope)
	out.Value = a.convertTo(val, a.currentReturnType, r.Value.Range())
	return out
}

func (a *Analyzer) analyzeIfElse(ie *ast.IfElse, scope *Scope) Stmt {
	out := &IfStmt{Rng: ie.Rng}
	for _, br := range ie.Branches {
		cond := a.analyzeExpr(br.Condition, scope)
		cond = a.convertTo(cond, types.Bool, br.Condition.Range())
		out.Branches = append(out.Branches, IfBranch{Condition: cond, Body: a.analyzeBlock(br.Body, scope.Nested())})
	}
	if ie.Else != nil {
		out.Else = a.analyzeBlock(ie.Else, scope.Nested())
	}
	return out
}

func (a *Analyzer) analyzeWhile(w *ast.While, scope *Scope) Stmt {
	cond := a.analyzeExpr(w.Condition, scope)
	cond = a.convertTo(cond, types.Bool, w.Condition.Range())
	return &WhileStmt{Condition: cond, Body: a.analyzeBlock(w.Body, scope.Nested()), Rng: w.Rng}
}

func (a *Analyzer) analyzeVariableDecl(v *ast.VariableDecl, scope *Scope) Stmt {
	declared := a.resolveType(v.Type)
	out := &VarDeclStmt{Rng: v.Rng}
	if v.Initializer != nil {
		init := a.analyzeExprWithTarget(v.Initializer, scope, declared)
		out.Initializer = a.convertTo(init, declared, v.Initializer.Range())
	}
	out.Sym = scope.DefineVar(v.NameTok.Lexeme, declared)
	return out
}
