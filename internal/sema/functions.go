package sema

import (
	"github.com/cmsl-lang/cmsl/internal/types"
	"github.com/cmsl-lang/cmsl/pkg/ast"
)

// analyzeClassBody analyses every method of cd against the already
// registered ClassType, returning the Class SEMA node.
func (a *Analyzer) analyzeClassBody(cd *ast.ClassDecl) *Class {
	ct, _ := a.in.LookupClass(cd.NameTok.Lexeme)
	cls := &Class{Type: ct}
	prevClass := a.currentClass
	a.currentClass = ct
	defer func() { a.currentClass = prevClass }()

	for _, md := range cd.Methods {
		fn := a.resolveMethodSymbol(ct, md)
		cls.Methods = append(cls.Methods, a.analyzeFunctionBody(md, fn))
	}
	return cls
}

// analyzeFunctionBody analyses fd's body in a fresh scope seeded with its
// parameters (and, for a method, its receiver's fields via DefineField),
// then records the resulting Block on fn.Body so both the Program tree and
// fn's own FunctionSymbol are ready for evaluation.
func (a *Analyzer) analyzeFunctionBody(fd *ast.FunctionDecl, fn *FunctionSymbol) *Function {
	scope := a.global.Nested()
	if fn != nil && fn.ReceiverType != nil {
		if ct, ok := fn.ReceiverType.(*types.ClassType); ok {
			for i, f := range ct.Fields {
				scope.DefineField(f.Name, f.Type, i)
			}
		}
	}

	var paramSyms []*Symbol
	for i, p := range fd.Params {
		t := a.resolveType(p.Type)
		if fn != nil && i < len(fn.Params) {
			t = fn.Params[i]
		}
		paramSyms = append(paramSyms, scope.DefineVar(p.Name.Lexeme, t))
	}

	prevReturn := a.currentReturnType
	if fn != nil {
		a.currentReturnType = fn.ReturnType
	}
	body := a.analyzeBlock(fd.Body, scope)
	a.currentReturnType = prevReturn

	if fn != nil {
		fn.Body = body
		fn.ParamSymbols = paramSyms
	}
	return &Function{Symbol: fn, Params: paramSyms, Body: body}
}
