package sema_test

import (
	"testing"

	"github.com/cmsl-lang/cmsl/internal/diag"
	"github.com/cmsl-lang/cmsl/internal/lexer"
	"github.com/cmsl-lang/cmsl/internal/parser"
	"github.com/cmsl-lang/cmsl/internal/sema"
	"github.com/cmsl-lang/cmsl/internal/types"
)

func analyze(t *testing.T, src string) (*sema.Program, *diag.Collector) {
	t.Helper()
	collector := diag.NewCollector()
	toks := lexer.New(src, collector).Tokenize()
	tu := parser.New(toks, collector).Parse()
	prog := sema.New(collector).Analyze(tu)
	return prog, collector
}

func requireNoErrors(t *testing.T, collector *diag.Collector) {
	t.Helper()
	if collector.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", collector.Diagnostics)
	}
}

func TestAnalyzeFreeFunctionArithmetic(t *testing.T) {
	src := `int add(int a, int b) { return a + b; }`
	prog, collector := analyze(t, src)
	requireNoErrors(t, collector)

	if len(prog.Functions) != 1 {
		t.Fatalf("expected 1 function, got %d", len(prog.Functions))
	}
	fn := prog.Functions[0]
	if !types.Equal(fn.Symbol.ReturnType, types.Int) {
		t.Fatalf("expected int return type, got %s", fn.Symbol.ReturnType)
	}
	ret, ok := fn.Body.Stmts[0].(*sema.ReturnStmt)
	if !ok {
		t.Fatalf("expected a ReturnStmt, got %T", fn.Body.Stmts[0])
	}
	bin, ok := ret.Value.(*sema.Binary)
	if !ok {
		t.Fatalf("expected a Binary node, got %T", ret.Value)
	}
	if !types.Equal(bin.Type(), types.Int) {
		t.Fatalf("expected binary result type int, got %s", bin.Type())
	}
}

func TestAnalyzeImplicitIntToDoubleConversion(t *testing.T) {
	src := `double half(int x) { double y = x; return y; }`
	_, collector := analyze(t, src)
	requireNoErrors(t, collector)
}

func TestAnalyzeClassMethodCallsSiblingMethod(t *testing.T) {
	src := `
class counter {
	int value;

	int get() {
		return value;
	}

	void bump() {
		value = get() + 1;
	}
};
`
	prog, collector := analyze(t, src)
	requireNoErrors(t, collector)

	if len(prog.Classes) != 1 {
		t.Fatalf("expected 1 class, got %d", len(prog.Classes))
	}
	cls := prog.Classes[0]
	var bump *sema.Function
	for _, m := range cls.Methods {
		if m.Symbol.Name == "bump" {
			bump = m
		}
	}
	if bump == nil {
		t.Fatalf("bump method not found")
	}
	exprStmt, ok := bump.Body.Stmts[0].(*sema.ExprStmt)
	if !ok {
		t.Fatalf("expected an ExprStmt, got %T", bump.Body.Stmts[0])
	}
	assign, ok := exprStmt.X.(*sema.Binary)
	if !ok {
		t.Fatalf("expected assignment Binary, got %T", exprStmt.X)
	}
	if _, ok := assign.Left.(*sema.SelfFieldRef); !ok {
		t.Fatalf("expected assignment target to be a SelfFieldRef, got %T", assign.Left)
	}
	addExpr, ok := assign.Right.(*sema.Binary)
	if !ok {
		t.Fatalf("expected the RHS to be a Binary(get()+1), got %T", assign.Right)
	}
	// get() has no explicit receiver in source — CMSL has no `this` — so it
	// resolves to an implicit-self MethodCall rather than a free-function Call.
	call, ok := addExpr.Left.(*sema.MethodCall)
	if !ok {
		t.Fatalf("expected the call to get() to be a MethodCall node, got %T", addExpr.Left)
	}
	if _, ok := call.Receiver.(*sema.SelfRef); !ok {
		t.Fatalf("expected get()'s receiver to be an implicit SelfRef, got %T", call.Receiver)
	}
	if call.Callee == nil || call.Callee.Body == nil {
		t.Fatalf("expected get()'s resolved Callee to already carry its analysed Body")
	}
}

func TestAnalyzeListPushBackAndIndex(t *testing.T) {
	src := `
void fill() {
	list<int> xs;
	xs.push_back(1);
	int first = xs[0];
}
`
	_, collector := analyze(t, src)
	requireNoErrors(t, collector)
}

func TestAnalyzeUndeclaredIdentifierReportsResolveError(t *testing.T) {
	src := `int bad() { return missing; }`
	_, collector := analyze(t, src)
	if !collector.HasErrors() {
		t.Fatalf("expected a diagnostic for the undeclared identifier")
	}
	if collector.Diagnostics[0].Category != diag.CategoryResolve {
		t.Fatalf("expected a Resolve diagnostic, got %s", collector.Diagnostics[0].Category)
	}
}

func TestAnalyzeUnsupportedLiteralConcatReportsError(t *testing.T) {
	src := `void f() { int x = "oops" + true; }`
	_, collector := analyze(t, src)
	if !collector.HasErrors() {
		t.Fatalf("expected a diagnostic for the unsupported operand combination")
	}
}

func TestAnalyzeReferenceParameterRejectsTemporaryArgument(t *testing.T) {
	src := `
void increment(int& n) {
	n = n + 1;
}
void f() {
	increment(1 + 1);
}
`
	_, collector := analyze(t, src)
	if !collector.HasErrors() {
		t.Fatalf("expected a diagnostic for binding a reference parameter to a temporary")
	}
	if collector.Diagnostics[0].Category != diag.CategoryOverload {
		t.Fatalf("expected an Overload diagnostic (no matching function), got %s", collector.Diagnostics[0].Category)
	}
}

func TestAnalyzeInitializerListAgainstDeclaredListType(t *testing.T) {
	src := `void f() { list<int> xs = {1, 2, 3}; }`
	prog, collector := analyze(t, src)
	requireNoErrors(t, collector)

	decl := prog.Functions[0].Body.Stmts[0].(*sema.VarDeclStmt)
	lit, ok := decl.Initializer.(*sema.InitList)
	if !ok {
		t.Fatalf("expected an InitList, got %T", decl.Initializer)
	}
	if len(lit.Elements) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(lit.Elements))
	}
}
