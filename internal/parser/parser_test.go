package parser

import (
	"testing"

	"github.com/cmsl-lang/cmsl/internal/diag"
	"github.com/cmsl-lang/cmsl/internal/lexer"
	"github.com/cmsl-lang/cmsl/pkg/ast"
)

func parseSource(t *testing.T, src string) (*ast.TranslationUnit, *diag.Collector) {
	t.Helper()
	c := diag.NewCollector()
	toks := lexer.New(src, c).Tokenize()
	tu := New(toks, c).Parse()
	return tu, c
}

func TestParseFreeFunction(t *testing.T) {
	tu, c := parseSource(t, "int add(int a, int b) { return a + b; }")
	if len(c.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", c.Diagnostics)
	}
	if len(tu.Decls) != 1 {
		t.Fatalf("expected 1 decl, got %d", len(tu.Decls))
	}
	fn, ok := tu.Decls[0].(*ast.FunctionDecl)
	if !ok {
		t.Fatalf("expected *ast.FunctionDecl, got %T", tu.Decls[0])
	}
	if fn.Name() != "add" || len(fn.Params) != 2 {
		t.Errorf("unexpected function shape: %+v", fn)
	}
	if len(fn.Body.Stmts) != 1 {
		t.Fatalf("expected 1 statement in body, got %d", len(fn.Body.Stmts))
	}
	ret, ok := fn.Body.Stmts[0].(*ast.ReturnStmt)
	if !ok {
		t.Fatalf("expected *ast.ReturnStmt, got %T", fn.Body.Stmts[0])
	}
	bin, ok := ret.Value.(*ast.BinaryOp)
	if !ok || bin.Op.Lexeme != "+" {
		t.Fatalf("expected a + binary op, got %#v", ret.Value)
	}
}

func TestParseClassWithFieldsAndMethods(t *testing.T) {
	src := `
class Point {
	int x;
	int y;
	int sum() { return x + y; }
};`
	tu, c := parseSource(t, src)
	if len(c.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", c.Diagnostics)
	}
	cls, ok := tu.Decls[0].(*ast.ClassDecl)
	if !ok {
		t.Fatalf("expected *ast.ClassDecl, got %T", tu.Decls[0])
	}
	if len(cls.Fields) != 2 {
		t.Errorf("expected 2 fields, got %d", len(cls.Fields))
	}
	if len(cls.Methods) != 1 || cls.Methods[0].Name() != "sum" {
		t.Errorf("expected method sum, got %+v", cls.Methods)
	}
}

func TestParseEnumDecl(t *testing.T) {
	tu, c := parseSource(t, "enum Visibility { Public, Private = 5, Protected };")
	if len(c.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", c.Diagnostics)
	}
	e, ok := tu.Decls[0].(*ast.EnumDecl)
	if !ok {
		t.Fatalf("expected *ast.EnumDecl, got %T", tu.Decls[0])
	}
	if len(e.Cases) != 3 {
		t.Fatalf("expected 3 cases, got %d", len(e.Cases))
	}
	if e.Cases[1].Initializer == nil {
		t.Error("expected Private to have an explicit initializer")
	}
	if e.Cases[0].Initializer != nil || e.Cases[2].Initializer != nil {
		t.Error("expected Public and Protected to have no initializer")
	}
}

func TestParseListVariableDecl(t *testing.T) {
	tu, c := parseSource(t, "int main() { list<int> xs = { 1, 2, 3 }; return 0; }")
	if len(c.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", c.Diagnostics)
	}
	fn := tu.Decls[0].(*ast.FunctionDecl)
	decl, ok := fn.Body.Stmts[0].(*ast.VariableDecl)
	if !ok {
		t.Fatalf("expected *ast.VariableDecl, got %T", fn.Body.Stmts[0])
	}
	if decl.Type.String() != "list<int>" {
		t.Errorf("type = %q, want list<int>", decl.Type.String())
	}
	init, ok := decl.Initializer.(*ast.InitializerList)
	if !ok || len(init.Elements) != 3 {
		t.Fatalf("expected a 3-element initializer list, got %#v", decl.Initializer)
	}
}

func TestParseUnaryMinus(t *testing.T) {
	tu, c := parseSource(t, "int main() { return -42; }")
	if len(c.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", c.Diagnostics)
	}
	fn := tu.Decls[0].(*ast.FunctionDecl)
	ret := fn.Body.Stmts[0].(*ast.ReturnStmt)
	u, ok := ret.Value.(*ast.UnaryOp)
	if !ok || u.Op.Lexeme != "-" {
		t.Fatalf("expected a unary '-' op, got %#v", ret.Value)
	}
	lit, ok := u.Operand.(*ast.IntLiteral)
	if !ok || lit.Value != 42 {
		t.Fatalf("expected operand 42, got %#v", u.Operand)
	}
}

func TestParseIfElseChain(t *testing.T) {
	src := `int main() {
		if (a == 1) { return 1; }
		else if (a == 2) { return 2; }
		else { return 0; }
	}`
	tu, c := parseSource(t, src)
	if len(c.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", c.Diagnostics)
	}
	fn := tu.Decls[0].(*ast.FunctionDecl)
	ie, ok := fn.Body.Stmts[0].(*ast.IfElse)
	if !ok {
		t.Fatalf("expected *ast.IfElse, got %T", fn.Body.Stmts[0])
	}
	if len(ie.Branches) != 2 {
		t.Errorf("expected 2 branches, got %d", len(ie.Branches))
	}
	if ie.Else == nil {
		t.Error("expected a trailing else block")
	}
}

func TestParseMethodChainAndIndex(t *testing.T) {
	tu, c := parseSource(t, "int main() { xs.push_back(1); return xs[0]; }")
	if len(c.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", c.Diagnostics)
	}
	fn := tu.Decls[0].(*ast.FunctionDecl)
	stmt, ok := fn.Body.Stmts[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("expected *ast.ExprStmt, got %T", fn.Body.Stmts[0])
	}
	call, ok := stmt.X.(*ast.MemberFunctionCall)
	if !ok || call.Method.Lexeme != "push_back" {
		t.Fatalf("expected push_back call, got %#v", stmt.X)
	}
	ret := fn.Body.Stmts[1].(*ast.ReturnStmt)
	idx, ok := ret.Value.(*ast.IndexExpr)
	if !ok {
		t.Fatalf("expected *ast.IndexExpr, got %#v", ret.Value)
	}
	_ = idx
}

func TestParseRecoversFromMalformedStatement(t *testing.T) {
	tu, c := parseSource(t, "int main() { 1 + ; return 0; }")
	if len(c.Diagnostics) == 0 {
		t.Fatal("expected at least one diagnostic")
	}
	fn := tu.Decls[0].(*ast.FunctionDecl)
	last := fn.Body.Stmts[len(fn.Body.Stmts)-1]
	if _, ok := last.(*ast.ReturnStmt); !ok {
		t.Fatalf("expected the parser to recover and still parse the return statement, got %T", last)
	}
}

func TestParseAssignmentIsRightAssociative(t *testing.T) {
	tu, c := parseSource(t, "int main() { a = b = 1; return 0; }")
	if len(c.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", c.Diagnostics)
	}
	fn := tu.Decls[0].(*ast.FunctionDecl)
	stmt := fn.Body.Stmts[0].(*ast.ExprStmt)
	outer, ok := stmt.X.(*ast.BinaryOp)
	if !ok || outer.Op.Lexeme != "=" {
		t.Fatalf("expected outer '=' op, got %#v", stmt.X)
	}
	if _, ok := outer.Left.(*ast.Identifier); !ok {
		t.Errorf("expected outer left operand to be identifier a, got %#v", outer.Left)
	}
	inner, ok := outer.Right.(*ast.BinaryOp)
	if !ok || inner.Op.Lexeme != "=" {
		t.Fatalf("expected b = 1 nested on the right, got %#v", outer.Right)
	}
}
