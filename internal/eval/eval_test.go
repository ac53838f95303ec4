package eval

import (
	"testing"

	"github.com/cmsl-lang/cmsl/internal/diag"
	"github.com/cmsl-lang/cmsl/internal/facade"
	"github.com/cmsl-lang/cmsl/internal/lexer"
	"github.com/cmsl-lang/cmsl/internal/parser"
	"github.com/cmsl-lang/cmsl/internal/sema"
)

// testRun lexes, parses, analyses, and evaluates source, failing the test on
// any diagnostic raised along the way. It returns main's return value.
func testRun(t *testing.T, source string) int64 {
	t.Helper()

	collector := diag.NewCollector()
	toks := lexer.New(source, collector).Tokenize()
	tu := parser.New(toks, collector).Parse()
	prog := sema.New(collector).Analyze(tu)

	if len(collector.Diagnostics) > 0 {
		t.Fatalf("diagnostics before evaluation: %+v", collector.Diagnostics)
	}

	ev := New(collector, facade.NewRecording())
	ret, err := ev.Run(prog)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return ret
}

func TestStringMutationWritesBackThroughReceiver(t *testing.T) {
	const source = `
int main() {
    string s = "hello";
    s.clear();
    return int(s.size() == 0);
}
`
	if got := testRun(t, source); got != 1 {
		t.Errorf("clear() did not write back through the receiver: got %d, want 1", got)
	}
}

func TestStringInsertReturnsAndMutates(t *testing.T) {
	const source = `
int main() {
    string s = "helloworld";
    string r = s.insert(5, "-");
    return int(s == "hello-world" && r == "hello-world");
}
`
	if got := testRun(t, source); got != 1 {
		t.Errorf("insert() result or write-back mismatch: got %d, want 1", got)
	}
}

func TestNestedFieldAssignmentMutatesThroughChain(t *testing.T) {
	const source = `
class Inner { int value; };
class Outer { Inner inner; };
int main() {
    Outer o;
    o.inner.value = 7;
    return o.inner.value;
}
`
	if got := testRun(t, source); got != 7 {
		t.Errorf("nested field assignment did not write through the chain: got %d, want 7", got)
	}
}

func TestListIndexAssignmentMutatesElement(t *testing.T) {
	const source = `
int main() {
    list<int> l;
    l.push_back(1);
    l.push_back(2);
    l[1] = 9;
    return l[1];
}
`
	if got := testRun(t, source); got != 9 {
		t.Errorf("list index assignment did not mutate the element: got %d, want 9", got)
	}
}

func TestReferenceParameterAliasesCaller(t *testing.T) {
	const source = `
void increment(int& n) {
    n = n + 1;
}
int main() {
    int x = 41;
    increment(x);
    return x;
}
`
	if got := testRun(t, source); got != 42 {
		t.Errorf("reference parameter did not alias the caller's variable: got %d, want 42", got)
	}
}

func TestIntegerDivisionByZeroWarnsAndReturnsZero(t *testing.T) {
	const source = `
int main() {
    int a = 10;
    int b = 0;
    return a / b;
}
`
	collector := diag.NewCollector()
	toks := lexer.New(source, collector).Tokenize()
	tu := parser.New(toks, collector).Parse()
	prog := sema.New(collector).Analyze(tu)
	if len(collector.Diagnostics) > 0 {
		t.Fatalf("diagnostics before evaluation: %+v", collector.Diagnostics)
	}

	ev := New(collector, facade.NewRecording())
	ret, err := ev.Run(prog)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ret != 0 {
		t.Errorf("division by zero returned %d, want 0", ret)
	}
	if collector.DidFatalErrorOccur() {
		t.Error("division by zero set the sticky fatal flag, want a warning only")
	}
	foundWarning := false
	for _, d := range collector.Diagnostics {
		if d.Severity == diag.SeverityWarning && d.Category == diag.CategoryRuntime {
			foundWarning = true
		}
	}
	if !foundWarning {
		t.Errorf("expected a runtime warning diagnostic, got %+v", collector.Diagnostics)
	}
}

func TestListOutOfRangeIndexIsFatal(t *testing.T) {
	const source = `
int main() {
    list<int> l;
    return l[0];
}
`
	collector := diag.NewCollector()
	toks := lexer.New(source, collector).Tokenize()
	tu := parser.New(toks, collector).Parse()
	prog := sema.New(collector).Analyze(tu)
	if len(collector.Diagnostics) > 0 {
		t.Fatalf("diagnostics before evaluation: %+v", collector.Diagnostics)
	}

	ev := New(collector, facade.NewRecording())
	if _, err := ev.Run(prog); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !collector.DidFatalErrorOccur() {
		t.Error("out-of-range list index did not set the sticky fatal flag")
	}
}

func TestMissingMainIsFatal(t *testing.T) {
	const source = `int notMain() { return 0; }`

	collector := diag.NewCollector()
	toks := lexer.New(source, collector).Tokenize()
	tu := parser.New(toks, collector).Parse()
	prog := sema.New(collector).Analyze(tu)
	if len(collector.Diagnostics) > 0 {
		t.Fatalf("diagnostics before evaluation: %+v", collector.Diagnostics)
	}

	ev := New(collector, facade.NewRecording())
	ret, err := ev.Run(prog)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ret != -1 {
		t.Errorf("missing main returned %d, want -1", ret)
	}
	if !collector.DidFatalErrorOccur() {
		t.Error("missing main did not set the sticky fatal flag")
	}
}

func TestShortCircuitLogicalOperators(t *testing.T) {
	const source = `int main() { return 1 && 0 || 1; }`
	if got := testRun(t, source); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
}

func TestEnumCaseReferenceResolvesToDeclaredOrdinal(t *testing.T) {
	const source = `
enum Visibility { Public, Private = 5, Protected };
int main() {
    Visibility v = Visibility.Private;
    return int(v);
}
`
	if got := testRun(t, source); got != 5 {
		t.Errorf("enum case reference did not resolve to its declared ordinal: got %d, want 5", got)
	}
}

func TestEnumVariableDefaultsToFirstDeclaredCase(t *testing.T) {
	const source = `
enum Visibility { Public, Private = 5, Protected };
int main() {
    Visibility v;
    return int(v);
}
`
	if got := testRun(t, source); got != 0 {
		t.Errorf("uninitialized enum variable did not default to the first case: got %d, want 0", got)
	}
}

func TestImplicitSelfFieldAccessInMethodBody(t *testing.T) {
	const source = `
class Counter {
    int n;
    int current() { return n; }
    void bump() { n = n + 1; }
};
int main() {
    Counter c;
    c.n = 5;
    c.bump();
    return c.current();
}
`
	if got := testRun(t, source); got != 6 {
		t.Errorf("method reading/writing an implicit self field: got %d, want 6", got)
	}
}
