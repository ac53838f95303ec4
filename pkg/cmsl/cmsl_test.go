package cmsl_test

import (
	"testing"

	"github.com/cmsl-lang/cmsl/internal/facade"
	"github.com/cmsl-lang/cmsl/pkg/cmsl"
)

// End-to-end scenarios 1-6, verbatim.
func TestExecuteScenarios(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   int32
	}{
		{
			name:   "empty list size",
			source: `int main() { list<int> l; return l.size(); }`,
			want:   0,
		},
		{
			name:   "string append size",
			source: `int main() { string s = "abc"; s += "de"; return s.size(); }`,
			want:   5,
		},
		{
			name:   "class field round trip",
			source: `class Foo { int bar; }; int main() { Foo f; f.bar = 42; return f.bar; }`,
			want:   42,
		},
		{
			name: "executable name round trip",
			source: `int main() { project p = project("x"); list<string> s; executable e = p.add_executable("exe", s); string n = e.name(); return int(n == "exe"); }`,
			want: 1,
		},
		{
			name:   "while loop increment",
			source: `int main() { int i = 0; while (i < 3) { i += 1; } return i; }`,
			want:   3,
		},
		{
			name:   "short-circuit logical or",
			source: `int main() { return 1 && 0 || 1; }`,
			want:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cmsl.Execute([]byte(tt.source))
			if err != nil {
				t.Fatalf("Execute: %v", err)
			}
			if got != tt.want {
				t.Errorf("Execute(%q) = %d, want %d", tt.source, got, tt.want)
			}
		})
	}
}

// Scenario 4 also requires exactly one add_executable("exe", []) façade call.
func TestExecuteRecordsSingleAddExecutableCall(t *testing.T) {
	const source = `int main() { project p = project("x"); list<string> s; executable e = p.add_executable("exe", s); string n = e.name(); return int(n == "exe"); }`

	rec := facade.NewRecording()
	got, err := cmsl.Execute([]byte(source), cmsl.WithFacade(rec))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got != 1 {
		t.Fatalf("Execute returned %d, want 1", got)
	}

	var addExecutableCalls []facade.Call
	for _, c := range rec.Calls {
		if c.Name == "add_executable" {
			addExecutableCalls = append(addExecutableCalls, c)
		}
	}
	if len(addExecutableCalls) != 1 {
		t.Fatalf("got %d add_executable calls, want 1: %v", len(addExecutableCalls), rec.Calls)
	}
	if want := []string{"exe"}; !equalStrings(addExecutableCalls[0].Args, want) {
		t.Errorf("add_executable args = %v, want %v", addExecutableCalls[0].Args, want)
	}
}

// Idempotent re-compile (§8): running the same source twice returns the same
// integer.
func TestExecuteIsIdempotent(t *testing.T) {
	const source = `int main() { int i = 0; while (i < 3) { i += 1; } return i; }`

	first, err := cmsl.Execute([]byte(source))
	if err != nil {
		t.Fatalf("Execute (first run): %v", err)
	}
	second, err := cmsl.Execute([]byte(source))
	if err != nil {
		t.Fatalf("Execute (second run): %v", err)
	}
	if first != second {
		t.Errorf("Execute is not idempotent: first=%d second=%d", first, second)
	}
}

// A missing main is a fatal diagnostic (§7), surfaced as the -1 sentinel.
func TestExecuteMissingMainIsFatal(t *testing.T) {
	got, err := cmsl.Execute([]byte(`int notMain() { return 0; }`))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got != -1 {
		t.Errorf("Execute with no main() = %d, want -1", got)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
