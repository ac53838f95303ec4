package cmsl_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/cmsl-lang/cmsl/internal/facade"
	"github.com/cmsl-lang/cmsl/pkg/cmsl"
)

// Snapshots the façade call log a richer build-domain program produces,
// the same way the teacher snapshots interpreter output per fixture.
func TestExecuteFacadeCallLogSnapshot(t *testing.T) {
	const source = `
int main() {
    project p = project("demo");
    list<string> libSources;
    libSources.push_back("core.cpp");
    library lib = p.add_library("core", libSources);

    list<string> appSources;
    appSources.push_back("main.cpp");
    executable app = p.add_executable("demo", appSources);
    app.link_to(lib);

    return 0;
}
`
	rec := facade.NewRecording()
	ret, err := cmsl.Execute([]byte(source), cmsl.WithFacade(rec))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if ret != 0 {
		t.Fatalf("Execute returned %d, want 0", ret)
	}

	snaps.MatchSnapshot(t, "facade_calls", rec.String())
}
