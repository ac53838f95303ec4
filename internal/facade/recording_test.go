package facade_test

import (
	"testing"

	"github.com/cmsl-lang/cmsl/internal/facade"
)

func TestRecordingAddExecutableReturnsNameAndRecordsCall(t *testing.T) {
	rec := facade.NewRecording()

	got := rec.AddExecutable("app", []string{"main.cpp", "util.cpp"})
	if got != "app" {
		t.Errorf("AddExecutable returned %q, want %q", got, "app")
	}

	if len(rec.Calls) != 1 {
		t.Fatalf("got %d calls, want 1", len(rec.Calls))
	}
	want := facade.Call{Name: "add_executable", Args: []string{"app", "main.cpp", "util.cpp"}}
	if got := rec.Calls[0]; got.Name != want.Name || !equalStrings(got.Args, want.Args) {
		t.Errorf("Calls[0] = %+v, want %+v", got, want)
	}
}

func TestRecordingDirectoryStack(t *testing.T) {
	rec := facade.NewRecording()

	if got := rec.CurrentDirectory(); got != "/" {
		t.Fatalf("CurrentDirectory = %q, want %q", got, "/")
	}

	rec.GoIntoSubdirectory("libs")
	if got, want := rec.CurrentDirectory(), "/libs/"; got != want {
		t.Errorf("CurrentDirectory after GoIntoSubdirectory = %q, want %q", got, want)
	}

	rec.GoDirectoryUp()
	if got, want := rec.CurrentDirectory(), "/"; got != want {
		t.Errorf("CurrentDirectory after GoDirectoryUp = %q, want %q", got, want)
	}

	// Going up from the root is a no-op, not an underflow.
	rec.GoDirectoryUp()
	if got, want := rec.CurrentDirectory(), "/"; got != want {
		t.Errorf("CurrentDirectory after GoDirectoryUp past root = %q, want %q", got, want)
	}
}

func TestRecordingFatalErrorStickyFlag(t *testing.T) {
	rec := facade.NewRecording()

	if rec.DidFatalErrorOccur() {
		t.Fatal("DidFatalErrorOccur before any error = true, want false")
	}

	rec.Error("non-fatal")
	if rec.DidFatalErrorOccur() {
		t.Fatal("DidFatalErrorOccur after Error = true, want false")
	}

	rec.FatalError("boom")
	if !rec.DidFatalErrorOccur() {
		t.Fatal("DidFatalErrorOccur after FatalError = false, want true")
	}
}

func TestRecordingExternDefines(t *testing.T) {
	rec := facade.NewRecording().WithExternDefine("CMAKE_BUILD_TYPE", "Release")

	got, ok := rec.TryGetExternDefine("CMAKE_BUILD_TYPE")
	if !ok || got != "Release" {
		t.Errorf("TryGetExternDefine = (%q, %v), want (%q, true)", got, ok, "Release")
	}

	if _, ok := rec.TryGetExternDefine("UNSET"); ok {
		t.Error("TryGetExternDefine for an unset define: ok = true, want false")
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
