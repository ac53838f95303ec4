package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cmsl-lang/cmsl/internal/config"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "cmsl.toml", `
entry = "build.cmsl"
subdirectory_roots = ["libs", "tools"]
`)

	ws, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ws.Entry != "build.cmsl" {
		t.Errorf("Entry = %q, want %q", ws.Entry, "build.cmsl")
	}
	if want := []string{"libs", "tools"}; !equalStrings(ws.SubdirectoryRoots, want) {
		t.Errorf("SubdirectoryRoots = %v, want %v", ws.SubdirectoryRoots, want)
	}
}

func TestLoadMissingEntryIsError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "cmsl.toml", `subdirectory_roots = ["libs"]`)

	if _, err := config.Load(path); err == nil {
		t.Fatal("Load with no entry key: got nil error, want one")
	}
}

func TestLoadUnrecognisedKeyIsError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "cmsl.toml", `
entry = "build.cmsl"
bogus_key = true
`)

	if _, err := config.Load(path); err == nil {
		t.Fatal("Load with an unrecognised key: got nil error, want one")
	}
}

func TestLoadIfExistsMissingFile(t *testing.T) {
	dir := t.TempDir()
	ws, err := config.LoadIfExists(filepath.Join(dir, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("LoadIfExists: %v", err)
	}
	if ws != nil {
		t.Errorf("LoadIfExists for a missing file = %+v, want nil", ws)
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
