// Package config loads the optional cmsl.toml workspace file (§6): naming
// the entry script and the subdirectories add_subdirectory may traverse. It
// is read-only input the tool never writes back, parsed with
// github.com/BurntSushi/toml the way the teacher's own CLI configuration
// loader (cmd/dwscript's flag/config layering) prefers a real TOML decoder
// over hand-rolled parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Workspace is the decoded shape of cmsl.toml.
type Workspace struct {
	// Entry names the CMSL source file to run, relative to the workspace
	// file's directory.
	Entry string `toml:"entry"`
	// SubdirectoryRoots lists the directories add_subdirectory is allowed
	// to descend into, in the order GoIntoSubdirectory should try them.
	SubdirectoryRoots []string `toml:"subdirectory_roots"`
}

// Load decodes the workspace file at path. A missing file is reported as an
// error rather than silently defaulting — callers that want a default
// workspace when none exists should check os.IsNotExist(err) themselves.
func Load(path string) (*Workspace, error) {
	var w Workspace
	meta, err := toml.DecodeFile(path, &w)
	if err != nil {
		return nil, fmt.Errorf("config: loading %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config: %s has unrecognised keys: %v", path, undecoded)
	}
	if w.Entry == "" {
		return nil, fmt.Errorf("config: %s does not name an entry script", path)
	}
	return &w, nil
}

// LoadIfExists behaves like Load, but returns (nil, nil) when path does not
// exist rather than an error — the CLI's lookup for an optional cmsl.toml
// in the current directory when `cmsl run` is given no file.
func LoadIfExists(path string) (*Workspace, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	return Load(path)
}
