package builtins

import (
	"testing"

	"github.com/cmsl-lang/cmsl/internal/types"
)

func TestNewCatalogRegistersDomainTypes(t *testing.T) {
	in := types.NewInterner()
	c := New(in)

	for _, name := range []string{"version", "project", "library", "executable"} {
		if _, ok := in.LookupClass(name); !ok {
			t.Errorf("expected %s to be registered", name)
		}
	}
	if len(c.FreeFunctions) != 1 || c.FreeFunctions[0].Name != "cmake_minimum_required" {
		t.Errorf("expected exactly cmake_minimum_required as a free function, got %+v", c.FreeFunctions)
	}
}

func TestLibraryAndExecutableShareShape(t *testing.T) {
	in := types.NewInterner()
	c := New(in)
	libNames, execNames := memberNames(c.Library), memberNames(c.Executable)
	if len(libNames) != len(execNames) {
		t.Fatalf("library has %d members, executable has %d", len(libNames), len(execNames))
	}
	for _, want := range []string{"name", "link_to", "include_directories", "compile_definitions"} {
		if !libNames[want] {
			t.Errorf("library missing member %q", want)
		}
		if !execNames[want] {
			t.Errorf("executable missing member %q", want)
		}
	}
	linkTo := c.Library.MembersByName("link_to")
	if len(linkTo) != 1 || linkTo[0].Params[0] != types.Type(c.Library) {
		t.Errorf("link_to should take a library parameter, got %+v", linkTo)
	}
}

func TestListMembersIncludeOperatorIndex(t *testing.T) {
	in := types.NewInterner()
	members := ListMembers(in, types.Int)
	found := false
	for _, m := range members {
		if m.Name == "operator[]" {
			found = true
			if m.ReturnType.CanonicalName() != "int&" {
				t.Errorf("operator[] should return int&, got %s", m.ReturnType.CanonicalName())
			}
		}
	}
	if !found {
		t.Error("expected list<T> to expose operator[]")
	}
}

func memberNames(c *types.ClassType) map[string]bool {
	out := make(map[string]bool)
	for _, m := range c.Members {
		out[m.Name] = true
	}
	return out
}
