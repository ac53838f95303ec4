package builtins

import "github.com/cmsl-lang/cmsl/internal/types"

// versionMembers mirrors add_version_member_functions: four constructors
// (major / major,minor / major,minor,patch / major,minor,patch,tweak),
// the six comparison operators, the four component accessors, and
// to_string.
func versionMembers(self *types.ClassType) []types.Member {
	i, b, s := types.Int, types.Bool, types.String
	return []types.Member{
		{Name: "version", Params: []types.Type{i}, ReturnType: self, Kind: int(VersionCtorMajor)},
		{Name: "version", Params: []types.Type{i, i}, ReturnType: self, Kind: int(VersionCtorMajorMinor)},
		{Name: "version", Params: []types.Type{i, i, i}, ReturnType: self, Kind: int(VersionCtorMajorMinorPatch)},
		{Name: "version", Params: []types.Type{i, i, i, i}, ReturnType: self, Kind: int(VersionCtorMajorMinorPatchTweak)},
		{Name: "operator==", Params: []types.Type{self}, ReturnType: b, Kind: int(VersionOperatorEqualEqual)},
		{Name: "operator!=", Params: []types.Type{self}, ReturnType: b, Kind: int(VersionOperatorNotEqual)},
		{Name: "operator<", Params: []types.Type{self}, ReturnType: b, Kind: int(VersionOperatorLess)},
		{Name: "operator<=", Params: []types.Type{self}, ReturnType: b, Kind: int(VersionOperatorLessEqual)},
		{Name: "operator>", Params: []types.Type{self}, ReturnType: b, Kind: int(VersionOperatorGreater)},
		{Name: "operator>=", Params: []types.Type{self}, ReturnType: b, Kind: int(VersionOperatorGreaterEqual)},
		{Name: "major", ReturnType: i, Kind: int(VersionMajor)},
		{Name: "minor", ReturnType: i, Kind: int(VersionMinor)},
		{Name: "patch", ReturnType: i, Kind: int(VersionPatch)},
		{Name: "tweak", ReturnType: i, Kind: int(VersionTweak)},
		{Name: "to_string", ReturnType: s, Kind: int(VersionToString)},
	}
}

// projectMembers mirrors add_project_member_functions: the name
// constructor, name() accessor, and the two factory methods that produce
// an executable/library from a name and a list<string> of sources.
func projectMembers(self, library, executable *types.ClassType, sourcesList types.Type) []types.Member {
	s := types.String
	return []types.Member{
		{Name: "project", Params: []types.Type{s}, ReturnType: self, Kind: int(ProjectCtorName)},
		{Name: "name", ReturnType: s, Kind: int(ProjectName)},
		{Name: "add_executable", Params: []types.Type{s, sourcesList}, ReturnType: executable, Kind: int(ProjectAddExecutable)},
		{Name: "add_library", Params: []types.Type{s, sourcesList}, ReturnType: library, Kind: int(ProjectAddLibrary)},
	}
}

// libraryOrExecutableMembers mirrors add_library_member_functions and
// add_executable_member_functions, which are identical in shape: both
// link_to a library, regardless of the receiver's own type (the original
// passes library_type as the link_to parameter in both add_*_member_
// functions). It additionally completes the [EXPANSION] include_directories
// /compile_definitions pair named in spec.md §4.3/§4.8 but never wired as
// member signatures in the original source; both take list<string> per
// the façade's list-of-paths contract (§4.8).
func libraryOrExecutableMembers(self, library *types.ClassType, stringList types.Type) []types.Member {
	s := types.String
	v := types.Void
	var nameKind, linkKind, includeKind, definesKind Kind
	if self.Name == "library" {
		nameKind, linkKind, includeKind, definesKind = LibraryName, LibraryLinkTo, LibraryIncludeDirectories, LibraryCompileDefinitions
	} else {
		nameKind, linkKind, includeKind, definesKind = ExecutableName, ExecutableLinkTo, ExecutableIncludeDirectories, ExecutableCompileDefinitions
	}
	return []types.Member{
		{Name: "name", ReturnType: s, Kind: int(nameKind)},
		{Name: "link_to", Params: []types.Type{library}, ReturnType: v, Kind: int(linkKind)},
		{Name: "include_directories", Params: []types.Type{stringList}, ReturnType: v, Kind: int(includeKind)},
		{Name: "compile_definitions", Params: []types.Type{stringList}, ReturnType: v, Kind: int(definesKind)},
	}
}
