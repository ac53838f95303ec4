// Package builtins implements §4.3's built-in catalog: the complete member
// function tables for CMSL's fundamental and build-domain types, grounded
// directly on original_source/source/sema/builtin_sema_context.cpp's
// add_*_member_functions functions (one Go function per C++ one, same
// member set, same order). Kind values are the Go analogue of the
// original's builtin_function_kind enum: an opaque tag internal/eval
// switches on to execute a member call without needing the AST body a
// user-declared method would have.
package builtins

import "github.com/cmsl-lang/cmsl/internal/types"

// Kind identifies one specific builtin operation. The numeric value has no
// meaning beyond equality; groups are separated by type for readability.
type Kind int

const (
	_ Kind = iota

	// bool
	BoolCtor
	BoolCtorBool
	BoolCtorInt
	BoolOperatorEqual
	BoolOperatorEqualEqual
	BoolOperatorNotEqual
	BoolOperatorPipePipe
	BoolOperatorAmpAmp
	BoolToString

	// int
	IntCtor
	IntCtorInt
	IntCtorBool
	IntCtorDouble
	IntOperatorEqual
	IntOperatorEqualEqual
	IntOperatorNotEqual
	IntOperatorLess
	IntOperatorLessEqual
	IntOperatorGreater
	IntOperatorGreaterEqual
	IntOperatorPlus
	IntOperatorMinus
	IntOperatorStar
	IntOperatorSlash
	IntOperatorPlusEqual
	IntOperatorMinusEqual
	IntOperatorStarEqual
	IntOperatorSlashEqual
	IntUnaryMinus
	IntToString

	// double
	DoubleCtor
	DoubleCtorDouble
	DoubleCtorInt
	DoubleOperatorEqual
	DoubleOperatorEqualEqual
	DoubleOperatorNotEqual
	DoubleOperatorLess
	DoubleOperatorLessEqual
	DoubleOperatorGreater
	DoubleOperatorGreaterEqual
	DoubleOperatorPlus
	DoubleOperatorMinus
	DoubleOperatorStar
	DoubleOperatorSlash
	DoubleOperatorPlusEqual
	DoubleOperatorMinusEqual
	DoubleOperatorStarEqual
	DoubleOperatorSlashEqual
	DoubleUnaryMinus
	DoubleToString

	// string
	StringCtor
	StringCtorString
	StringCtorStringCount
	StringEmpty
	StringSize
	StringOperatorEqualEqual
	StringOperatorNotEqual
	StringOperatorLess
	StringOperatorLessEqual
	StringOperatorGreater
	StringOperatorGreaterEqual
	StringOperatorPlus
	StringOperatorPlusEqual
	StringClear
	StringInsertPosStr
	StringErasePos
	StringErasePosCount
	StringStartsWith
	StringEndsWith
	StringReplacePosCountStr
	StringSubstrPos
	StringSubstrPosCount
	StringResizeNewSize
	StringResizeNewSizeFill
	StringFindStr
	StringFindStrPos
	StringFindNotOfStr
	StringFindNotOfStrPos
	StringFindLastStr
	StringFindLastNotOfStr
	StringContains
	StringLower
	StringMakeLower
	StringUpper
	StringMakeUpper

	// list<T>
	ListEmpty
	ListSize
	ListPushBack
	ListOperatorIndex

	// version
	VersionCtorMajor
	VersionCtorMajorMinor
	VersionCtorMajorMinorPatch
	VersionCtorMajorMinorPatchTweak
	VersionOperatorEqualEqual
	VersionOperatorNotEqual
	VersionOperatorLess
	VersionOperatorLessEqual
	VersionOperatorGreater
	VersionOperatorGreaterEqual
	VersionMajor
	VersionMinor
	VersionPatch
	VersionTweak
	VersionToString

	// project
	ProjectCtorName
	ProjectName
	ProjectAddExecutable
	ProjectAddLibrary

	// library / executable
	LibraryName
	LibraryLinkTo
	LibraryIncludeDirectories
	LibraryCompileDefinitions
	ExecutableName
	ExecutableLinkTo
	ExecutableIncludeDirectories
	ExecutableCompileDefinitions

	// enum (§4.3 [EXPANSION])
	EnumToInt
	EnumToString

	// free functions
	CMakeMinimumRequired
)

// FreeFunction is a builtin registered directly into the global scope
// rather than as a type's member.
type FreeFunction struct {
	Name       string
	Params     []types.Type
	ReturnType types.Type
	Kind       Kind
}

// Catalog holds every builtin declaration produced at interpreter
// construction (§4.3's "dedicated builder populates the root semantic
// context"), ready to be installed into a fresh sema.Scope and
// types.Interner by the sema package.
type Catalog struct {
	Project    *types.ClassType
	Library    *types.ClassType
	Executable *types.ClassType
	Version    *types.ClassType

	StringMembers []types.Member
	IntMembers    []types.Member
	DoubleMembers []types.Member
	BoolMembers   []types.Member

	FreeFunctions []FreeFunction
}

// ListMembers returns the member table for list<elem>, §4.3's
// [EXPANSION]: size/empty/push_back plus operator[](int) -> elem&, built
// fresh per instantiation since its signatures mention elem.
func ListMembers(in *types.Interner, elem types.Type) []types.Member {
	return []types.Member{
		{Name: "empty", ReturnType: types.Bool, Kind: int(ListEmpty)},
		{Name: "size", ReturnType: types.Int, Kind: int(ListSize)},
		{Name: "push_back", Params: []types.Type{elem}, ReturnType: types.Void, Kind: int(ListPushBack)},
		{Name: "operator[]", Params: []types.Type{types.Int}, ReturnType: in.ReferenceTo(elem), Kind: int(ListOperatorIndex)},
	}
}

// EnumMembers returns the member table every user-declared enum gets
// implicitly: to_string(), per §4.3's [EXPANSION]. The implicit int
// conversion is handled as a Cast in sema, not as a member call.
func EnumMembers() []types.Member {
	return []types.Member{
		{Name: "to_string", ReturnType: types.String, Kind: int(EnumToString)},
	}
}

// New builds the full catalog: the four fundamental member tables, the
// four build-domain class types with their member tables, and the single
// free function cmake_minimum_required(version) (§4.3).
func New(in *types.Interner) *Catalog {
	c := &Catalog{}

	c.BoolMembers = boolMembers()
	c.IntMembers = intMembers()
	c.DoubleMembers = doubleMembers()
	c.StringMembers = stringMembers()

	c.Version = &types.ClassType{Name: "version"}
	c.Version.Members = versionMembers(c.Version)
	in.RegisterClass(c.Version)

	stringList := in.ListOf(types.String)

	c.Project = &types.ClassType{Name: "project"}
	c.Library = &types.ClassType{Name: "library"}
	c.Executable = &types.ClassType{Name: "executable"}

	c.Project.Members = projectMembers(c.Project, c.Library, c.Executable, stringList)
	c.Library.Members = libraryOrExecutableMembers(c.Library, c.Library, stringList)
	c.Executable.Members = libraryOrExecutableMembers(c.Executable, c.Library, stringList)

	in.RegisterClass(c.Project)
	in.RegisterClass(c.Library)
	in.RegisterClass(c.Executable)

	c.FreeFunctions = []FreeFunction{
		{Name: "cmake_minimum_required", Params: []types.Type{c.Version}, ReturnType: types.Void, Kind: CMakeMinimumRequired},
	}

	return c
}
