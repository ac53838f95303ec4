// Package facade defines §4.8's external collaborator contract: every
// operation the evaluator's impure builtins (add_executable, link_to,
// cmake_minimum_required, ...) forward to rather than executing directly.
// Separating this as an interface — rather than having internal/eval talk
// to a concrete CMake driver — lets the CLI run against an in-memory
// Recording façade with no real CMake installation, the same way the
// teacher's interpreter is built against small, narrow collaborator
// interfaces (internal/interp/runtime/value_interfaces.go) rather than one
// monolithic struct.
package facade

// Visibility is CMake's PUBLIC/PRIVATE/INTERFACE link and include scoping.
type Visibility int

const (
	Private Visibility = iota
	Public
	Interface
)

func (v Visibility) String() string {
	switch v {
	case Public:
		return "PUBLIC"
	case Interface:
		return "INTERFACE"
	default:
		return "PRIVATE"
	}
}

// CompilerInfo is the subset of toolchain identity CMSL scripts can query
// via get_cxx_compiler_info().
type CompilerInfo struct {
	ID      string
	Version string
}

// Facade is every operation the evaluator's impure builtins (§4.7) and
// free functions reach outside the interpreter core to perform.
// Implementations must never panic — failures are reported through the
// shared diag.Observer by the caller, not by this interface.
type Facade interface {
	RegisterProject(name string)

	AddExecutable(name string, sources []string) string
	AddLibrary(name string, sources []string) string

	TargetLinkLibrary(target string, visibility Visibility, other string)
	TargetIncludeDirectories(target string, visibility Visibility, dirs []string)
	TargetCompileDefinitions(target string, defs []string, visibility Visibility)

	Message(text string)
	Warning(text string)
	Error(text string)
	FatalError(text string)
	DidFatalErrorOccur() bool

	CurrentDirectory() string
	GoIntoSubdirectory(name string)
	GoDirectoryUp()

	EnableCTest()
	AddTest(name string, command []string)

	GetCxxCompilerInfo() CompilerInfo
	TryGetExternDefine(name string) (string, bool)
	SetProperty(key, value string)
	GetCMakeVersion() string
}

// AddSubdirectoryHandler is invoked when CMSL source composes multiple
// translation units via a future add_subdirectory-shaped builtin (§4.8:
// "invoked for future cross-unit composition"). No builtin in this
// repository calls it yet; it exists so Facade implementations can type
// -check against the full collaborator surface spec.md's façade names.
type AddSubdirectoryHandler interface {
	HandleSubdirectory(path string) error
}
