package facade

import "fmt"

// Call is one recorded invocation of a Facade method: Name plus its
// arguments rendered as strings, in call order. Tests assert against a
// []Call slice rather than a bespoke mock per method, mirroring how the
// reference implementation recording.go is the shared fixture for every
// end-to-end scenario in §8.
type Call struct {
	Name string
	Args []string
}

// Recording implements Facade entirely in memory: a call log plus a
// directory stack, so tests and the CLI can run against CMSL source with no
// real CMake installation (§4.8's [EXPANSION]).
type Recording struct {
	Calls []Call

	dirs    []string
	fatal   bool
	targets map[string]bool

	externDefines map[string]string
	properties    map[string]string
}

// NewRecording returns a Recording rooted at "/", ready to receive calls.
func NewRecording() *Recording {
	return &Recording{
		dirs:          []string{"/"},
		targets:       make(map[string]bool),
		externDefines: make(map[string]string),
		properties:    make(map[string]string),
	}
}

// WithExternDefine pre-seeds an extern define TryGetExternDefine can
// return, the way a real CMake invocation would via -D on the command line.
func (r *Recording) WithExternDefine(name, value string) *Recording {
	r.externDefines[name] = value
	return r
}

func (r *Recording) record(name string, args ...string) {
	r.Calls = append(r.Calls, Call{Name: name, Args: args})
}

func (r *Recording) RegisterProject(name string) {
	r.record("register_project", name)
}

func (r *Recording) AddExecutable(name string, sources []string) string {
	r.record("add_executable", append([]string{name}, sources...)...)
	r.targets[name] = true
	return name
}

func (r *Recording) AddLibrary(name string, sources []string) string {
	r.record("add_library", append([]string{name}, sources...)...)
	r.targets[name] = true
	return name
}

func (r *Recording) TargetLinkLibrary(target string, visibility Visibility, other string) {
	r.record("target_link_library", target, visibility.String(), other)
}

func (r *Recording) TargetIncludeDirectories(target string, visibility Visibility, dirs []string) {
	r.record("target_include_directories", append([]string{target, visibility.String()}, dirs...)...)
}

func (r *Recording) TargetCompileDefinitions(target string, defs []string, visibility Visibility) {
	r.record("target_compile_definitions", append([]string{target, visibility.String()}, defs...)...)
}

func (r *Recording) Message(text string) { r.record("message", text) }
func (r *Recording) Warning(text string) { r.record("warning", text) }
func (r *Recording) Error(text string)   { r.record("error", text) }

func (r *Recording) FatalError(text string) {
	r.record("fatal_error", text)
	r.fatal = true
}

func (r *Recording) DidFatalErrorOccur() bool { return r.fatal }

func (r *Recording) CurrentDirectory() string {
	return r.dirs[len(r.dirs)-1]
}

func (r *Recording) GoIntoSubdirectory(name string) {
	next := r.CurrentDirectory() + name + "/"
	r.dirs = append(r.dirs, next)
	r.record("go_into_subdirectory", name)
}

func (r *Recording) GoDirectoryUp() {
	if len(r.dirs) > 1 {
		r.dirs = r.dirs[:len(r.dirs)-1]
	}
	r.record("go_directory_up")
}

func (r *Recording) EnableCTest() { r.record("enable_ctest") }

func (r *Recording) AddTest(name string, command []string) {
	r.record("add_test", append([]string{name}, command...)...)
}

func (r *Recording) GetCxxCompilerInfo() CompilerInfo {
	return CompilerInfo{ID: "recording", Version: "0.0"}
}

func (r *Recording) TryGetExternDefine(name string) (string, bool) {
	v, ok := r.externDefines[name]
	return v, ok
}

func (r *Recording) SetProperty(key, value string) {
	r.properties[key] = value
	r.record("set_property", key, value)
}

func (r *Recording) GetCMakeVersion() string { return "3.30.0" }

// String renders the call log for debugging and snapshot tests.
func (r *Recording) String() string {
	s := ""
	for _, c := range r.Calls {
		s += fmt.Sprintf("%s(%v)\n", c.Name, c.Args)
	}
	return s
}

var _ Facade = (*Recording)(nil)
