package eval

import (
	"github.com/cmsl-lang/cmsl/internal/builtins"
	"github.com/cmsl-lang/cmsl/internal/diag"
	"github.com/cmsl-lang/cmsl/internal/facade"
	"github.com/cmsl-lang/cmsl/internal/value"
	"github.com/cmsl-lang/cmsl/pkg/token"
)

func (e *Evaluator) internalError(rng token.Range, format string, args ...any) value.Value {
	e.observer.NotifyError(diag.NewInternal(rng, format, args...))
	return value.Void{}
}

func (e *Evaluator) runtimeFatal(rng token.Range, format string, args ...any) {
	e.observer.NotifyError(diag.NewRuntimeFatal(rng, format, args...))
}

func (e *Evaluator) runtimeWarning(rng token.Range, format string, args ...any) {
	e.observer.NotifyError(diag.NewRuntimeWarning(rng, format, args...))
}

// dispatchBuiltin is the single switch §4.7 describes: every builtin
// member call and every binary/compound-assignment operator (redirected
// here by dispatch_arith.go's operator table) bottoms out in one of these
// cases. receiver is value.Void{} for a constructor call and for the free
// function cmake_minimum_required.
func (e *Evaluator) dispatchBuiltin(kind builtins.Kind, receiver value.Value, args []value.Value, rng token.Range) value.Value {
	switch kind {

	// --- bool ---
	case builtins.BoolCtor:
		return value.Bool{}
	case builtins.BoolCtorBool:
		return value.Bool{Value: args[0].(value.Bool).Value}
	case builtins.BoolCtorInt:
		return value.Bool{Value: args[0].(value.Int).Value != 0}
	case builtins.BoolOperatorEqual:
		return args[0].Copy()
	case builtins.BoolOperatorEqualEqual:
		return value.Bool{Value: receiver.(value.Bool).Value == args[0].(value.Bool).Value}
	case builtins.BoolOperatorNotEqual:
		return value.Bool{Value: receiver.(value.Bool).Value != args[0].(value.Bool).Value}
	case builtins.BoolOperatorPipePipe:
		return value.Bool{Value: receiver.(value.Bool).Value || args[0].(value.Bool).Value}
	case builtins.BoolOperatorAmpAmp:
		return value.Bool{Value: receiver.(value.Bool).Value && args[0].(value.Bool).Value}
	case builtins.BoolToString:
		return value.String{Value: receiver.(value.Bool).String()}

	// --- int ---
	case builtins.IntCtor:
		return value.Int{}
	case builtins.IntCtorInt:
		return value.Int{Value: args[0].(value.Int).Value}
	case builtins.IntCtorBool:
		v := int64(0)
		if args[0].(value.Bool).Value {
			v = 1
		}
		return value.Int{Value: v}
	case builtins.IntCtorDouble:
		return value.Int{Value: int64(args[0].(value.Double).Value)}
	case builtins.IntOperatorEqual:
		return args[0].Copy()
	case builtins.IntOperatorEqualEqual:
		return value.Bool{Value: receiver.(value.Int).Value == args[0].(value.Int).Value}
	case builtins.IntOperatorNotEqual:
		return value.Bool{Value: receiver.(value.Int).Value != args[0].(value.Int).Value}
	case builtins.IntOperatorLess:
		return value.Bool{Value: receiver.(value.Int).Value < args[0].(value.Int).Value}
	case builtins.IntOperatorLessEqual:
		return value.Bool{Value: receiver.(value.Int).Value <= args[0].(value.Int).Value}
	case builtins.IntOperatorGreater:
		return value.Bool{Value: receiver.(value.Int).Value > args[0].(value.Int).Value}
	case builtins.IntOperatorGreaterEqual:
		return value.Bool{Value: receiver.(value.Int).Value >= args[0].(value.Int).Value}
	case builtins.IntOperatorPlus, builtins.IntOperatorPlusEqual:
		return value.Int{Value: receiver.(value.Int).Value + args[0].(value.Int).Value}
	case builtins.IntOperatorMinus, builtins.IntOperatorMinusEqual:
		return value.Int{Value: receiver.(value.Int).Value - args[0].(value.Int).Value}
	case builtins.IntOperatorStar, builtins.IntOperatorStarEqual:
		return value.Int{Value: receiver.(value.Int).Value * args[0].(value.Int).Value}
	case builtins.IntOperatorSlash, builtins.IntOperatorSlashEqual:
		divisor := args[0].(value.Int).Value
		if divisor == 0 {
			e.runtimeWarning(rng, "integer division by zero")
			return value.Int{Value: 0}
		}
		return value.Int{Value: receiver.(value.Int).Value / divisor}
	case builtins.IntUnaryMinus:
		return value.Int{Value: -receiver.(value.Int).Value}
	case builtins.IntToString:
		return value.String{Value: receiver.(value.Int).String()}

	// --- double ---
	case builtins.DoubleCtor:
		return value.Double{}
	case builtins.DoubleCtorDouble:
		return value.Double{Value: args[0].(value.Double).Value}
	case builtins.DoubleCtorInt:
		return value.Double{Value: float64(args[0].(value.Int).Value)}
	case builtins.DoubleOperatorEqual:
		return args[0].Copy()
	case builtins.DoubleOperatorEqualEqual:
		return value.Bool{Value: receiver.(value.Double).Value == args[0].(value.Double).Value}
	case builtins.DoubleOperatorNotEqual:
		return value.Bool{Value: receiver.(value.Double).Value != args[0].(value.Double).Value}
	case builtins.DoubleOperatorLess:
		return value.Bool{Value: receiver.(value.Double).Value < args[0].(value.Double).Value}
	case builtins.DoubleOperatorLessEqual:
		return value.Bool{Value: receiver.(value.Double).Value <= args[0].(value.Double).Value}
	case builtins.DoubleOperatorGreater:
		return value.Bool{Value: receiver.(value.Double).Value > args[0].(value.Double).Value}
	case builtins.DoubleOperatorGreaterEqual:
		return value.Bool{Value: receiver.(value.Double).Value >= args[0].(value.Double).Value}
	case builtins.DoubleOperatorPlus, builtins.DoubleOperatorPlusEqual:
		return value.Double{Value: receiver.(value.Double).Value + args[0].(value.Double).Value}
	case builtins.DoubleOperatorMinus, builtins.DoubleOperatorMinusEqual:
		return value.Double{Value: receiver.(value.Double).Value - args[0].(value.Double).Value}
	case builtins.DoubleOperatorStar, builtins.DoubleOperatorStarEqual:
		return value.Double{Value: receiver.(value.Double).Value * args[0].(value.Double).Value}
	case builtins.DoubleOperatorSlash, builtins.DoubleOperatorSlashEqual:
		return value.Double{Value: receiver.(value.Double).Value / args[0].(value.Double).Value}
	case builtins.DoubleUnaryMinus:
		return value.Double{Value: -receiver.(value.Double).Value}
	case builtins.DoubleToString:
		return value.String{Value: receiver.(value.Double).String()}

	// version, project, library/executable, enum, list, free functions
	case builtins.VersionCtorMajor, builtins.VersionCtorMajorMinor,
		builtins.VersionCtorMajorMinorPatch, builtins.VersionCtorMajorMinorPatchTweak,
		builtins.VersionOperatorEqualEqual, builtins.VersionOperatorNotEqual,
		builtins.VersionOperatorLess, builtins.VersionOperatorLessEqual,
		builtins.VersionOperatorGreater, builtins.VersionOperatorGreaterEqual,
		builtins.VersionMajor, builtins.VersionMinor, builtins.VersionPatch,
		builtins.VersionTweak, builtins.VersionToString:
		return e.dispatchVersion(kind, receiver, args)

	case builtins.ProjectCtorName, builtins.ProjectName,
		builtins.ProjectAddExecutable, builtins.ProjectAddLibrary,
		builtins.LibraryName, builtins.LibraryLinkTo,
		builtins.LibraryIncludeDirectories, builtins.LibraryCompileDefinitions,
		builtins.ExecutableName, builtins.ExecutableLinkTo,
		builtins.ExecutableIncludeDirectories, builtins.ExecutableCompileDefinitions:
		return e.dispatchBuildDomain(kind, receiver, args)

	case builtins.EnumToInt, builtins.EnumToString:
		return e.dispatchEnum(kind, receiver)

	case builtins.ListEmpty, builtins.ListSize, builtins.ListPushBack, builtins.ListOperatorIndex:
		return e.dispatchList(kind, receiver, args, rng)

	case builtins.CMakeMinimumRequired:
		v := args[0].(*value.Version)
		e.facade.Message("cmake_minimum_required: " + v.String())
		return value.Void{}

	default:
		return e.dispatchString(kind, receiver, args, rng)
	}
}

// dispatchVersion implements version's constructors, comparisons (all four
// components compared lexicographically, matching original_source's
// version ordering), accessors, and to_string.
func (e *Evaluator) dispatchVersion(kind builtins.Kind, receiver value.Value, args []value.Value) value.Value {
	intArg := func(i int) int64 { return args[i].(value.Int).Value }
	switch kind {
	case builtins.VersionCtorMajor:
		return &value.Version{Major: intArg(0)}
	case builtins.VersionCtorMajorMinor:
		return &value.Version{Major: intArg(0), Minor: intArg(1)}
	case builtins.VersionCtorMajorMinorPatch:
		return &value.Version{Major: intArg(0), Minor: intArg(1), Patch: intArg(2)}
	case builtins.VersionCtorMajorMinorPatchTweak:
		return &value.Version{Major: intArg(0), Minor: intArg(1), Patch: intArg(2), Tweak: intArg(3)}
	}

	self := receiver.(*value.Version)
	other, hasOther := value.Value(nil), false
	if len(args) > 0 {
		other, hasOther = args[0], true
	}
	cmp := 0
	if hasOther {
		o := other.(*value.Version)
		cmp = compareVersions(self, o)
	}
	switch kind {
	case builtins.VersionOperatorEqualEqual:
		return value.Bool{Value: cmp == 0}
	case builtins.VersionOperatorNotEqual:
		return value.Bool{Value: cmp != 0}
	case builtins.VersionOperatorLess:
		return value.Bool{Value: cmp < 0}
	case builtins.VersionOperatorLessEqual:
		return value.Bool{Value: cmp <= 0}
	case builtins.VersionOperatorGreater:
		return value.Bool{Value: cmp > 0}
	case builtins.VersionOperatorGreaterEqual:
		return value.Bool{Value: cmp >= 0}
	case builtins.VersionMajor:
		return value.Int{Value: self.Major}
	case builtins.VersionMinor:
		return value.Int{Value: self.Minor}
	case builtins.VersionPatch:
		return value.Int{Value: self.Patch}
	case builtins.VersionTweak:
		return value.Int{Value: self.Tweak}
	case builtins.VersionToString:
		return value.String{Value: self.String()}
	}
	return value.Void{}
}

func compareVersions(a, b *value.Version) int {
	for _, pair := range [][2]int64{{a.Major, b.Major}, {a.Minor, b.Minor}, {a.Patch, b.Patch}, {a.Tweak, b.Tweak}} {
		switch {
		case pair[0] < pair[1]:
			return -1
		case pair[0] > pair[1]:
			return 1
		}
	}
	return 0
}

// dispatchBuildDomain forwards every project/library/executable member to
// the injected facade.Facade (§4.8): these builtins carry no state of
// their own beyond the BuildTarget's façade-side Name.
func (e *Evaluator) dispatchBuildDomain(kind builtins.Kind, receiver value.Value, args []value.Value) value.Value {
	stringListArgs := func(v value.Value) []string {
		lst := v.(*value.List)
		out := make([]string, len(lst.Elements))
		for i, c := range lst.Elements {
			out[i] = c.Get().(value.String).Value
		}
		return out
	}

	switch kind {
	case builtins.ProjectCtorName:
		name := args[0].(value.String).Value
		e.facade.RegisterProject(name)
		return &value.BuildTarget{Name: name}
	case builtins.ProjectName:
		return value.String{Value: receiver.(*value.BuildTarget).Name}
	case builtins.ProjectAddExecutable:
		name := args[0].(value.String).Value
		sources := stringListArgs(args[1])
		target := e.facade.AddExecutable(name, sources)
		return &value.BuildTarget{Name: target}
	case builtins.ProjectAddLibrary:
		name := args[0].(value.String).Value
		sources := stringListArgs(args[1])
		target := e.facade.AddLibrary(name, sources)
		return &value.BuildTarget{Name: target}

	case builtins.LibraryName, builtins.ExecutableName:
		return value.String{Value: receiver.(*value.BuildTarget).Name}
	case builtins.LibraryLinkTo, builtins.ExecutableLinkTo:
		self := receiver.(*value.BuildTarget)
		other := args[0].(*value.BuildTarget)
		e.facade.TargetLinkLibrary(self.Name, facade.Private, other.Name)
		return value.Void{}
	case builtins.LibraryIncludeDirectories, builtins.ExecutableIncludeDirectories:
		self := receiver.(*value.BuildTarget)
		e.facade.TargetIncludeDirectories(self.Name, facade.Private, stringListArgs(args[0]))
		return value.Void{}
	case builtins.LibraryCompileDefinitions, builtins.ExecutableCompileDefinitions:
		self := receiver.(*value.BuildTarget)
		e.facade.TargetCompileDefinitions(self.Name, stringListArgs(args[0]), facade.Private)
		return value.Void{}
	}
	return value.Void{}
}

// dispatchEnum implements the implicit to_string() every user enum gets
// (§4.3's [EXPANSION]); the implicit int conversion is a Cast, not a
// member call, handled in expressions.go.
func (e *Evaluator) dispatchEnum(kind builtins.Kind, receiver value.Value) value.Value {
	en := receiver.(*value.Enum)
	switch kind {
	case builtins.EnumToInt:
		return value.Int{Value: en.Ordinal}
	case builtins.EnumToString:
		return value.String{Value: en.Case}
	}
	return value.Void{}
}

// dispatchList implements list<T>'s four members. operator[] here returns the
// element's current value, not its Cell; `lst[i] = x;` and `T& r = lst[i];`
// write through because evalCell indexes *sema.Index nodes directly.
func (e *Evaluator) dispatchList(kind builtins.Kind, receiver value.Value, args []value.Value, rng token.Range) value.Value {
	lst := receiver.(*value.List)
	switch kind {
	case builtins.ListEmpty:
		return value.Bool{Value: len(lst.Elements) == 0}
	case builtins.ListSize:
		return value.Int{Value: int64(len(lst.Elements))}
	case builtins.ListPushBack:
		lst.PushBack(args[0].Copy())
		return value.Void{}
	case builtins.ListOperatorIndex:
		at := args[0].(value.Int).Value
		if at < 0 || int(at) >= len(lst.Elements) {
			e.runtimeFatal(rng, "list index %d out of range (size %d)", at, len(lst.Elements))
			return value.Zero(lst.Element)
		}
		return lst.Elements[at].Get()
	}
	return value.Void{}
}
