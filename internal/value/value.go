// Package value implements §4.7's runtime instance model: the tagged union
// of values the evaluator produces and consumes, grounded on the teacher's
// internal/interp.Value interface and its concrete *XValue structs
// (internal/interp/value.go) — one small struct per runtime shape, each
// knowing its own Type() and String(), rather than a visitor-heavy instance
// class hierarchy (§9's first re-architecture note).
package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cmsl-lang/cmsl/internal/types"
)

// Value is implemented by every runtime instance. Copy implements §4.5's
// copy rule: deep copy for strings and lists, shallow tag copy for
// fundamentals — the evaluator calls Copy() whenever a value is read out of
// storage into a fresh binding (a variable initializer, an argument passed
// by value, a returned expression) so that later mutation of the copy never
// reaches back into the original owner.
type Value interface {
	Kind() Kind
	Type() types.Type
	String() string
	Copy() Value
}

// Kind discriminates the concrete runtime shape of a Value without a type
// switch at every call site, mirroring types.Kind on the static side.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindDouble
	KindString
	KindVersion
	KindEnum
	KindList
	KindInstance
	KindVoid
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindVersion:
		return "version"
	case KindEnum:
		return "enum"
	case KindList:
		return "list"
	case KindInstance:
		return "instance"
	case KindVoid:
		return "void"
	default:
		return "unknown"
	}
}

// Bool, Int, Double, String are the four fundamental scalars. They have
// value semantics in Go already (copying the struct copies the payload), so
// Copy just returns a new struct with the same field.

type Bool struct{ Value bool }

func (Bool) Kind() Kind       { return KindBool }
func (Bool) Type() types.Type { return types.Bool }
func (b Bool) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}
func (b Bool) Copy() Value { return Bool{b.Value} }

type Int struct{ Value int64 }

func (Int) Kind() Kind       { return KindInt }
func (Int) Type() types.Type { return types.Int }
func (i Int) String() string { return strconv.FormatInt(i.Value, 10) }
func (i Int) Copy() Value    { return Int{i.Value} }

type Double struct{ Value float64 }

func (Double) Kind() Kind       { return KindDouble }
func (Double) Type() types.Type { return types.Double }
func (d Double) String() string { return strconv.FormatFloat(d.Value, 'g', -1, 64) }
func (d Double) Copy() Value    { return Double{d.Value} }

// String is a deep-copying reference type at the language level (§4.5) even
// though Go strings are themselves immutable — copying the struct is
// already a deep copy since no two String values can alias the same
// backing storage in a way CMSL source can observe.
type String struct{ Value string }

func (String) Kind() Kind       { return KindString }
func (String) Type() types.Type { return types.String }
func (s String) String() string { return s.Value }
func (s String) Copy() Value    { return String{s.Value} }

// Void is the result of evaluating a call to a function declared to return
// void; it carries no payload and is never bound to a variable.
type Void struct{}

func (Void) Kind() Kind       { return KindVoid }
func (Void) Type() types.Type { return types.Void }
func (Void) String() string   { return "void" }
func (Void) Copy() Value      { return Void{} }

// Version is the builtin version(major[, minor[, patch[, tweak]]]) value.
// version has no Fields in its ClassType (§4.3: "builtins expose state only
// through their Members"), so its four components live here instead of in
// an Instance's Fields slice.
type Version struct {
	Class *types.ClassType
	Major, Minor, Patch, Tweak int64
}

func (v *Version) Kind() Kind       { return KindVersion }
func (v *Version) Type() types.Type { return v.Class }
func (v *Version) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Patch, v.Tweak)
}
func (v *Version) Copy() Value {
	cp := *v
	return &cp
}

// Enum is one case of a user-declared enum (§3, §4.3's [EXPANSION]).
type Enum struct {
	Class   *types.EnumType
	Case    string
	Ordinal int64
}

func (e *Enum) Kind() Kind       { return KindEnum }
func (e *Enum) Type() types.Type { return e.Class }
func (e *Enum) String() string   { return e.Case }
func (e *Enum) Copy() Value {
	cp := *e
	return &cp
}

// List is list<T>'s runtime representation: a resizable, homogeneous
// container. Elements are held as Cells rather than bare Values so that
// §4.3's operator[](int) -> T& can hand the evaluator a genuine reference
// into the backing slice (Borrow(elements[i])) instead of a copy.
type List struct {
	Element  types.Type
	Elements []*Cell
}

// NewList returns an empty list<elem>.
func NewList(elem types.Type) *List {
	return &List{Element: elem}
}

func (l *List) Kind() Kind       { return KindList }
func (l *List) Type() types.Type { return &types.ListType{Element: l.Element} }
func (l *List) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.Get().String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Copy deep-copies every element into a fresh owning Cell, per §4.5's list
// copy rule — mutating the copy's elements never reaches the original.
func (l *List) Copy() Value {
	cp := &List{Element: l.Element, Elements: make([]*Cell, len(l.Elements))}
	for i, e := range l.Elements {
		cp.Elements[i] = NewCell(e.Get().Copy())
	}
	return cp
}

// PushBack appends v in a freshly owned Cell.
func (l *List) PushBack(v Value) {
	l.Elements = append(l.Elements, NewCell(v))
}

// Instance is a user-declared class's runtime representation: Fields holds
// one Cell per ClassType.Fields entry, in declaration order, matching the
// FieldIndex the analyser already resolved into every SelfFieldRef/
// FieldAccess node. Fields are Cells (not bare Values) so that taking a
// reference to a field — `T&` per §4.5 — is just Borrow(inst.Fields[i]).
type Instance struct {
	Class  *types.ClassType
	Fields []*Cell
}

// NewInstance returns a zero-valued instance of ct: every field initialized
// to its type's Zero(), each owned by its own Cell.
func NewInstance(ct *types.ClassType) *Instance {
	fields := make([]*Cell, len(ct.Fields))
	for i, f := range ct.Fields {
		fields[i] = NewCell(Zero(f.Type))
	}
	return &Instance{Class: ct, Fields: fields}
}

func (o *Instance) Kind() Kind       { return KindInstance }
func (o *Instance) Type() types.Type { return o.Class }
func (o *Instance) String() string   { return o.Class.Name }

// Copy deep-copies every field into a fresh owning Cell. User classes have
// value semantics in CMSL (there is no heap-allocated "new" in the
// grammar; a class variable is a value like any other), matching §4.5's
// string/list deep-copy rule.
func (o *Instance) Copy() Value {
	cp := &Instance{Class: o.Class, Fields: make([]*Cell, len(o.Fields))}
	for i, f := range o.Fields {
		cp.Fields[i] = NewCell(f.Get().Copy())
	}
	return cp
}

// BuildTarget is the runtime representation of project/library/executable:
// build-domain class-shaped types whose real state (link edges, include
// directories, compile definitions) lives in the façade, not here. Name
// identifies the façade-side target; the builtin dispatch in internal/eval
// forwards member calls on these to the injected facade.Facade.
type BuildTarget struct {
	Class *types.ClassType
	Name  string
}

func (b *BuildTarget) Kind() Kind       { return KindInstance }
func (b *BuildTarget) Type() types.Type { return b.Class }
func (b *BuildTarget) String() string   { return b.Class.Name + "(" + b.Name + ")" }
func (b *BuildTarget) Copy() Value {
	cp := *b
	return &cp
}

// Zero returns the zero value for t: false/0/0.0/"" for fundamentals, an
// empty list for list<T>, a zero-valued Instance for a user class, the
// first declared case for an enum, or a zero version for the version type.
// Used to initialize fields and uninitialized local variables.
func Zero(t types.Type) Value {
	switch dt := types.Deref(t).(type) {
	case nil:
		return Void{}
	default:
		switch dt.Kind() {
		case types.KindBool:
			return Bool{}
		case types.KindInt:
			return Int{}
		case types.KindDouble:
			return Double{}
		case types.KindString:
			return String{}
		case types.KindVoid:
			return Void{}
		case types.KindList:
			lt := dt.(*types.ListType)
			return NewList(lt.Element)
		case types.KindEnum:
			// Default for an uninitialized declaration (`Visibility v;`); an
			// explicit `Visibility.Private`-shaped initializer resolves to
			// its own case via sema.EnumCaseRef and never reaches here.
			et := dt.(*types.EnumType)
			if len(et.Cases) == 0 {
				return &Enum{Class: et}
			}
			first := et.Cases[0]
			ordinal, _ := et.ValueOf(first)
			return &Enum{Class: et, Case: first, Ordinal: ordinal}
		case types.KindClass:
			ct := dt.(*types.ClassType)
			if ct.Name == "version" {
				return &Version{Class: ct}
			}
			if ct.Name == "project" || ct.Name == "library" || ct.Name == "executable" {
				return &BuildTarget{Class: ct}
			}
			return NewInstance(ct)
		default:
			return Void{}
		}
	}
}
