// Package types implements the CMSL semantic type system: the builtin
// fundamentals, class types, the homogeneous generic list<T> instantiated
// on demand, and reference types. It has no dependency on the AST or the
// analyser — it is pure type algebra, the way the teacher separates its
// TypeSystem from the interpreter (internal/interp/types/type_system.go).
package types

import "fmt"

// Kind discriminates the concrete shape of a Type without a type switch at
// every call site.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindDouble
	KindString
	KindVoid
	KindClass
	KindEnum
	KindList
	KindReference
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
	case KindVoid:
		return "void"
	case KindClass:
		return "class"
	case KindEnum:
		return "enum"
	case KindList:
		return "list"
	case KindReference:
		return "reference"
	default:
		return "unknown"
	}
}

// Type is implemented by every CMSL type. CanonicalName is the string used
// to key the interner's memoization tables (e.g. "list<list<int>>",
// "int&") and is what overload resolution compares types by.
type Type interface {
	Kind() Kind
	CanonicalName() string
	String() string
}

// fundamental is a builtin scalar type: bool, int, double, string, void.
type fundamental struct {
	kind Kind
	name string
}

func (f *fundamental) Kind() Kind            { return f.kind }
func (f *fundamental) CanonicalName() string { return f.name }
func (f *fundamental) String() string        { return f.name }

var (
	Bool   Type = &fundamental{KindBool, "bool"}
	Int    Type = &fundamental{KindInt, "int"}
	Double Type = &fundamental{KindDouble, "double"}
	String Type = &fundamental{KindString, "string"}
	Void   Type = &fundamental{KindVoid, "void"}
)

// fundamentalsByName backs LookupFundamental and the parser's builtin-type
// token recognition.
var fundamentalsByName = map[string]Type{
	"bool":   Bool,
	"int":    Int,
	"double": Double,
	"string": String,
	"void":   Void,
}

// LookupFundamental returns the builtin scalar type named by n, or (nil,
// false) if n does not name one.
func LookupFundamental(n string) (Type, bool) {
	t, ok := fundamentalsByName[n]
	return t, ok
}

// IsFundamental reports whether t is one of the five builtin scalars.
func IsFundamental(t Type) bool {
	switch t.Kind() {
	case KindBool, KindInt, KindDouble, KindString, KindVoid:
		return true
	default:
		return false
	}
}

// Member describes one member function attached to a ClassType or a
// builtin class-shaped type (list<T>, version, project, library,
// executable): its name, parameter types, and return type. Builtin
// members have no AST body; user classes resolve Body through sema.
type Member struct {
	Name       string
	Params     []Type
	ReturnType Type
	// Kind tags builtin members with an opaque dispatch identifier the
	// evaluator switches on (see internal/builtins.Kind); zero for
	// user-declared class methods, which carry a body instead.
	Kind int
}

// ClassType is a user-declared `class` or one of CMSL's builtin
// class-shaped types (version, project, library, executable). Fields are
// only populated for user classes; builtins expose state only through
// their Members.
type ClassType struct {
	Name    string
	Fields  []Field
	Members []Member
}

// Field is one data member of a ClassType.
type Field struct {
	Name string
	Type Type
}

func (c *ClassType) Kind() Kind            { return KindClass }
func (c *ClassType) CanonicalName() string { return c.Name }
func (c *ClassType) String() string        { return c.Name }

// FieldByName returns the field named n, or (Field{}, false).
func (c *ClassType) FieldByName(n string) (Field, bool) {
	for _, f := range c.Fields {
		if f.Name == n {
			return f, true
		}
	}
	return Field{}, false
}

// MembersByName returns every overload of the member function named n.
// Overload resolution over this set happens in the sema package; the type
// system only stores candidates.
func (c *ClassType) MembersByName(n string) []Member {
	var out []Member
	for _, m := range c.Members {
		if m.Name == n {
			out = append(out, m)
		}
	}
	return out
}

// EnumType is a user-declared `enum`. Cases map case name to its integer
// value, per §3's [EXPANSION]: values default to 0,1,2,... in declaration
// order when no initializer is given.
type EnumType struct {
	Name   string
	Cases  []string
	Values map[string]int64
}

func (e *EnumType) Kind() Kind            { return KindEnum }
func (e *EnumType) CanonicalName() string { return e.Name }
func (e *EnumType) String() string        { return e.Name }

// ValueOf returns the integer value of case c, or (0, false) if c is not a
// case of e.
func (e *EnumType) ValueOf(c string) (int64, bool) {
	v, ok := e.Values[c]
	return v, ok
}

// ListType is list<Element>, CMSL's sole generic: homogeneous, instantiated
// on demand and memoized by the Interner so that two references to
// "list<int>" compare equal by pointer.
type ListType struct {
	Element Type
}

func (l *ListType) Kind() Kind            { return KindList }
func (l *ListType) CanonicalName() string { return fmt.Sprintf("list<%s>", l.Element.CanonicalName()) }
func (l *ListType) String() string        { return fmt.Sprintf("list<%s>", l.Element.String()) }

// ReferenceType is `T&`, produced by the analyser whenever a parameter or
// binding takes its operand by reference (§4.5).
type ReferenceType struct {
	Referenced Type
}

func (r *ReferenceType) Kind() Kind { return KindReference }
func (r *ReferenceType) CanonicalName() string {
	return r.Referenced.CanonicalName() + "&"
}
func (r *ReferenceType) String() string { return r.Referenced.String() + "&" }

// Deref strips one layer of reference, returning t unchanged if it is not
// a ReferenceType. Used pervasively wherever a value's shape rather than
// its binding mode matters (arithmetic, member lookup, list element type).
func Deref(t Type) Type {
	if r, ok := t.(*ReferenceType); ok {
		return r.Referenced
	}
	return t
}

// IsNumeric reports whether t (after Deref) is int or double.
func IsNumeric(t Type) bool {
	switch Deref(t).Kind() {
	case KindInt, KindDouble:
		return true
	default:
		return false
	}
}

// Equal reports whether a and b denote the same type. Types are compared
// structurally by canonical name rather than by pointer identity, since
// callers may hold types produced by different Interners (e.g. in tests).
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.CanonicalName() == b.CanonicalName()
}
