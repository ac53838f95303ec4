package types

import "testing"

func TestFundamentalTypes(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		want string
		kind Kind
	}{
		{"bool", Bool, "bool", KindBool},
		{"int", Int, "int", KindInt},
		{"double", Double, "double", KindDouble},
		{"string", String, "string", KindString},
		{"void", Void, "void", KindVoid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if tt.typ.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", tt.typ.Kind(), tt.kind)
			}
		})
	}
}

func TestLookupFundamental(t *testing.T) {
	if _, ok := LookupFundamental("int"); !ok {
		t.Error("expected int to be a fundamental")
	}
	if _, ok := LookupFundamental("Project"); ok {
		t.Error("Project must not resolve as a fundamental")
	}
}

func TestEqual(t *testing.T) {
	in := NewInterner()
	a := in.ListOf(Int)
	b := in.ListOf(Int)
	if a != b {
		t.Error("ListOf(Int) called twice should return the same pointer")
	}
	if !Equal(a, b) {
		t.Error("Equal(list<int>, list<int>) should be true")
	}
	if Equal(a, in.ListOf(Double)) {
		t.Error("Equal(list<int>, list<double>) should be false")
	}
}

func TestReferenceCollapse(t *testing.T) {
	in := NewInterner()
	r1 := in.ReferenceTo(Int)
	r2 := in.ReferenceTo(r1)
	if r1 != r2 {
		t.Error("taking a reference to a reference should collapse to the same pointer")
	}
	if Deref(r1) != Int {
		t.Errorf("Deref(int&) = %v, want int", Deref(r1))
	}
	if Deref(Int) != Int {
		t.Error("Deref of a non-reference should be the identity")
	}
}

func TestIsNumeric(t *testing.T) {
	in := NewInterner()
	if !IsNumeric(Int) || !IsNumeric(Double) {
		t.Error("int and double must be numeric")
	}
	if IsNumeric(String) || IsNumeric(Bool) {
		t.Error("string and bool must not be numeric")
	}
	if !IsNumeric(in.ReferenceTo(Int)) {
		t.Error("IsNumeric must see through references")
	}
}

func TestClassTypeMembers(t *testing.T) {
	c := &ClassType{
		Name: "Point",
		Fields: []Field{
			{Name: "x", Type: Int},
			{Name: "y", Type: Int},
		},
		Members: []Member{
			{Name: "length", Params: nil, ReturnType: Double},
			{Name: "scale", Params: []Type{Int}, ReturnType: Void},
			{Name: "scale", Params: []Type{Double}, ReturnType: Void},
		},
	}
	if _, ok := c.FieldByName("x"); !ok {
		t.Error("expected field x")
	}
	if _, ok := c.FieldByName("z"); ok {
		t.Error("did not expect field z")
	}
	if got := len(c.MembersByName("scale")); got != 2 {
		t.Errorf("expected 2 overloads of scale, got %d", got)
	}
}

func TestEnumType(t *testing.T) {
	e := &EnumType{
		Name:   "Visibility",
		Cases:  []string{"Public", "Private"},
		Values: map[string]int64{"Public": 0, "Private": 1},
	}
	v, ok := e.ValueOf("Private")
	if !ok || v != 1 {
		t.Errorf("ValueOf(Private) = (%d, %v), want (1, true)", v, ok)
	}
	if _, ok := e.ValueOf("Protected"); ok {
		t.Error("did not expect a Protected case")
	}
}

func TestInternerLookupNamedOrder(t *testing.T) {
	in := NewInterner()
	in.RegisterClass(&ClassType{Name: "project"})
	if _, ok := in.LookupNamed("project"); !ok {
		t.Error("expected to resolve registered class project")
	}
	if _, ok := in.LookupNamed("nonexistent"); ok {
		t.Error("did not expect nonexistent to resolve")
	}
}
