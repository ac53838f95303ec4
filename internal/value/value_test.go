package value_test

import (
	"testing"

	"github.com/cmsl-lang/cmsl/internal/types"
	"github.com/cmsl-lang/cmsl/internal/value"
)

func TestFundamentalStrings(t *testing.T) {
	tests := []struct {
		name string
		v    value.Value
		want string
	}{
		{"bool true", value.Bool{Value: true}, "true"},
		{"bool false", value.Bool{Value: false}, "false"},
		{"int", value.Int{Value: -7}, "-7"},
		{"double", value.Double{Value: 2.5}, "2.5"},
		{"string", value.String{Value: "hi"}, "hi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestListCopyIsDeep(t *testing.T) {
	l := value.NewList(types.Int)
	l.PushBack(value.Int{Value: 1})
	l.PushBack(value.Int{Value: 2})

	cp := l.Copy().(*value.List)
	cp.Elements[0].Set(value.Int{Value: 99})

	if l.Elements[0].Get().(value.Int).Value != 1 {
		t.Fatalf("copying a list mutated the original: %v", l.Elements[0].Get())
	}
	if cp.Elements[0].Get().(value.Int).Value != 99 {
		t.Fatalf("expected copy's element to be mutated independently")
	}
}

func TestInstanceCopyIsDeep(t *testing.T) {
	ct := &types.ClassType{Name: "counter", Fields: []types.Field{{Name: "value", Type: types.Int}}}
	inst := value.NewInstance(ct)
	inst.Fields[0].Set(value.Int{Value: 5})

	cp := inst.Copy().(*value.Instance)
	cp.Fields[0].Set(value.Int{Value: 10})

	if inst.Fields[0].Get().(value.Int).Value != 5 {
		t.Fatalf("copying an instance mutated the original field")
	}
}

func TestListElementReferenceWritesThrough(t *testing.T) {
	l := value.NewList(types.Int)
	l.PushBack(value.Int{Value: 1})

	ref := value.Borrow(l.Elements[0])
	ref.Set(value.Int{Value: 5})

	if l.Elements[0].Get().(value.Int).Value != 5 {
		t.Fatalf("expected operator[] reference to write through to the backing element")
	}
}

func TestZeroValueForEachKind(t *testing.T) {
	if value.Zero(types.Int).(value.Int).Value != 0 {
		t.Fatalf("expected zero int")
	}
	if value.Zero(types.Bool).(value.Bool).Value != false {
		t.Fatalf("expected zero bool")
	}
	lt := &types.ListType{Element: types.String}
	lst, ok := value.Zero(lt).(*value.List)
	if !ok || len(lst.Elements) != 0 {
		t.Fatalf("expected empty list zero value")
	}
}

func TestCellBorrowWritesThroughToOwner(t *testing.T) {
	owner := value.NewCell(value.Int{Value: 1})
	ref := value.Borrow(owner)

	ref.Set(value.Int{Value: 42})

	if got := owner.Get().(value.Int).Value; got != 42 {
		t.Fatalf("write through borrowed cell did not reach owner, got %d", got)
	}
}

func TestBorrowOfBorrowedCellCollapsesToOwner(t *testing.T) {
	owner := value.NewCell(value.Int{Value: 1})
	first := value.Borrow(owner)
	second := value.Borrow(first)

	second.Set(value.Int{Value: 7})

	if got := owner.Get().(value.Int).Value; got != 7 {
		t.Fatalf("write through a reference-to-a-reference did not collapse to the owner, got %d", got)
	}
}
