package value

// Cell is §9's single reference abstraction: every named storage slot the
// evaluator manages (a local variable, a parameter binding, a class field
// slot) is a *Cell rather than a bare Value, so that taking a `T&` (§4.5) is
// always "make a Cell that refers to this one" instead of requiring a
// separate instance class hierarchy per storage kind (the teacher's
// ReferenceValue + the closure-returning evaluateLValue helpers in
// internal/interp/lvalue.go are generalized here into one type with an
// explicit Owned/Borrowed discriminant rather than a family of ad hoc
// get/set closures).
type CellKind int

const (
	Owned CellKind = iota
	Borrowed
)

type Cell struct {
	kind  CellKind
	value Value // meaningful when kind == Owned
	ref   *Cell // meaningful when kind == Borrowed
}

// NewCell returns a Cell that owns v directly.
func NewCell(v Value) *Cell {
	return &Cell{kind: Owned, value: v}
}

// Borrow returns a Cell that reads and writes through target. Borrowing a
// already-borrowed cell collapses the chain to the ultimate owner, so every
// Borrowed cell is exactly one hop away from the Owned cell holding the
// actual value — matching the analyser's CastTakeReference, which only ever
// takes a reference to an lvalue, never to another reference.
func Borrow(target *Cell) *Cell {
	for target.kind == Borrowed {
		target = target.ref
	}
	return &Cell{kind: Borrowed, ref: target}
}

// Kind reports whether c owns its value or borrows another cell's.
func (c *Cell) Kind() CellKind { return c.kind }

// Get reads the current value, following a Borrowed cell to its owner.
func (c *Cell) Get() Value {
	if c.kind == Borrowed {
		return c.ref.value
	}
	return c.value
}

// Set writes v, following a Borrowed cell to its owner so the write is
// visible to every other Cell borrowing the same owner.
func (c *Cell) Set(v Value) {
	if c.kind == Borrowed {
		c.ref.value = v
		return
	}
	c.value = v
}
