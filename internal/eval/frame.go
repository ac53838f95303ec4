// Package eval implements §4.7's evaluator: a tree-walking interpreter over
// the SEMA tree that executes statements and expressions directly, grounded
// on the teacher's internal/interp.Interpreter (internal/interp/interp.go)
// and its Environment-chain scoping, generalized here through the
// value.Cell abstraction (§9) instead of the teacher's ReferenceValue type.
package eval

import "github.com/cmsl-lang/cmsl/internal/value"

// callState is shared by every Frame nested inside one function call, so a
// `return` inside an `if` or `while` block is visible to every outer block
// of that same call without threading a return value back up by hand.
type callState struct {
	ret      value.Value
	returned bool
}

// Frame is one call frame's identifier scope (§4.7): a block's local
// variables plus a link to its outer block (for nested-block lookup) and
// the call it belongs to (for self and the return slot). Identifier lookup
// walks vars, then outer, stopping at the frame whose outer is nil — the
// root frame of the current call.
type Frame struct {
	vars  map[string]*value.Cell
	outer *Frame
	self  *value.Instance
	call  *callState
}

// newRootFrame starts a fresh call with no block nesting yet, bound to
// self (nil for a free function).
func newRootFrame(self *value.Instance) *Frame {
	return &Frame{vars: make(map[string]*value.Cell), self: self, call: &callState{}}
}

// nested opens a new block scope inside the same call: it shares self and
// call (so a nested `return` reports through to every enclosing block of
// this call) but starts a fresh, empty variable map (so a block-local
// declaration never leaks to its enclosing block).
func (f *Frame) nested() *Frame {
	return &Frame{vars: make(map[string]*value.Cell), outer: f, self: f.self, call: f.call}
}

// define binds name to cell in this frame's own block scope.
func (f *Frame) define(name string, cell *value.Cell) {
	f.vars[name] = cell
}

// lookup walks from f outward to the root of the current call, returning
// the first binding found.
func (f *Frame) lookup(name string) (*value.Cell, bool) {
	for fr := f; fr != nil; fr = fr.outer {
		if c, ok := fr.vars[name]; ok {
			return c, true
		}
	}
	return nil, false
}
