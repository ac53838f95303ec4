package types

// Interner owns every non-fundamental type produced while analysing one
// translation unit: user classes and enums registered by declaration, and
// list<T>/T& instantiations memoized by canonical name so that repeated
// uses of the same spelling share one Type value. Grounded on the
// teacher's TypeSystem registries (internal/interp/types/type_system.go),
// narrowed to the shapes CMSL actually has: no inheritance, no records, no
// interfaces.
type Interner struct {
	classes    map[string]*ClassType
	enums      map[string]*EnumType
	lists      map[string]*ListType
	references map[string]*ReferenceType
}

// NewInterner returns an empty Interner; builtins.New registers CMSL's
// builtin class-shaped types (version, project, library, executable) into
// it immediately afterward, so callers never need to special-case them
// against user classes.
func NewInterner() *Interner {
	in := &Interner{
		classes:    make(map[string]*ClassType),
		enums:      make(map[string]*EnumType),
		lists:      make(map[string]*ListType),
		references: make(map[string]*ReferenceType),
	}
	return in
}

// RegisterClass adds a class type under its own name. It is an error for
// the caller to register the same name twice; the analyser's declaration
// pass checks for that before calling in.
func (in *Interner) RegisterClass(c *ClassType) {
	in.classes[c.Name] = c
}

// LookupClass returns the class type named n, or (nil, false).
func (in *Interner) LookupClass(n string) (*ClassType, bool) {
	c, ok := in.classes[n]
	return c, ok
}

// RegisterEnum adds an enum type under its own name.
func (in *Interner) RegisterEnum(e *EnumType) {
	in.enums[e.Name] = e
}

// LookupEnum returns the enum type named n, or (nil, false).
func (in *Interner) LookupEnum(n string) (*EnumType, bool) {
	e, ok := in.enums[n]
	return e, ok
}

// LookupNamed resolves a plain (non-generic, non-reference) type name
// against fundamentals, then classes, then enums — the order the parser's
// TypeRepresentation resolution walks in.
func (in *Interner) LookupNamed(n string) (Type, bool) {
	if t, ok := LookupFundamental(n); ok {
		return t, true
	}
	if c, ok := in.LookupClass(n); ok {
		return c, true
	}
	if e, ok := in.LookupEnum(n); ok {
		return e, true
	}
	return nil, false
}

// ListOf returns the (memoized) list<elem> type, instantiating it on first
// use. Two calls with types of the same canonical name return the same
// *ListType pointer.
func (in *Interner) ListOf(elem Type) *ListType {
	key := "list<" + elem.CanonicalName() + ">"
	if l, ok := in.lists[key]; ok {
		return l
	}
	l := &ListType{Element: elem}
	in.lists[key] = l
	return l
}

// ReferenceTo returns the (memoized) t& type. Taking a reference to a
// reference collapses to the inner reference rather than nesting, since
// CMSL has no notion of a reference to a reference (§4.5).
func (in *Interner) ReferenceTo(t Type) *ReferenceType {
	if r, ok := t.(*ReferenceType); ok {
		return r
	}
	key := t.CanonicalName() + "&"
	if r, ok := in.references[key]; ok {
		return r
	}
	r := &ReferenceType{Referenced: t}
	in.references[key] = r
	return r
}

// AllClasses returns every registered class, including builtins seeded at
// construction. Used by the indexer to enumerate symbols.
func (in *Interner) AllClasses() map[string]*ClassType {
	out := make(map[string]*ClassType, len(in.classes))
	for k, v := range in.classes {
		out[k] = v
	}
	return out
}
