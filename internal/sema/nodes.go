package sema

import (
	"github.com/cmsl-lang/cmsl/internal/types"
	"github.com/cmsl-lang/cmsl/pkg/token"
)

// Node is the common interface for every SEMA tree node: unlike the AST,
// every SEMA expression node carries its resolved Type, and every implicit
// conversion is a concrete Cast node rather than something the evaluator
// must rediscover.
type Node interface {
	Range() token.Range
}

// Expr is a SEMA expression node: it knows its own static type.
type Expr interface {
	Node
	Type() types.Type
}

// Stmt is a SEMA statement node.
type Stmt interface {
	Node
	stmtNode()
}

// typed is embedded by every concrete Expr to provide Type().
type typed struct {
	T   types.Type
	Rng token.Range
}

func (t typed) Type() types.Type   { return t.T }
func (t typed) Range() token.Range { return t.Rng }

// Literal nodes carry their resolved value directly; no further evaluation
// is needed at runtime beyond reading Value.
type BoolLit struct {
	typed
	Value bool
}

type IntLit struct {
	typed
	Value int64
}

type DoubleLit struct {
	typed
	Value float64
}

type StringLit struct {
	typed
	Value string
}

// VarRef resolves an identifier to the Symbol it was bound to by Lookup;
// the evaluator reads/writes through Sym at a call frame or global scope.
type VarRef struct {
	typed
	Sym *Symbol
}

// SelfFieldRef resolves a bare identifier inside a method body that names
// a field of the receiver's class: evaluated against the call frame's
// implicit self instance rather than a named storage slot.
type SelfFieldRef struct {
	typed
	FieldIndex int
	FieldName  string
}

// SelfRef stands for the implicit receiver of the enclosing method body —
// CMSL has no `this` keyword, so a bare call to a sibling method (e.g.
// `get()` from inside another method of the same class) is represented as
// a MethodCall whose Receiver is a SelfRef rather than a parsed expression.
type SelfRef struct {
	typed
}

// Cast materialises an implicit conversion decided during analysis (§4.5):
// int->double, int<->bool, or a reference take/dereference. The evaluator
// never decides whether to convert — it only executes the Cast it's handed.
type CastKind int

const (
	CastIntToDouble CastKind = iota
	CastIntToBool
	CastBoolToInt
	CastTakeReference
	CastDereference
	CastEnumToInt
)

type Cast struct {
	typed
	Kind CastKind
	X    Expr
}

// Binary covers every two-operand operator: arithmetic, comparison,
// logical, assignment, and compound assignment. Op.Kind drives the
// evaluator's dispatch; resolution has already checked operand types
// against the operator's builtin-member signature (§4.5/§4.6).
type Binary struct {
	typed
	Op    token.Token
	Left  Expr
	Right Expr
}

// Unary covers '-' and '!'.
type Unary struct {
	typed
	Op      token.Token
	Operand Expr
}

// EnumCaseRef names one case of a declared enum (e.g. `Color.Red`),
// resolved to its ordinal during analysis. Unlike FieldAccess it has no
// receiver expression and no backing storage — it behaves like a literal
// at evaluation time.
type EnumCaseRef struct {
	typed
	Case    string
	Ordinal int64
}

// FieldAccess reads a field of a class instance by its resolved index into
// the instance's field slots (order fixed at class-declaration time).
type FieldAccess struct {
	typed
	Receiver   Expr
	FieldIndex int
	FieldName  string
}

// Call is a free-function or constructor call, resolved to one specific
// overload.
type Call struct {
	typed
	Callee *FunctionSymbol
	Args   []Expr
}

// MethodCall is a call to one resolved overload of a member function on
// Receiver.
type MethodCall struct {
	typed
	Receiver Expr
	Callee   *FunctionSymbol
	Args     []Expr
}

// Index is the [EXPANSION] list<T>.operator[] access, producing a
// reference to the element (§4.3).
type Index struct {
	typed
	Receiver Expr
	At       Expr
}

// InitList is a `{ ... }` initializer resolved against an inferred
// list<T> target type; every Elements entry has already been converted
// (via Cast, if needed) to T.
type InitList struct {
	typed
	Elements []Expr
}

// --- statements ---

type Block struct {
	Stmts []Stmt
	Rng   token.Range
}

func (*Block) stmtNode()            {}
func (b *Block) Range() token.Range { return b.Rng }

type ExprStmt struct {
	X   Expr
	Rng token.Range
}

func (*ExprStmt) stmtNode()            {}
func (e *ExprStmt) Range() token.Range { return e.Rng }

type VarDeclStmt struct {
	Sym         *Symbol
	Initializer Expr // nil when uninitialized
	Rng         token.Range
}

func (*VarDeclStmt) stmtNode()            {}
func (v *VarDeclStmt) Range() token.Range { return v.Rng }

type ReturnStmt struct {
	Value Expr // nil for bare `return;`
	Rng   token.Range
}

func (*ReturnStmt) stmtNode()            {}
func (r *ReturnStmt) Range() token.Range { return r.Rng }

type IfBranch struct {
	Condition Expr
	Body      *Block
}

type IfStmt struct {
	Branches []IfBranch
	Else     *Block
	Rng      token.Range
}

func (*IfStmt) stmtNode()            {}
func (i *IfStmt) Range() token.Range { return i.Rng }

type WhileStmt struct {
	Condition Expr
	Body      *Block
	Rng       token.Range
}

func (*WhileStmt) stmtNode()            {}
func (w *WhileStmt) Range() token.Range { return w.Rng }

// --- declarations ---

// Function is a fully analysed free function or method, ready for
// evaluation: Symbol.Body is this Function's Body once analysis completes.
type Function struct {
	Symbol *FunctionSymbol
	Params []*Symbol
	Body   *Block
}

// Class is a fully analysed user class: its type plus every method's
// Function, in declaration order.
type Class struct {
	Type    *types.ClassType
	Methods []*Function
}

// Program is the root of the SEMA tree for one translation unit: every
// free function (including main, if declared) and every class.
type Program struct {
	Functions []*Function
	Classes   []*Class
}
