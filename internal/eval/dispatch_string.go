package eval

import (
	"strings"

	"github.com/cmsl-lang/cmsl/internal/builtins"
	"github.com/cmsl-lang/cmsl/internal/value"
	"github.com/cmsl-lang/cmsl/pkg/token"
)

// dispatchString implements every string member (§4.3, mirroring
// add_string_member_functions member-for-member): constructors, the
// comparison/concatenation operators, and the full position-based editing
// API. Out-of-range positions are a fatal Runtime diagnostic, the same
// rule §7 states for list<T>'s operator[].
func (e *Evaluator) dispatchString(kind builtins.Kind, receiver value.Value, args []value.Value, rng token.Range) value.Value {
	switch kind {
	case builtins.StringCtor:
		return value.String{}
	case builtins.StringCtorString:
		return value.String{Value: args[0].(value.String).Value}
	case builtins.StringCtorStringCount:
		return value.String{Value: strings.Repeat(args[0].(value.String).Value, int(args[1].(value.Int).Value))}
	}

	self := receiver.(value.String).Value
	strArg := func(i int) string { return args[i].(value.String).Value }
	intArg := func(i int) int64 { return args[i].(value.Int).Value }

	switch kind {
	case builtins.StringEmpty:
		return value.Bool{Value: len(self) == 0}
	case builtins.StringSize:
		return value.Int{Value: int64(len(self))}
	case builtins.StringOperatorEqualEqual:
		return value.Bool{Value: self == strArg(0)}
	case builtins.StringOperatorNotEqual:
		return value.Bool{Value: self != strArg(0)}
	case builtins.StringOperatorLess:
		return value.Bool{Value: self < strArg(0)}
	case builtins.StringOperatorLessEqual:
		return value.Bool{Value: self <= strArg(0)}
	case builtins.StringOperatorGreater:
		return value.Bool{Value: self > strArg(0)}
	case builtins.StringOperatorGreaterEqual:
		return value.Bool{Value: self >= strArg(0)}
	case builtins.StringOperatorPlus, builtins.StringOperatorPlusEqual:
		return value.String{Value: self + strArg(0)}
	case builtins.StringClear:
		return value.String{Value: ""}
	case builtins.StringInsertPosStr:
		pos := intArg(0)
		if pos < 0 || int(pos) > len(self) {
			e.runtimeFatal(rng, "string insert position %d out of range (size %d)", pos, len(self))
			return value.String{Value: self}
		}
		return value.String{Value: self[:pos] + strArg(1) + self[pos:]}
	case builtins.StringErasePos:
		pos := intArg(0)
		if pos < 0 || int(pos) > len(self) {
			e.runtimeFatal(rng, "string erase position %d out of range (size %d)", pos, len(self))
			return value.String{Value: self}
		}
		return value.String{Value: self[:pos]}
	case builtins.StringErasePosCount:
		pos, count := intArg(0), intArg(1)
		if pos < 0 || int(pos) > len(self) {
			e.runtimeFatal(rng, "string erase position %d out of range (size %d)", pos, len(self))
			return value.String{Value: self}
		}
		end := int(pos) + int(count)
		if end > len(self) {
			end = len(self)
		}
		return value.String{Value: self[:pos] + self[end:]}
	case builtins.StringStartsWith:
		return value.Bool{Value: strings.HasPrefix(self, strArg(0))}
	case builtins.StringEndsWith:
		return value.Bool{Value: strings.HasSuffix(self, strArg(0))}
	case builtins.StringReplacePosCountStr:
		pos, count := intArg(0), intArg(1)
		if pos < 0 || int(pos) > len(self) {
			e.runtimeFatal(rng, "string replace position %d out of range (size %d)", pos, len(self))
			return value.String{Value: self}
		}
		end := int(pos) + int(count)
		if end > len(self) {
			end = len(self)
		}
		return value.String{Value: self[:pos] + strArg(2) + self[end:]}
	case builtins.StringSubstrPos:
		pos := intArg(0)
		if pos < 0 || int(pos) > len(self) {
			e.runtimeFatal(rng, "string substr position %d out of range (size %d)", pos, len(self))
			return value.String{Value: ""}
		}
		return value.String{Value: self[pos:]}
	case builtins.StringSubstrPosCount:
		pos, count := intArg(0), intArg(1)
		if pos < 0 || int(pos) > len(self) {
			e.runtimeFatal(rng, "string substr position %d out of range (size %d)", pos, len(self))
			return value.String{Value: ""}
		}
		end := int(pos) + int(count)
		if end > len(self) {
			end = len(self)
		}
		return value.String{Value: self[pos:end]}
	case builtins.StringResizeNewSize:
		return value.String{Value: resizeString(self, int(intArg(0)), " ")}
	case builtins.StringResizeNewSizeFill:
		return value.String{Value: resizeString(self, int(intArg(0)), strArg(1))}
	case builtins.StringFindStr:
		return value.Int{Value: int64(strings.Index(self, strArg(0)))}
	case builtins.StringFindStrPos:
		pos := int(intArg(1))
		if pos < 0 || pos > len(self) {
			return value.Int{Value: -1}
		}
		return value.Int{Value: int64(offsetOrNegative(strings.Index(self[pos:], strArg(0)), pos))}
	case builtins.StringFindNotOfStr:
		return value.Int{Value: int64(strings.IndexFunc(self, notInSet(strArg(0))))}
	case builtins.StringFindNotOfStrPos:
		pos := int(intArg(1))
		if pos < 0 || pos > len(self) {
			return value.Int{Value: -1}
		}
		return value.Int{Value: int64(offsetOrNegative(strings.IndexFunc(self[pos:], notInSet(strArg(0))), pos))}
	case builtins.StringFindLastStr:
		return value.Int{Value: int64(strings.LastIndex(self, strArg(0)))}
	case builtins.StringFindLastNotOfStr:
		return value.Int{Value: int64(strings.LastIndexFunc(self, notInSet(strArg(0))))}
	case builtins.StringContains:
		return value.Bool{Value: strings.Contains(self, strArg(0))}
	case builtins.StringLower:
		return value.String{Value: strings.ToLower(self)}
	case builtins.StringMakeLower:
		return value.String{Value: strings.ToLower(self)}
	case builtins.StringUpper:
		return value.String{Value: strings.ToUpper(self)}
	case builtins.StringMakeUpper:
		return value.String{Value: strings.ToUpper(self)}
	}

	return e.internalError(rng, "unhandled builtin dispatch kind %d", kind)
}

func offsetOrNegative(i, offset int) int {
	if i < 0 {
		return -1
	}
	return i + offset
}

func notInSet(set string) func(rune) bool {
	return func(r rune) bool { return !strings.ContainsRune(set, r) }
}

func resizeString(s string, n int, fill string) string {
	if n <= len(s) {
		return s[:n]
	}
	pad := fill
	if pad == "" {
		pad = " "
	}
	for len(s) < n {
		s += pad
	}
	return s[:n]
}
