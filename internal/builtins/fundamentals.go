package builtins

import "github.com/cmsl-lang/cmsl/internal/types"

// boolMembers mirrors add_bool_member_functions: constructors, assignment,
// equality, and the two logical operators, plus to_string (§4.3's table
// line "full constructor/conversion/operator/to_string tables").
func boolMembers() []types.Member {
	return []types.Member{
		{Name: "bool", ReturnType: types.Bool, Kind: int(BoolCtor)},
		{Name: "bool", Params: []types.Type{types.Bool}, ReturnType: types.Bool, Kind: int(BoolCtorBool)},
		{Name: "bool", Params: []types.Type{types.Int}, ReturnType: types.Bool, Kind: int(BoolCtorInt)},
		{Name: "operator=", Params: []types.Type{types.Bool}, ReturnType: types.Bool, Kind: int(BoolOperatorEqual)},
		{Name: "operator==", Params: []types.Type{types.Bool}, ReturnType: types.Bool, Kind: int(BoolOperatorEqualEqual)},
		{Name: "operator!=", Params: []types.Type{types.Bool}, ReturnType: types.Bool, Kind: int(BoolOperatorNotEqual)},
		{Name: "operator||", Params: []types.Type{types.Bool}, ReturnType: types.Bool, Kind: int(BoolOperatorPipePipe)},
		{Name: "operator&&", Params: []types.Type{types.Bool}, ReturnType: types.Bool, Kind: int(BoolOperatorAmpAmp)},
		{Name: "to_string", ReturnType: types.String, Kind: int(BoolToString)},
	}
}

// intMembers mirrors add_int_member_functions: constructors/conversions,
// the full comparison and arithmetic operator set (including compound
// assignment), unary minus, and to_string.
func intMembers() []types.Member {
	return []types.Member{
		{Name: "int", ReturnType: types.Int, Kind: int(IntCtor)},
		{Name: "int", Params: []types.Type{types.Int}, ReturnType: types.Int, Kind: int(IntCtorInt)},
		{Name: "int", Params: []types.Type{types.Bool}, ReturnType: types.Int, Kind: int(IntCtorBool)},
		{Name: "int", Params: []types.Type{types.Double}, ReturnType: types.Int, Kind: int(IntCtorDouble)},
		{Name: "operator=", Params: []types.Type{types.Int}, ReturnType: types.Int, Kind: int(IntOperatorEqual)},
		{Name: "operator==", Params: []types.Type{types.Int}, ReturnType: types.Bool, Kind: int(IntOperatorEqualEqual)},
		{Name: "operator!=", Params: []types.Type{types.Int}, ReturnType: types.Bool, Kind: int(IntOperatorNotEqual)},
		{Name: "operator<", Params: []types.Type{types.Int}, ReturnType: types.Bool, Kind: int(IntOperatorLess)},
		{Name: "operator<=", Params: []types.Type{types.Int}, ReturnType: types.Bool, Kind: int(IntOperatorLessEqual)},
		{Name: "operator>", Params: []types.Type{types.Int}, ReturnType: types.Bool, Kind: int(IntOperatorGreater)},
		{Name: "operator>=", Params: []types.Type{types.Int}, ReturnType: types.Bool, Kind: int(IntOperatorGreaterEqual)},
		{Name: "operator+", Params: []types.Type{types.Int}, ReturnType: types.Int, Kind: int(IntOperatorPlus)},
		{Name: "operator-", Params: []types.Type{types.Int}, ReturnType: types.Int, Kind: int(IntOperatorMinus)},
		{Name: "operator*", Params: []types.Type{types.Int}, ReturnType: types.Int, Kind: int(IntOperatorStar)},
		{Name: "operator/", Params: []types.Type{types.Int}, ReturnType: types.Int, Kind: int(IntOperatorSlash)},
		{Name: "operator+=", Params: []types.Type{types.Int}, ReturnType: &types.ReferenceType{Referenced: types.Int}, Kind: int(IntOperatorPlusEqual)},
		{Name: "operator-=", Params: []types.Type{types.Int}, ReturnType: &types.ReferenceType{Referenced: types.Int}, Kind: int(IntOperatorMinusEqual)},
		{Name: "operator*=", Params: []types.Type{types.Int}, ReturnType: &types.ReferenceType{Referenced: types.Int}, Kind: int(IntOperatorStarEqual)},
		{Name: "operator/=", Params: []types.Type{types.Int}, ReturnType: &types.ReferenceType{Referenced: types.Int}, Kind: int(IntOperatorSlashEqual)},
		{Name: "operator-unary", ReturnType: types.Int, Kind: int(IntUnaryMinus)},
		{Name: "to_string", ReturnType: types.String, Kind: int(IntToString)},
	}
}

// doubleMembers mirrors add_double_member_functions, the same shape as
// intMembers with double operands.
func doubleMembers() []types.Member {
	return []types.Member{
		{Name: "double", ReturnType: types.Double, Kind: int(DoubleCtor)},
		{Name: "double", Params: []types.Type{types.Double}, ReturnType: types.Double, Kind: int(DoubleCtorDouble)},
		{Name: "double", Params: []types.Type{types.Int}, ReturnType: types.Double, Kind: int(DoubleCtorInt)},
		{Name: "operator=", Params: []types.Type{types.Double}, ReturnType: types.Double, Kind: int(DoubleOperatorEqual)},
		{Name: "operator==", Params: []types.Type{types.Double}, ReturnType: types.Bool, Kind: int(DoubleOperatorEqualEqual)},
		{Name: "operator!=", Params: []types.Type{types.Double}, ReturnType: types.Bool, Kind: int(DoubleOperatorNotEqual)},
		{Name: "operator<", Params: []types.Type{types.Double}, ReturnType: types.Bool, Kind: int(DoubleOperatorLess)},
		{Name: "operator<=", Params: []types.Type{types.Double}, ReturnType: types.Bool, Kind: int(DoubleOperatorLessEqual)},
		{Name: "operator>", Params: []types.Type{types.Double}, ReturnType: types.Bool, Kind: int(DoubleOperatorGreater)},
		{Name: "operator>=", Params: []types.Type{types.Double}, ReturnType: types.Bool, Kind: int(DoubleOperatorGreaterEqual)},
		{Name: "operator+", Params: []types.Type{types.Double}, ReturnType: types.Double, Kind: int(DoubleOperatorPlus)},
		{Name: "operator-", Params: []types.Type{types.Double}, ReturnType: types.Double, Kind: int(DoubleOperatorMinus)},
		{Name: "operator*", Params: []types.Type{types.Double}, ReturnType: types.Double, Kind: int(DoubleOperatorStar)},
		{Name: "operator/", Params: []types.Type{types.Double}, ReturnType: types.Double, Kind: int(DoubleOperatorSlash)},
		{Name: "operator+=", Params: []types.Type{types.Double}, ReturnType: &types.ReferenceType{Referenced: types.Double}, Kind: int(DoubleOperatorPlusEqual)},
		{Name: "operator-=", Params: []types.Type{types.Double}, ReturnType: &types.ReferenceType{Referenced: types.Double}, Kind: int(DoubleOperatorMinusEqual)},
		{Name: "operator*=", Params: []types.Type{types.Double}, ReturnType: &types.ReferenceType{Referenced: types.Double}, Kind: int(DoubleOperatorStarEqual)},
		{Name: "operator/=", Params: []types.Type{types.Double}, ReturnType: &types.ReferenceType{Referenced: types.Double}, Kind: int(DoubleOperatorSlashEqual)},
		{Name: "operator-unary", ReturnType: types.Double, Kind: int(DoubleUnaryMinus)},
		{Name: "to_string", ReturnType: types.String, Kind: int(DoubleToString)},
	}
}

// stringMembers mirrors add_string_member_functions verbatim, member for
// member, in the same declaration order as the original.
func stringMembers() []types.Member {
	str := types.String
	i := types.Int
	b := types.Bool
	return []types.Member{
		{Name: "string", ReturnType: str, Kind: int(StringCtor)},
		{Name: "string", Params: []types.Type{str}, ReturnType: str, Kind: int(StringCtorString)},
		{Name: "string", Params: []types.Type{str, i}, ReturnType: str, Kind: int(StringCtorStringCount)},
		{Name: "empty", ReturnType: b, Kind: int(StringEmpty)},
		{Name: "size", ReturnType: i, Kind: int(StringSize)},
		{Name: "operator==", Params: []types.Type{str}, ReturnType: b, Kind: int(StringOperatorEqualEqual)},
		{Name: "operator!=", Params: []types.Type{str}, ReturnType: b, Kind: int(StringOperatorNotEqual)},
		{Name: "operator<", Params: []types.Type{str}, ReturnType: b, Kind: int(StringOperatorLess)},
		{Name: "operator<=", Params: []types.Type{str}, ReturnType: b, Kind: int(StringOperatorLessEqual)},
		{Name: "operator>", Params: []types.Type{str}, ReturnType: b, Kind: int(StringOperatorGreater)},
		{Name: "operator>=", Params: []types.Type{str}, ReturnType: b, Kind: int(StringOperatorGreaterEqual)},
		{Name: "operator+", Params: []types.Type{str}, ReturnType: str, Kind: int(StringOperatorPlus)},
		{Name: "operator+=", Params: []types.Type{str}, ReturnType: &types.ReferenceType{Referenced: str}, Kind: int(StringOperatorPlusEqual)},
		{Name: "clear", ReturnType: types.Void, Kind: int(StringClear)},
		{Name: "insert", Params: []types.Type{i, str}, ReturnType: str, Kind: int(StringInsertPosStr)},
		{Name: "erase", Params: []types.Type{i}, ReturnType: str, Kind: int(StringErasePos)},
		{Name: "erase", Params: []types.Type{i, i}, ReturnType: str, Kind: int(StringErasePosCount)},
		{Name: "starts_with", Params: []types.Type{str}, ReturnType: b, Kind: int(StringStartsWith)},
		{Name: "ends_with", Params: []types.Type{str}, ReturnType: b, Kind: int(StringEndsWith)},
		{Name: "replace", Params: []types.Type{i, i, str}, ReturnType: str, Kind: int(StringReplacePosCountStr)},
		{Name: "substr", Params: []types.Type{i}, ReturnType: str, Kind: int(StringSubstrPos)},
		{Name: "substr", Params: []types.Type{i, i}, ReturnType: str, Kind: int(StringSubstrPosCount)},
		{Name: "resize", Params: []types.Type{i}, ReturnType: types.Void, Kind: int(StringResizeNewSize)},
		{Name: "resize", Params: []types.Type{i, str}, ReturnType: types.Void, Kind: int(StringResizeNewSizeFill)},
		{Name: "find", Params: []types.Type{str}, ReturnType: i, Kind: int(StringFindStr)},
		{Name: "find", Params: []types.Type{str, i}, ReturnType: i, Kind: int(StringFindStrPos)},
		{Name: "find_not_of", Params: []types.Type{str}, ReturnType: i, Kind: int(StringFindNotOfStr)},
		{Name: "find_not_of", Params: []types.Type{str, i}, ReturnType: i, Kind: int(StringFindNotOfStrPos)},
		{Name: "find_last", Params: []types.Type{str}, ReturnType: i, Kind: int(StringFindLastStr)},
		{Name: "find_last_not_of", Params: []types.Type{str}, ReturnType: i, Kind: int(StringFindLastNotOfStr)},
		{Name: "contains", Params: []types.Type{str}, ReturnType: b, Kind: int(StringContains)},
		{Name: "lower", ReturnType: types.Void, Kind: int(StringLower)},
		{Name: "make_lower", ReturnType: str, Kind: int(StringMakeLower)},
		{Name: "upper", ReturnType: types.Void, Kind: int(StringUpper)},
		{Name: "make_upper", ReturnType: str, Kind: int(StringMakeUpper)},
	}
}
