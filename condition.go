package relq

import "github.com/zoobzio/relq/internal/types"

// V wraps a value as an inline literal.
func V(v any) types.Value {
	return types.Literal{V: v}
}

// Bind creates a new bind parameter placeholder. The same *BindParam may be
// reused across clause trees; placeholder occurrences are resolved to bind
// values by position in the final clause order, not by pointer identity.
func Bind() *types.BindParam {
	return &types.BindParam{}
}

// Eq creates an equality predicate on a column.
func Eq(c types.Column, v types.Value) types.Equality {
	return types.Equality{Column: c, Value: v}
}

// Cmp creates a comparison predicate on a column.
func Cmp(c types.Column, op types.Operator, v types.Value) types.Comparison {
	return types.Comparison{Column: c, Operator: op, Value: v}
}

// OnCols creates a column-to-column comparison, typically for join ON
// clauses.
func OnCols(left types.Column, op types.Operator, right types.Column) types.ColumnComparison {
	return types.ColumnComparison{Left: left, Operator: op, Right: right}
}

// RawSQL creates a raw predicate fragment with one '?' per argument.
func RawSQL(sql string, args ...types.Value) types.Raw {
	return types.Raw{SQL: sql, Args: args}
}
