package types

// Value represents the right-hand side of a predicate: either an inline
// literal or a bind parameter placeholder.
type Value interface {
	IsValue()
}

// Literal is a value rendered inline into the SQL text.
type Literal struct {
	V any
}

// BindParam is a placeholder rendered as a positional parameter. Its runtime
// value lives in the owning relation's ordered bind list, not in the clause
// tree, so the same *BindParam may appear in more than one clause tree.
// Placeholder occurrences are matched to bind values by position, never by
// pointer identity.
type BindParam struct{}

// Implement Value interface.
func (Literal) IsValue()    {}
func (*BindParam) IsValue() {}

// BindValue is a (column descriptor, runtime value) pair. Its index in the
// relation's bind list must align with the placeholder it fills after clause
// combination and any reordering.
type BindValue struct {
	Column Column
	Value  any
}
