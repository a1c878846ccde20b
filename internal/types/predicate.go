package types

// Predicate represents a single WHERE clause entry.
type Predicate interface {
	IsPredicate()
}

// Equality is an equality constraint on a named column. Two equality
// predicates on the same qualified column are duplicates for merge purposes.
type Equality struct {
	Column Column
	Value  Value
}

// Comparison is an arbitrary operator constraint on a named column.
// Comparisons never participate in duplicate collapse.
type Comparison struct {
	Column   Column
	Operator Operator
	Value    Value
}

// ColumnComparison compares two columns, typically in a join ON clause.
type ColumnComparison struct {
	Left     Column
	Operator Operator
	Right    Column
}

// Raw is a raw SQL fragment. The fragment contains one '?' per entry in
// Args; literal args are rendered inline in place of their '?', bind params
// become positional placeholders.
type Raw struct {
	SQL  string
	Args []Value
}

// Implement Predicate interface.
func (Equality) IsPredicate()         {}
func (Comparison) IsPredicate()       {}
func (ColumnComparison) IsPredicate() {}
func (Raw) IsPredicate()              {}

// BindArity returns the number of bind placeholders the predicate consumes,
// in left-to-right occurrence order.
func BindArity(p Predicate) int {
	switch pred := p.(type) {
	case Equality:
		return valueArity(pred.Value)
	case Comparison:
		return valueArity(pred.Value)
	case Raw:
		n := 0
		for _, arg := range pred.Args {
			n += valueArity(arg)
		}
		return n
	default:
		return 0
	}
}

func valueArity(v Value) int {
	if _, ok := v.(*BindParam); ok {
		return 1
	}
	return 0
}
