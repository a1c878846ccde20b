package types

// Rel is the clause aggregate behind a relation: the full descriptor of one
// query. Builder operations and merging always work on fresh copies, never
// in place, so a *Rel handed to a renderer is a stable value.
//
//nolint:govet // fieldalignment: Logical grouping is preferred over memory optimization
type Rel struct {
	Target    Table
	Selects   []Column
	Wheres    []Predicate
	Binds     []BindValue
	Joins     []Join
	Orders    []OrderTerm
	Limit     *int
	Offset    *int
	Lock      *Lock
	EagerLoad []string
	Preload   []string
}

// Clone returns a deep-enough copy: slices are copied, elements are value
// types (predicates hold shared *BindParam pointers intentionally).
func (r *Rel) Clone() *Rel {
	out := &Rel{Target: r.Target}
	out.Selects = append([]Column(nil), r.Selects...)
	out.Wheres = append([]Predicate(nil), r.Wheres...)
	out.Binds = append([]BindValue(nil), r.Binds...)
	out.Joins = append([]Join(nil), r.Joins...)
	out.Orders = append([]OrderTerm(nil), r.Orders...)
	out.EagerLoad = append([]string(nil), r.EagerLoad...)
	out.Preload = append([]string(nil), r.Preload...)
	if r.Limit != nil {
		v := *r.Limit
		out.Limit = &v
	}
	if r.Offset != nil {
		v := *r.Offset
		out.Offset = &v
	}
	if r.Lock != nil {
		v := *r.Lock
		out.Lock = &v
	}
	return out
}
