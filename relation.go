package relq

import (
	"strings"

	"github.com/zoobzio/relq/internal/types"
)

// Relation is an immutable query descriptor over a target table. Every
// builder method returns a new Relation with one clause list extended (or
// one singular attribute set); the receiver is never modified. Relations are
// therefore safe to share across goroutines and to merge repeatedly.
//
// Relations perform no schema validation of their own: column names are
// qualified against the target table and passed through, and unknown
// associations surface from the Schema when joins are resolved.
type Relation struct {
	schema *Schema
	rel    *types.Rel
}

// clone returns a Relation backed by a fresh copy of the descriptor.
func (r *Relation) clone() *Relation {
	return &Relation{schema: r.schema, rel: r.rel.Clone()}
}

// column qualifies a column name against the relation's target table.
// Dotted names ("comments.body") pass through with their own qualifier.
func (r *Relation) column(name string) types.Column {
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return types.Column{Table: name[:i], Name: name[i+1:]}
	}
	return types.Column{Table: r.rel.Target.Name, Name: name}
}

// Where appends a predicate with its bind values, one per bind placeholder
// occurrence in the predicate, in order. Arity is not checked here; a
// mismatch surfaces as a BindArityError when the relation is rendered.
func (r *Relation) Where(p types.Predicate, binds ...types.BindValue) *Relation {
	out := r.clone()
	out.rel.Wheres = append(out.rel.Wheres, p)
	out.rel.Binds = append(out.rel.Binds, binds...)
	return out
}

// WhereEq appends an equality on a column with an inline literal value.
func (r *Relation) WhereEq(column string, value any) *Relation {
	return r.Where(types.Equality{Column: r.column(column), Value: types.Literal{V: value}})
}

// WhereBind appends an equality on a column backed by a bind parameter. The
// placeholder renders positionally; value travels in the bind list.
func (r *Relation) WhereBind(column string, p *types.BindParam, value any) *Relation {
	col := r.column(column)
	return r.Where(
		types.Equality{Column: col, Value: p},
		types.BindValue{Column: col, Value: value},
	)
}

// WhereOp appends a comparison on a column with an inline literal value.
func (r *Relation) WhereOp(column string, op types.Operator, value any) *Relation {
	return r.Where(types.Comparison{Column: r.column(column), Operator: op, Value: types.Literal{V: value}})
}

// WhereRaw appends a raw SQL fragment with one '?' per argument. Each
// argument becomes a bind parameter.
func (r *Relation) WhereRaw(sql string, args ...any) *Relation {
	values := make([]types.Value, 0, len(args))
	binds := make([]types.BindValue, 0, len(args))
	for _, arg := range args {
		p := &types.BindParam{}
		values = append(values, p)
		binds = append(binds, types.BindValue{Value: arg})
	}
	return r.Where(types.Raw{SQL: sql, Args: values}, binds...)
}

// Order appends an ORDER BY term.
func (r *Relation) Order(column string, dir types.Direction) *Relation {
	out := r.clone()
	out.rel.Orders = append(out.rel.Orders, types.OrderTerm{Column: r.column(column), Direction: dir})
	return out
}

// Limit sets the LIMIT value.
func (r *Relation) Limit(n int) *Relation {
	out := r.clone()
	out.rel.Limit = &n
	return out
}

// Offset sets the OFFSET value.
func (r *Relation) Offset(n int) *Relation {
	out := r.clone()
	out.rel.Offset = &n
	return out
}

// Select replaces the SELECT projection list.
func (r *Relation) Select(columns ...string) *Relation {
	out := r.clone()
	cols := make([]types.Column, 0, len(columns))
	for _, c := range columns {
		cols = append(cols, r.column(c))
	}
	out.rel.Selects = cols
	return out
}

// Joins appends association joins by name. Association names resolve
// against the schema when the relation is rendered, not here.
func (r *Relation) Joins(associations ...string) *Relation {
	out := r.clone()
	for _, assoc := range associations {
		out.rel.Joins = append(out.rel.Joins, types.Join{
			Association: assoc,
			Type:        types.InnerJoin,
		})
	}
	return out
}

// JoinOn appends an inner join on a concrete table with an explicit ON
// predicate. Bind parameters are not usable in ON predicates: there is no
// bind value paired with them, so rendering fails with a BindArityError.
// Use column comparisons or inline literals.
func (r *Relation) JoinOn(table string, on types.Predicate) *Relation {
	out := r.clone()
	out.rel.Joins = append(out.rel.Joins, types.Join{
		Table: types.Table{Name: table},
		On:    on,
		Type:  types.InnerJoin,
	})
	return out
}

// Lock sets the row-lock flag with the default FOR UPDATE mode.
func (r *Relation) Lock() *Relation {
	return r.LockMode(types.DefaultLockMode)
}

// LockMode sets the row-lock flag with an explicit mode string.
func (r *Relation) LockMode(mode string) *Relation {
	out := r.clone()
	out.rel.Lock = &types.Lock{Mode: mode}
	return out
}

// Preload adds associations to fetch in follow-up queries. Duplicates are
// dropped; first-seen order is preserved.
func (r *Relation) Preload(associations ...string) *Relation {
	out := r.clone()
	out.rel.Preload = appendUnique(out.rel.Preload, associations)
	return out
}

// EagerLoad adds associations to fetch in the same query via LEFT JOIN.
// Duplicates are dropped; first-seen order is preserved.
func (r *Relation) EagerLoad(associations ...string) *Relation {
	out := r.clone()
	out.rel.EagerLoad = appendUnique(out.rel.EagerLoad, associations)
	return out
}

func appendUnique(dst []string, add []string) []string {
	for _, s := range add {
		seen := false
		for _, have := range dst {
			if have == s {
				seen = true
				break
			}
		}
		if !seen {
			dst = append(dst, s)
		}
	}
	return dst
}

// Target returns the relation's target table.
func (r *Relation) Target() types.Table {
	return r.rel.Target
}

// WhereClauses returns a copy of the WHERE clause list.
func (r *Relation) WhereClauses() []types.Predicate {
	return append([]types.Predicate(nil), r.rel.Wheres...)
}

// BindValues returns a copy of the ordered bind value list.
func (r *Relation) BindValues() []types.BindValue {
	return append([]types.BindValue(nil), r.rel.Binds...)
}

// JoinSpecs returns a copy of the join list.
func (r *Relation) JoinSpecs() []types.Join {
	return append([]types.Join(nil), r.rel.Joins...)
}

// OrderTerms returns a copy of the ORDER BY terms.
func (r *Relation) OrderTerms() []types.OrderTerm {
	return append([]types.OrderTerm(nil), r.rel.Orders...)
}

// SelectList returns a copy of the SELECT projection list.
func (r *Relation) SelectList() []types.Column {
	return append([]types.Column(nil), r.rel.Selects...)
}

// LimitValue returns the LIMIT value and whether one is set.
func (r *Relation) LimitValue() (int, bool) {
	if r.rel.Limit == nil {
		return 0, false
	}
	return *r.rel.Limit, true
}

// OffsetValue returns the OFFSET value and whether one is set.
func (r *Relation) OffsetValue() (int, bool) {
	if r.rel.Offset == nil {
		return 0, false
	}
	return *r.rel.Offset, true
}

// LockClause returns the lock clause and whether one is set.
func (r *Relation) LockClause() (types.Lock, bool) {
	if r.rel.Lock == nil {
		return types.Lock{}, false
	}
	return *r.rel.Lock, true
}

// PreloadList returns a copy of the preload association names.
func (r *Relation) PreloadList() []string {
	return append([]string(nil), r.rel.Preload...)
}

// EagerLoadList returns a copy of the eager-load association names.
func (r *Relation) EagerLoadList() []string {
	return append([]string(nil), r.rel.EagerLoad...)
}

// Schema returns the schema the relation was created from.
func (r *Relation) Schema() *Schema {
	return r.schema
}

// Render resolves association joins against the schema and renders the
// relation with the given dialect renderer. Schema resolution errors and
// renderer errors propagate unchanged.
func (r *Relation) Render(renderer Renderer) (*types.QueryResult, error) {
	resolved, err := r.resolved()
	if err != nil {
		return nil, err
	}
	return renderer.Render(resolved)
}

// resolved returns a descriptor copy with every association join replaced by
// its concrete table and ON clause, and eager-load directives expanded to
// LEFT JOINs. Joins already covering an eager-load association are kept as
// is.
func (r *Relation) resolved() (*types.Rel, error) {
	out := r.rel.Clone()

	for i, join := range out.Joins {
		if join.Association == "" {
			continue
		}
		_, resolvedJoin, err := r.schema.Resolve(out.Target.Name, join.Association)
		if err != nil {
			return nil, err
		}
		resolvedJoin.Type = join.Type
		out.Joins[i] = resolvedJoin
	}

	for _, assoc := range out.EagerLoad {
		already := false
		for _, join := range out.Joins {
			if join.DedupKey() == assoc {
				already = true
				break
			}
		}
		if already {
			continue
		}
		_, join, err := r.schema.Resolve(out.Target.Name, assoc)
		if err != nil {
			return nil, err
		}
		join.Type = types.LeftJoin
		out.Joins = append(out.Joins, join)
	}

	return out, nil
}
