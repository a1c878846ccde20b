package relq

import (
	"github.com/zoobzio/relq/internal/render"
	"github.com/zoobzio/relq/internal/types"
)

// Merge combines two relations into a single relation under per-clause-kind
// rules:
//
//   - WHERE: left's clauses then right's, except that a left equality on a
//     column right also constrains by equality is dropped (right wins).
//   - LIMIT, OFFSET, SELECT, ORDER BY, LOCK: right's value wins as a whole
//     unit when present, otherwise left's is kept.
//   - JOINS: union with left's ordering, duplicates by association or table
//     identity dropped from the right.
//   - PRELOAD, EAGER LOAD: union in first-seen order.
//   - Bind values are recomputed from the surviving WHERE clauses and
//     realigned to the final placeholder order.
//
// The merged relation targets left's table. When right targets a different
// table, that table must be reachable through an association defined on
// left's table; the association join is folded into the result. Neither
// input is modified, and both remain reusable after the merge.
func Merge(left, right *Relation) (*Relation, error) {
	assocJoin, err := associationJoin(left, right)
	if err != nil {
		return nil, err
	}

	// Pass 1: collapse. A left equality loses to any right equality on the
	// same qualified column; everything else survives in original order.
	rightEq := make(map[types.Column]bool)
	for _, pred := range right.rel.Wheres {
		if eq, ok := pred.(types.Equality); ok {
			rightEq[eq.Column] = true
		}
	}

	var survivors []types.Predicate
	var survivorIdx []int
	for i, pred := range left.rel.Wheres {
		if eq, ok := pred.(types.Equality); ok && rightEq[eq.Column] {
			continue
		}
		survivors = append(survivors, pred)
		survivorIdx = append(survivorIdx, i)
	}

	// Pass 2: realign. Each side's bind list is sliced per clause by walking
	// that side's placeholder occurrences in order; the merged list is then
	// rebuilt in final clause order. Binds belonging to collapsed left
	// clauses are discarded with them.
	leftBinds, err := bindSlices(left.rel)
	if err != nil {
		return nil, err
	}
	rightBinds, err := bindSlices(right.rel)
	if err != nil {
		return nil, err
	}

	var binds []types.BindValue
	for _, i := range survivorIdx {
		binds = append(binds, leftBinds[i]...)
	}
	for i := range right.rel.Wheres {
		binds = append(binds, rightBinds[i]...)
	}

	merged := &types.Rel{Target: left.rel.Target}
	merged.Wheres = append(survivors, right.rel.Wheres...)
	merged.Binds = binds

	// Joins: left-biased union. First occurrence of a key keeps its
	// position; right's duplicate occurrences are dropped.
	seen := make(map[string]bool)
	for _, join := range left.rel.Joins {
		if seen[join.DedupKey()] {
			continue
		}
		seen[join.DedupKey()] = true
		merged.Joins = append(merged.Joins, join)
	}
	for _, join := range right.rel.Joins {
		if seen[join.DedupKey()] {
			continue
		}
		seen[join.DedupKey()] = true
		merged.Joins = append(merged.Joins, join)
	}
	if assocJoin != nil && !seen[assocJoin.DedupKey()] {
		merged.Joins = append(merged.Joins, *assocJoin)
	}

	// Right-biased singular attributes and whole-unit lists.
	if len(right.rel.Orders) > 0 {
		merged.Orders = append([]types.OrderTerm(nil), right.rel.Orders...)
	} else {
		merged.Orders = append([]types.OrderTerm(nil), left.rel.Orders...)
	}
	if len(right.rel.Selects) > 0 {
		merged.Selects = append([]types.Column(nil), right.rel.Selects...)
	} else {
		merged.Selects = append([]types.Column(nil), left.rel.Selects...)
	}
	merged.Limit = pickInt(left.rel.Limit, right.rel.Limit)
	merged.Offset = pickInt(left.rel.Offset, right.rel.Offset)
	if right.rel.Lock != nil {
		v := *right.rel.Lock
		merged.Lock = &v
	} else if left.rel.Lock != nil {
		v := *left.rel.Lock
		merged.Lock = &v
	}

	// Union directive sets in first-seen order.
	merged.Preload = appendUnique(append([]string(nil), left.rel.Preload...), right.rel.Preload)
	merged.EagerLoad = appendUnique(append([]string(nil), left.rel.EagerLoad...), right.rel.EagerLoad)

	return &Relation{schema: left.schema, rel: merged}, nil
}

// associationJoin returns the join folding right's target into left's query
// when the two relations target different tables. The association lookup is
// the schema's responsibility; its error propagates unchanged.
func associationJoin(left, right *Relation) (*types.Join, error) {
	if right.rel.Target.Name == left.rel.Target.Name {
		return nil, nil
	}

	for _, assoc := range left.schema.AssociationsOf(left.rel.Target.Name) {
		if assoc.Target != right.rel.Target.Name {
			continue
		}
		_, join, err := left.schema.Resolve(left.rel.Target.Name, assoc.Name)
		if err != nil {
			return nil, err
		}
		return &join, nil
	}

	return nil, UnresolvedAssociationError{
		Table:       left.rel.Target.Name,
		Association: right.rel.Target.Name,
	}
}

// bindSlices splits a relation's bind list into one slice per WHERE clause
// by walking each clause's placeholder occurrences in order.
func bindSlices(rel *types.Rel) ([][]types.BindValue, error) {
	out := make([][]types.BindValue, len(rel.Wheres))
	idx := 0
	for i, pred := range rel.Wheres {
		n := types.BindArity(pred)
		if idx+n > len(rel.Binds) {
			return nil, render.BindArityError{Placeholders: totalArity(rel), Binds: len(rel.Binds)}
		}
		out[i] = rel.Binds[idx : idx+n]
		idx += n
	}
	if idx != len(rel.Binds) {
		return nil, render.BindArityError{Placeholders: idx, Binds: len(rel.Binds)}
	}
	return out, nil
}

func totalArity(rel *types.Rel) int {
	n := 0
	for _, pred := range rel.Wheres {
		n += types.BindArity(pred)
	}
	return n
}

func pickInt(left, right *int) *int {
	src := left
	if right != nil {
		src = right
	}
	if src == nil {
		return nil
	}
	v := *src
	return &v
}
