package relq

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/zoobzio/capitan"
)

// Querier executes relations against a database through a dialect renderer.
//
// The db parameter accepts sqlx.ExtContext, which is satisfied by both
// *sqlx.DB and *sqlx.Tx, so callers can run relations inside a transaction
// by passing the transaction instead of the connection.
type Querier struct {
	db       sqlx.ExtContext
	renderer Renderer
}

// NewQuerier creates a Querier over a database connection and renderer.
func NewQuerier(db sqlx.ExtContext, renderer Renderer) *Querier {
	q := &Querier{db: db, renderer: renderer}

	capitan.Emit(context.Background(), QuerierCreated)

	return q
}

// Select renders the relation and scans all result rows into dest, which
// must be a pointer to a slice.
func (q *Querier) Select(ctx context.Context, dest any, rel *Relation) error {
	result, err := rel.Render(q.renderer)
	if err != nil {
		return err
	}

	start := time.Now()
	if err := sqlx.SelectContext(ctx, q.db, dest, result.SQL, result.Binds...); err != nil {
		capitan.Emit(ctx, QueryFailed,
			KeyTable.Field(rel.Target().Name),
			KeySQL.Field(result.SQL),
			KeyError.Field(err.Error()))
		return fmt.Errorf("relq: select from %s: %w", rel.Target().Name, err)
	}

	capitan.Emit(ctx, QueryExecuted,
		KeyTable.Field(rel.Target().Name),
		KeyDuration.Field(time.Since(start)))
	return nil
}

// Get renders the relation and scans a single result row into dest.
func (q *Querier) Get(ctx context.Context, dest any, rel *Relation) error {
	result, err := rel.Render(q.renderer)
	if err != nil {
		return err
	}

	start := time.Now()
	if err := sqlx.GetContext(ctx, q.db, dest, result.SQL, result.Binds...); err != nil {
		capitan.Emit(ctx, QueryFailed,
			KeyTable.Field(rel.Target().Name),
			KeySQL.Field(result.SQL),
			KeyError.Field(err.Error()))
		return fmt.Errorf("relq: get from %s: %w", rel.Target().Name, err)
	}

	capitan.Emit(ctx, QueryExecuted,
		KeyTable.Field(rel.Target().Name),
		KeyDuration.Field(time.Since(start)))
	return nil
}

// Rows renders the relation and returns the raw row iterator.
func (q *Querier) Rows(ctx context.Context, rel *Relation) (*sqlx.Rows, error) {
	result, err := rel.Render(q.renderer)
	if err != nil {
		return nil, err
	}

	rows, err := q.db.QueryxContext(ctx, result.SQL, result.Binds...)
	if err != nil {
		capitan.Emit(ctx, QueryFailed,
			KeyTable.Field(rel.Target().Name),
			KeySQL.Field(result.SQL),
			KeyError.Field(err.Error()))
		return nil, fmt.Errorf("relq: query %s: %w", rel.Target().Name, err)
	}
	return rows, nil
}

// PreloadPlan pairs a preload association with the base relation for its
// follow-up query. The execution layer narrows the relation by the parent
// keys it collected from the primary result set.
type PreloadPlan struct {
	Association Association
	Relation    *Relation
}

// Preloads resolves the relation's preload directives into follow-up query
// plans, one per association in first-seen order.
func (q *Querier) Preloads(ctx context.Context, rel *Relation) ([]PreloadPlan, error) {
	names := rel.PreloadList()
	plans := make([]PreloadPlan, 0, len(names))

	for _, name := range names {
		assoc, ok := findAssociation(rel.Schema(), rel.Target().Name, name)
		if !ok {
			return nil, UnresolvedAssociationError{Table: rel.Target().Name, Association: name}
		}

		follow, err := rel.Schema().TryRel(assoc.Target)
		if err != nil {
			return nil, err
		}
		plans = append(plans, PreloadPlan{Association: assoc, Relation: follow})

		capitan.Emit(ctx, PreloadPlanned,
			KeyTable.Field(rel.Target().Name),
			KeyAssociation.Field(name))
	}

	return plans, nil
}

func findAssociation(s *Schema, table, name string) (Association, bool) {
	for _, a := range s.AssociationsOf(table) {
		if a.Name == name {
			return a, true
		}
	}
	return Association{}, false
}
