// Package relq provides an immutable, mergeable query-relation builder.
//
// A Relation is a value describing one database query: WHERE predicates,
// ORDER BY terms, JOIN specs, LIMIT/OFFSET, a row-lock flag, SELECT
// projections, eager-load/preload directives, and positional bind values.
// Every builder call returns a new Relation; inputs are never mutated, so
// relations can be shared, reused, and merged concurrently without locking.
//
// # Basic Usage
//
// Relations are created from a Schema built on a DBML project:
//
//	schema, err := relq.NewFromDBML(project)
//	if err != nil {
//		return err
//	}
//
//	posts := schema.Rel("posts").
//		WhereEq("title", "omg").
//		Order("id", relq.DESC).
//		Limit(10)
//
//	result, err := posts.Render(postgres.New())
//	// result.SQL:   SELECT * FROM "posts" WHERE "posts"."title" = 'omg' ORDER BY "posts"."id" DESC LIMIT 10
//	// result.Binds: []any{}
//
// # Merging
//
// Merge combines two independently built relations into one:
//
//	merged, err := relq.Merge(left, right)
//
// WHERE clauses concatenate left-then-right, except that an equality on a
// column constrained by both sides keeps only the right side's clause.
// LIMIT, OFFSET, SELECT, ORDER BY, and the lock flag are right-biased as
// whole units; joins are a left-biased union; preload and eager-load sets
// union in first-seen order. Bind values are recomputed from the surviving
// clauses and realigned to the final placeholder order. Both inputs remain
// valid and reusable after the merge.
//
// # Multi-Dialect Support
//
// Rendering goes through the Renderer interface. Available dialects:
// postgres, sqlite, mysql (pkg/postgres, pkg/sqlite, pkg/mysql).
//
// # Output Format
//
// Queries use positional placeholders in the dialect's native style ($1 for
// postgres, ? for sqlite and mysql) with the bind list in placeholder order,
// ready for database/sql or sqlx.
package relq

import (
	"github.com/zoobzio/relq/internal/render"
	"github.com/zoobzio/relq/internal/types"
)

// Table represents a table reference.
type Table = types.Table

// Column represents a qualified column descriptor.
type Column = types.Column

// Predicate represents a single WHERE clause entry.
type Predicate = types.Predicate

// Equality is an equality constraint on a named column; duplicate-column
// equalities collapse to the right-hand side during Merge.
type Equality = types.Equality

// Comparison is an arbitrary operator constraint on a named column.
type Comparison = types.Comparison

// ColumnComparison compares two columns, typically in a join ON clause.
type ColumnComparison = types.ColumnComparison

// Raw is a raw SQL fragment with one '?' per argument.
type Raw = types.Raw

// Value is a predicate right-hand side: Literal or *BindParam.
type Value = types.Value

// Literal is a value rendered inline into the SQL text.
type Literal = types.Literal

// BindParam is a positional placeholder whose runtime value lives in the
// relation's bind list.
type BindParam = types.BindParam

// BindValue is a (column descriptor, runtime value) pair.
type BindValue = types.BindValue

// Join represents a JOIN spec.
type Join = types.Join

// JoinType represents the type of SQL join.
type JoinType = types.JoinType

// OrderTerm represents one ORDER BY term.
type OrderTerm = types.OrderTerm

// Direction represents sort direction.
type Direction = types.Direction

// Lock represents a row-lock clause.
type Lock = types.Lock

// Operator represents query comparison operators.
type Operator = types.Operator

// QueryResult contains rendered SQL and binds in placeholder order.
type QueryResult = types.QueryResult

// BindArityError reports a placeholder/bind count mismatch after rendering.
type BindArityError = render.BindArityError

// UnsupportedFeatureError indicates a feature not supported by a dialect.
type UnsupportedFeatureError = render.UnsupportedFeatureError

// Re-export operator constants for public API.
const (
	// Basic comparison operators.
	EQ = types.EQ
	NE = types.NE
	GT = types.GT
	GE = types.GE
	LT = types.LT
	LE = types.LE

	// Extended operators.
	IN        = types.IN
	NotIn     = types.NotIn
	LIKE      = types.LIKE
	NotLike   = types.NotLike
	IsNull    = types.IsNull
	IsNotNull = types.IsNotNull
)

// Re-export direction constants for public API.
const (
	ASC  = types.ASC
	DESC = types.DESC
)

// Re-export join type constants for public API.
const (
	InnerJoin = types.InnerJoin
	LeftJoin  = types.LeftJoin
)
