// Package postgres provides the PostgreSQL dialect renderer for relq.
package postgres

import (
	"strconv"

	"github.com/zoobzio/relq/internal/render"
	"github.com/zoobzio/relq/internal/types"
)

// Renderer implements the PostgreSQL dialect renderer. Placeholders are $1,
// $2, ...; identifiers are double-quoted; FOR UPDATE is supported.
type Renderer struct{}

// New creates a new PostgreSQL renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render converts a relation descriptor to a QueryResult with PostgreSQL
// SQL.
func (*Renderer) Render(rel *types.Rel) (*types.QueryResult, error) {
	return render.Query(rel, render.Dialect{
		Name:       "postgres",
		QuoteIdent: render.QuoteIdentDouble,
		Placeholder: func(n int) string {
			return "$" + strconv.Itoa(n)
		},
		RowLocking: true,
	})
}
