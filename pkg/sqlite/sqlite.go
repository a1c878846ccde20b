// Package sqlite provides the SQLite dialect renderer for relq.
package sqlite

import (
	"github.com/zoobzio/relq/internal/render"
	"github.com/zoobzio/relq/internal/types"
)

// Renderer implements the SQLite dialect renderer. Placeholders are ?;
// identifiers are double-quoted. SQLite has no row locking, so rendering a
// locked relation fails with an UnsupportedFeatureError.
type Renderer struct{}

// New creates a new SQLite renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render converts a relation descriptor to a QueryResult with SQLite SQL.
func (*Renderer) Render(rel *types.Rel) (*types.QueryResult, error) {
	return render.Query(rel, render.Dialect{
		Name:       "sqlite",
		QuoteIdent: render.QuoteIdentDouble,
		Placeholder: func(int) string {
			return "?"
		},
		RowLocking: false,
	})
}
