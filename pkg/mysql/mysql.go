// Package mysql provides the MySQL dialect renderer for relq.
package mysql

import (
	"github.com/zoobzio/relq/internal/render"
	"github.com/zoobzio/relq/internal/types"
)

// Renderer implements the MySQL dialect renderer. Placeholders are ?;
// identifiers are backtick-quoted; FOR UPDATE is supported.
type Renderer struct{}

// New creates a new MySQL renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render converts a relation descriptor to a QueryResult with MySQL SQL.
func (*Renderer) Render(rel *types.Rel) (*types.QueryResult, error) {
	return render.Query(rel, render.Dialect{
		Name:       "mysql",
		QuoteIdent: render.QuoteIdentBacktick,
		Placeholder: func(int) string {
			return "?"
		},
		RowLocking: true,
	})
}
