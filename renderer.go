package relq

import "github.com/zoobzio/relq/internal/types"

// Renderer defines the interface for SQL dialect-specific rendering.
// Implementations convert a resolved relation descriptor to SQL text plus a
// bind list in placeholder-occurrence order.
type Renderer interface {
	// Render converts a relation descriptor to a QueryResult with
	// dialect-specific SQL. The descriptor's association joins have already
	// been resolved to concrete tables by the time Render is called.
	Render(rel *types.Rel) (*types.QueryResult, error)
}
