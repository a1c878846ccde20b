package render

// Dialect describes how a SQL dialect renders the pieces the shared core
// cannot decide on its own: identifier quoting, placeholder style, and row
// locking. Everything else (clause order, predicate shapes, bind pairing) is
// identical across dialects and lives in Query.
type Dialect struct {
	// Name identifies the dialect in error messages.
	Name string

	// QuoteIdent quotes a single identifier (table or column name).
	QuoteIdent func(name string) string

	// Placeholder returns the placeholder text for the n-th bind value,
	// 1-based.
	Placeholder func(n int) string

	// RowLocking reports whether the dialect supports row-lock suffixes.
	// Dialects without support cause rendering of a locked relation to fail
	// with an UnsupportedFeatureError.
	RowLocking bool
}
