package types

// QueryResult contains the rendered SQL query and the bind values in
// placeholder-occurrence order.
type QueryResult struct {
	SQL   string
	Binds []any
}
