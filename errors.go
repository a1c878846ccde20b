package relq

import "fmt"

// UnresolvedAssociationError indicates an association name that is not
// defined on the table it was requested for.
type UnresolvedAssociationError struct {
	Table       string
	Association string
}

func (e UnresolvedAssociationError) Error() string {
	return fmt.Sprintf("association %q is not defined on table %q", e.Association, e.Table)
}

// UnknownTableError indicates a table not present in the schema.
type UnknownTableError struct {
	Table string
}

func (e UnknownTableError) Error() string {
	return fmt.Sprintf("table %q not found in schema", e.Table)
}

// UnknownColumnError indicates a column not present on a table.
type UnknownColumnError struct {
	Table  string
	Column string
}

func (e UnknownColumnError) Error() string {
	return fmt.Sprintf("column %q not found on table %q", e.Column, e.Table)
}
