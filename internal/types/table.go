package types

// Table represents a table reference.
// This is exported from the internal package so dialect packages can use it,
// but external users cannot import this package.
type Table struct {
	Name  string
	Alias string
}

// Column represents a qualified column descriptor.
// Two columns are the same column for merge purposes when their
// (Table, Name) pairs are equal after qualification.
type Column struct {
	Table string
	Name  string
}
