package types

// Direction represents sort direction.
type Direction string

const (
	ASC  Direction = "ASC"
	DESC Direction = "DESC"
)

// OrderTerm represents one ORDER BY term. Order is significant: the first
// term is the primary sort key.
type OrderTerm struct {
	Column    Column
	Direction Direction
}

// JoinType represents the type of SQL join.
type JoinType string

const (
	InnerJoin JoinType = "INNER JOIN"
	LeftJoin  JoinType = "LEFT JOIN"
)

// Join represents a JOIN spec: either a named association (resolved against
// the schema before rendering) or a concrete table with an ON predicate.
type Join struct {
	On          Predicate
	Association string
	Table       Table
	Type        JoinType
}

// DedupKey identifies a join for merge deduplication: the association name
// when set, otherwise the joined table name.
func (j Join) DedupKey() string {
	if j.Association != "" {
		return j.Association
	}
	return j.Table.Name
}

// Lock represents a row-lock clause.
type Lock struct {
	Mode string
}

// DefaultLockMode is the lock mode used when none is given.
const DefaultLockMode = "FOR UPDATE"
