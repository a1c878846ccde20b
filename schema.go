package relq

import (
	"fmt"

	"github.com/zoobzio/dbml"

	"github.com/zoobzio/relq/internal/types"
)

// primaryKeyColumn is the assumed primary key name for association joins.
const primaryKeyColumn = "id"

// AssociationKind distinguishes which side of an association holds the
// foreign key.
type AssociationKind string

const (
	// BelongsTo means the owner table holds the foreign key.
	BelongsTo AssociationKind = "belongs_to"
	// HasMany means the target table holds the foreign key.
	HasMany AssociationKind = "has_many"
)

// Association describes a named association between two tables.
type Association struct {
	Name       string
	Owner      string
	Target     string
	ForeignKey string
	Kind       AssociationKind
}

// Schema is a relation factory bound to a DBML project. It provides the two
// collaborator services the merge and render layers consume: association
// resolution and column identity lookup. Define all associations before
// handing the schema to concurrent users; lookups after that point are
// read-only.
type Schema struct {
	project *dbml.Project
	// Internal indexes for fast validation
	tables  map[string]*dbml.Table
	columns map[string]map[string]*dbml.Column // table -> column name -> column
	assocs  map[string][]Association           // owner table -> associations in registration order
}

// NewFromDBML creates a new Schema from a DBML project.
func NewFromDBML(project *dbml.Project) (*Schema, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	s := &Schema{
		project: project,
		tables:  make(map[string]*dbml.Table),
		columns: make(map[string]map[string]*dbml.Column),
		assocs:  make(map[string][]Association),
	}

	// Build indexes for fast validation
	for _, table := range project.Tables {
		s.tables[table.Name] = table
		s.columns[table.Name] = make(map[string]*dbml.Column)
		for _, col := range table.Columns {
			s.columns[table.Name][col.Name] = col
		}
	}

	return s, nil
}

// TryBelongsTo registers a belongs-to association: owner holds the foreign
// key pointing at target's primary key.
func (s *Schema) TryBelongsTo(owner, name, target, foreignKey string) error {
	return s.addAssociation(Association{
		Name:       name,
		Owner:      owner,
		Target:     target,
		ForeignKey: foreignKey,
		Kind:       BelongsTo,
	})
}

// BelongsTo registers a belongs-to association or panics.
func (s *Schema) BelongsTo(owner, name, target, foreignKey string) {
	if err := s.TryBelongsTo(owner, name, target, foreignKey); err != nil {
		panic(err)
	}
}

// TryHasMany registers a has-many association: target holds the foreign key
// pointing back at owner's primary key.
func (s *Schema) TryHasMany(owner, name, target, foreignKey string) error {
	return s.addAssociation(Association{
		Name:       name,
		Owner:      owner,
		Target:     target,
		ForeignKey: foreignKey,
		Kind:       HasMany,
	})
}

// HasMany registers a has-many association or panics.
func (s *Schema) HasMany(owner, name, target, foreignKey string) {
	if err := s.TryHasMany(owner, name, target, foreignKey); err != nil {
		panic(err)
	}
}

func (s *Schema) addAssociation(a Association) error {
	if _, ok := s.tables[a.Owner]; !ok {
		return UnknownTableError{Table: a.Owner}
	}
	if _, ok := s.tables[a.Target]; !ok {
		return UnknownTableError{Table: a.Target}
	}

	fkTable := a.Owner
	if a.Kind == HasMany {
		fkTable = a.Target
	}
	if _, ok := s.columns[fkTable][a.ForeignKey]; !ok {
		return UnknownColumnError{Table: fkTable, Column: a.ForeignKey}
	}

	for _, have := range s.assocs[a.Owner] {
		if have.Name == a.Name {
			return fmt.Errorf("association %q already defined on table %q", a.Name, a.Owner)
		}
	}

	s.assocs[a.Owner] = append(s.assocs[a.Owner], a)
	return nil
}

// Resolve looks up an association on a table and returns the target table
// plus the join spec connecting owner and target.
func (s *Schema) Resolve(table, association string) (types.Table, types.Join, error) {
	for _, a := range s.assocs[table] {
		if a.Name != association {
			continue
		}

		var on types.ColumnComparison
		switch a.Kind {
		case BelongsTo:
			on = types.ColumnComparison{
				Left:     types.Column{Table: a.Target, Name: primaryKeyColumn},
				Operator: types.EQ,
				Right:    types.Column{Table: a.Owner, Name: a.ForeignKey},
			}
		case HasMany:
			on = types.ColumnComparison{
				Left:     types.Column{Table: a.Target, Name: a.ForeignKey},
				Operator: types.EQ,
				Right:    types.Column{Table: a.Owner, Name: primaryKeyColumn},
			}
		}

		join := types.Join{
			Association: a.Name,
			Table:       types.Table{Name: a.Target},
			On:          on,
			Type:        types.InnerJoin,
		}
		return types.Table{Name: a.Target}, join, nil
	}

	return types.Table{}, types.Join{}, UnresolvedAssociationError{Table: table, Association: association}
}

// AssociationsOf returns the associations defined on a table in registration
// order.
func (s *Schema) AssociationsOf(table string) []Association {
	return append([]Association(nil), s.assocs[table]...)
}

// ColumnOf returns the qualified column descriptor for a column on a table.
func (s *Schema) ColumnOf(table, column string) (types.Column, error) {
	cols, ok := s.columns[table]
	if !ok {
		return types.Column{}, UnknownTableError{Table: table}
	}
	if _, ok := cols[column]; !ok {
		return types.Column{}, UnknownColumnError{Table: table, Column: column}
	}
	return types.Column{Table: table, Name: column}, nil
}

// TryRel creates the root relation for a table, returning an error if the
// table is not in the schema.
func (s *Schema) TryRel(table string, alias ...string) (*Relation, error) {
	if _, ok := s.tables[table]; !ok {
		return nil, UnknownTableError{Table: table}
	}

	t := types.Table{Name: table}
	if len(alias) > 0 {
		if len(alias) > 1 {
			return nil, fmt.Errorf("only one alias allowed")
		}
		if !isValidTableAlias(alias[0]) {
			return nil, fmt.Errorf("table alias must be single lowercase letter (a-z), got: %s", alias[0])
		}
		t.Alias = alias[0]
	}

	return &Relation{schema: s, rel: &types.Rel{Target: t}}, nil
}

// Rel creates the root relation for a table.
func (s *Schema) Rel(table string, alias ...string) *Relation {
	r, err := s.TryRel(table, alias...)
	if err != nil {
		panic(err)
	}
	return r
}

// isValidTableAlias checks if a string is a valid single-letter table alias.
func isValidTableAlias(alias string) bool {
	return len(alias) == 1 && alias[0] >= 'a' && alias[0] <= 'z'
}
