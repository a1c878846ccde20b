// Package render implements the dialect-independent rendering core shared by
// the dialect packages. It converts a relation descriptor to SQL text plus a
// bind list in placeholder-occurrence order, in a fixed canonical clause
// order: SELECT, FROM, JOIN, WHERE, ORDER BY, LIMIT, OFFSET, lock suffix.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zoobzio/relq/internal/types"
)

// bindState tracks placeholder ordinals while rendering.
type bindState struct {
	dialect Dialect
	next    int
}

// placeholder returns the next placeholder text, advancing the ordinal.
func (b *bindState) placeholder() string {
	b.next++
	return b.dialect.Placeholder(b.next)
}

// Query renders a relation descriptor to SQL for the given dialect.
// Rendering is deterministic for a given descriptor value: clause lists are
// walked in order and no map iteration affects output.
func Query(rel *types.Rel, d Dialect) (*types.QueryResult, error) {
	placeholders := 0
	for _, join := range rel.Joins {
		if join.On != nil {
			placeholders += types.BindArity(join.On)
		}
	}
	for _, p := range rel.Wheres {
		placeholders += types.BindArity(p)
	}
	if placeholders != len(rel.Binds) {
		return nil, BindArityError{Placeholders: placeholders, Binds: len(rel.Binds)}
	}

	var sql strings.Builder
	st := &bindState{dialect: d}

	sql.WriteString("SELECT ")
	if len(rel.Selects) == 0 {
		sql.WriteString("*")
	} else {
		cols := make([]string, 0, len(rel.Selects))
		for _, c := range rel.Selects {
			cols = append(cols, renderColumn(c, d))
		}
		sql.WriteString(strings.Join(cols, ", "))
	}

	sql.WriteString(" FROM ")
	sql.WriteString(renderTable(rel.Target, d))

	for _, join := range rel.Joins {
		if join.On == nil {
			return nil, fmt.Errorf("join %q has no ON clause: association joins must be resolved before rendering", join.DedupKey())
		}
		sql.WriteString(" ")
		sql.WriteString(string(join.Type))
		sql.WriteString(" ")
		sql.WriteString(renderTable(join.Table, d))
		sql.WriteString(" ON ")
		if err := renderPredicate(join.On, &sql, st); err != nil {
			return nil, err
		}
	}

	if len(rel.Wheres) > 0 {
		sql.WriteString(" WHERE ")
		for i, pred := range rel.Wheres {
			if i > 0 {
				sql.WriteString(" AND ")
			}
			if err := renderPredicate(pred, &sql, st); err != nil {
				return nil, err
			}
		}
	}

	if len(rel.Orders) > 0 {
		sql.WriteString(" ORDER BY ")
		terms := make([]string, 0, len(rel.Orders))
		for _, o := range rel.Orders {
			terms = append(terms, renderColumn(o.Column, d)+" "+string(o.Direction))
		}
		sql.WriteString(strings.Join(terms, ", "))
	}

	if rel.Limit != nil {
		fmt.Fprintf(&sql, " LIMIT %d", *rel.Limit)
	}
	if rel.Offset != nil {
		fmt.Fprintf(&sql, " OFFSET %d", *rel.Offset)
	}

	if rel.Lock != nil {
		if !d.RowLocking {
			return nil, NewUnsupportedFeatureError(d.Name, "row locking", "remove Lock() or use a dialect with FOR UPDATE support")
		}
		sql.WriteString(" ")
		sql.WriteString(rel.Lock.Mode)
	}

	binds := make([]any, 0, len(rel.Binds))
	for _, b := range rel.Binds {
		binds = append(binds, b.Value)
	}

	return &types.QueryResult{
		SQL:   sql.String(),
		Binds: binds,
	}, nil
}

func renderPredicate(pred types.Predicate, sql *strings.Builder, st *bindState) error {
	switch p := pred.(type) {
	case types.Equality:
		sql.WriteString(renderColumn(p.Column, st.dialect))
		sql.WriteString(" = ")
		return renderValue(p.Value, sql, st)
	case types.Comparison:
		return renderComparison(p, sql, st)
	case types.ColumnComparison:
		sql.WriteString(renderColumn(p.Left, st.dialect))
		sql.WriteString(" ")
		sql.WriteString(string(p.Operator))
		sql.WriteString(" ")
		sql.WriteString(renderColumn(p.Right, st.dialect))
		return nil
	case types.Raw:
		return renderRaw(p, sql, st)
	default:
		return fmt.Errorf("unknown predicate type: %T", pred)
	}
}

func renderComparison(p types.Comparison, sql *strings.Builder, st *bindState) error {
	col := renderColumn(p.Column, st.dialect)

	switch p.Operator {
	case types.IsNull:
		sql.WriteString(col + " IS NULL")
		return nil
	case types.IsNotNull:
		sql.WriteString(col + " IS NOT NULL")
		return nil
	case types.IN, types.NotIn:
		lit, ok := p.Value.(types.Literal)
		if !ok {
			return fmt.Errorf("%s requires an inline literal list", p.Operator)
		}
		list, err := formatLiteralList(lit.V)
		if err != nil {
			return err
		}
		sql.WriteString(col + " " + string(p.Operator) + " (" + list + ")")
		return nil
	default:
		sql.WriteString(col + " " + string(p.Operator) + " ")
		return renderValue(p.Value, sql, st)
	}
}

func renderRaw(p types.Raw, sql *strings.Builder, st *bindState) error {
	argIdx := 0
	for i := 0; i < len(p.SQL); i++ {
		if p.SQL[i] != '?' {
			sql.WriteByte(p.SQL[i])
			continue
		}
		if argIdx >= len(p.Args) {
			return fmt.Errorf("raw fragment %q has more placeholders than arguments", p.SQL)
		}
		if err := renderValue(p.Args[argIdx], sql, st); err != nil {
			return err
		}
		argIdx++
	}
	if argIdx != len(p.Args) {
		return fmt.Errorf("raw fragment %q has %d placeholders for %d arguments", p.SQL, argIdx, len(p.Args))
	}
	return nil
}

func renderValue(v types.Value, sql *strings.Builder, st *bindState) error {
	switch val := v.(type) {
	case types.Literal:
		s, err := formatLiteral(val.V)
		if err != nil {
			return err
		}
		sql.WriteString(s)
		return nil
	case *types.BindParam:
		sql.WriteString(st.placeholder())
		return nil
	default:
		return fmt.Errorf("unknown value type: %T", v)
	}
}

// QuoteIdentDouble quotes identifiers for the double-quoting dialects
// (postgres, sqlite). Embedded quotes are doubled.
func QuoteIdentDouble(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// QuoteIdentBacktick quotes identifiers MySQL style.
func QuoteIdentBacktick(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func renderTable(t types.Table, d Dialect) string {
	quoted := d.QuoteIdent(t.Name)
	if t.Alias != "" {
		return quoted + " " + t.Alias
	}
	return quoted
}

func renderColumn(c types.Column, d Dialect) string {
	quoted := d.QuoteIdent(c.Name)
	if c.Table != "" {
		return d.QuoteIdent(c.Table) + "." + quoted
	}
	return quoted
}

// formatLiteral renders a literal value inline. Strings are single-quoted
// with embedded quotes doubled; this path never sees user placeholders, only
// values supplied as inline literals by the relation builder.
func formatLiteral(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "NULL", nil
	case string:
		return "'" + strings.ReplaceAll(val, "'", "''") + "'", nil
	case bool:
		if val {
			return "TRUE", nil
		}
		return "FALSE", nil
	case int:
		return strconv.Itoa(val), nil
	case int32:
		return strconv.FormatInt(int64(val), 10), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("unsupported literal type: %T", v)
	}
}

func formatLiteralList(v any) (string, error) {
	var items []string
	appendItem := func(x any) error {
		s, err := formatLiteral(x)
		if err != nil {
			return err
		}
		items = append(items, s)
		return nil
	}

	switch list := v.(type) {
	case []any:
		for _, x := range list {
			if err := appendItem(x); err != nil {
				return "", err
			}
		}
	case []string:
		for _, x := range list {
			if err := appendItem(x); err != nil {
				return "", err
			}
		}
	case []int:
		for _, x := range list {
			if err := appendItem(x); err != nil {
				return "", err
			}
		}
	case []int64:
		for _, x := range list {
			if err := appendItem(x); err != nil {
				return "", err
			}
		}
	default:
		return "", fmt.Errorf("IN requires a slice literal, got %T", v)
	}

	if len(items) == 0 {
		return "", fmt.Errorf("IN requires a non-empty list")
	}
	return strings.Join(items, ", "), nil
}
