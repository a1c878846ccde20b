package types

import (
	"reflect"
	"testing"
)

func TestBindArity(t *testing.T) {
	col := Column{Table: "posts", Name: "id"}

	tests := []struct {
		name string
		pred Predicate
		want int
	}{
		{"equality with literal", Equality{Column: col, Value: Literal{V: 1}}, 0},
		{"equality with bind", Equality{Column: col, Value: &BindParam{}}, 1},
		{"comparison with bind", Comparison{Column: col, Operator: GT, Value: &BindParam{}}, 1},
		{"column comparison", ColumnComparison{Left: col, Operator: EQ, Right: col}, 0},
		{
			"raw with mixed args",
			Raw{SQL: "a = ? AND b = ? AND c = ?", Args: []Value{&BindParam{}, Literal{V: 2}, &BindParam{}}},
			2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BindArity(tt.pred); got != tt.want {
				t.Errorf("Expected arity %d, got %d", tt.want, got)
			}
		})
	}
}

func TestJoinDedupKey(t *testing.T) {
	assoc := Join{Association: "comments", Table: Table{Name: "comments"}}
	if assoc.DedupKey() != "comments" {
		t.Errorf("Expected association name, got %s", assoc.DedupKey())
	}

	concrete := Join{Table: Table{Name: "tags"}}
	if concrete.DedupKey() != "tags" {
		t.Errorf("Expected table name, got %s", concrete.DedupKey())
	}
}

func TestRelClone(t *testing.T) {
	limit := 5
	rel := &Rel{
		Target: Table{Name: "posts"},
		Wheres: []Predicate{Equality{Column: Column{Table: "posts", Name: "id"}, Value: Literal{V: 1}}},
		Binds:  []BindValue{{Value: 1}},
		Limit:  &limit,
		Lock:   &Lock{Mode: DefaultLockMode},
	}

	clone := rel.Clone()
	if !reflect.DeepEqual(clone, rel) {
		t.Fatalf("Clone differs: %+v vs %+v", clone, rel)
	}

	clone.Wheres = append(clone.Wheres, Equality{Column: Column{Table: "posts", Name: "title"}, Value: Literal{V: "x"}})
	*clone.Limit = 10
	clone.Lock.Mode = "FOR SHARE"

	if len(rel.Wheres) != 1 {
		t.Error("Clone shares WHERE slice with original")
	}
	if *rel.Limit != 5 {
		t.Error("Clone shares limit pointer with original")
	}
	if rel.Lock.Mode != DefaultLockMode {
		t.Error("Clone shares lock pointer with original")
	}
}
