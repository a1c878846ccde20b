package postgres

import (
	"reflect"
	"testing"

	"github.com/zoobzio/relq/internal/types"
)

func TestRender(t *testing.T) {
	r := New()

	t.Run("numbered placeholders", func(t *testing.T) {
		rel := &types.Rel{
			Target: types.Table{Name: "posts"},
			Wheres: []types.Predicate{
				types.Equality{Column: types.Column{Table: "posts", Name: "id"}, Value: &types.BindParam{}},
				types.Equality{Column: types.Column{Table: "posts", Name: "title"}, Value: &types.BindParam{}},
			},
			Binds: []types.BindValue{{Value: 1}, {Value: "omg"}},
		}

		result, err := r.Render(rel)
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}

		want := `SELECT * FROM "posts" WHERE "posts"."id" = $1 AND "posts"."title" = $2`
		if result.SQL != want {
			t.Errorf("Expected:\n%s\nGot:\n%s", want, result.SQL)
		}
		if !reflect.DeepEqual(result.Binds, []any{1, "omg"}) {
			t.Errorf("Expected binds [1 omg], got %v", result.Binds)
		}
	})

	t.Run("row locking supported", func(t *testing.T) {
		rel := &types.Rel{
			Target: types.Table{Name: "posts"},
			Lock:   &types.Lock{Mode: types.DefaultLockMode},
		}

		result, err := r.Render(rel)
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		if result.SQL != `SELECT * FROM "posts" FOR UPDATE` {
			t.Errorf("Unexpected SQL: %s", result.SQL)
		}
	})
}
