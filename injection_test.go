package relq

import (
	"strings"
	"testing"

	"github.com/zoobzio/relq/pkg/sqlite"
)

// These tests pin down how hostile values come out the other side: string
// literals are quoted with embedded quotes doubled, identifiers are always
// quoted, and bound values never appear in the SQL text at all.
func TestInjectionHandling(t *testing.T) {
	schema := testSchema(t)

	t.Run("literal with embedded quote", func(t *testing.T) {
		rel := schema.Rel("posts").WhereEq("title", "'; DROP TABLE posts; --")

		result, err := rel.Render(sqlite.New())
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		if !strings.Contains(result.SQL, `'''; DROP TABLE posts; --'`) {
			t.Errorf("Embedded quote not doubled: %s", result.SQL)
		}
	})

	t.Run("bound value stays out of the SQL", func(t *testing.T) {
		rel := schema.Rel("posts").WhereBind("title", Bind(), "'; DROP TABLE posts; --")

		result, err := rel.Render(sqlite.New())
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		if strings.Contains(result.SQL, "DROP TABLE") {
			t.Errorf("Bound value leaked into SQL: %s", result.SQL)
		}
		if len(result.Binds) != 1 {
			t.Errorf("Expected the hostile value in the bind list, got %v", result.Binds)
		}
	})

	t.Run("column names are quoted", func(t *testing.T) {
		rel := schema.Rel("posts").WhereEq(`ti"tle`, 1)

		result, err := rel.Render(sqlite.New())
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		if !strings.Contains(result.SQL, `"ti""tle"`) {
			t.Errorf("Identifier quote not doubled: %s", result.SQL)
		}
	})
}
