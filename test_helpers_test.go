package relq

import (
	"testing"

	"github.com/zoobzio/dbml"
)

// testSchema builds the authors/posts/comments schema used across the
// package tests.
func testSchema(t *testing.T) *Schema {
	t.Helper()

	project := dbml.NewProject("test")

	authors := dbml.NewTable("authors")
	authors.AddColumn(dbml.NewColumn("id", "bigint"))
	authors.AddColumn(dbml.NewColumn("name", "varchar"))
	authors.AddColumn(dbml.NewColumn("email", "varchar"))
	project.AddTable(authors)

	posts := dbml.NewTable("posts")
	posts.AddColumn(dbml.NewColumn("id", "bigint"))
	posts.AddColumn(dbml.NewColumn("author_id", "bigint"))
	posts.AddColumn(dbml.NewColumn("title", "varchar"))
	posts.AddColumn(dbml.NewColumn("body", "text"))
	posts.AddColumn(dbml.NewColumn("comments_count", "int"))
	project.AddTable(posts)

	comments := dbml.NewTable("comments")
	comments.AddColumn(dbml.NewColumn("id", "bigint"))
	comments.AddColumn(dbml.NewColumn("post_id", "bigint"))
	comments.AddColumn(dbml.NewColumn("body", "text"))
	project.AddTable(comments)

	schema, err := NewFromDBML(project)
	if err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	schema.BelongsTo("posts", "author", "authors", "author_id")
	schema.HasMany("posts", "comments", "comments", "post_id")
	schema.BelongsTo("comments", "post", "posts", "post_id")
	schema.HasMany("authors", "posts", "posts", "author_id")

	return schema
}
