// Package testing provides test utilities for relq.
package testing

import (
	"testing"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/relq"
)

// TestSchema creates a fully-featured Schema for testing.
// Includes authors, posts, and comments tables with belongs-to and has-many
// associations between them.
func TestSchema(t *testing.T) *relq.Schema {
	t.Helper()

	project := dbml.NewProject("test")

	// Authors table
	authors := dbml.NewTable("authors")
	authors.AddColumn(dbml.NewColumn("id", "bigint"))
	authors.AddColumn(dbml.NewColumn("name", "varchar"))
	authors.AddColumn(dbml.NewColumn("email", "varchar"))
	project.AddTable(authors)

	// Posts table
	posts := dbml.NewTable("posts")
	posts.AddColumn(dbml.NewColumn("id", "bigint"))
	posts.AddColumn(dbml.NewColumn("author_id", "bigint"))
	posts.AddColumn(dbml.NewColumn("title", "varchar"))
	posts.AddColumn(dbml.NewColumn("body", "text"))
	posts.AddColumn(dbml.NewColumn("comments_count", "int"))
	project.AddTable(posts)

	// Comments table
	comments := dbml.NewTable("comments")
	comments.AddColumn(dbml.NewColumn("id", "bigint"))
	comments.AddColumn(dbml.NewColumn("post_id", "bigint"))
	comments.AddColumn(dbml.NewColumn("body", "text"))
	project.AddTable(comments)

	schema, err := relq.NewFromDBML(project)
	if err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	schema.BelongsTo("posts", "author", "authors", "author_id")
	schema.HasMany("posts", "comments", "comments", "post_id")
	schema.BelongsTo("comments", "post", "posts", "post_id")
	schema.HasMany("authors", "posts", "posts", "author_id")

	return schema
}
