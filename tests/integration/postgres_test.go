//go:build integration
// +build integration

package integration

import (
	"context"
	"os"
	"testing"

	"github.com/jamidon/sqlgen"
)

// TestPostgresExtraction runs against the database in POSTGRES_TEST_URL,
// expected to contain the fixture schema from testdata/postgres.sql.
func TestPostgresExtraction(t *testing.T) {
	url := os.Getenv("POSTGRES_TEST_URL")
	if url == "" {
		t.Skip("POSTGRES_TEST_URL not set")
	}

	ctx := context.Background()
	s, err := sqlgen.ExtractSchema(ctx, url, nil)
	if err != nil {
		t.Fatalf("Failed to extract schema: %v", err)
	}

	verifyTablesExist(t, s, []string{"users", "orders", "order_items"})

	users := findTable(s, "users")
	if users == nil {
		t.Fatal("users table not found")
	}
	verifyPrimaryKey(t, users, []string{"id"})
	verifyColumns(t, users, []string{"id", "username", "email", "created_at"})

	if users.Schema != "public" {
		t.Errorf("Expected public schema, got %s", users.Schema)
	}

	// serial/identity columns must be flagged
	for _, col := range users.Columns {
		if col.Name == "id" && !col.AutoIncrement {
			t.Error("Expected id to be auto-incrementing")
		}
	}

	orders := findTable(s, "orders")
	if orders == nil {
		t.Fatal("orders table not found")
	}
	verifyForeignKey(t, orders, "user_id", "users")
}

func TestPostgresTableSelection(t *testing.T) {
	url := os.Getenv("POSTGRES_TEST_URL")
	if url == "" {
		t.Skip("POSTGRES_TEST_URL not set")
	}

	ctx := context.Background()
	s, err := sqlgen.ExtractSchema(ctx, url, &sqlgen.Options{
		Tables: []string{"users"},
	})
	if err != nil {
		t.Fatalf("Failed to extract schema: %v", err)
	}

	verifyTablesExist(t, s, []string{"users"})
}
