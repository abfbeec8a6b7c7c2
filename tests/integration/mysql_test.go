//go:build integration
// +build integration

package integration

import (
	"context"
	"os"
	"testing"

	"github.com/jamidon/sqlgen"
)

// TestMySQLExtraction runs against the database in MYSQL_TEST_URL,
// expected to contain the fixture schema from testdata/mysql.sql.
func TestMySQLExtraction(t *testing.T) {
	url := os.Getenv("MYSQL_TEST_URL")
	if url == "" {
		t.Skip("MYSQL_TEST_URL not set")
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

	for _, col := range users.Columns {
		switch col.Name {
		case "id":
			if !col.AutoIncrement {
				t.Error("Expected id to be auto-incrementing")
			}
		case "username":
			if col.MaxLength == 0 {
				t.Error("Expected username to carry a character length")
			}
		}
	}

	orders := findTable(s, "orders")
	if orders == nil {
		t.Fatal("orders table not found")
	}
	verifyForeignKey(t, orders, "user_id", "users")
}

func TestMySQLExclusion(t *testing.T) {
	url := os.Getenv("MYSQL_TEST_URL")
	if url == "" {
		t.Skip("MYSQL_TEST_URL not set")
	}

	ctx := context.Background()
	s, err := sqlgen.ExtractSchema(ctx, url, &sqlgen.Options{
		ExcludeTables: []string{"order_items"},
	})
	if err != nil {
		t.Fatalf("Failed to extract schema: %v", err)
	}

	if findTable(s, "order_items") != nil {
		t.Error("Excluded table was extracted")
	}
}
