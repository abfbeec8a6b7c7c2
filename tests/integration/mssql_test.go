//go:build integration
// +build integration

package integration

import (
	"context"
	"os"
	"testing"

	"github.com/jamidon/sqlgen"
)

// TestMSSQLExtraction runs against the database in MSSQL_TEST_URL,
// expected to contain the fixture schema from testdata/mssql.sql.
func TestMSSQLExtraction(t *testing.T) {
	url := os.Getenv("MSSQL_TEST_URL")
	if url == "" {
		t.Skip("MSSQL_TEST_URL not set")
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

	if users.Schema != "dbo" {
		t.Errorf("Expected dbo schema, got %s", users.Schema)
	}

	// identity columns come from COLUMNPROPERTY, not information_schema
	for _, col := range users.Columns {
		if col.Name == "id" && !col.AutoIncrement {
			t.Error("Expected id to be an identity column")
		}
	}

	orders := findTable(s, "orders")
	if orders == nil {
		t.Fatal("orders table not found")
	}
	verifyForeignKey(t, orders, "user_id", "users")
}
