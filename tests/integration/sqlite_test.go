//go:build integration
// +build integration

package integration

import (
	"bytes"
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jamidon/sqlgen"
)

const sqliteFixture = `
CREATE TABLE users (
	id INTEGER PRIMARY KEY,
	username TEXT NOT NULL,
	email TEXT NOT NULL,
	status TEXT DEFAULT 'active',
	created_at TIMESTAMP
);
CREATE TABLE orders (
	id INTEGER PRIMARY KEY,
	user_id INTEGER NOT NULL REFERENCES users(id),
	total REAL NOT NULL
);
CREATE TABLE audit_log (
	id INTEGER PRIMARY KEY,
	message TEXT
);
`

// newSQLiteFixture builds a throwaway database file and returns its sqlite:// URL
func newSQLiteFixture(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("Failed to create fixture database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(sqliteFixture); err != nil {
		t.Fatalf("Failed to load fixture schema: %v", err)
	}
	return "sqlite://" + path
}

func TestSQLiteExtraction(t *testing.T) {
	ctx := context.Background()
	url := newSQLiteFixture(t)

	s, err := sqlgen.ExtractSchema(ctx, url, nil)
	if err != nil {
		t.Fatalf("Failed to extract schema: %v", err)
	}

	verifyTablesExist(t, s, []string{"users", "orders", "audit_log"})

	users := findTable(s, "users")
	if users == nil {
		t.Fatal("users table not found")
	}
	verifyPrimaryKey(t, users, []string{"id"})
	verifyColumns(t, users, []string{"id", "username", "email", "status", "created_at"})

	orders := findTable(s, "orders")
	if orders == nil {
		t.Fatal("orders table not found")
	}
	verifyForeignKey(t, orders, "user_id", "users")

	for _, col := range users.Columns {
		switch col.Name {
		case "id":
			if !col.AutoIncrement {
				t.Error("Expected id to be auto-incrementing")
			}
		case "status":
			if col.Default == nil || *col.Default != "'active'" {
				t.Errorf("Expected status default 'active', got %v", col.Default)
			}
		case "username":
			if col.Nullable {
				t.Error("Expected username to be NOT NULL")
			}
		}
	}
}

func TestSQLiteRun(t *testing.T) {
	ctx := context.Background()
	url := newSQLiteFixture(t)

	var buf bytes.Buffer
	stats, err := sqlgen.Run(ctx, url,
		&sqlgen.Options{Exclude: "^audit_"},
		&sqlgen.OutputOptions{Writer: &buf},
	)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if stats.Tables != 2 {
		t.Errorf("Expected 2 tables, got %d", stats.Tables)
	}
	if stats.BytesWritten != int64(buf.Len()) {
		t.Errorf("Stats report %d bytes, buffer has %d", stats.BytesWritten, buf.Len())
	}

	out := buf.String()
	for _, want := range []string{"package dbschema", "var Users = schema.Table{", "var Orders = schema.Table{"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "AuditLog") {
		t.Errorf("Excluded table leaked into output:\n%s", out)
	}
}
