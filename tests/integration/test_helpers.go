//go:build integration
// +build integration

package integration

import (
	"testing"

	"github.com/jamidon/sqlgen/schema"
)

// findTable returns the named table or nil
func findTable(s *schema.Schema, name string) *schema.Table {
	for i := range s.Tables {
		if s.Tables[i].Name == name {
			return &s.Tables[i]
		}
	}
	return nil
}

// verifyTablesExist checks that all expected tables are present in the schema
func verifyTablesExist(t *testing.T, s *schema.Schema, expectedTables []string) {
	t.Helper()

	if len(s.Tables) != len(expectedTables) {
		t.Errorf("Expected %d tables, got %d", len(expectedTables), len(s.Tables))
	}

	tableMap := make(map[string]bool)
	for _, table := range s.Tables {
		tableMap[table.Name] = true
	}

	for _, tableName := range expectedTables {
		if !tableMap[tableName] {
			t.Errorf("Expected table %s not found in schema", tableName)
		}
	}
}

// verifyColumns checks that expected columns exist in a table
func verifyColumns(t *testing.T, table *schema.Table, expectedColumns []string) {
	t.Helper()

	columnMap := make(map[string]bool)
	for _, col := range table.Columns {
		columnMap[col.Name] = true
	}

	for _, colName := range expectedColumns {
		if !columnMap[colName] {
			t.Errorf("Expected column %s not found in %s table", colName, table.Name)
		}
	}
}

// verifyPrimaryKey checks that a table has the expected primary key
func verifyPrimaryKey(t *testing.T, table *schema.Table, expectedPK []string) {
	t.Helper()

	if len(table.PrimaryKey) != len(expectedPK) {
		t.Errorf("Expected primary key %v, got %v", expectedPK, table.PrimaryKey)
		return
	}

	for i, pk := range expectedPK {
		if table.PrimaryKey[i] != pk {
			t.Errorf("Expected primary key %v, got %v", expectedPK, table.PrimaryKey)
			return
		}
	}
}

// verifyForeignKey checks that a table references another
func verifyForeignKey(t *testing.T, table *schema.Table, sourceColumn, targetTable string) {
	t.Helper()

	for _, fk := range table.ForeignKeys {
		if fk.SourceColumn == sourceColumn && fk.TargetTable == targetTable {
			return
		}
	}
	t.Errorf("Expected foreign key %s.%s -> %s not found", table.Name, sourceColumn, targetTable)
}
