package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jamidon/sqlgen/schema"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteExtractor reads table metadata from a SQLite database file. SQLite
// has no information_schema; sqlite_master and the table PRAGMAs are
// normalized into the same canonical shape as the other dialects.
type SQLiteExtractor struct {
	db *sql.DB
}

// NewSQLiteExtractor opens a SQLite database file and verifies it.
func NewSQLiteExtractor(ctx context.Context, path string) (*SQLiteExtractor, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteExtractor{db: db}, nil
}

// Close closes the database connection
func (e *SQLiteExtractor) Close(ctx context.Context) error {
	return e.db.Close()
}

// TableNames lists user tables, skipping SQLite's internal bookkeeping
func (e *SQLiteExtractor) TableNames(ctx context.Context) ([]string, error) {
	query := `
		SELECT name
		FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name
	`

	rows, err := e.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var tableName string
		if err := rows.Scan(&tableName); err != nil {
			return nil, err
		}
		tables = append(tables, tableName)
	}

	return tables, rows.Err()
}

// ExtractTable fetches columns, primary key, and foreign keys for one table
func (e *SQLiteExtractor) ExtractTable(ctx context.Context, tableName string) (*schema.Table, error) {
	table := &schema.Table{Name: tableName}

	columns, pk, err := e.extractColumns(ctx, tableName)
	if err != nil {
		return nil, fmt.Errorf("failed to extract columns: %w", err)
	}
	table.Columns = columns
	table.PrimaryKey = pk

	fks, err := e.extractForeignKeys(ctx, tableName)
	if err != nil {
		return nil, fmt.Errorf("failed to extract foreign keys: %w", err)
	}
	table.ForeignKeys = fks

	return table, nil
}

// quoteIdent quotes a table name for use inside a PRAGMA, which does not
// accept bound parameters.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (e *SQLiteExtractor) extractColumns(ctx context.Context, tableName string) ([]schema.Column, []string, error) {
	query := fmt.Sprintf("PRAGMA table_info(%s)", quoteIdent(tableName))

	rows, err := e.db.QueryContext(ctx, query)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var columns []schema.Column
	var pk []string
	for rows.Next() {
		var col schema.Column
		var cid, notNull, pkOrdinal int
		var defaultVal sql.NullString

		if err := rows.Scan(&cid, &col.Name, &col.Type, &notNull, &defaultVal, &pkOrdinal); err != nil {
			return nil, nil, err
		}

		col.Type = strings.ToLower(col.Type)
		col.Nullable = (notNull == 0) && pkOrdinal == 0
		if defaultVal.Valid {
			col.Default = &defaultVal.String
		}
		if pkOrdinal > 0 {
			pk = append(pk, col.Name)
		}

		columns = append(columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	// A lone INTEGER primary key aliases the rowid and auto-assigns.
	if len(pk) == 1 {
		for i := range columns {
			if columns[i].Name == pk[0] && columns[i].Type == "integer" {
				columns[i].AutoIncrement = true
			}
		}
	}

	return columns, pk, nil
}

func (e *SQLiteExtractor) extractForeignKeys(ctx context.Context, tableName string) ([]schema.ForeignKey, error) {
	query := fmt.Sprintf("PRAGMA foreign_key_list(%s)", quoteIdent(tableName))

	rows, err := e.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fks []schema.ForeignKey
	for rows.Next() {
		var fk schema.ForeignKey
		var id, seq int
		var onUpdate, onDelete, match string
		var targetColumn sql.NullString

		if err := rows.Scan(&id, &seq, &fk.TargetTable, &fk.SourceColumn, &targetColumn, &onUpdate, &onDelete, &match); err != nil {
			return nil, err
		}

		// The referenced column is NULL when the FK targets the
		// parent's primary key implicitly.
		if targetColumn.Valid {
			fk.TargetColumn = targetColumn.String
		}

		fks = append(fks, fk)
	}

	return fks, rows.Err()
}
