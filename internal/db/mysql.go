package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jamidon/sqlgen/schema"
)

// MySQLExtractor reads table metadata from the MySQL information_schema
// catalog.
type MySQLExtractor struct {
	db         *sql.DB
	schemaName string
}

// NewMySQLExtractor opens a MySQL connection and verifies it. schemaName is
// the database to introspect; when empty it is parsed from the DSN.
func NewMySQLExtractor(ctx context.Context, connString, schemaName string) (*MySQLExtractor, error) {
	if schemaName == "" {
		name, err := ParseDatabaseName(connString)
		if err != nil {
			return nil, fmt.Errorf("failed to determine database name: %w", err)
		}
		schemaName = name
	}

	db, err := sql.Open("mysql", connString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &MySQLExtractor{db: db, schemaName: schemaName}, nil
}

// Close closes the database connection
func (e *MySQLExtractor) Close(ctx context.Context) error {
	return e.db.Close()
}

// ParseDatabaseName extracts the database name from a MySQL DSN of the form
// user:pass@tcp(host:port)/dbname?params.
func ParseDatabaseName(connString string) (string, error) {
	slash := strings.LastIndex(connString, "/")
	if slash == -1 || slash == len(connString)-1 {
		return "", fmt.Errorf("connection string has no database name: %s", connString)
	}

	name := connString[slash+1:]
	if q := strings.Index(name, "?"); q != -1 {
		name = name[:q]
	}
	if name == "" {
		return "", fmt.Errorf("connection string has no database name: %s", connString)
	}
	return name, nil
}

// TableNames lists base tables in the configured database
func (e *MySQLExtractor) TableNames(ctx context.Context) ([]string, error) {
	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = ? AND table_type = 'BASE TABLE'
		ORDER BY table_name
	`

	rows, err := e.db.QueryContext(ctx, query, e.schemaName)
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
func (e *MySQLExtractor) ExtractTable(ctx context.Context, tableName string) (*schema.Table, error) {
	table := &schema.Table{Name: tableName, Schema: e.schemaName}

	columns, err := e.extractColumns(ctx, tableName)
	if err != nil {
		return nil, fmt.Errorf("failed to extract columns: %w", err)
	}
	table.Columns = columns

	pk, err := e.extractPrimaryKey(ctx, tableName)
	if err != nil {
		return nil, fmt.Errorf("failed to extract primary key: %w", err)
	}
	table.PrimaryKey = pk

	fks, err := e.extractForeignKeys(ctx, tableName)
	if err != nil {
		return nil, fmt.Errorf("failed to extract foreign keys: %w", err)
	}
	table.ForeignKeys = fks

	return table, nil
}

func (e *MySQLExtractor) extractColumns(ctx context.Context, tableName string) ([]schema.Column, error) {
	query := `
		SELECT
			column_name,
			data_type,
			is_nullable,
			column_default,
			character_maximum_length,
			extra
		FROM information_schema.columns
		WHERE table_schema = ? AND table_name = ?
		ORDER BY ordinal_position
	`

	rows, err := e.db.QueryContext(ctx, query, e.schemaName, tableName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []schema.Column
	for rows.Next() {
		var col schema.Column
		var nullable, extra string
		var defaultVal sql.NullString
		var maxLength sql.NullInt64

		if err := rows.Scan(&col.Name, &col.Type, &nullable, &defaultVal, &maxLength, &extra); err != nil {
			return nil, err
		}

		col.Type = strings.ToLower(col.Type)
		col.Nullable = (nullable == "YES")
		if defaultVal.Valid {
			col.Default = &defaultVal.String
		}
		if maxLength.Valid {
			col.MaxLength = int(maxLength.Int64)
		}
		col.AutoIncrement = strings.Contains(strings.ToLower(extra), "auto_increment")

		columns = append(columns, col)
	}

	return columns, rows.Err()
}

func (e *MySQLExtractor) extractPrimaryKey(ctx context.Context, tableName string) ([]string, error) {
	query := `
		SELECT column_name
		FROM information_schema.key_column_usage
		WHERE table_schema = ?
			AND table_name = ?
			AND constraint_name = 'PRIMARY'
		ORDER BY ordinal_position
	`

	rows, err := e.db.QueryContext(ctx, query, e.schemaName, tableName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pk []string
	for rows.Next() {
		var colName string
		if err := rows.Scan(&colName); err != nil {
			return nil, err
		}
		pk = append(pk, colName)
	}

	return pk, rows.Err()
}

func (e *MySQLExtractor) extractForeignKeys(ctx context.Context, tableName string) ([]schema.ForeignKey, error) {
	query := `
		SELECT
			column_name,
			referenced_table_name,
			referenced_column_name
		FROM information_schema.key_column_usage
		WHERE table_schema = ?
			AND table_name = ?
			AND referenced_table_name IS NOT NULL
		ORDER BY ordinal_position
	`

	rows, err := e.db.QueryContext(ctx, query, e.schemaName, tableName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fks []schema.ForeignKey
	for rows.Next() {
		var fk schema.ForeignKey
		if err := rows.Scan(&fk.SourceColumn, &fk.TargetTable, &fk.TargetColumn); err != nil {
			return nil, err
		}
		fks = append(fks, fk)
	}

	return fks, rows.Err()
}
