package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jamidon/sqlgen/schema"
	_ "github.com/microsoft/go-mssqldb"
)

// MSSQLExtractor reads table metadata from the SQL Server
// information_schema catalog.
type MSSQLExtractor struct {
	db         *sql.DB
	schemaName string
}

// NewMSSQLExtractor opens a SQL Server connection and verifies it.
// schemaName scopes all catalog queries and defaults to "dbo".
func NewMSSQLExtractor(ctx context.Context, connString, schemaName string) (*MSSQLExtractor, error) {
	if schemaName == "" {
		schemaName = "dbo"
	}

	db, err := sql.Open("sqlserver", connString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &MSSQLExtractor{db: db, schemaName: schemaName}, nil
}

// Close closes the database connection
func (e *MSSQLExtractor) Close(ctx context.Context) error {
	return e.db.Close()
}

// TableNames lists base tables in the configured schema
func (e *MSSQLExtractor) TableNames(ctx context.Context) ([]string, error) {
	query := `
		SELECT TABLE_NAME
		FROM INFORMATION_SCHEMA.TABLES
		WHERE TABLE_SCHEMA = @p1 AND TABLE_TYPE = 'BASE TABLE'
		ORDER BY TABLE_NAME
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
func (e *MSSQLExtractor) ExtractTable(ctx context.Context, tableName string) (*schema.Table, error) {
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

func (e *MSSQLExtractor) extractColumns(ctx context.Context, tableName string) ([]schema.Column, error) {
	// information_schema does not expose identity columns, so the
	// IsIdentity column property fills that gap.
	query := `
		SELECT
			c.COLUMN_NAME,
			c.DATA_TYPE,
			c.IS_NULLABLE,
			c.COLUMN_DEFAULT,
			c.CHARACTER_MAXIMUM_LENGTH,
			COLUMNPROPERTY(OBJECT_ID(QUOTENAME(c.TABLE_SCHEMA) + '.' + QUOTENAME(c.TABLE_NAME)), c.COLUMN_NAME, 'IsIdentity')
		FROM INFORMATION_SCHEMA.COLUMNS c
		WHERE c.TABLE_SCHEMA = @p1 AND c.TABLE_NAME = @p2
		ORDER BY c.ORDINAL_POSITION
	`

	rows, err := e.db.QueryContext(ctx, query, e.schemaName, tableName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []schema.Column
	for rows.Next() {
		var col schema.Column
		var nullable string
		var defaultVal sql.NullString
		var maxLength sql.NullInt64
		var identity sql.NullInt64

		if err := rows.Scan(&col.Name, &col.Type, &nullable, &defaultVal, &maxLength, &identity); err != nil {
			return nil, err
		}

		col.Type = strings.ToLower(col.Type)
		col.Nullable = (nullable == "YES")
		if defaultVal.Valid {
			col.Default = &defaultVal.String
		}
		// MAX types report -1
		if maxLength.Valid && maxLength.Int64 > 0 {
			col.MaxLength = int(maxLength.Int64)
		}
		col.AutoIncrement = identity.Valid && identity.Int64 == 1

		columns = append(columns, col)
	}

	return columns, rows.Err()
}

func (e *MSSQLExtractor) extractPrimaryKey(ctx context.Context, tableName string) ([]string, error) {
	query := `
		SELECT kcu.COLUMN_NAME
		FROM INFORMATION_SCHEMA.TABLE_CONSTRAINTS tc
		JOIN INFORMATION_SCHEMA.KEY_COLUMN_USAGE kcu
			ON tc.CONSTRAINT_NAME = kcu.CONSTRAINT_NAME
			AND tc.TABLE_SCHEMA = kcu.TABLE_SCHEMA
		WHERE tc.TABLE_SCHEMA = @p1
			AND tc.TABLE_NAME = @p2
			AND tc.CONSTRAINT_TYPE = 'PRIMARY KEY'
		ORDER BY kcu.ORDINAL_POSITION
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

func (e *MSSQLExtractor) extractForeignKeys(ctx context.Context, tableName string) ([]schema.ForeignKey, error) {
	query := `
		SELECT
			kcu.COLUMN_NAME,
			kcu2.TABLE_NAME,
			kcu2.COLUMN_NAME
		FROM INFORMATION_SCHEMA.REFERENTIAL_CONSTRAINTS rc
		JOIN INFORMATION_SCHEMA.KEY_COLUMN_USAGE kcu
			ON kcu.CONSTRAINT_NAME = rc.CONSTRAINT_NAME
			AND kcu.CONSTRAINT_SCHEMA = rc.CONSTRAINT_SCHEMA
		JOIN INFORMATION_SCHEMA.KEY_COLUMN_USAGE kcu2
			ON kcu2.CONSTRAINT_NAME = rc.UNIQUE_CONSTRAINT_NAME
			AND kcu2.CONSTRAINT_SCHEMA = rc.UNIQUE_CONSTRAINT_SCHEMA
			AND kcu2.ORDINAL_POSITION = kcu.ORDINAL_POSITION
		WHERE kcu.TABLE_SCHEMA = @p1 AND kcu.TABLE_NAME = @p2
		ORDER BY kcu.ORDINAL_POSITION
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
