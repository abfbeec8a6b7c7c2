package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jamidon/sqlgen/schema"
)

// PostgresExtractor reads table metadata from the PostgreSQL
// information_schema catalog.
type PostgresExtractor struct {
	conn       *pgx.Conn
	schemaName string
}

// NewPostgresExtractor connects to PostgreSQL and verifies the connection.
// schemaName scopes all catalog queries, typically "public".
func NewPostgresExtractor(ctx context.Context, connString, schemaName string) (*PostgresExtractor, error) {
	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresExtractor{conn: conn, schemaName: schemaName}, nil
}

// Close closes the database connection
func (e *PostgresExtractor) Close(ctx context.Context) error {
	return e.conn.Close(ctx)
}

// TableNames lists base tables in the configured schema
func (e *PostgresExtractor) TableNames(ctx context.Context) ([]string, error) {
	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = $1 AND table_type = 'BASE TABLE'
		ORDER BY table_name
	`

	rows, err := e.conn.Query(ctx, query, e.schemaName)
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
func (e *PostgresExtractor) ExtractTable(ctx context.Context, tableName string) (*schema.Table, error) {
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

func (e *PostgresExtractor) extractColumns(ctx context.Context, tableName string) ([]schema.Column, error) {
	query := `
		SELECT
			column_name,
			data_type,
			is_nullable,
			column_default,
			character_maximum_length,
			is_identity,
			udt_name
		FROM information_schema.columns
		WHERE table_schema = $1 AND table_name = $2
		ORDER BY ordinal_position
	`

	rows, err := e.conn.Query(ctx, query, e.schemaName, tableName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []schema.Column
	for rows.Next() {
		var col schema.Column
		var dataType, nullable, identity, udtName string
		var defaultVal *string
		var maxLength *int

		if err := rows.Scan(&col.Name, &dataType, &nullable, &defaultVal, &maxLength, &identity, &udtName); err != nil {
			return nil, err
		}

		col.Type = resolveColumnType(dataType, udtName)
		col.Nullable = (nullable == "YES")
		col.Default = defaultVal
		if maxLength != nil {
			col.MaxLength = *maxLength
		}
		// Serial columns predate identity columns and show up only
		// through their nextval() default.
		col.AutoIncrement = identity == "YES" || hasNextvalDefault(defaultVal)

		columns = append(columns, col)
	}

	return columns, rows.Err()
}

// resolveColumnType lowercases data_type and substitutes the concrete
// udt_name for the two catch-all values information_schema reports:
// USER-DEFINED for enums and domains, and ARRAY, whose udt_name carries
// an underscore prefix on the element type ("_int4" for integer[]).
func resolveColumnType(dataType, udtName string) string {
	switch dataType {
	case "USER-DEFINED":
		return strings.ToLower(udtName)
	case "ARRAY":
		if len(udtName) > 0 && udtName[0] == '_' {
			return elementTypeName(udtName[1:]) + "[]"
		}
		return "array"
	default:
		return strings.ToLower(dataType)
	}
}

// elementTypeName maps internal element type names to the names
// information_schema reports for a scalar column of the same type.
func elementTypeName(udtName string) string {
	switch udtName {
	case "int2":
		return "smallint"
	case "int4":
		return "integer"
	case "int8":
		return "bigint"
	case "float4":
		return "real"
	case "float8":
		return "double precision"
	case "bool":
		return "boolean"
	case "varchar":
		return "character varying"
	default:
		return udtName
	}
}

func hasNextvalDefault(defaultVal *string) bool {
	return defaultVal != nil && len(*defaultVal) > 8 && (*defaultVal)[:8] == "nextval("
}

func (e *PostgresExtractor) extractPrimaryKey(ctx context.Context, tableName string) ([]string, error) {
	query := `
		SELECT kcu.column_name
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu
			ON tc.constraint_name = kcu.constraint_name
			AND tc.table_schema = kcu.table_schema
		WHERE tc.table_schema = $1
			AND tc.table_name = $2
			AND tc.constraint_type = 'PRIMARY KEY'
		ORDER BY kcu.ordinal_position
	`

	rows, err := e.conn.Query(ctx, query, e.schemaName, tableName)
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

func (e *PostgresExtractor) extractForeignKeys(ctx context.Context, tableName string) ([]schema.ForeignKey, error) {
	query := `
		SELECT
			kcu.column_name,
			ccu.table_name AS foreign_table_name,
			ccu.column_name AS foreign_column_name
		FROM information_schema.table_constraints AS tc
		JOIN information_schema.key_column_usage AS kcu
			ON tc.constraint_name = kcu.constraint_name
			AND tc.table_schema = kcu.table_schema
		JOIN information_schema.constraint_column_usage AS ccu
			ON ccu.constraint_name = tc.constraint_name
			AND ccu.table_schema = tc.table_schema
		WHERE tc.constraint_type = 'FOREIGN KEY'
			AND tc.table_schema = $1
			AND tc.table_name = $2
		ORDER BY kcu.ordinal_position
	`

	rows, err := e.conn.Query(ctx, query, e.schemaName, tableName)
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
