package db

import (
	"context"

	"github.com/jamidon/sqlgen/schema"
)

// Extractor is the per-dialect metadata source. Implementations translate
// their catalog layout into the canonical schema types.
type Extractor interface {
	// TableNames lists base table names in the configured schema,
	// ordered by name.
	TableNames(ctx context.Context) ([]string, error)

	// ExtractTable fetches columns, primary key, and foreign keys for a
	// single table.
	ExtractTable(ctx context.Context, tableName string) (*schema.Table, error)

	// Close releases the underlying connection.
	Close(ctx context.Context) error
}
