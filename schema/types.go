// Package schema defines the canonical shape of introspected database
// metadata. Every dialect normalizes its catalog rows into these types, and
// generated Go table definitions reference them.
package schema

// Schema represents a complete database schema
type Schema struct {
	Tables []Table
}

// Table represents a database table
type Table struct {
	Name        string
	Schema      string
	Columns     []Column
	PrimaryKey  []string
	ForeignKeys []ForeignKey
}

// Column is the canonical column record. All dialects are normalized into
// this shape regardless of how their catalog spells the underlying fields.
type Column struct {
	Name          string
	Type          string
	Nullable      bool
	Default       *string
	MaxLength     int
	AutoIncrement bool
}

// ForeignKey represents a foreign key reference to another table
type ForeignKey struct {
	SourceColumn string
	TargetTable  string
	TargetColumn string
}

// String returns a pointer to s. Generated table definitions use it for
// column defaults.
func String(s string) *string {
	return &s
}
