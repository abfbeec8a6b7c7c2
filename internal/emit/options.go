// Package emit serializes introspected schemas into source text. Emitters
// share a small writer protocol so the pipeline can stream one table at a
// time: WriteHeader once, WriteTable per table, WriteFooter once.
package emit

import (
	"github.com/jamidon/sqlgen/schema"
)

// Emitter writes one output format. Implementations count the bytes they
// write so the pipeline can report them.
type Emitter interface {
	WriteHeader(meta Meta) error
	WriteTable(table schema.Table) error
	WriteFooter() error
	BytesWritten() int64
}

// Meta describes the generation run for header comments.
type Meta struct {
	// Dialect is the resolved dialect name, e.g. "postgres".
	Dialect string

	// Source is the connection string with any password masked.
	Source string
}

// Options controls the emitted text. The zero value is not useful; start
// from DefaultOptions.
type Options struct {
	// Indent is the token repeated once per nesting level.
	Indent string

	// EOL terminates every emitted line.
	EOL string

	// Package names the generated Go package. When empty, the package
	// clause and import are suppressed so the output can be pasted into
	// an existing file.
	Package string

	// Prepend is raw text written after the header.
	Prepend string

	// Append is raw text written before the end of output.
	Append string

	// OmitComments suppresses the generated-code header and per-table
	// comments.
	OmitComments bool
}

// DefaultOptions returns the options used when the caller passes nil.
func DefaultOptions() Options {
	return Options{
		Indent:  "\t",
		EOL:     "\n",
		Package: "dbschema",
	}
}
