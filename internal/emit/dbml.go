package emit

import (
	"fmt"
	"io"
	"strings"

	"github.com/jamidon/sqlgen/schema"
)

// DBMLEmitter writes schema definitions in DBML syntax. Ref lines are
// buffered while tables stream through and flushed in the footer, after
// every referenced table has been declared.
type DBMLEmitter struct {
	w       *countingWriter
	opts    Options
	refs    []string
	needSep bool
	werr    error
}

// NewDBMLEmitter creates a DBML emitter. A nil opts uses DefaultOptions.
func NewDBMLEmitter(w io.Writer, opts *Options) *DBMLEmitter {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	return &DBMLEmitter{w: &countingWriter{w: w}, opts: o}
}

// BytesWritten reports how many bytes have been written so far
func (e *DBMLEmitter) BytesWritten() int64 {
	return e.w.n
}

// WriteHeader writes the generated-code comment and any prepend text
func (e *DBMLEmitter) WriteHeader(meta Meta) error {
	if !e.opts.OmitComments {
		e.line("// Code generated by sqlgen. DO NOT EDIT.")
		if meta.Dialect != "" {
			e.line("// dialect: " + meta.Dialect)
		}
		if meta.Source != "" {
			e.line("// source: " + meta.Source)
		}
		e.needSep = true
	}

	if e.opts.Prepend != "" {
		e.sep()
		e.line(e.opts.Prepend)
		e.needSep = true
	}

	return e.werr
}

// WriteTable writes one Table block and records its Ref lines
func (e *DBMLEmitter) WriteTable(table schema.Table) error {
	e.sep()

	e.line("Table " + tableName(table) + " {")
	for _, col := range table.Columns {
		e.line(e.opts.Indent + dbmlColumn(col, table.PrimaryKey))
	}
	e.line("}")
	e.needSep = true

	for _, fk := range table.ForeignKeys {
		e.refs = append(e.refs, fmt.Sprintf("Ref: %s.%s > %s.%s",
			tableName(table), fk.SourceColumn, fk.TargetTable, fk.TargetColumn))
	}

	return e.werr
}

// WriteFooter flushes the buffered Ref lines and any append text
func (e *DBMLEmitter) WriteFooter() error {
	if len(e.refs) > 0 {
		e.sep()
		for _, ref := range e.refs {
			e.line(ref)
		}
		e.needSep = true
	}

	if e.opts.Append != "" {
		e.sep()
		e.line(e.opts.Append)
	}

	return e.werr
}

func tableName(table schema.Table) string {
	if table.Schema != "" && table.Schema != "public" {
		return table.Schema + "." + table.Name
	}
	return table.Name
}

func dbmlColumn(col schema.Column, primaryKey []string) string {
	var attributes []string

	isPK := false
	for _, pk := range primaryKey {
		if pk == col.Name {
			isPK = true
			break
		}
	}

	if isPK {
		attributes = append(attributes, "pk")
	}
	if col.AutoIncrement {
		attributes = append(attributes, "increment")
	}
	if !col.Nullable && !isPK {
		attributes = append(attributes, "not null")
	}
	if col.Default != nil && !col.AutoIncrement {
		attributes = append(attributes, fmt.Sprintf("default: `%s`", *col.Default))
	}

	colType := col.Type
	if col.MaxLength > 0 && !strings.Contains(colType, "(") {
		colType = fmt.Sprintf("%s(%d)", colType, col.MaxLength)
	}

	line := col.Name + " " + colType
	if len(attributes) > 0 {
		line += " [" + strings.Join(attributes, ", ") + "]"
	}
	return line
}

func (e *DBMLEmitter) line(s string) {
	if e.werr != nil {
		return
	}
	_, e.werr = io.WriteString(e.w, s+e.opts.EOL)
}

func (e *DBMLEmitter) sep() {
	if e.needSep {
		e.line("")
		e.needSep = false
	}
}
