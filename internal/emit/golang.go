package emit

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jamidon/sqlgen/schema"
)

const schemaImportPath = "github.com/jamidon/sqlgen/schema"

// GoEmitter writes a Go source file with one exported table definition per
// table. With a package name set, the output compiles on its own; without
// one it is a fragment for embedding in an existing file.
type GoEmitter struct {
	w       *countingWriter
	opts    Options
	needSep bool
	werr    error
}

// NewGoEmitter creates a Go source emitter. A nil opts uses DefaultOptions.
func NewGoEmitter(w io.Writer, opts *Options) *GoEmitter {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	return &GoEmitter{w: &countingWriter{w: w}, opts: o}
}

// BytesWritten reports how many bytes have been written so far
func (e *GoEmitter) BytesWritten() int64 {
	return e.w.n
}

// WriteHeader writes the generated-code comment, package clause, import,
// and any prepend text.
func (e *GoEmitter) WriteHeader(meta Meta) error {
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

	if e.opts.Package != "" {
		e.sep()
		e.line("package " + e.opts.Package)
		e.line("")
		e.line(`import "` + schemaImportPath + `"`)
		e.needSep = true
	}

	if e.opts.Prepend != "" {
		e.sep()
		e.line(e.opts.Prepend)
		e.needSep = true
	}

	return e.err()
}

// WriteTable writes one table definition
func (e *GoEmitter) WriteTable(table schema.Table) error {
	e.sep()

	ident := ExportedIdentifier(table.Name)
	if !e.opts.OmitComments {
		e.line("// " + ident + " is the table definition for " + qualifiedName(table) + ".")
	}

	e.line("var " + ident + " = schema.Table{")
	e.writeNameFields(table)
	e.writeColumns(table.Columns)
	if len(table.PrimaryKey) > 0 {
		e.line(e.indent(1) + "PrimaryKey: []string{" + quoteJoin(table.PrimaryKey) + "},")
	}
	e.writeForeignKeys(table.ForeignKeys)
	e.line("}")
	e.needSep = true

	return e.err()
}

// WriteFooter writes any append text
func (e *GoEmitter) WriteFooter() error {
	if e.opts.Append != "" {
		e.sep()
		e.line(e.opts.Append)
	}
	return e.err()
}

func (e *GoEmitter) writeNameFields(table schema.Table) {
	// gofmt aligns consecutive single-line fields, so pad Name when a
	// Schema line follows it.
	if table.Schema != "" {
		e.line(e.indent(1) + "Name:   " + strconv.Quote(table.Name) + ",")
		e.line(e.indent(1) + "Schema: " + strconv.Quote(table.Schema) + ",")
	} else {
		e.line(e.indent(1) + "Name: " + strconv.Quote(table.Name) + ",")
	}
}

func (e *GoEmitter) writeColumns(columns []schema.Column) {
	if len(columns) == 0 {
		return
	}
	e.line(e.indent(1) + "Columns: []schema.Column{")
	for _, col := range columns {
		e.line(e.indent(2) + columnLiteral(col) + ",")
	}
	e.line(e.indent(1) + "},")
}

func (e *GoEmitter) writeForeignKeys(fks []schema.ForeignKey) {
	if len(fks) == 0 {
		return
	}
	e.line(e.indent(1) + "ForeignKeys: []schema.ForeignKey{")
	for _, fk := range fks {
		e.line(e.indent(2) + fmt.Sprintf("{SourceColumn: %s, TargetTable: %s, TargetColumn: %s},",
			strconv.Quote(fk.SourceColumn), strconv.Quote(fk.TargetTable), strconv.Quote(fk.TargetColumn)))
	}
	e.line(e.indent(1) + "},")
}

func columnLiteral(col schema.Column) string {
	parts := []string{
		"Name: " + strconv.Quote(col.Name),
		"Type: " + strconv.Quote(col.Type),
	}
	if col.Nullable {
		parts = append(parts, "Nullable: true")
	}
	if col.Default != nil {
		parts = append(parts, "Default: schema.String("+strconv.Quote(*col.Default)+")")
	}
	if col.MaxLength > 0 {
		parts = append(parts, "MaxLength: "+strconv.Itoa(col.MaxLength))
	}
	if col.AutoIncrement {
		parts = append(parts, "AutoIncrement: true")
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func qualifiedName(table schema.Table) string {
	if table.Schema != "" {
		return strconv.Quote(table.Schema) + "." + strconv.Quote(table.Name)
	}
	return strconv.Quote(table.Name)
}

func quoteJoin(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = strconv.Quote(name)
	}
	return strings.Join(quoted, ", ")
}

func (e *GoEmitter) indent(depth int) string {
	return strings.Repeat(e.opts.Indent, depth)
}

// line writes s terminated by the EOL token. The first write error sticks
// and short-circuits everything after it.
func (e *GoEmitter) line(s string) {
	if e.werr != nil {
		return
	}
	_, e.werr = io.WriteString(e.w, s+e.opts.EOL)
}

// sep writes the blank line separating top-level blocks
func (e *GoEmitter) sep() {
	if e.needSep {
		e.line("")
		e.needSep = false
	}
}

func (e *GoEmitter) err() error {
	return e.werr
}
