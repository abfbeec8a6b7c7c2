package emit

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jamidon/sqlgen/schema"
)

// MultiFile writes one generated Go file per table into a directory, plus a
// doc.go carrying the package comment. All files share the same package.
type MultiFile struct {
	dir   string
	opts  Options
	meta  Meta
	bytes int64
	files map[string]string
}

// NewMultiFile creates a multi-file emitter rooted at dir. A nil opts uses
// DefaultOptions; an empty package name falls back to the default, since
// every file needs a package clause.
func NewMultiFile(dir string, opts *Options) *MultiFile {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Package == "" {
		o.Package = DefaultOptions().Package
	}
	return &MultiFile{dir: dir, opts: o, files: make(map[string]string)}
}

// BytesWritten reports how many bytes have been written across all files
func (m *MultiFile) BytesWritten() int64 {
	return m.bytes
}

// WriteHeader creates the output directory and writes doc.go
func (m *MultiFile) WriteHeader(meta Meta) error {
	m.meta = meta

	if err := os.MkdirAll(m.dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(filepath.Join(m.dir, "doc.go"))
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	e := NewGoEmitter(file, &m.opts)
	if !m.opts.OmitComments {
		e.line("// Code generated by sqlgen. DO NOT EDIT.")
		if meta.Dialect != "" {
			e.line("// dialect: " + meta.Dialect)
		}
		if meta.Source != "" {
			e.line("// source: " + meta.Source)
		}
		e.line("")
		e.line("// Package " + m.opts.Package + " contains generated table definitions.")
	}
	e.line("package " + m.opts.Package)
	if m.opts.Prepend != "" {
		e.line("")
		e.line(m.opts.Prepend)
	}

	m.bytes += e.BytesWritten()
	return e.err()
}

// WriteTable writes one table to its own file. Table names that differ
// only in case or separators map to the same file name, so a collision is
// an error rather than a silent overwrite.
func (m *MultiFile) WriteTable(table schema.Table) error {
	name := FileName(table.Name)
	if name == "doc.go" {
		return fmt.Errorf("table %q maps to reserved file doc.go", table.Name)
	}
	if prev, ok := m.files[name]; ok {
		return fmt.Errorf("tables %q and %q both map to file %s", prev, table.Name, name)
	}
	m.files[name] = table.Name

	file, err := os.Create(filepath.Join(m.dir, name))
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	// Per-file prepend/append would duplicate across tables; doc.go
	// carries them instead.
	fileOpts := m.opts
	fileOpts.Prepend = ""
	fileOpts.Append = ""

	e := NewGoEmitter(file, &fileOpts)
	if err := e.WriteHeader(m.meta); err != nil {
		return err
	}
	if err := e.WriteTable(table); err != nil {
		return err
	}
	if err := e.WriteFooter(); err != nil {
		return err
	}

	m.bytes += e.BytesWritten()
	return nil
}

// WriteFooter appends any trailing text to doc.go
func (m *MultiFile) WriteFooter() error {
	if m.opts.Append == "" {
		return nil
	}

	file, err := os.OpenFile(filepath.Join(m.dir, "doc.go"), os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	e := NewGoEmitter(file, &m.opts)
	e.line("")
	e.line(m.opts.Append)

	m.bytes += e.BytesWritten()
	return e.err()
}
