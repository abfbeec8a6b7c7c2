package emit

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jamidon/sqlgen/schema"
)

func emitDBML(t *testing.T, opts *Options, meta Meta, tables ...schema.Table) string {
	t.Helper()

	var buf bytes.Buffer
	e := NewDBMLEmitter(&buf, opts)
	if err := e.WriteHeader(meta); err != nil {
		t.Fatalf("WriteHeader failed: %v", err)
	}
	for _, table := range tables {
		if err := e.WriteTable(table); err != nil {
			t.Fatalf("WriteTable failed: %v", err)
		}
	}
	if err := e.WriteFooter(); err != nil {
		t.Fatalf("WriteFooter failed: %v", err)
	}
	return buf.String()
}

func TestDBMLEmitter(t *testing.T) {
	users := schema.Table{
		Name: "users",
		Columns: []schema.Column{
			{Name: "id", Type: "int", AutoIncrement: true},
			{Name: "email", Type: "varchar", MaxLength: 255},
			{Name: "status", Type: "text", Nullable: true, Default: schema.String("'active'")},
		},
		PrimaryKey: []string{"id"},
	}
	orders := schema.Table{
		Name: "orders",
		Columns: []schema.Column{
			{Name: "id", Type: "int", AutoIncrement: true},
			{Name: "user_id", Type: "int"},
		},
		PrimaryKey: []string{"id"},
		ForeignKeys: []schema.ForeignKey{
			{SourceColumn: "user_id", TargetTable: "users", TargetColumn: "id"},
		},
	}

	opts := DefaultOptions()
	opts.OmitComments = true
	got := emitDBML(t, &opts, Meta{Dialect: "mysql"}, users, orders)

	want := "Table users {\n" +
		"\tid int [pk, increment]\n" +
		"\temail varchar(255) [not null]\n" +
		"\tstatus text [default: `'active'`]\n" +
		"}\n" +
		"\n" +
		"Table orders {\n" +
		"\tid int [pk, increment]\n" +
		"\tuser_id int [not null]\n" +
		"}\n" +
		"\n" +
		"Ref: orders.user_id > users.id\n"

	if got != want {
		t.Errorf("Unexpected output:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestDBMLEmitterHeader(t *testing.T) {
	got := emitDBML(t, nil, Meta{Dialect: "postgres", Source: "postgres://u:***@db/app"})

	if !strings.HasPrefix(got, "// Code generated by sqlgen. DO NOT EDIT.\n") {
		t.Errorf("Expected generated-code header:\n%s", got)
	}
	if !strings.Contains(got, "// dialect: postgres\n") {
		t.Errorf("Expected dialect line:\n%s", got)
	}
	if !strings.Contains(got, "// source: postgres://u:***@db/app\n") {
		t.Errorf("Expected masked source line:\n%s", got)
	}
}

func TestDBMLEmitterSchemaQualification(t *testing.T) {
	table := schema.Table{
		Name:    "events",
		Schema:  "audit",
		Columns: []schema.Column{{Name: "id", Type: "bigint"}},
	}
	opts := DefaultOptions()
	opts.OmitComments = true

	got := emitDBML(t, &opts, Meta{}, table)
	if !strings.Contains(got, "Table audit.events {") {
		t.Errorf("Expected schema-qualified table name:\n%s", got)
	}

	// public is the default schema and stays implicit
	table.Schema = "public"
	got = emitDBML(t, &opts, Meta{}, table)
	if !strings.Contains(got, "Table events {") {
		t.Errorf("Expected unqualified table name for public schema:\n%s", got)
	}
}
