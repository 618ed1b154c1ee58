// Package transform turns one user record read from the CSV export into one
// idempotent INSERT statement for the usuarios table.
package transform

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// SourceRecord is one decoded row of the input table keyed by header name.
// Row is the 1-based data row number and only matters for positional ids.
type SourceRecord struct {
	Row    int
	Fields map[string]string
}

// NewSourceRecord creates a new SourceRecord
func NewSourceRecord(row int, fields map[string]string) SourceRecord {
	return SourceRecord{Row: row, Fields: fields}
}

// Get returns the raw value of a field, or "" when the field is absent
func (r SourceRecord) Get(field string) string {
	return r.Fields[field]
}

// Statement is a rendered target row. Columns and Literals always have the
// same length and order, with the identifier column first.
type Statement struct {
	Table          string
	ConflictColumn string
	Columns        []string
	Literals       []string
	ID             uuid.UUID
	IDSource       IDSource
	Row            int
}

// SQL renders the statement terminated for sequential execution in one batch
func (s Statement) SQL() string {
	return fmt.Sprintf("INSERT INTO %s (%s)\nVALUES (%s)\nON CONFLICT (%s) DO NOTHING;",
		s.Table,
		strings.Join(s.Columns, ", "),
		strings.Join(s.Literals, ", "),
		s.ConflictColumn,
	)
}

func (s Statement) String() string {
	return s.SQL()
}

// Options configures a Transformer. Zero values select the defaults.
type Options struct {
	Table     TableSpec
	Namespace uuid.UUID
	Fallback  FallbackPolicy
	// Random supplies identifiers for FallbackRandom
	Random func() uuid.UUID
}

// Transformer renders source records into statements. It holds no mutable
// state and may be reused across records.
type Transformer struct {
	table     TableSpec
	namespace uuid.UUID
	fallback  FallbackPolicy
	random    func() uuid.UUID
}

// NewTransformer creates a new Transformer
func NewTransformer(opts Options) *Transformer {
	t := &Transformer{
		table:     opts.Table,
		namespace: opts.Namespace,
		fallback:  opts.Fallback,
		random:    opts.Random,
	}
	if t.table.Name == "" {
		t.table = Usuarios
	}
	if t.namespace == uuid.Nil {
		t.namespace = Namespace
	}
	if t.fallback == "" {
		t.fallback = FallbackRandom
	}
	if t.random == nil {
		t.random = uuid.New
	}
	return t
}

// Table returns the table spec statements are rendered for
func (t *Transformer) Table() TableSpec {
	return t.table
}

// Transform renders one record. It never fails: absent fields and malformed
// numbers degrade to NULL.
func (t *Transformer) Transform(record SourceRecord) Statement {
	id, source := t.deriveID(record)

	literals := make([]string, 0, t.table.NumColumns())
	literals = append(literals, "'"+id.String()+"'")
	for _, field := range t.table.Fields {
		literals = append(literals, Literal(record.Get(field)))
	}
	for _, field := range t.table.GeoFields {
		literals = append(literals, GeoLiteral(record.Get(field)))
	}

	return Statement{
		Table:          t.table.Name,
		ConflictColumn: t.table.ConflictColumn,
		Columns:        t.table.Columns(),
		Literals:       literals,
		ID:             id,
		IDSource:       source,
		Row:            record.Row,
	}
}

var defaultTransformer = NewTransformer(Options{})

// Transform renders one record with the default usuarios transformer
func Transform(record SourceRecord) Statement {
	return defaultTransformer.Transform(record)
}
