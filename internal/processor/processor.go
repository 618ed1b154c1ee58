package processor

import (
	"errors"
	"fmt"

	"github.com/folhaponto/usuarios-migration/internal/transform"
)

var (
	ErrEmptyHeader     = errors.New("input has no header row")
	ErrDuplicateHeader = errors.New("duplicate header field")
	ErrRaggedRow       = errors.New("row field count differs from header")
)

// Record defines the interface for a single rendered row
type Record interface {
	SQL() string
}

// RecordBatcher defines the interface for a struct containing records to be written out
type RecordBatcher interface {
	TableName() string
	NumColumns() int
	Columns() []string
	Records() []Record
}

// Processor defines a generic ETL processor
type Processor interface {
	Process() (*Batch, error)
}

// RowError reports a failure tied to one input row
type RowError struct {
	Row  int
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d (line %d): %v", e.Row, e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// RowWarning records a row that was skipped
type RowWarning struct {
	Row     int
	Line    int
	Message string
}

// Summary counts statements per identifier source
type Summary struct {
	Total           int
	FromTaxID       int
	FromSecondaryID int
	Random          int
	Positional      int
	Skipped         int
	// RandomRows lists the data rows whose identifiers differ between runs
	RandomRows []int
}

// Batch holds the statements rendered from one input table, in input order
type Batch struct {
	table      transform.TableSpec
	statements []transform.Statement
	warnings   []RowWarning
}

// NewBatch creates a new empty Batch for a table
func NewBatch(table transform.TableSpec) *Batch {
	return &Batch{table: table}
}

// Add appends a statement
func (b *Batch) Add(stmt transform.Statement) {
	b.statements = append(b.statements, stmt)
}

// Warn records a skipped row
func (b *Batch) Warn(w RowWarning) {
	b.warnings = append(b.warnings, w)
}

// TableName returns the table name
func (b *Batch) TableName() string {
	return b.table.Name
}

// NumColumns returns the number of columns per statement
func (b *Batch) NumColumns() int {
	return b.table.NumColumns()
}

// Columns returns the emitted column list
func (b *Batch) Columns() []string {
	return b.table.Columns()
}

// Records returns the statements as records
func (b *Batch) Records() []Record {
	records := make([]Record, len(b.statements))
	for i, stmt := range b.statements {
		records[i] = stmt
	}
	return records
}

// Statements returns the rendered statements
func (b *Batch) Statements() []transform.Statement {
	return b.statements
}

// Warnings returns the skipped rows
func (b *Batch) Warnings() []RowWarning {
	return b.warnings
}

// Summary counts the batch's statements per identifier source
func (b *Batch) Summary() Summary {
	s := Summary{Total: len(b.statements), Skipped: len(b.warnings)}
	for _, stmt := range b.statements {
		switch stmt.IDSource {
		case transform.IDFromTaxID:
			s.FromTaxID++
		case transform.IDFromSecondaryID:
			s.FromSecondaryID++
		case transform.IDRandom:
			s.Random++
			s.RandomRows = append(s.RandomRows, stmt.Row)
		case transform.IDPositional:
			s.Positional++
		}
	}
	return s
}
