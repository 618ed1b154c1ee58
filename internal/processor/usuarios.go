package processor

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/folhaponto/usuarios-migration/internal/config"
	"github.com/folhaponto/usuarios-migration/internal/transform"
	"github.com/folhaponto/usuarios-migration/internal/utils"
	"github.com/rs/zerolog"
)

// Delimiter separates fields in the CSV export
const Delimiter = ';'

// UsuariosProcessor defines the ETL processor for the users CSV export
type UsuariosProcessor struct {
	context      context.Context
	config       config.Processor
	sourceConfig config.Source
	transformer  *transform.Transformer
	logger       zerolog.Logger
}

// NewUsuariosProcessor creates a new UsuariosProcessor
func NewUsuariosProcessor(ctx context.Context, cfg config.Processor, sourceConfig config.Source, logger zerolog.Logger) (*UsuariosProcessor, error) {
	fallback, err := cfg.FallbackPolicy()
	if err != nil {
		return nil, err
	}
	return &UsuariosProcessor{
		context:      ctx,
		config:       cfg,
		sourceConfig: sourceConfig,
		transformer:  transform.NewTransformer(transform.Options{Fallback: fallback}),
		logger:       logger,
	}, nil
}

// WithTransformer replaces the transformer rows are rendered with
func (p *UsuariosProcessor) WithTransformer(t *transform.Transformer) *UsuariosProcessor {
	p.transformer = t
	return p
}

// Process reads the configured CSV file and renders every row
func (p *UsuariosProcessor) Process() (*Batch, error) {
	reader, err := utils.GetFileReader(p.sourceConfig.CSVPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", p.sourceConfig.CSVPath, err)
	}
	defer reader.Close()

	return p.ProcessReader(reader)
}

// ProcessReader renders every row of a CSV table read from r. A leading BOM
// is tolerated. Rows are rendered in input order.
func (p *UsuariosProcessor) ProcessReader(r io.Reader) (*Batch, error) {
	csvReader := csv.NewReader(utils.StripBOM(r))
	csvReader.Comma = Delimiter
	csvReader.FieldsPerRecord = -1
	csvReader.LazyQuotes = true

	header, err := readHeader(csvReader)
	if err != nil {
		return nil, err
	}
	p.logger.Debug().Strs("header", header).Msg("read csv header")

	batch := NewBatch(p.transformer.Table())
	row := 0
	for {
		if err := p.context.Err(); err != nil {
			return nil, err
		}

		fields, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			var line int
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				line = parseErr.Line
			}
			return nil, &RowError{Row: row, Line: line, Err: err}
		}
		line, _ := csvReader.FieldPos(0)

		if len(fields) != len(header) {
			rowErr := &RowError{
				Row:  row,
				Line: line,
				Err:  fmt.Errorf("%w: want %d fields but got %d", ErrRaggedRow, len(header), len(fields)),
			}
			if p.config.RaggedRows != config.RaggedRowsSkip {
				return nil, rowErr
			}
			p.logger.Debug().Int("row", row).Int("line", line).Msg(rowErr.Error())
			batch.Warn(RowWarning{Row: row, Line: line, Message: rowErr.Error()})
			continue
		}

		record := transform.NewSourceRecord(row, toFieldMap(header, fields))
		stmt := p.transformer.Transform(record)
		if !stmt.IDSource.Deterministic() {
			p.logger.Debug().Int("row", row).Str("id", stmt.ID.String()).Msg("no natural key, generated random id")
		}
		batch.Add(stmt)
	}

	return batch, nil
}

func readHeader(csvReader *csv.Reader) ([]string, error) {
	header, err := csvReader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	seen := make(map[string]bool, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		header[i] = name
		if name == "" {
			continue
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateHeader, name)
		}
		seen[name] = true
	}
	return header, nil
}

func toFieldMap(header, fields []string) map[string]string {
	m := make(map[string]string, len(header))
	for i, name := range header {
		if name == "" {
			continue
		}
		m[name] = fields[i]
	}
	return m
}
