package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/folhaponto/usuarios-migration/internal/config"
	"github.com/folhaponto/usuarios-migration/internal/processor"
	"github.com/folhaponto/usuarios-migration/internal/utils"
	"github.com/rs/zerolog"
)

// ErrNotConnected is returned when Load is called before Connect
var ErrNotConnected = errors.New("loader is not connected")

// File writes a batch as a single SQL script
type File struct {
	config    config.Output
	connected bool
	logger    zerolog.Logger
}

var _ Loader = (*File)(nil)

// NewFileLoader creates a new File loader
func NewFileLoader(cfg config.Output, logger zerolog.Logger) *File {
	return &File{config: cfg, logger: logger}
}

// Connect makes sure the output directory exists and is writable
func (l *File) Connect(ctx context.Context) error {
	if l.config.SQLPath == "" {
		return fmt.Errorf("output path is empty")
	}
	dir := filepath.Dir(l.config.SQLPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	l.connected = true
	l.logger.Debug().Str("path", l.config.SQLPath).Msg("output directory ready")
	return nil
}

// Load renders the batch and replaces the output file with it. The file is
// only replaced once the whole batch has been written.
func (l *File) Load(ctx context.Context, batch processor.RecordBatcher) error {
	if !l.connected {
		return ErrNotConnected
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	records := batch.Records()
	if len(records) == 0 {
		l.logger.Info().Msg("No records to load, writing header only")
	}

	content := Render(l.config.Header, batch)
	l.logger.Debug().Int("bytes", len(content)).Int("statements", len(records)).Msg("writing sql script")

	if err := utils.WriteFileAtomic(l.config.SQLPath, content, 0o644); err != nil {
		return fmt.Errorf("failed to write sql script: %w", err)
	}
	return nil
}

// Close releases the loader
func (l *File) Close(ctx context.Context) error {
	l.connected = false
	return nil
}

// Render builds the script text: the header comment line, then one statement
// per record separated by newlines.
func Render(header string, batch processor.RecordBatcher) []byte {
	var buf bytes.Buffer
	if header != "" {
		buf.WriteString(header)
		buf.WriteByte('\n')
	}
	for _, record := range batch.Records() {
		buf.WriteString(record.SQL())
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
