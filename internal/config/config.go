package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/folhaponto/usuarios-migration/internal/transform"
	"github.com/joho/godotenv"
)

// DefaultEnvFiles are loaded, when present, before environment variables are parsed
var DefaultEnvFiles = []string{".env", ".env.local"}

// Source defines where the CSV export is read from
type Source struct {
	CSVPath string `env:"MIGRATION_CSV_PATH" envDefault:"Docs/Dados/DADOS_POSTGRES/USUARIOS_NORMALIZADO_V1.csv"`
}

// NewSourceConfig creates a new Source config
func NewSourceConfig(csvPath string) Source {
	return Source{CSVPath: csvPath}
}

// Output defines where the SQL artifact is written
type Output struct {
	SQLPath string `env:"MIGRATION_SQL_PATH" envDefault:"Docs/SQL/migration_users.sql"`
	Header  string `env:"MIGRATION_SQL_HEADER" envDefault:"-- Users Migration"`
}

// NewOutputConfig creates a new Output config
func NewOutputConfig(sqlPath, header string) Output {
	return Output{SQLPath: sqlPath, Header: header}
}

// RaggedRowPolicy decides what happens to rows whose field count differs from the header
type RaggedRowPolicy string

const (
	RaggedRowsFail RaggedRowPolicy = "fail"
	RaggedRowsSkip RaggedRowPolicy = "skip"
)

// Processor defines the configuration for the CSV processor
type Processor struct {
	RaggedRows RaggedRowPolicy `env:"MIGRATION_RAGGED_ROWS" envDefault:"fail"`
	IDFallback string          `env:"MIGRATION_ID_FALLBACK" envDefault:"random"`
}

// NewProcessorConfig creates a new Processor config
func NewProcessorConfig(raggedRows RaggedRowPolicy, idFallback string) Processor {
	return Processor{RaggedRows: raggedRows, IDFallback: idFallback}
}

// FallbackPolicy returns the parsed identifier fallback policy
func (p Processor) FallbackPolicy() (transform.FallbackPolicy, error) {
	return transform.ParseFallbackPolicy(p.IDFallback)
}

// Stage defines how a finished artifact is prepared for the migration tool
type Stage struct {
	StagedPath    string `env:"MIGRATION_STAGED_PATH" envDefault:"Docs/SQL/migration_ready.sql"`
	MigrationName string `env:"MIGRATION_NAME" envDefault:"migrate_users_from_csv"`
	ProjectRef    string `env:"MIGRATION_PROJECT_REF"`
	PreviewChars  int    `env:"MIGRATION_PREVIEW_CHARS" envDefault:"500"`
}

// Config groups every setting the migration commands read
type Config struct {
	Source    Source
	Output    Output
	Processor Processor
	Stage     Stage
}

// LoadEnvFiles loads the env files that exist, returning how many were loaded.
// Variables already set in the environment take precedence.
func LoadEnvFiles(files []string) (int, error) {
	existing := make([]string, 0, len(files))
	for _, file := range files {
		if _, err := os.Stat(file); err == nil {
			existing = append(existing, file)
		}
	}
	if len(existing) == 0 {
		return 0, nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return 0, fmt.Errorf("failed to load env files: %w", err)
	}
	return len(existing), nil
}

// Load reads the env files and parses the environment into a Config
func Load(envFiles []string) (Config, error) {
	var cfg Config
	if _, err := LoadEnvFiles(envFiles); err != nil {
		return cfg, err
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// ValidateGenerate checks the settings the generate command needs
func (c Config) ValidateGenerate() error {
	var errs []error
	if c.Source.CSVPath == "" {
		errs = append(errs, errors.New("csv path is empty"))
	}
	if c.Output.SQLPath == "" {
		errs = append(errs, errors.New("sql path is empty"))
	}
	if !strings.HasPrefix(c.Output.Header, "--") {
		errs = append(errs, fmt.Errorf("header must be a sql comment starting with --, got %q", c.Output.Header))
	}
	switch c.Processor.RaggedRows {
	case RaggedRowsFail, RaggedRowsSkip:
	default:
		errs = append(errs, fmt.Errorf("unknown ragged row policy %q (want %q or %q)", c.Processor.RaggedRows, RaggedRowsFail, RaggedRowsSkip))
	}
	if _, err := c.Processor.FallbackPolicy(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ValidateVerify checks the settings the verify command needs
func (c Config) ValidateVerify() error {
	var errs []error
	if c.Output.SQLPath == "" {
		errs = append(errs, errors.New("sql path is empty"))
	}
	if c.Stage.PreviewChars < 0 {
		errs = append(errs, fmt.Errorf("preview chars must not be negative, got %d", c.Stage.PreviewChars))
	}
	return errors.Join(errs...)
}

// ValidateStage checks the settings the stage command needs
func (c Config) ValidateStage() error {
	var errs []error
	if c.Output.SQLPath == "" {
		errs = append(errs, errors.New("sql path is empty"))
	}
	if c.Stage.StagedPath == "" {
		errs = append(errs, errors.New("staged path is empty"))
	}
	if c.Stage.StagedPath != "" && c.Stage.StagedPath == c.Output.SQLPath {
		errs = append(errs, errors.New("staged path must differ from sql path"))
	}
	if c.Stage.PreviewChars < 0 {
		errs = append(errs, fmt.Errorf("preview chars must not be negative, got %d", c.Stage.PreviewChars))
	}
	return errors.Join(errs...)
}
