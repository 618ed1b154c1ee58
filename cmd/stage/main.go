package main

import (
	"fmt"
	"os"

	"github.com/folhaponto/usuarios-migration/internal/config"
	"github.com/folhaponto/usuarios-migration/internal/logger"
	"github.com/folhaponto/usuarios-migration/internal/utils"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

var (
	cfg   config.Config
	debug = pflag.Bool("debug", false, "enable debug logging")
)

func init() {
	var err error
	cfg, err = config.Load(config.DefaultEnvFiles)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	pflag.StringVar(&cfg.Output.SQLPath, "sql-path", cfg.Output.SQLPath, "generated sql script")
	pflag.StringVar(&cfg.Stage.StagedPath, "staged-path", cfg.Stage.StagedPath, "where the staged copy is written")
	pflag.StringVar(&cfg.Stage.MigrationName, "migration-name", cfg.Stage.MigrationName, "migration name passed to the apply tool")
	pflag.StringVar(&cfg.Stage.ProjectRef, "project-ref", cfg.Stage.ProjectRef, "target project reference passed to the apply tool")
	pflag.Parse()
}

func main() {
	logger := logger.ForCommand("stage", *debug)
	if err := cfg.ValidateStage(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	data, err := os.ReadFile(cfg.Output.SQLPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to read sql script")
	}
	report := utils.InspectBytes(data, 0)
	if report.Statements == 0 {
		logger.Warn().Str("path", cfg.Output.SQLPath).Msg("sql script has no INSERT statements")
	}

	if err := utils.WriteFileAtomic(cfg.Stage.StagedPath, data, 0o644); err != nil {
		logger.Fatal().Err(err).Msg("failed to stage sql script")
	}
	logger.Debug().Str("from", cfg.Output.SQLPath).Str("to", cfg.Stage.StagedPath).Msg("staged sql script")

	fmt.Println("SUCCESS: Migration SQL prepared")
	fmt.Printf("File size: %d bytes\n", report.Bytes)
	fmt.Printf("Lines: %d\n", report.Lines)
	fmt.Printf("Statements: %d\n", report.Statements)
	fmt.Printf("Output file: %s\n", cfg.Stage.StagedPath)
	fmt.Printf("Migration name: %s\n", cfg.Stage.MigrationName)
	if cfg.Stage.ProjectRef != "" {
		fmt.Printf("Ready to apply to project: %s\n", cfg.Stage.ProjectRef)
	}
}
