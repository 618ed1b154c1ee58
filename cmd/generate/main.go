package main

import (
	"context"

	"github.com/folhaponto/usuarios-migration/internal/config"
	"github.com/folhaponto/usuarios-migration/internal/loader"
	"github.com/folhaponto/usuarios-migration/internal/logger"
	"github.com/folhaponto/usuarios-migration/internal/processor"
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

	pflag.StringVar(&cfg.Source.CSVPath, "csv-path", cfg.Source.CSVPath, "semicolon-delimited users export to read")
	pflag.StringVar(&cfg.Output.SQLPath, "output-path", cfg.Output.SQLPath, "sql script to write")
	pflag.StringVar(&cfg.Output.Header, "header", cfg.Output.Header, "comment line written at the top of the script")
	pflag.StringVar((*string)(&cfg.Processor.RaggedRows), "ragged-rows", string(cfg.Processor.RaggedRows), "rows with a different field count than the header: fail or skip")
	pflag.StringVar(&cfg.Processor.IDFallback, "id-fallback", cfg.Processor.IDFallback, "id for rows without cpf or matricula: random or positional")
	pflag.Parse()
}

func main() {
	logger := logger.ForCommand("generate", *debug)

	logger.Info().Msg("generating users migration")
	logger.Info().Msgf("csv path: %s", cfg.Source.CSVPath)
	logger.Info().Msgf("output path: %s", cfg.Output.SQLPath)
	if err := cfg.ValidateGenerate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx := context.Background()
	usuariosProcessor, err := processor.NewUsuariosProcessor(ctx, cfg.Processor, cfg.Source, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create processor")
	}

	batch, err := usuariosProcessor.Process()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to process users csv")
	}

	summary := batch.Summary()
	logger.Info().
		Int("statements", summary.Total).
		Int("from_cpf", summary.FromTaxID).
		Int("from_matricula", summary.FromSecondaryID).
		Int("positional", summary.Positional).
		Int("random", summary.Random).
		Int("skipped", summary.Skipped).
		Msg("rendered statements")
	if summary.Random > 0 {
		logger.Warn().
			Ints("rows", summary.RandomRows).
			Msg("rows without cpf or matricula got random ids; re-running will produce different ids for them")
	}
	for _, w := range batch.Warnings() {
		logger.Warn().Int("row", w.Row).Int("line", w.Line).Msg(w.Message)
	}

	fileLoader := loader.NewFileLoader(cfg.Output, logger)
	if err := fileLoader.Connect(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to prepare output")
	}
	if err := fileLoader.Load(ctx, batch); err != nil {
		logger.Fatal().Err(err).Msg("failed to write sql script")
	}
	if err := fileLoader.Close(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to close file loader")
	}

	logger.Info().Msgf("wrote %d statements to %s", summary.Total, cfg.Output.SQLPath)
}
