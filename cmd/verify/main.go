package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/folhaponto/usuarios-migration/internal/config"
	"github.com/folhaponto/usuarios-migration/internal/logger"
	"github.com/folhaponto/usuarios-migration/internal/utils"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

var (
	cfg    config.Config
	debug  = pflag.Bool("debug", false, "enable debug logging")
	raw    = pflag.Bool("raw", false, "write the script to stdout verbatim")
	quoted = pflag.Bool("quoted", false, "write the script to stdout as a quoted string literal")
)

func init() {
	var err error
	cfg, err = config.Load(config.DefaultEnvFiles)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	pflag.StringVar(&cfg.Output.SQLPath, "sql-path", cfg.Output.SQLPath, "sql script to inspect")
	pflag.IntVar(&cfg.Stage.PreviewChars, "preview-chars", cfg.Stage.PreviewChars, "characters shown in the head and tail previews")
	pflag.Parse()
}

func main() {
	logger := logger.ForCommand("verify", *debug)
	if err := cfg.ValidateVerify(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}
	if *raw && *quoted {
		logger.Fatal().Msg("--raw and --quoted are mutually exclusive")
	}

	if *raw || *quoted {
		data, err := os.ReadFile(cfg.Output.SQLPath)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to read sql script")
		}
		if *quoted {
			fmt.Println(strconv.Quote(string(data)))
			return
		}
		if _, err := os.Stdout.Write(data); err != nil {
			logger.Fatal().Err(err).Msg("failed to write sql script")
		}
		return
	}

	report, err := utils.Inspect(cfg.Output.SQLPath, cfg.Stage.PreviewChars)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to inspect sql script")
	}
	logger.Debug().Str("path", report.Path).Int("statements", report.Statements).Msg("inspected sql script")

	fmt.Printf("SQL file: %s\n", report.Path)
	fmt.Printf("Size: %d bytes (%d characters)\n", report.Bytes, report.Chars)
	fmt.Printf("Lines: %d\n", report.Lines)
	fmt.Printf("Statements: %d\n", report.Statements)
	fmt.Printf("First %d chars:\n%s\n", cfg.Stage.PreviewChars, report.Head)
	fmt.Printf("\nLast %d chars:\n%s\n", cfg.Stage.PreviewChars, report.Tail)
}
