package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"ViewCounter/internal/config"
	"ViewCounter/internal/infrastructure/csvout"
	"ViewCounter/internal/infrastructure/fetcher"
	"ViewCounter/internal/infrastructure/parser"
	"ViewCounter/internal/infrastructure/source"
	"ViewCounter/internal/logging"
	"ViewCounter/internal/ports"
	"ViewCounter/internal/title"
	"ViewCounter/internal/usecase"
)

// Application wires configs to use cases for a single counting run.
type Application struct {
	cfg    config.Config
	logger *slog.Logger
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level, cfg.Logging.File)
	}
	return &Application{cfg: cfg, logger: baseLogger}
}

// Run counts the configured URL list into the configured output file.
func (a *Application) Run(ctx context.Context) (err error) {
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	separator, _ := a.cfg.CSV.Delimiter()
	mode, _ := a.cfg.Titles.ParsedMode()

	// the output is truncated on create, so make sure there is something to count first
	if _, err := os.Stat(a.cfg.Input); err != nil {
		return fmt.Errorf("input: %w", err)
	}

	pageExtractor, err := parser.New(a.cfg.Extractor, a.cfg.CSV.WithDate, a.logger.With("component", "extractor."+a.cfg.Extractor))
	if err != nil {
		return err
	}

	decomposer := title.NewDecomposer(a.cfg.Titles.NameFixes, a.logger.With("component", "title"))
	builder := usecase.NewRowBuilder(mode, decomposer, a.cfg.CSV.AddURL, a.cfg.CSV.WithDate)

	writer, err := csvout.Create(a.cfg.Output, csvout.Options{
		Separator: separator,
		Columns:   builder.Columns(),
	}, a.logger.With("component", "csv"))
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := writer.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close output: %w", closeErr))
		}
	}()

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source: source.NewFile(a.cfg.Input, a.logger.With("component", "source")),
		Fetcher: fetcher.NewColly(fetcher.Options{
			UserAgent:   a.cfg.Fetcher.UserAgent,
			Timeout:     a.cfg.Fetcher.Timeout,
			MaxBodySize: a.cfg.Fetcher.MaxBodySize,
		}, a.logger.With("component", "fetcher")),
		Extractor: pageExtractor,
		Builder:   builder,
		Writer:    writer,
		Totals: ports.Totals{
			Skip:  a.cfg.CSV.SkipTotals,
			Print: a.cfg.CSV.PrintTotals,
		},
		Logger: a.logger.With("component", "pipeline"),
	})

	_, err = pipeline.Run(ctx)
	return err
}
