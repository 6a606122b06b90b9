package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ViewCounter/internal/domain"
	"ViewCounter/internal/ports"
)

// PipelineDeps wires all driven adapters into the counting pipeline.
type PipelineDeps struct {
	Source    ports.URLSource
	Fetcher   ports.PageFetcher
	Extractor ports.PageExtractor
	Builder   *RowBuilder
	Writer    ports.RowWriter
	Totals    ports.Totals
	Logger    *slog.Logger
}

// Summary describes one finished run.
type Summary struct {
	Pages      int
	Written    int
	Skipped    int
	TotalViews uint64
}

// Pipeline processes the URL list strictly one page at a time.
type Pipeline struct {
	source    ports.URLSource
	fetcher   ports.PageFetcher
	extractor ports.PageExtractor
	builder   *RowBuilder
	writer    ports.RowWriter
	totals    ports.Totals
	logger    *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		source:    deps.Source,
		fetcher:   deps.Fetcher,
		extractor: deps.Extractor,
		builder:   deps.Builder,
		writer:    deps.Writer,
		totals:    deps.Totals,
		logger:    deps.Logger,
	}
}

// Run counts every listed page. A failing page is logged and skipped; reading the URL list
// and writing the report are fatal.
func (p *Pipeline) Run(ctx context.Context) (Summary, error) {
	var summary Summary
	if p.source == nil || p.fetcher == nil || p.extractor == nil || p.builder == nil || p.writer == nil {
		return summary, errors.New("pipeline is not fully wired")
	}

	urls, err := p.source.URLs(ctx)
	if err != nil {
		return summary, fmt.Errorf("load urls: %w", err)
	}

	if err := p.writer.Begin(); err != nil {
		return summary, fmt.Errorf("start output: %w", err)
	}

	for _, pageURL := range urls {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		summary.Pages++

		row, err := p.processPage(ctx, pageURL)
		if err != nil {
			summary.Skipped++
			p.warn("skip page", "url", pageURL, "error", err)
			continue
		}

		if err := p.writer.AppendRow(row); err != nil {
			return summary, fmt.Errorf("write row for %s: %w", pageURL, err)
		}
		summary.Written++
		summary.TotalViews += row.Views
		p.debug("page counted", "url", pageURL, "views", row.Views)
	}

	if err := p.writer.Finish(summary.TotalViews, p.totals); err != nil {
		return summary, fmt.Errorf("finish output: %w", err)
	}

	p.info("run finished",
		"pages", summary.Pages,
		"written", summary.Written,
		"skipped", summary.Skipped,
		"total_views", summary.TotalViews)
	return summary, nil
}

func (p *Pipeline) processPage(ctx context.Context, pageURL string) (domain.OutputRow, error) {
	page, err := p.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return domain.OutputRow{}, err
	}

	parsed, err := p.extractor.Extract(pageURL, page)
	if err != nil {
		return domain.OutputRow{}, fmt.Errorf("extract: %w", err)
	}

	return p.builder.Build(parsed)
}

func (p *Pipeline) debug(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}

func (p *Pipeline) info(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Pipeline) warn(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}
