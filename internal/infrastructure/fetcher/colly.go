// Package fetcher downloads pages with a colly collector.
package fetcher

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gocolly/colly/v2"

	"ViewCounter/internal/ports"
)

const (
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
	defaultTimeout   = 30 * time.Second
)

// Options tune the underlying collector.
type Options struct {
	UserAgent   string
	Timeout     time.Duration
	MaxBodySize int
}

// Colly fetches one page at a time; callers drive it sequentially.
type Colly struct {
	base   *colly.Collector
	logger *slog.Logger
}

var _ ports.PageFetcher = (*Colly)(nil)

// NewColly builds the base collector. Revisits are allowed because a URL list may repeat.
// A MaxBodySize of 0 lifts the body limit.
func NewColly(opts Options, logger *slog.Logger) *Colly {
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}

	collector := colly.NewCollector(
		colly.UserAgent(opts.UserAgent),
		colly.AllowURLRevisit(),
		colly.MaxBodySize(opts.MaxBodySize),
	)
	collector.SetRequestTimeout(opts.Timeout)

	return &Colly{base: collector, logger: logger}
}

// Fetch returns the page body as text. Transport errors and non-2xx statuses are returned.
func (c *Colly) Fetch(ctx context.Context, pageURL string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	collector := c.base.Clone()
	collector.Context = ctx

	var (
		body   []byte
		status int
	)
	collector.OnResponse(func(r *colly.Response) {
		status = r.StatusCode
		body = r.Body
	})
	collector.OnError(func(r *colly.Response, _ error) {
		if r != nil {
			status = r.StatusCode
		}
	})

	c.debug("fetch page", "url", pageURL)
	if err := collector.Visit(pageURL); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("fetch %s: %w", pageURL, ctxErr)
		}
		if status != 0 {
			return "", fmt.Errorf("fetch %s: status %d: %w", pageURL, status, err)
		}
		return "", fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	c.debug("page fetched", "url", pageURL, "status", status, "bytes", len(body))

	return string(body), nil
}

func (c *Colly) debug(msg string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
