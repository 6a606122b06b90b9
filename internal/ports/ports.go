package ports

import (
	"context"

	"ViewCounter/internal/domain"
)

// URLSource lists the pages to count.
type URLSource interface {
	URLs(ctx context.Context) ([]string, error)
}

// PageFetcher downloads one page and returns its decoded text.
type PageFetcher interface {
	Fetch(ctx context.Context, pageURL string) (string, error)
}

// PageExtractor decodes the metadata embedded in a fetched page.
type PageExtractor interface {
	Name() string
	Extract(pageURL, page string) (domain.ParsedPage, error)
}

// Totals controls the trailing totals output.
type Totals struct {
	Skip  bool
	Print bool
}

// RowWriter receives the report; the column set is fixed when the writer is built.
type RowWriter interface {
	Begin() error
	AppendRow(row domain.OutputRow) error
	Finish(total uint64, totals Totals) error
}
