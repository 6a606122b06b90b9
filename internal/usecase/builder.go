package usecase

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"ViewCounter/internal/domain"
	"ViewCounter/internal/title"
)

// ErrInvalidViewCount is returned when a page's view count is not a decimal number.
var ErrInvalidViewCount = errors.New("invalid view count")

// RowBuilder turns decoded pages into report rows for a fixed column set.
type RowBuilder struct {
	columns    domain.Columns
	mode       title.Mode
	decomposer *title.Decomposer
}

// NewRowBuilder derives the speaker column from mode; url and date columns are explicit.
func NewRowBuilder(mode title.Mode, decomposer *title.Decomposer, withURL, withDate bool) *RowBuilder {
	if decomposer == nil {
		decomposer = title.NewDecomposer(nil, nil)
	}
	return &RowBuilder{
		columns: domain.Columns{
			Speaker: mode.Splits(),
			URL:     withURL,
			Date:    withDate,
		},
		mode:       mode,
		decomposer: decomposer,
	}
}

// Columns reports the column set every built row follows.
func (b *RowBuilder) Columns() domain.Columns {
	return b.columns
}

// Record validates a decoded page.
func (b *RowBuilder) Record(page domain.ParsedPage) (domain.PageRecord, error) {
	text := strings.TrimSpace(page.ViewCount)
	views, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return domain.PageRecord{}, fmt.Errorf("%w %q", ErrInvalidViewCount, page.ViewCount)
	}

	return domain.PageRecord{
		Title:           page.Title,
		Views:           views,
		URL:             page.URL,
		PublicationDate: page.PublicationDate,
	}, nil
}

// Build validates page and shapes it into a row.
func (b *RowBuilder) Build(page domain.ParsedPage) (domain.OutputRow, error) {
	rec, err := b.Record(page)
	if err != nil {
		return domain.OutputRow{}, err
	}

	row := domain.OutputRow{Title: strings.TrimSpace(rec.Title), Views: rec.Views}
	if b.columns.Speaker {
		parts := b.decomposer.Decompose(rec.Title, b.mode)
		row.Speaker, row.Title = parts.Speaker, parts.Title
	}
	if b.columns.URL {
		row.URL = rec.URL
	}
	if b.columns.Date {
		row.Date = rec.PublicationDate
	}

	return row, nil
}
