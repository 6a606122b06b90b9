// Package parser extracts video metadata from fetched watch pages.
package parser

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"ViewCounter/internal/domain"
	"ViewCounter/internal/embedded"
	"ViewCounter/internal/ports"
)

const (
	videoDetailsMarker = `"videoDetails":`
	microformatMarker  = `"playerMicroformatRenderer":`
)

var dateMetaSelectors = []string{
	`meta[itemprop="datePublished"]`,
	`meta[itemprop="uploadDate"]`,
}

type videoDetails struct {
	Title     string          `json:"title"`
	ViewCount json.RawMessage `json:"viewCount"`
}

type microformat struct {
	PublishDate string `json:"publishDate"`
}

// YouTube reads the player response objects embedded in a watch page.
type YouTube struct {
	withDate bool
	logger   *slog.Logger
}

var _ ports.PageExtractor = (*YouTube)(nil)

// NewYouTube builds the extractor; withDate enables the publication date lookup.
func NewYouTube(withDate bool, logger *slog.Logger) *YouTube {
	return &YouTube{withDate: withDate, logger: logger}
}

// Name identifies the extractor inside the registry.
func (y *YouTube) Name() string {
	return "youtube"
}

// Extract decodes title and view count; both come from the videoDetails object, which must
// be present. The publication date is best effort.
func (y *YouTube) Extract(pageURL, page string) (domain.ParsedPage, error) {
	var details videoDetails
	if err := embedded.Locate(page, videoDetailsMarker, &details); err != nil {
		return domain.ParsedPage{}, fmt.Errorf("video details: %w", err)
	}

	parsed := domain.ParsedPage{
		URL:       pageURL,
		Title:     details.Title,
		ViewCount: viewCountText(details.ViewCount),
	}

	if y.withDate {
		parsed.PublicationDate = y.publicationDate(pageURL, page)
	}

	return parsed, nil
}

func (y *YouTube) publicationDate(pageURL, page string) string {
	var mf microformat
	err := embedded.Locate(page, microformatMarker, &mf)
	if err == nil && mf.PublishDate != "" {
		return mf.PublishDate
	}
	y.debug("microformat date unavailable", "url", pageURL, "error", err)

	date, err := metaDate(page)
	if err != nil {
		y.debug("meta date unavailable", "url", pageURL, "error", err)
		return ""
	}
	if date == "" {
		y.warn("no publication date found", "url", pageURL)
	}
	return date
}

func metaDate(page string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return "", fmt.Errorf("parse document: %w", err)
	}

	for _, sel := range dateMetaSelectors {
		if content, ok := doc.Find(sel).First().Attr("content"); ok {
			if content = strings.TrimSpace(content); content != "" {
				return content, nil
			}
		}
	}
	return "", nil
}

// viewCountText accepts both the quoted form YouTube uses and a bare number.
func viewCountText(raw json.RawMessage) string {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}
	return string(raw)
}

func (y *YouTube) debug(msg string, args ...interface{}) {
	if y.logger != nil {
		y.logger.Debug(msg, args...)
	}
}

func (y *YouTube) warn(msg string, args ...interface{}) {
	if y.logger != nil {
		y.logger.Warn(msg, args...)
	}
}
