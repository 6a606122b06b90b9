package parser

import (
	"fmt"
	"log/slog"

	"ViewCounter/internal/ports"
)

// Names lists the extractor names accepted by New.
var Names = []string{"youtube"}

// New returns the page extractor configured under name.
func New(name string, withDate bool, logger *slog.Logger) (ports.PageExtractor, error) {
	switch name {
	case "youtube":
		return NewYouTube(withDate, logger), nil
	default:
		return nil, fmt.Errorf("unknown extractor %q (known: %v)", name, Names)
	}
}
