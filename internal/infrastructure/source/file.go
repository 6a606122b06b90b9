// Package source reads the list of page URLs.
package source

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"ViewCounter/internal/ports"
)

const schemePrefix = "http"

// File reads one URL per line. Blank lines, '#' comments and anything not starting with
// http are skipped.
type File struct {
	path   string
	logger *slog.Logger
}

var _ ports.URLSource = (*File)(nil)

// NewFile points the source at path.
func NewFile(path string, logger *slog.Logger) *File {
	return &File{path: path, logger: logger}
}

// URLs returns the usable lines in file order.
func (f *File) URLs(ctx context.Context) ([]string, error) {
	fh, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("open url list: %w", err)
	}
	defer fh.Close()

	var urls []string
	scanner := bufio.NewScanner(fh)
	for line := 1; scanner.Scan(); line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		value := strings.TrimSpace(scanner.Text())
		switch {
		case value == "", strings.HasPrefix(value, "#"):
			continue
		case !strings.HasPrefix(value, schemePrefix):
			f.debug("skip line without url scheme", "line", line, "value", value)
			continue
		}
		urls = append(urls, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read url list: %w", err)
	}

	f.debug("url list loaded", "path", f.path, "urls", len(urls))
	return urls, nil
}

func (f *File) debug(msg string, args ...interface{}) {
	if f.logger != nil {
		f.logger.Debug(msg, args...)
	}
}
