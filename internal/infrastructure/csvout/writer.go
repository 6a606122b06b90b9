// Package csvout renders report rows as delimited text.
package csvout

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"

	"ViewCounter/internal/domain"
	"ViewCounter/internal/ports"
)

// TotalsLabel heads the totals line.
const TotalsLabel = "Total Views:"

var (
	// ErrNotStarted is returned when rows are appended before the header.
	ErrNotStarted = errors.New("csv output not started")
	// ErrAlreadyStarted is returned when the header is written twice.
	ErrAlreadyStarted = errors.New("csv output already started")
)

// Options fixes the output layout for a whole run.
type Options struct {
	Separator  string
	Columns    domain.Columns
	LineEnding string
	// TotalsOut receives the printed total; os.Stdout when nil.
	TotalsOut io.Writer
}

// PlatformLineEnding is CRLF on Windows and LF elsewhere.
func PlatformLineEnding() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

type flusher interface {
	Flush() error
}

// Writer streams the report line by line.
type Writer struct {
	out     io.Writer
	closer  io.Closer
	opts    Options
	logger  *slog.Logger
	started bool
}

var _ ports.RowWriter = (*Writer)(nil)

// NewWriter wraps out; empty options fall back to ';' and the platform line ending.
func NewWriter(out io.Writer, opts Options, logger *slog.Logger) *Writer {
	if opts.Separator == "" {
		opts.Separator = ";"
	}
	if opts.LineEnding == "" {
		opts.LineEnding = PlatformLineEnding()
	}
	if opts.TotalsOut == nil {
		opts.TotalsOut = os.Stdout
	}
	return &Writer{out: out, opts: opts, logger: logger}
}

// Create truncates path and returns a Writer that owns the file.
func Create(path string, opts Options, logger *slog.Logger) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output %s: %w", path, err)
	}
	w := NewWriter(f, opts, logger)
	w.closer = f
	return w, nil
}

// Begin writes the header line.
func (w *Writer) Begin() error {
	if w.started {
		return ErrAlreadyStarted
	}
	names := w.opts.Columns.Names()
	fields := make([]string, len(names))
	for i, name := range names {
		fields[i] = quote(name)
	}
	if err := w.writeLine(fields); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	w.started = true
	return nil
}

// AppendRow writes one data line and flushes it to the destination.
func (w *Writer) AppendRow(row domain.OutputRow) error {
	if !w.started {
		return ErrNotStarted
	}

	cols := w.opts.Columns
	fields := make([]string, 0, cols.Count())
	if cols.Speaker {
		fields = append(fields, quote(row.Speaker))
	}
	fields = append(fields, quote(row.Title), strconv.FormatUint(row.Views, 10))
	if cols.URL {
		fields = append(fields, quote(row.URL))
	}
	if cols.Date {
		fields = append(fields, quote(row.Date))
	}

	if err := w.writeLine(fields); err != nil {
		return fmt.Errorf("write row: %w", err)
	}
	return nil
}

// Finish appends the totals line unless skipped, and prints the total when asked to.
func (w *Writer) Finish(total uint64, totals ports.Totals) error {
	if !w.started {
		return ErrNotStarted
	}

	if !totals.Skip {
		cols := w.opts.Columns
		fields := make([]string, 0, cols.Count())
		for i := 0; i < cols.TitleIndex(); i++ {
			fields = append(fields, quote(""))
		}
		fields = append(fields, quote(TotalsLabel), strconv.FormatUint(total, 10))
		for len(fields) < cols.Count() {
			fields = append(fields, quote(""))
		}
		if err := w.writeLine(fields); err != nil {
			return fmt.Errorf("write totals: %w", err)
		}
	}

	if totals.Print {
		if _, err := fmt.Fprintln(w.opts.TotalsOut, TotalsLabel, total); err != nil {
			return fmt.Errorf("print totals: %w", err)
		}
	}
	if w.logger != nil {
		w.logger.Debug("output finished", "total", total, "totalsRow", !totals.Skip)
	}

	return nil
}

// Close releases the destination file when the Writer owns one.
func (w *Writer) Close() error {
	if w.closer == nil {
		return nil
	}
	err := w.closer.Close()
	w.closer = nil
	return err
}

func (w *Writer) writeLine(fields []string) error {
	line := strings.Join(fields, w.opts.Separator) + w.opts.LineEnding
	if _, err := io.WriteString(w.out, line); err != nil {
		return err
	}
	if f, ok := w.out.(flusher); ok {
		return f.Flush()
	}
	return nil
}

func quote(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
