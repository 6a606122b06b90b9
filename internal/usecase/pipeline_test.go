package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"ViewCounter/internal/domain"
	"ViewCounter/internal/infrastructure/csvout"
	"ViewCounter/internal/infrastructure/parser"
	"ViewCounter/internal/ports"
	"ViewCounter/internal/title"
)

type staticSource struct {
	urls []string
	err  error
}

func (s staticSource) URLs(context.Context) ([]string, error) {
	return s.urls, s.err
}

type mapFetcher map[string]string

func (m mapFetcher) Fetch(_ context.Context, pageURL string) (string, error) {
	page, ok := m[pageURL]
	if !ok {
		return "", fmt.Errorf("fetch %s: status 404", pageURL)
	}
	return page, nil
}

type failingWriter struct {
	failOn string
	rows   int
}

func (f *failingWriter) Begin() error {
	if f.failOn == "begin" {
		return errors.New("disk full")
	}
	return nil
}

func (f *failingWriter) AppendRow(domain.OutputRow) error {
	f.rows++
	if f.failOn == "row" {
		return errors.New("disk full")
	}
	return nil
}

func (f *failingWriter) Finish(uint64, ports.Totals) error {
	return nil
}

func videoPage(title, views string) string {
	return `<script>var ytInitialPlayerResponse = {"videoDetails":{"title":"` + title + `","viewCount":"` + views + `"}};</script>`
}

func TestPipelineRun(t *testing.T) {
	t.Parallel()

	pages := mapFetcher{
		"https://yt/1": videoPage("My Talk | Jane Doe | TEDxTown", "10"),
		"https://yt/2": videoPage("TEDxTown - John Roe - 2015", "20"),
		"https://yt/3": `<html>no player response</html>`,
		"https://yt/4": videoPage("Broken", "n/a"),
		"https://yt/5": videoPage("Something Unparseable", "30"),
	}
	source := staticSource{urls: []string{
		"https://yt/1", "https://yt/2", "https://yt/3", "https://yt/4", "https://yt/missing", "https://yt/5",
	}}

	builder := NewRowBuilder(title.ModeSpeakers, title.NewDecomposer(nil, nil), true, false)
	var out bytes.Buffer
	writer := csvout.NewWriter(&out, csvout.Options{Columns: builder.Columns(), LineEnding: "\n"}, nil)

	p := NewPipeline(PipelineDeps{
		Source:    source,
		Fetcher:   pages,
		Extractor: parser.NewYouTube(false, nil),
		Builder:   builder,
		Writer:    writer,
	})

	summary, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	want := Summary{Pages: 6, Written: 3, Skipped: 3, TotalViews: 60}
	if summary != want {
		t.Fatalf("got summary %+v, want %+v", summary, want)
	}

	wantOut := strings.Join([]string{
		`"Speaker";"Title";"Views";"URL"`,
		`"Jane Doe";"My Talk";10;"https://yt/1"`,
		`"John Roe";"TEDxTown";20;"https://yt/2"`,
		`"";"Something Unparseable";30;"https://yt/5"`,
		`"";"Total Views:";60;""`,
	}, "\n") + "\n"
	if out.String() != wantOut {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", out.String(), wantOut)
	}
}

func TestPipelineFatalErrors(t *testing.T) {
	t.Parallel()

	builder := NewRowBuilder(title.ModeOff, nil, false, false)
	pages := mapFetcher{"https://yt/1": videoPage("T", "1")}

	tests := []struct {
		name   string
		source staticSource
		writer *failingWriter
	}{
		{name: "url list unreadable", source: staticSource{err: errors.New("permission denied")}, writer: &failingWriter{}},
		{name: "header write fails", source: staticSource{urls: []string{"https://yt/1"}}, writer: &failingWriter{failOn: "begin"}},
		{name: "row write fails", source: staticSource{urls: []string{"https://yt/1", "https://yt/1"}}, writer: &failingWriter{failOn: "row"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := NewPipeline(PipelineDeps{
				Source:    tt.source,
				Fetcher:   pages,
				Extractor: parser.NewYouTube(false, nil),
				Builder:   builder,
				Writer:    tt.writer,
			})
			if _, err := p.Run(context.Background()); err == nil {
				t.Fatalf("expected fatal error")
			}
			if tt.writer.rows > 1 {
				t.Fatalf("run must stop at the first write failure, wrote %d rows", tt.writer.rows)
			}
		})
	}
}

func TestPipelineCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPipeline(PipelineDeps{
		Source:    staticSource{urls: []string{"https://yt/1"}},
		Fetcher:   mapFetcher{},
		Extractor: parser.NewYouTube(false, nil),
		Builder:   NewRowBuilder(title.ModeOff, nil, false, false),
		Writer:    &failingWriter{},
	})
	if _, err := p.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestPipelineNotWired(t *testing.T) {
	t.Parallel()

	if _, err := NewPipeline(PipelineDeps{}).Run(context.Background()); err == nil {
		t.Fatalf("expected error for empty pipeline")
	}
}
