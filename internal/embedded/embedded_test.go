package embedded

import (
	"errors"
	"strings"
	"testing"
)

func TestFindBalancedSpan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		text      string
		start     int
		wantOpen  int
		wantClose int
	}{
		{name: "single object", text: `{"a":1}`, wantOpen: 0, wantClose: 6},
		{name: "nested keeps outermost", text: `x{"a":{"b":{}}}y`, wantOpen: 1, wantClose: 14},
		{name: "leftmost of siblings", text: `{a}{bb}`, wantOpen: 0, wantClose: 2},
		{name: "stray close after object", text: `{"a":1}}},"next":{`, wantOpen: 0, wantClose: 6},
		{name: "starts after anchor", text: `{skip} {"a":2}`, start: 6, wantOpen: 7, wantClose: 13},
		{name: "trailing unmatched open ignored", text: `{a} {b`, wantOpen: 0, wantClose: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			open, end, err := FindBalancedSpan(tt.text, tt.start)
			if err != nil {
				t.Fatalf("FindBalancedSpan returned error: %v", err)
			}
			if open != tt.wantOpen || end != tt.wantClose {
				t.Fatalf("got (%d, %d), want (%d, %d)", open, end, tt.wantOpen, tt.wantClose)
			}
		})
	}
}

func TestFindBalancedSpanErrors(t *testing.T) {
	t.Parallel()

	if _, _, err := FindBalancedSpan("abc", 0); !errors.Is(err, ErrNoBalancedSpan) {
		t.Fatalf("abc: expected ErrNoBalancedSpan, got %v", err)
	}
	if _, _, err := FindBalancedSpan("", 0); !errors.Is(err, ErrNoBalancedSpan) {
		t.Fatalf("empty: expected ErrNoBalancedSpan, got %v", err)
	}
	if _, _, err := FindBalancedSpan("{a}", 10); !errors.Is(err, ErrNoBalancedSpan) {
		t.Fatalf("start past end: expected ErrNoBalancedSpan, got %v", err)
	}
	if _, _, err := FindBalancedSpan("} {a}", 0); !errors.Is(err, ErrNoBalancedSpan) {
		t.Fatalf("leading close: expected ErrNoBalancedSpan, got %v", err)
	}

	var unbalanced *UnbalancedBracesError
	if _, _, err := FindBalancedSpan("{a{b}", 0); !errors.As(err, &unbalanced) {
		t.Fatalf("{a{b}: expected UnbalancedBracesError, got %v", err)
	}
	if unbalanced.Index != 0 {
		t.Fatalf("expected offending index 0, got %d", unbalanced.Index)
	}

	if _, _, err := FindBalancedSpan("ab{cd", 0); !errors.As(err, &unbalanced) {
		t.Fatalf("ab{cd: expected UnbalancedBracesError, got %v", err)
	}
	if unbalanced.Index != 2 {
		t.Fatalf("expected offending index 2, got %d", unbalanced.Index)
	}
}

func TestLocate(t *testing.T) {
	t.Parallel()

	page := `<script>var ytInitialPlayerResponse = {"videoDetails":{"videoId":"x1","title":"My Talk | Jane Doe | TEDxTown","viewCount":"1234","thumbnail":{"thumbnails":[{"url":"a"}]}},"other":{}};</script>`

	var details struct {
		Title     string `json:"title"`
		ViewCount string `json:"viewCount"`
	}
	if err := Locate(page, `"videoDetails":`, &details); err != nil {
		t.Fatalf("Locate returned error: %v", err)
	}
	if details.Title != "My Talk | Jane Doe | TEDxTown" {
		t.Fatalf("unexpected title: %s", details.Title)
	}
	if details.ViewCount != "1234" {
		t.Fatalf("unexpected view count: %s", details.ViewCount)
	}
}

func TestLocateMarkerAtStart(t *testing.T) {
	t.Parallel()

	raw, err := Find(`"videoDetails":{"a":1}`, `"videoDetails":`)
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if raw != `{"a":1}` {
		t.Fatalf("unexpected object: %s", raw)
	}
}

func TestLocateErrors(t *testing.T) {
	t.Parallel()

	var notFound *MarkerNotFoundError
	if err := Locate("<html></html>", `"videoDetails":`, &struct{}{}); !errors.As(err, &notFound) {
		t.Fatalf("expected MarkerNotFoundError, got %v", err)
	}
	if notFound.Marker != `"videoDetails":` {
		t.Fatalf("unexpected marker: %s", notFound.Marker)
	}

	var decodeErr *DecodeError
	page := `"videoDetails":{title: unquoted}`
	if err := Locate(page, `"videoDetails":`, &struct{}{}); !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if decodeErr.Raw != "{title: unquoted}" {
		t.Fatalf("unexpected raw fragment: %s", decodeErr.Raw)
	}

	long := `"videoDetails":{` + strings.Repeat("x", 500) + `}`
	err := Locate(long, `"videoDetails":`, &struct{}{})
	if err == nil || len(err.Error()) > 300 {
		t.Fatalf("expected shortened decode error, got %v", err)
	}

	var unbalanced *UnbalancedBracesError
	if err := Locate(`"videoDetails":{"a":{}`, `"videoDetails":`, &struct{}{}); !errors.As(err, &unbalanced) {
		t.Fatalf("expected UnbalancedBracesError, got %v", err)
	}
}
