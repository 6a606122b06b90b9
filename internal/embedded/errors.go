package embedded

import (
	"errors"
	"fmt"
)

const rawPreviewLen = 120

var (
	// ErrNoBalancedSpan means the scanned text holds no complete {...} pair.
	ErrNoBalancedSpan = errors.New("no balanced brace span")
	// ErrMalformedObject means the located span does not start with '{' and end with '}'.
	ErrMalformedObject = errors.New("malformed embedded object")
)

// MarkerNotFoundError reports a field marker absent from the page.
type MarkerNotFoundError struct {
	Marker string
}

func (e *MarkerNotFoundError) Error() string {
	return fmt.Sprintf("marker %s not found", e.Marker)
}

// UnbalancedBracesError reports an opening brace without its closing partner.
type UnbalancedBracesError struct {
	Index int
}

func (e *UnbalancedBracesError) Error() string {
	return fmt.Sprintf("no matching close brace for open brace at index %d", e.Index)
}

// DecodeError carries the raw object text that failed to decode.
type DecodeError struct {
	Raw string
	Err error
}

func (e *DecodeError) Error() string {
	raw := e.Raw
	if len(raw) > rawPreviewLen {
		raw = raw[:rawPreviewLen] + "..."
	}
	return fmt.Sprintf("decode embedded object %q: %v", raw, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
