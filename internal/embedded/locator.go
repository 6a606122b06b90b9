package embedded

import (
	"encoding/json"
	"strings"
)

// Find returns the raw text of the object that follows the first occurrence of marker.
func Find(page, marker string) (string, error) {
	pos := strings.Index(page, marker)
	if pos < 0 {
		return "", &MarkerNotFoundError{Marker: marker}
	}

	open, end, err := FindBalancedSpan(page, pos+len(marker))
	if err != nil {
		return "", err
	}

	raw := page[open : end+1]
	if raw[0] != '{' || raw[len(raw)-1] != '}' {
		return "", ErrMalformedObject
	}

	return raw, nil
}

// Locate finds the object that follows marker and decodes it into v.
func Locate(page, marker string, v any) error {
	raw, err := Find(page, marker)
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return &DecodeError{Raw: raw, Err: err}
	}

	return nil
}
