// Package title splits TEDx-style video titles into speaker and talk title.
package title

import (
	"fmt"
	"log/slog"
	"strings"
)

// Mode selects how titles are decomposed.
type Mode int

const (
	// ModeOff keeps titles as they are.
	ModeOff Mode = iota
	// ModeSpeakers splits titles into speaker and talk title.
	ModeSpeakers
	// ModeStripped splits like ModeSpeakers and also strips academic titles from speakers.
	ModeStripped
)

// ParseMode maps a config value to a Mode.
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "off":
		return ModeOff, nil
	case "speakers":
		return ModeSpeakers, nil
	case "stripped":
		return ModeStripped, nil
	default:
		return ModeOff, fmt.Errorf("unknown title mode %q", value)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeSpeakers:
		return "speakers"
	case ModeStripped:
		return "stripped"
	default:
		return "off"
	}
}

// Splits reports whether the mode produces a speaker column.
func (m Mode) Splits() bool {
	return m == ModeSpeakers || m == ModeStripped
}

// Result is the outcome of a decomposition. Recognized is false when the title did not
// match any known convention and the fields are a best guess.
type Result struct {
	Speaker    string
	Title      string
	Rule       string
	Recognized bool
}

// DefaultNameFixes returns the built-in speaker name corrections.
func DefaultNameFixes() map[string]string {
	return map[string]string{
		"Dong Seon-Chang": "Dong-Seon Chang",
	}
}

var honorifics = []string{"Dr.", "Prof."}

// Decomposer applies the title cascade.
type Decomposer struct {
	rules     []rule
	nameFixes map[string]string
	logger    *slog.Logger
}

// NewDecomposer builds a decomposer; nameFixes are applied in ModeStripped only.
func NewDecomposer(nameFixes map[string]string, logger *slog.Logger) *Decomposer {
	fixes := make(map[string]string, len(nameFixes))
	for wrong, right := range nameFixes {
		fixes[wrong] = right
	}
	return &Decomposer{
		rules:     cascade(),
		nameFixes: fixes,
		logger:    logger,
	}
}

// Decompose splits raw into speaker and title. It never fails; unrecognized formats are
// logged as warnings and returned with an empty speaker or a best-effort split.
func (d *Decomposer) Decompose(raw string, mode Mode) Result {
	var res Result
	for _, r := range d.rules {
		if !r.match(raw) {
			continue
		}
		res = r.apply(raw)
		res.Rule = r.name
		break
	}

	if !res.Recognized && d.logger != nil {
		d.logger.Warn("title format not recognized", "title", raw, "rule", res.Rule)
	}

	if mode == ModeStripped {
		res = d.strip(res)
	}

	res.Speaker = strings.TrimSpace(res.Speaker)
	res.Title = strings.TrimSpace(res.Title)
	return res
}

func (d *Decomposer) strip(res Result) Result {
	for _, h := range honorifics {
		res.Speaker = strings.ReplaceAll(res.Speaker, h, "")
	}
	if fixed, ok := d.nameFixes[strings.TrimSpace(res.Speaker)]; ok {
		res.Speaker = fixed
	}
	res.Title = strings.ReplaceAll(res.Title, "--", "-")
	return res
}
