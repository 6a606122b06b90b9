package title

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	eventTag   = "TEDx"
	pipeSep    = " | "
	atEventSep = " at TEDx"
)

// rule is one step of the cascade. apply is only called when match accepted the title.
type rule struct {
	name  string
	match func(raw string) bool
	apply func(raw string) Result
}

// cascade lists the title conventions from strictest to loosest. Order matters: the
// substring test of the at-event rule would also fire on most pipe-formatted titles.
func cascade() []rule {
	return []rule{
		{name: "triple-pipe", match: pipeParts(3), apply: triplePipe},
		{name: "double-pipe", match: pipeParts(2), apply: doublePipe},
		{name: "event-dash", match: eventPrefixed, apply: eventDash},
		{name: "at-event", match: atEvent, apply: atEventTitle},
		{name: "fallback", match: func(string) bool { return true }, apply: unrecognized},
	}
}

func pipeParts(n int) func(string) bool {
	return func(raw string) bool {
		return len(strings.Split(raw, pipeSep)) == n
	}
}

func eventPrefixed(raw string) bool {
	return strings.HasPrefix(raw, eventTag)
}

func atEvent(raw string) bool {
	return strings.Contains(raw, atEventSep)
}

// "<title> | <speaker> | TEDxEvent"
func triplePipe(raw string) Result {
	parts := strings.Split(raw, pipeSep)
	return Result{Title: parts[0], Speaker: parts[1], Recognized: true}
}

// "<speaker> | TEDxEvent" or "TEDxEvent | <speaker>", both without a talk title.
func doublePipe(raw string) Result {
	parts := strings.Split(raw, pipeSep)

	var res Result
	switch {
	case strings.Contains(parts[0], eventTag):
		res = Result{Title: parts[0], Speaker: parts[1], Recognized: true}
	case strings.Contains(parts[1], eventTag):
		res = Result{Speaker: parts[0], Title: parts[1], Recognized: true}
	default:
		res = Result{Speaker: parts[0], Title: parts[1]}
	}

	if res.Title == eventTag {
		res.Title, res.Speaker = res.Speaker, eventTag
	}
	return res
}

// "TEDxEvent - <speaker> - <date>" or "TEDxEvent - <speaker> - <title>".
func eventDash(raw string) Result {
	parts := strings.Split(raw, " - ")
	if len(parts) < 3 {
		for _, sep := range []string{" -", "- "} {
			if alt := strings.Split(raw, sep); len(alt) == 3 {
				parts = alt
				break
			}
		}
	}

	switch len(parts) {
	case 3:
		if looksLikeDate(strings.TrimSpace(parts[2])) {
			return Result{Title: parts[0], Speaker: parts[1], Recognized: true}
		}
		return Result{Title: parts[2], Speaker: parts[1], Recognized: true}
	case 2:
		return Result{Speaker: parts[0], Title: parts[1]}
	default:
		return unrecognized(raw)
	}
}

func looksLikeDate(s string) bool {
	first, _ := utf8.DecodeRuneInString(s)
	last, _ := utf8.DecodeLastRuneInString(s)
	return s != "" && unicode.IsDigit(first) && unicode.IsDigit(last)
}

// "<speaker> at TEDxEvent" or "<title>: <speaker> at TEDxEvent".
func atEventTitle(raw string) Result {
	at := strings.Index(raw, atEventSep)
	prefix := strings.TrimSpace(raw[:at])

	if !strings.Contains(prefix, ":") {
		return Result{Speaker: prefix, Title: raw[at+4:], Recognized: true}
	}

	p := strings.LastIndex(prefix, ":")
	p2 := strings.LastIndex(prefix, "! ")
	if p2 < 0 {
		p2 = strings.LastIndex(prefix, "? ")
	}

	// a title ending in '!' or '?' may itself contain a colon
	if p2 > 0 && p2 > p {
		return Result{Title: prefix[:p2+1], Speaker: prefix[p2+2:], Recognized: true}
	}
	return Result{Title: prefix[:p], Speaker: tail(prefix, p+2), Recognized: true}
}

func unrecognized(raw string) Result {
	return Result{Title: raw}
}

func tail(s string, from int) string {
	if from >= len(s) {
		return ""
	}
	return s[from:]
}
