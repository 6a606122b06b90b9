// Package embedded locates JSON objects embedded in larger, non-JSON page text.
package embedded

// FindBalancedSpan returns the leftmost complete {...} pair at or after start.
//
// A closing brace with no open partner ends the scan: the object is embedded in more text
// and whatever follows is not ours. Open braces left over after the chosen pair are ignored;
// an unmatched open before it means the pair is nested in an unterminated object and is
// reported as UnbalancedBracesError.
func FindBalancedSpan(text string, start int) (int, int, error) {
	if start < 0 || start >= len(text) {
		return 0, 0, ErrNoBalancedSpan
	}

	var stack []int
	lo, hi := -1, -1

scan:
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			stack = append(stack, i)
		case '}':
			if len(stack) == 0 {
				break scan
			}
			o := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if lo < 0 || o < lo {
				lo, hi = o, i
			}
		}
	}

	if lo < 0 {
		if len(stack) > 0 {
			return 0, 0, &UnbalancedBracesError{Index: stack[len(stack)-1]}
		}
		return 0, 0, ErrNoBalancedSpan
	}
	if len(stack) > 0 && stack[0] < lo {
		return 0, 0, &UnbalancedBracesError{Index: stack[0]}
	}

	return lo, hi, nil
}
