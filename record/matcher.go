package record

// tagMatcher matches 3-character tags against a pattern where each position
// is either an exact digit or the wildcard 'X'. Patterns are split into
// digits and wildcard positions once, at compile time; matching is a
// digit-by-digit comparison with no regular expressions involved.
type tagMatcher struct {
	digits   [3]byte
	wildcard [3]bool
}

// newTagMatcher compiles a pattern such as "245" or "6XX". ok reports whether
// the pattern is well formed: exactly three characters, each a digit or 'X'
// (lowercase 'x' is accepted too).
func newTagMatcher(pattern string) (tagMatcher, bool) {
	var m tagMatcher
	if len(pattern) != 3 {
		return m, false
	}
	for i := 0; i < 3; i++ {
		c := pattern[i]
		switch {
		case c == 'X' || c == 'x':
			m.wildcard[i] = true
		case c >= '0' && c <= '9':
			m.digits[i] = c
		default:
			return m, false
		}
	}

	return m, true
}

func (m tagMatcher) match(tag string) bool {
	if len(tag) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		if !m.wildcard[i] && tag[i] != m.digits[i] {
			return false
		}
	}

	return true
}
