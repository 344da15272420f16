package textgen

import "strings"

// ExtractJSON pulls the first balanced JSON object or array out of a
// completion. Generators routinely wrap structured output in prose or code
// fences; callers should treat a false return as a parse failure, not an
// error condition.
func ExtractJSON(s string) (string, bool) {
	// Prefer fenced blocks when present.
	if i := strings.Index(s, "```"); i >= 0 {
		rest := s[i+3:]
		rest = strings.TrimPrefix(rest, "json")
		if j := strings.Index(rest, "```"); j >= 0 {
			if out, ok := firstBalanced(rest[:j]); ok {
				return out, true
			}
		}
	}
	return firstBalanced(s)
}

func firstBalanced(s string) (string, bool) {
	start := -1
	var open, close byte
	for i := 0; i < len(s); i++ {
		if s[i] == '{' || s[i] == '[' {
			start = i
			open = s[i]
			if open == '{' {
				close = '}'
			} else {
				close = ']'
			}
			break
		}
	}
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch c {
			case '\\':
				i++
			case '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
