package sanitizer

import (
	"strings"
	"unicode"
)

func collapseWhitespace(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(s))
	var lastWasSpace bool

	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}
