package sanitizer

import "strings"

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

var (
	singleLine = Pipeline{
		strings.TrimSpace,
		collapseWhitespace,
	}

	multiLine = Pipeline{
		func(s string) string { return strings.ReplaceAll(s, "\r\n", "\n") },
		trimLineEnds,
		strings.TrimSpace,
	}

	label = Pipeline{
		strings.TrimSpace,
		collapseWhitespace,
		strings.ToLower,
	}
)

// SingleLine normalizes names, titles, addresses and other one-line fields.
func SingleLine(s string) string {
	return singleLine.Apply(s)
}

// MultiLine normalizes descriptions, notes and message bodies.
func MultiLine(s string) string {
	return multiLine.Apply(s)
}

// Label normalizes values compared case-insensitively, such as skills.
func Label(s string) string {
	return label.Apply(s)
}

func trimLineEnds(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t\r")
	}
	return strings.Join(lines, "\n")
}
