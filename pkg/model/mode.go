package model

import "fmt"

// AppMode selects which side of the marketplace a caller acts for.
type AppMode string

const (
	ModeBusiness AppMode = "business"
	ModeConsumer AppMode = "consumer"
)

func ParseAppMode(s string) (AppMode, error) {
	switch AppMode(s) {
	case ModeBusiness, ModeConsumer:
		return AppMode(s), nil
	}
	return "", fmt.Errorf("unknown app mode %q", s)
}
