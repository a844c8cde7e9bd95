package model

import "fmt"

// transitions maps a status to the statuses reachable from it in one step.
// A status with no entry is terminal.
type transitions[S ~string] map[S][]S

func (t transitions[S]) allows(from, to S) bool {
	for _, next := range t[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (t transitions[S]) terminal(s S) bool {
	return len(t[s]) == 0
}

type TransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s cannot move from %s to %s", e.Entity, e.From, e.To)
}
