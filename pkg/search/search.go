// Package search implements plain substring filtering over in-memory record
// collections. There is no ranking, fuzzy matching or pagination: a record
// either contains the query or it does not.
package search

import "strings"

// Field selects the searchable text of a record. A record may expose
// several values for one field (skills, tags).
type Field[T any] func(T) []string

// Text adapts a single-string selector.
func Text[T any](sel func(T) string) Field[T] {
	return func(v T) []string { return []string{sel(v)} }
}

// List adapts a multi-value selector.
func List[T any](sel func(T) []string) Field[T] {
	return Field[T](sel)
}

// Predicate decides whether a record is kept.
type Predicate[T any] func(T) bool

// Normalize is the query form every comparison uses.
func Normalize(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// Contains matches records where any field contains query, ignoring case and
// surrounding whitespace. A blank query matches everything.
func Contains[T any](query string, fields ...Field[T]) Predicate[T] {
	q := Normalize(query)
	if q == "" {
		return func(T) bool { return true }
	}
	return func(v T) bool {
		for _, f := range fields {
			for _, s := range f(v) {
				if strings.Contains(strings.ToLower(s), q) {
					return true
				}
			}
		}
		return false
	}
}

// Equals matches records whose key is exactly want. Used for enum partitions.
func Equals[T any, K comparable](key func(T) K, want K) Predicate[T] {
	return func(v T) bool { return key(v) == want }
}

// In matches records whose key is any of want.
func In[T any, K comparable](key func(T) K, want ...K) Predicate[T] {
	return func(v T) bool {
		k := key(v)
		for _, w := range want {
			if k == w {
				return true
			}
		}
		return false
	}
}

// Where keeps records satisfying every predicate, in source order.
// The result is always a fresh slice.
func Where[T any](records []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(records))
next:
	for _, r := range records {
		for _, p := range preds {
			if !p(r) {
				continue next
			}
		}
		out = append(out, r)
	}
	return out
}

// Filter is Where with a single text predicate.
func Filter[T any](records []T, query string, fields ...Field[T]) []T {
	return Where(records, Contains(query, fields...))
}

// Partition splits records by pred, preserving order on both sides.
func Partition[T any](records []T, pred Predicate[T]) (matched, rest []T) {
	matched = make([]T, 0, len(records))
	rest = make([]T, 0, len(records))
	for _, r := range records {
		if pred(r) {
			matched = append(matched, r)
		} else {
			rest = append(rest, r)
		}
	}
	return matched, rest
}
