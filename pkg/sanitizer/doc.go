// Package sanitizer normalizes free-form user input before it is validated
// and stored.
//
// Normalizers are idempotent and never fail: input that cannot be
// normalized comes back as the empty string, and the caller decides whether
// that is a validation error.
//
//   - Single-line text: trimmed, inner whitespace runs collapsed to one space
//   - Multi-line text: trimmed, CRLF folded to LF, trailing spaces dropped per line
//   - Phone numbers: E.164 via nyaruka/phonenumbers, US numbering by default
//   - Invite links: https enforced, host lower-cased, path preserved
//   - Slices: normalized, blanks and duplicates dropped, order kept
package sanitizer
