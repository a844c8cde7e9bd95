package validation

import (
	"errors"
	"fmt"

	apperrors "handyhub/pkg/errors"
)

type Code string

const (
	CodeRequired          Code = "required_field"
	CodeInvalidNumber     Code = "invalid_number"
	CodeOutOfRange        Code = "out_of_range"
	CodeInconsistentRange Code = "inconsistent_range"
	CodeInvalidFormat     Code = "invalid_format"
	CodeInvalidChoice     Code = "invalid_choice"
)

// Error is a named form failure for a single field.
type Error struct {
	Field   string `json:"field"`
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *Error) Details() map[string]any {
	return map[string]any{
		"field": e.Field,
		"code":  string(e.Code),
	}
}

func newError(field string, code Code, format string, args ...any) *Error {
	return &Error{
		Field:   field,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// As extracts the field failure from err, if there is one.
func As(err error) (*Error, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// HasCode reports whether err is a field failure carrying code.
func HasCode(err error, code Code) bool {
	verr, ok := As(err)
	return ok && verr.Code == code
}

// ToAppError renders a field failure as a 422 with field and code details.
// Any other error is returned unchanged.
func ToAppError(err error) error {
	verr, ok := As(err)
	if !ok {
		return err
	}
	return apperrors.Validation(verr.Message, verr.Details())
}
