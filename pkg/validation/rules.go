package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"handyhub/pkg/model"

	"github.com/go-playground/validator/v10"
)

// Rules holds the reusable field checks shared by every form validator.
// Each check inspects one field and returns the normalized value or an *Error.
type Rules struct {
	validate *validator.Validate
}

func NewRules() *Rules {
	return &Rules{validate: validator.New()}
}

type numericRange struct {
	Min float64
	Max float64 `validate:"gtefield=Min"`
}

// Required trims value and fails when nothing is left.
func (r *Rules) Required(field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if err := r.validate.Var(trimmed, "required"); err != nil {
		return "", newError(field, CodeRequired, "%s is required", field)
	}
	return trimmed, nil
}

// NonNegativeNumber parses a decimal that must be finite and >= 0.
func (r *Rules) NonNegativeNumber(field, value string) (float64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, newError(field, CodeRequired, "%s is required", field)
	}
	n, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, newError(field, CodeInvalidNumber, "%s must be a number", field)
	}
	if err := r.validate.Var(n, "gte=0"); err != nil {
		return 0, newError(field, CodeInvalidNumber, "%s cannot be negative", field)
	}
	return n, nil
}

// OptionalNonNegativeNumber is NonNegativeNumber for fields that may be left blank.
func (r *Rules) OptionalNonNegativeNumber(field, value string) (*float64, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	n, err := r.NonNegativeNumber(field, value)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// OrderedRange fails when both bounds are present and min exceeds max.
func (r *Rules) OrderedRange(field string, min, max *float64) error {
	if min == nil || max == nil {
		return nil
	}
	if err := r.validate.Struct(numericRange{Min: *min, Max: *max}); err != nil {
		return newError(field, CodeInconsistentRange, "%s minimum cannot exceed maximum", field)
	}
	return nil
}

// IntegerInRange parses a whole number and bounds it to [lo, hi].
func (r *Rules) IntegerInRange(field, value string, lo, hi int) (int, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, newError(field, CodeRequired, "%s is required", field)
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, newError(field, CodeInvalidNumber, "%s must be a whole number", field)
	}
	if err := r.validate.Var(n, fmt.Sprintf("min=%d,max=%d", lo, hi)); err != nil {
		return 0, newError(field, CodeOutOfRange, "%s must be between %d and %d", field, lo, hi)
	}
	return n, nil
}

// Date requires a canonical YYYY-MM-DD calendar day.
func (r *Rules) Date(field, value string) (model.DateKey, error) {
	trimmed, err := r.Required(field, value)
	if err != nil {
		return "", err
	}
	key, err := model.ParseDateKey(trimmed)
	if err != nil {
		return "", newError(field, CodeInvalidFormat, "%s must be a valid date (YYYY-MM-DD)", field)
	}
	return key, nil
}

// ClockTime requires a 24-hour HH:MM time of day.
func (r *Rules) ClockTime(field, value string) (time.Duration, error) {
	trimmed, err := r.Required(field, value)
	if err != nil {
		return 0, err
	}
	t, err := time.Parse("15:04", trimmed)
	if err != nil {
		return 0, newError(field, CodeInvalidFormat, "%s must be a time of day (HH:MM)", field)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// OneOf requires value to match one of allowed exactly.
func (r *Rules) OneOf(field, value string, allowed []string) (string, error) {
	trimmed, err := r.Required(field, value)
	if err != nil {
		return "", err
	}
	if err := r.validate.Var(trimmed, "oneof="+oneOfParam(allowed)); err != nil {
		return "", newError(field, CodeInvalidChoice, "%s must be one of: %s", field, strings.Join(allowed, ", "))
	}
	return trimmed, nil
}

// oneof splits on spaces, so multi-word choices are quoted.
func oneOfParam(allowed []string) string {
	quoted := make([]string, len(allowed))
	for i, a := range allowed {
		if strings.Contains(a, " ") {
			quoted[i] = "'" + a + "'"
		} else {
			quoted[i] = a
		}
	}
	return strings.Join(quoted, " ")
}

// Normalized requires value and returns the first non-empty result of the
// normalizers, in order. When every normalizer rejects the value it fails
// as invalid_format.
func (r *Rules) Normalized(field, value string, normalizers ...func(string) string) (string, error) {
	trimmed, err := r.Required(field, value)
	if err != nil {
		return "", err
	}
	for _, normalize := range normalizers {
		if out := normalize(trimmed); out != "" {
			return out, nil
		}
	}
	return "", newError(field, CodeInvalidFormat, "%s is not in a recognised format", field)
}
