package validation

import (
	"errors"
	"strings"
	"testing"
	"time"

	apperrors "handyhub/pkg/errors"
	"handyhub/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func TestRequired(t *testing.T) {
	r := NewRules()

	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{"plain", "Gardening", "Gardening", false},
		{"trimmed", "  Gardening \t", "Gardening", false},
		{"empty", "", "", true},
		{"whitespace only", "   \n ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Required("title", tt.value)
			if tt.wantErr {
				assert.True(t, HasCode(err, CodeRequired))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNonNegativeNumber(t *testing.T) {
	r := NewRules()

	tests := []struct {
		value    string
		want     float64
		wantCode Code
	}{
		{"0", 0, ""},
		{"88", 88, ""},
		{" 120.50 ", 120.5, ""},
		{"-1", 0, CodeInvalidNumber},
		{"abc", 0, CodeInvalidNumber},
		{"NaN", 0, CodeInvalidNumber},
		{"Inf", 0, CodeInvalidNumber},
		{"", 0, CodeRequired},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := r.NonNegativeNumber("price", tt.value)
			if tt.wantCode != "" {
				assert.True(t, HasCode(err, tt.wantCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOptionalNonNegativeNumber_Blank(t *testing.T) {
	got, err := NewRules().OptionalNonNegativeNumber("budget_min", "  ")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestOrderedRange(t *testing.T) {
	r := NewRules()

	err := r.OrderedRange("budget", ptr(100), ptr(50))
	assert.True(t, HasCode(err, CodeInconsistentRange))

	assert.NoError(t, r.OrderedRange("budget", ptr(50), ptr(100)))
	assert.NoError(t, r.OrderedRange("budget", ptr(75), ptr(75)))
	assert.NoError(t, r.OrderedRange("budget", nil, ptr(10)))
	assert.NoError(t, r.OrderedRange("budget", ptr(10), nil))
}

func TestIntegerInRange_DurationBounds(t *testing.T) {
	r := NewRules()

	tests := []struct {
		value    string
		wantCode Code
	}{
		{"14", CodeOutOfRange},
		{"15", ""},
		{"90", ""},
		{"480", ""},
		{"481", CodeOutOfRange},
		{"0", CodeOutOfRange},
		{"-30", CodeOutOfRange},
		{"30.5", CodeInvalidNumber},
		{"thirty", CodeInvalidNumber},
		{"", CodeRequired},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			_, err := r.IntegerInRange("duration_minutes", tt.value, 15, 480)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, HasCode(err, tt.wantCode), "got %v", err)
		})
	}
}

func TestDate(t *testing.T) {
	r := NewRules()

	key, err := r.Date("date", " 2026-01-25 ")
	require.NoError(t, err)
	assert.Equal(t, model.DateKey("2026-01-25"), key)

	_, err = r.Date("date", "2026-02-30")
	assert.True(t, HasCode(err, CodeInvalidFormat))

	_, err = r.Date("date", "")
	assert.True(t, HasCode(err, CodeRequired))
}

func TestClockTime(t *testing.T) {
	r := NewRules()

	offset, err := r.ClockTime("time", "14:30")
	require.NoError(t, err)
	assert.Equal(t, 14*time.Hour+30*time.Minute, offset)

	_, err = r.ClockTime("time", "2pm")
	assert.True(t, HasCode(err, CodeInvalidFormat))

	_, err = r.ClockTime("time", "25:00")
	assert.True(t, HasCode(err, CodeInvalidFormat))
}

func TestOneOf(t *testing.T) {
	r := NewRules()
	allowed := []string{"Venmo", "Cash", "Bank Transfer"}

	got, err := r.OneOf("payment_method", "Bank Transfer", allowed)
	require.NoError(t, err)
	assert.Equal(t, "Bank Transfer", got)

	_, err = r.OneOf("payment_method", "Bitcoin", allowed)
	assert.True(t, HasCode(err, CodeInvalidChoice))

	_, err = r.OneOf("payment_method", " ", allowed)
	assert.True(t, HasCode(err, CodeRequired))
}

func TestError_Details(t *testing.T) {
	_, err := NewRules().Required("title", "")
	verr, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, "title", verr.Details()["field"])
	assert.Equal(t, "required_field", verr.Details()["code"])
	assert.Equal(t, "title: title is required", verr.Error())
}

func TestToAppError(t *testing.T) {
	_, err := NewRules().IntegerInRange("duration_minutes", "481", 15, 480)

	appErr := ToAppError(err)
	assert.True(t, apperrors.HasCode(appErr, apperrors.CodeValidation))

	other := errors.New("boom")
	assert.Same(t, other, ToAppError(other))
}

func TestNormalized(t *testing.T) {
	r := NewRules()
	upper := func(s string) string {
		if s == "x" {
			return ""
		}
		return strings.ToUpper(s)
	}
	reject := func(string) string { return "" }

	got, err := r.Normalized("contact", " abc ", reject, upper)
	require.NoError(t, err)
	assert.Equal(t, "ABC", got)

	_, err = r.Normalized("contact", "x", reject, upper)
	assert.True(t, HasCode(err, CodeInvalidFormat))

	_, err = r.Normalized("contact", "  ", upper)
	assert.True(t, HasCode(err, CodeRequired))
}
