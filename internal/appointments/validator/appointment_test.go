package validator

import (
	"bytes"
	"testing"
	"time"

	"handyhub/pkg/logger"
	"handyhub/pkg/model"
	"handyhub/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator() *AppointmentValidator {
	return NewAppointmentValidator(15, 480, logger.New(logger.Config{Level: "error", Output: &bytes.Buffer{}}))
}

func validInput() model.AppointmentInput {
	return model.AppointmentInput{
		ProviderID:      "b1",
		Date:            "2026-02-10",
		Time:            "14:00",
		DurationMinutes: "90",
		Note:            "  Gate code 1234.  ",
	}
}

func TestValidate_ComputesWindow(t *testing.T) {
	loc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	appt, err := newTestValidator().Validate(validInput(), loc)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 2, 10, 14, 0, 0, 0, loc), appt.StartTime)
	assert.Equal(t, time.Date(2026, 2, 10, 15, 30, 0, 0, loc), appt.EndTime)
	assert.Equal(t, 90*time.Minute, appt.Duration())
	assert.Equal(t, "Gate code 1234.", appt.Note)
	assert.Equal(t, "b1", appt.ProviderID)
}

func TestValidate_DurationBounds(t *testing.T) {
	tests := []struct {
		duration string
		wantCode validation.Code
	}{
		{"15", ""},
		{"480", ""},
		{"14", validation.CodeOutOfRange},
		{"481", validation.CodeOutOfRange},
		{"45.5", validation.CodeInvalidNumber},
		{"", validation.CodeRequired},
	}

	for _, tt := range tests {
		t.Run(tt.duration, func(t *testing.T) {
			in := validInput()
			in.DurationMinutes = tt.duration

			_, err := newTestValidator().Validate(in, time.UTC)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, validation.HasCode(err, tt.wantCode), "got %v", err)
		})
	}
}

func TestValidate_FirstFailureWins(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(in *model.AppointmentInput)
		wantField string
	}{
		{
			name: "date before time and duration",
			mutate: func(in *model.AppointmentInput) {
				in.Date = ""
				in.Time = ""
				in.DurationMinutes = "5"
			},
			wantField: "date",
		},
		{
			name: "time before duration",
			mutate: func(in *model.AppointmentInput) {
				in.Time = "2pm"
				in.DurationMinutes = "5"
			},
			wantField: "time",
		},
		{
			name:      "missing provider",
			mutate:    func(in *model.AppointmentInput) { in.ProviderID = " " },
			wantField: "provider_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			_, err := newTestValidator().Validate(in, time.UTC)
			verr, ok := validation.As(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestValidateStatus(t *testing.T) {
	v := newTestValidator()

	status, err := v.ValidateStatus(model.StatusChange{Status: "CONFIRMED"})
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentConfirmed, status)

	_, err = v.ValidateStatus(model.StatusChange{Status: "RESCHEDULED"})
	assert.True(t, validation.HasCode(err, validation.CodeInvalidChoice))
}
