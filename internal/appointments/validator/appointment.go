package validator

import (
	"time"

	"handyhub/pkg/logger"
	"handyhub/pkg/model"
	"handyhub/pkg/sanitizer"
	"handyhub/pkg/validation"
)

type AppointmentValidator struct {
	rules       *validation.Rules
	minDuration int
	maxDuration int
	logger      *logger.Logger
}

// NewAppointmentValidator bounds requested durations to [minDuration,
// maxDuration] whole minutes.
func NewAppointmentValidator(minDuration, maxDuration int, log *logger.Logger) *AppointmentValidator {
	log.Info("Appointment validator initialized successfully",
		"min_duration_min", minDuration,
		"max_duration_min", maxDuration,
	)

	return &AppointmentValidator{
		rules:       validation.NewRules(),
		minDuration: minDuration,
		maxDuration: maxDuration,
		logger:      log,
	}
}

var statusChoices = []string{
	string(model.AppointmentPending),
	string(model.AppointmentConfirmed),
	string(model.AppointmentDeclined),
	string(model.AppointmentCancelled),
}

// Validate resolves date and time in loc into a start instant and adds the
// duration for the end. Checks run provider, date, time, duration; the
// first failure wins.
func (v *AppointmentValidator) Validate(in model.AppointmentInput, loc *time.Location) (model.AppointmentRequest, error) {
	providerID, err := v.rules.Required("provider_id", in.ProviderID)
	if err != nil {
		return model.AppointmentRequest{}, err
	}
	day, err := v.rules.Date("date", in.Date)
	if err != nil {
		return model.AppointmentRequest{}, err
	}
	offset, err := v.rules.ClockTime("time", in.Time)
	if err != nil {
		return model.AppointmentRequest{}, err
	}
	minutes, err := v.rules.IntegerInRange("duration_minutes", in.DurationMinutes, v.minDuration, v.maxDuration)
	if err != nil {
		return model.AppointmentRequest{}, err
	}

	midnight, err := day.In(loc)
	if err != nil {
		return model.AppointmentRequest{}, err
	}
	y, m, d := midnight.Date()
	start := time.Date(y, m, d, int(offset/time.Hour), int(offset%time.Hour/time.Minute), 0, 0, midnight.Location())

	return model.AppointmentRequest{
		ProviderID: providerID,
		JobID:      sanitizer.SingleLine(in.JobID),
		StartTime:  start,
		EndTime:    start.Add(time.Duration(minutes) * time.Minute),
		Note:       sanitizer.MultiLine(in.Note),
	}, nil
}

func (v *AppointmentValidator) ValidateStatus(change model.StatusChange) (model.AppointmentStatus, error) {
	raw, err := v.rules.OneOf("status", change.Status, statusChoices)
	if err != nil {
		return "", err
	}
	return model.AppointmentStatus(raw), nil
}
