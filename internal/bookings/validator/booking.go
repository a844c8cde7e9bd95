package validator

import (
	"handyhub/pkg/logger"
	"handyhub/pkg/model"
	"handyhub/pkg/sanitizer"
	"handyhub/pkg/validation"
)

type BookingValidator struct {
	rules  *validation.Rules
	logger *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	log.Info("Booking validator initialized successfully")

	return &BookingValidator{
		rules:  validation.NewRules(),
		logger: log,
	}
}

func paymentChoices() []string {
	choices := make([]string, len(model.PaymentMethods))
	for i, m := range model.PaymentMethods {
		choices[i] = string(m)
	}
	return choices
}

// Validate checks the form in the order the booking screen does: every
// required field, then the payment method, then the price and date formats.
// It stops at the first failure. The returned booking carries normalized
// values but no id or status.
func (v *BookingValidator) Validate(in model.BookingInput) (model.Booking, error) {
	required := []struct{ field, value string }{
		{"client_name", in.ClientName},
		{"address", in.Address},
		{"date", in.Date},
		{"time", in.Time},
		{"price", in.Price},
	}
	for _, r := range required {
		if _, err := v.rules.Required(r.field, r.value); err != nil {
			return model.Booking{}, err
		}
	}

	method, err := v.rules.OneOf("payment_method", in.PaymentMethod, paymentChoices())
	if err != nil {
		return model.Booking{}, err
	}
	price, err := v.rules.NonNegativeNumber("price", in.Price)
	if err != nil {
		return model.Booking{}, err
	}
	date, err := v.rules.Date("date", in.Date)
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		ClientName:    sanitizer.SingleLine(in.ClientName),
		Address:       sanitizer.SingleLine(in.Address),
		Date:          date,
		Time:          sanitizer.SingleLine(in.Time),
		Price:         price,
		PaymentMethod: model.PaymentMethod(method),
		JobTitle:      sanitizer.SingleLine(in.JobTitle),
	}, nil
}

// ValidateStatus parses a requested status; whether the move is allowed is
// decided against the stored record.
func (v *BookingValidator) ValidateStatus(change model.StatusChange) (model.BookingStatus, error) {
	raw, err := v.rules.OneOf("status", change.Status, []string{
		string(model.BookingPending),
		string(model.BookingIncomplete),
		string(model.BookingCompleted),
		string(model.BookingCancelled),
	})
	if err != nil {
		return "", err
	}
	return model.BookingStatus(raw), nil
}
