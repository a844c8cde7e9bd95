package validator

import (
	"handyhub/pkg/logger"
	"handyhub/pkg/model"
	"handyhub/pkg/sanitizer"
	"handyhub/pkg/validation"
)

type MessageValidator struct {
	rules  *validation.Rules
	logger *logger.Logger
}

func NewMessageValidator(log *logger.Logger) *MessageValidator {
	log.Info("Message validator initialized successfully")

	return &MessageValidator{
		rules:  validation.NewRules(),
		logger: log,
	}
}

// ValidateMessage returns the trimmed message text.
func (v *MessageValidator) ValidateMessage(in model.MessageInput) (string, error) {
	text := sanitizer.MultiLine(in.Text)
	return v.rules.Required("text", text)
}

// ValidateContact accepts a phone number (returned in E.164) or an invite
// link (returned as a normalized https URL).
func (v *MessageValidator) ValidateContact(in model.StartThreadInput) (string, error) {
	return v.rules.Normalized("contact", in.Contact, sanitizer.NormalizePhone, sanitizer.NormalizeInviteLink)
}
