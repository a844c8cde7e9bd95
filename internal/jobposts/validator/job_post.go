package validator

import (
	"handyhub/pkg/logger"
	"handyhub/pkg/model"
	"handyhub/pkg/sanitizer"
	"handyhub/pkg/validation"
)

type JobPostValidator struct {
	rules  *validation.Rules
	logger *logger.Logger
}

func NewJobPostValidator(log *logger.Logger) *JobPostValidator {
	log.Info("Job post validator initialized successfully")

	return &JobPostValidator{
		rules:  validation.NewRules(),
		logger: log,
	}
}

var statusChoices = []string{
	string(model.JobPostOpen),
	string(model.JobPostInProgress),
	string(model.JobPostFilled),
	string(model.JobPostCancelled),
}

// Validate checks title, description, location and category in that order,
// then each budget bound, then that the bounds are ordered. The first
// failure is returned.
func (v *JobPostValidator) Validate(in model.JobPostInput) (model.JobPost, error) {
	title, err := v.rules.Required("title", in.Title)
	if err != nil {
		return model.JobPost{}, err
	}
	description, err := v.rules.Required("description", in.Description)
	if err != nil {
		return model.JobPost{}, err
	}
	location, err := v.rules.Required("location_text", in.LocationText)
	if err != nil {
		return model.JobPost{}, err
	}
	category, err := v.rules.Required("category", in.Category)
	if err != nil {
		return model.JobPost{}, err
	}

	budgetMin, err := v.rules.OptionalNonNegativeNumber("budget_min", in.BudgetMin)
	if err != nil {
		return model.JobPost{}, err
	}
	budgetMax, err := v.rules.OptionalNonNegativeNumber("budget_max", in.BudgetMax)
	if err != nil {
		return model.JobPost{}, err
	}
	if err := v.rules.OrderedRange("budget", budgetMin, budgetMax); err != nil {
		return model.JobPost{}, err
	}

	var dueDate string
	if sanitizer.SingleLine(in.DueDate) != "" {
		key, err := v.rules.Date("due_date", in.DueDate)
		if err != nil {
			return model.JobPost{}, err
		}
		dueDate = key.String()
	}

	return model.JobPost{
		Title:        sanitizer.SingleLine(title),
		Description:  sanitizer.MultiLine(description),
		Category:     sanitizer.SingleLine(category),
		LocationText: sanitizer.SingleLine(location),
		BudgetMin:    budgetMin,
		BudgetMax:    budgetMax,
		DueDate:      dueDate,
	}, nil
}

func (v *JobPostValidator) ValidateStatus(change model.StatusChange) (model.JobPostStatus, error) {
	raw, err := v.rules.OneOf("status", change.Status, statusChoices)
	if err != nil {
		return "", err
	}
	return model.JobPostStatus(raw), nil
}

// ValidateStatusFilter accepts a blank filter (all posts) or one exact status.
func (v *JobPostValidator) ValidateStatusFilter(status string) (model.JobPostStatus, error) {
	if sanitizer.SingleLine(status) == "" {
		return "", nil
	}
	raw, err := v.rules.OneOf("status", status, statusChoices)
	if err != nil {
		return "", err
	}
	return model.JobPostStatus(raw), nil
}
