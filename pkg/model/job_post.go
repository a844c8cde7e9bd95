package model

import (
	"strconv"
	"strings"
	"time"
)

type JobPostStatus string

const (
	JobPostOpen       JobPostStatus = "OPEN"
	JobPostInProgress JobPostStatus = "IN_PROGRESS"
	JobPostFilled     JobPostStatus = "FILLED"
	JobPostCancelled  JobPostStatus = "CANCELLED"
)

// Posts are never reopened; FILLED and CANCELLED are terminal.
var jobPostTransitions = transitions[JobPostStatus]{
	JobPostOpen:       {JobPostInProgress, JobPostFilled, JobPostCancelled},
	JobPostInProgress: {JobPostFilled, JobPostCancelled},
}

func (s JobPostStatus) Valid() bool {
	switch s {
	case JobPostOpen, JobPostInProgress, JobPostFilled, JobPostCancelled:
		return true
	}
	return false
}

func (s JobPostStatus) Terminal() bool {
	return jobPostTransitions.terminal(s)
}

func (s JobPostStatus) CanTransitionTo(next JobPostStatus) bool {
	return jobPostTransitions.allows(s, next)
}

type JobPost struct {
	ID           string        `json:"id"`
	ConsumerID   string        `json:"consumer_id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Category     string        `json:"category"`
	LocationText string        `json:"location_text"`
	BudgetMin    *float64      `json:"budget_min,omitempty"`
	BudgetMax    *float64      `json:"budget_max,omitempty"`
	DueDate      string        `json:"due_date,omitempty"`
	Status       JobPostStatus `json:"status"`
	Images       []string      `json:"images,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
}

type JobPostInput struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	LocationText string `json:"location_text"`
	BudgetMin    string `json:"budget_min,omitempty"`
	BudgetMax    string `json:"budget_max,omitempty"`
	DueDate      string `json:"due_date,omitempty"`
}

// JobPostView adds the derived display fields of a job post card.
type JobPostView struct {
	JobPost
	StatusLabel string `json:"status_label"`
	BudgetLabel string `json:"budget_label,omitempty"`
	// Actionable is true while the post can still be filled or cancelled.
	Actionable bool `json:"actionable"`
}

func NewJobPostView(p JobPost) JobPostView {
	return JobPostView{
		JobPost:     p,
		StatusLabel: strings.ReplaceAll(string(p.Status), "_", " "),
		BudgetLabel: budgetLabel(p.BudgetMin, p.BudgetMax),
		Actionable:  !p.Status.Terminal(),
	}
}

// budgetLabel renders "$50 - $100", with "?" for a missing bound and "" when
// neither bound is set.
func budgetLabel(min, max *float64) string {
	if min == nil && max == nil {
		return ""
	}
	bound := func(v *float64) string {
		if v == nil {
			return "?"
		}
		return strconv.FormatFloat(*v, 'f', -1, 64)
	}
	return "$" + bound(min) + " - $" + bound(max)
}
