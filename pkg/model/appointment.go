package model

import "time"

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "PENDING"
	AppointmentConfirmed AppointmentStatus = "CONFIRMED"
	AppointmentDeclined  AppointmentStatus = "DECLINED"
	AppointmentCancelled AppointmentStatus = "CANCELLED"
)

var appointmentTransitions = transitions[AppointmentStatus]{
	AppointmentPending: {AppointmentConfirmed, AppointmentDeclined, AppointmentCancelled},
}

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentPending, AppointmentConfirmed, AppointmentDeclined, AppointmentCancelled:
		return true
	}
	return false
}

func (s AppointmentStatus) Terminal() bool {
	return appointmentTransitions.terminal(s)
}

func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	return appointmentTransitions.allows(s, next)
}

// Upcoming reports whether the request still belongs on the consumer's upcoming list.
func (s AppointmentStatus) Upcoming() bool {
	return s == AppointmentPending || s == AppointmentConfirmed
}

type AppointmentRequest struct {
	ID           string            `json:"id"`
	ConsumerID   string            `json:"consumer_id"`
	ProviderID   string            `json:"provider_id"`
	JobID        string            `json:"job_id,omitempty"`
	StartTime    time.Time         `json:"start_time"`
	EndTime      time.Time         `json:"end_time"`
	Note         string            `json:"note"`
	Status       AppointmentStatus `json:"status"`
	ProviderName string            `json:"provider_name"`
	CreatedAt    time.Time         `json:"created_at"`
}

func (a AppointmentRequest) Duration() time.Duration {
	return a.EndTime.Sub(a.StartTime)
}

type AppointmentInput struct {
	ProviderID      string `json:"provider_id"`
	JobID           string `json:"job_id,omitempty"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes string `json:"duration_minutes"`
	Note            string `json:"note,omitempty"`
}

// AppointmentBoard splits a consumer's requests into the upcoming and past tabs.
type AppointmentBoard struct {
	Upcoming []AppointmentRequest `json:"upcoming"`
	Past     []AppointmentRequest `json:"past"`
}
