// Package events publishes domain events raised by marketplace mutations.
// Publishing is best effort: a failed publish never fails the mutation.
package events

import (
	"context"
	"sync"
	"time"

	"handyhub/pkg/logger"
)

type Type string

const (
	BookingCreated           Type = "booking.created"
	BookingStatusChanged     Type = "booking.status_changed"
	JobPostCreated           Type = "job_post.created"
	JobPostStatusChanged     Type = "job_post.status_changed"
	AppointmentRequested     Type = "appointment.requested"
	AppointmentStatusChanged Type = "appointment.status_changed"
	MessageSent              Type = "message.sent"
	NotificationRead         Type = "notification.read"
	NotificationsAllRead     Type = "notification.all_read"
)

// Event is the envelope written to the events topic. Key is the id of the
// aggregate the event belongs to and drives partitioning.
type Event struct {
	Type       Type      `json:"type"`
	Key        string    `json:"key"`
	Payload    any       `json:"payload"`
	OccurredAt time.Time `json:"occurred_at"`
}

// StatusChange is the payload of the *.status_changed events.
type StatusChange struct {
	ID   string `json:"id"`
	From string `json:"from"`
	To   string `json:"to"`
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Emit publishes e and logs, rather than returns, any failure.
func Emit(ctx context.Context, pub Publisher, log *logger.Logger, e Event) {
	if pub == nil {
		return
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now()
	}
	if err := pub.Publish(ctx, e); err != nil {
		log.Warn("failed to publish domain event",
			"event_type", e.Type,
			"key", e.Key,
			"error", err,
		)
	}
}

// Noop discards every event. Used when no brokers are configured.
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }
func (Noop) Close() error                         { return nil }

// Recorder keeps published events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
	Err    error
}

func (r *Recorder) Publish(_ context.Context, e Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.events = append(r.events, e)
	return nil
}

func (r *Recorder) Close() error { return nil }

// Events returns a copy of everything published so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Types returns the types of the published events in order.
func (r *Recorder) Types() []Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]Type, len(r.events))
	for i, e := range r.events {
		types[i] = e.Type
	}
	return types
}
