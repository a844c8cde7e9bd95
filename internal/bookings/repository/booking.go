package repository

import (
	"context"
	"errors"
	"fmt"

	bookingserrors "handyhub/internal/bookings/errors"
	"handyhub/internal/store"
	"handyhub/pkg/model"
)

type BookingRepository interface {
	Create(ctx context.Context, booking model.Booking) error
	FindByID(ctx context.Context, id string) (model.Booking, error)
	FindAll(ctx context.Context) ([]model.Booking, error)
	// UpdateStatus moves a booking to next if its current status allows it.
	UpdateStatus(ctx context.Context, id string, next model.BookingStatus) (model.Booking, model.BookingStatus, error)
}

type memoryBookingRepository struct {
	bookings *store.Collection[model.Booking]
}

func NewMemoryBookingRepository(s *store.Store) BookingRepository {
	return &memoryBookingRepository{bookings: s.Bookings}
}

func (r *memoryBookingRepository) Create(ctx context.Context, booking model.Booking) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.bookings.Append(booking)
	return nil
}

func (r *memoryBookingRepository) FindByID(ctx context.Context, id string) (model.Booking, error) {
	if err := ctx.Err(); err != nil {
		return model.Booking{}, err
	}
	booking, ok := r.bookings.Get(id)
	if !ok {
		return model.Booking{}, bookingserrors.ErrNotFound
	}
	return booking, nil
}

func (r *memoryBookingRepository) FindAll(ctx context.Context) ([]model.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.bookings.All(), nil
}

func (r *memoryBookingRepository) UpdateStatus(ctx context.Context, id string, next model.BookingStatus) (model.Booking, model.BookingStatus, error) {
	if err := ctx.Err(); err != nil {
		return model.Booking{}, "", err
	}

	var previous model.BookingStatus
	updated, err := r.bookings.Update(id, func(b *model.Booking) error {
		previous = b.Status
		if !b.Status.CanTransitionTo(next) {
			return fmt.Errorf("%w: %w", bookingserrors.ErrInvalidTransition, &model.TransitionError{
				Entity: "booking",
				From:   string(b.Status),
				To:     string(next),
			})
		}
		b.Status = next
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return model.Booking{}, "", bookingserrors.ErrNotFound
	}
	if err != nil {
		return model.Booking{}, previous, err
	}
	return updated, previous, nil
}
