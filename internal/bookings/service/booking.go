package service

import (
	"context"
	"errors"

	bookingserrors "handyhub/internal/bookings/errors"
	"handyhub/internal/bookings/repository"
	"handyhub/internal/bookings/validator"
	"handyhub/pkg/config"
	apperrors "handyhub/pkg/errors"
	"handyhub/pkg/events"
	"handyhub/pkg/model"
	"handyhub/pkg/validation"

	"github.com/google/uuid"
)

type BookingService interface {
	Create(ctx context.Context, input model.BookingInput) (*model.Booking, error)
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	GetAll(ctx context.Context) ([]model.Booking, error)
	UpdateStatus(ctx context.Context, id string, change model.StatusChange) (*model.Booking, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	validator *validator.BookingValidator
	publisher events.Publisher
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	validator *validator.BookingValidator,
	publisher events.Publisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
	}
}

// Create stores a new booking as pending.
func (s *bookingService) Create(ctx context.Context, input model.BookingInput) (*model.Booking, error) {
	booking, err := s.validator.Validate(input)
	if err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return nil, validation.ToAppError(err)
	}

	booking.ID = uuid.New().String()
	booking.Status = model.BookingPending

	if err := s.repo.Create(ctx, booking); err != nil {
		s.cfg.Log.Error("Failed to create booking", "error", err)
		return nil, apperrors.Internal("Failed to create booking", err)
	}

	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"date", booking.Date,
		"payment_method", booking.PaymentMethod,
	)
	events.Emit(ctx, s.publisher, s.cfg.Log, events.Event{
		Type:       events.BookingCreated,
		Key:        booking.ID,
		Payload:    booking,
		OccurredAt: s.cfg.Now(),
	})
	return &booking, nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		return nil, apperrors.Internal("Failed to retrieve booking", err)
	}
	return &booking, nil
}

func (s *bookingService) GetAll(ctx context.Context) ([]model.Booking, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings", "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}
	return bookings, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, id string, change model.StatusChange) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}
	next, err := s.validator.ValidateStatus(change)
	if err != nil {
		s.cfg.Log.Warn("Booking status validation failed", "id", id, "error", err)
		return nil, validation.ToAppError(err)
	}

	updated, previous, err := s.repo.UpdateStatus(ctx, id, next)
	if err != nil {
		switch {
		case errors.Is(err, bookingserrors.ErrNotFound):
			return nil, apperrors.NotFoundWithID("Booking", id)
		case errors.Is(err, bookingserrors.ErrInvalidTransition):
			s.cfg.Log.Warn("Booking status transition rejected", "id", id, "from", previous, "to", next)
			return nil, apperrors.Conflict(err.Error()).WithDetails(map[string]any{
				"from": string(previous),
				"to":   string(next),
			})
		default:
			s.cfg.Log.Error("Failed to update booking status", "id", id, "error", err)
			return nil, apperrors.Internal("Failed to update booking status", err)
		}
	}

	s.cfg.Log.Info("Booking status updated", "id", id, "from", previous, "to", updated.Status)
	events.Emit(ctx, s.publisher, s.cfg.Log, events.Event{
		Type:       events.BookingStatusChanged,
		Key:        id,
		Payload:    events.StatusChange{ID: id, From: string(previous), To: string(updated.Status)},
		OccurredAt: s.cfg.Now(),
	})
	return &updated, nil
}
