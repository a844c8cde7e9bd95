package service

import (
	"context"
	"errors"

	appointmentserrors "handyhub/internal/appointments/errors"
	"handyhub/internal/appointments/repository"
	"handyhub/internal/appointments/validator"
	"handyhub/pkg/config"
	apperrors "handyhub/pkg/errors"
	"handyhub/pkg/events"
	"handyhub/pkg/model"
	"handyhub/pkg/search"
	"handyhub/pkg/validation"

	"github.com/google/uuid"
)

type AppointmentService interface {
	Request(ctx context.Context, consumerID string, input model.AppointmentInput) (*model.AppointmentRequest, error)
	GetByID(ctx context.Context, id string) (*model.AppointmentRequest, error)
	ListForConsumer(ctx context.Context, consumerID string) (*model.AppointmentBoard, error)
	ListForProvider(ctx context.Context, providerID string) ([]model.AppointmentRequest, error)
	UpdateStatus(ctx context.Context, id string, change model.StatusChange) (*model.AppointmentRequest, error)
}

type appointmentService struct {
	repo      repository.AppointmentRepository
	validator *validator.AppointmentValidator
	publisher events.Publisher
	cfg       *config.Config
}

func NewAppointmentService(
	repo repository.AppointmentRepository,
	validator *validator.AppointmentValidator,
	publisher events.Publisher,
	cfg *config.Config,
) AppointmentService {
	return &appointmentService{
		repo:      repo,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
	}
}

// Request stores a pending appointment with a catalog provider. The
// provider's business name is copied onto the request.
func (s *appointmentService) Request(ctx context.Context, consumerID string, input model.AppointmentInput) (*model.AppointmentRequest, error) {
	if consumerID == "" {
		return nil, apperrors.InvalidInput("Consumer ID cannot be empty")
	}

	appt, err := s.validator.Validate(input, s.cfg.Location)
	if err != nil {
		s.cfg.Log.Warn("Appointment validation failed", "consumer_id", consumerID, "error", err)
		return nil, validation.ToAppError(err)
	}

	provider, err := s.repo.FindProvider(ctx, appt.ProviderID)
	if err != nil {
		if errors.Is(err, appointmentserrors.ErrProviderNotFound) {
			s.cfg.Log.Warn("Appointment requested for unknown provider", "provider_id", appt.ProviderID)
			return nil, apperrors.NotFoundWithID("Provider", appt.ProviderID)
		}
		return nil, apperrors.Internal("Failed to resolve provider", err)
	}

	appt.ID = uuid.New().String()
	appt.ConsumerID = consumerID
	appt.ProviderName = provider.BusinessName
	appt.Status = model.AppointmentPending
	appt.CreatedAt = s.cfg.Now()

	if err := s.repo.Create(ctx, appt); err != nil {
		s.cfg.Log.Error("Failed to create appointment request", "error", err)
		return nil, apperrors.Internal("Failed to create appointment request", err)
	}

	s.cfg.Log.Info("Appointment requested successfully",
		"id", appt.ID,
		"consumer_id", consumerID,
		"provider_id", appt.ProviderID,
		"start_time", appt.StartTime,
		"duration", appt.Duration(),
	)
	events.Emit(ctx, s.publisher, s.cfg.Log, events.Event{
		Type:       events.AppointmentRequested,
		Key:        appt.ID,
		Payload:    appt,
		OccurredAt: appt.CreatedAt,
	})
	return &appt, nil
}

func (s *appointmentService) GetByID(ctx context.Context, id string) (*model.AppointmentRequest, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Appointment ID cannot be empty")
	}

	appt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Appointment request", id)
		}
		return nil, apperrors.Internal("Failed to retrieve appointment request", err)
	}
	return &appt, nil
}

// ListForConsumer splits the consumer's requests into upcoming (pending or
// confirmed) and past (declined or cancelled), each in stored order.
func (s *appointmentService) ListForConsumer(ctx context.Context, consumerID string) (*model.AppointmentBoard, error) {
	if consumerID == "" {
		return nil, apperrors.InvalidInput("Consumer ID cannot be empty")
	}

	appts, err := s.repo.FindByConsumer(ctx, consumerID)
	if err != nil {
		s.cfg.Log.Error("Failed to list appointment requests", "consumer_id", consumerID, "error", err)
		return nil, apperrors.Internal("Failed to retrieve appointment requests", err)
	}

	upcoming, past := search.Partition(appts, func(a model.AppointmentRequest) bool { return a.Status.Upcoming() })
	return &model.AppointmentBoard{
		Upcoming: upcoming,
		Past:     past,
	}, nil
}

func (s *appointmentService) ListForProvider(ctx context.Context, providerID string) ([]model.AppointmentRequest, error) {
	if providerID == "" {
		return nil, apperrors.InvalidInput("Provider ID cannot be empty")
	}

	appts, err := s.repo.FindByProvider(ctx, providerID)
	if err != nil {
		s.cfg.Log.Error("Failed to list provider appointments", "provider_id", providerID, "error", err)
		return nil, apperrors.Internal("Failed to retrieve appointment requests", err)
	}
	return appts, nil
}

func (s *appointmentService) UpdateStatus(ctx context.Context, id string, change model.StatusChange) (*model.AppointmentRequest, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Appointment ID cannot be empty")
	}
	next, err := s.validator.ValidateStatus(change)
	if err != nil {
		s.cfg.Log.Warn("Appointment status validation failed", "id", id, "error", err)
		return nil, validation.ToAppError(err)
	}

	updated, previous, err := s.repo.UpdateStatus(ctx, id, next)
	if err != nil {
		switch {
		case errors.Is(err, appointmentserrors.ErrNotFound):
			return nil, apperrors.NotFoundWithID("Appointment request", id)
		case errors.Is(err, appointmentserrors.ErrInvalidTransition):
			s.cfg.Log.Warn("Appointment status transition rejected", "id", id, "from", previous, "to", next)
			return nil, apperrors.Conflict(err.Error()).WithDetails(map[string]any{
				"from": string(previous),
				"to":   string(next),
			})
		default:
			s.cfg.Log.Error("Failed to update appointment status", "id", id, "error", err)
			return nil, apperrors.Internal("Failed to update appointment status", err)
		}
	}

	s.cfg.Log.Info("Appointment status updated", "id", id, "from", previous, "to", updated.Status)
	events.Emit(ctx, s.publisher, s.cfg.Log, events.Event{
		Type:       events.AppointmentStatusChanged,
		Key:        id,
		Payload:    events.StatusChange{ID: id, From: string(previous), To: string(updated.Status)},
		OccurredAt: s.cfg.Now(),
	})
	return &updated, nil
}
