package repository

import (
	"context"
	"errors"
	"fmt"

	appointmentserrors "handyhub/internal/appointments/errors"
	"handyhub/internal/store"
	"handyhub/pkg/model"
	"handyhub/pkg/search"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appt model.AppointmentRequest) error
	FindByID(ctx context.Context, id string) (model.AppointmentRequest, error)
	FindByConsumer(ctx context.Context, consumerID string) ([]model.AppointmentRequest, error)
	FindByProvider(ctx context.Context, providerID string) ([]model.AppointmentRequest, error)
	UpdateStatus(ctx context.Context, id string, next model.AppointmentStatus) (model.AppointmentRequest, model.AppointmentStatus, error)
	// FindProvider resolves a catalog provider so requests can carry its name.
	FindProvider(ctx context.Context, providerID string) (model.Provider, error)
}

type memoryAppointmentRepository struct {
	appointments *store.Collection[model.AppointmentRequest]
	providers    *store.Collection[model.Provider]
}

func NewMemoryAppointmentRepository(s *store.Store) AppointmentRepository {
	return &memoryAppointmentRepository{
		appointments: s.Appointments,
		providers:    s.Providers,
	}
}

func (r *memoryAppointmentRepository) Create(ctx context.Context, appt model.AppointmentRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.appointments.Append(appt)
	return nil
}

func (r *memoryAppointmentRepository) FindByID(ctx context.Context, id string) (model.AppointmentRequest, error) {
	if err := ctx.Err(); err != nil {
		return model.AppointmentRequest{}, err
	}
	appt, ok := r.appointments.Get(id)
	if !ok {
		return model.AppointmentRequest{}, appointmentserrors.ErrNotFound
	}
	return appt, nil
}

func (r *memoryAppointmentRepository) FindByConsumer(ctx context.Context, consumerID string) ([]model.AppointmentRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return search.Where(r.appointments.All(),
		search.Equals(func(a model.AppointmentRequest) string { return a.ConsumerID }, consumerID)), nil
}

func (r *memoryAppointmentRepository) FindByProvider(ctx context.Context, providerID string) ([]model.AppointmentRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return search.Where(r.appointments.All(),
		search.Equals(func(a model.AppointmentRequest) string { return a.ProviderID }, providerID)), nil
}

func (r *memoryAppointmentRepository) UpdateStatus(ctx context.Context, id string, next model.AppointmentStatus) (model.AppointmentRequest, model.AppointmentStatus, error) {
	if err := ctx.Err(); err != nil {
		return model.AppointmentRequest{}, "", err
	}

	var previous model.AppointmentStatus
	updated, err := r.appointments.Update(id, func(a *model.AppointmentRequest) error {
		previous = a.Status
		if !a.Status.CanTransitionTo(next) {
			return fmt.Errorf("%w: %w", appointmentserrors.ErrInvalidTransition, &model.TransitionError{
				Entity: "appointment request",
				From:   string(a.Status),
				To:     string(next),
			})
		}
		a.Status = next
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return model.AppointmentRequest{}, "", appointmentserrors.ErrNotFound
	}
	if err != nil {
		return model.AppointmentRequest{}, previous, err
	}
	return updated, previous, nil
}

func (r *memoryAppointmentRepository) FindProvider(ctx context.Context, providerID string) (model.Provider, error) {
	if err := ctx.Err(); err != nil {
		return model.Provider{}, err
	}
	p, ok := r.providers.Get(providerID)
	if !ok {
		return model.Provider{}, appointmentserrors.ErrProviderNotFound
	}
	return p, nil
}
