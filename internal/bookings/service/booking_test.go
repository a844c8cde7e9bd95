package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"handyhub/internal/bookings/repository"
	"handyhub/internal/bookings/validator"
	"handyhub/internal/store"
	"handyhub/pkg/config"
	apperrors "handyhub/pkg/errors"
	"handyhub/pkg/events"
	"handyhub/pkg/logger"
	"handyhub/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)

func newTestService(t *testing.T, s *store.Store) (BookingService, *events.Recorder) {
	t.Helper()
	log := logger.New(logger.Config{Level: "error", Output: &bytes.Buffer{}, Service: "test"})
	cfg := &config.Config{
		Log:      log,
		Location: time.UTC,
		Clock:    func() time.Time { return testNow },
	}
	rec := &events.Recorder{}
	svc := NewBookingService(
		repository.NewMemoryBookingRepository(s),
		validator.NewBookingValidator(log),
		rec,
		cfg,
	)
	return svc, rec
}

func TestCreate(t *testing.T) {
	s := store.New()
	svc, rec := newTestService(t, s)

	booking, err := svc.Create(context.Background(), model.BookingInput{
		ClientName:    "Sarah Johnson",
		Address:       "12 Oak Ave",
		Date:          "2026-01-30",
		Time:          "9:00 AM - 10:00 AM",
		Price:         "65.50",
		PaymentMethod: "Zelle",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, model.BookingPending, booking.Status)
	assert.Equal(t, 65.5, booking.Price)
	assert.Equal(t, 1, s.Bookings.Len())
	assert.Equal(t, []events.Type{events.BookingCreated}, rec.Types())
}

func TestCreate_ValidationFailureStoresNothing(t *testing.T) {
	s := store.New()
	svc, rec := newTestService(t, s)

	_, err := svc.Create(context.Background(), model.BookingInput{ClientName: "Sarah"})
	require.Error(t, err)

	appErr := apperrors.AsAppError(err)
	assert.Equal(t, apperrors.CodeValidation, appErr.Code)
	assert.Equal(t, "address", appErr.Details["field"])
	assert.Zero(t, s.Bookings.Len())
	assert.Empty(t, rec.Events())
}

func TestGetByID(t *testing.T) {
	svc, _ := newTestService(t, store.NewSeeded(testNow, time.UTC))

	booking, err := svc.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Melissa Shayfer", booking.ClientName)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))

	_, err = svc.GetByID(context.Background(), "")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeInvalidInput))
}

func TestGetAll_SourceOrder(t *testing.T) {
	svc, _ := newTestService(t, store.NewSeeded(testNow, time.UTC))

	bookings, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "1", bookings[0].ID)
	assert.Equal(t, "2", bookings[1].ID)
}

func TestUpdateStatus(t *testing.T) {
	tests := []struct {
		name     string
		steps    []string
		wantCode string
	}{
		{name: "incomplete to completed", steps: []string{"completed"}},
		{name: "incomplete to cancelled", steps: []string{"cancelled"}},
		{name: "back to pending rejected", steps: []string{"pending"}, wantCode: apperrors.CodeConflict},
		{name: "completed is terminal", steps: []string{"completed", "cancelled"}, wantCode: apperrors.CodeConflict},
		{name: "unknown status", steps: []string{"archived"}, wantCode: apperrors.CodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := store.NewSeeded(testNow, time.UTC)
			svc, rec := newTestService(t, s)

			var err error
			for _, step := range tt.steps {
				_, err = svc.UpdateStatus(context.Background(), "1", model.StatusChange{Status: step})
			}

			if tt.wantCode == "" {
				require.NoError(t, err)
				stored, _ := s.Bookings.Get("1")
				assert.Equal(t, model.BookingStatus(tt.steps[len(tt.steps)-1]), stored.Status)
				assert.Contains(t, rec.Types(), events.BookingStatusChanged)
				return
			}
			assert.True(t, apperrors.HasCode(err, tt.wantCode), "got %v", err)
		})
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc, _ := newTestService(t, store.New())

	_, err := svc.UpdateStatus(context.Background(), "nope", model.StatusChange{Status: "completed"})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
}
