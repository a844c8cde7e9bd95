package service

import (
	"context"
	"errors"

	notificationserrors "handyhub/internal/notifications/errors"
	"handyhub/internal/notifications/repository"
	"handyhub/pkg/config"
	apperrors "handyhub/pkg/errors"
	"handyhub/pkg/events"
	"handyhub/pkg/model"
)

type NotificationService interface {
	List(ctx context.Context) (*model.NotificationFeed, error)
	MarkRead(ctx context.Context, id string) (*model.NotificationFeed, error)
	MarkAllRead(ctx context.Context) (*model.NotificationFeed, error)
}

type notificationService struct {
	repo      repository.NotificationRepository
	publisher events.Publisher
	cfg       *config.Config
}

func NewNotificationService(
	repo repository.NotificationRepository,
	publisher events.Publisher,
	cfg *config.Config,
) NotificationService {
	return &notificationService{
		repo:      repo,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *notificationService) List(ctx context.Context) (*model.NotificationFeed, error) {
	notifications, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list notifications", "error", err)
		return nil, apperrors.Internal("Failed to retrieve notifications", err)
	}

	now := s.cfg.Now()
	feed := &model.NotificationFeed{Items: make([]model.NotificationView, 0, len(notifications))}
	for _, n := range notifications {
		read, err := s.repo.IsRead(ctx, n.ID)
		if err != nil {
			return nil, apperrors.Internal("Failed to retrieve notifications", err)
		}
		if !read {
			feed.UnreadCount++
		}
		feed.Items = append(feed.Items, model.NotificationView{
			Notification: n,
			TimeAgo:      model.TimeAgo(n.CreatedAt, now),
			Read:         read,
		})
	}
	return feed, nil
}

// MarkRead marks one notification read and returns the refreshed feed.
// Marking an already-read notification changes nothing.
func (s *notificationService) MarkRead(ctx context.Context, id string) (*model.NotificationFeed, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Notification ID cannot be empty")
	}

	changed, err := s.repo.MarkRead(ctx, id)
	if err != nil {
		if errors.Is(err, notificationserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Notification", id)
		}
		s.cfg.Log.Error("Failed to mark notification read", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to mark notification read", err)
	}

	if changed {
		s.cfg.Log.Info("Notification marked read", "id", id)
		events.Emit(ctx, s.publisher, s.cfg.Log, events.Event{
			Type:       events.NotificationRead,
			Key:        id,
			Payload:    map[string]string{"id": id},
			OccurredAt: s.cfg.Now(),
		})
	}
	return s.List(ctx)
}

func (s *notificationService) MarkAllRead(ctx context.Context) (*model.NotificationFeed, error) {
	changed, err := s.repo.MarkAllRead(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to mark notifications read", "error", err)
		return nil, apperrors.Internal("Failed to mark notifications read", err)
	}

	if changed > 0 {
		s.cfg.Log.Info("All notifications marked read", "count", changed)
		events.Emit(ctx, s.publisher, s.cfg.Log, events.Event{
			Type:       events.NotificationsAllRead,
			Key:        "all",
			Payload:    map[string]int{"count": changed},
			OccurredAt: s.cfg.Now(),
		})
	}
	return s.List(ctx)
}
