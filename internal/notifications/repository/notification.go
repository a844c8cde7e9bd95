package repository

import (
	"context"

	notificationserrors "handyhub/internal/notifications/errors"
	"handyhub/internal/store"
	"handyhub/pkg/model"
)

type NotificationRepository interface {
	FindAll(ctx context.Context) ([]model.Notification, error)
	IsRead(ctx context.Context, id string) (bool, error)
	// MarkRead reports whether the notification was unread before the call.
	MarkRead(ctx context.Context, id string) (bool, error)
	MarkAllRead(ctx context.Context) (int, error)
	UnreadCount(ctx context.Context) (int, error)
}

type memoryNotificationRepository struct {
	notifications *store.Collection[model.Notification]
	state         *ReadState
}

func NewMemoryNotificationRepository(s *store.Store, state *ReadState) NotificationRepository {
	if state == nil {
		state = &ReadState{}
	}
	return &memoryNotificationRepository{
		notifications: s.Notifications,
		state:         state,
	}
}

func (r *memoryNotificationRepository) FindAll(ctx context.Context) ([]model.Notification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.notifications.All(), nil
}

func (r *memoryNotificationRepository) IsRead(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return r.state.IsRead(id), nil
}

func (r *memoryNotificationRepository) MarkRead(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if _, ok := r.notifications.Get(id); !ok {
		return false, notificationserrors.ErrNotFound
	}
	return r.state.MarkAsRead(id), nil
}

func (r *memoryNotificationRepository) MarkAllRead(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return r.state.MarkAllAsRead(r.ids()), nil
}

func (r *memoryNotificationRepository) UnreadCount(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return r.state.UnreadCount(r.ids()), nil
}

func (r *memoryNotificationRepository) ids() []string {
	all := r.notifications.All()
	ids := make([]string, 0, len(all))
	for _, n := range all {
		ids = append(ids, n.ID)
	}
	return ids
}
