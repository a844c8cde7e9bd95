package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	notificationserrors "handyhub/internal/notifications/errors"
	"handyhub/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadState(t *testing.T) {
	var s ReadState
	ids := []string{"1", "2", "3"}

	assert.False(t, s.IsRead("1"))
	assert.Equal(t, 3, s.UnreadCount(ids))

	assert.True(t, s.MarkAsRead("2"))
	assert.False(t, s.MarkAsRead("2"), "second mark is a no-op")
	assert.True(t, s.IsRead("2"))
	assert.Equal(t, 2, s.UnreadCount(ids))

	assert.Equal(t, 2, s.MarkAllAsRead(ids))
	assert.Zero(t, s.UnreadCount(ids))
	assert.Zero(t, s.MarkAllAsRead(ids))
}

func TestReadState_Concurrent(t *testing.T) {
	var s ReadState
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.MarkAsRead("1")
			_ = s.UnreadCount([]string{"1", "2"})
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, s.UnreadCount([]string{"1", "2"}))
}

func TestMarkRead_UnknownID(t *testing.T) {
	repo := NewMemoryNotificationRepository(store.NewSeeded(time.Now(), time.UTC), nil)

	_, err := repo.MarkRead(context.Background(), "404")
	assert.ErrorIs(t, err, notificationserrors.ErrNotFound)

	count, err := repo.UnreadCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
