package store

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"handyhub/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID    string
	Value int
}

func newItems(seed ...item) *Collection[item] {
	return NewCollection(func(i item) string { return i.ID }, seed...)
}

func TestCollection_PreservesInsertionOrder(t *testing.T) {
	c := newItems(item{ID: "a"}, item{ID: "b"})
	c.Append(item{ID: "c"})

	all := c.All()
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "c", all[2].ID)
	assert.Equal(t, 3, c.Len())
}

func TestCollection_AllReturnsCopy(t *testing.T) {
	c := newItems(item{ID: "a", Value: 1})

	all := c.All()
	all[0].Value = 99

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, got.Value)
}

func TestCollection_Update(t *testing.T) {
	c := newItems(item{ID: "a", Value: 1})

	updated, err := c.Update("a", func(i *item) error {
		i.Value = 2
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Value)

	_, err = c.Update("missing", func(*item) error { return nil })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollection_FailedUpdateLeavesRecord(t *testing.T) {
	c := newItems(item{ID: "a", Value: 1})
	boom := errors.New("boom")

	_, err := c.Update("a", func(i *item) error {
		i.Value = 50
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, _ := c.Get("a")
	assert.Equal(t, 1, got.Value)
}

func TestCollection_ConcurrentAppend(t *testing.T) {
	c := newItems()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Append(item{ID: fmt.Sprint(i)})
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, c.Len())
}

func TestNewSeeded(t *testing.T) {
	now := time.Date(2026, time.January, 25, 15, 0, 0, 0, time.UTC)
	s := NewSeeded(now, time.UTC)

	assert.Equal(t, 2, s.Bookings.Len())
	assert.Equal(t, 3, s.JobPosts.Len())
	assert.Equal(t, 2, s.Appointments.Len())
	assert.Equal(t, 3, s.Businesses.Len())
	assert.Equal(t, 3, s.Providers.Len())
	assert.Equal(t, 2, s.JobListings.Len())
	assert.Equal(t, 6, s.Threads.Len())
	assert.Equal(t, 18, s.Messages.Len())
	assert.Equal(t, 3, s.Notifications.Len())

	p, ok := s.Providers.Get("b2")
	require.True(t, ok)
	require.NotNil(t, p.HourlyRate)
	assert.Equal(t, 60.0, *p.HourlyRate)

	jp3, _ := s.JobPosts.Get("jp3")
	assert.Equal(t, model.JobPostFilled, jp3.Status)

	alex, _ := s.Threads.Get("1")
	assert.Equal(t, "10:30 AM", model.MessageTimeLabel(alex.LastMessageAt, now))
	nathan, _ := s.Threads.Get("3")
	assert.Equal(t, "Yesterday", model.MessageTimeLabel(nathan.LastMessageAt, now))
}

func TestNew_IsEmptyAndIndependent(t *testing.T) {
	a, b := New(), New()
	a.Bookings.Append(model.Booking{ID: "x"})

	assert.Equal(t, 1, a.Bookings.Len())
	assert.Equal(t, 0, b.Bookings.Len())
}
