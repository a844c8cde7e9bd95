package repository

import (
	"context"
	"errors"
	"sync"

	messagingerrors "handyhub/internal/messaging/errors"
	"handyhub/internal/store"
	"handyhub/pkg/model"
	"handyhub/pkg/search"
)

type ThreadRepository interface {
	// FindAll returns threads in insertion order.
	FindAll(ctx context.Context) ([]model.Thread, error)
	FindByID(ctx context.Context, id string) (model.Thread, error)
	FindByUsername(ctx context.Context, username string) (model.Thread, bool, error)
	Create(ctx context.Context, thread model.Thread) error
	FindMessages(ctx context.Context, threadID string) ([]model.Message, error)
	// AppendMessage stores msg and moves the thread's preview and
	// last-message time to it.
	AppendMessage(ctx context.Context, msg model.Message) (model.Thread, error)
}

type memoryThreadRepository struct {
	threads  *store.Collection[model.Thread]
	messages *store.Collection[model.Message]

	// appendMu keeps a message and its thread update together.
	appendMu sync.Mutex
}

func NewMemoryThreadRepository(s *store.Store) ThreadRepository {
	return &memoryThreadRepository{
		threads:  s.Threads,
		messages: s.Messages,
	}
}

func (r *memoryThreadRepository) FindAll(ctx context.Context) ([]model.Thread, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.threads.All(), nil
}

func (r *memoryThreadRepository) FindByID(ctx context.Context, id string) (model.Thread, error) {
	if err := ctx.Err(); err != nil {
		return model.Thread{}, err
	}
	thread, ok := r.threads.Get(id)
	if !ok {
		return model.Thread{}, messagingerrors.ErrThreadNotFound
	}
	return thread, nil
}

func (r *memoryThreadRepository) FindByUsername(ctx context.Context, username string) (model.Thread, bool, error) {
	if err := ctx.Err(); err != nil {
		return model.Thread{}, false, err
	}
	matches := search.Where(r.threads.All(),
		search.Equals(func(t model.Thread) string { return t.Username }, username))
	if len(matches) == 0 {
		return model.Thread{}, false, nil
	}
	return matches[0], true, nil
}

func (r *memoryThreadRepository) Create(ctx context.Context, thread model.Thread) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.threads.Append(thread)
	return nil
}

func (r *memoryThreadRepository) FindMessages(ctx context.Context, threadID string) ([]model.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return search.Where(r.messages.All(),
		search.Equals(func(m model.Message) string { return m.ThreadID }, threadID)), nil
}

func (r *memoryThreadRepository) AppendMessage(ctx context.Context, msg model.Message) (model.Thread, error) {
	if err := ctx.Err(); err != nil {
		return model.Thread{}, err
	}

	r.appendMu.Lock()
	defer r.appendMu.Unlock()

	thread, err := r.threads.Update(msg.ThreadID, func(t *model.Thread) error {
		t.Preview = msg.Text
		t.LastMessageAt = msg.SentAt
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return model.Thread{}, messagingerrors.ErrThreadNotFound
	}
	if err != nil {
		return model.Thread{}, err
	}
	r.messages.Append(msg)
	return thread, nil
}
