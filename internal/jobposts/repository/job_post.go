package repository

import (
	"context"
	"errors"
	"fmt"

	jobpostserrors "handyhub/internal/jobposts/errors"
	"handyhub/internal/store"
	"handyhub/pkg/model"
	"handyhub/pkg/search"
)

type JobPostRepository interface {
	Create(ctx context.Context, post model.JobPost) error
	FindByID(ctx context.Context, id string) (model.JobPost, error)
	// FindByConsumer returns the consumer's posts in creation order.
	FindByConsumer(ctx context.Context, consumerID string) ([]model.JobPost, error)
	UpdateStatus(ctx context.Context, id string, next model.JobPostStatus) (model.JobPost, model.JobPostStatus, error)
}

type memoryJobPostRepository struct {
	posts *store.Collection[model.JobPost]
}

func NewMemoryJobPostRepository(s *store.Store) JobPostRepository {
	return &memoryJobPostRepository{posts: s.JobPosts}
}

func (r *memoryJobPostRepository) Create(ctx context.Context, post model.JobPost) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.posts.Append(post)
	return nil
}

func (r *memoryJobPostRepository) FindByID(ctx context.Context, id string) (model.JobPost, error) {
	if err := ctx.Err(); err != nil {
		return model.JobPost{}, err
	}
	post, ok := r.posts.Get(id)
	if !ok {
		return model.JobPost{}, jobpostserrors.ErrNotFound
	}
	return post, nil
}

func (r *memoryJobPostRepository) FindByConsumer(ctx context.Context, consumerID string) ([]model.JobPost, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	byConsumer := search.Equals(func(p model.JobPost) string { return p.ConsumerID }, consumerID)
	return search.Where(r.posts.All(), byConsumer), nil
}

func (r *memoryJobPostRepository) UpdateStatus(ctx context.Context, id string, next model.JobPostStatus) (model.JobPost, model.JobPostStatus, error) {
	if err := ctx.Err(); err != nil {
		return model.JobPost{}, "", err
	}

	var previous model.JobPostStatus
	updated, err := r.posts.Update(id, func(p *model.JobPost) error {
		previous = p.Status
		if !p.Status.CanTransitionTo(next) {
			return fmt.Errorf("%w: %w", jobpostserrors.ErrInvalidTransition, &model.TransitionError{
				Entity: "job post",
				From:   string(p.Status),
				To:     string(next),
			})
		}
		p.Status = next
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return model.JobPost{}, "", jobpostserrors.ErrNotFound
	}
	if err != nil {
		return model.JobPost{}, previous, err
	}
	return updated, previous, nil
}
