package service

import (
	"context"
	"errors"

	jobpostserrors "handyhub/internal/jobposts/errors"
	"handyhub/internal/jobposts/repository"
	"handyhub/internal/jobposts/validator"
	"handyhub/pkg/config"
	apperrors "handyhub/pkg/errors"
	"handyhub/pkg/events"
	"handyhub/pkg/model"
	"handyhub/pkg/search"
	"handyhub/pkg/validation"

	"github.com/google/uuid"
)

type JobPostService interface {
	Create(ctx context.Context, consumerID string, input model.JobPostInput) (*model.JobPostView, error)
	GetByID(ctx context.Context, id string) (*model.JobPostView, error)
	// ListByConsumer returns the consumer's posts, narrowed to one exact
	// status when status is not blank.
	ListByConsumer(ctx context.Context, consumerID, status string) ([]model.JobPostView, error)
	UpdateStatus(ctx context.Context, id string, change model.StatusChange) (*model.JobPostView, error)
}

type jobPostService struct {
	repo      repository.JobPostRepository
	validator *validator.JobPostValidator
	publisher events.Publisher
	cfg       *config.Config
}

func NewJobPostService(
	repo repository.JobPostRepository,
	validator *validator.JobPostValidator,
	publisher events.Publisher,
	cfg *config.Config,
) JobPostService {
	return &jobPostService{
		repo:      repo,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *jobPostService) Create(ctx context.Context, consumerID string, input model.JobPostInput) (*model.JobPostView, error) {
	if consumerID == "" {
		return nil, apperrors.InvalidInput("Consumer ID cannot be empty")
	}

	post, err := s.validator.Validate(input)
	if err != nil {
		s.cfg.Log.Warn("Job post validation failed", "consumer_id", consumerID, "error", err)
		return nil, validation.ToAppError(err)
	}

	post.ID = uuid.New().String()
	post.ConsumerID = consumerID
	post.Status = model.JobPostOpen
	post.CreatedAt = s.cfg.Now()

	if err := s.repo.Create(ctx, post); err != nil {
		s.cfg.Log.Error("Failed to create job post", "error", err)
		return nil, apperrors.Internal("Failed to create job post", err)
	}

	s.cfg.Log.Info("Job post created successfully",
		"id", post.ID,
		"consumer_id", consumerID,
		"category", post.Category,
	)
	events.Emit(ctx, s.publisher, s.cfg.Log, events.Event{
		Type:       events.JobPostCreated,
		Key:        post.ID,
		Payload:    post,
		OccurredAt: post.CreatedAt,
	})

	view := model.NewJobPostView(post)
	return &view, nil
}

func (s *jobPostService) GetByID(ctx context.Context, id string) (*model.JobPostView, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Job post ID cannot be empty")
	}

	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, jobpostserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Job post", id)
		}
		return nil, apperrors.Internal("Failed to retrieve job post", err)
	}

	view := model.NewJobPostView(post)
	return &view, nil
}

func (s *jobPostService) ListByConsumer(ctx context.Context, consumerID, status string) ([]model.JobPostView, error) {
	if consumerID == "" {
		return nil, apperrors.InvalidInput("Consumer ID cannot be empty")
	}
	wanted, err := s.validator.ValidateStatusFilter(status)
	if err != nil {
		return nil, validation.ToAppError(err)
	}

	posts, err := s.repo.FindByConsumer(ctx, consumerID)
	if err != nil {
		s.cfg.Log.Error("Failed to list job posts", "consumer_id", consumerID, "error", err)
		return nil, apperrors.Internal("Failed to retrieve job posts", err)
	}
	if wanted != "" {
		posts = search.Where(posts, search.Equals(func(p model.JobPost) model.JobPostStatus { return p.Status }, wanted))
	}

	views := make([]model.JobPostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, model.NewJobPostView(p))
	}
	return views, nil
}

func (s *jobPostService) UpdateStatus(ctx context.Context, id string, change model.StatusChange) (*model.JobPostView, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Job post ID cannot be empty")
	}
	next, err := s.validator.ValidateStatus(change)
	if err != nil {
		s.cfg.Log.Warn("Job post status validation failed", "id", id, "error", err)
		return nil, validation.ToAppError(err)
	}

	updated, previous, err := s.repo.UpdateStatus(ctx, id, next)
	if err != nil {
		switch {
		case errors.Is(err, jobpostserrors.ErrNotFound):
			return nil, apperrors.NotFoundWithID("Job post", id)
		case errors.Is(err, jobpostserrors.ErrInvalidTransition):
			s.cfg.Log.Warn("Job post status transition rejected", "id", id, "from", previous, "to", next)
			return nil, apperrors.Conflict(err.Error()).WithDetails(map[string]any{
				"from": string(previous),
				"to":   string(next),
			})
		default:
			s.cfg.Log.Error("Failed to update job post status", "id", id, "error", err)
			return nil, apperrors.Internal("Failed to update job post status", err)
		}
	}

	s.cfg.Log.Info("Job post status updated", "id", id, "from", previous, "to", updated.Status)
	events.Emit(ctx, s.publisher, s.cfg.Log, events.Event{
		Type:       events.JobPostStatusChanged,
		Key:        id,
		Payload:    events.StatusChange{ID: id, From: string(previous), To: string(updated.Status)},
		OccurredAt: s.cfg.Now(),
	})

	view := model.NewJobPostView(updated)
	return &view, nil
}
