package service

import (
	"context"
	"errors"
	"time"

	messagingerrors "handyhub/internal/messaging/errors"
	"handyhub/internal/messaging/repository"
	"handyhub/internal/messaging/validator"
	"handyhub/pkg/config"
	apperrors "handyhub/pkg/errors"
	"handyhub/pkg/events"
	"handyhub/pkg/model"
	"handyhub/pkg/search"
	"handyhub/pkg/validation"

	"github.com/google/uuid"
)

// OwnSenderID marks messages written by the current user.
const OwnSenderID = "me"

type MessagingService interface {
	// SearchThreads filters threads by username; a blank query returns all.
	SearchThreads(ctx context.Context, query string) ([]model.ThreadView, error)
	GetMessages(ctx context.Context, threadID string) ([]model.MessageView, error)
	SendMessage(ctx context.Context, threadID string, input model.MessageInput) (*model.MessageView, error)
	// StartThread opens a thread for a contact, or returns the existing one.
	// The bool reports whether a thread was created.
	StartThread(ctx context.Context, input model.StartThreadInput) (*model.ThreadView, bool, error)
}

type messagingService struct {
	repo      repository.ThreadRepository
	validator *validator.MessageValidator
	publisher events.Publisher
	cfg       *config.Config
}

func NewMessagingService(
	repo repository.ThreadRepository,
	validator *validator.MessageValidator,
	publisher events.Publisher,
	cfg *config.Config,
) MessagingService {
	return &messagingService{
		repo:      repo,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
	}
}

var byUsername = search.Text(func(t model.Thread) string { return t.Username })

func (s *messagingService) SearchThreads(ctx context.Context, query string) ([]model.ThreadView, error) {
	threads, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list threads", "error", err)
		return nil, apperrors.Internal("Failed to retrieve threads", err)
	}

	now := s.cfg.Now()
	matched := search.Filter(threads, query, byUsername)
	views := make([]model.ThreadView, 0, len(matched))
	for _, t := range matched {
		views = append(views, threadView(t, now))
	}
	return views, nil
}

func (s *messagingService) GetMessages(ctx context.Context, threadID string) ([]model.MessageView, error) {
	if _, err := s.findThread(ctx, threadID); err != nil {
		return nil, err
	}

	messages, err := s.repo.FindMessages(ctx, threadID)
	if err != nil {
		s.cfg.Log.Error("Failed to list messages", "thread_id", threadID, "error", err)
		return nil, apperrors.Internal("Failed to retrieve messages", err)
	}

	now := s.cfg.Now()
	views := make([]model.MessageView, 0, len(messages))
	for _, m := range messages {
		views = append(views, messageView(m, now))
	}
	return views, nil
}

func (s *messagingService) SendMessage(ctx context.Context, threadID string, input model.MessageInput) (*model.MessageView, error) {
	if threadID == "" {
		return nil, apperrors.InvalidInput("Thread ID cannot be empty")
	}
	text, err := s.validator.ValidateMessage(input)
	if err != nil {
		s.cfg.Log.Warn("Message validation failed", "thread_id", threadID, "error", err)
		return nil, validation.ToAppError(err)
	}

	now := s.cfg.Now()
	msg := model.Message{
		ID:       uuid.New().String(),
		ThreadID: threadID,
		Text:     text,
		SenderID: OwnSenderID,
		SentAt:   now,
		IsOwn:    true,
	}

	if _, err := s.repo.AppendMessage(ctx, msg); err != nil {
		if errors.Is(err, messagingerrors.ErrThreadNotFound) {
			return nil, apperrors.NotFoundWithID("Thread", threadID)
		}
		s.cfg.Log.Error("Failed to append message", "thread_id", threadID, "error", err)
		return nil, apperrors.Internal("Failed to send message", err)
	}

	s.cfg.Log.Info("Message sent", "id", msg.ID, "thread_id", threadID)
	events.Emit(ctx, s.publisher, s.cfg.Log, events.Event{
		Type:       events.MessageSent,
		Key:        threadID,
		Payload:    msg,
		OccurredAt: now,
	})

	view := messageView(msg, now)
	return &view, nil
}

func (s *messagingService) StartThread(ctx context.Context, input model.StartThreadInput) (*model.ThreadView, bool, error) {
	contact, err := s.validator.ValidateContact(input)
	if err != nil {
		s.cfg.Log.Warn("Thread contact validation failed", "error", err)
		return nil, false, validation.ToAppError(err)
	}

	now := s.cfg.Now()
	existing, found, err := s.repo.FindByUsername(ctx, contact)
	if err != nil {
		return nil, false, apperrors.Internal("Failed to look up thread", err)
	}
	if found {
		view := threadView(existing, now)
		return &view, false, nil
	}

	thread := model.Thread{
		ID:            uuid.New().String(),
		Username:      contact,
		LastMessageAt: now,
	}
	if err := s.repo.Create(ctx, thread); err != nil {
		s.cfg.Log.Error("Failed to create thread", "error", err)
		return nil, false, apperrors.Internal("Failed to start thread", err)
	}

	s.cfg.Log.Info("Thread started", "id", thread.ID)
	view := threadView(thread, now)
	return &view, true, nil
}

func (s *messagingService) findThread(ctx context.Context, id string) (model.Thread, error) {
	if id == "" {
		return model.Thread{}, apperrors.InvalidInput("Thread ID cannot be empty")
	}
	thread, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, messagingerrors.ErrThreadNotFound) {
			return model.Thread{}, apperrors.NotFoundWithID("Thread", id)
		}
		return model.Thread{}, apperrors.Internal("Failed to retrieve thread", err)
	}
	return thread, nil
}

func threadView(t model.Thread, now time.Time) model.ThreadView {
	return model.ThreadView{
		Thread:           t,
		LastMessageLabel: model.MessageTimeLabel(t.LastMessageAt, now),
	}
}

func messageView(m model.Message, now time.Time) model.MessageView {
	return model.MessageView{
		Message:   m,
		TimeLabel: model.MessageTimeLabel(m.SentAt, now),
	}
}
