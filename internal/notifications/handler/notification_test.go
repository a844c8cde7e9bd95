package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "handyhub/pkg/errors"
	"handyhub/pkg/logger"
	"handyhub/pkg/model"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockNotificationService struct {
	listFunc        func(ctx context.Context) (*model.NotificationFeed, error)
	markReadFunc    func(ctx context.Context, id string) (*model.NotificationFeed, error)
	markAllReadFunc func(ctx context.Context) (*model.NotificationFeed, error)
}

func (m *mockNotificationService) List(ctx context.Context) (*model.NotificationFeed, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return &model.NotificationFeed{}, nil
}

func (m *mockNotificationService) MarkRead(ctx context.Context, id string) (*model.NotificationFeed, error) {
	if m.markReadFunc != nil {
		return m.markReadFunc(ctx, id)
	}
	return &model.NotificationFeed{}, nil
}

func (m *mockNotificationService) MarkAllRead(ctx context.Context) (*model.NotificationFeed, error) {
	if m.markAllReadFunc != nil {
		return m.markAllReadFunc(ctx)
	}
	return &model.NotificationFeed{}, nil
}

func newRouter(svc *mockNotificationService) *httprouter.Router {
	router := httprouter.New()
	NewNotificationHandler(svc, logger.New(logger.Config{Level: "error", Output: &bytes.Buffer{}})).RegisterRoutes(router)
	return router
}

func TestList(t *testing.T) {
	router := newRouter(&mockNotificationService{
		listFunc: func(context.Context) (*model.NotificationFeed, error) {
			return &model.NotificationFeed{UnreadCount: 2, Items: []model.NotificationView{{}, {}}}, nil
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/notifications", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"unread_count":2`)
}

func TestMarkRead_RoutesID(t *testing.T) {
	var gotID string
	router := newRouter(&mockNotificationService{
		markReadFunc: func(_ context.Context, id string) (*model.NotificationFeed, error) {
			gotID = id
			if id == "404" {
				return nil, apperrors.NotFoundWithID("Notification", id)
			}
			return &model.NotificationFeed{}, nil
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/notifications/id/3/read", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "3", gotID)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/notifications/id/404/read", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMarkAllRead(t *testing.T) {
	called := false
	router := newRouter(&mockNotificationService{
		markAllReadFunc: func(context.Context) (*model.NotificationFeed, error) {
			called = true
			return &model.NotificationFeed{}, nil
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/notifications/read-all", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}
