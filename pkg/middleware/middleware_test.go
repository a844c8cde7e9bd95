package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"handyhub/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Output: &bytes.Buffer{}, Service: "test"})
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
}

func TestRequestLogging_AssignsRequestID(t *testing.T) {
	var seen string
	h := RequestLogging(testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	req.Header.Set(RequestIDHeader, "client-supplied")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "client-supplied", seen)
}

func TestContentTypeValidation(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		body        string
		contentType string
		wantStatus  int
	}{
		{name: "json post", method: http.MethodPost, body: `{}`, contentType: "application/json; charset=utf-8", wantStatus: http.StatusOK},
		{name: "form post", method: http.MethodPost, body: `a=b`, contentType: "application/x-www-form-urlencoded", wantStatus: http.StatusUnsupportedMediaType},
		{name: "missing header", method: http.MethodPatch, body: `{}`, wantStatus: http.StatusUnsupportedMediaType},
		{name: "bodyless post", method: http.MethodPost, wantStatus: http.StatusOK},
		{name: "get ignored", method: http.MethodGet, wantStatus: http.StatusOK},
	}

	h := ContentTypeValidation(testLogger())(okHandler())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			req := httptest.NewRequest(tt.method, "/api/v1/bookings", body)
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRecovery(t *testing.T) {
	h := Recovery(testLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestClientRateLimiter(t *testing.T) {
	limiter := NewClientRateLimiter(2, time.Minute, nil, testLogger())
	defer limiter.Stop()

	now := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	assert.True(t, limiter.Allow("a"))
	assert.True(t, limiter.Allow("a"))
	assert.False(t, limiter.Allow("a"))
	assert.True(t, limiter.Allow("b"))

	now = now.Add(time.Minute)
	assert.True(t, limiter.Allow("a"))
}

func TestClientRateLimit_Middleware(t *testing.T) {
	limiter := NewClientRateLimiter(1, time.Minute, nil, testLogger())
	defer limiter.Stop()
	h := ClientRateLimit(limiter)(okHandler())

	newReq := func() *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/threads", nil)
		req.Header.Set(ClientIDHeader, "client-1")
		return req
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, newReq())
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, newReq())
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "RATE_LIMITED")
}

func TestDefaultClientExtractor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.7:5123"
	assert.Equal(t, "10.0.0.7", DefaultClientExtractor(req))

	req.Header.Set(ClientIDHeader, "mobile-app")
	assert.Equal(t, "mobile-app", DefaultClientExtractor(req))
}

func TestRequestTimeout(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	h := RequestTimeout(20 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
		_, _ = w.Write([]byte("late"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "TIMEOUT")
}

func TestRequestTimeout_PanicPropagates(t *testing.T) {
	h := Recovery(testLogger())(RequestTimeout(time.Second)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestMaxRequestSize(t *testing.T) {
	var readErr error
	h := MaxRequestSize(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"text":"too long"}`)))
	var tooLarge *http.MaxBytesError
	assert.ErrorAs(t, readErr, &tooLarge)
}

func TestIdempotency(t *testing.T) {
	store := NewInMemoryIdempotencyStore(time.Minute)
	defer store.Stop()

	var calls atomic.Int32
	h := Idempotency(store, "")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"call":` + string(rune('0'+n)) + `}`))
	}))

	post := func(path, key string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{}`))
		req.Header.Set(DefaultIdempotencyHeader, key)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	first := post("/api/v1/bookings", "k1")
	second := post("/api/v1/bookings", "k1")
	require.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "true", second.Header().Get("Idempotent-Replay"))
	assert.Equal(t, int32(1), calls.Load())

	post("/api/v1/threads/t1/messages", "k1")
	assert.Equal(t, int32(2), calls.Load(), "same key on another path is a new request")
}
