package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/julienschmidt/httprouter"

	"handyhub/internal/health"
	"handyhub/pkg/config"
	"handyhub/pkg/contracts"
	"handyhub/pkg/middleware"
)

type shutdownHook struct {
	name string
	fn   func() error
}

type Application struct {
	cfg              *config.Config
	server           *http.Server
	idempotencyStore *middleware.InMemoryIdempotencyStore
	rateLimiter      *middleware.ClientRateLimiter
	health           *health.Handler
	healthHandler    http.Handler
	appHandler       http.Handler
	hooks            []shutdownHook
}

func NewApplication(cfg *config.Config) *Application {
	return &Application{cfg: cfg}
}

// SetApp mounts the health endpoints and every domain handler.
func (a *Application) SetApp(healthHandler *health.Handler, handlers ...contracts.Handler) {
	a.setHealthHandler(healthHandler)
	a.setAppHandler(handlers...)
	a.setAppServer()
}

// OnShutdown registers fn to run after the server stops, in registration order.
func (a *Application) OnShutdown(name string, fn func() error) {
	a.hooks = append(a.hooks, shutdownHook{name: name, fn: fn})
}

// Handler returns the fully wrapped root handler.
func (a *Application) Handler() http.Handler {
	return a.server.Handler
}

// StopWorkers ends the idempotency and rate-limit cleanup loops.
func (a *Application) StopWorkers() {
	a.idempotencyStore.Stop()
	a.rateLimiter.Stop()
}

func (a *Application) setHealthHandler(h *health.Handler) {
	healthRouter := httprouter.New()
	h.RegisterRoutes(healthRouter)
	a.health = h

	var healthHTTPHandler http.Handler = healthRouter
	healthHTTPHandler = middleware.RequestLogging(a.cfg.Log)(healthHTTPHandler)
	healthHTTPHandler = middleware.Recovery(a.cfg.Log)(healthHTTPHandler)
	a.healthHandler = healthHTTPHandler
	a.cfg.Log.Info("Health endpoints configured with minimal middleware (Recovery + Logging only)")
}

func (a *Application) setAppHandler(handlers ...contracts.Handler) {
	appRouter := httprouter.New()
	for _, h := range handlers {
		h.RegisterRoutes(appRouter)
	}

	a.idempotencyStore = middleware.NewInMemoryIdempotencyStore(a.cfg.IdempotencyTTL)
	a.rateLimiter = middleware.NewClientRateLimiter(
		a.cfg.RateLimitRequests,
		a.cfg.RateLimitWindow,
		middleware.DefaultClientExtractor,
		a.cfg.Log,
	)

	var appHTTPHandler http.Handler = appRouter
	appHTTPHandler = middleware.Idempotency(a.idempotencyStore, middleware.DefaultIdempotencyHeader)(appHTTPHandler)
	appHTTPHandler = middleware.RequestTimeout(a.cfg.RequestTimeout)(appHTTPHandler)
	appHTTPHandler = middleware.ClientRateLimit(a.rateLimiter)(appHTTPHandler)
	appHTTPHandler = middleware.ContentTypeValidation(a.cfg.Log)(appHTTPHandler)
	appHTTPHandler = middleware.MaxRequestSize(int64(a.cfg.MaxRequestSize))(appHTTPHandler)
	appHTTPHandler = middleware.RequestLogging(a.cfg.Log)(appHTTPHandler)
	appHTTPHandler = middleware.Recovery(a.cfg.Log)(appHTTPHandler)
	a.appHandler = appHTTPHandler
	a.cfg.Log.Info("Application endpoints configured with full middleware stack", "handlers", len(handlers))
}

func (a *Application) setAppServer() {
	mux := http.NewServeMux()
	mux.Handle("/health", a.healthHandler)
	mux.Handle("/ready", a.healthHandler)
	mux.Handle("/", a.appHandler)

	a.server = &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      mux,
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
		IdleTimeout:  a.cfg.IdleTimeout,
	}

	a.cfg.Log.Info("HTTP server configured", "port", a.cfg.Port)
}

func (a *Application) Run() {
	serverErrors := make(chan error, 1)

	go func() {
		a.cfg.Log.Info("Starting HTTP server", "address", a.server.Addr)
		serverErrors <- a.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		a.cfg.Log.Fatal("HTTP server failed", "error", err)

	case sig := <-shutdown:
		a.cfg.Log.Info("Shutdown signal received", "signal", sig)
		a.gracefulShutdown()
	}
}

func (a *Application) gracefulShutdown() {
	a.cfg.Log.Info("Starting graceful shutdown...")
	a.health.Drain()

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.cfg.Log.Error("Server shutdown failed", "error", err)
		if err := a.server.Close(); err != nil {
			a.cfg.Log.Fatal("Could not stop server gracefully", "error", err)
		}
	}

	a.cfg.Log.Info("Stopping background workers...")
	a.StopWorkers()
	for _, h := range a.hooks {
		if err := h.fn(); err != nil {
			a.cfg.Log.Error("Shutdown hook failed", "hook", h.name, "error", err)
		}
	}
	a.cfg.Log.Info("Background workers stopped")

	a.cfg.Log.Info("Server stopped gracefully")
}
