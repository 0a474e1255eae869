// Package server composes the gateway's HTTP process: the chi router
// carrying the REST routes, the GraphQL endpoint, health and metrics, and
// the server lifecycle around them.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mealgrid/gateway/errors"
	"github.com/mealgrid/gateway/gateway"
	"github.com/mealgrid/gateway/gateway/graphql"
	"github.com/mealgrid/gateway/gateway/rest"
)

// requestIDHeader carries the caller-supplied correlation ID; one is
// generated when absent.
const requestIDHeader = "X-Request-ID"

// Options carries the server's address and its wired dependencies.
type Options struct {
	ListenAddr  string
	Orders      gateway.OrderBackend
	Restaurants gateway.RestaurantBackend
	Events      gateway.EventPublisher
	Logger      *slog.Logger
}

// Server manages the HTTP server hosting both protocol surfaces.
type Server struct {
	opts       Options
	logger     *slog.Logger
	httpServer *http.Server
	router     chi.Router

	// Lifecycle
	running  bool
	mu       sync.RWMutex
	stopChan chan struct{}
	stopOnce sync.Once
}

// New creates the gateway server and wires the surfaces onto the router.
func New(opts Options) (*Server, error) {
	if opts.Orders == nil || opts.Restaurants == nil || opts.Events == nil {
		return nil, errors.WrapInvalid(fmt.Errorf("missing dependency"), "Server", "New",
			"order backend, restaurant backend, and event publisher are required")
	}
	if opts.ListenAddr == "" {
		return nil, errors.WrapInvalid(errors.ErrMissingConfig, "Server", "New", "listen address")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	s := &Server{
		opts:     opts,
		logger:   opts.Logger.With("component", "gateway-server"),
		stopChan: make(chan struct{}),
	}

	resolver := graphql.NewResolver(opts.Orders, opts.Restaurants, opts.Events, opts.Logger)
	schema, err := graphql.NewSchema(resolver)
	if err != nil {
		return nil, errors.WrapInternal(err, "Server", "New", "schema parse")
	}

	r := chi.NewRouter()
	r.Use(s.requestIDMiddleware)

	rest.NewHandler(opts.Orders, opts.Logger).RegisterRoutes(r)
	r.Handle("/graphql", graphql.NewHandler(schema))
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	s.router = r
	s.httpServer = &http.Server{
		Addr:         opts.ListenAddr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler exposes the composed router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the HTTP server until the context is cancelled or Stop is
// called. The ready channel is closed once the server starts listening.
func (s *Server) Start(ctx context.Context, ready chan<- struct{}) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errors.WrapInternal(errors.ErrAlreadyStarted, "Server", "Start", "start")
	}
	s.running = true
	server := s.httpServer
	s.mu.Unlock()

	errChan := make(chan error, 1)
	go func() {
		defer close(errChan)
		s.logger.Info("gateway listening", "address", server.Addr)

		// ListenAndServe blocks right after binding the socket, so ready
		// is signalled immediately before the call.
		if ready != nil {
			close(ready)
		}

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			select {
			case errChan <- err:
			case <-ctx.Done():
			case <-s.stopChan:
			}
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("context cancelled, shutting down")
		return s.Stop(30 * time.Second)

	case <-s.stopChan:
		return nil

	case err := <-errChan:
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
		return errors.WrapUnavailable(err, "Server", "Start", "serve")
	}
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop(timeout time.Duration) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	server := s.httpServer
	s.mu.Unlock()

	s.stopOnce.Do(func() {
		close(s.stopChan)
	})

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
		return errors.WrapUnavailable(err, "Server", "Stop", "shutdown")
	}

	s.mu.Lock()
	s.running = false
	s.mu.Unlock()

	s.logger.Info("gateway stopped")
	return nil
}

// IsRunning reports whether the server is accepting connections.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// handleHealth reports per-dependency connection state. The gateway itself
// is healthy even when every dependency is degraded; degraded state is
// surfaced per component so operators can see which links never came up.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	body := map[string]string{
		"status":             "ok",
		"order_service":      componentState(s.opts.Orders),
		"restaurant_service": componentState(s.opts.Restaurants),
		"bus":                componentState(s.opts.Events),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("health response write failed", "error", err)
	}
}

type degradable interface {
	Degraded() bool
}

func componentState(dep any) string {
	if d, ok := dep.(degradable); ok && d.Degraded() {
		return "degraded"
	}
	return "connected"
}

// requestIDMiddleware propagates the caller's correlation ID or mints one.
func (s *Server) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}
