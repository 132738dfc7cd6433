// Package api FreyjaLink REST API
//
// Links are addressed by the text form of their handle. A link's targets are
// returned in stored order.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ssargent/freyjalink/pkg/handle"
	"github.com/ssargent/freyjalink/pkg/logging"
)

// Server holds the API server state
type Server struct {
	store   LinkStore
	parser  handle.Parser
	config  ServerConfig
	metrics *Metrics
	logger  *slog.Logger
}

// NewServer creates a new API server
func NewServer(store LinkStore, parser handle.Parser, config ServerConfig, metrics *Metrics, logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.Discard()
	}
	if metrics == nil {
		metrics = NewMetrics(prometheus.NewRegistry())
	}
	return &Server{
		store:   store,
		parser:  parser,
		config:  config,
		metrics: metrics,
		logger:  logger,
	}
}

// Router builds the HTTP routes. Metrics are served from gatherer.
func (s *Server) Router(gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(apiKeyMiddleware(s.config.APIKey))

		r.Get("/health", s.metrics.InstrumentHandler("GET", "/api/v1/health", s.handleHealth))

		r.Post("/links", s.metrics.InstrumentHandler("POST", "/api/v1/links", s.handleCreateLink))
		r.Get("/links/{handle}", s.metrics.InstrumentHandler("GET", "/api/v1/links/{handle}", s.handleGetLink))
		r.Put("/links/{handle}", s.metrics.InstrumentHandler("PUT", "/api/v1/links/{handle}", s.handlePutLink))
		r.Delete("/links/{handle}", s.metrics.InstrumentHandler("DELETE", "/api/v1/links/{handle}", s.handleDeleteLink))
	})

	return r
}

// StartServer serves the API until ctx is cancelled, then shuts down gracefully
func StartServer(ctx context.Context, s *Server, gatherer prometheus.Gatherer) error {
	addr := fmt.Sprintf("%s:%d", s.config.Bind, s.config.Port)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Router(gatherer),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting FreyjaLink REST API server", "addr", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down REST API server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}
