// ABOUTME: HTTP API surface over the travel service facade
// ABOUTME: Thin decode-call-encode handlers, no business logic
package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/creative-h/agentQ-Travel-Planner/internal/catalog"
	"github.com/creative-h/agentQ-Travel-Planner/internal/config"
	"github.com/creative-h/agentQ-Travel-Planner/internal/logging"
	"github.com/creative-h/agentQ-Travel-Planner/internal/service"
)

// Server exposes the travel service over HTTP.
type Server struct {
	svc     *service.TravelService
	catalog *catalog.Catalog
	cfg     config.ServerConfig
	logger  zerolog.Logger
}

// NewServer creates an HTTP server around the travel service.
func NewServer(svc *service.TravelService, cat *catalog.Catalog, cfg config.ServerConfig) *Server {
	return &Server{
		svc:     svc,
		catalog: cat,
		cfg:     cfg,
		logger:  logging.Component("api"),
	}
}

// Addr returns the host:port the server should listen on.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
}

// Handler builds the chi router with all routes and middleware.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(s.requestID)
	r.Use(s.accessLog)

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/recommendations", s.handleRecommendations)
		r.Get("/destinations", s.handleDestinations)
		r.Get("/destinations/similar", s.handleSimilar)
	})

	return r
}
