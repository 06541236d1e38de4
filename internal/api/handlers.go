// ABOUTME: HTTP handlers for recommendations, similarity and catalog listing
// ABOUTME: Input shape validation here, scoring semantics in the engines
package api

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"github.com/creative-h/agentQ-Travel-Planner/internal/metrics"
	"github.com/creative-h/agentQ-Travel-Planner/internal/models"
)

var validate = validator.New()

// RecommendationsRequest is the POST /api/v1/recommendations body.
type RecommendationsRequest struct {
	Interests         []string `json:"interests"`
	DailyBudget       float64  `json:"daily_budget" validate:"required,gt=0"`
	PreviouslyVisited []string `json:"previously_visited"`
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() {
		metrics.APIRequestDuration.WithLabelValues(r.Method, "/api/v1/recommendations").Observe(time.Since(start).Seconds())
	}()

	var req RecommendationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondJSON(w, http.StatusBadRequest, models.RecommendationsResult{
			Success:         false,
			Error:           "invalid request body: " + err.Error(),
			Recommendations: []models.ScoredDestination{},
		})
		return
	}
	if err := validate.Struct(&req); err != nil {
		s.respondJSON(w, http.StatusBadRequest, models.RecommendationsResult{
			Success:         false,
			Error:           "daily_budget must be a positive number",
			Recommendations: []models.ScoredDestination{},
			UserInputs: models.UserInputs{
				Interests: req.Interests,
				Budget:    req.DailyBudget,
			},
		})
		return
	}

	result := s.svc.GetRecommendations(r.Context(), req.Interests, req.DailyBudget, req.PreviouslyVisited)

	status := http.StatusOK
	if !result.Success {
		status = http.StatusInternalServerError
	}
	s.respondJSON(w, status, result)
}

func (s *Server) handleSimilar(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() {
		metrics.APIRequestDuration.WithLabelValues(r.Method, "/api/v1/destinations/similar").Observe(time.Since(start).Seconds())
	}()

	name := r.URL.Query().Get("name")
	if name == "" {
		s.respondJSON(w, http.StatusBadRequest, models.SimilarResult{
			Success:             false,
			Error:               "name query parameter is required",
			SimilarDestinations: []models.SimilarDestination{},
		})
		return
	}

	result := s.svc.GetSimilarDestinations(r.Context(), name)

	status := http.StatusOK
	if !result.Success {
		status = http.StatusInternalServerError
	}
	s.respondJSON(w, status, result)
}

func (s *Server) handleDestinations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() {
		metrics.APIRequestDuration.WithLabelValues(r.Method, "/api/v1/destinations").Observe(time.Since(start).Seconds())
	}()

	destinations := s.catalog.All()
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"count":        len(destinations),
		"destinations": destinations,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
