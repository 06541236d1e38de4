// ABOUTME: Travel service facade over the recommendation and similarity engines
// ABOUTME: Converts every internal failure into a well-formed response envelope
package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/creative-h/agentQ-Travel-Planner/internal/logging"
	"github.com/creative-h/agentQ-Travel-Planner/internal/metrics"
	"github.com/creative-h/agentQ-Travel-Planner/internal/models"
	"github.com/creative-h/agentQ-Travel-Planner/internal/recommend"
)

// TravelService is the single entry point for callers. It hides the
// engine wiring and guarantees callers always receive an envelope with a
// success flag rather than a raw fault.
type TravelService struct {
	recommender *recommend.Recommender
	similarity  *recommend.SimilarityEngine
	logger      zerolog.Logger
}

// New creates a travel service over the given engines.
func New(recommender *recommend.Recommender, similarity *recommend.SimilarityEngine) *TravelService {
	return &TravelService{
		recommender: recommender,
		similarity:  similarity,
		logger:      logging.Component("travel-service"),
	}
}

// GetRecommendations returns ranked destination recommendations for the
// given interests, daily budget and visited list.
func (s *TravelService) GetRecommendations(ctx context.Context, interests []string, dailyBudget float64, previouslyVisited []string) models.RecommendationsResult {
	inputs := models.UserInputs{
		Interests:            interests,
		Budget:               dailyBudget,
		PreviousDestinations: previouslyVisited,
	}

	recommendations, err := s.recommender.Recommend(interests, dailyBudget, previouslyVisited)
	if err != nil {
		outcome := "internal_error"
		if errors.Is(err, recommend.ErrInvalidBudget) {
			outcome = "invalid_argument"
		}
		metrics.RecommendationRequests.WithLabelValues(outcome).Inc()
		s.logger.Error().Err(err).Float64("budget", dailyBudget).Msg("recommendation request failed")
		return models.RecommendationsResult{
			Success:         false,
			Error:           err.Error(),
			Recommendations: []models.ScoredDestination{},
			UserInputs:      inputs,
		}
	}

	if recommendations == nil {
		recommendations = []models.ScoredDestination{}
	}

	metrics.RecommendationRequests.WithLabelValues("success").Inc()
	s.logger.Info().Strs("interests", interests).Float64("budget", dailyBudget).
		Int("count", len(recommendations)).Msg("recommendations generated")

	return models.RecommendationsResult{
		Success:         true,
		Count:           len(recommendations),
		Recommendations: recommendations,
		UserInputs:      inputs,
	}
}

// GetSimilarDestinations returns destinations similar to the named one.
// An unknown name yields a successful empty result, not an error.
func (s *TravelService) GetSimilarDestinations(ctx context.Context, destinationName string) models.SimilarResult {
	similar, err := s.similarity.FindSimilar(ctx, destinationName)
	if err != nil {
		metrics.SimilarityRequests.WithLabelValues("internal_error").Inc()
		s.logger.Error().Err(err).Str("destination", destinationName).Msg("similarity request failed")
		return models.SimilarResult{
			Success:             false,
			TargetDestination:   destinationName,
			SimilarDestinations: []models.SimilarDestination{},
			Error:               err.Error(),
		}
	}

	outcome := "success"
	if len(similar) == 0 {
		outcome = "no_match"
	}
	metrics.SimilarityRequests.WithLabelValues(outcome).Inc()

	return models.SimilarResult{
		Success:             true,
		TargetDestination:   destinationName,
		SimilarDestinations: similar,
		Count:               len(similar),
	}
}
