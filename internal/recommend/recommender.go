// ABOUTME: Ranks the destination catalog against a user's preferences
// ABOUTME: Weighted multi-factor scoring with an admission threshold
package recommend

import (
	"errors"
	"sort"

	"github.com/rs/zerolog"

	"github.com/creative-h/agentQ-Travel-Planner/internal/catalog"
	"github.com/creative-h/agentQ-Travel-Planner/internal/config"
	"github.com/creative-h/agentQ-Travel-Planner/internal/logging"
	"github.com/creative-h/agentQ-Travel-Planner/internal/models"
)

// ErrInvalidBudget reports a non-positive daily budget, which is a
// contract violation on the caller's side.
var ErrInvalidBudget = errors.New("daily budget must be positive")

// Recommender computes ranked destination recommendations over an
// immutable catalog. Safe for concurrent use.
type Recommender struct {
	catalog    *catalog.Catalog
	weights    Weights
	minScore   float64
	maxResults int
	logger     zerolog.Logger
}

// NewRecommender creates a recommender over the given catalog.
func NewRecommender(cat *catalog.Catalog, cfg config.RecommendationConfig) *Recommender {
	weights := Weights{
		Budget:     cfg.BudgetWeight,
		Interest:   cfg.InterestWeight,
		Popularity: cfg.PopularityWeight,
	}
	if weights.Budget == 0 && weights.Interest == 0 && weights.Popularity == 0 {
		weights = DefaultWeights()
	}

	maxResults := cfg.MaxRecommendations
	if maxResults <= 0 {
		maxResults = 5
	}

	return &Recommender{
		catalog:    cat,
		weights:    weights,
		minScore:   cfg.MinScore,
		maxResults: maxResults,
		logger:     logging.Component("recommender"),
	}
}

// Recommend scores every non-visited catalog destination against the
// user's interests and daily budget, drops those under the admission
// threshold and returns the top results sorted by score descending
// (ties by catalog id ascending).
//
// With no interests the scoring model is skipped entirely and the most
// popular destinations are returned instead.
func (r *Recommender) Recommend(interests []string, dailyBudget float64, previouslyVisited []string) ([]models.ScoredDestination, error) {
	if dailyBudget <= 0 {
		return nil, ErrInvalidBudget
	}

	if len(interests) == 0 {
		r.logger.Warn().Msg("no user interests provided, returning popular destinations")
		return r.popularDestinations(), nil
	}

	visited := make(map[string]struct{}, len(previouslyVisited))
	for _, name := range previouslyVisited {
		visited[name] = struct{}{}
	}

	var scored []models.ScoredDestination
	for _, dest := range r.catalog.All() {
		if _, seen := visited[dest.Name]; seen {
			continue
		}

		budget := budgetScore(dailyBudget, dest.AvgCostPerDay)
		interest := interestScore(interests, dest.Categories)
		total := r.weights.Budget*budget + r.weights.Interest*interest + r.weights.Popularity*dest.Popularity

		if total < r.minScore {
			continue
		}

		scored = append(scored, models.ScoredDestination{
			ID:            dest.ID,
			Name:          dest.Name,
			Description:   dest.Description,
			BudgetLevel:   dest.BudgetLevel,
			AvgCostPerDay: dest.AvgCostPerDay,
			Score:         total,
			MatchDetails: map[string]float64{
				"budget_match":   round2(budget),
				"interest_match": round2(interest),
			},
			ImageURL:   dest.ImageURL,
			Categories: dest.Categories,
		})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].ID < scored[j].ID
	})

	if len(scored) > r.maxResults {
		scored = scored[:r.maxResults]
	}
	for i := range scored {
		scored[i].Score = round2(scored[i].Score)
	}
	return scored, nil
}

// popularDestinations returns the top destinations by static popularity,
// ties broken by catalog id ascending. The admission threshold does not
// apply on this path.
func (r *Recommender) popularDestinations() []models.ScoredDestination {
	all := r.catalog.All()
	sort.Slice(all, func(i, j int) bool {
		if all[i].Popularity != all[j].Popularity {
			return all[i].Popularity > all[j].Popularity
		}
		return all[i].ID < all[j].ID
	})

	if len(all) > r.maxResults {
		all = all[:r.maxResults]
	}

	popular := make([]models.ScoredDestination, 0, len(all))
	for _, dest := range all {
		popular = append(popular, models.ScoredDestination{
			ID:            dest.ID,
			Name:          dest.Name,
			Description:   dest.Description,
			BudgetLevel:   dest.BudgetLevel,
			AvgCostPerDay: dest.AvgCostPerDay,
			Score:         round2(dest.Popularity),
			MatchDetails: map[string]float64{
				"popularity": round2(dest.Popularity),
			},
			ImageURL:   dest.ImageURL,
			Categories: dest.Categories,
		})
	}
	return popular
}
