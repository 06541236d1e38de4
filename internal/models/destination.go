// ABOUTME: Core data model for travel destinations in the catalog
// ABOUTME: Destinations are immutable after catalog construction
package models

// Destination represents a single travel destination in the catalog.
// Records are read-only once the catalog is built.
type Destination struct {
	ID            int      `json:"id" koanf:"id" validate:"gte=0"`
	Name          string   `json:"name" koanf:"name" validate:"required"`
	Description   string   `json:"description" koanf:"description"`
	BudgetLevel   string   `json:"budget_level" koanf:"budget_level" validate:"omitempty,oneof=low medium high luxury"`
	Categories    []string `json:"categories" koanf:"categories" validate:"required,min=1"`
	AvgCostPerDay float64  `json:"avg_cost_per_day" koanf:"avg_cost_per_day" validate:"gte=0"`
	BestSeasons   []string `json:"best_seasons" koanf:"best_seasons"`
	Popularity    float64  `json:"popularity" koanf:"popularity" validate:"gte=0,lte=1"`
	ImageURL      string   `json:"image_url" koanf:"image_url"`
}

// ScoredDestination is a destination projection with its match score and
// the per-component sub-scores that produced it.
type ScoredDestination struct {
	ID            int                `json:"id"`
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	BudgetLevel   string             `json:"budget_level"`
	AvgCostPerDay float64            `json:"avg_cost_per_day"`
	Score         float64            `json:"score"`
	MatchDetails  map[string]float64 `json:"match_details"`
	ImageURL      string             `json:"image_url"`
	Categories    []string           `json:"categories"`
}

// SimilarDestination is a destination projection with a similarity score
// relative to a query destination.
type SimilarDestination struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	BudgetLevel     string   `json:"budget_level"`
	SimilarityScore float64  `json:"similarity_score"`
	ImageURL        string   `json:"image_url"`
	Categories      []string `json:"categories"`
}
