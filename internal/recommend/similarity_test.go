// ABOUTME: Unit tests for the similarity engine and its two rankers
// ABOUTME: Cosine ranking, Jaccard fallback, soft miss and mode selection
package recommend

import (
	"context"
	"math"
	"testing"

	"github.com/creative-h/agentQ-Travel-Planner/internal/catalog"
	"github.com/creative-h/agentQ-Travel-Planner/internal/config"
	"github.com/creative-h/agentQ-Travel-Planner/internal/models"
)

func testSimilarityEngine(t *testing.T, producer EmbeddingProducer) *SimilarityEngine {
	t.Helper()
	cat := testCatalog(t)
	cache := NewEmbeddingCache(cat, producer)
	return NewSimilarityEngine(cat, cache, config.Default().Similarity)
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a        []float64
		b        []float64
		expected float64
		delta    float64
	}{
		{"identical", []float64{1, 0, 0}, []float64{1, 0, 0}, 1.0, 1e-9},
		{"orthogonal", []float64{1, 0, 0}, []float64{0, 1, 0}, 0.0, 1e-9},
		{"opposite", []float64{1, 0, 0}, []float64{-1, 0, 0}, -1.0, 1e-9},
		{"similar", []float64{1, 0, 0}, []float64{0.9, 0.1, 0}, 0.9937, 1e-3},
		{"length mismatch", []float64{1, 0}, []float64{1, 0, 0}, 0.0, 1e-9},
		{"zero vector", []float64{0, 0, 0}, []float64{1, 0, 0}, 0.0, 1e-9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.expected) > tt.delta {
				t.Errorf("cosineSimilarity(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestFindSimilar_EmbeddingPath(t *testing.T) {
	producer := &fakeProducer{vectors: map[string][]float64{
		"Alphaville": {1, 0, 0},
		"Betatown":   {0, 1, 0},
		"Gammaport":  {0.9, 0.1, 0},
	}}
	engine := testSimilarityEngine(t, producer)

	results, err := engine.FindSimilar(context.Background(), "Alphaville")
	if err != nil {
		t.Fatalf("FindSimilar failed: %v", err)
	}

	// The embedding path ranks every candidate, however dissimilar.
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].Name != "Gammaport" {
		t.Errorf("Expected Gammaport first, got %s", results[0].Name)
	}
	if results[0].SimilarityScore != 0.99 {
		t.Errorf("Expected similarity 0.99, got %v", results[0].SimilarityScore)
	}
	if results[1].Name != "Betatown" || results[1].SimilarityScore != 0.0 {
		t.Errorf("Expected Betatown with similarity 0.0, got %s with %v", results[1].Name, results[1].SimilarityScore)
	}

	if mode := engine.Mode(); mode != "embedding" {
		t.Errorf("Expected embedding mode, got %s", mode)
	}
}

func TestFindSimilar_TargetResolutionIsSubstring(t *testing.T) {
	producer := &fakeProducer{vectors: map[string][]float64{
		"Alphaville": {1, 0, 0},
		"Betatown":   {0, 1, 0},
		"Gammaport":  {0.9, 0.1, 0},
	}}
	engine := testSimilarityEngine(t, producer)

	// "alpha" resolves to Alphaville case-insensitively.
	results, err := engine.FindSimilar(context.Background(), "alpha")
	if err != nil {
		t.Fatalf("FindSimilar failed: %v", err)
	}
	if len(results) == 0 || results[0].Name != "Gammaport" {
		t.Errorf("Substring target resolution failed: %+v", results)
	}
}

func TestFindSimilar_UnknownNameIsSoftMiss(t *testing.T) {
	engine := testSimilarityEngine(t, nil)

	results, err := engine.FindSimilar(context.Background(), "Atlantis")
	if err != nil {
		t.Fatalf("Soft miss must not return an error, got %v", err)
	}
	if results == nil {
		t.Fatal("Soft miss must return an empty slice, not nil")
	}
	if len(results) != 0 {
		t.Fatalf("Expected empty result, got %d", len(results))
	}
}

func TestFindSimilar_FallbackJaccard(t *testing.T) {
	// Target shares one of three union categories with one candidate and
	// nothing with the other.
	cat, err := catalog.New([]models.Destination{
		{ID: 1, Name: "Bali", Categories: []string{"beach", "food"}, AvgCostPerDay: 50, Popularity: 0.9},
		{ID: 2, Name: "Lisbon", Categories: []string{"beach", "culture"}, AvgCostPerDay: 90, Popularity: 0.7},
		{ID: 3, Name: "Aspen", Categories: []string{"skiing"}, AvgCostPerDay: 200, Popularity: 0.6},
	})
	if err != nil {
		t.Fatalf("Failed to build catalog: %v", err)
	}

	engine := NewSimilarityEngine(cat, NewEmbeddingCache(cat, nil), config.Default().Similarity)

	results, err := engine.FindSimilar(context.Background(), "Bali")
	if err != nil {
		t.Fatalf("FindSimilar failed: %v", err)
	}

	// Jaccard(Bali, Lisbon) = |{beach}| / |{beach, food, culture}| = 1/3.
	// Aspen has zero overlap and is excluded entirely.
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].Name != "Lisbon" {
		t.Errorf("Expected Lisbon, got %s", results[0].Name)
	}
	if results[0].SimilarityScore != 0.33 {
		t.Errorf("Expected Jaccard 0.33, got %v", results[0].SimilarityScore)
	}

	if mode := engine.Mode(); mode != "category-overlap" {
		t.Errorf("Expected category-overlap mode, got %s", mode)
	}
}

func TestFindSimilar_FailedProducerSwitchesToFallbackPermanently(t *testing.T) {
	producer := &fakeProducer{failing: true}
	engine := testSimilarityEngine(t, producer)

	if _, err := engine.FindSimilar(context.Background(), "Alphaville"); err != nil {
		t.Fatalf("FindSimilar failed: %v", err)
	}
	if mode := engine.Mode(); mode != "category-overlap" {
		t.Errorf("Expected fallback after producer failure, got %s", mode)
	}

	callsAfterFirst := producer.calls.Load()
	if _, err := engine.FindSimilar(context.Background(), "Betatown"); err != nil {
		t.Fatalf("FindSimilar failed: %v", err)
	}
	if producer.calls.Load() != callsAfterFirst {
		t.Error("Producer must not be consulted again after switching to fallback")
	}
}

func TestFindSimilar_MaxResults(t *testing.T) {
	destinations := make([]models.Destination, 0, 8)
	for i := 1; i <= 8; i++ {
		destinations = append(destinations, models.Destination{
			ID:            i,
			Name:          string(rune('A'+i-1)) + "-ville",
			Categories:    []string{"beach"},
			AvgCostPerDay: 50,
			Popularity:    0.5,
		})
	}
	cat, err := catalog.New(destinations)
	if err != nil {
		t.Fatalf("Failed to build catalog: %v", err)
	}

	engine := NewSimilarityEngine(cat, NewEmbeddingCache(cat, nil), config.Default().Similarity)
	results, err := engine.FindSimilar(context.Background(), "A-ville")
	if err != nil {
		t.Fatalf("FindSimilar failed: %v", err)
	}

	if len(results) != 5 {
		t.Fatalf("Expected 5 results (max), got %d", len(results))
	}
	// Identical overlap everywhere, so ordering is id ascending.
	for i := 1; i < len(results); i++ {
		if results[i].ID < results[i-1].ID {
			t.Errorf("Tie-break not id ascending: %d before %d", results[i-1].ID, results[i].ID)
		}
	}
}

func TestModeBeforeFirstQuery(t *testing.T) {
	engine := testSimilarityEngine(t, nil)
	if mode := engine.Mode(); mode != "undecided" {
		t.Errorf("Expected undecided before first query, got %s", mode)
	}
}
