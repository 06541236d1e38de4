// ABOUTME: Ranks catalog destinations by similarity to a target destination
// ABOUTME: Cosine similarity over embeddings, Jaccard category overlap fallback
package recommend

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/creative-h/agentQ-Travel-Planner/internal/catalog"
	"github.com/creative-h/agentQ-Travel-Planner/internal/config"
	"github.com/creative-h/agentQ-Travel-Planner/internal/logging"
	"github.com/creative-h/agentQ-Travel-Planner/internal/metrics"
	"github.com/creative-h/agentQ-Travel-Planner/internal/models"
)

// similarityRanker is the internal similarity measure capability. The
// engine picks one implementation when first queried and keeps it for the
// process lifetime.
type similarityRanker interface {
	rank(target models.Destination) []models.SimilarDestination
	name() string
}

// SimilarityEngine finds the destinations nearest to a named target.
// Safe for concurrent use.
type SimilarityEngine struct {
	catalog    *catalog.Catalog
	cache      *EmbeddingCache
	maxResults int
	logger     zerolog.Logger

	mu     sync.Mutex
	ranker similarityRanker
}

// NewSimilarityEngine creates a similarity engine over the catalog. The
// cache may be built around a nil producer, in which case the engine uses
// category overlap from the start.
func NewSimilarityEngine(cat *catalog.Catalog, cache *EmbeddingCache, cfg config.SimilarityConfig) *SimilarityEngine {
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 5
	}
	return &SimilarityEngine{
		catalog:    cat,
		cache:      cache,
		maxResults: maxResults,
		logger:     logging.Component("similarity"),
	}
}

// FindSimilar resolves the target by case-insensitive substring match and
// ranks the rest of the catalog against it. An unknown name is a soft
// miss: the result is empty and no error is returned.
func (e *SimilarityEngine) FindSimilar(ctx context.Context, destinationName string) ([]models.SimilarDestination, error) {
	matches := e.catalog.FindByNameContains(destinationName)
	if len(matches) == 0 {
		e.logger.Warn().Str("destination", destinationName).Msg("destination not found in catalog")
		return []models.SimilarDestination{}, nil
	}
	target := matches[0]

	results := e.selectRanker(ctx).rank(target)
	if len(results) > e.maxResults {
		results = results[:e.maxResults]
	}
	if results == nil {
		results = []models.SimilarDestination{}
	}
	return results, nil
}

// Mode reports which similarity measure is in use: "embedding",
// "category-overlap", or "undecided" before the first query.
func (e *SimilarityEngine) Mode() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.ranker == nil {
		return "undecided"
	}
	return e.ranker.name()
}

// selectRanker picks the similarity implementation once, based on whether
// catalog embeddings are available. The choice is permanent.
func (e *SimilarityEngine) selectRanker(ctx context.Context) similarityRanker {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.ranker != nil {
		return e.ranker
	}

	vectors := map[int][]float64{}
	if e.cache != nil {
		vectors = e.cache.Get(ctx)
	}

	if len(vectors) == 0 {
		e.ranker = &categoryRanker{catalog: e.catalog}
		metrics.SimilarityFallbackActive.Set(1)
		e.logger.Warn().Msg("similarity engine using category-overlap fallback")
	} else {
		e.ranker = &embeddingRanker{catalog: e.catalog, vectors: vectors}
		metrics.SimilarityFallbackActive.Set(0)
		e.logger.Info().Int("vectors", len(vectors)).Msg("similarity engine using embeddings")
	}
	return e.ranker
}

// embeddingRanker scores candidates by cosine similarity of their cached
// embedding vectors. Every candidate is ranked, however dissimilar.
type embeddingRanker struct {
	catalog *catalog.Catalog
	vectors map[int][]float64
}

func (r *embeddingRanker) name() string { return "embedding" }

func (r *embeddingRanker) rank(target models.Destination) []models.SimilarDestination {
	targetVector, ok := r.vectors[target.ID]
	if !ok {
		return nil
	}

	var results []models.SimilarDestination
	for _, dest := range r.catalog.All() {
		if dest.ID == target.ID {
			continue
		}
		vector, ok := r.vectors[dest.ID]
		if !ok {
			continue
		}
		results = append(results, similarProjection(dest, cosineSimilarity(targetVector, vector)))
	}

	sortSimilar(results)
	roundSimilar(results)
	return results
}

// categoryRanker scores candidates by Jaccard overlap of category sets.
// Candidates with zero overlap are excluded entirely.
type categoryRanker struct {
	catalog *catalog.Catalog
}

func (r *categoryRanker) name() string { return "category-overlap" }

func (r *categoryRanker) rank(target models.Destination) []models.SimilarDestination {
	targetSet := make(map[string]struct{}, len(target.Categories))
	for _, c := range target.Categories {
		targetSet[c] = struct{}{}
	}

	var results []models.SimilarDestination
	for _, dest := range r.catalog.All() {
		if dest.ID == target.ID {
			continue
		}

		destSet := make(map[string]struct{}, len(dest.Categories))
		for _, c := range dest.Categories {
			destSet[c] = struct{}{}
		}

		overlap := 0
		union := len(targetSet)
		for c := range destSet {
			if _, ok := targetSet[c]; ok {
				overlap++
			} else {
				union++
			}
		}
		if overlap == 0 {
			continue
		}

		results = append(results, similarProjection(dest, float64(overlap)/float64(union)))
	}

	sortSimilar(results)
	roundSimilar(results)
	return results
}

func similarProjection(d models.Destination, score float64) models.SimilarDestination {
	return models.SimilarDestination{
		ID:              d.ID,
		Name:            d.Name,
		Description:     d.Description,
		BudgetLevel:     d.BudgetLevel,
		SimilarityScore: score,
		ImageURL:        d.ImageURL,
		Categories:      d.Categories,
	}
}

// sortSimilar orders by similarity descending, ties by catalog id
// ascending, so repeated queries are deterministic.
func sortSimilar(results []models.SimilarDestination) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].SimilarityScore != results[j].SimilarityScore {
			return results[i].SimilarityScore > results[j].SimilarityScore
		}
		return results[i].ID < results[j].ID
	})
}

func roundSimilar(results []models.SimilarDestination) {
	for i := range results {
		results[i].SimilarityScore = round2(results[i].SimilarityScore)
	}
}

// cosineSimilarity calculates cosine similarity between two vectors.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
