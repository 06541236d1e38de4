// ABOUTME: Shared wiring and formatting helpers for CLI commands
// ABOUTME: Builds the catalog, engines and facade from configuration
package commands

import (
	"fmt"

	"github.com/creative-h/agentQ-Travel-Planner/internal/catalog"
	"github.com/creative-h/agentQ-Travel-Planner/internal/llm"
	"github.com/creative-h/agentQ-Travel-Planner/internal/logging"
	"github.com/creative-h/agentQ-Travel-Planner/internal/recommend"
	"github.com/creative-h/agentQ-Travel-Planner/internal/service"
)

// buildService wires the catalog, scoring and similarity engines into the
// travel service facade. A missing OpenAI key is not an error: similarity
// degrades to category overlap. The embedding cache is returned cold so
// long-running commands can warm it eagerly.
func buildService() (*service.TravelService, *catalog.Catalog, *recommend.EmbeddingCache, error) {
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading catalog: %w", err)
	}

	var producer recommend.EmbeddingProducer
	if cfg.OpenAI.APIKey != "" {
		client, err := llm.NewClient(cfg.OpenAI)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("initializing OpenAI client: %w", err)
		}
		producer = client
	} else {
		logging.Warn().Msg("OPENAI_API_KEY not set, similarity will use category overlap")
	}

	cache := recommend.NewEmbeddingCache(cat, producer)
	recommender := recommend.NewRecommender(cat, cfg.Recommendation)
	similarity := recommend.NewSimilarityEngine(cat, cache, cfg.Similarity)

	return service.New(recommender, similarity), cat, cache, nil
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
