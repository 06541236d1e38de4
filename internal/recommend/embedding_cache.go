// ABOUTME: One-time memoized computation of catalog destination embeddings
// ABOUTME: Producer failure yields a permanently empty mapping, no retry
package recommend

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/creative-h/agentQ-Travel-Planner/internal/catalog"
	"github.com/creative-h/agentQ-Travel-Planner/internal/logging"
	"github.com/creative-h/agentQ-Travel-Planner/internal/metrics"
	"github.com/creative-h/agentQ-Travel-Planner/internal/models"
)

// EmbeddingProducer is the injected capability that turns text into a
// fixed-length vector. Any failure is treated as "producer unavailable".
type EmbeddingProducer interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// EmbeddingCache memoizes the embedding of every catalog destination.
// The catalog is static, so the mapping is computed at most once per
// process lifetime. An empty mapping after population means the producer
// was unavailable or failed; the cache never retries.
type EmbeddingCache struct {
	catalog  *catalog.Catalog
	producer EmbeddingProducer
	logger   zerolog.Logger

	mu        sync.Mutex
	populated bool
	vectors   map[int][]float64
}

// NewEmbeddingCache creates a cold cache over the given catalog. A nil
// producer is valid and yields an empty mapping on population.
func NewEmbeddingCache(cat *catalog.Catalog, producer EmbeddingProducer) *EmbeddingCache {
	return &EmbeddingCache{
		catalog:  cat,
		producer: producer,
		logger:   logging.Component("embedding-cache"),
	}
}

// Warm reports whether population has already happened.
func (c *EmbeddingCache) Warm() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.populated
}

// Get returns the destination id to embedding mapping, populating the
// cache on first call. Concurrent callers on a cold cache block until the
// single population pass completes.
func (c *EmbeddingCache) Get(ctx context.Context) map[int][]float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.populated {
		c.vectors = c.computeAll(ctx)
		c.populated = true
	}
	return c.vectors
}

// Populate eagerly warms the cache. Equivalent to Get with the result
// discarded; useful at startup to absorb the one slow batch up front.
func (c *EmbeddingCache) Populate(ctx context.Context) {
	c.Get(ctx)
}

// computeAll embeds every catalog row in a single pass. Any producer
// failure abandons the batch and returns an empty mapping so the caller
// switches to the fallback similarity path for the process lifetime.
func (c *EmbeddingCache) computeAll(ctx context.Context) map[int][]float64 {
	if c.producer == nil {
		c.logger.Warn().Msg("embedding producer not available, similarity will use category overlap")
		return map[int][]float64{}
	}

	vectors := make(map[int][]float64, c.catalog.Len())
	for _, dest := range c.catalog.All() {
		metrics.EmbeddingProducerCalls.Inc()
		vector, err := c.producer.Embed(ctx, embeddingText(dest))
		if err != nil {
			c.logger.Warn().Err(err).Str("destination", dest.Name).
				Msg("embedding batch failed, similarity will use category overlap")
			return map[int][]float64{}
		}
		vectors[dest.ID] = vector
	}

	c.logger.Info().Int("destinations", len(vectors)).Msg("catalog embeddings computed")
	return vectors
}

// embeddingText builds the text a destination is embedded from.
func embeddingText(d models.Destination) string {
	return d.Name + " " + d.Description + " " + strings.Join(d.Categories, " ")
}
