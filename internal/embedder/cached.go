// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

package embedder

import (
	"context"
	"time"

	"github.com/tomtom215/coursecompass/internal/cache"
	"github.com/tomtom215/coursecompass/internal/metrics"
)

// Cached remembers successful embeddings by exact query text. Errors are
// never cached. Callers receive copies, so mutating a returned vector does
// not affect later hits.
type Cached struct {
	next  Embedder
	cache *cache.LRU[[]float64]
}

// NewCached wraps next with an LRU of size entries, each kept for ttl.
func NewCached(next Embedder, size int, ttl time.Duration) *Cached {
	return &Cached{next: next, cache: cache.NewLRU[[]float64](size, ttl)}
}

// Embed returns the cached vector for text or asks next and stores the result.
func (c *Cached) Embed(ctx context.Context, text string) ([]float64, error) {
	if vec, ok := c.cache.Get(text); ok {
		metrics.RecordEmbeddingCache(true)
		return append([]float64(nil), vec...), nil
	}
	metrics.RecordEmbeddingCache(false)

	vec, err := c.next.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	c.cache.Add(text, append([]float64(nil), vec...))
	return vec, nil
}

// Len returns the number of cached queries.
func (c *Cached) Len() int {
	return c.cache.Len()
}
