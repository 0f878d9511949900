package cache

import (
	"context"
	"sync"

	"github.com/example/storefront-service/internal/domain"
)

type MemoryRecommendationCache struct {
	mu    sync.RWMutex
	store map[domain.Fingerprint]domain.RecommendationEntry
}

func NewMemoryRecommendationCache() *MemoryRecommendationCache {
	return &MemoryRecommendationCache{store: make(map[domain.Fingerprint]domain.RecommendationEntry)}
}

func (c *MemoryRecommendationCache) Get(_ context.Context, fp domain.Fingerprint) (domain.RecommendationEntry, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.store[fp]
	return e, ok, nil
}

func (c *MemoryRecommendationCache) Put(_ context.Context, e domain.RecommendationEntry) error {
	e.CategorySlugs = append([]string(nil), e.CategorySlugs...)
	c.mu.Lock()
	c.store[e.Fingerprint] = e
	c.mu.Unlock()
	return nil
}

func (c *MemoryRecommendationCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

var _ domain.RecommendationCache = (*MemoryRecommendationCache)(nil)
