package cache

import (
	"context"

	"github.com/example/storefront-service/internal/domain"
)

// Tiered serves hits from an in-process front and falls through to a shared
// backing store. Backing hits are copied to the front.
type Tiered struct {
	Front *MemoryRecommendationCache
	Back  domain.RecommendationCache
}

func NewTiered(back domain.RecommendationCache) *Tiered {
	return &Tiered{Front: NewMemoryRecommendationCache(), Back: back}
}

func (t *Tiered) Get(ctx context.Context, fp domain.Fingerprint) (domain.RecommendationEntry, bool, error) {
	if e, ok, _ := t.Front.Get(ctx, fp); ok {
		return e, true, nil
	}
	e, ok, err := t.Back.Get(ctx, fp)
	if err != nil || !ok {
		return domain.RecommendationEntry{}, false, err
	}
	_ = t.Front.Put(ctx, e)
	return e, true, nil
}

// Put always writes the front; only the backing store error is returned.
func (t *Tiered) Put(ctx context.Context, e domain.RecommendationEntry) error {
	_ = t.Front.Put(ctx, e)
	return t.Back.Put(ctx, e)
}

var _ domain.RecommendationCache = (*Tiered)(nil)
