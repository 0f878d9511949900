package usecase

import (
	"context"
	"encoding/json"

	"github.com/example/storefront-service/internal/domain"
)

// WarmRecommendationCache copies persisted entries into the in-process cache at start.
type WarmRecommendationCache struct {
	Source domain.RecommendationLoader
	Cache  domain.RecommendationCache
}

// Execute returns the number of entries loaded.
func (uc WarmRecommendationCache) Execute(ctx context.Context) (int, error) {
	n := 0
	err := uc.Source.LoadAll(ctx, func(fp string, raw []byte) error {
		var e domain.RecommendationEntry
		if err := json.Unmarshal(raw, &e); err != nil {
			// broken rows are skipped, they will be regenerated on demand
			return nil
		}
		e.Fingerprint = domain.Fingerprint(fp)
		if len(e.CategorySlugs) == 0 {
			return nil
		}
		if err := uc.Cache.Put(ctx, e); err != nil {
			return err
		}
		n++
		return nil
	})
	return n, err
}
