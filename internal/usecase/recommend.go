package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/example/storefront-service/internal/domain"
)

const (
	MaxRecommendations         = 4
	productsPerRecommendedSlug = 2
	minViewedForPersonalized   = 2
	defaultGenerateTimeout     = 8 * time.Second
)

// RecommendRequest carries the session-scoped viewed history explicitly.
type RecommendRequest struct {
	CurrentProductID string
	CategoryName     string
	Viewed           domain.ViewedHistory
}

// Recommend merges personalized category picks with a same-category fallback.
// It never fails: a broken strategy contributes nothing.
type Recommend struct {
	Catalog         domain.CatalogReader
	Cache           domain.RecommendationCache
	Generator       domain.RecommendationGenerator
	GenerateTimeout time.Duration
	Log             logrus.FieldLogger
	Now             func() time.Time
}

func (uc Recommend) Execute(ctx context.Context, req RecommendRequest) []domain.Product {
	var personalized, sameCategory []domain.Product
	var g errgroup.Group
	g.Go(func() error {
		personalized = uc.personalized(ctx, req)
		return nil
	})
	g.Go(func() error {
		sameCategory = uc.sameCategory(ctx, req)
		return nil
	})
	_ = g.Wait()
	return mergeRecommendations(req.CurrentProductID, personalized, sameCategory)
}

func (uc Recommend) personalized(ctx context.Context, req RecommendRequest) []domain.Product {
	if len(req.Viewed) < minViewedForPersonalized {
		return nil
	}
	log := uc.logger()
	viewed, err := uc.Catalog.ProductsByIDs(ctx, req.Viewed)
	if err != nil {
		log.WithError(err).Warn("resolve viewed products")
		return nil
	}
	viewed = orderByIDs(viewed, req.Viewed)
	if len(viewed) == 0 {
		return nil
	}

	ids := make([]string, len(viewed))
	for i, p := range viewed {
		ids[i] = p.ID
	}
	rec := uc.recommendation(ctx, domain.NewFingerprint(ids), viewed)

	var out []domain.Product
	for i, slug := range rec.CategorySlugs {
		if i == domain.MaxRecommendedCategories {
			break
		}
		ps, err := uc.Catalog.ProductsByCategory(ctx, slug, productsPerRecommendedSlug)
		if err != nil {
			log.WithError(err).WithField("category", slug).Warn("fetch recommended category")
			continue
		}
		if len(ps) > productsPerRecommendedSlug {
			ps = ps[:productsPerRecommendedSlug]
		}
		out = append(out, ps...)
	}
	return out
}

// recommendation consults the cache and falls back to the generator on a miss.
// Concurrent misses for one fingerprint may both generate; Put is last-write-wins.
func (uc Recommend) recommendation(ctx context.Context, fp domain.Fingerprint, viewed []domain.Product) domain.Recommendation {
	log := uc.logger().WithField("fingerprint", fp.String())
	if uc.Cache != nil {
		e, ok, err := uc.Cache.Get(ctx, fp)
		switch {
		case err != nil:
			recommendationStats.Add("cache_errors", 1)
			log.WithError(err).Warn("recommendation cache get")
		case ok:
			recommendationStats.Add("cache_hits", 1)
			log.Debug("recommendation cache hit")
			return e.Recommendation()
		}
	}
	recommendationStats.Add("cache_misses", 1)

	if uc.Generator == nil {
		return domain.EmptyRecommendation()
	}
	rec, err := uc.generate(ctx, viewed)
	if err != nil {
		recommendationStats.Add("generator_failures", 1)
		log.WithError(err).Warn("generate recommendation")
		return domain.EmptyRecommendation()
	}
	rec.CategorySlugs = normalizeSlugs(rec.CategorySlugs)
	if len(rec.CategorySlugs) == 0 {
		return domain.EmptyRecommendation()
	}
	if uc.Cache != nil {
		entry := domain.RecommendationEntry{
			Fingerprint:     fp,
			InterestSummary: rec.InterestSummary,
			CategorySlugs:   rec.CategorySlugs,
			CreatedAt:       uc.now(),
		}
		if err := uc.Cache.Put(ctx, entry); err != nil {
			recommendationStats.Add("cache_errors", 1)
			log.WithError(err).Warn("recommendation cache put")
		}
	}
	return rec
}

// generate bounds the generator call even if the generator ignores ctx.
func (uc Recommend) generate(ctx context.Context, viewed []domain.Product) (domain.Recommendation, error) {
	timeout := uc.GenerateTimeout
	if timeout <= 0 {
		timeout = defaultGenerateTimeout
	}
	gctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	summaries := make([]domain.ViewedSummary, len(viewed))
	for i, p := range viewed {
		summaries[i] = domain.ViewedSummary{
			Name:         p.Name,
			Description:  p.Description,
			Category:     p.CategoryName,
			CategorySlug: p.CategorySlug,
		}
	}

	type result struct {
		rec domain.Recommendation
		err error
	}
	done := make(chan result, 1)
	recommendationStats.Add("generator_calls", 1)
	go func() {
		rec, err := uc.Generator.Generate(gctx, summaries)
		done <- result{rec, err}
	}()
	select {
	case r := <-done:
		return r.rec, r.err
	case <-gctx.Done():
		return domain.Recommendation{}, errors.Wrap(gctx.Err(), "generator timed out")
	}
}

func (uc Recommend) sameCategory(ctx context.Context, req RecommendRequest) []domain.Product {
	slug := uc.categorySlug(ctx, req.CategoryName)
	if slug == "" {
		return nil
	}
	ps, err := uc.Catalog.ProductsByCategory(ctx, slug, MaxRecommendations+1)
	if err != nil {
		uc.logger().WithError(err).WithField("category", slug).Warn("fetch same-category products")
		return nil
	}
	out := make([]domain.Product, 0, MaxRecommendations)
	for _, p := range ps {
		if p.ID == req.CurrentProductID {
			continue
		}
		out = append(out, p)
		if len(out) == MaxRecommendations {
			break
		}
	}
	return out
}

// categorySlug maps a category name to its slug via the catalog, falling back
// to Slugify when the catalog has no match or cannot be read.
func (uc Recommend) categorySlug(ctx context.Context, name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	cats, err := uc.Catalog.Categories(ctx)
	if err != nil {
		uc.logger().WithError(err).Debug("list categories")
	}
	for _, c := range cats {
		if strings.EqualFold(c.Name, name) || strings.EqualFold(c.Slug, name) {
			return c.Slug
		}
	}
	return domain.Slugify(name)
}

func (uc Recommend) logger() logrus.FieldLogger {
	if uc.Log != nil {
		return uc.Log
	}
	return logrus.StandardLogger()
}

func (uc Recommend) now() time.Time {
	if uc.Now != nil {
		return uc.Now()
	}
	return time.Now().UTC()
}

// mergeRecommendations puts personalized results first, drops the current
// product and duplicates, and caps the list.
func mergeRecommendations(currentID string, lists ...[]domain.Product) []domain.Product {
	out := make([]domain.Product, 0, MaxRecommendations)
	seen := map[string]struct{}{currentID: {}}
	for _, list := range lists {
		for _, p := range list {
			if _, dup := seen[p.ID]; dup {
				continue
			}
			seen[p.ID] = struct{}{}
			out = append(out, p)
			if len(out) == MaxRecommendations {
				return out
			}
		}
	}
	return out
}

func orderByIDs(ps []domain.Product, ids []string) []domain.Product {
	byID := make(map[string]domain.Product, len(ps))
	for _, p := range ps {
		byID[p.ID] = p
	}
	out := make([]domain.Product, 0, len(ps))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
			delete(byID, id)
		}
	}
	return out
}

func normalizeSlugs(slugs []string) []string {
	out := make([]string, 0, domain.MaxRecommendedCategories)
	seen := make(map[string]struct{}, len(slugs))
	for _, s := range slugs {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
		if len(out) == domain.MaxRecommendedCategories {
			break
		}
	}
	return out
}
