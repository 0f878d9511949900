package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/example/storefront-service/internal/domain"
)

type fakeCatalog struct {
	products   []domain.Product
	categories []domain.Category
	errByIDs   error
	errByCat   error
	byIDsCalls atomic.Int32
}

func (c *fakeCatalog) ProductsByIDs(_ context.Context, ids []string) ([]domain.Product, error) {
	c.byIDsCalls.Add(1)
	if c.errByIDs != nil {
		return nil, c.errByIDs
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []domain.Product
	// catalog order, not request order
	for _, p := range c.products {
		if want[p.ID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (c *fakeCatalog) ProductBySlug(_ context.Context, slug string) (domain.Product, error) {
	for _, p := range c.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrNotFound
}

func (c *fakeCatalog) ProductsByCategory(_ context.Context, slug string, limit int) ([]domain.Product, error) {
	if c.errByCat != nil {
		return nil, c.errByCat
	}
	var out []domain.Product
	for _, p := range c.products {
		if p.CategorySlug == slug {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (c *fakeCatalog) Categories(context.Context) ([]domain.Category, error) {
	return c.categories, nil
}

type fakeCache struct {
	mu      sync.Mutex
	entries map[domain.Fingerprint]domain.RecommendationEntry
	getErr  error
	putErr  error
	puts    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[domain.Fingerprint]domain.RecommendationEntry{}}
}

func (c *fakeCache) Get(_ context.Context, fp domain.Fingerprint) (domain.RecommendationEntry, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return domain.RecommendationEntry{}, false, c.getErr
	}
	e, ok := c.entries[fp]
	return e, ok, nil
}

func (c *fakeCache) Put(_ context.Context, e domain.RecommendationEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.puts++
	if c.putErr != nil {
		return c.putErr
	}
	c.entries[e.Fingerprint] = e
	return nil
}

type fakeGenerator struct {
	rec    domain.Recommendation
	err    error
	delay  time.Duration
	calls  atomic.Int32
	viewed []domain.ViewedSummary
}

func (g *fakeGenerator) Generate(ctx context.Context, viewed []domain.ViewedSummary) (domain.Recommendation, error) {
	g.calls.Add(1)
	g.viewed = viewed
	if g.delay > 0 {
		// ignores ctx on purpose
		time.Sleep(g.delay)
	}
	return g.rec, g.err
}

var baseTime = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func product(id, category string, price string, stock int64, ageHours int) domain.Product {
	return domain.Product{
		ID:           id,
		Name:         "Product " + strings.ToUpper(id),
		Slug:         "product-" + id,
		Description:  "About " + id,
		Price:        decimal.RequireFromString(price),
		Stock:        stock,
		CategoryName: category,
		CategorySlug: domain.Slugify(category),
		ProductCode:  "SKU-" + id,
		CreatedAt:    baseTime.Add(time.Duration(ageHours) * time.Hour),
	}
}

func ids(ps []domain.Product) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}
