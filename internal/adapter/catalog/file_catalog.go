// Package catalog provides an in-process catalog reader loaded from a JSON snapshot.
package catalog

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/example/storefront-service/internal/domain"
)

// Snapshot is the on-disk catalog format, also accepted by cmd/catalog-seed.
type Snapshot struct {
	Categories []domain.Category `json:"categories"`
	Products   []domain.Product  `json:"products"`
}

// DecodeSnapshot reads a snapshot and fills in missing category slugs.
func DecodeSnapshot(r io.Reader) (Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Snapshot{}, errors.Wrap(err, "decode catalog snapshot")
	}
	for i := range s.Categories {
		if s.Categories[i].Slug == "" {
			s.Categories[i].Slug = domain.Slugify(s.Categories[i].Name)
		}
	}
	for i := range s.Products {
		p := &s.Products[i]
		if p.CategorySlug != "" {
			continue
		}
		p.CategorySlug = domain.Slugify(p.CategoryName)
		for _, c := range s.Categories {
			if strings.EqualFold(c.Name, p.CategoryName) {
				p.CategorySlug = c.Slug
				break
			}
		}
	}
	return s, nil
}

// FileCatalog is immutable after construction and safe for concurrent reads.
type FileCatalog struct {
	categories []domain.Category
	products   []domain.Product
	byID       map[string]int
	bySlug     map[string]int
}

func NewFileCatalog(path string) (*FileCatalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open catalog file")
	}
	defer f.Close()
	s, err := DecodeSnapshot(f)
	if err != nil {
		return nil, err
	}
	return NewSnapshotCatalog(s), nil
}

func NewSnapshotCatalog(s Snapshot) *FileCatalog {
	c := &FileCatalog{
		categories: append([]domain.Category(nil), s.Categories...),
		products:   append([]domain.Product(nil), s.Products...),
		byID:       make(map[string]int, len(s.Products)),
		bySlug:     make(map[string]int, len(s.Products)),
	}
	// newest first, as the storefront lists them
	sort.SliceStable(c.products, func(i, j int) bool {
		return c.products[i].CreatedAt.After(c.products[j].CreatedAt)
	})
	sort.SliceStable(c.categories, func(i, j int) bool {
		return c.categories[i].Name < c.categories[j].Name
	})
	for i, p := range c.products {
		c.byID[p.ID] = i
		c.bySlug[p.Slug] = i
	}
	return c
}

func (c *FileCatalog) ProductsByIDs(_ context.Context, ids []string) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if i, ok := c.byID[id]; ok {
			out = append(out, c.products[i])
		}
	}
	return out, nil
}

func (c *FileCatalog) ProductBySlug(_ context.Context, slug string) (domain.Product, error) {
	i, ok := c.bySlug[slug]
	if !ok {
		return domain.Product{}, domain.ErrNotFound
	}
	return c.products[i], nil
}

func (c *FileCatalog) ProductsByCategory(_ context.Context, categorySlug string, limit int) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range c.products {
		if limit > 0 && len(out) == limit {
			break
		}
		if p.CategorySlug == categorySlug {
			out = append(out, p)
		}
	}
	return out, nil
}

func (c *FileCatalog) Categories(context.Context) ([]domain.Category, error) {
	return append([]domain.Category(nil), c.categories...), nil
}

var _ domain.CatalogReader = (*FileCatalog)(nil)
