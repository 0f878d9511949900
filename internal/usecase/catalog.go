package usecase

import (
	"context"
	"strings"

	"github.com/example/storefront-service/internal/domain"
)

// GetProductBySlug reads one product for the detail page.
type GetProductBySlug struct {
	Catalog domain.CatalogReader
}

func (uc GetProductBySlug) Execute(ctx context.Context, slug string) (domain.Product, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return domain.Product{}, domain.ErrNotFound
	}
	return uc.Catalog.ProductBySlug(ctx, slug)
}

// ListCategories returns every catalog category.
type ListCategories struct {
	Catalog domain.CatalogReader
}

func (uc ListCategories) Execute(ctx context.Context) ([]domain.Category, error) {
	return uc.Catalog.Categories(ctx)
}
