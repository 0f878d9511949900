package repo

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/example/storefront-service/internal/domain"
)

// CatalogWriter loads catalog data for seeding. The request path never writes.
type CatalogWriter struct {
	Pool *pgxpool.Pool
}

func (w *CatalogWriter) UpsertCategory(ctx context.Context, c domain.Category) error {
	_, err := w.Pool.Exec(ctx, `INSERT INTO categories(id, name, slug, image_url) VALUES($1, $2, $3, $4)
        ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, slug = EXCLUDED.slug, image_url = EXCLUDED.image_url`,
		c.ID, c.Name, c.Slug, c.ImageURL)
	return errors.Wrapf(err, "upsert category %s", c.ID)
}

// UpsertProduct links the product to the category whose slug is p.CategorySlug.
func (w *CatalogWriter) UpsertProduct(ctx context.Context, p domain.Product) error {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return err
	}
	colors := p.Colors
	if colors == nil {
		colors = []string{}
	}
	_, err = w.Pool.Exec(ctx, `INSERT INTO products(id, name, slug, description, price, stock, category_id, product_code, colors, images)
        VALUES($1, $2, $3, $4, $5::numeric, $6, (SELECT id FROM categories WHERE slug = $7), $8, $9, $10)
        ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, slug = EXCLUDED.slug, description = EXCLUDED.description,
          price = EXCLUDED.price, stock = EXCLUDED.stock, category_id = EXCLUDED.category_id,
          product_code = EXCLUDED.product_code, colors = EXCLUDED.colors, images = EXCLUDED.images`,
		p.ID, p.Name, p.Slug, p.Description, p.Price.String(), p.Stock, p.CategorySlug, p.ProductCode, colors, images)
	return errors.Wrapf(err, "upsert product %s", p.ID)
}
