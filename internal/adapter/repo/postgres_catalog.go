package repo

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/example/storefront-service/internal/domain"
)

const productSelect = `SELECT p.id, p.name, p.slug, p.description, p.price::text, p.stock,
  coalesce(c.name, 'Uncategorized'), coalesce(c.slug, ''), p.product_code, p.colors, p.images, p.created_at
FROM products p LEFT JOIN categories c ON c.id = p.category_id`

type PostgresCatalog struct {
	Pool *pgxpool.Pool
}

func NewPostgresCatalog(pool *pgxpool.Pool) *PostgresCatalog {
	return &PostgresCatalog{Pool: pool}
}

func (r *PostgresCatalog) ProductsByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.Pool.Query(ctx, productSelect+` WHERE p.id = ANY($1)`, ids)
	if err != nil {
		return nil, errors.Wrap(err, "query products by ids")
	}
	return collectProducts(rows)
}

func (r *PostgresCatalog) ProductBySlug(ctx context.Context, slug string) (domain.Product, error) {
	p, err := scanProduct(r.Pool.QueryRow(ctx, productSelect+` WHERE p.slug = $1`, slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Product{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Product{}, errors.Wrapf(err, "query product %q", slug)
	}
	return p, nil
}

func (r *PostgresCatalog) ProductsByCategory(ctx context.Context, categorySlug string, limit int) ([]domain.Product, error) {
	rows, err := r.Pool.Query(ctx, productSelect+` WHERE c.slug = $1 ORDER BY p.created_at DESC LIMIT $2`, categorySlug, limit)
	if err != nil {
		return nil, errors.Wrapf(err, "query category %q", categorySlug)
	}
	return collectProducts(rows)
}

func (r *PostgresCatalog) Categories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, name, slug, image_url FROM categories ORDER BY name`)
	if err != nil {
		return nil, errors.Wrap(err, "query categories")
	}
	defer rows.Close()
	var out []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.ImageURL); err != nil {
			return nil, err
		}
		if c.ImageURL == "" {
			c.ImageURL = "https://placehold.co/400x400.png"
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func collectProducts(rows pgx.Rows) ([]domain.Product, error) {
	defer rows.Close()
	var out []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var (
		p      domain.Product
		price  string
		images []byte
	)
	err := row.Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &price, &p.Stock,
		&p.CategoryName, &p.CategorySlug, &p.ProductCode, &p.Colors, &images, &p.CreatedAt)
	if err != nil {
		return domain.Product{}, err
	}
	if p.Price, err = decimal.NewFromString(price); err != nil {
		return domain.Product{}, errors.Wrapf(err, "product %s price", p.ID)
	}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &p.Images); err != nil {
			return domain.Product{}, errors.Wrapf(err, "product %s images", p.ID)
		}
	}
	return p, nil
}

var _ domain.CatalogReader = (*PostgresCatalog)(nil)
