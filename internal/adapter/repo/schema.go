package repo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS categories (
  id text PRIMARY KEY,
  name text NOT NULL,
  slug text NOT NULL UNIQUE,
  image_url text NOT NULL DEFAULT ''
);`,
	`CREATE TABLE IF NOT EXISTS products (
  id text PRIMARY KEY,
  name text NOT NULL,
  slug text NOT NULL UNIQUE,
  description text NOT NULL DEFAULT '',
  price numeric(12,2) NOT NULL CHECK (price >= 0),
  stock bigint NOT NULL DEFAULT 0 CHECK (stock >= 0),
  category_id text REFERENCES categories(id),
  product_code text NOT NULL DEFAULT '',
  colors text[] NOT NULL DEFAULT '{}',
  images jsonb NOT NULL DEFAULT '{}'::jsonb,
  created_at timestamptz NOT NULL DEFAULT now()
);`,
	`CREATE INDEX IF NOT EXISTS products_category_created_idx ON products (category_id, created_at DESC);`,
	`CREATE TABLE IF NOT EXISTS recommendation_cache (
  fingerprint text PRIMARY KEY,
  payload jsonb NOT NULL
);`,
	`CREATE TABLE IF NOT EXISTS quotes (
  reference text PRIMARY KEY,
  payload jsonb NOT NULL
);`,
}

// EnsureSchema creates the tables if they are missing.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return errors.Wrap(err, "ensure schema")
		}
	}
	return nil
}
