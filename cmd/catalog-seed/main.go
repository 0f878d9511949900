package main

import (
	"context"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/example/storefront-service/internal/adapter/catalog"
	"github.com/example/storefront-service/internal/adapter/repo"
	"github.com/example/storefront-service/internal/config"
	"github.com/example/storefront-service/internal/obs"
)

// catalog-seed reads a catalog snapshot from stdin and upserts it into Postgres.
func main() {
	config.LoadDotEnv()
	cfg := config.Load()
	log := obs.NewLogger(cfg.LogLevel)
	ctx := context.Background()

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}
	snap, err := catalog.DecodeSnapshot(os.Stdin)
	if err != nil {
		log.WithError(err).Fatal("read catalog from stdin")
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("db connect")
	}
	defer pool.Close()
	if err := repo.EnsureSchema(ctx, pool); err != nil {
		log.WithError(err).Fatal("init schema")
	}

	w := &repo.CatalogWriter{Pool: pool}
	for _, c := range snap.Categories {
		if err := w.UpsertCategory(ctx, c); err != nil {
			log.WithError(err).WithField("category", c.Slug).Fatal("upsert category")
		}
	}
	for _, p := range snap.Products {
		if err := w.UpsertProduct(ctx, p); err != nil {
			log.WithError(err).WithField("product", p.ID).Fatal("upsert product")
		}
	}
	log.WithField("categories", len(snap.Categories)).WithField("products", len(snap.Products)).Info("catalog seeded")
}
