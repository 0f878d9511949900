package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"

	"github.com/example/storefront-service/internal/adapter/cache"
	"github.com/example/storefront-service/internal/adapter/catalog"
	"github.com/example/storefront-service/internal/config"
)

func TestBuildCatalog(t *testing.T) {
	if _, err := buildCatalog(config.Config{}, nil); err == nil {
		t.Fatal("expected error without a catalog source")
	}

	f := filepath.Join(t.TempDir(), "catalog.json")
	body := `{"categories":[{"id":"c1","name":"Tazas y Mates"}],"products":[{"id":"p1","name":"Taza","slug":"taza","price":"10.5","stock":3,"category":"Tazas y Mates"}]}`
	if err := os.WriteFile(f, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	cat, err := buildCatalog(config.Config{CatalogFile: f}, nil)
	if err != nil {
		t.Fatalf("buildCatalog: %v", err)
	}
	if _, ok := cat.(*catalog.FileCatalog); !ok {
		t.Fatalf("expected file catalog, got %T", cat)
	}
	p, err := cat.ProductBySlug(context.Background(), "taza")
	if err != nil || p.CategorySlug != "tazas-y-mates" {
		t.Fatalf("unexpected product %+v, err %v", p, err)
	}
}

func TestBuildCache(t *testing.T) {
	log, _ := test.NewNullLogger()
	c, closeFn, err := buildCache(context.Background(), config.Config{CacheBackend: config.CacheMemory}, nil, log)
	if err != nil {
		t.Fatalf("memory cache: %v", err)
	}
	defer closeFn()
	if _, ok := c.(*cache.MemoryRecommendationCache); !ok {
		t.Fatalf("expected memory cache, got %T", c)
	}

	if _, _, err := buildCache(context.Background(), config.Config{CacheBackend: config.CachePostgres}, nil, log); err == nil {
		t.Fatal("postgres backend without a pool must fail")
	}
}
