package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/example/storefront-service/internal/domain"
)

const snapshotJSON = `{
  "categories": [
    {"id": "c2", "name": "Tazas y Mates"},
    {"id": "c1", "name": "Accesorios", "slug": "accesorios"}
  ],
  "products": [
    {"id": "p1", "name": "Taza", "slug": "taza", "price": "10.50", "stock": 3, "category": "Tazas y Mates", "createdAt": "2024-01-01T00:00:00Z"},
    {"id": "p2", "name": "Mate", "slug": "mate", "price": "20", "stock": 1, "category": "tazas y mates", "createdAt": "2024-03-01T00:00:00Z"},
    {"id": "p3", "name": "Bombilla", "slug": "bombilla", "price": "5", "stock": 9, "category": "Accesorios", "createdAt": "2024-02-01T00:00:00Z"},
    {"id": "p4", "name": "Yerbera", "slug": "yerbera", "price": "7", "stock": 2, "category": "Sin Categoría", "createdAt": "2024-04-01T00:00:00Z"}
  ]
}`

func loadTestCatalog(t *testing.T) *FileCatalog {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(snapshotJSON), 0o600); err != nil {
		t.Fatal(err)
	}
	c, err := NewFileCatalog(path)
	if err != nil {
		t.Fatalf("NewFileCatalog: %v", err)
	}
	return c
}

func productIDs(ps []domain.Product) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestDecodeSnapshotFillsSlugs(t *testing.T) {
	s, err := DecodeSnapshot(strings.NewReader(snapshotJSON))
	if err != nil {
		t.Fatal(err)
	}
	if s.Categories[0].Slug != "tazas-y-mates" || s.Categories[1].Slug != "accesorios" {
		t.Fatalf("category slugs %+v", s.Categories)
	}
	want := []string{"tazas-y-mates", "tazas-y-mates", "accesorios", "sin-categoria"}
	for i, p := range s.Products {
		if p.CategorySlug != want[i] {
			t.Fatalf("product %s slug %q, want %q", p.ID, p.CategorySlug, want[i])
		}
	}
	if _, err := DecodeSnapshot(strings.NewReader("{")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestFileCatalogReads(t *testing.T) {
	ctx := context.Background()
	c := loadTestCatalog(t)

	ps, _ := c.ProductsByIDs(ctx, []string{"p3", "missing", "p1", "p3"})
	if !reflect.DeepEqual(productIDs(ps), []string{"p3", "p1"}) {
		t.Fatalf("ProductsByIDs = %v", productIDs(ps))
	}
	if ps[1].Price.StringFixed(2) != "10.50" {
		t.Fatalf("price %s", ps[1].Price)
	}

	if _, err := c.ProductBySlug(ctx, "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if p, err := c.ProductBySlug(ctx, "mate"); err != nil || p.ID != "p2" {
		t.Fatalf("ProductBySlug = %+v, %v", p, err)
	}

	ps, _ = c.ProductsByCategory(ctx, "tazas-y-mates", 5)
	if !reflect.DeepEqual(productIDs(ps), []string{"p2", "p1"}) {
		t.Fatalf("ProductsByCategory newest first = %v", productIDs(ps))
	}
	ps, _ = c.ProductsByCategory(ctx, "tazas-y-mates", 1)
	if len(ps) != 1 {
		t.Fatalf("limit ignored: %v", productIDs(ps))
	}

	cats, _ := c.Categories(ctx)
	if len(cats) != 2 || cats[0].Name != "Accesorios" {
		t.Fatalf("Categories = %+v", cats)
	}
	cats[0].Name = "mutated"
	if again, _ := c.Categories(ctx); again[0].Name != "Accesorios" {
		t.Fatal("Categories exposes internal slice")
	}
}

func TestNewFileCatalogMissingFile(t *testing.T) {
	if _, err := NewFileCatalog(filepath.Join(t.TempDir(), "none.json")); err == nil {
		t.Fatal("expected error")
	}
}
