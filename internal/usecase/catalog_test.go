package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/example/storefront-service/internal/domain"
)

func TestGetProductBySlug(t *testing.T) {
	uc := GetProductBySlug{Catalog: quoteCatalog()}
	p, err := uc.Execute(context.Background(), " product-P2 ")
	if err != nil || p.ID != "P2" {
		t.Fatalf("got %+v, %v", p, err)
	}
	for _, slug := range []string{"", "  ", "missing"} {
		if _, err := uc.Execute(context.Background(), slug); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("%q: want ErrNotFound, got %v", slug, err)
		}
	}
}

func TestListCategories(t *testing.T) {
	cs, err := ListCategories{Catalog: recommendCatalog()}.Execute(context.Background())
	if err != nil || len(cs) != 3 {
		t.Fatalf("got %v, %v", cs, err)
	}
}
