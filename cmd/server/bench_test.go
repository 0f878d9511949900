package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/example/storefront-service/internal/adapter/cache"
	"github.com/example/storefront-service/internal/adapter/catalog"
	"github.com/example/storefront-service/internal/adapter/generator"
	"github.com/example/storefront-service/internal/adapter/httpapi"
	"github.com/example/storefront-service/internal/domain"
	"github.com/example/storefront-service/internal/usecase"
)

func benchCatalog() *catalog.FileCatalog {
	var s catalog.Snapshot
	for c := 0; c < 10; c++ {
		s.Categories = append(s.Categories, domain.Category{ID: fmt.Sprintf("c%d", c), Name: fmt.Sprintf("Cat %d", c), Slug: fmt.Sprintf("cat-%d", c)})
	}
	for i := 0; i < 1000; i++ {
		s.Products = append(s.Products, domain.Product{
			ID:           fmt.Sprintf("p%d", i),
			Name:         fmt.Sprintf("Product %d", i),
			Slug:         fmt.Sprintf("product-%d", i),
			Price:        decimal.NewFromInt(int64(10 + i%50)),
			Stock:        100,
			CategoryName: fmt.Sprintf("Cat %d", i%10),
			CategorySlug: fmt.Sprintf("cat-%d", i%10),
		})
	}
	return catalog.NewSnapshotCatalog(s)
}

func BenchmarkRecommendations(b *testing.B) {
	log, _ := test.NewNullLogger()
	cat := benchCatalog()
	router := httpapi.NewServer(&httpapi.Server{
		Recommend: usecase.Recommend{Catalog: cat, Cache: cache.NewMemoryRecommendationCache(), Generator: generator.Heuristic{}, Log: log},
		Log:       log,
	}).Router

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			// a small set of histories keeps most requests on cache hits
			body := fmt.Sprintf(`{"currentProductId":"p%d","categoryName":"Cat %d","viewedProductIds":["p%d","p%d"]}`, i%1000, i%10, i%20, (i+1)%20)
			req := httptest.NewRequest(http.MethodPost, "/api/recommendations", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			i++
		}
	})
}

func BenchmarkValidateQuote(b *testing.B) {
	uc := usecase.ValidateQuote{Catalog: benchCatalog()}
	items := []domain.QuoteLineItem{{ProductID: "p1", Quantity: 2}, {ProductID: "p500", Quantity: 1}, {ProductID: "p999", Quantity: 3}}
	contact := domain.ContactInfo{FirstName: "Ana", LastName: "Diaz", Phone: "+54 11 5555 0000", Email: "ana@example.com"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := uc.Execute(context.Background(), items, contact); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCacheGet(b *testing.B) {
	c := cache.NewMemoryRecommendationCache()
	fps := make([]domain.Fingerprint, 10000)
	for i := range fps {
		fps[i] = domain.NewFingerprint([]string{fmt.Sprintf("p%d", i), fmt.Sprintf("p%d", i+1)})
		_ = c.Put(context.Background(), domain.RecommendationEntry{Fingerprint: fps[i], CategorySlugs: []string{"cat-1"}})
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = c.Get(context.Background(), fps[i%len(fps)])
	}
}
