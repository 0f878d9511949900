package firestore

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/example/storefront-service/internal/domain"
)

const recommendationCollection = "recommendation_cache"

// RecommendationCacheFS stores one document per fingerprint (docId = fingerprint).
// Fields: fingerprint, interestSummary, recommendedCategorySlugs, createdAt.
type RecommendationCacheFS struct {
	Client *firestore.Client
}

func NewRecommendationCacheFS(client *firestore.Client) *RecommendationCacheFS {
	return &RecommendationCacheFS{Client: client}
}

func (r *RecommendationCacheFS) col() *firestore.CollectionRef {
	return r.Client.Collection(recommendationCollection)
}

type recommendationDoc struct {
	Fingerprint     string    `firestore:"fingerprint"`
	InterestSummary string    `firestore:"interestSummary"`
	CategorySlugs   []string  `firestore:"recommendedCategorySlugs"`
	CreatedAt       time.Time `firestore:"createdAt"`
}

// Get returns found=false when the document does not exist.
func (r *RecommendationCacheFS) Get(ctx context.Context, fp domain.Fingerprint) (domain.RecommendationEntry, bool, error) {
	if r == nil || r.Client == nil {
		return domain.RecommendationEntry{}, false, errors.New("recommendation_cache_fs: firestore client is nil")
	}
	snap, err := r.col().Doc(fp.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.RecommendationEntry{}, false, nil
		}
		return domain.RecommendationEntry{}, false, err
	}
	var doc recommendationDoc
	if err := snap.DataTo(&doc); err != nil {
		return domain.RecommendationEntry{}, false, err
	}
	return domain.RecommendationEntry{
		Fingerprint:     fp,
		InterestSummary: doc.InterestSummary,
		CategorySlugs:   doc.CategorySlugs,
		CreatedAt:       doc.CreatedAt,
	}, true, nil
}

// Put overwrites the full document.
func (r *RecommendationCacheFS) Put(ctx context.Context, e domain.RecommendationEntry) error {
	if r == nil || r.Client == nil {
		return errors.New("recommendation_cache_fs: firestore client is nil")
	}
	if e.Fingerprint == "" {
		return errors.New("recommendation_cache_fs: fingerprint is empty")
	}
	_, err := r.col().Doc(e.Fingerprint.String()).Set(ctx, recommendationDoc{
		Fingerprint:     e.Fingerprint.String(),
		InterestSummary: e.InterestSummary,
		CategorySlugs:   e.CategorySlugs,
		CreatedAt:       e.CreatedAt.UTC(),
	})
	return err
}

var _ domain.RecommendationCache = (*RecommendationCacheFS)(nil)
