package domain

import "context"

// CatalogReader is the read-only catalog port. ProductBySlug returns ErrNotFound
// for unknown slugs; ProductsByIDs silently omits unknown ids.
type CatalogReader interface {
	ProductsByIDs(ctx context.Context, ids []string) ([]Product, error)
	ProductBySlug(ctx context.Context, slug string) (Product, error)
	ProductsByCategory(ctx context.Context, categorySlug string, limit int) ([]Product, error)
	Categories(ctx context.Context) ([]Category, error)
}

// RecommendationCache stores generator results by fingerprint.
// Put is last-write-wins; implementations must be safe for concurrent use.
type RecommendationCache interface {
	Get(ctx context.Context, fp Fingerprint) (RecommendationEntry, bool, error)
	Put(ctx context.Context, e RecommendationEntry) error
}

// RecommendationGenerator produces an interest summary and category slugs.
type RecommendationGenerator interface {
	Generate(ctx context.Context, viewed []ViewedSummary) (Recommendation, error)
}

// QuotePublisher hands an accepted quote to downstream processing.
type QuotePublisher interface {
	Publish(ctx context.Context, q Quote) error
}

// QuoteRepository persists accepted quotes as raw JSON.
type QuoteRepository interface {
	Upsert(ctx context.Context, reference string, raw []byte) error
}

// QuoteNotifier delivers an accepted quote to the store inbox.
type QuoteNotifier interface {
	Notify(ctx context.Context, q Quote) error
}

// MessageSubscriber registers a handler; ack and redelivery belong to the adapter.
type MessageSubscriber interface {
	Subscribe(ctx context.Context, handler func(ctx context.Context, raw []byte) error) error
}

// RecommendationLoader streams persisted cache entries as raw JSON.
type RecommendationLoader interface {
	LoadAll(ctx context.Context, fn func(fp string, raw []byte) error) error
}
