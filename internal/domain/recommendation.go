package domain

import "time"

// MaxRecommendedCategories caps the slugs taken from one generation.
const MaxRecommendedCategories = 3

// NoInterest is the summary used when nothing could be generated.
const NoInterest = "none"

// ViewedSummary is what the generator sees of a viewed product.
type ViewedSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	// CategorySlug is an additive hint; generators may ignore it.
	CategorySlug string `json:"categorySlug,omitempty"`
}

// Recommendation is a generator result.
type Recommendation struct {
	InterestSummary string   `json:"interestSummary"`
	CategorySlugs   []string `json:"recommendedCategorySlugs"`
}

// EmptyRecommendation is returned on generator failure. It is never cached.
func EmptyRecommendation() Recommendation {
	return Recommendation{InterestSummary: NoInterest, CategorySlugs: []string{}}
}

// RecommendationEntry is the persisted cache record.
type RecommendationEntry struct {
	Fingerprint     Fingerprint `json:"fingerprint"`
	InterestSummary string      `json:"interestSummary"`
	CategorySlugs   []string    `json:"recommendedCategorySlugs"`
	CreatedAt       time.Time   `json:"createdAt"`
}

func (e RecommendationEntry) Recommendation() Recommendation {
	return Recommendation{InterestSummary: e.InterestSummary, CategorySlugs: e.CategorySlugs}
}
