package generator

import (
	"context"
	"sort"
	"strings"

	"github.com/example/storefront-service/internal/domain"
)

// Heuristic recommends the most viewed categories, earliest seen first on
// ties. Used when no generation endpoint is configured.
type Heuristic struct{}

func (Heuristic) Generate(ctx context.Context, viewed []domain.ViewedSummary) (domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return domain.Recommendation{}, err
	}
	type tally struct {
		name  string
		slug  string
		count int
		first int
	}
	bySlug := map[string]*tally{}
	for i, v := range viewed {
		slug := v.CategorySlug
		if slug == "" {
			slug = domain.Slugify(v.Category)
		}
		if slug == "" {
			continue
		}
		t, ok := bySlug[slug]
		if !ok {
			t = &tally{name: strings.TrimSpace(v.Category), slug: slug, first: i}
			bySlug[slug] = t
		}
		t.count++
	}
	ranked := make([]*tally, 0, len(bySlug))
	for _, t := range bySlug {
		ranked = append(ranked, t)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].first < ranked[j].first
	})
	if len(ranked) > domain.MaxRecommendedCategories {
		ranked = ranked[:domain.MaxRecommendedCategories]
	}
	if len(ranked) == 0 {
		return domain.EmptyRecommendation(), nil
	}
	slugs := make([]string, len(ranked))
	names := make([]string, len(ranked))
	for i, t := range ranked {
		slugs[i] = t.slug
		names[i] = t.name
	}
	return domain.Recommendation{
		InterestSummary: "Interested in " + strings.Join(names, ", "),
		CategorySlugs:   slugs,
	}, nil
}

var _ domain.RecommendationGenerator = Heuristic{}
