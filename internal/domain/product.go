package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlaceholderImage is served when a product has no usable image.
const PlaceholderImage = "https://placehold.co/600x800.png"

// Product is a catalog record. Read-only for quoting and recommendations.
type Product struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Slug         string          `json:"slug"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Stock        int64           `json:"stock"`
	CategoryName string          `json:"category"`
	CategorySlug string          `json:"categorySlug"`
	ProductCode  string          `json:"productCode"`
	Colors       []string        `json:"colors,omitempty"`
	Images       ImageSet        `json:"images"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// Category is a catalog category.
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	ImageURL string `json:"imageUrl"`
}

// ImageSet holds default images plus optional per-color overrides.
type ImageSet struct {
	Default  []string            `json:"default"`
	Variants map[string][]string `json:"variants,omitempty"`
}

// Resolve returns the first variant image for color, then the first default
// image, then PlaceholderImage.
func (s ImageSet) Resolve(color string) string {
	if color != "" {
		if urls := s.Variants[color]; len(urls) > 0 && urls[0] != "" {
			return urls[0]
		}
	}
	if len(s.Default) > 0 && s.Default[0] != "" {
		return s.Default[0]
	}
	return PlaceholderImage
}

// ProductSummary is the card shape returned by recommendations.
type ProductSummary struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Slug        string          `json:"slug"`
}

func (p Product) Summary() ProductSummary {
	return ProductSummary{
		ID:          p.ID,
		Name:        p.Name,
		Image:       p.Images.Resolve(""),
		Description: p.Description,
		Price:       p.Price,
		Slug:        p.Slug,
	}
}
