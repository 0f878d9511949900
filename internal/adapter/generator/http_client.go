// Package generator implements the recommendation generator port.
package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/example/storefront-service/internal/domain"
)

type flowRequest struct {
	ViewedProducts []domain.ViewedSummary `json:"viewedProducts"`
}

type flowResponse struct {
	InterestSummary *string  `json:"interestSummary"`
	CategorySlugs   []string `json:"recommendedCategorySlugs"`
}

// HTTPClient calls a recommendation flow endpoint that answers with
// {interestSummary, recommendedCategorySlugs}.
type HTTPClient struct {
	URL    string
	Client *http.Client
}

func NewHTTPClient(url string) *HTTPClient {
	return &HTTPClient{URL: url, Client: &http.Client{Timeout: 30 * time.Second}}
}

func (c *HTTPClient) Generate(ctx context.Context, viewed []domain.ViewedSummary) (domain.Recommendation, error) {
	req := flowRequest{ViewedProducts: make([]domain.ViewedSummary, len(viewed))}
	for i, v := range viewed {
		v.Description = PlainText(v.Description, maxDescriptionRunes)
		req.ViewedProducts[i] = v
	}
	body, err := json.Marshal(req)
	if err != nil {
		return domain.Recommendation{}, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return domain.Recommendation{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(httpReq)
	if err != nil {
		return domain.Recommendation{}, errors.Wrap(err, "call recommendation flow")
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.Recommendation{}, errors.Errorf("recommendation flow returned %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}

	var out flowResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&out); err != nil {
		return domain.Recommendation{}, errors.Wrap(err, "decode recommendation flow response")
	}
	if out.InterestSummary == nil || out.CategorySlugs == nil {
		return domain.Recommendation{}, errors.New("recommendation flow response is missing fields")
	}
	return domain.Recommendation{InterestSummary: *out.InterestSummary, CategorySlugs: out.CategorySlugs}, nil
}

var _ domain.RecommendationGenerator = (*HTTPClient)(nil)
