package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/example/storefront-service/internal/domain"
	"github.com/example/storefront-service/internal/usecase"
)

type recommendationRequest struct {
	CurrentProductID string `json:"currentProductId"`
	CategoryName     string `json:"categoryName"`
	// nil means "use the session cookie".
	ViewedProductIDs *[]string `json:"viewedProductIds"`
}

type recommendationResponse struct {
	Products []domain.ProductSummary `json:"products"`
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var req recommendationRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	viewed := viewedHistory(r)
	if req.ViewedProductIDs != nil {
		viewed = domain.NewViewedHistory(*req.ViewedProductIDs)
	}
	uc := s.Recommend
	uc.Log = requestLogger(r.Context(), uc.Log)
	products := uc.Execute(r.Context(), usecase.RecommendRequest{
		CurrentProductID: req.CurrentProductID,
		CategoryName:     req.CategoryName,
		Viewed:           viewed,
	})
	resp := recommendationResponse{Products: make([]domain.ProductSummary, 0, len(products))}
	for _, p := range products {
		resp.Products = append(resp.Products, p.Summary())
	}
	writeJSON(w, http.StatusOK, resp)
}
