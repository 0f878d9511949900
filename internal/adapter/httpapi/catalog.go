package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/example/storefront-service/internal/domain"
)

type productResponse struct {
	domain.Product
	Image string `json:"image"`
}

func (s *Server) handleProduct(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	p, err := s.GetProduct.Execute(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "product not found", "")
			return
		}
		LoggerFromContext(r.Context()).WithError(err).WithField("slug", slug).Error("get product")
		writeJSONError(w, http.StatusInternalServerError, "internal error", "")
		return
	}
	setViewedHistory(w, viewedHistory(r).Push(p.ID))
	writeJSON(w, http.StatusOK, productResponse{Product: p, Image: p.Images.Resolve(r.URL.Query().Get("color"))})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	cs, err := s.ListCategories.Execute(r.Context())
	if err != nil {
		LoggerFromContext(r.Context()).WithError(err).Error("list categories")
		writeJSONError(w, http.StatusInternalServerError, "internal error", "")
		return
	}
	if cs == nil {
		cs = []domain.Category{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": cs})
}
