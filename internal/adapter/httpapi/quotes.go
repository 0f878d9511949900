package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/pkg/errors"

	"github.com/example/storefront-service/internal/domain"
)

const maxBodyBytes = 1 << 20

type quoteRequest struct {
	Items   []domain.QuoteLineItem `json:"items"`
	Contact *domain.ContactInfo    `json:"contact"`
	// FormData is the storefront form's name for Contact.
	FormData *domain.ContactInfo `json:"formData"`
}

type quoteResponse struct {
	Success bool              `json:"success"`
	OrderID string            `json:"orderId,omitempty"`
	Message string            `json:"message"`
	Total   string            `json:"total,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func (s *Server) handleSubmitQuote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, quoteResponse{Message: "invalid request body"})
		return
	}
	var contact domain.ContactInfo
	switch {
	case req.Contact != nil:
		contact = *req.Contact
	case req.FormData != nil:
		contact = *req.FormData
	}

	uc := s.SubmitQuote
	uc.Log = requestLogger(r.Context(), uc.Log)
	q, err := uc.Execute(r.Context(), req.Items, contact)
	if err != nil {
		status, resp := quoteFailure(err)
		if status == http.StatusInternalServerError {
			LoggerFromContext(r.Context()).WithError(err).Error("submit quote")
		}
		writeJSON(w, status, resp)
		return
	}
	writeJSON(w, http.StatusOK, quoteResponse{
		Success: true,
		OrderID: q.Reference,
		Message: "Quote received. We will contact you shortly.",
		Total:   q.Total.StringFixed(2),
	})
}

// quoteFailure maps a SubmitQuote error onto a status and response body.
func quoteFailure(err error) (int, quoteResponse) {
	var (
		empty    *domain.EmptyCartError
		contact  *domain.InvalidContactError
		line     *domain.InvalidLineItemError
		notFound *domain.ProductNotFoundError
		stock    *domain.InsufficientStockError
	)
	switch {
	case errors.As(err, &empty):
		return http.StatusBadRequest, quoteResponse{Message: "Your cart is empty."}
	case errors.As(err, &contact):
		return http.StatusBadRequest, quoteResponse{Message: "Please check your contact details.", Errors: contact.Fields}
	case errors.As(err, &line):
		return http.StatusBadRequest, quoteResponse{
			Message: "Your cart contains an invalid item.",
			Errors:  map[string]string{fmt.Sprintf("items[%d]", line.Index): line.Reason},
		}
	case errors.As(err, &notFound):
		return http.StatusNotFound, quoteResponse{
			Message: fmt.Sprintf("Product %s is no longer available.", notFound.ProductID),
			Errors:  map[string]string{"productId": notFound.ProductID},
		}
	case errors.As(err, &stock):
		return http.StatusConflict, quoteResponse{
			Message: fmt.Sprintf("Not enough stock for %s: requested %d, available %d.", stock.ProductName, stock.Requested, stock.Available),
			Errors: map[string]string{
				"productId": stock.ProductID,
				"requested": strconv.FormatInt(stock.Requested, 10),
				"available": strconv.FormatInt(stock.Available, 10),
			},
		}
	default:
		return http.StatusInternalServerError, quoteResponse{Message: "Could not process your quote. Please try again later."}
	}
}
