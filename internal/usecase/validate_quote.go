package usecase

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/example/storefront-service/internal/domain"
)

// ValidateQuote recomputes a quote from the catalog. Client prices and stock
// are never read; the first failing line decides the rejection.
type ValidateQuote struct {
	Catalog   domain.CatalogReader
	Contact   *ContactValidator
	Reference func() (string, error)
	Now       func() time.Time
}

func (uc ValidateQuote) Execute(ctx context.Context, items []domain.QuoteLineItem, contact domain.ContactInfo) (domain.Quote, error) {
	if len(items) == 0 {
		return domain.Quote{}, &domain.EmptyCartError{}
	}
	contact = normalizeContact(contact)
	if err := uc.contactValidator().Validate(contact); err != nil {
		return domain.Quote{}, err
	}

	ids := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for i, it := range items {
		id := strings.TrimSpace(it.ProductID)
		if id == "" {
			return domain.Quote{}, &domain.InvalidLineItemError{Index: i, ProductID: it.ProductID, Reason: "product id is required"}
		}
		if it.Quantity < 1 {
			return domain.Quote{}, &domain.InvalidLineItemError{Index: i, ProductID: id, Reason: "quantity must be at least 1"}
		}
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	products, err := uc.Catalog.ProductsByIDs(ctx, ids)
	if err != nil {
		return domain.Quote{}, errors.Wrap(err, "fetch products for quote")
	}
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	// Stock is checked against the running total so a product split across
	// several lines cannot exceed it.
	requested := make(map[string]int64, len(ids))
	lines := make([]domain.ValidatedQuoteLine, 0, len(items))
	total := decimal.Zero
	for _, it := range items {
		id := strings.TrimSpace(it.ProductID)
		p, ok := byID[id]
		if !ok {
			return domain.Quote{}, &domain.ProductNotFoundError{ProductID: id}
		}
		// compared by subtraction: stock is never negative, a running sum can overflow
		if it.Quantity > p.Stock-requested[id] {
			want := int64(math.MaxInt64)
			if it.Quantity <= math.MaxInt64-requested[id] {
				want = requested[id] + it.Quantity
			}
			return domain.Quote{}, &domain.InsufficientStockError{
				ProductID:   id,
				ProductName: p.Name,
				Requested:   want,
				Available:   p.Stock,
			}
		}
		requested[id] += it.Quantity
		subtotal := p.Price.Mul(decimal.NewFromInt(it.Quantity))
		total = total.Add(subtotal)
		lines = append(lines, domain.ValidatedQuoteLine{
			ProductID:   p.ID,
			Name:        p.Name,
			ProductCode: p.ProductCode,
			Quantity:    it.Quantity,
			UnitPrice:   p.Price,
			Subtotal:    subtotal,
		})
	}

	ref, err := uc.reference()
	if err != nil {
		return domain.Quote{}, errors.Wrap(err, "generate order reference")
	}
	return domain.Quote{
		Reference: ref,
		Lines:     lines,
		Total:     total,
		Contact:   contact,
		CreatedAt: uc.now(),
	}, nil
}

func (uc ValidateQuote) contactValidator() *ContactValidator {
	if uc.Contact != nil {
		return uc.Contact
	}
	return defaultContactValidator
}

func (uc ValidateQuote) reference() (string, error) {
	if uc.Reference != nil {
		return uc.Reference()
	}
	return NewOrderReference()
}

func (uc ValidateQuote) now() time.Time {
	if uc.Now != nil {
		return uc.Now()
	}
	return time.Now().UTC()
}

var defaultContactValidator = NewContactValidator()

// NewOrderReference returns a time-ordered random UUID.
func NewOrderReference() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
