package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteLineItem is a client-submitted cart line. Untrusted.
type QuoteLineItem struct {
	ProductID string `json:"id"`
	Quantity  int64  `json:"quantity"`
}

// ContactInfo is the requester's contact block.
type ContactInfo struct {
	FirstName   string `json:"firstName" validate:"required,max=100"`
	LastName    string `json:"lastName" validate:"required,max=100"`
	CompanyName string `json:"companyName,omitempty" validate:"max=200"`
	Phone       string `json:"phone" validate:"required,phone"`
	Email       string `json:"email" validate:"required,email,max=254"`
	OrderNotes  string `json:"orderNotes,omitempty" validate:"max=2000"`
}

// ValidatedQuoteLine is priced from the catalog record, never from client input.
type ValidatedQuoteLine struct {
	ProductID   string          `json:"productId"`
	Name        string          `json:"name"`
	ProductCode string          `json:"productCode"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// Quote is an accepted order quote.
type Quote struct {
	Reference string               `json:"reference"`
	Lines     []ValidatedQuoteLine `json:"lines"`
	Total     decimal.Decimal      `json:"total"`
	Contact   ContactInfo          `json:"contact"`
	CreatedAt time.Time            `json:"createdAt"`
}
