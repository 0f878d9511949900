package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Shared domain errors.
var (
	ErrNotFound   = notFoundError("not found")
	ErrValidation = validationError("invalid data")
)

type notFoundError string

func (e notFoundError) Error() string { return string(e) }

type validationError string

func (e validationError) Error() string { return string(e) }

// EmptyCartError rejects a quote without lines.
type EmptyCartError struct{}

func (*EmptyCartError) Error() string { return "cart is empty" }

func (*EmptyCartError) Is(target error) bool { return target == ErrValidation }

// InvalidContactError carries field -> failed rule.
type InvalidContactError struct {
	Fields map[string]string
}

func (e *InvalidContactError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, f := range names {
		parts = append(parts, f+": "+e.Fields[f])
	}
	return "invalid contact: " + strings.Join(parts, ", ")
}

func (*InvalidContactError) Is(target error) bool { return target == ErrValidation }

// InvalidLineItemError rejects a structurally broken cart line.
type InvalidLineItemError struct {
	Index     int
	ProductID string
	Reason    string
}

func (e *InvalidLineItemError) Error() string {
	return fmt.Sprintf("invalid line %d (%q): %s", e.Index, e.ProductID, e.Reason)
}

func (*InvalidLineItemError) Is(target error) bool { return target == ErrValidation }

// ProductNotFoundError: a cart line references a product the catalog does not have.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %s not found", e.ProductID)
}

func (*ProductNotFoundError) Is(target error) bool { return target == ErrNotFound }

// InsufficientStockError: requested quantity exceeds the catalog stock.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Requested   int64
	Available   int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d", e.ProductID, e.Requested, e.Available)
}
