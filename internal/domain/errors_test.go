package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorClassification(t *testing.T) {
	validation := []error{
		&EmptyCartError{},
		&InvalidContactError{Fields: map[string]string{"email": "email"}},
		&InvalidLineItemError{Index: 1, ProductID: "p1", Reason: "quantity must be at least 1"},
	}
	for _, err := range validation {
		if !errors.Is(fmt.Errorf("wrapped: %w", err), ErrValidation) {
			t.Fatalf("%T should match ErrValidation", err)
		}
	}
	if !errors.Is(&ProductNotFoundError{ProductID: "p1"}, ErrNotFound) {
		t.Fatal("ProductNotFoundError should match ErrNotFound")
	}
	if errors.Is(&InsufficientStockError{}, ErrValidation) {
		t.Fatal("InsufficientStockError is not a validation error")
	}
}

func TestInvalidContactErrorMessageIsSorted(t *testing.T) {
	err := &InvalidContactError{Fields: map[string]string{"phone": "phone", "email": "required"}}
	if got := err.Error(); got != "invalid contact: email: required, phone: phone" {
		t.Fatalf("Error() = %q", got)
	}
}
