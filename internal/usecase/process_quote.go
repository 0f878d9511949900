package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"

	"github.com/example/storefront-service/internal/domain"
)

// ProcessAcceptedQuote stores an accepted quote message and notifies the store.
// Errors other than domain.ErrValidation leave the message unacknowledged so
// it is redelivered.
type ProcessAcceptedQuote struct {
	Repo     domain.QuoteRepository
	Notifier domain.QuoteNotifier
}

func (uc ProcessAcceptedQuote) Execute(ctx context.Context, raw []byte) error {
	var q domain.Quote
	if err := json.Unmarshal(raw, &q); err != nil {
		return fmt.Errorf("decode quote: %v: %w", err, domain.ErrValidation)
	}
	if q.Reference == "" || len(q.Lines) == 0 {
		return domain.ErrValidation
	}
	if err := uc.Repo.Upsert(ctx, q.Reference, raw); err != nil {
		return errors.Wrapf(err, "store quote %s", q.Reference)
	}
	if uc.Notifier != nil {
		if err := uc.Notifier.Notify(ctx, q); err != nil {
			return errors.Wrapf(err, "notify quote %s", q.Reference)
		}
	}
	return nil
}
