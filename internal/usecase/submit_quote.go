package usecase

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/example/storefront-service/internal/domain"
)

// SubmitQuote validates a quote and hands the accepted result downstream.
type SubmitQuote struct {
	Validate  ValidateQuote
	Publisher domain.QuotePublisher
	Log       logrus.FieldLogger
}

func (uc SubmitQuote) Execute(ctx context.Context, items []domain.QuoteLineItem, contact domain.ContactInfo) (domain.Quote, error) {
	q, err := uc.Validate.Execute(ctx, items, contact)
	if err != nil {
		quoteStats.Add("rejected", 1)
		return domain.Quote{}, err
	}
	if uc.Publisher != nil {
		if err := uc.Publisher.Publish(ctx, q); err != nil {
			quoteStats.Add("publish_failures", 1)
			return domain.Quote{}, errors.Wrapf(err, "publish quote %s", q.Reference)
		}
	}
	quoteStats.Add("accepted", 1)
	if uc.Log != nil {
		uc.Log.WithFields(logrus.Fields{
			"reference": q.Reference,
			"lines":     len(q.Lines),
			"total":     q.Total.StringFixed(2),
		}).Info("quote accepted")
	}
	return q, nil
}
