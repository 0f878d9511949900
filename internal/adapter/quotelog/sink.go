// Package quotelog is the accepted-quote sink used when no broker is configured.
package quotelog

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/example/storefront-service/internal/domain"
)

type Sink struct {
	Log logrus.FieldLogger
}

func (s Sink) Publish(_ context.Context, q domain.Quote) error {
	s.Log.WithFields(logrus.Fields{
		"reference": q.Reference,
		"lines":     len(q.Lines),
		"total":     q.Total.String(),
		"email":     q.Contact.Email,
	}).Info("quote accepted without broker")
	return nil
}

var _ domain.QuotePublisher = Sink{}
