package mail

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/example/storefront-service/internal/domain"
)

// QuoteMailer emails each accepted quote to To.
type QuoteMailer struct {
	Sender Sender
	From   string
	To     string
	Log    logrus.FieldLogger
}

func (m *QuoteMailer) Notify(ctx context.Context, q domain.Quote) error {
	subject := fmt.Sprintf("New quote %s from %s %s", q.Reference, q.Contact.FirstName, q.Contact.LastName)
	if err := m.Sender.Send(ctx, m.From, m.To, subject, RenderQuote(q)); err != nil {
		return err
	}
	if m.Log != nil {
		m.Log.WithField("reference", q.Reference).WithField("to", m.To).Info("quote email sent")
	}
	return nil
}

// RenderQuote formats q as the plain-text email body.
func RenderQuote(q domain.Quote) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Quote %s\n", q.Reference)
	fmt.Fprintf(&b, "Received: %s\n\n", q.CreatedAt.UTC().Format("2006-01-02 15:04 MST"))

	c := q.Contact
	fmt.Fprintf(&b, "Name: %s %s\n", c.FirstName, c.LastName)
	if c.CompanyName != "" {
		fmt.Fprintf(&b, "Company: %s\n", c.CompanyName)
	}
	fmt.Fprintf(&b, "Email: %s\n", c.Email)
	fmt.Fprintf(&b, "Phone: %s\n\n", c.Phone)

	for _, l := range q.Lines {
		fmt.Fprintf(&b, "- %s [%s] x%d @ %s = %s\n",
			l.Name, l.ProductCode, l.Quantity, l.UnitPrice.StringFixed(2), l.Subtotal.StringFixed(2))
	}
	fmt.Fprintf(&b, "\nTotal: %s\n", q.Total.StringFixed(2))

	if c.OrderNotes != "" {
		fmt.Fprintf(&b, "\nNotes:\n%s\n", c.OrderNotes)
	}
	return b.String()
}

var _ domain.QuoteNotifier = (*QuoteMailer)(nil)
