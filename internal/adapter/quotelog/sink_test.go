package quotelog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/example/storefront-service/internal/domain"
)

func TestSinkLogsQuote(t *testing.T) {
	log, hook := test.NewNullLogger()
	q := domain.Quote{Reference: "ref-1", Total: decimal.RequireFromString("12.5"), Lines: make([]domain.ValidatedQuoteLine, 2)}
	if err := (Sink{Log: log}).Publish(context.Background(), q); err != nil {
		t.Fatal(err)
	}
	e := hook.LastEntry()
	if e == nil || e.Data["reference"] != "ref-1" || e.Data["lines"] != 2 || e.Data["total"] != "12.5" {
		t.Fatalf("unexpected entry %+v", e)
	}
}
