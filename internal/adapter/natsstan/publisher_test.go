package natsstan

import (
	"context"
	"testing"

	"github.com/example/storefront-service/internal/domain"
)

func TestPublisherClosed(t *testing.T) {
	p := &Publisher{Subject: "quotes.accepted"}
	if err := p.Publish(context.Background(), domain.Quote{Reference: "r"}); err == nil {
		t.Fatal("publish on a closed publisher must fail")
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close on closed publisher: %v", err)
	}
}

func TestPublisherCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := (&Publisher{}).Publish(ctx, domain.Quote{}); err == nil {
		t.Fatal("expected context error")
	}
}
