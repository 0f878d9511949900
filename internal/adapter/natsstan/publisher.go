// Package natsstan connects the quote pipeline to NATS Streaming.
package natsstan

import (
	"context"
	"encoding/json"
	"sync"

	stan "github.com/nats-io/stan.go"
	"github.com/pkg/errors"

	"github.com/example/storefront-service/internal/domain"
)

// Publisher sends accepted quotes to Subject. Publish blocks until the
// streaming server acknowledges the message.
type Publisher struct {
	Subject string

	mu   sync.Mutex
	conn stan.Conn
}

func NewPublisher(clusterID, clientID, url, subject string) (*Publisher, error) {
	sc, err := stan.Connect(clusterID, clientID, stan.NatsURL(url))
	if err != nil {
		return nil, errors.Wrap(err, "stan connect")
	}
	return &Publisher{Subject: subject, conn: sc}, nil
}

func (p *Publisher) Publish(ctx context.Context, q domain.Quote) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := json.Marshal(q)
	if err != nil {
		return err
	}
	p.mu.Lock()
	conn := p.conn
	p.mu.Unlock()
	if conn == nil {
		return errors.New("stan publisher is closed")
	}
	return errors.Wrap(conn.Publish(p.Subject, raw), "stan publish")
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.conn == nil {
		return nil
	}
	err := p.conn.Close()
	p.conn = nil
	return err
}

var _ domain.QuotePublisher = (*Publisher)(nil)
