package natsstan

import (
	"context"
	"fmt"
	"time"

	stan "github.com/nats-io/stan.go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/example/storefront-service/internal/domain"
)

type Subscriber struct {
	ClusterID string
	ClientID  string
	URL       string
	Subject   string
	Queue     string
	Durable   string
	Log       logrus.FieldLogger
}

func (s *Subscriber) Subscribe(ctx context.Context, handler func(ctx context.Context, raw []byte) error) error {
	clientID := s.ClientID
	if clientID == "" {
		clientID = fmt.Sprintf("quote-notifier-%d", time.Now().UnixNano())
	}
	log := s.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	sc, err := stan.Connect(s.ClusterID, clientID, stan.NatsURL(s.URL))
	if err != nil {
		return err
	}
	go func() {
		<-ctx.Done()
		sc.Close()
	}()
	_, err = sc.QueueSubscribe(s.Subject, s.Queue, func(m *stan.Msg) {
		hCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		mlog := log.WithField("sequence", m.Sequence)
		if err := handler(hCtx, m.Data); err != nil {
			if !errors.Is(err, domain.ErrValidation) {
				// not acked: the message is redelivered after AckWait
				mlog.WithError(err).Warn("quote handler failed")
				return
			}
			mlog.WithError(err).Error("dropping malformed quote message")
		}
		if err := m.Ack(); err != nil {
			mlog.WithError(err).Warn("ack failed")
		}
	}, stan.DurableName(s.Durable), stan.SetManualAckMode(), stan.AckWait(30*time.Second), stan.DeliverAllAvailable())
	return err
}

var _ domain.MessageSubscriber = (*Subscriber)(nil)
