package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/example/storefront-service/internal/adapter/mail"
	"github.com/example/storefront-service/internal/adapter/natsstan"
	"github.com/example/storefront-service/internal/adapter/repo"
	"github.com/example/storefront-service/internal/adapter/secrets"
	"github.com/example/storefront-service/internal/config"
	"github.com/example/storefront-service/internal/obs"
	"github.com/example/storefront-service/internal/usecase"
)

func main() {
	config.LoadDotEnv()
	cfg := config.Load()
	log := obs.NewLogger(cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if cfg.DatabaseURL == "" || cfg.NATSURL == "" {
		log.Fatal("quote-notifier requires DATABASE_URL and NATS_URL")
	}
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("db connect")
	}
	defer pool.Close()
	if err := repo.EnsureSchema(ctx, pool); err != nil {
		log.WithError(err).Fatal("init schema")
	}

	apiKey := cfg.SendGridAPIKey
	if cfg.SendGridAPIKeySecret != "" {
		apiKey, err = secrets.Access(ctx, cfg.GCPProject, cfg.SendGridAPIKeySecret)
		if err != nil {
			log.WithError(err).Fatal("resolve sendgrid api key")
		}
	}

	uc := usecase.ProcessAcceptedQuote{Repo: repo.NewPostgresQuoteRepo(pool)}
	if apiKey != "" && cfg.QuoteNotifyEmail != "" {
		uc.Notifier = &mail.QuoteMailer{
			Sender: mail.NewSendGridClient(apiKey, cfg.QuoteMailFromName),
			From:   cfg.QuoteMailFrom,
			To:     cfg.QuoteNotifyEmail,
			Log:    log,
		}
	} else {
		log.Warn("sendgrid not configured, quotes are stored without email")
	}

	clientID := cfg.STANClientID
	if clientID == "" {
		clientID = "quote-notifier-" + uuid.NewString()[:8]
	}
	sub := &natsstan.Subscriber{
		ClusterID: cfg.STANClusterID,
		ClientID:  clientID,
		URL:       cfg.NATSURL,
		Subject:   cfg.QuotesSubject,
		Queue:     cfg.QuotesQueue,
		Durable:   cfg.QuotesDurable,
		Log:       log,
	}
	if err := sub.Subscribe(ctx, uc.Execute); err != nil {
		log.WithError(err).Fatal("stan subscribe")
	}
	log.WithField("subject", cfg.QuotesSubject).Info("waiting for accepted quotes")
	<-ctx.Done()
}
