package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/example/storefront-service/internal/adapter/cache"
	"github.com/example/storefront-service/internal/adapter/catalog"
	"github.com/example/storefront-service/internal/adapter/firestore"
	"github.com/example/storefront-service/internal/adapter/generator"
	"github.com/example/storefront-service/internal/adapter/httpapi"
	"github.com/example/storefront-service/internal/adapter/natsstan"
	"github.com/example/storefront-service/internal/adapter/quotelog"
	"github.com/example/storefront-service/internal/adapter/repo"
	"github.com/example/storefront-service/internal/config"
	"github.com/example/storefront-service/internal/domain"
	"github.com/example/storefront-service/internal/obs"
	"github.com/example/storefront-service/internal/usecase"
)

func main() {
	config.LoadDotEnv()
	cfg := config.Load()
	log := obs.NewLogger(cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		var err error
		pool, err = pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.WithError(err).Fatal("db connect")
		}
		defer pool.Close()
		if err := repo.EnsureSchema(ctx, pool); err != nil {
			log.WithError(err).Fatal("init schema")
		}
	}

	cat, err := buildCatalog(cfg, pool)
	if err != nil {
		log.WithError(err).Fatal("catalog")
	}
	recCache, closeCache, err := buildCache(ctx, cfg, pool, log)
	if err != nil {
		log.WithError(err).Fatal("recommendation cache")
	}
	defer closeCache()

	var gen domain.RecommendationGenerator = generator.Heuristic{}
	if cfg.GeneratorURL != "" {
		gen = generator.NewHTTPClient(cfg.GeneratorURL)
	}

	var pub domain.QuotePublisher = quotelog.Sink{Log: log}
	if cfg.NATSURL != "" {
		clientID := cfg.STANClientID
		if clientID == "" {
			clientID = "storefront-api-" + uuid.NewString()[:8]
		}
		p, err := natsstan.NewPublisher(cfg.STANClusterID, clientID, cfg.NATSURL, cfg.QuotesSubject)
		if err != nil {
			log.WithError(err).Fatal("quote publisher")
		}
		defer p.Close()
		pub = p
	}

	api := httpapi.NewServer(&httpapi.Server{
		SubmitQuote: usecase.SubmitQuote{
			Validate:  usecase.ValidateQuote{Catalog: cat},
			Publisher: pub,
			Log:       log,
		},
		Recommend: usecase.Recommend{
			Catalog:         cat,
			Cache:           recCache,
			Generator:       gen,
			GenerateTimeout: cfg.GenerateTimeout,
			Log:             log,
		},
		GetProduct:     usecase.GetProductBySlug{Catalog: cat},
		ListCategories: usecase.ListCategories{Catalog: cat},
		Log:            log,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: api.Handler()}
	go func() {
		log.WithField("addr", srv.Addr).Info("http listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("http")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()
	_ = srv.Shutdown(shutdownCtx)
}

func buildCatalog(cfg config.Config, pool *pgxpool.Pool) (domain.CatalogReader, error) {
	switch {
	case cfg.CatalogFile != "":
		return catalog.NewFileCatalog(cfg.CatalogFile)
	case pool != nil:
		return repo.NewPostgresCatalog(pool), nil
	default:
		return nil, errors.New("set CATALOG_FILE or DATABASE_URL")
	}
}

// buildCache returns the configured cache fronted by a memory tier. Persistent
// backends are warmed before the server starts taking traffic.
func buildCache(ctx context.Context, cfg config.Config, pool *pgxpool.Pool, log logrus.FieldLogger) (domain.RecommendationCache, func(), error) {
	noop := func() {}
	switch cfg.CacheBackend {
	case config.CachePostgres:
		if pool == nil {
			return nil, noop, errors.New("CACHE_BACKEND=postgres requires DATABASE_URL")
		}
		back := repo.NewPostgresRecommendationRepo(pool)
		tiered := cache.NewTiered(back)
		n, err := usecase.WarmRecommendationCache{Source: back, Cache: tiered.Front}.Execute(ctx)
		if err != nil {
			return nil, noop, errors.Wrap(err, "warm recommendation cache")
		}
		log.WithField("entries", n).Info("recommendation cache warmed")
		return tiered, noop, nil
	case config.CacheFirestore:
		client, err := firestore.NewClient(ctx, cfg.FirestoreProject, cfg.FirestoreCredsFile)
		if err != nil {
			return nil, noop, err
		}
		return cache.NewTiered(firestore.NewRecommendationCacheFS(client)), func() { _ = client.Close() }, nil
	default:
		return cache.NewMemoryRecommendationCache(), noop, nil
	}
}
