// Package config provides runtime configuration values for the service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	CacheMemory    = "memory"
	CachePostgres  = "postgres"
	CacheFirestore = "firestore"
)

// Config holds settings for the HTTP server, its collaborators and the
// quote notifier.
type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration
	LogLevel        string
	AllowedOrigins  []string

	DatabaseURL string
	CatalogFile string

	CacheBackend       string
	FirestoreProject   string
	FirestoreCredsFile string
	GeneratorURL       string
	GenerateTimeout    time.Duration

	NATSURL       string
	STANClusterID string
	STANClientID  string
	QuotesSubject string
	QuotesQueue   string
	QuotesDurable string

	SendGridAPIKey       string
	SendGridAPIKeySecret string
	GCPProject           string
	QuoteMailFrom        string
	QuoteMailFromName    string
	QuoteNotifyEmail     string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func durenvms(key string, defMs int) time.Duration {
	return time.Duration(atoienv(key, defMs)) * time.Millisecond
}

func durenvs(key string, defSec int) time.Duration {
	return time.Duration(atoienv(key, defSec)) * time.Second
}

func listenv(key string) []string {
	var out []string
	for _, v := range strings.Split(getenv(key, ""), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// LoadDotEnv merges variables from the given files (default ".env") into the
// environment without overriding values that are already set. Missing files
// are ignored.
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		_ = godotenv.Load(f)
	}
}

// Load collects configuration from environment with defaults.
func Load() Config {
	backend := strings.ToLower(getenv("CACHE_BACKEND", CacheMemory))
	switch backend {
	case CacheMemory, CachePostgres, CacheFirestore:
	default:
		backend = CacheMemory
	}
	return Config{
		HTTPAddr:        getenv("HTTP_ADDR", ":8080"),
		ShutdownTimeout: durenvs("SHUTDOWN_TIMEOUT", 5),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		AllowedOrigins:  listenv("ALLOWED_ORIGINS"),

		DatabaseURL: getenv("DATABASE_URL", ""),
		CatalogFile: getenv("CATALOG_FILE", ""),

		CacheBackend:       backend,
		FirestoreProject:   getenv("FIRESTORE_PROJECT_ID", getenv("GOOGLE_CLOUD_PROJECT", "")),
		FirestoreCredsFile: getenv("FIRESTORE_CREDENTIALS_FILE", ""),
		GeneratorURL:       getenv("GENERATOR_URL", ""),
		GenerateTimeout:    durenvms("GENERATE_TIMEOUT_MS", 8000),

		NATSURL:       getenv("NATS_URL", ""),
		STANClusterID: getenv("STAN_CLUSTER_ID", "storefront-cluster"),
		STANClientID:  getenv("STAN_CLIENT_ID", ""),
		QuotesSubject: getenv("STAN_SUBJECT", "quotes.accepted"),
		QuotesQueue:   getenv("STAN_QUEUE", "quote-notifiers"),
		QuotesDurable: getenv("STAN_DURABLE", "quote-notifier"),

		SendGridAPIKey:       getenv("SENDGRID_API_KEY", ""),
		SendGridAPIKeySecret: getenv("SENDGRID_API_KEY_SECRET", ""),
		GCPProject:           getenv("GOOGLE_CLOUD_PROJECT", ""),
		QuoteMailFrom:        getenv("QUOTE_MAIL_FROM", ""),
		QuoteMailFromName:    getenv("QUOTE_MAIL_FROM_NAME", "Storefront"),
		QuoteNotifyEmail:     getenv("QUOTE_NOTIFY_EMAIL", ""),
	}
}
