package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var keys = []string{
	"HTTP_ADDR", "SHUTDOWN_TIMEOUT", "LOG_LEVEL", "ALLOWED_ORIGINS", "DATABASE_URL",
	"CATALOG_FILE", "CACHE_BACKEND", "GENERATOR_URL", "GENERATE_TIMEOUT_MS",
	"NATS_URL", "STAN_SUBJECT", "QUOTE_NOTIFY_EMAIL",
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range keys {
		t.Setenv(k, "")
	}
	c := Load()
	if c.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr default")
	}
	if c.ShutdownTimeout != 5*time.Second {
		t.Fatalf("ShutdownTimeout default")
	}
	if c.CacheBackend != CacheMemory {
		t.Fatalf("CacheBackend default")
	}
	if c.GenerateTimeout != 8*time.Second {
		t.Fatalf("GenerateTimeout default")
	}
	if c.QuotesSubject != "quotes.accepted" {
		t.Fatalf("QuotesSubject default")
	}
	if len(c.AllowedOrigins) != 0 {
		t.Fatalf("AllowedOrigins default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SHUTDOWN_TIMEOUT", "2")
	t.Setenv("CACHE_BACKEND", "Postgres")
	t.Setenv("GENERATE_TIMEOUT_MS", "250")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	c := Load()
	if c.HTTPAddr != ":9090" || c.ShutdownTimeout != 2*time.Second {
		t.Fatalf("server env: %+v", c)
	}
	if c.CacheBackend != CachePostgres {
		t.Fatalf("CacheBackend env: %q", c.CacheBackend)
	}
	if c.GenerateTimeout != 250*time.Millisecond {
		t.Fatalf("GenerateTimeout env")
	}
	if len(c.AllowedOrigins) != 2 || c.AllowedOrigins[1] != "https://b.example" {
		t.Fatalf("AllowedOrigins env: %v", c.AllowedOrigins)
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")
	t.Setenv("CACHE_BACKEND", "redis")
	c := Load()
	if c.ShutdownTimeout != 5*time.Second {
		t.Fatalf("invalid duration should use default")
	}
	if c.CacheBackend != CacheMemory {
		t.Fatalf("unknown backend should use memory")
	}
}

func TestLoadDotEnvKeepsExisting(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, ".env")
	if err := os.WriteFile(f, []byte("HTTP_ADDR=:7070\nQUOTE_NOTIFY_EMAIL=sales@example.com\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("QUOTE_NOTIFY_EMAIL", "")
	os.Unsetenv("QUOTE_NOTIFY_EMAIL")
	LoadDotEnv(f, filepath.Join(dir, "missing.env"))
	c := Load()
	if c.HTTPAddr != ":9999" {
		t.Fatalf("existing env overridden: %s", c.HTTPAddr)
	}
	if c.QuoteNotifyEmail != "sales@example.com" {
		t.Fatalf("dotenv value not loaded: %q", c.QuoteNotifyEmail)
	}
}
