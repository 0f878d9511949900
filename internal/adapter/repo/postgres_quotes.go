package repo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/example/storefront-service/internal/domain"
)

type PostgresQuoteRepo struct {
	Pool *pgxpool.Pool
}

func NewPostgresQuoteRepo(pool *pgxpool.Pool) *PostgresQuoteRepo {
	return &PostgresQuoteRepo{Pool: pool}
}

// Upsert is idempotent so redelivered messages are harmless.
func (r *PostgresQuoteRepo) Upsert(ctx context.Context, reference string, raw []byte) error {
	_, err := r.Pool.Exec(ctx, `INSERT INTO quotes(reference, payload) VALUES($1, $2)
        ON CONFLICT (reference) DO UPDATE SET payload = EXCLUDED.payload`, reference, raw)
	return err
}

var _ domain.QuoteRepository = (*PostgresQuoteRepo)(nil)
