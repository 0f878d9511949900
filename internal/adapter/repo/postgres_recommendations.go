package repo

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/example/storefront-service/internal/domain"
)

type PostgresRecommendationRepo struct {
	Pool *pgxpool.Pool
}

func NewPostgresRecommendationRepo(pool *pgxpool.Pool) *PostgresRecommendationRepo {
	return &PostgresRecommendationRepo{Pool: pool}
}

func (r *PostgresRecommendationRepo) Get(ctx context.Context, fp domain.Fingerprint) (domain.RecommendationEntry, bool, error) {
	var raw []byte
	err := r.Pool.QueryRow(ctx, `SELECT payload FROM recommendation_cache WHERE fingerprint = $1`, fp.String()).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.RecommendationEntry{}, false, nil
	}
	if err != nil {
		return domain.RecommendationEntry{}, false, errors.Wrap(err, "read recommendation cache")
	}
	var e domain.RecommendationEntry
	if err := json.Unmarshal(raw, &e); err != nil {
		return domain.RecommendationEntry{}, false, errors.Wrap(err, "decode recommendation cache entry")
	}
	e.Fingerprint = fp
	return e, true, nil
}

func (r *PostgresRecommendationRepo) Put(ctx context.Context, e domain.RecommendationEntry) error {
	raw, err := json.Marshal(e)
	if err != nil {
		return err
	}
	_, err = r.Pool.Exec(ctx, `INSERT INTO recommendation_cache(fingerprint, payload) VALUES($1, $2)
        ON CONFLICT (fingerprint) DO UPDATE SET payload = EXCLUDED.payload`, e.Fingerprint.String(), raw)
	return errors.Wrap(err, "write recommendation cache")
}

func (r *PostgresRecommendationRepo) LoadAll(ctx context.Context, fn func(fp string, raw []byte) error) error {
	rows, err := r.Pool.Query(ctx, `SELECT fingerprint, payload FROM recommendation_cache`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var fp string
		var raw []byte
		if err := rows.Scan(&fp, &raw); err != nil {
			return err
		}
		if err := fn(fp, raw); err != nil {
			return err
		}
	}
	return rows.Err()
}

var (
	_ domain.RecommendationCache  = (*PostgresRecommendationRepo)(nil)
	_ domain.RecommendationLoader = (*PostgresRecommendationRepo)(nil)
)
