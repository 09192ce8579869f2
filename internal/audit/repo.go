package audit

import (
	"context"
	"encoding/json"
	"github.com/jackc/pgx/v5/pgxpool"
	"time"
)

// Revision is one saved catalog as seen on the CatalogSaved stream.
type Revision struct {
	ID         string
	EventID    string
	StorageKey string
	Producer   string
	Stores     int
	Products   int
	SavedAt    time.Time
	Catalog    json.RawMessage
}

type Recorder interface {
	// Record stores rev; existed reports an event id that was already recorded.
	Record(ctx context.Context, rev Revision) (existed bool, err error)
}

type Repo struct{ DB *pgxpool.Pool }

func (r *Repo) EnsureSchema(ctx context.Context) error {
	_, err := r.DB.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS catalog_revisions (
			id            UUID PRIMARY KEY,
			event_id      TEXT NOT NULL UNIQUE,
			storage_key   TEXT NOT NULL,
			producer      TEXT NOT NULL,
			store_count   INT NOT NULL,
			product_count INT NOT NULL,
			saved_at      TIMESTAMPTZ NOT NULL,
			catalog       JSONB NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_catalog_revisions_key_saved ON catalog_revisions(storage_key, saved_at DESC);
	`)
	return err
}

// Record is idempotent on event_id.
func (r *Repo) Record(ctx context.Context, rev Revision) (bool, error) {
	ct, err := r.DB.Exec(ctx, `
		INSERT INTO catalog_revisions(id, event_id, storage_key, producer, store_count, product_count, saved_at, catalog)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (event_id) DO NOTHING
	`, rev.ID, rev.EventID, rev.StorageKey, rev.Producer, rev.Stores, rev.Products, rev.SavedAt, string(rev.Catalog))
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() == 0, nil
}

func (r *Repo) Latest(ctx context.Context, storageKey string) (Revision, error) {
	var rev Revision
	var raw string
	err := r.DB.QueryRow(ctx, `
		SELECT id::text, event_id, storage_key, producer, store_count, product_count, saved_at, catalog::text
		FROM catalog_revisions WHERE storage_key=$1
		ORDER BY saved_at DESC LIMIT 1`, storageKey).
		Scan(&rev.ID, &rev.EventID, &rev.StorageKey, &rev.Producer, &rev.Stores, &rev.Products, &rev.SavedAt, &raw)
	if err != nil {
		return Revision{}, err
	}
	rev.Catalog = json.RawMessage(raw)
	return rev, nil
}
