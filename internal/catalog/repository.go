package catalog

import (
	"context"
	"errors"

	"github.com/ariefcatur/go-storefront.git/internal/kv"
	"github.com/ariefcatur/go-storefront.git/internal/metrics"
	"github.com/rs/zerolog"
)

// Repository loads and saves the catalog blob under a single key.
type Repository struct {
	store  kv.Store
	key    string
	logger zerolog.Logger
}

func NewRepository(store kv.Store, key string, logger zerolog.Logger) *Repository {
	if key == "" {
		key = StorageKey
	}
	return &Repository{store: store, key: key, logger: logger}
}

// Load returns the persisted catalog, or a fresh copy of the defaults when
// nothing usable is stored. It never fails; read and parse problems are
// logged and treated as "no data".
func (r *Repository) Load(ctx context.Context) Catalog {
	raw, err := r.store.Get(ctx, r.key)
	switch {
	case errors.Is(err, kv.ErrNotFound):
		r.logger.Debug().Str("key", r.key).Msg("no persisted catalog, using defaults")
		metrics.CatalogLoads.WithLabelValues("default").Inc()
		return Defaults()
	case err != nil:
		r.logger.Error().Err(err).Str("key", r.key).Msg("read catalog failed, using defaults")
		metrics.CatalogLoads.WithLabelValues("read_error").Inc()
		return Defaults()
	}

	c, err := Decode(raw)
	if err != nil {
		r.logger.Error().Err(err).Str("key", r.key).Msg("persisted catalog is malformed, using defaults")
		metrics.CatalogLoads.WithLabelValues("malformed").Inc()
		return Defaults()
	}
	if c == nil {
		metrics.CatalogLoads.WithLabelValues("default").Inc()
		return Defaults()
	}

	for key, s := range c {
		if s.ID != key {
			r.logger.Warn().Str("store", key).Str("id", s.ID).Msg("store id differs from its key, using key")
			s.ID = key
			c[key] = s
		}
	}
	metrics.CatalogLoads.WithLabelValues("persisted").Inc()
	return c
}

// Save writes the full catalog, replacing any previous value. Failures are
// logged only; use TrySave when the caller needs to know.
func (r *Repository) Save(ctx context.Context, c Catalog) {
	_ = r.TrySave(ctx, c)
}

func (r *Repository) TrySave(ctx context.Context, c Catalog) error {
	b, err := Encode(c)
	if err != nil {
		r.logger.Error().Err(err).Msg("save catalog failed")
		metrics.CatalogSaves.WithLabelValues("error").Inc()
		return err
	}
	if err := r.store.Set(ctx, r.key, b); err != nil {
		r.logger.Error().Err(err).Str("key", r.key).Int("bytes", len(b)).Msg("save catalog failed")
		metrics.CatalogSaves.WithLabelValues("error").Inc()
		return err
	}
	r.logger.Info().Str("key", r.key).Int("stores", len(c)).Int("bytes", len(b)).Msg("catalog saved")
	metrics.CatalogSaves.WithLabelValues("ok").Inc()
	return nil
}
