// Package audit keeps a revision history of saved catalogs by consuming
// CatalogSaved events.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/ariefcatur/go-storefront.git/internal/catalog"
	"github.com/ariefcatur/go-storefront.git/internal/events"
	kafkax "github.com/ariefcatur/go-storefront.git/internal/kafka"
	"github.com/ariefcatur/go-storefront.git/internal/metrics"
	"github.com/ariefcatur/go-storefront.git/internal/redisx"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	kafkago "github.com/segmentio/kafka-go"
)

type Service struct {
	Repo        Recorder
	Redis       *redis.Client
	ServiceName string
	Logger      zerolog.Logger
}

// HandleCatalogSaved is installed as the consumer handler.
func (s *Service) HandleCatalogSaved(ctx context.Context, m kafkago.Message) error {
	var env events.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		s.Logger.Warn().Err(err).Int64("offset", m.Offset).Msg("skip undecodable message")
		metrics.AuditRevisions.WithLabelValues("malformed").Inc()
		return nil
	}
	if env.EventType != events.EventCatalogSaved {
		return nil
	}

	dkey := fmt.Sprintf(redisx.KeyDedup, s.ServiceName, env.EventID)
	fresh, err := s.Redis.SetNX(ctx, dkey, "1", redisx.TTLDedup).Result()
	if err != nil {
		// Postgres stays idempotent on event_id, go on without the fast path.
		s.Logger.Warn().Err(err).Str("event_id", env.EventID).Msg("dedup check failed")
		fresh = true
	}
	if !fresh {
		metrics.AuditRevisions.WithLabelValues("duplicate").Inc()
		return nil
	}

	p, err := kafkax.UnwrapPayload[events.CatalogSavedPayload](env.Payload)
	if err != nil {
		s.Logger.Warn().Err(err).Str("event_id", env.EventID).Msg("skip malformed payload")
		metrics.AuditRevisions.WithLabelValues("malformed").Inc()
		return nil
	}
	c, err := catalog.Decode(p.Catalog)
	if err != nil {
		s.Logger.Warn().Err(err).Str("event_id", env.EventID).Msg("skip malformed catalog")
		metrics.AuditRevisions.WithLabelValues("malformed").Inc()
		return nil
	}

	rev := Revision{
		ID:         uuid.NewString(),
		EventID:    env.EventID,
		StorageKey: p.StorageKey,
		Producer:   env.Producer,
		Stores:     len(c),
		Products:   countProducts(c),
		SavedAt:    env.OccurredAt,
		Catalog:    p.Catalog,
	}
	existed, err := s.Repo.Record(ctx, rev)
	if err != nil {
		// let the redelivery try again
		_ = s.Redis.Del(ctx, dkey).Err()
		metrics.AuditRevisions.WithLabelValues("error").Inc()
		return fmt.Errorf("record revision: %w", err)
	}
	if existed {
		metrics.AuditRevisions.WithLabelValues("duplicate").Inc()
		return nil
	}

	_ = s.Redis.Set(ctx, fmt.Sprintf(redisx.KeyCatalogRevision, p.StorageKey), rev.ID, redisx.TTLRevision).Err()
	metrics.AuditRevisions.WithLabelValues("recorded").Inc()
	s.Logger.Info().Str("revision", rev.ID).Str("key", rev.StorageKey).Int("stores", rev.Stores).Int("products", rev.Products).Msg("catalog revision recorded")
	return nil
}

func countProducts(c catalog.Catalog) int {
	n := 0
	for _, s := range c {
		n += len(s.Products)
	}
	return n
}
