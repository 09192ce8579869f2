package audit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/ariefcatur/go-storefront.git/internal/catalog"
	"github.com/ariefcatur/go-storefront.git/internal/events"
	kafkax "github.com/ariefcatur/go-storefront.git/internal/kafka"
	"github.com/ariefcatur/go-storefront.git/internal/redisx"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecorder struct {
	mu   sync.Mutex
	revs map[string]Revision
	err  error
}

func (f *fakeRecorder) Record(_ context.Context, rev Revision) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	if f.revs == nil {
		f.revs = map[string]Revision{}
	}
	if _, ok := f.revs[rev.EventID]; ok {
		return true, nil
	}
	f.revs[rev.EventID] = rev
	return false, nil
}

func newService(t *testing.T, rec Recorder) (*Service, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return &Service{Repo: rec, Redis: rdb, ServiceName: "auditor", Logger: zerolog.Nop()}, mr
}

func savedMessage(t *testing.T) (kafkago.Message, events.Envelope) {
	t.Helper()
	raw, err := catalog.Encode(catalog.Defaults())
	require.NoError(t, err)
	payload := kafkax.MustMarshal(events.CatalogSavedPayload{StorageKey: catalog.StorageKey, Catalog: raw})
	env := events.New(events.EventCatalogSaved, "storefront-api", "", catalog.StorageKey, payload)
	return kafkago.Message{Value: kafkax.MustMarshal(env)}, env
}

func TestHandleCatalogSaved_Records(t *testing.T) {
	rec := &fakeRecorder{}
	svc, mr := newService(t, rec)
	msg, env := savedMessage(t)

	require.NoError(t, svc.HandleCatalogSaved(context.Background(), msg))

	require.Contains(t, rec.revs, env.EventID)
	rev := rec.revs[env.EventID]
	assert.Equal(t, 2, rev.Stores)
	assert.Equal(t, 12, rev.Products)
	assert.Equal(t, catalog.StorageKey, rev.StorageKey)

	got, err := mr.Get(fmt.Sprintf(redisx.KeyCatalogRevision, catalog.StorageKey))
	require.NoError(t, err)
	assert.Equal(t, rev.ID, got)
	assert.True(t, mr.Exists(fmt.Sprintf(redisx.KeyDedup, "auditor", env.EventID)))
}

func TestHandleCatalogSaved_DedupInRedis(t *testing.T) {
	rec := &fakeRecorder{}
	svc, _ := newService(t, rec)
	msg, _ := savedMessage(t)

	require.NoError(t, svc.HandleCatalogSaved(context.Background(), msg))
	rec.revs = nil
	require.NoError(t, svc.HandleCatalogSaved(context.Background(), msg))
	assert.Empty(t, rec.revs, "redelivery should stop at the dedup key")
}

func TestHandleCatalogSaved_RecordErrorReleasesDedup(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("db down")}
	svc, mr := newService(t, rec)
	msg, env := savedMessage(t)

	err := svc.HandleCatalogSaved(context.Background(), msg)
	require.Error(t, err)
	assert.False(t, mr.Exists(fmt.Sprintf(redisx.KeyDedup, "auditor", env.EventID)))

	rec.err = nil
	require.NoError(t, svc.HandleCatalogSaved(context.Background(), msg))
	assert.Contains(t, rec.revs, env.EventID)
}

func TestHandleCatalogSaved_Skips(t *testing.T) {
	rec := &fakeRecorder{}
	svc, _ := newService(t, rec)

	other := events.New(events.EventCheckoutStarted, "storefront-api", "", "sachacacao", []byte(`{}`))
	badCatalog := events.New(events.EventCatalogSaved, "storefront-api", "", catalog.StorageKey,
		kafkax.MustMarshal(events.CatalogSavedPayload{StorageKey: catalog.StorageKey, Catalog: []byte(`[1,2]`)}))

	for name, value := range map[string][]byte{
		"not json":    []byte("{"),
		"other type":  kafkax.MustMarshal(other),
		"bad catalog": kafkax.MustMarshal(badCatalog),
	} {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, svc.HandleCatalogSaved(context.Background(), kafkago.Message{Value: value}))
		})
	}
	assert.Empty(t, rec.revs)
}

func TestHandleCatalogSaved_RedisDown(t *testing.T) {
	rec := &fakeRecorder{}
	svc, mr := newService(t, rec)
	mr.Close()
	msg, env := savedMessage(t)

	require.NoError(t, svc.HandleCatalogSaved(context.Background(), msg))
	assert.Contains(t, rec.revs, env.EventID)
}
