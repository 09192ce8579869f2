package admin

import (
	"context"
	"testing"

	"github.com/ariefcatur/go-storefront.git/internal/catalog"
	"github.com/ariefcatur/go-storefront.git/internal/kv"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T) (*Session, *catalog.Repository) {
	t.Helper()
	repo := catalog.NewRepository(kv.NewMemoryStore(), catalog.StorageKey, zerolog.Nop())
	return NewSession(context.Background(), repo, catalog.NewEditor(), zerolog.Nop()), repo
}

func TestNewSession_SeedsDefaults(t *testing.T) {
	s, _ := newSession(t)
	assert.Equal(t, catalog.DefaultStoreID, s.Selected())
	assert.Equal(t, []StoreRef{
		{ID: "cafedelvalle", Name: "Café del Valle"},
		{ID: "sachacacao", Name: "Sacha Cacao"},
	}, s.Stores())
	assert.False(t, s.Dirty())
}

func TestSession_EditsStayInDraftUntilSave(t *testing.T) {
	ctx := context.Background()
	s, repo := newSession(t)

	require.NoError(t, s.SetAtPath(catalog.Path{catalog.Field("sachacacao"), catalog.Field("name")}, "Sacha Cacao Premium"))
	assert.True(t, s.Dirty())
	assert.Equal(t, "Sacha Cacao", repo.Load(ctx)["sachacacao"].Name)

	saved, err := s.Save(ctx)
	require.NoError(t, err)
	assert.False(t, s.Dirty())
	assert.Equal(t, "Sacha Cacao Premium", saved["sachacacao"].Name)
	assert.Equal(t, "Sacha Cacao Premium", repo.Load(ctx)["sachacacao"].Name)
}

func TestSession_ProductLifecycle(t *testing.T) {
	s, _ := newSession(t)

	p, err := s.AddProduct("cafedelvalle")
	require.NoError(t, err)
	st, ok := s.Store("cafedelvalle")
	require.True(t, ok)
	require.Len(t, st.Products, 5)

	require.NoError(t, s.SetAtPath(catalog.Path{catalog.Field("cafedelvalle"), catalog.Field("products"), catalog.Index(4), catalog.Field("price")}, "no es número"))
	st, _ = s.Store("cafedelvalle")
	assert.Equal(t, 0.0, st.Products[4].Price)

	require.NoError(t, s.RemoveProduct("cafedelvalle", p.ID))
	st, _ = s.Store("cafedelvalle")
	assert.Len(t, st.Products, 4)

	_, err = s.AddProduct("missing")
	require.ErrorIs(t, err, catalog.ErrStoreNotFound)
}

func TestSession_FailedEditLeavesDraft(t *testing.T) {
	s, _ := newSession(t)
	before := s.Snapshot()
	err := s.SetAtPath(catalog.Path{catalog.Field("sachacacao"), catalog.Field("products"), catalog.Index(99), catalog.Field("name")}, "x")
	require.ErrorIs(t, err, catalog.ErrOutOfRange)
	assert.Equal(t, before, s.Snapshot())
	assert.False(t, s.Dirty())
}

func TestSession_SelectAndReload(t *testing.T) {
	ctx := context.Background()
	s, _ := newSession(t)

	require.NoError(t, s.Select("cafedelvalle"))
	require.ErrorIs(t, s.Select("nope"), catalog.ErrStoreNotFound)
	assert.Equal(t, "cafedelvalle", s.Selected())

	require.NoError(t, s.SetAtPath(catalog.Path{catalog.Field("cafedelvalle"), catalog.Field("sectionTitle")}, "Cafés"))
	s.Reload(ctx)
	assert.False(t, s.Dirty())
	st, _ := s.Store("cafedelvalle")
	assert.Equal(t, "Nuestros Orígenes", st.SectionTitle)
	assert.Equal(t, "cafedelvalle", s.Selected())
}

func TestSavedNotice(t *testing.T) {
	assert.Equal(t, `Cambios para "Café del Valle" guardados correctamente.`, SavedNotice("Café del Valle"))
}
