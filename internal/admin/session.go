// Package admin holds the admin panel's editing session: the draft catalog
// the operator is working on, the selected store, and explicit save.
package admin

import (
	"context"
	"fmt"
	"sync"

	"github.com/ariefcatur/go-storefront.git/internal/catalog"
	"github.com/ariefcatur/go-storefront.git/internal/metrics"
	"github.com/rs/zerolog"
)

type StoreRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Session is the single editing session of a process. Edits go to the
// draft only; nothing reaches persistence until Save.
type Session struct {
	mu       sync.Mutex
	repo     *catalog.Repository
	editor   *catalog.Editor
	draft    catalog.Catalog
	selected string
	dirty    bool
	logger   zerolog.Logger
}

// NewSession reads the repository once.
func NewSession(ctx context.Context, repo *catalog.Repository, editor *catalog.Editor, logger zerolog.Logger) *Session {
	s := &Session{repo: repo, editor: editor, logger: logger}
	s.draft = repo.Load(ctx)
	s.selected = defaultSelection(s.draft)
	return s
}

func defaultSelection(c catalog.Catalog) string {
	if _, ok := c[catalog.DefaultStoreID]; ok {
		return catalog.DefaultStoreID
	}
	if ids := c.IDs(); len(ids) > 0 {
		return ids[0]
	}
	return ""
}

// Snapshot returns a copy of the draft.
func (s *Session) Snapshot() catalog.Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.Clone()
}

func (s *Session) Stores() []StoreRef {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := s.draft.IDs()
	out := make([]StoreRef, 0, len(ids))
	for _, id := range ids {
		out = append(out, StoreRef{ID: id, Name: s.draft[id].Name})
	}
	return out
}

func (s *Session) Store(id string) (catalog.StoreConfig, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.draft[id]
	if !ok {
		return catalog.StoreConfig{}, false
	}
	return st.Clone(), true
}

func (s *Session) Selected() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

func (s *Session) Select(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.draft[id]; !ok {
		return fmt.Errorf("%w: %s", catalog.ErrStoreNotFound, id)
	}
	s.selected = id
	return nil
}

func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

func (s *Session) SetAtPath(path catalog.Path, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := s.editor.SetAtPath(s.draft, path, value)
	if err != nil {
		metrics.CatalogEdits.WithLabelValues("set", "error").Inc()
		return err
	}
	s.commit(next, "set")
	return nil
}

func (s *Session) AddProduct(storeID string) (catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, p, err := s.editor.AddProduct(s.draft, storeID)
	if err != nil {
		metrics.CatalogEdits.WithLabelValues("add_product", "error").Inc()
		return catalog.Product{}, err
	}
	s.commit(next, "add_product")
	return p, nil
}

func (s *Session) RemoveProduct(storeID string, productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := s.editor.RemoveProduct(s.draft, storeID, productID)
	if err != nil {
		metrics.CatalogEdits.WithLabelValues("remove_product", "error").Inc()
		return err
	}
	s.commit(next, "remove_product")
	return nil
}

func (s *Session) commit(next catalog.Catalog, op string) {
	s.draft = next
	s.dirty = true
	metrics.CatalogEdits.WithLabelValues(op, "ok").Inc()
}

// Save persists the draft and returns the saved copy. The draft stays the
// source of truth when the write fails.
func (s *Session) Save(ctx context.Context) (catalog.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.TrySave(ctx, s.draft); err != nil {
		return nil, err
	}
	s.dirty = false
	return s.draft.Clone(), nil
}

// Reload discards the draft and reads the repository again.
func (s *Session) Reload(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = s.repo.Load(ctx)
	s.dirty = false
	if _, ok := s.draft[s.selected]; !ok {
		s.selected = defaultSelection(s.draft)
	}
	s.logger.Info().Int("stores", len(s.draft)).Msg("draft reloaded")
}

// SavedNotice is the confirmation shown after a successful save.
func SavedNotice(storeName string) string {
	return fmt.Sprintf("Cambios para %q guardados correctamente.", storeName)
}
