package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"github.com/ariefcatur/go-storefront.git/internal/admin"
	"github.com/ariefcatur/go-storefront.git/internal/catalog"
	"github.com/ariefcatur/go-storefront.git/internal/events"
	kafkax "github.com/ariefcatur/go-storefront.git/internal/kafka"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/rs/zerolog"
	"net/http"
	"strconv"
	"time"
)

type AdminHandler struct {
	Session    *admin.Session
	Producer   kafkax.Publisher
	Service    string
	StorageKey string
	RateLimit  int // per client IP per minute, 0 disables
	Logger     zerolog.Logger
}

type SetFieldReq struct {
	Path  catalog.Path    `json:"path"`
	Value json.RawMessage `json:"value"`
}

type SelectReq struct {
	ID string `json:"id"`
}

type SaveResp struct {
	Saved  bool   `json:"saved"`
	Notice string `json:"notice,omitempty"`
	Error  string `json:"error,omitempty"`
}

func (h *AdminHandler) Register(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		if h.RateLimit > 0 {
			r.Use(httprate.LimitByIP(h.RateLimit, time.Minute))
		}
		r.Get("/stores", h.listStores)
		r.Get("/stores/{id}", h.getStore)
		r.Get("/selected", h.getSelected)
		r.Put("/selected", h.selectStore)
		r.Patch("/catalog", h.setField)
		r.Post("/stores/{id}/products", h.addProduct)
		r.Delete("/stores/{id}/products/{productID}", h.removeProduct)
		r.Post("/save", h.save)
		r.Post("/reload", h.reload)
	})
}

func (h *AdminHandler) listStores(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"stores":   h.Session.Stores(),
		"selected": h.Session.Selected(),
		"dirty":    h.Session.Dirty(),
	})
}

func (h *AdminHandler) getStore(w http.ResponseWriter, r *http.Request) {
	st, ok := h.Session.Store(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "store not found")
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *AdminHandler) getSelected(w http.ResponseWriter, r *http.Request) {
	st, ok := h.Session.Store(h.Session.Selected())
	if !ok {
		writeError(w, http.StatusNotFound, "no store selected")
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *AdminHandler) selectStore(w http.ResponseWriter, r *http.Request) {
	var req SelectReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.Session.Select(req.ID); err != nil {
		h.editError(w, err)
		return
	}
	h.getSelected(w, r)
}

func (h *AdminHandler) setField(w http.ResponseWriter, r *http.Request) {
	var req SetFieldReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}
	if len(req.Path) == 0 || len(req.Value) == 0 {
		writeError(w, http.StatusBadRequest, "missing fields")
		return
	}
	dec := json.NewDecoder(bytes.NewReader(req.Value))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		writeError(w, http.StatusBadRequest, "invalid value")
		return
	}

	if err := h.Session.SetAtPath(req.Path, value); err != nil {
		h.editError(w, err)
		return
	}
	st, _ := h.Session.Store(req.Path[0].Name())
	writeJSON(w, http.StatusOK, st)
}

func (h *AdminHandler) addProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.Session.AddProduct(chi.URLParam(r, "id"))
	if err != nil {
		h.editError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *AdminHandler) removeProduct(w http.ResponseWriter, r *http.Request) {
	pid, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	if err := h.Session.RemoveProduct(chi.URLParam(r, "id"), pid); err != nil {
		h.editError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) save(w http.ResponseWriter, r *http.Request) {
	saved, err := h.Session.Save(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, SaveResp{Saved: false, Error: "save failed"})
		return
	}
	h.publishSaved(r, saved)

	name := ""
	if st, ok := saved[h.Session.Selected()]; ok {
		name = st.Name
	}
	writeJSON(w, http.StatusOK, SaveResp{Saved: true, Notice: admin.SavedNotice(name)})
}

func (h *AdminHandler) reload(w http.ResponseWriter, r *http.Request) {
	h.Session.Reload(r.Context())
	h.listStores(w, r)
}

func (h *AdminHandler) publishSaved(r *http.Request, c catalog.Catalog) {
	if h.Producer == nil {
		return
	}
	raw, err := catalog.Encode(c)
	if err != nil {
		h.Logger.Warn().Err(err).Msg("encode saved catalog for event")
		return
	}
	stores := make([]events.StoreSummary, 0, len(c))
	for _, id := range c.IDs() {
		stores = append(stores, events.StoreSummary{StoreID: id, Name: c[id].Name, Products: len(c[id].Products)})
	}
	payload := kafkax.MustMarshal(events.CatalogSavedPayload{StorageKey: h.StorageKey, Stores: stores, Catalog: raw})
	ev := events.New(events.EventCatalogSaved, h.Service, r.Header.Get("X-Request-Id"), h.StorageKey, payload)
	h.Producer.Publish(events.PartitionKey(h.StorageKey), kafkax.MustMarshal(ev),
		kafkax.EventHeaders(events.EventCatalogSaved, events.Version)...)
}

func (h *AdminHandler) editError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrStoreNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, catalog.ErrOutOfRange):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, catalog.ErrInvalidValue), errors.Is(err, catalog.ErrImmutableField):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		h.Logger.Error().Err(err).Msg("admin edit failed")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
