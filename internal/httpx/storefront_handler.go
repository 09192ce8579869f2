package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/ariefcatur/go-storefront.git/internal/catalog"
	"github.com/ariefcatur/go-storefront.git/internal/events"
	kafkax "github.com/ariefcatur/go-storefront.git/internal/kafka"
	"github.com/ariefcatur/go-storefront.git/internal/metrics"
	"github.com/ariefcatur/go-storefront.git/internal/storefront"
	"github.com/go-chi/chi/v5"
	"net/http"
	"sort"
	"strings"
	"time"
)

// CatalogSource is where the storefront reads the saved catalog from.
type CatalogSource interface {
	Load(ctx context.Context) catalog.Catalog
}

type StorefrontHandler struct {
	Catalog  CatalogSource
	Producer kafkax.Publisher
	Service  string
}

type CheckoutItemReq struct {
	ProductID int64 `json:"product_id"`
	Qty       int   `json:"qty"`
}

type CheckoutReq struct {
	Store  string            `json:"store"`
	Method string            `json:"method"`
	Items  []CheckoutItemReq `json:"items"`
}

type StorefrontResp struct {
	StoreID string              `json:"store_id"`
	Store   catalog.StoreConfig `json:"store"`
}

func (h *StorefrontHandler) Register(r chi.Router) {
	r.Get("/storefront", h.getStore)
	r.Get("/storefront/theme.css", h.themeCSS)
	r.Post("/storefront/checkout", h.checkout)
}

func (h *StorefrontHandler) load(r *http.Request) catalog.Catalog {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()
	return h.Catalog.Load(ctx)
}

func (h *StorefrontHandler) getStore(w http.ResponseWriter, r *http.Request) {
	st, id, ok := storefront.Select(h.load(r), r.URL.Query().Get("store"))
	if !ok {
		writeError(w, http.StatusNotFound, "no stores configured")
		return
	}
	writeJSON(w, http.StatusOK, StorefrontResp{StoreID: id, Store: st})
}

// themeCSS renders the store theme as CSS custom properties on :root.
func (h *StorefrontHandler) themeCSS(w http.ResponseWriter, r *http.Request) {
	st, _, ok := storefront.Select(h.load(r), r.URL.Query().Get("store"))
	if !ok {
		writeError(w, http.StatusNotFound, "no stores configured")
		return
	}
	keys := make([]string, 0, len(st.Theme))
	for k := range st.Theme {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "  %s: %s;\n", k, st.Theme[k])
	}
	b.WriteString("}\n")
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(b.String()))
}

func (h *StorefrontHandler) checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	st, storeID, ok := storefront.Select(h.load(r), req.Store)
	if !ok {
		writeError(w, http.StatusNotFound, "no stores configured")
		return
	}

	var cart storefront.Cart
	for _, it := range req.Items {
		i := st.ProductIndex(it.ProductID)
		if i < 0 {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("product not found: %d", it.ProductID))
			return
		}
		cart.Add(st.Products[i])
		cart.UpdateQuantity(it.ProductID, it.Qty)
	}

	co, err := storefront.NewCheckout(storeID, st, &cart, req.Method)
	if err != nil {
		if errors.Is(err, storefront.ErrEmptyCart) || errors.Is(err, storefront.ErrUnknownMethod) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	metrics.Checkouts.WithLabelValues(co.Method).Inc()
	h.publishCheckout(r, co)
	writeJSON(w, http.StatusOK, co)
}

func (h *StorefrontHandler) publishCheckout(r *http.Request, co storefront.Checkout) {
	if h.Producer == nil {
		return
	}
	lines := make([]events.CheckoutLine, 0, len(co.Items))
	for _, it := range co.Items {
		lines = append(lines, events.CheckoutLine{ProductID: it.ID, Name: it.Name, Qty: it.Quantity, Price: it.Price})
	}
	payload := kafkax.MustMarshal(events.CheckoutStartedPayload{StoreID: co.StoreID, Method: co.Method, Lines: lines, Total: co.Total})
	ev := events.New(events.EventCheckoutStarted, h.Service, r.Header.Get("X-Request-Id"), co.StoreID, payload)
	h.Producer.Publish(events.PartitionKey(co.StoreID), kafkax.MustMarshal(ev),
		kafkax.EventHeaders(events.EventCheckoutStarted, events.Version)...)
}
