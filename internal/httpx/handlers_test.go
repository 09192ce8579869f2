package httpx

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/ariefcatur/go-storefront.git/internal/admin"
	"github.com/ariefcatur/go-storefront.git/internal/catalog"
	"github.com/ariefcatur/go-storefront.git/internal/events"
	"github.com/ariefcatur/go-storefront.git/internal/kv"
	"github.com/ariefcatur/go-storefront.git/internal/storefront"
	"github.com/rs/zerolog"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu   sync.Mutex
	msgs []kafkago.Message
}

func (p *recordingPublisher) Publish(key, value []byte, headers ...kafkago.Header) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, kafkago.Message{Key: key, Value: value, Headers: headers})
}

func (p *recordingPublisher) envelopes(t *testing.T) []events.Envelope {
	t.Helper()
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.Envelope, 0, len(p.msgs))
	for _, m := range p.msgs {
		var env events.Envelope
		require.NoError(t, json.Unmarshal(m.Value, &env))
		out = append(out, env)
	}
	return out
}

type testServer struct {
	srv      *httptest.Server
	repo     *catalog.Repository
	saved    *recordingPublisher
	checkout *recordingPublisher
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	repo := catalog.NewRepository(kv.NewMemoryStore(), catalog.StorageKey, zerolog.Nop())
	session := admin.NewSession(context.Background(), repo, catalog.NewEditor(), zerolog.Nop())
	ts := &testServer{repo: repo, saved: &recordingPublisher{}, checkout: &recordingPublisher{}}

	router := NewRouter()
	(&AdminHandler{Session: session, Producer: ts.saved, Service: "test", StorageKey: catalog.StorageKey, Logger: zerolog.Nop()}).Register(router)
	(&StorefrontHandler{Catalog: repo, Producer: ts.checkout, Service: "test"}).Register(router)
	ts.srv = httptest.NewServer(router)
	t.Cleanup(ts.srv.Close)
	return ts
}

func (ts *testServer) do(t *testing.T, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequest(method, ts.srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, respBody
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	resp, body := ts.do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))
}

func TestAdmin_EditSaveFlow(t *testing.T) {
	ts := newTestServer(t)

	resp, body := ts.do(t, http.MethodPatch, "/admin/catalog", `{"path":["sachacacao","products",0,"price"],"value":"12.5"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var st catalog.StoreConfig
	require.NoError(t, json.Unmarshal(body, &st))
	assert.Equal(t, 12.5, st.Products[0].Price)

	// not persisted before save
	assert.Equal(t, 85.0, ts.repo.Load(context.Background())["sachacacao"].Products[0].Price)

	resp, body = ts.do(t, http.MethodPost, "/admin/save", "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var sr SaveResp
	require.NoError(t, json.Unmarshal(body, &sr))
	assert.True(t, sr.Saved)
	assert.Equal(t, `Cambios para "Sacha Cacao" guardados correctamente.`, sr.Notice)
	assert.Equal(t, 12.5, ts.repo.Load(context.Background())["sachacacao"].Products[0].Price)

	envs := ts.saved.envelopes(t)
	require.Len(t, envs, 1)
	assert.Equal(t, events.EventCatalogSaved, envs[0].EventType)
	assert.Equal(t, catalog.StorageKey, envs[0].CorrelationID)
	var p events.CatalogSavedPayload
	require.NoError(t, json.Unmarshal(envs[0].Payload, &p))
	assert.Len(t, p.Stores, 2)
}

func TestAdmin_Errors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name, method, path, body string
		want                     int
	}{
		{"bad json", http.MethodPatch, "/admin/catalog", `{`, http.StatusBadRequest},
		{"missing value", http.MethodPatch, "/admin/catalog", `{"path":["sachacacao","name"]}`, http.StatusBadRequest},
		{"out of range", http.MethodPatch, "/admin/catalog", `{"path":["sachacacao","products",42,"name"],"value":"x"}`, http.StatusBadRequest},
		{"immutable id", http.MethodPatch, "/admin/catalog", `{"path":["sachacacao","id"],"value":"x"}`, http.StatusUnprocessableEntity},
		{"wrong type", http.MethodPatch, "/admin/catalog", `{"path":["sachacacao","name"],"value":3}`, http.StatusUnprocessableEntity},
		{"unknown store", http.MethodGet, "/admin/stores/nope", "", http.StatusNotFound},
		{"add to unknown", http.MethodPost, "/admin/stores/nope/products", "", http.StatusNotFound},
		{"bad product id", http.MethodDelete, "/admin/stores/sachacacao/products/abc", "", http.StatusBadRequest},
		{"select unknown", http.MethodPut, "/admin/selected", `{"id":"nope"}`, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := ts.do(t, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.want, resp.StatusCode, string(body))
		})
	}
}

func TestAdmin_AddRemoveProduct(t *testing.T) {
	ts := newTestServer(t)

	resp, body := ts.do(t, http.MethodPost, "/admin/stores/cafedelvalle/products", "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var p catalog.Product
	require.NoError(t, json.Unmarshal(body, &p))
	assert.Equal(t, catalog.PlaceholderName, p.Name)

	resp, _ = ts.do(t, http.MethodDelete, "/admin/stores/cafedelvalle/products/"+jsonInt(p.ID), "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, body = ts.do(t, http.MethodGet, "/admin/stores/cafedelvalle", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var st catalog.StoreConfig
	require.NoError(t, json.Unmarshal(body, &st))
	assert.Len(t, st.Products, 4)
}

func TestAdmin_ReloadDiscardsDraft(t *testing.T) {
	ts := newTestServer(t)
	resp, _ := ts.do(t, http.MethodPatch, "/admin/catalog", `{"path":["sachacacao","name"],"value":"Otra"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = ts.do(t, http.MethodPost, "/admin/reload", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, body := ts.do(t, http.MethodGet, "/admin/selected", "")
	var st catalog.StoreConfig
	require.NoError(t, json.Unmarshal(body, &st))
	assert.Equal(t, "Sacha Cacao", st.Name)
}

func TestStorefront_SelectAndTheme(t *testing.T) {
	ts := newTestServer(t)

	_, body := ts.do(t, http.MethodGet, "/storefront?store=cafedelvalle", "")
	var sr StorefrontResp
	require.NoError(t, json.Unmarshal(body, &sr))
	assert.Equal(t, "cafedelvalle", sr.StoreID)

	_, body = ts.do(t, http.MethodGet, "/storefront?store=missing", "")
	require.NoError(t, json.Unmarshal(body, &sr))
	assert.Equal(t, "sachacacao", sr.StoreID)

	resp, body := ts.do(t, http.MethodGet, "/storefront/theme.css?store=sachacacao", "")
	assert.Equal(t, "text/css; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Contains(t, string(body), "  --primary-brown: #5D4037;\n")
}

func TestStorefront_Checkout(t *testing.T) {
	ts := newTestServer(t)

	resp, body := ts.do(t, http.MethodPost, "/storefront/checkout",
		`{"store":"cafedelvalle","method":"plin","items":[{"product_id":1,"qty":2},{"product_id":3,"qty":1}]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var co storefront.Checkout
	require.NoError(t, json.Unmarshal(body, &co))
	assert.Equal(t, 3, co.Count)
	assert.InDelta(t, 235.0, co.Total, 1e-9)
	assert.Equal(t, "PlinPaymentTo999888777", co.QRData)

	envs := ts.checkout.envelopes(t)
	require.Len(t, envs, 1)
	assert.Equal(t, events.EventCheckoutStarted, envs[0].EventType)

	resp, _ = ts.do(t, http.MethodPost, "/storefront/checkout", `{"store":"cafedelvalle","items":[{"product_id":999,"qty":1}]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp, _ = ts.do(t, http.MethodPost, "/storefront/checkout", `{"store":"cafedelvalle","items":[]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func jsonInt(v int64) string {
	b, _ := json.Marshal(v)
	return string(b)
}
