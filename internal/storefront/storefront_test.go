package storefront

import (
	"net/url"
	"strings"
	"testing"

	"github.com/ariefcatur/go-storefront.git/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect(t *testing.T) {
	c := catalog.Defaults()

	_, id, ok := Select(c, "cafedelvalle")
	require.True(t, ok)
	assert.Equal(t, "cafedelvalle", id)

	st, id, ok := Select(c, "unknown")
	require.True(t, ok)
	assert.Equal(t, catalog.DefaultStoreID, id)
	assert.Equal(t, "Sacha Cacao", st.Name)

	_, id, _ = Select(c, "")
	assert.Equal(t, catalog.DefaultStoreID, id)

	_, id, ok = Select(catalog.Catalog{"zeta": {ID: "zeta"}, "alfa": {ID: "alfa"}}, "")
	require.True(t, ok)
	assert.Equal(t, "alfa", id)

	_, _, ok = Select(catalog.Catalog{}, "x")
	assert.False(t, ok)
}

func TestCart(t *testing.T) {
	cacao := catalog.Product{ID: 1, Name: "Cacao", Price: 85}
	nibs := catalog.Product{ID: 5, Name: "Nibs", Price: 12.5}

	var c Cart
	c.Add(cacao)
	c.Add(nibs)
	c.Add(cacao)
	assert.Equal(t, 3, c.Count())
	assert.Equal(t, 2, c.Len())
	assert.InDelta(t, 182.5, c.Total(), 1e-9)

	c.UpdateQuantity(5, 4)
	assert.Equal(t, 6, c.Count())
	assert.InDelta(t, 220.0, c.Total(), 1e-9)

	c.UpdateQuantity(1, 0)
	require.Len(t, c.Items(), 1)
	assert.Equal(t, int64(5), c.Items()[0].ID)

	c.UpdateQuantity(99, 3) // not in cart
	assert.Equal(t, 1, c.Len())

	c.Remove(5)
	assert.Equal(t, 0, c.Count())

	c.Add(cacao)
	c.Clear()
	assert.Equal(t, 0.0, c.Total())
}

func TestOrderMessage(t *testing.T) {
	items := []Item{
		{Product: catalog.Product{Name: "Cacao en Polvo"}, Quantity: 2},
		{Product: catalog.Product{Name: "Manjar"}, Quantity: 1},
	}
	want := "¡Hola Sacha Cacao! 👋 Acabo de realizar mi pedido, en breve realizo el pago y envío la captura.\n\n" +
		"*Resumen del pedido:*\n- Cacao en Polvo (x2)\n- Manjar (x1)\n\n*Total a pagar:* S/ 185.00\n\n¡Gracias!"
	assert.Equal(t, want, OrderMessage("Sacha Cacao", items, 185))
}

func TestNewCheckout(t *testing.T) {
	st := catalog.Defaults()["sachacacao"]
	var c Cart
	c.Add(st.Products[0])
	c.Add(st.Products[5])
	c.UpdateQuantity(st.Products[5].ID, 2)

	co, err := NewCheckout("sachacacao", st, &c, "")
	require.NoError(t, err)
	assert.Equal(t, MethodYape, co.Method)
	assert.Equal(t, 3, co.Count)
	assert.InDelta(t, 115.0, co.Total, 1e-9)
	assert.Equal(t, "S/ 115.00", co.TotalLabel)
	assert.Equal(t, "YapePaymentTo987654321", co.QRData)
	assert.Equal(t, "JUAN PEREZ", co.PayeeName)

	u, err := url.Parse(co.WhatsAppURL)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", u.Host)
	assert.Equal(t, "/51987654321", u.Path)
	assert.Equal(t, co.Message, u.Query().Get("text"))
	assert.NotContains(t, co.WhatsAppURL, "+")

	assert.True(t, strings.HasPrefix(co.QRCodeURL, "https://api.qrserver.com/v1/create-qr-code/?size=250x250&data=YapePaymentTo987654321"))
	assert.Contains(t, co.QRCodeURL, "&color=5D4037&bgcolor=efebe9")
}

func TestNewCheckout_Errors(t *testing.T) {
	st := catalog.Defaults()["sachacacao"]
	var empty Cart
	_, err := NewCheckout("sachacacao", st, &empty, MethodPlin)
	require.ErrorIs(t, err, ErrEmptyCart)

	var c Cart
	c.Add(st.Products[0])
	_, err = NewCheckout("sachacacao", st, &c, "card")
	require.ErrorIs(t, err, ErrUnknownMethod)
}

func TestQR(t *testing.T) {
	assert.Equal(t, "PlinPaymentTo999888777", QRData(MethodPlin, "999 888 777"))
	assert.Equal(t, "https://api.qrserver.com/v1/create-qr-code/?size=250x250&data=x", QRCodeURL("x", nil))
}
