package storefront

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/ariefcatur/go-storefront.git/internal/catalog"
)

const (
	MethodYape = "yape"
	MethodPlin = "plin"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrUnknownMethod = errors.New("unknown payment method")
)

// Checkout is what the payment step shows: amount, payee, QR code and the
// WhatsApp link the shopper uses to send the payment screenshot.
type Checkout struct {
	StoreID     string  `json:"store_id"`
	Method      string  `json:"method"`
	Items       []Item  `json:"items"`
	Count       int     `json:"count"`
	Total       float64 `json:"total"`
	TotalLabel  string  `json:"total_label"`
	PayeePhone  string  `json:"payee_phone"`
	PayeeName   string  `json:"payee_name"`
	QRData      string  `json:"qr_data"`
	QRCodeURL   string  `json:"qr_code_url"`
	Message     string  `json:"message"`
	WhatsAppURL string  `json:"whatsapp_url"`
}

func NewCheckout(storeID string, st catalog.StoreConfig, cart *Cart, method string) (Checkout, error) {
	if method == "" {
		method = MethodYape
	}
	if method != MethodYape && method != MethodPlin {
		return Checkout{}, fmt.Errorf("%w: %s", ErrUnknownMethod, method)
	}
	if cart.Len() == 0 {
		return Checkout{}, ErrEmptyCart
	}

	items := cart.Items()
	total := cart.Total()
	msg := OrderMessage(st.Name, items, total)
	qr := QRData(method, st.PaymentInfo.Phone)
	return Checkout{
		StoreID:     storeID,
		Method:      method,
		Items:       items,
		Count:       cart.Count(),
		Total:       total,
		TotalLabel:  FormatPrice(total),
		PayeePhone:  st.PaymentInfo.Phone,
		PayeeName:   st.PaymentInfo.Name,
		QRData:      qr,
		QRCodeURL:   QRCodeURL(qr, st.Theme),
		Message:     msg,
		WhatsAppURL: WhatsAppURL(st.PaymentInfo.WhatsApp, msg),
	}, nil
}

func FormatPrice(v float64) string { return fmt.Sprintf("S/ %.2f", v) }

// OrderMessage is the order summary sent to the store over WhatsApp.
func OrderMessage(storeName string, items []Item, total float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "¡Hola %s! 👋 Acabo de realizar mi pedido, en breve realizo el pago y envío la captura.\n\n*Resumen del pedido:*\n", storeName)
	for i, it := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "- %s (x%d)", it.Name, it.Quantity)
	}
	fmt.Fprintf(&b, "\n\n*Total a pagar:* %s\n\n¡Gracias!", FormatPrice(total))
	return b.String()
}

func WhatsAppURL(number, message string) string {
	return "https://wa.me/" + number + "?text=" + escapeComponent(message)
}

// QRData is the payload encoded in the Yape/Plin QR code.
func QRData(method, phone string) string {
	phone = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, phone)
	if method == MethodPlin {
		return "PlinPaymentTo" + phone
	}
	return "YapePaymentTo" + phone
}

// QRCodeURL renders data with the store's primary colours. Colours missing
// from the theme are left to the QR service defaults.
func QRCodeURL(data string, theme catalog.Theme) string {
	u := "https://api.qrserver.com/v1/create-qr-code/?size=250x250&data=" + escapeComponent(data)
	if c := strings.TrimPrefix(theme[catalog.ThemePrimary], "#"); c != "" {
		u += "&color=" + c
	}
	if c := strings.TrimPrefix(theme[catalog.ThemePrimaryLight], "#"); c != "" {
		u += "&bgcolor=" + c
	}
	return u
}

func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
