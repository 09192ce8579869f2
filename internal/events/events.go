package events

import (
	"encoding/json"
	"github.com/google/uuid"
	"time"
)

const (
	EventCatalogSaved    = "CatalogSaved"
	EventCheckoutStarted = "CheckoutStarted"

	Version = 1
)

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"` // e.g. "storefront-api"
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"` // storage key or store id
	Payload       json.RawMessage `json:"payload"`
}

type StoreSummary struct {
	StoreID  string `json:"store_id"`
	Name     string `json:"name"`
	Products int    `json:"products"`
}

// CatalogSavedPayload carries the full saved blob so consumers can keep
// revisions without reading the store back.
type CatalogSavedPayload struct {
	StorageKey string          `json:"storage_key"`
	Stores     []StoreSummary  `json:"stores"`
	Catalog    json.RawMessage `json:"catalog"`
}

type CheckoutLine struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Qty       int     `json:"qty"`
	Price     float64 `json:"price"`
}

type CheckoutStartedPayload struct {
	StoreID string         `json:"store_id"`
	Method  string         `json:"method"`
	Lines   []CheckoutLine `json:"lines"`
	Total   float64        `json:"total"`
}

// New builds a v1 envelope around an already encoded payload.
func New(eventType, producer, traceID, correlationID string, payload json.RawMessage) Envelope {
	return Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		EventVersion:  Version,
		OccurredAt:    time.Now().UTC(),
		Producer:      producer,
		TraceID:       traceID,
		CorrelationID: correlationID,
		Payload:       payload,
	}
}
