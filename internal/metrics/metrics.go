// Package metrics holds the Prometheus collectors of the storefront service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CatalogLoads counts catalog loads by outcome (persisted, default, read_error, malformed).
	CatalogLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_catalog_loads_total",
		Help: "Total number of catalog loads, by outcome.",
	}, []string{"outcome"})

	// CatalogSaves counts catalog writes by outcome (ok, error).
	CatalogSaves = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_catalog_saves_total",
		Help: "Total number of catalog saves, by outcome.",
	}, []string{"outcome"})

	CatalogEdits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_catalog_edits_total",
		Help: "Total number of draft edits, by operation and outcome.",
	}, []string{"op", "outcome"})

	Checkouts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_checkouts_total",
		Help: "Total number of checkouts started, by payment method.",
	}, []string{"method"})

	AuditRevisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_audit_revisions_total",
		Help: "Total number of CatalogSaved events handled by the auditor, by outcome.",
	}, []string{"outcome"})
)
