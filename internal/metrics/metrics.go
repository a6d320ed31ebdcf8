// Package metrics holds the Prometheus collectors for the favorites service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Catalog client
	CatalogRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_requests_total",
			Help: "Total number of catalog lookups by resource and outcome",
		},
		[]string{"resource", "outcome"}, // outcome: ok, error, invalid
	)

	CatalogRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_request_duration_seconds",
			Help:    "Duration of catalog lookups in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"resource"},
	)

	// Favorites
	ListsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "favorites_lists_created_total",
			Help: "Total number of favorite lists created",
		},
	)

	EntitiesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "favorites_entities_created_total",
			Help: "Films and characters inserted while building lists",
		},
		[]string{"entity"},
	)

	EntitiesReused = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "favorites_entities_reused_total",
			Help: "Films and characters found by title or name and reused",
		},
		[]string{"entity"},
	)

	// Exports
	ExportsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "favorites_exports_generated_total",
			Help: "Total number of list spreadsheets generated",
		},
	)

	ExportsArchived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "favorites_exports_archived_total",
			Help: "Spreadsheet uploads to object storage by outcome",
		},
		[]string{"outcome"},
	)
)
