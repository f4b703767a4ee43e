package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QuotesComputedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "freight_quotes_computed_total",
		Help: "Total number of quote calculations served.",
	})

	ShipmentsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "freight_shipments_created_total",
		Help: "Total number of shipments successfully booked.",
	})

	StatusUpdatesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "freight_status_updates_total",
		Help: "Total number of shipment status transitions applied.",
	})

	DistanceFallbackTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "freight_distance_fallback_total",
		Help: "Total number of routing-provider failures recovered via haversine.",
	})

	WebhookShipmentsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "freight_webhook_shipments_total",
		Help: "Total number of shipments ingested through the ERP webhook.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "freight_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	VendorCacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "freight_vendor_cache_items",
		Help: "Current number of vendors held in the active-vendor cache.",
	})
)
