// Package metrics declares the Prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MealsLogged = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nutrition_meals_logged_total",
			Help: "Total number of meals logged",
		},
		[]string{"source"},
	)

	MealsRemoved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nutrition_meals_removed_total",
			Help: "Total number of meals removed",
		},
	)

	RecommendationsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nutrition_recommendations_served_total",
			Help: "Total number of recommendation rankings served",
		},
		[]string{"mode"},
	)

	RankingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "nutrition_ranking_duration_seconds",
			Help:    "Duration of recommendation ranking in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
	)

	CatalogFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nutrition_catalog_fallbacks_total",
			Help: "Total number of meals logged with fallback nutrients",
		},
	)

	CoachRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nutrition_coach_requests_total",
			Help: "Total number of coach requests by outcome",
		},
		[]string{"outcome"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "nutrition_http_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"method", "route", "status"},
	)
)

// Label values.
const (
	SourceCatalog  = "catalog"
	SourceFallback = "fallback"
	SourceExplicit = "explicit"

	ModeScored   = "scored"
	ModeBalanced = "balanced"
	ModeEmpty    = "empty"

	OutcomeOK          = "ok"
	OutcomeUnavailable = "unavailable"
	OutcomeError       = "error"
)
