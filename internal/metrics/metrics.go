// homefolio - Personal Homepage and Admin Console API
// SPDX-License-Identifier: MIT

// Package metrics registers and exposes Prometheus metrics.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// APIRequestsTotal counts HTTP requests by method, route pattern and
	// status code.
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homefolio_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	// APIRequestDuration observes request latency by method and route.
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "homefolio_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// APIActiveRequests tracks in-flight requests.
	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "homefolio_api_active_requests",
			Help: "Number of API requests currently being served",
		},
	)

	// ProviderCacheHits counts provider summaries served from cache,
	// labeled by provider ("steam" or "netease").
	ProviderCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homefolio_provider_cache_hits_total",
			Help: "Provider responses served from cache",
		},
		[]string{"provider"},
	)

	// ProviderCacheMisses counts provider summaries fetched upstream.
	ProviderCacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homefolio_provider_cache_misses_total",
			Help: "Provider responses fetched from the upstream API",
		},
		[]string{"provider"},
	)

	// ProviderUpstreamErrors counts failed upstream provider calls.
	ProviderUpstreamErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homefolio_provider_upstream_errors_total",
			Help: "Failed upstream provider API calls",
		},
		[]string{"provider"},
	)

	// SettingsWritesTotal counts persisted settings document writes.
	SettingsWritesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "homefolio_settings_writes_total",
			Help: "Total number of settings document writes",
		},
	)

	// AuthLoginAttempts counts login attempts by outcome
	// ("success" or "failure").
	AuthLoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homefolio_auth_login_attempts_total",
			Help: "Login attempts by outcome",
		},
		[]string{"outcome"},
	)
)

// RecordAPIRequest records one completed request.
func RecordAPIRequest(method, endpoint string, statusCode int, durationSeconds float64) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(durationSeconds)
}

// TrackActiveRequest increments the in-flight gauge and returns a func that
// decrements it.
func TrackActiveRequest() func() {
	APIActiveRequests.Inc()
	return APIActiveRequests.Dec
}

// RecordProviderCacheHit records a provider summary served from cache.
func RecordProviderCacheHit(provider string) {
	ProviderCacheHits.WithLabelValues(provider).Inc()
}

// RecordProviderCacheMiss records a provider summary fetched upstream.
func RecordProviderCacheMiss(provider string) {
	ProviderCacheMisses.WithLabelValues(provider).Inc()
}

// RecordProviderUpstreamError records a failed upstream provider call.
func RecordProviderUpstreamError(provider string) {
	ProviderUpstreamErrors.WithLabelValues(provider).Inc()
}

// RecordSettingsWrite records one persisted settings document write.
func RecordSettingsWrite() {
	SettingsWritesTotal.Inc()
}

// RecordLoginAttempt records one login attempt.
func RecordLoginAttempt(success bool) {
	outcome := "failure"
	if success {
		outcome = "success"
	}
	AuthLoginAttempts.WithLabelValues(outcome).Inc()
}
