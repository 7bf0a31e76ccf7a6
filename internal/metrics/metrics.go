// Cinelog - Movie Catalog Search & CRUD API
// Copyright 2026 Cinelog contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelog/cinelog

// Package metrics provides Prometheus instrumentation for the API layer
// and the in-memory catalog store.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API metrics
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinelog_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinelog_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "path", "status"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinelog_api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	// Store metrics
	StoreMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinelog_store_movies",
			Help: "Current number of movies held in the store",
		},
	)

	StoreOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinelog_store_operations_total",
			Help: "Total number of store operations",
		},
		[]string{"operation", "outcome"}, // outcome: "ok" or "not_found"
	)

	// Load metrics
	LoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cinelog_load_duration_seconds",
			Help:    "Duration of the one-time catalog load in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	RowsLoaded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cinelog_load_rows_total",
			Help: "Total number of catalog rows loaded successfully",
		},
	)

	RowsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cinelog_load_rows_skipped_total",
			Help: "Total number of malformed catalog rows skipped during load",
		},
	)
)

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, path, status string, duration time.Duration) {
	APIRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
	APIRequestsTotal.WithLabelValues(method, path, status).Inc()
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(start bool) {
	if start {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordStoreOperation records one store mutation or lookup with its outcome.
func RecordStoreOperation(operation string, found bool) {
	outcome := "ok"
	if !found {
		outcome = "not_found"
	}
	StoreOperations.WithLabelValues(operation, outcome).Inc()
}
