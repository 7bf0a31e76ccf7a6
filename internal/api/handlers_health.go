// Cinelog - Movie Catalog Search & CRUD API
// Copyright 2026 Cinelog contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelog/cinelog

package api

import (
	"net/http"
	"time"
)

// HealthStatus is the payload for GET /api/v1/health.
type HealthStatus struct {
	Status      string `json:"status"`
	Version     string `json:"version"`
	UptimeSecs  int64  `json:"uptime_seconds"`
	StoreLoaded bool   `json:"store_loaded"`
	MovieCount  *int   `json:"movie_count,omitempty"`
}

// Version is stamped at build time via -ldflags.
var Version = "dev"

// GetHealth handles GET /api/v1/health.
//
// Reports the catalog count only when the lazy load has already happened;
// a health probe must never trigger the load itself.
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	status := HealthStatus{
		Status:      "ok",
		Version:     Version,
		UptimeSecs:  int64(time.Since(h.startTime).Seconds()),
		StoreLoaded: h.store.Loaded(),
	}
	if status.StoreLoaded {
		n := h.store.Count(r.Context())
		status.MovieCount = &n
	}
	rw.Success(status)
}

// GetLiveness handles GET /api/v1/health/live.
func (h *Handler) GetLiveness(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]string{"status": "alive"})
}

// GetReadiness handles GET /api/v1/health/ready.
func (h *Handler) GetReadiness(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]string{"status": "ready"})
}
