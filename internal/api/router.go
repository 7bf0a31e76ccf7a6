// Cinelog - Movie Catalog Search & CRUD API
// Copyright 2026 Cinelog contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelog/cinelog

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cinelog/cinelog/internal/middleware"
)

// NewRouter builds the chi router with all routes and middleware wired.
func NewRouter(h *Handler, mw *ChiMiddleware) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.PrometheusMetrics)
	r.Use(chimiddleware.Recoverer)
	r.Use(mw.CORS())
	r.Use(mw.APISecurityHeaders)

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(mw.RateLimit())

			r.Get("/movies", h.ListMovies)
			r.Get("/movies/search", h.SearchMovies)
			r.Get("/movies/favorites", h.ListFavorites)
			r.Get("/movies/{id}", h.GetMovie)
			r.Get("/stats", h.GetStats)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.WriteRateLimit())

			r.Post("/movies", h.CreateMovie)
			r.Put("/movies/{id}", h.UpdateMovie)
			r.Delete("/movies/{id}", h.DeleteMovie)
			r.Post("/movies/{id}/favorite", h.ToggleFavorite)
		})

		r.Get("/health", h.GetHealth)
		r.Get("/health/live", h.GetLiveness)
		r.Get("/health/ready", h.GetReadiness)
	})

	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).NotFound("Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).Error(http.StatusMethodNotAllowed,
			ErrCodeBadRequest, "Method not allowed")
	})

	return r
}
