// Cinelog - Movie Catalog Search & CRUD API
// Copyright 2026 Cinelog contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelog/cinelog

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/cinelog/cinelog/internal/config"
	"github.com/cinelog/cinelog/internal/logging"
)

// ChiMiddleware provides middleware configured from application settings.
type ChiMiddleware struct {
	cfg *config.Config
}

// NewChiMiddleware creates a middleware factory.
func NewChiMiddleware(cfg *config.Config) *ChiMiddleware {
	return &ChiMiddleware{cfg: cfg}
}

// CORS returns a CORS middleware honoring the configured allowed origins.
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	origins := m.cfg.Security.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	})
}

// RateLimit returns the default per-IP rate limiter.
func (m *ChiMiddleware) RateLimit() func(http.Handler) http.Handler {
	return m.rateLimit(m.cfg.Security.RateLimitReqs, m.cfg.Security.RateLimitWindow)
}

// WriteRateLimit returns a stricter limiter for mutating endpoints.
func (m *ChiMiddleware) WriteRateLimit() func(http.Handler) http.Handler {
	limit := m.cfg.Security.RateLimitReqs / 2
	if limit < 1 {
		limit = 1
	}
	return m.rateLimit(limit, m.cfg.Security.RateLimitWindow)
}

func (m *ChiMiddleware) rateLimit(limit int, window time.Duration) func(http.Handler) http.Handler {
	if m.cfg.Security.RateLimitDisabled {
		return passthrough
	}
	if limit <= 0 {
		limit = 100
	}
	if window <= 0 {
		window = time.Minute
	}

	return httprate.Limit(
		limit,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			logging.Ctx(r.Context()).Warn().
				Str("remote_addr", r.RemoteAddr).
				Str("path", r.URL.Path).
				Msg("Rate limit exceeded")
			NewResponseWriter(w, r).Error(http.StatusTooManyRequests,
				ErrCodeTooManyRequests, "Rate limit exceeded, try again later")
		}),
	)
}

// APISecurityHeaders sets conservative security headers on API responses.
func (m *ChiMiddleware) APISecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

func passthrough(next http.Handler) http.Handler {
	return next
}
