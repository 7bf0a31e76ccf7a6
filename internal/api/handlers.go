// Cinelog - Movie Catalog Search & CRUD API
// Copyright 2026 Cinelog contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelog/cinelog

package api

import (
	"time"

	"github.com/cinelog/cinelog/internal/config"
	"github.com/cinelog/cinelog/internal/store"
)

// Handler holds dependencies for all API endpoints.
type Handler struct {
	store     *store.Store
	cfg       *config.Config
	startTime time.Time
}

// NewHandler creates an API handler backed by the given store.
func NewHandler(s *store.Store, cfg *config.Config) *Handler {
	return &Handler{
		store:     s,
		cfg:       cfg,
		startTime: time.Now(),
	}
}
