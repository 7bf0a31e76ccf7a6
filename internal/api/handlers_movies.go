// Cinelog - Movie Catalog Search & CRUD API
// Copyright 2026 Cinelog contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelog/cinelog

package api

import (
	"net/http"
	"strings"

	"github.com/cinelog/cinelog/internal/catalog"
	"github.com/cinelog/cinelog/internal/logging"
	"github.com/cinelog/cinelog/internal/validation"
)

// ListMovies handles GET /api/v1/movies.
//
// Supports pagination (page, size) and the full filter set: search, genres,
// year_from/to, rating_from/to, runtime_from/to, language, is_favorite,
// personal_rating_from/to.
func (h *Handler) ListMovies(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	page, size, err := h.parsePage(r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	filters, err := parseFilters(r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	movies, total := h.store.GetPage(r.Context(), page, size, &filters)
	rw.SuccessWithPagination(movies, pageMeta(total, page, size, len(movies)))
}

// SearchMovies handles GET /api/v1/movies/search.
//
// Requires a non-empty q parameter; otherwise behaves as ListMovies with the
// search filter set.
func (h *Handler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		rw.BadRequest("q parameter is required")
		return
	}

	page, size, err := h.parsePage(r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	filters, err := parseFilters(r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	filters.Search = q

	logging.Ctx(r.Context()).Debug().
		Str("query", sanitizeLogValue(q)).
		Int("page", page).
		Msg("Movie search")

	movies, total := h.store.GetPage(r.Context(), page, size, &filters)
	rw.SuccessWithPagination(movies, pageMeta(total, page, size, len(movies)))
}

// ListFavorites handles GET /api/v1/movies/favorites.
func (h *Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	page, size, err := h.parsePage(r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	filters, err := parseFilters(r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	fav := true
	filters.IsFavorite = &fav

	movies, total := h.store.GetPage(r.Context(), page, size, &filters)
	rw.SuccessWithPagination(movies, pageMeta(total, page, size, len(movies)))
}

// GetMovie handles GET /api/v1/movies/{id}.
func (h *Handler) GetMovie(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, err := getIntParam(r, "id")
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	movie, ok := h.store.GetByID(r.Context(), id)
	if !ok {
		rw.NotFound("Movie not found")
		return
	}
	rw.Success(movie)
}

// CreateMovie handles POST /api/v1/movies.
func (h *Handler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var cmd catalog.CreateCommand
	if err := decodeBody(w, r, &cmd); err != nil {
		rw.BadRequest(err.Error())
		return
	}

	if verr := validation.ValidateStruct(&cmd); verr != nil {
		rw.ValidationError("Request validation failed", verr.Fields())
		return
	}

	id := h.store.Create(r.Context(), cmd)
	logging.Ctx(r.Context()).Info().
		Int("movie_id", id).
		Str("title", sanitizeLogValue(cmd.Title)).
		Msg("Movie created")

	rw.Created(map[string]int{"id": id})
}

// UpdateMovie handles PUT /api/v1/movies/{id}.
//
// Only fields present in the request body are changed. An explicit null
// clears a clearable field.
func (h *Handler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, err := getIntParam(r, "id")
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	var cmd catalog.UpdateCommand
	if err := decodeBody(w, r, &cmd); err != nil {
		rw.BadRequest(err.Error())
		return
	}

	if !h.store.Update(r.Context(), id, cmd) {
		rw.NotFound("Movie not found")
		return
	}

	movie, _ := h.store.GetByID(r.Context(), id)
	rw.Success(movie)
}

// DeleteMovie handles DELETE /api/v1/movies/{id}.
func (h *Handler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, err := getIntParam(r, "id")
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	if !h.store.Delete(r.Context(), id) {
		rw.NotFound("Movie not found")
		return
	}

	logging.Ctx(r.Context()).Info().Int("movie_id", id).Msg("Movie deleted")
	rw.Success(map[string]int{"id": id})
}

// ToggleFavorite handles POST /api/v1/movies/{id}/favorite.
//
// Flips the favorite flag and returns the new state.
func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, err := getIntParam(r, "id")
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	state, ok := h.store.ToggleFavorite(r.Context(), id)
	if !ok {
		rw.NotFound("Movie not found")
		return
	}

	rw.Success(map[string]bool{"is_favorite": state})
}
