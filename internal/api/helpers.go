// Cinelog - Movie Catalog Search & CRUD API
// Copyright 2026 Cinelog contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelog/cinelog

package api

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/cinelog/cinelog/internal/catalog"
)

// maxBodyBytes caps request body size for create/update payloads.
const maxBodyBytes = 1 << 20

// sanitizeLogValue strips control characters from untrusted strings before
// they reach a log line.
func sanitizeLogValue(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return -1
		}
		return r
	}, s)
}

// getIntParam parses a chi URL parameter as a positive integer.
func getIntParam(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, fmt.Errorf("invalid %s parameter: %q", name, raw)
	}
	return v, nil
}

// queryIntPtr parses an optional integer query parameter. A missing or empty
// parameter yields nil with no error.
func queryIntPtr(r *http.Request, name string) (*int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s parameter: %q", name, raw)
	}
	return &v, nil
}

// queryFloatPtr parses an optional float query parameter.
func queryFloatPtr(r *http.Request, name string) (*float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s parameter: %q", name, raw)
	}
	return &v, nil
}

// queryBoolPtr parses an optional boolean query parameter.
func queryBoolPtr(r *http.Request, name string) (*bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s parameter: %q", name, raw)
	}
	return &v, nil
}

// parseListParam collects all values of a repeated query parameter, splitting
// each value on commas and dropping empties.
func parseListParam(r *http.Request, name string) []string {
	var out []string
	for _, raw := range r.URL.Query()[name] {
		for _, part := range strings.Split(raw, ",") {
			if v := strings.TrimSpace(part); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

// parseFilters builds catalog filters from request query parameters.
func parseFilters(r *http.Request) (catalog.Filters, error) {
	var f catalog.Filters
	var err error

	f.Search = strings.TrimSpace(r.URL.Query().Get("search"))
	f.Genres = parseListParam(r, "genres")
	f.Language = strings.TrimSpace(r.URL.Query().Get("language"))

	if f.YearFrom, err = queryIntPtr(r, "year_from"); err != nil {
		return f, err
	}
	if f.YearTo, err = queryIntPtr(r, "year_to"); err != nil {
		return f, err
	}
	if f.RatingFrom, err = queryFloatPtr(r, "rating_from"); err != nil {
		return f, err
	}
	if f.RatingTo, err = queryFloatPtr(r, "rating_to"); err != nil {
		return f, err
	}
	if f.RuntimeFrom, err = queryIntPtr(r, "runtime_from"); err != nil {
		return f, err
	}
	if f.RuntimeTo, err = queryIntPtr(r, "runtime_to"); err != nil {
		return f, err
	}
	if f.IsFavorite, err = queryBoolPtr(r, "is_favorite"); err != nil {
		return f, err
	}
	if f.PersonalRatingFrom, err = queryFloatPtr(r, "personal_rating_from"); err != nil {
		return f, err
	}
	if f.PersonalRatingTo, err = queryFloatPtr(r, "personal_rating_to"); err != nil {
		return f, err
	}

	return f, nil
}

// parsePage extracts and bounds-checks page/size query parameters against the
// configured limits. Defaults apply when the parameters are absent.
func (h *Handler) parsePage(r *http.Request) (page, size int, err error) {
	page, size = 1, h.cfg.API.DefaultPageSize

	if p, perr := queryIntPtr(r, "page"); perr != nil {
		return 0, 0, perr
	} else if p != nil {
		page = *p
	}
	if s, serr := queryIntPtr(r, "size"); serr != nil {
		return 0, 0, serr
	} else if s != nil {
		size = *s
	}

	if page < 1 {
		return 0, 0, fmt.Errorf("page must be >= 1, got %d", page)
	}
	if size < 1 || size > h.cfg.API.MaxPageSize {
		return 0, 0, fmt.Errorf("size must be between 1 and %d, got %d", h.cfg.API.MaxPageSize, size)
	}
	return page, size, nil
}

// decodeBody decodes a JSON request body into dst with a size cap.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer func() { _, _ = io.Copy(io.Discard, r.Body) }()

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// pageMeta builds pagination metadata for a list response.
func pageMeta(total, page, size, count int) *PaginationMeta {
	pages := catalog.PageCount(total, size)
	return &PaginationMeta{
		Total:   total,
		Count:   count,
		Page:    page,
		Size:    size,
		Pages:   pages,
		HasMore: page < pages,
	}
}
