// Cinelog - Movie Catalog Search & CRUD API
// Copyright 2026 Cinelog contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelog/cinelog

package catalog

// Paginate returns the 1-indexed page slice of movies. An out-of-range
// start yields an empty slice, never an error. A trailing partial page is
// returned as-is.
func Paginate(movies []*Movie, page, size int) []*Movie {
	if page < 1 || size < 1 {
		return nil
	}
	start := (page - 1) * size
	if start >= len(movies) {
		return nil
	}
	end := start + size
	if end > len(movies) {
		end = len(movies)
	}
	return movies[start:end]
}

// PageCount computes the total page count for display purposes:
// ceiling(total/size) with a floor of 1 when total is zero.
func PageCount(total, size int) int {
	if total <= 0 || size < 1 {
		return 1
	}
	return (total + size - 1) / size
}
