// Cinelog - Movie Catalog Search & CRUD API
// Copyright 2026 Cinelog contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelog/cinelog

package catalog

import "strings"

// Filters is an immutable set of optional predicate groups. An absent group
// (zero value or nil pointer) has no effect; active groups compose with
// logical AND. Within the genre group the requested names compose with OR.
//
// A bound is active when its pointer is non-nil. Records whose bounded
// attribute is absent fail any active bound on that attribute, no matter
// how wide the range is.
type Filters struct {
	// Search matches case-insensitive substrings of title, overview, or
	// any cast or crew member's name.
	Search string

	// Genres matches case-insensitive equality against the name of any of
	// the record's genre entries, OR-ed across the requested names.
	Genres []string

	YearFrom *int
	YearTo   *int

	RatingFrom *float64
	RatingTo   *float64

	RuntimeFrom *int
	RuntimeTo   *int

	// Language is exact-match equality against the original language code.
	Language string

	IsFavorite *bool

	PersonalRatingFrom *float64
	PersonalRatingTo   *float64
}

// Empty reports whether no predicate group is active.
func (f *Filters) Empty() bool {
	if f == nil {
		return true
	}
	return f.Search == "" && len(f.Genres) == 0 &&
		f.YearFrom == nil && f.YearTo == nil &&
		f.RatingFrom == nil && f.RatingTo == nil &&
		f.RuntimeFrom == nil && f.RuntimeTo == nil &&
		f.Language == "" && f.IsFavorite == nil &&
		f.PersonalRatingFrom == nil && f.PersonalRatingTo == nil
}

// Apply reduces movies to those matching every active predicate group.
// Relative order is preserved; with no active groups the input slice is
// returned unchanged.
func Apply(movies []*Movie, f *Filters) []*Movie {
	if f.Empty() {
		return movies
	}

	filtered := movies

	if f.Search != "" {
		term := strings.ToLower(f.Search)
		filtered = narrow(filtered, func(m *Movie) bool {
			return matchesSearch(m, term)
		})
	}

	if len(f.Genres) > 0 {
		wanted := make([]string, len(f.Genres))
		for i, g := range f.Genres {
			wanted[i] = strings.ToLower(g)
		}
		filtered = narrow(filtered, func(m *Movie) bool {
			return matchesGenres(m, wanted)
		})
	}

	if f.YearFrom != nil || f.YearTo != nil {
		filtered = narrow(filtered, func(m *Movie) bool {
			return matchesYearRange(m, f.YearFrom, f.YearTo)
		})
	}

	if f.RatingFrom != nil {
		filtered = narrow(filtered, func(m *Movie) bool {
			return m.VoteAverage != nil && *m.VoteAverage >= *f.RatingFrom
		})
	}
	if f.RatingTo != nil {
		filtered = narrow(filtered, func(m *Movie) bool {
			return m.VoteAverage != nil && *m.VoteAverage <= *f.RatingTo
		})
	}

	if f.RuntimeFrom != nil {
		filtered = narrow(filtered, func(m *Movie) bool {
			return m.Runtime != nil && *m.Runtime >= *f.RuntimeFrom
		})
	}
	if f.RuntimeTo != nil {
		filtered = narrow(filtered, func(m *Movie) bool {
			return m.Runtime != nil && *m.Runtime <= *f.RuntimeTo
		})
	}

	if f.Language != "" {
		filtered = narrow(filtered, func(m *Movie) bool {
			return m.OriginalLanguage == f.Language
		})
	}

	if f.IsFavorite != nil {
		filtered = narrow(filtered, func(m *Movie) bool {
			return m.IsFavorite == *f.IsFavorite
		})
	}

	if f.PersonalRatingFrom != nil {
		filtered = narrow(filtered, func(m *Movie) bool {
			return m.PersonalRating != nil && *m.PersonalRating >= *f.PersonalRatingFrom
		})
	}
	if f.PersonalRatingTo != nil {
		filtered = narrow(filtered, func(m *Movie) bool {
			return m.PersonalRating != nil && *m.PersonalRating <= *f.PersonalRatingTo
		})
	}

	return filtered
}

// narrow keeps the movies satisfying keep, preserving order.
func narrow(movies []*Movie, keep func(*Movie) bool) []*Movie {
	result := make([]*Movie, 0, len(movies))
	for _, m := range movies {
		if keep(m) {
			result = append(result, m)
		}
	}
	return result
}

// matchesSearch reports whether term (already lowercased) is a substring of
// the title, overview, or any cast or crew member's name.
func matchesSearch(m *Movie, term string) bool {
	if strings.Contains(strings.ToLower(m.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(m.Overview), term) {
		return true
	}
	for _, c := range m.Cast {
		if strings.Contains(strings.ToLower(c.Name), term) {
			return true
		}
	}
	for _, c := range m.Crew {
		if strings.Contains(strings.ToLower(c.Name), term) {
			return true
		}
	}
	return false
}

// matchesGenres reports whether any of the record's genre names equals any
// wanted name (all already lowercased).
func matchesGenres(m *Movie, wanted []string) bool {
	for _, g := range m.Genres {
		name := strings.ToLower(g.Name)
		for _, w := range wanted {
			if name == w {
				return true
			}
		}
	}
	return false
}

// matchesYearRange checks the release year against the active bounds.
// Records with absent or unparseable dates are excluded whenever any year
// bound is active.
func matchesYearRange(m *Movie, from, to *int) bool {
	year, ok := m.ReleaseYear()
	if !ok {
		return false
	}
	if from != nil && year < *from {
		return false
	}
	if to != nil && year > *to {
		return false
	}
	return true
}
