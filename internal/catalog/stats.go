// Cinelog - Movie Catalog Search & CRUD API
// Copyright 2026 Cinelog contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelog/cinelog

package catalog

import "sort"

// topGenreLimit caps the genre histogram at the most frequent entries.
const topGenreLimit = 10

// GenreCount is one genre histogram bucket.
type GenreCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DecadeCount is one decade histogram bucket, keyed by (year/10)*10.
type DecadeCount struct {
	Decade int `json:"decade"`
	Count  int `json:"count"`
}

// Stats holds aggregate statistics over a record set.
type Stats struct {
	TotalMovies        int           `json:"total_movies"`
	FavoritesCount     int           `json:"favorites_count"`
	RatedCount         int           `json:"rated_count"`
	TopGenres          []GenreCount  `json:"top_genres"`
	DecadeDistribution []DecadeCount `json:"decade_distribution"`
}

// Compute aggregates statistics over movies in a single pass.
//
// Genre occurrences are counted per entry, not deduplicated per record. The
// genre histogram is truncated to the top 10 by descending frequency with
// name ascending as a deterministic tiebreak. The decade histogram is sorted
// ascending; records with unparseable release dates are skipped there but
// still counted in the totals.
func Compute(movies []*Movie) Stats {
	stats := Stats{
		TotalMovies:        len(movies),
		TopGenres:          []GenreCount{},
		DecadeDistribution: []DecadeCount{},
	}

	genreCounts := make(map[string]int)
	decadeCounts := make(map[int]int)

	for _, m := range movies {
		if m.IsFavorite {
			stats.FavoritesCount++
		}
		if m.PersonalRating != nil {
			stats.RatedCount++
		}
		for _, g := range m.Genres {
			name := g.Name
			if name == "" {
				name = "Unknown"
			}
			genreCounts[name]++
		}
		if year, ok := m.ReleaseYear(); ok {
			decadeCounts[(year/10)*10]++
		}
	}

	for name, count := range genreCounts {
		stats.TopGenres = append(stats.TopGenres, GenreCount{Name: name, Count: count})
	}
	sort.Slice(stats.TopGenres, func(i, j int) bool {
		if stats.TopGenres[i].Count != stats.TopGenres[j].Count {
			return stats.TopGenres[i].Count > stats.TopGenres[j].Count
		}
		return stats.TopGenres[i].Name < stats.TopGenres[j].Name
	})
	if len(stats.TopGenres) > topGenreLimit {
		stats.TopGenres = stats.TopGenres[:topGenreLimit]
	}

	for decade, count := range decadeCounts {
		stats.DecadeDistribution = append(stats.DecadeDistribution, DecadeCount{Decade: decade, Count: count})
	}
	sort.Slice(stats.DecadeDistribution, func(i, j int) bool {
		return stats.DecadeDistribution[i].Decade < stats.DecadeDistribution[j].Decade
	})

	return stats
}
