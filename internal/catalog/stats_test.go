// Cinelog - Movie Catalog Search & CRUD API
// Copyright 2026 Cinelog contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelog/cinelog

package catalog

import (
	"fmt"
	"testing"
)

func TestComputeEmpty(t *testing.T) {
	stats := Compute(nil)

	if stats.TotalMovies != 0 || stats.FavoritesCount != 0 || stats.RatedCount != 0 {
		t.Errorf("expected zero counts, got %+v", stats)
	}
	if stats.TopGenres == nil || stats.DecadeDistribution == nil {
		t.Error("histograms must be empty slices, not nil")
	}
	if len(stats.TopGenres) != 0 || len(stats.DecadeDistribution) != 0 {
		t.Errorf("expected empty histograms, got %+v", stats)
	}
}

func TestComputeCounts(t *testing.T) {
	movies := []*Movie{
		{IsFavorite: true, PersonalRating: floatPtr(8)},
		{IsFavorite: true},
		{PersonalRating: floatPtr(6)},
		{},
	}

	stats := Compute(movies)
	if stats.TotalMovies != 4 {
		t.Errorf("TotalMovies = %d, want 4", stats.TotalMovies)
	}
	if stats.FavoritesCount != 2 {
		t.Errorf("FavoritesCount = %d, want 2", stats.FavoritesCount)
	}
	if stats.RatedCount != 2 {
		t.Errorf("RatedCount = %d, want 2", stats.RatedCount)
	}
}

func TestComputeTopGenres(t *testing.T) {
	movies := []*Movie{
		{Genres: []NamedRef{{Name: "Drama"}, {Name: "Action"}}},
		{Genres: []NamedRef{{Name: "Drama"}}},
		{Genres: []NamedRef{{Name: "Comedy"}, {Name: ""}}},
	}

	stats := Compute(movies)

	want := []GenreCount{
		{Name: "Drama", Count: 2},
		{Name: "Action", Count: 1},
		{Name: "Comedy", Count: 1},
		{Name: "Unknown", Count: 1},
	}
	if len(stats.TopGenres) != len(want) {
		t.Fatalf("TopGenres = %+v, want %+v", stats.TopGenres, want)
	}
	for i, w := range want {
		if stats.TopGenres[i] != w {
			t.Errorf("TopGenres[%d] = %+v, want %+v", i, stats.TopGenres[i], w)
		}
	}
}

func TestComputeTopGenresTruncatedToTen(t *testing.T) {
	var movies []*Movie
	for i := 0; i < 15; i++ {
		movies = append(movies, &Movie{
			Genres: []NamedRef{{Name: fmt.Sprintf("Genre%02d", i)}},
		})
	}

	stats := Compute(movies)
	if len(stats.TopGenres) != 10 {
		t.Fatalf("expected 10 genre buckets, got %d", len(stats.TopGenres))
	}
	// equal counts fall back to name ascending
	if stats.TopGenres[0].Name != "Genre00" {
		t.Errorf("first bucket = %q, want Genre00", stats.TopGenres[0].Name)
	}
}

func TestComputeDecades(t *testing.T) {
	movies := []*Movie{
		{ReleaseDate: "1994-06-23"},
		{ReleaseDate: "1999-03-31"},
		{ReleaseDate: "2001-04-25"},
		{ReleaseDate: "bogus"},
		{ReleaseDate: ""},
	}

	stats := Compute(movies)

	want := []DecadeCount{
		{Decade: 1990, Count: 2},
		{Decade: 2000, Count: 1},
	}
	if len(stats.DecadeDistribution) != len(want) {
		t.Fatalf("DecadeDistribution = %+v, want %+v", stats.DecadeDistribution, want)
	}
	for i, w := range want {
		if stats.DecadeDistribution[i] != w {
			t.Errorf("DecadeDistribution[%d] = %+v, want %+v", i, stats.DecadeDistribution[i], w)
		}
	}

	// unparseable dates still count in the total
	if stats.TotalMovies != 5 {
		t.Errorf("TotalMovies = %d, want 5", stats.TotalMovies)
	}
}
