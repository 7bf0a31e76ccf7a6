// Cinelog - Movie Catalog Search & CRUD API
// Copyright 2026 Cinelog contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelog/cinelog

package catalog

import (
	"testing"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func boolPtr(v bool) *bool { return &v }

func testMovies() []*Movie {
	return []*Movie{
		{
			ID:               1,
			Title:            "The Matrix",
			Overview:         "A computer hacker learns the truth",
			Genres:           []NamedRef{{Name: "Action"}, {Name: "Science Fiction"}},
			Cast:             []CastMember{{Name: "Keanu Reeves"}},
			Crew:             []CrewMember{{Name: "Lana Wachowski", Job: "Director"}},
			OriginalLanguage: "en",
			ReleaseDate:      "1999-03-31",
			Runtime:          intPtr(136),
			VoteAverage:      floatPtr(8.2),
			IsFavorite:       true,
			PersonalRating:   floatPtr(9.0),
		},
		{
			ID:               2,
			Title:            "Amelie",
			Overview:         "A shy waitress in Paris",
			Genres:           []NamedRef{{Name: "Comedy"}, {Name: "Romance"}},
			Cast:             []CastMember{{Name: "Audrey Tautou"}},
			OriginalLanguage: "fr",
			ReleaseDate:      "2001-04-25",
			Runtime:          intPtr(122),
			VoteAverage:      floatPtr(7.9),
		},
		{
			ID:               3,
			Title:            "Undated Short",
			Genres:           []NamedRef{{Name: "Action"}},
			OriginalLanguage: "en",
			// no release date, runtime, or rating
		},
	}
}

func TestApplyEmptyFiltersReturnsInput(t *testing.T) {
	movies := testMovies()
	got := Apply(movies, &Filters{})
	if len(got) != len(movies) {
		t.Fatalf("expected %d movies, got %d", len(movies), len(got))
	}
	// identity, not a copy
	if &got[0] != &movies[0] {
		t.Error("expected input slice returned unchanged for empty filters")
	}
}

func TestApplyNilFilters(t *testing.T) {
	movies := testMovies()
	if got := Apply(movies, nil); len(got) != len(movies) {
		t.Fatalf("expected %d movies, got %d", len(movies), len(got))
	}
}

func TestApplySearch(t *testing.T) {
	tests := []struct {
		name    string
		search  string
		wantIDs []int
	}{
		{"title substring", "matrix", []int{1}},
		{"case insensitive", "MATRIX", []int{1}},
		{"overview substring", "waitress", []int{2}},
		{"cast name", "keanu", []int{1}},
		{"crew name", "wachowski", []int{1}},
		{"no match", "zzzzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(testMovies(), &Filters{Search: tt.search})
			assertIDs(t, got, tt.wantIDs)
		})
	}
}

func TestApplyGenresORWithin(t *testing.T) {
	// OR within the genre group: either name matches.
	got := Apply(testMovies(), &Filters{Genres: []string{"comedy", "Science Fiction"}})
	assertIDs(t, got, []int{1, 2})
}

func TestApplyGroupsAND(t *testing.T) {
	// AND across groups: action AND english narrows to 1 and 3, rating
	// bound then drops the unrated record.
	got := Apply(testMovies(), &Filters{
		Genres:     []string{"action"},
		Language:   "en",
		RatingFrom: floatPtr(5.0),
	})
	assertIDs(t, got, []int{1})
}

func TestApplyYearRange(t *testing.T) {
	tests := []struct {
		name    string
		from    *int
		to      *int
		wantIDs []int
	}{
		{"from only", intPtr(2000), nil, []int{2}},
		{"to only", nil, intPtr(2000), []int{1}},
		{"both", intPtr(1990), intPtr(2010), []int{1, 2}},
		{"absent date fails active bound", intPtr(0), intPtr(9999), []int{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(testMovies(), &Filters{YearFrom: tt.from, YearTo: tt.to})
			assertIDs(t, got, tt.wantIDs)
		})
	}
}

func TestApplyAbsentValueFailsActiveBound(t *testing.T) {
	// A present zero satisfies a zero lower bound; an absent value never
	// satisfies any active bound.
	movies := []*Movie{
		{ID: 1, VoteAverage: floatPtr(0.0)},
		{ID: 2}, // no rating at all
	}
	got := Apply(movies, &Filters{RatingFrom: floatPtr(0.0)})
	assertIDs(t, got, []int{1})
}

func TestApplyRuntimeBounds(t *testing.T) {
	got := Apply(testMovies(), &Filters{RuntimeFrom: intPtr(130)})
	assertIDs(t, got, []int{1})

	got = Apply(testMovies(), &Filters{RuntimeTo: intPtr(130)})
	assertIDs(t, got, []int{2})
}

func TestApplyFavoriteAndPersonalRating(t *testing.T) {
	got := Apply(testMovies(), &Filters{IsFavorite: boolPtr(true)})
	assertIDs(t, got, []int{1})

	got = Apply(testMovies(), &Filters{IsFavorite: boolPtr(false)})
	assertIDs(t, got, []int{2, 3})

	got = Apply(testMovies(), &Filters{PersonalRatingFrom: floatPtr(5.0)})
	assertIDs(t, got, []int{1})
}

func TestApplyPreservesOrder(t *testing.T) {
	got := Apply(testMovies(), &Filters{Language: "en"})
	assertIDs(t, got, []int{1, 3})
}

func assertIDs(t *testing.T, movies []*Movie, want []int) {
	t.Helper()
	var got []int
	for _, m := range movies {
		got = append(got, m.ID)
	}
	if len(got) != len(want) {
		t.Fatalf("got IDs %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got IDs %v, want %v", got, want)
		}
	}
}

func TestReleaseYear(t *testing.T) {
	tests := []struct {
		date     string
		wantYear int
		wantOK   bool
	}{
		{"1999-03-31", 1999, true},
		{"2001", 2001, true},
		{"", 0, false},
		{"not-a-date", 0, false},
	}

	for _, tt := range tests {
		m := &Movie{ReleaseDate: tt.date}
		year, ok := m.ReleaseYear()
		if year != tt.wantYear || ok != tt.wantOK {
			t.Errorf("ReleaseYear(%q) = (%d, %v), want (%d, %v)",
				tt.date, year, ok, tt.wantYear, tt.wantOK)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := testMovies()[0]
	clone := orig.Clone()

	clone.Title = "changed"
	clone.Genres[0].Name = "changed"
	*clone.Runtime = 1
	*clone.PersonalRating = 1

	if orig.Title == "changed" || orig.Genres[0].Name == "changed" {
		t.Error("clone shares slice or value state with original")
	}
	if *orig.Runtime == 1 || *orig.PersonalRating == 1 {
		t.Error("clone shares pointer state with original")
	}
}
