// Cinelog - Movie Catalog Search & CRUD API
// Copyright 2026 Cinelog contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelog/cinelog

// Package catalog defines the movie record model and the pure operations
// over record lists: predicate filtering, pagination, and aggregate
// statistics. It owns no state; the store composes these over its
// in-memory collection.
package catalog

import (
	"strconv"
	"strings"
)

// NamedRef is a reference entry carrying at least a name, as found in the
// genres, keywords, and production company columns of the source data.
type NamedRef struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
}

// CastMember is one entry of a movie's cast list.
type CastMember struct {
	ID        int64  `json:"id,omitempty"`
	Name      string `json:"name"`
	Character string `json:"character,omitempty"`
}

// CrewMember is one entry of a movie's crew list.
type CrewMember struct {
	ID         int64  `json:"id,omitempty"`
	Name       string `json:"name"`
	Job        string `json:"job,omitempty"`
	Department string `json:"department,omitempty"`
}

// CountryRef is a production country entry.
type CountryRef struct {
	Code string `json:"iso_3166_1,omitempty"`
	Name string `json:"name"`
}

// LanguageRef is a spoken language entry.
type LanguageRef struct {
	Code string `json:"iso_639_1,omitempty"`
	Name string `json:"name"`
}

// Movie is a single catalog record.
//
// ID is a surrogate identifier assigned by the store, monotonically
// increasing from 1 and never reused within a process lifetime. Optional
// numeric fields are pointers; nil means the source data had no value.
// IsFavorite, PersonalRating, and PersonalNotes are user-assigned and never
// come from the source data.
type Movie struct {
	ID                  int           `json:"id"`
	Title               string        `json:"title"`
	Overview            string        `json:"overview"`
	Genres              []NamedRef    `json:"genres"`
	Keywords            []NamedRef    `json:"keywords"`
	Tagline             string        `json:"tagline"`
	Cast                []CastMember  `json:"cast"`
	Crew                []CrewMember  `json:"crew"`
	ProductionCompanies []NamedRef    `json:"production_companies"`
	ProductionCountries []CountryRef  `json:"production_countries"`
	SpokenLanguages     []LanguageRef `json:"spoken_languages"`
	OriginalLanguage    string        `json:"original_language"`
	OriginalTitle       string        `json:"original_title"`
	ReleaseDate         string        `json:"release_date"`
	Runtime             *int          `json:"runtime"`
	VoteAverage         *float64      `json:"vote_average"`
	VoteCount           *int          `json:"vote_count"`
	Popularity          *float64      `json:"popularity"`
	IsFavorite          bool          `json:"is_favorite"`
	PersonalRating      *float64      `json:"personal_rating"`
	PersonalNotes       *string       `json:"personal_notes"`
}

// ReleaseYear parses the leading "YYYY" segment of the release date.
// Returns false for empty or malformed dates; callers treat that as
// "year unknown", never as an error.
func (m *Movie) ReleaseYear() (int, bool) {
	if m.ReleaseDate == "" {
		return 0, false
	}
	head, _, _ := strings.Cut(m.ReleaseDate, "-")
	year, err := strconv.Atoi(head)
	if err != nil {
		return 0, false
	}
	return year, true
}

// Clone returns a deep copy of the movie. The store hands out clones so
// callers can never mutate the collection outside the lock.
func (m *Movie) Clone() *Movie {
	c := *m
	c.Genres = append([]NamedRef(nil), m.Genres...)
	c.Keywords = append([]NamedRef(nil), m.Keywords...)
	c.Cast = append([]CastMember(nil), m.Cast...)
	c.Crew = append([]CrewMember(nil), m.Crew...)
	c.ProductionCompanies = append([]NamedRef(nil), m.ProductionCompanies...)
	c.ProductionCountries = append([]CountryRef(nil), m.ProductionCountries...)
	c.SpokenLanguages = append([]LanguageRef(nil), m.SpokenLanguages...)
	if m.Runtime != nil {
		v := *m.Runtime
		c.Runtime = &v
	}
	if m.VoteAverage != nil {
		v := *m.VoteAverage
		c.VoteAverage = &v
	}
	if m.VoteCount != nil {
		v := *m.VoteCount
		c.VoteCount = &v
	}
	if m.Popularity != nil {
		v := *m.Popularity
		c.Popularity = &v
	}
	if m.PersonalRating != nil {
		v := *m.PersonalRating
		c.PersonalRating = &v
	}
	if m.PersonalNotes != nil {
		v := *m.PersonalNotes
		c.PersonalNotes = &v
	}
	return &c
}
