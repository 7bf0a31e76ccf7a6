// Cinelog - Movie Catalog Search & CRUD API
// Copyright 2026 Cinelog contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelog/cinelog

package catalog

import "github.com/goccy/go-json"

// Optional wraps an update-command field so that "caller didn't mention this
// field" is distinguishable from "caller explicitly set it" (including
// setting it to null via a pointer value). The zero value is unset; any JSON
// value present in the request body, null included, marks the field set.
type Optional[T any] struct {
	value T
	set   bool
}

// Set returns an Optional holding v.
func Set[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Get returns the held value and whether the field was provided.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether the field was provided.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// UnmarshalJSON marks the field set and decodes the value. A JSON null
// decodes into the zero value (nil for pointer types), which is how
// "explicitly cleared" is expressed.
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.set = true
	return json.Unmarshal(b, &o.value)
}

// MarshalJSON round-trips the held value; unset fields marshal as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// CreateCommand carries the fields for creating a movie. The favorite flag,
// personal rating, and personal notes always initialize unset regardless of
// what the request specified, so they are not accepted here at all.
type CreateCommand struct {
	Title               string        `json:"title" validate:"required"`
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
	Runtime             *int          `json:"runtime" validate:"omitempty,gte=0"`
	VoteAverage         *float64      `json:"vote_average" validate:"omitempty,gte=0,lte=10"`
	VoteCount           *int          `json:"vote_count" validate:"omitempty,gte=0"`
	Popularity          *float64      `json:"popularity" validate:"omitempty,gte=0"`
}

// UpdateCommand carries a partial update. Only fields the caller explicitly
// provided are applied; the pointer-valued fields can be explicitly cleared
// by sending null.
type UpdateCommand struct {
	Title          Optional[string]   `json:"title"`
	Overview       Optional[string]   `json:"overview"`
	IsFavorite     Optional[bool]     `json:"is_favorite"`
	PersonalRating Optional[*float64] `json:"personal_rating"`
	PersonalNotes  Optional[*string]  `json:"personal_notes"`
}

// Empty reports whether no field was provided.
func (c *UpdateCommand) Empty() bool {
	return !c.Title.IsSet() && !c.Overview.IsSet() && !c.IsFavorite.IsSet() &&
		!c.PersonalRating.IsSet() && !c.PersonalNotes.IsSet()
}
