// Cinelog - Movie Catalog Search & CRUD API
// Copyright 2026 Cinelog contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelog/cinelog

package catalog

import (
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// MovieFromRow builds a Movie from a loosely-typed string-keyed row as
// produced by the chunk loader. Every field parser independently fails soft:
// an absent column, an empty cell, or an unparseable value yields the field's
// absent value (empty string, nil slice, nil pointer), never an error. The
// loader wraps each row in its own skip boundary as the outermost safety net.
//
// The favorite flag and the personal fields are user-assigned and always
// start unset; the surrogate ID is assigned by the store.
func MovieFromRow(row map[string]string) *Movie {
	return &Movie{
		Title:               row["title"],
		Overview:            row["overview"],
		Genres:              namedRefList(row["genres"]),
		Keywords:            namedRefList(row["keywords"]),
		Tagline:             row["tagline"],
		Cast:                castList(row["cast"]),
		Crew:                crewList(row["crew"]),
		ProductionCompanies: namedRefList(row["production_companies"]),
		ProductionCountries: countryList(row["production_countries"]),
		SpokenLanguages:     languageList(row["spoken_languages"]),
		OriginalLanguage:    row["original_language"],
		OriginalTitle:       row["original_title"],
		ReleaseDate:         strings.TrimSpace(row["release_date"]),
		Runtime:             intCell(row["runtime"]),
		VoteAverage:         floatCell(row["vote_average"]),
		VoteCount:           intCell(row["vote_count"]),
		Popularity:          floatCell(row["popularity"]),
	}
}

// intCell parses a numeric cell into an optional int. Cells in the source
// data are frequently formatted as floats ("120.0"), so a float parse is the
// fallback before giving up.
func intCell(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if v, err := strconv.Atoi(s); err == nil {
		return &v
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		v := int(f)
		return &v
	}
	return nil
}

// floatCell parses a numeric cell into an optional float.
func floatCell(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// jsonListCell decodes a JSON list cell into a typed slice, nil on any
// decode failure.
func jsonListCell[T any](s string) []T {
	s = strings.TrimSpace(s)
	if s == "" || s == "[]" {
		return nil
	}
	var out []T
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil
	}
	return out
}

func namedRefList(s string) []NamedRef { return jsonListCell[NamedRef](s) }

func castList(s string) []CastMember { return jsonListCell[CastMember](s) }

func crewList(s string) []CrewMember { return jsonListCell[CrewMember](s) }

func countryList(s string) []CountryRef { return jsonListCell[CountryRef](s) }

func languageList(s string) []LanguageRef { return jsonListCell[LanguageRef](s) }
