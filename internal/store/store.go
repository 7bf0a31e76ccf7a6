// Cinelog - Movie Catalog Search & CRUD API
// Copyright 2026 Cinelog contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelog/cinelog

// Package store holds the movie catalog in memory behind one coarse mutex.
//
// The record collection is owned exclusively by the Store. Loading happens
// lazily on first access, exactly once per process: a failed load is
// recorded as loaded-with-zero-records so concurrent callers never retrigger
// it. Mutations are memory-only and lost on restart; there is no write-back
// to the source files.
package store

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cinelog/cinelog/internal/catalog"
	"github.com/cinelog/cinelog/internal/logging"
	"github.com/cinelog/cinelog/internal/metrics"
)

// Source produces the initial record list. Implementations live in the
// chunkfile package.
type Source interface {
	Load(ctx context.Context) ([]*catalog.Movie, error)
}

// Store is the in-memory movie collection.
//
// Every read and write path is serialized by mu; loaded is the lock-free
// fast path of the double-checked load guard. Surrogate IDs increase
// monotonically from 1 and are never reused, even after deletion.
type Store struct {
	mu     sync.Mutex
	loaded atomic.Bool
	source Source

	movies []*catalog.Movie
	nextID int
}

// New creates a store that will load from source on first access.
func New(source Source) *Store {
	return &Store{source: source, nextID: 1}
}

// ensureLoaded triggers the bulk load exactly once per process. Check
// without the lock, then check again with it before loading. A load failure
// degrades to an empty store and is still marked loaded, so concurrent
// callers cannot retry in a tight loop.
func (s *Store) ensureLoaded(ctx context.Context) {
	if s.loaded.Load() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded.Load() {
		return
	}

	start := time.Now()
	movies, err := s.source.Load(ctx)
	if err != nil {
		logging.Error().Err(err).Msg("Catalog load failed, continuing with empty store")
		movies = nil
	}

	for i, m := range movies {
		m.ID = i + 1
	}
	s.movies = movies
	s.nextID = len(movies) + 1
	s.loaded.Store(true)

	metrics.LoadDuration.Observe(time.Since(start).Seconds())
	metrics.StoreMovies.Set(float64(len(movies)))
	logging.Info().Int("movies", len(movies)).Dur("elapsed", time.Since(start)).Msg("Store loaded")
}

// GetPage returns the 1-indexed page of the filtered collection and the
// total count of matches (not the unfiltered total). Returned movies are
// copies.
func (s *Store) GetPage(ctx context.Context, page, size int, f *catalog.Filters) ([]*catalog.Movie, int) {
	s.ensureLoaded(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := catalog.Apply(s.movies, f)
	total := len(filtered)

	pageItems := catalog.Paginate(filtered, page, size)
	items := make([]*catalog.Movie, len(pageItems))
	for i, m := range pageItems {
		items[i] = m.Clone()
	}
	return items, total
}

// GetByID returns a copy of the record with the given id.
func (s *Store) GetByID(ctx context.Context, id int) (*catalog.Movie, bool) {
	s.ensureLoaded(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.movies {
		if m.ID == id {
			metrics.RecordStoreOperation("get", true)
			return m.Clone(), true
		}
	}
	metrics.RecordStoreOperation("get", false)
	return nil, false
}

// Create appends a new record and returns its assigned id. The favorite
// flag and personal fields always initialize unset regardless of input.
func (s *Store) Create(ctx context.Context, cmd catalog.CreateCommand) int {
	s.ensureLoaded(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	m := &catalog.Movie{
		ID:                  s.nextID,
		Title:               cmd.Title,
		Overview:            cmd.Overview,
		Genres:              cmd.Genres,
		Keywords:            cmd.Keywords,
		Tagline:             cmd.Tagline,
		Cast:                cmd.Cast,
		Crew:                cmd.Crew,
		ProductionCompanies: cmd.ProductionCompanies,
		ProductionCountries: cmd.ProductionCountries,
		SpokenLanguages:     cmd.SpokenLanguages,
		OriginalLanguage:    cmd.OriginalLanguage,
		OriginalTitle:       cmd.OriginalTitle,
		ReleaseDate:         cmd.ReleaseDate,
		Runtime:             cmd.Runtime,
		VoteAverage:         cmd.VoteAverage,
		VoteCount:           cmd.VoteCount,
		Popularity:          cmd.Popularity,
	}
	s.movies = append(s.movies, m)
	s.nextID++

	metrics.RecordStoreOperation("create", true)
	metrics.StoreMovies.Set(float64(len(s.movies)))
	return m.ID
}

// Update applies the explicitly provided fields of cmd to the record with
// the given id. Returns false if the id is not found; nothing is mutated in
// that case.
func (s *Store) Update(ctx context.Context, id int, cmd catalog.UpdateCommand) bool {
	s.ensureLoaded(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.movies {
		if m.ID != id {
			continue
		}
		if v, ok := cmd.Title.Get(); ok {
			m.Title = v
		}
		if v, ok := cmd.Overview.Get(); ok {
			m.Overview = v
		}
		if v, ok := cmd.IsFavorite.Get(); ok {
			m.IsFavorite = v
		}
		if v, ok := cmd.PersonalRating.Get(); ok {
			m.PersonalRating = v
		}
		if v, ok := cmd.PersonalNotes.Get(); ok {
			m.PersonalNotes = v
		}
		metrics.RecordStoreOperation("update", true)
		return true
	}
	metrics.RecordStoreOperation("update", false)
	return false
}

// ToggleFavorite flips the favorite flag on the record with the given id
// under the lock, returning the new flag value. The second return is false
// if the id is not found.
func (s *Store) ToggleFavorite(ctx context.Context, id int) (bool, bool) {
	s.ensureLoaded(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.movies {
		if m.ID == id {
			m.IsFavorite = !m.IsFavorite
			metrics.RecordStoreOperation("toggle_favorite", true)
			return m.IsFavorite, true
		}
	}
	metrics.RecordStoreOperation("toggle_favorite", false)
	return false, false
}

// Delete removes the record with the given id. Returns false if not found;
// a second delete of the same id is a not-found, never an error.
func (s *Store) Delete(ctx context.Context, id int) bool {
	s.ensureLoaded(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.movies {
		if m.ID == id {
			s.movies = append(s.movies[:i], s.movies[i+1:]...)
			metrics.RecordStoreOperation("delete", true)
			metrics.StoreMovies.Set(float64(len(s.movies)))
			return true
		}
	}
	metrics.RecordStoreOperation("delete", false)
	return false
}

// Stats aggregates statistics over the full, unfiltered collection.
func (s *Store) Stats(ctx context.Context) catalog.Stats {
	s.ensureLoaded(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	return catalog.Compute(s.movies)
}

// Count returns the current number of records.
func (s *Store) Count(ctx context.Context) int {
	s.ensureLoaded(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.movies)
}

// Loaded reports whether the one-time load has completed.
func (s *Store) Loaded() bool {
	return s.loaded.Load()
}
