// Cinelog - Movie Catalog Search & CRUD API
// Copyright 2026 Cinelog contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelog/cinelog

package chunkfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cinelog/cinelog/internal/catalog"
	"github.com/cinelog/cinelog/internal/logging"
	"github.com/cinelog/cinelog/internal/metrics"
)

const (
	// ChunkPattern matches partition files inside a chunk directory.
	ChunkPattern = "movies_chunk_*.csv"

	// chunkFileFormat names a partition file by its zero-padded sequence
	// number, so filename sort order is load order.
	chunkFileFormat = "movies_chunk_%03d.csv"
)

// DirSource loads the catalog from a directory of pre-split chunk files,
// in filename-sorted order, concatenated into one record list.
type DirSource struct {
	Dir string
}

// Load reads every chunk file in order. A chunk that cannot be read or
// parsed is logged and skipped; a missing directory or an empty one yields
// an empty catalog, not an error.
func (s *DirSource) Load(ctx context.Context) ([]*catalog.Movie, error) {
	if _, err := os.Stat(s.Dir); err != nil {
		logging.Warn().Str("dir", s.Dir).Msg("Chunk directory not found, starting with empty catalog")
		return nil, nil
	}

	paths, err := filepath.Glob(filepath.Join(s.Dir, ChunkPattern))
	if err != nil {
		return nil, fmt.Errorf("failed to list chunk files in %s: %w", s.Dir, err)
	}
	if len(paths) == 0 {
		logging.Warn().Str("dir", s.Dir).Msg("No chunk files found, starting with empty catalog")
		return nil, nil
	}
	sort.Strings(paths)

	var movies []*catalog.Movie
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		chunk, err := readChunk(path)
		if err != nil {
			logging.Error().Err(err).Str("chunk", filepath.Base(path)).Msg("Failed to load chunk, skipping")
			continue
		}
		movies = append(movies, chunk...)
		logging.Debug().Str("chunk", filepath.Base(path)).Int("rows", len(chunk)).Msg("Loaded chunk")
	}

	logging.Info().Int("movies", len(movies)).Int("chunks", len(paths)).Msg("Catalog loaded from chunks")
	return movies, nil
}

// readChunk parses one chunk file through the encoding ladder.
func readChunk(path string) ([]*catalog.Movie, error) {
	enc, err := detectEncoding(path)
	if err != nil {
		return nil, err
	}

	f, r, err := openDecoded(path, enc.enc)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := newRowReader(r)
	if err := reader.readHeader(); err != nil {
		return nil, err
	}

	var movies []*catalog.Movie
	for {
		row, err := reader.next()
		if err == io.EOF {
			return movies, nil
		}
		if err != nil {
			return nil, err
		}
		if row == nil {
			continue
		}
		if m := movieFromRow(row); m != nil {
			movies = append(movies, m)
			metrics.RowsLoaded.Inc()
		} else {
			metrics.RowsSkipped.Inc()
		}
	}
}

// FileSource loads the catalog from a single large delimited file, read in
// bounded sequential pages of PageSize rows to avoid unbounded memory spikes
// during parsing.
type FileSource struct {
	Path     string
	PageSize int
}

// Load probes the encoding ladder against a sample, then streams the file
// page by page. Malformed rows are skipped silently; a missing file yields
// an empty catalog.
func (s *FileSource) Load(ctx context.Context) ([]*catalog.Movie, error) {
	if _, err := os.Stat(s.Path); err != nil {
		logging.Warn().Str("path", s.Path).Msg("CSV file not found, starting with empty catalog")
		return nil, nil
	}

	pageSize := s.PageSize
	if pageSize < 1 {
		pageSize = 200
	}

	enc, err := detectEncoding(s.Path)
	if err != nil {
		return nil, err
	}
	logging.Info().Str("path", s.Path).Str("encoding", enc.name).Msg("Loading catalog")

	f, r, err := openDecoded(s.Path, enc.enc)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := newRowReader(r)
	if err := reader.readHeader(); err != nil {
		return nil, err
	}

	var movies []*catalog.Movie
	for page := 1; ; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rows, err := reader.nextPage(pageSize)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			break
		}

		for _, row := range rows {
			if m := movieFromRow(row); m != nil {
				movies = append(movies, m)
				metrics.RowsLoaded.Inc()
			} else {
				metrics.RowsSkipped.Inc()
			}
		}

		if page%5 == 0 {
			logging.Debug().Int("page", page).Int("movies", len(movies)).Msg("Catalog load progress")
		}
	}

	logging.Info().Int("movies", len(movies)).Msg("Catalog loaded")
	return movies, nil
}

// rowReader turns CSV records into string-keyed row maps, skipping rows
// that fail to parse or whose field count exceeds the header.
type rowReader struct {
	csv    *csv.Reader
	header []string
}

func newRowReader(r io.Reader) *rowReader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return &rowReader{csv: reader}
}

func (r *rowReader) readHeader() error {
	record, err := r.csv.Read()
	if err != nil {
		return fmt.Errorf("failed to read header row: %w", err)
	}
	r.header = make([]string, len(record))
	for i, col := range record {
		r.header[i] = strings.TrimSpace(strings.ToLower(col))
	}
	return nil
}

// next returns the next row map, (nil, nil) for a skipped malformed row, or
// io.EOF at end of input.
func (r *rowReader) next() (map[string]string, error) {
	record, err := r.csv.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			logging.Debug().Err(parseErr).Msg("Skipping malformed row")
			metrics.RowsSkipped.Inc()
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read row: %w", err)
	}
	if len(record) > len(r.header) {
		logging.Debug().Int("fields", len(record)).Int("columns", len(r.header)).Msg("Skipping over-wide row")
		metrics.RowsSkipped.Inc()
		return nil, nil
	}

	row := make(map[string]string, len(r.header))
	for i, cell := range record {
		row[r.header[i]] = cell
	}
	return row, nil
}

// nextPage reads up to size rows, dropping skipped ones. An empty result
// means end of input.
func (r *rowReader) nextPage(size int) ([]map[string]string, error) {
	rows := make([]map[string]string, 0, size)
	for len(rows) < size {
		row, err := r.next()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		if row != nil {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// movieFromRow converts a row with a panic boundary as the outermost safety
// net; any panic in field parsing skips just that row.
func movieFromRow(row map[string]string) (m *catalog.Movie) {
	defer func() {
		if r := recover(); r != nil {
			m = nil
		}
	}()
	return catalog.MovieFromRow(row)
}
