// Cinelog - Movie Catalog Search & CRUD API
// Copyright 2026 Cinelog contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelog/cinelog

package chunkfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

const chunkHeader = "title,overview,genres,original_language,release_date,runtime,vote_average\n"

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDirSourceLoadsChunksInOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "movies_chunk_001.csv"),
		[]byte(chunkHeader+"Second,,,en,2001-01-01,100,7.0\n"))
	writeFile(t, filepath.Join(dir, "movies_chunk_000.csv"),
		[]byte(chunkHeader+"First,,,en,1999-01-01,120,8.0\n"))

	src := &DirSource{Dir: dir}
	movies, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(movies) != 2 {
		t.Fatalf("loaded %d movies, want 2", len(movies))
	}
	if movies[0].Title != "First" || movies[1].Title != "Second" {
		t.Errorf("chunk order wrong: %q, %q", movies[0].Title, movies[1].Title)
	}
	if movies[0].Runtime == nil || *movies[0].Runtime != 120 {
		t.Errorf("Runtime = %v", movies[0].Runtime)
	}
}

func TestDirSourceMissingDirectory(t *testing.T) {
	src := &DirSource{Dir: filepath.Join(t.TempDir(), "nope")}
	movies, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("missing directory must not error, got %v", err)
	}
	if len(movies) != 0 {
		t.Errorf("expected empty catalog, got %d movies", len(movies))
	}
}

func TestDirSourceEmptyDirectory(t *testing.T) {
	src := &DirSource{Dir: t.TempDir()}
	movies, err := src.Load(context.Background())
	if err != nil || len(movies) != 0 {
		t.Errorf("empty directory: movies=%d err=%v, want empty and nil", len(movies), err)
	}
}

func TestDirSourceSkipsUnreadableChunk(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "movies_chunk_000.csv"),
		[]byte(chunkHeader+"Good,,,en,1999-01-01,120,8.0\n"))
	// a chunk with no header row at all still parses as CSV; a directory
	// pretending to be a chunk does not
	if err := os.Mkdir(filepath.Join(dir, "movies_chunk_001.csv"), 0o755); err != nil {
		t.Fatal(err)
	}

	src := &DirSource{Dir: dir}
	movies, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(movies) != 1 || movies[0].Title != "Good" {
		t.Errorf("expected only the good chunk, got %d movies", len(movies))
	}
}

func TestDirSourceIgnoresNonChunkFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "movies_chunk_000.csv"),
		[]byte(chunkHeader+"Kept,,,en,1999-01-01,120,8.0\n"))
	writeFile(t, filepath.Join(dir, "metadata.json"), []byte(`{}`))
	writeFile(t, filepath.Join(dir, "notes.txt"), []byte("ignore me"))

	src := &DirSource{Dir: dir}
	movies, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(movies) != 1 {
		t.Errorf("loaded %d movies, want 1", len(movies))
	}
}

func TestFileSourceLoadsPaged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.csv")
	data := chunkHeader
	for _, title := range []string{"A", "B", "C", "D", "E"} {
		data += title + ",,,en,2000-01-01,100,7.0\n"
	}
	writeFile(t, path, []byte(data))

	src := &FileSource{Path: path, PageSize: 2}
	movies, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(movies) != 5 {
		t.Fatalf("loaded %d movies, want 5", len(movies))
	}
	if movies[0].Title != "A" || movies[4].Title != "E" {
		t.Errorf("order wrong: first=%q last=%q", movies[0].Title, movies[4].Title)
	}
}

func TestFileSourceMissingFile(t *testing.T) {
	src := &FileSource{Path: filepath.Join(t.TempDir(), "gone.csv"), PageSize: 10}
	movies, err := src.Load(context.Background())
	if err != nil || len(movies) != 0 {
		t.Errorf("missing file: movies=%d err=%v, want empty and nil", len(movies), err)
	}
}

func TestFileSourceSkipsWideRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.csv")
	data := "title,overview\n" +
		"Fine,ok\n" +
		"Broken,too,many,columns,here\n" +
		"AlsoFine,ok\n"
	writeFile(t, path, []byte(data))

	src := &FileSource{Path: path, PageSize: 10}
	movies, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(movies) != 2 {
		t.Fatalf("loaded %d movies, want 2 (wide row skipped)", len(movies))
	}
	if movies[0].Title != "Fine" || movies[1].Title != "AlsoFine" {
		t.Errorf("titles = %q, %q", movies[0].Title, movies[1].Title)
	}
}

func TestFileSourceShortRowFillsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.csv")
	writeFile(t, path, []byte("title,overview,runtime\nSparse\n"))

	src := &FileSource{Path: path, PageSize: 10}
	movies, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(movies) != 1 {
		t.Fatalf("loaded %d movies, want 1", len(movies))
	}
	if movies[0].Title != "Sparse" || movies[0].Overview != "" || movies[0].Runtime != nil {
		t.Errorf("short row not filled with absent values: %+v", movies[0])
	}
}

func TestFileSourceLatin1Reencoded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.csv")
	// "Amélie" with the é as a single latin-1 byte (0xE9), invalid UTF-8
	row := append([]byte("title,overview\nAm"), 0xE9)
	row = append(row, []byte("lie,fine\n")...)
	writeFile(t, path, row)

	src := &FileSource{Path: path, PageSize: 10}
	movies, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(movies) != 1 {
		t.Fatalf("loaded %d movies, want 1", len(movies))
	}
	if movies[0].Title != "Amélie" {
		t.Errorf("Title = %q, want Amélie decoded from latin-1", movies[0].Title)
	}
}

func TestFileSourceHeaderNormalized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.csv")
	writeFile(t, path, []byte(" Title , OVERVIEW \nX,story\n"))

	src := &FileSource{Path: path, PageSize: 10}
	movies, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(movies) != 1 || movies[0].Title != "X" || movies[0].Overview != "story" {
		t.Errorf("header not normalized: %+v", movies)
	}
}

func TestFileSourceCanceledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.csv")
	writeFile(t, path, []byte(chunkHeader+"A,,,en,2000-01-01,100,7.0\n"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &FileSource{Path: path, PageSize: 1}
	if _, err := src.Load(ctx); err == nil {
		t.Error("expected context error from canceled load")
	}
}
