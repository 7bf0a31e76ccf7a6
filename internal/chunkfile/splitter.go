// Cinelog - Movie Catalog Search & CRUD API
// Copyright 2026 Cinelog contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelog/cinelog

package chunkfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/cinelog/cinelog/internal/logging"
)

// ManifestFile is the sidecar written next to the chunk files. It is
// descriptive metadata only and is never read back by the loader.
const ManifestFile = "metadata.json"

// Manifest records how a source file was split.
type Manifest struct {
	OriginalFile string `json:"original_file"`
	TotalChunks  int    `json:"total_chunks"`
	TotalRows    int    `json:"total_rows"`
	ChunkSize    int    `json:"chunk_size"`
	ChunkPattern string `json:"chunk_pattern"`
}

// Split partitions a large delimited file into chunk files of chunkSize
// rows each under outDir, repeating the header row in every chunk so each
// chunk is independently parseable. Chunks are written as UTF-8 regardless
// of the source encoding. A metadata.json sidecar describing the split is
// written last.
func Split(inputPath, outDir string, chunkSize int) (*Manifest, error) {
	if chunkSize < 1 {
		return nil, fmt.Errorf("chunk size must be at least 1, got %d", chunkSize)
	}

	enc, err := detectEncoding(inputPath)
	if err != nil {
		return nil, err
	}

	f, r, err := openDecoded(inputPath, enc.enc)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header row from %s: %w", inputPath, err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}

	manifest := &Manifest{
		OriginalFile: filepath.Base(inputPath),
		ChunkSize:    chunkSize,
		ChunkPattern: ChunkPattern,
	}

	for {
		rows, done, err := readRecords(reader, chunkSize)
		if err != nil {
			return nil, err
		}
		if len(rows) > 0 {
			name := fmt.Sprintf(chunkFileFormat, manifest.TotalChunks)
			manifest.TotalChunks++
			if err := writeChunk(filepath.Join(outDir, name), header, rows); err != nil {
				return nil, err
			}
			manifest.TotalRows += len(rows)
			logging.Info().Str("chunk", name).Int("rows", len(rows)).Msg("Chunk written")
		}
		if done {
			break
		}
	}

	if err := writeManifest(filepath.Join(outDir, ManifestFile), manifest); err != nil {
		return nil, err
	}

	logging.Info().
		Int("chunks", manifest.TotalChunks).
		Int("rows", manifest.TotalRows).
		Str("dir", outDir).
		Msg("Split completed")
	return manifest, nil
}

// readRecords reads up to limit data records, skipping malformed lines.
func readRecords(reader *csv.Reader, limit int) ([][]string, bool, error) {
	records := make([][]string, 0, limit)
	for len(records) < limit {
		record, err := reader.Read()
		if err == io.EOF {
			return records, true, nil
		}
		if err != nil {
			if _, ok := err.(*csv.ParseError); ok {
				continue
			}
			return nil, false, fmt.Errorf("failed to read record: %w", err)
		}
		records = append(records, record)
	}
	return records, false, nil
}

// writeChunk writes one chunk file with the header as its first row.
func writeChunk(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chunk %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write rows to %s: %w", path, err)
	}
	w.Flush()
	return w.Error()
}

// writeManifest writes the metadata.json sidecar.
func writeManifest(path string, m *Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}
	return nil
}
