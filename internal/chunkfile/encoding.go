// Cinelog - Movie Catalog Search & CRUD API
// Copyright 2026 Cinelog contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelog/cinelog

// Package chunkfile reads the partitioned movie catalog: either a directory
// of pre-split movies_chunk_NNN.csv files or one large delimited file
// consumed in bounded sequential pages. It also provides the splitter the
// chunkcsv utility is built on.
package chunkfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// sampleRows is how many records an encoding probe must parse before an
// encoding is accepted.
const sampleRows = 5

// candidateEncoding pairs an encoding name with its decoder.
type candidateEncoding struct {
	name string
	enc  encoding.Encoding
}

// encodingLadder is the ordered list of text encodings tried against a
// source file sample. The source data ships as latin-1 more often than not,
// so it goes first.
var encodingLadder = []candidateEncoding{
	{"latin-1", charmap.ISO8859_1},
	{"utf-8", unicode.UTF8},
	{"iso-8859-1", charmap.ISO8859_1},
	{"cp1252", charmap.Windows1252},
}

// detectEncoding probes the encoding ladder against the head of the file and
// returns the first encoding whose sample parses as CSV.
func detectEncoding(path string) (candidateEncoding, error) {
	for _, cand := range encodingLadder {
		ok, err := probeEncoding(path, cand.enc)
		if err != nil {
			return candidateEncoding{}, err
		}
		if ok {
			return cand, nil
		}
	}
	return candidateEncoding{}, fmt.Errorf("no compatible encoding found for %s", path)
}

// probeEncoding attempts to parse the first few records of the file through
// the decoder. Decode or parse failures are a negative probe, not an error;
// only I/O failures propagate.
func probeEncoding(path string, enc encoding.Encoding) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(transform.NewReader(f, enc.NewDecoder()))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	for i := 0; i < sampleRows; i++ {
		if _, err := r.Read(); err != nil {
			if err == io.EOF {
				return true, nil
			}
			return false, nil
		}
	}
	return true, nil
}

// openDecoded opens the file for reading through the given decoder.
func openDecoded(path string, enc encoding.Encoding) (*os.File, io.Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return f, transform.NewReader(f, enc.NewDecoder()), nil
}
