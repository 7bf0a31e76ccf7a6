// Cinelog - Movie Catalog Search & CRUD API
// Copyright 2026 Cinelog contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelog/cinelog

// Command chunkcsv splits a large movie CSV export into fixed-size chunk
// files plus a metadata.json manifest, ready to serve as a chunk directory.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cinelog/cinelog/internal/chunkfile"
	"github.com/cinelog/cinelog/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		input     string
		output    string
		chunkSize int
		logLevel  string
	)

	cmd := &cobra.Command{
		Use:   "chunkcsv",
		Short: "Split a movie catalog CSV into chunk files",
		Long: `chunkcsv splits a large CSV export into numbered chunk files
(movies_chunk_000.csv, movies_chunk_001.csv, ...) of a fixed row count,
re-encoded as UTF-8, with the header repeated in every chunk. A
metadata.json manifest describing the split is written alongside them.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.Init(logging.Config{Level: logLevel, Format: "console"})

			if chunkSize < 1 {
				return fmt.Errorf("chunk size must be at least 1, got %d", chunkSize)
			}

			manifest, err := chunkfile.Split(input, output, chunkSize)
			if err != nil {
				return err
			}

			fmt.Printf("Split %s into %d chunks (%d rows) under %s\n",
				manifest.OriginalFile, manifest.TotalChunks, manifest.TotalRows, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "path to the source CSV file")
	cmd.Flags().StringVarP(&output, "output", "o", "data_chunks", "directory to write chunks into")
	cmd.Flags().IntVarP(&chunkSize, "chunk-size", "s", 1000, "rows per chunk")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
