package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bibkit/marc21/format"
	"github.com/bibkit/marc21/marcio"
)

var (
	flagCompression string
	flagDedup       bool
	flagDedupByID   bool
)

// rootCmd is the base Cobra command for the marc21 CLI.
var rootCmd = &cobra.Command{
	Use:           "marc21",
	Short:         "Inspect and validate MARC21 record files",
	Long:          "marc21 reads files of binary MARC21 bibliographic records and dumps, counts or lint-checks them.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the marc21 CLI. Lint findings exit 1; other failures exit 2.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	if errors.Is(err, errFindings) {
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(2)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagCompression, "compression", "none", "stream compression: none|gzip|zstd|s2|lz4")
	rootCmd.PersistentFlags().BoolVar(&flagDedup, "dedup", false, "skip byte-identical duplicate records")
	rootCmd.PersistentFlags().BoolVar(&flagDedupByID, "dedup-by-id", false, "skip records repeating an 001 control number")
}

// openReader opens path and wraps it per the shared flags. The returned
// cleanup closes both the reader and the file.
func openReader(path string) (*marcio.Reader, func(), error) {
	compression, err := format.ParseCompression(flagCompression)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	opts := []marcio.ReaderOption{marcio.WithCompression(compression)}
	if flagDedup {
		opts = append(opts, marcio.WithDedup())
	}
	if flagDedupByID {
		opts = append(opts, marcio.WithControlNumberDedup())
	}

	r, err := marcio.NewReader(f, opts...)
	if err != nil {
		f.Close()
		return nil, nil, err
	}

	cleanup := func() {
		r.Close()
		f.Close()
	}

	return r, cleanup, nil
}
