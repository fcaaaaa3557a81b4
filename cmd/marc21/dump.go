package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print records in human-readable form",
		Args:  cobra.ExactArgs(1),
		RunE:  runDump,
	}
	rootCmd.AddCommand(cmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	r, cleanup, err := openReader(args[0])
	if err != nil {
		return err
	}
	defer cleanup()

	for {
		rec, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Println(rec.DisplayString())
		fmt.Println()
		for _, warning := range rec.Warnings() {
			fmt.Fprintln(os.Stderr, "warning:", warning)
		}
	}
}
