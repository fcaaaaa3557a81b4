package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "count <file>",
		Short: "Count the records in a file",
		Args:  cobra.ExactArgs(1),
		RunE:  runCount,
	}
	rootCmd.AddCommand(cmd)
}

func runCount(cmd *cobra.Command, args []string) error {
	r, cleanup, err := openReader(args[0])
	if err != nil {
		return err
	}
	defer cleanup()

	count := 0
	for {
		if _, err := r.Next(); err != nil {
			if err == io.EOF {
				break
			}

			return err
		}
		count++
	}

	fmt.Println(count)

	return nil
}
