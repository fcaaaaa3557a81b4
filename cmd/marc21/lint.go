package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bibkit/marc21/lint"
)

func init() {
	cmd := &cobra.Command{
		Use:   "lint <file>",
		Short: "Check records against the MARC21 field rules",
		Long: "lint validates every record in the file against the built-in MARC21 " +
			"bibliographic rule table and prints one line per finding. " +
			"The exit status is 1 if any record has findings.",
		Args: cobra.ExactArgs(1),
		RunE: runLint,
	}
	rootCmd.AddCommand(cmd)
}

func runLint(cmd *cobra.Command, args []string) error {
	linter, err := lint.NewLinter()
	if err != nil {
		return err
	}

	r, cleanup, err := openReader(args[0])
	if err != nil {
		return err
	}
	defer cleanup()

	found := false
	for index := 1; ; index++ {
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		res, err := linter.Check(rec)
		if err != nil {
			return err
		}

		warnings := mergeWarnings(rec.Warnings(), res.Warnings())
		if len(warnings) == 0 {
			continue
		}
		found = true

		label := rec.ControlNumber()
		if label == "" {
			label = fmt.Sprintf("record %d", index)
		}
		for _, warning := range warnings {
			fmt.Printf("%s: %s\n", label, warning)
		}
	}

	if found {
		return errFindings
	}

	return nil
}

// errFindings makes the lint command exit non-zero without printing a
// redundant message; Execute handles the process exit code.
var errFindings = fmt.Errorf("lint findings reported")

// mergeWarnings concatenates decode advisories and lint findings into a
// fresh slice, leaving both inputs untouched.
func mergeWarnings(decode, lint []string) []string {
	merged := make([]string, 0, len(decode)+len(lint))
	merged = append(merged, decode...)
	merged = append(merged, lint...)

	return merged
}
