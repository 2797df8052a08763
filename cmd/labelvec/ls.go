package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls <container>",
		Short: "List label files in a directory, bucket prefix or SQLite database",
		Example: `  labelvec ls ./data
  labelvec ls s3://bucket/datasets/
  labelvec ls sqlite://labels.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := listLocation(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list %s: %w", args[0], err)
			}
			out := cmd.OutOrStdout()
			for _, e := range entries {
				if e.detail == "" {
					fmt.Fprintln(out, e.name)
					continue
				}
				fmt.Fprintf(out, "%s\t%s\n", e.name, e.detail)
			}
			return nil
		},
	}
}
