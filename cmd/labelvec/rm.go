package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <location>...",
		Short: "Delete label files or SQLite label sets",
		Long:  `Delete each location. Locations that do not exist are skipped silently.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			for _, uri := range args {
				loc, err := openLocation(ctx, uri)
				if err != nil {
					return err
				}
				err = loc.Remove(ctx)
				_ = loc.Close()
				if err != nil {
					return fmt.Errorf("failed to remove %s: %w", uri, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", uri)
			}
			return nil
		},
	}
}
