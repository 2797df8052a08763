package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/labelvec"
)

func newFillCmd(a *app) *cobra.Command {
	var (
		size  int
		value float64
	)
	cmd := &cobra.Command{
		Use:   "fill <dst>",
		Short: "Write a constant label vector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if size <= 0 {
				return errors.New("--size must be positive")
			}
			labels := labelvec.New(size, a.storeOptions()...)
			labels.SetToConst(value)
			if err := labels.Validate(); err != nil {
				return err
			}
			if err := a.save(cmd.Context(), labels, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d labels to %s\n", size, args[0])
			return nil
		},
	}
	cmd.Flags().IntVarP(&size, "size", "n", 0, "number of labels")
	cmd.Flags().Float64Var(&value, "value", 0, "label value")
	return cmd
}
