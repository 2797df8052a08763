package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/labelvec"
	"github.com/hupe1980/labelvec/fileio"
	"github.com/hupe1980/labelvec/filter"
	"github.com/hupe1980/labelvec/subset"
)

func newSelectCmd(a *app) *cobra.Command {
	var (
		where  string
		engine string
	)
	cmd := &cobra.Command{
		Use:   "select <src> <dst>",
		Short: "Write the labels matching an expression",
		Long: `Evaluate --where for every label (variables: label, index) and write the
matching labels, in index order, to <dst>.`,
		Example: `  labelvec select train.lbl pos.lbl --where 'label > 0'
  labelvec select train.lbl even.txt --engine cel --where 'index % 2 == 0'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			eng, err := filter.ParseEngine(engine)
			if err != nil {
				return err
			}
			pred, err := filter.Compile(eng, where)
			if err != nil {
				return err
			}

			in, err := openLocation(ctx, args[0], a.inOpts...)
			if err != nil {
				return err
			}
			defer in.Close()

			view := subset.NewActive()
			opts := append(a.storeOptions(), labelvec.WithView(view))
			labels, err := labelvec.NewFromReader(ctx, in.ep, opts...)
			if err != nil {
				return err
			}

			storage, err := labels.Labels()
			if err != nil {
				return err
			}
			sel, err := filter.Select(storage, pred)
			if err != nil {
				return err
			}
			if sel.Len() == 0 {
				return errors.New("no labels matched")
			}

			// Loaded like any other source, so values convert accepts pass through.
			view.Set(sel)
			selected, err := labelvec.NewFromReader(ctx, fileio.NewMemory(labels.LabelsCopy()), a.storeOptions()...)
			if err != nil {
				return err
			}
			if err := a.save(ctx, selected, args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "selected %d of %d labels\n", sel.Len(), len(storage))
			return nil
		},
	}
	cmd.Flags().StringVarP(&where, "where", "w", "", "boolean expression over label and index")
	cmd.Flags().StringVar(&engine, "engine", string(filter.EngineExpr), "expression engine: expr or cel")
	_ = cmd.MarkFlagRequired("where")
	return cmd
}
