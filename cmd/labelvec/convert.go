package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/labelvec"
)

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <src> <dst> [<src> <dst>]...",
		Short: "Copy labels between locations and formats",
		Long: `Copy labels between locations. Pairs are converted concurrently,
bounded by --jobs and throttled by --io-limit.`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 || len(args)%2 != 0 {
				return fmt.Errorf("expected <src> <dst> pairs, got %d arguments", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			g, ctx := errgroup.WithContext(cmd.Context())
			for i := 0; i < len(args); i += 2 {
				src, dst := args[i], args[i+1]
				g.Go(func() error {
					if err := a.rc.AcquireJob(ctx); err != nil {
						return err
					}
					defer a.rc.ReleaseJob()

					n, err := a.convert(ctx, src, dst)
					if err != nil {
						return fmt.Errorf("%s -> %s: %w", src, dst, err)
					}
					a.logger.WithCount(n).InfoContext(ctx, "converted", "src", src, "dst", dst)
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "converted %d file(s)\n", len(args)/2)
			return nil
		},
	}
}

func (a *app) convert(ctx context.Context, src, dst string) (int, error) {
	in, err := openLocation(ctx, src, a.inOpts...)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	labels, err := labelvec.NewFromReader(ctx, in.ep, a.storeOptions()...)
	if err != nil {
		return 0, err
	}
	return labels.NumLabels(), a.save(ctx, labels, dst)
}

// save writes labels to uri with the output flags applied.
func (a *app) save(ctx context.Context, labels *labelvec.DenseLabels, uri string) error {
	out, err := openLocation(ctx, uri, a.outOpts...)
	if err != nil {
		return err
	}
	defer out.Close()
	return labels.Save(ctx, out.ep)
}
