package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/hupe1980/labelvec"
	"github.com/hupe1980/labelvec/fileio"
	"github.com/hupe1980/labelvec/internal/conv"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <location>...",
		Short: "Describe label files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			for i, uri := range args {
				if i > 0 {
					fmt.Fprintln(out)
				}
				loc, err := openLocation(ctx, uri, a.inOpts...)
				if err != nil {
					return err
				}
				err = func() error {
					defer loc.Close()

					raw, meta, err := loc.load(ctx)
					if err != nil {
						return fmt.Errorf("%s: %w", uri, err)
					}
					labels, err := labelvec.NewFromReader(ctx, fileio.NewMemory(raw), a.storeOptions()...)
					if err != nil {
						return fmt.Errorf("%s: %w", uri, err)
					}

					fmt.Fprintln(out, uri)
					for _, line := range meta {
						fmt.Fprintln(out, "  "+line)
					}
					for _, line := range summarize(labels) {
						fmt.Fprintln(out, "  "+line)
					}
					return nil
				}()
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// summarize describes the value distribution of labels.
func summarize(d *labelvec.DenseLabels) []string {
	n := d.NumLabels()
	lines := []string{fmt.Sprintf("labels:      %d", n)}
	if n == 0 {
		return lines
	}

	lo, hi, sum := math.Inf(1), math.Inf(-1), 0.0
	integral := true
	classes := map[int32]int{}
	for _, v := range d.All() {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
		sum += v
		if c, ok := conv.Float64ToInt32(v); ok && integral {
			classes[c]++
		} else {
			integral = false
		}
	}

	lines = append(lines,
		fmt.Sprintf("valid:       %t", d.IsValid()),
		fmt.Sprintf("min:         %g", lo),
		fmt.Sprintf("max:         %g", hi),
		fmt.Sprintf("mean:        %g", sum/float64(n)),
	)
	if integral {
		lines = append(lines, fmt.Sprintf("classes:     %d", len(classes)))
	}
	return lines
}
