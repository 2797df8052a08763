package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/labelvec"
	"github.com/hupe1980/labelvec/codec"
	"github.com/hupe1980/labelvec/fileio"
	"github.com/hupe1980/labelvec/resource"
)

type globalFlags struct {
	verbose     bool
	jobs        int64
	ioLimit     int64
	format      string
	compression string
	jsonCodec   string
}

// app carries what every subcommand needs once flags are parsed.
type app struct {
	flags   globalFlags
	logger  *labelvec.Logger
	rc      *resource.Controller
	inOpts  []fileio.Option
	outOpts []fileio.Option
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "labelvec",
		Short:         "Work with dense label vectors",
		Long:          `Inspect, convert, fill and filter label files on local disk, S3, MinIO or SQLite.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
	}

	f := cmd.PersistentFlags()
	f.BoolVarP(&a.flags.verbose, "verbose", "v", false, "enable debug logging")
	f.Int64VarP(&a.flags.jobs, "jobs", "j", 4, "maximum concurrent conversions")
	f.Int64Var(&a.flags.ioLimit, "io-limit", 0, "I/O limit in bytes per second (0 = unlimited)")
	f.StringVar(&a.flags.format, "format", "", "output format: binary, text or json (default from extension)")
	f.StringVar(&a.flags.compression, "compression", "none", "binary output compression: none, lz4 or zstd")
	f.StringVar(&a.flags.jsonCodec, "json-codec", codec.Default.Name(), "JSON implementation: "+strings.Join(codec.Names(), ", "))

	cmd.AddCommand(
		newInfoCmd(a),
		newConvertCmd(a),
		newFillCmd(a),
		newSelectCmd(a),
		newLsCmd(),
		newRmCmd(),
	)
	return cmd
}

func (a *app) init() error {
	level := slog.LevelWarn
	if a.flags.verbose {
		level = slog.LevelDebug
	}
	a.logger = labelvec.NewTextLogger(level)

	a.rc = resource.NewController(resource.Config{
		MaxConcurrentJobs:  a.flags.jobs,
		IOLimitBytesPerSec: a.flags.ioLimit,
	})

	format, err := fileio.ParseFormat(a.flags.format)
	if err != nil {
		return err
	}
	compression, err := fileio.ParseCompression(a.flags.compression)
	if err != nil {
		return err
	}
	jc, ok := codec.ByName(a.flags.jsonCodec)
	if !ok {
		return fmt.Errorf("unknown JSON codec %q", a.flags.jsonCodec)
	}
	a.inOpts = []fileio.Option{fileio.WithCodec(jc), fileio.WithRateLimit(a.rc)}
	a.outOpts = []fileio.Option{fileio.WithCodec(jc), fileio.WithRateLimit(a.rc), fileio.WithCompression(compression)}
	if format != fileio.FormatAuto {
		a.outOpts = append(a.outOpts, fileio.WithFormat(format))
	}
	return nil
}

func (a *app) storeOptions() []labelvec.Option {
	return []labelvec.Option{labelvec.WithLogger(a.logger)}
}
