package fileio

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/hupe1980/labelvec/codec"
	"github.com/hupe1980/labelvec/resource"
)

// Reader produces a flat label vector. The caller owns the returned slice.
type Reader interface {
	ReadVector(ctx context.Context) ([]float64, error)
}

// Writer persists a flat label vector. It must not retain the slice.
type Writer interface {
	WriteVector(ctx context.Context, labels []float64) error
}

// Format identifies an on-disk label encoding.
type Format uint8

const (
	// FormatAuto sniffs the format on decode and means FormatBinary on encode.
	FormatAuto Format = iota
	// FormatBinary is the headered little-endian float64 format.
	FormatBinary
	// FormatText is one value per line.
	FormatText
	// FormatJSON is a JSON document with count and labels.
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatBinary:
		return "binary"
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// ParseFormat parses a format name as printed by Format.String.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return FormatAuto, nil
	case "binary", "bin", "lbl":
		return FormatBinary, nil
	case "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatAuto, fmt.Errorf("fileio: unknown format %q", s)
	}
}

// FormatFromPath guesses the format from a file extension.
// Unknown extensions yield FormatAuto.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".lbl", ".bin":
		return FormatBinary
	case ".txt", ".label", ".labels", ".csv":
		return FormatText
	case ".json":
		return FormatJSON
	default:
		return FormatAuto
	}
}

type options struct {
	format      Format
	compression Compression
	id          uuid.UUID
	codec       codec.Codec
	rc          *resource.Controller
}

func newOptions(opts []Option) options {
	o := options{
		compression: CompressionNone,
		codec:       codec.Default,
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Option configures encoding and adapters.
type Option func(*options)

// WithFormat fixes the format instead of sniffing or guessing it.
func WithFormat(f Format) Option {
	return func(o *options) { o.format = f }
}

// WithCompression selects block compression for the binary format.
func WithCompression(c Compression) Option {
	return func(o *options) { o.compression = c }
}

// WithID stamps a dataset ID into binary headers. A zero ID means a random one.
func WithID(id uuid.UUID) Option {
	return func(o *options) { o.id = id }
}

// WithCodec sets the JSON codec for FormatJSON.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c != nil {
			o.codec = c
		}
	}
}

// WithRateLimit throttles adapter I/O through rc.
func WithRateLimit(rc *resource.Controller) Option {
	return func(o *options) { o.rc = rc }
}
