package fileio

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Sniff guesses the format of a label file from its first bytes.
func Sniff(prefix []byte) Format {
	if len(prefix) >= 4 && binary.LittleEndian.Uint32(prefix) == MagicNumber {
		return FormatBinary
	}
	if t := bytes.TrimLeft(prefix, " \t\r\n"); len(t) > 0 && t[0] == '{' {
		return FormatJSON
	}
	return FormatText
}

// Encode writes labels to w. FormatAuto encodes as FormatBinary.
func Encode(w io.Writer, labels []float64, opts ...Option) error {
	o := newOptions(opts)
	return encode(w, labels, o)
}

func encode(w io.Writer, labels []float64, o options) error {
	switch o.format {
	case FormatAuto, FormatBinary:
		return encodeBinary(w, labels, o)
	case FormatText:
		return encodeText(w, labels)
	case FormatJSON:
		return encodeJSON(w, labels, o)
	default:
		return fmt.Errorf("fileio: cannot encode %s", o.format)
	}
}

// Decode reads labels from r, sniffing the format unless one is configured.
func Decode(r io.Reader, opts ...Option) ([]float64, error) {
	labels, _, err := decode(r, newOptions(opts))
	return labels, err
}

func decode(r io.Reader, o options) ([]float64, Info, error) {
	format := o.format
	if format == FormatAuto {
		br := bufio.NewReader(r)
		prefix, _ := br.Peek(64)
		format = Sniff(prefix)
		r = br
	}
	info := Info{Format: format}

	var (
		labels []float64
		err    error
	)
	switch format {
	case FormatBinary:
		var h Header
		labels, h, err = decodeBinary(r)
		info.setHeader(h)
	case FormatText:
		labels, err = decodeText(r)
	case FormatJSON:
		labels, err = decodeJSON(r, o)
	default:
		err = fmt.Errorf("fileio: cannot decode %s", format)
	}
	if err != nil {
		return nil, info, err
	}
	info.Count = len(labels)
	return labels, info, nil
}

// Info describes a decoded label file.
type Info struct {
	Format      Format
	Count       int
	Compression Compression // binary only
	ID          uuid.UUID   // binary only
	Checksum    uint32      // binary only
	StoredBytes uint64      // binary only; payload bytes after the header
}

func (i *Info) setHeader(h Header) {
	i.Compression = h.Compression
	i.ID = h.ID
	i.Checksum = h.Checksum
	i.StoredBytes = h.PayloadSize
}

// Inspect decodes r fully and reports what it found.
func Inspect(r io.Reader, opts ...Option) (Info, error) {
	_, info, err := decode(r, newOptions(opts))
	return info, err
}
