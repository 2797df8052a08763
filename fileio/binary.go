package fileio

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/google/uuid"

	"github.com/hupe1980/labelvec/internal/conv"
)

func encodeFloat64s(labels []float64) []byte {
	buf := make([]byte, 8*len(labels))
	for i, v := range labels {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	return buf
}

func decodeFloat64s(payload []byte) []float64 {
	out := make([]float64, len(payload)/8)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(payload[i*8:]))
	}
	return out
}

func encodeBinary(w io.Writer, labels []float64, o options) error {
	count, err := conv.IntToUint64(len(labels))
	if err != nil {
		return err
	}
	raw := encodeFloat64s(labels)
	stored, err := compressBlock(raw, o.compression)
	if err != nil {
		return err
	}

	id := o.id
	if id == uuid.Nil {
		id = uuid.New()
	}
	h := Header{
		Compression: o.compression,
		Count:       count,
		ID:          id,
		PayloadSize: uint64(len(stored)),
		Checksum:    checksum(raw),
	}

	bw := bufio.NewWriter(w)
	if err := writeHeader(bw, &h); err != nil {
		return err
	}
	if _, err := bw.Write(stored); err != nil {
		return err
	}
	return bw.Flush()
}

// decodePayload turns the bytes stored after h into labels.
func decodePayload(h Header, stored []byte) ([]float64, error) {
	raw, err := decompressBlock(stored, h.Compression, h.Count*8)
	if err != nil {
		return nil, err
	}
	if uint64(len(raw)) != h.Count*8 {
		return nil, fmt.Errorf("%w: payload holds %d bytes for %d labels", ErrCorrupt, len(raw), h.Count)
	}
	if err := verifyChecksum(raw, h.Checksum); err != nil {
		return nil, err
	}
	return decodeFloat64s(raw), nil
}

func decodeBinary(r io.Reader) ([]float64, Header, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return nil, h, err
	}
	// The buffer grows with the bytes actually present, not with the header's claim.
	stored, err := io.ReadAll(io.LimitReader(r, int64(h.PayloadSize))) //nolint:gosec // bounded by validate
	if err != nil {
		return nil, h, err
	}
	if uint64(len(stored)) != h.PayloadSize {
		return nil, h, fmt.Errorf("%w: truncated payload: %d of %d bytes", ErrCorrupt, len(stored), h.PayloadSize)
	}
	labels, err := decodePayload(h, stored)
	return labels, h, err
}

// decodeBinaryBytes decodes a whole binary file held in memory without
// copying the payload first.
func decodeBinaryBytes(data []byte) ([]float64, Header, error) {
	h, err := ReadHeader(bytes.NewReader(data))
	if err != nil {
		return nil, h, err
	}
	rest := data[HeaderSize:]
	if uint64(len(rest)) < h.PayloadSize {
		return nil, h, fmt.Errorf("%w: truncated payload", ErrCorrupt)
	}
	labels, err := decodePayload(h, rest[:h.PayloadSize])
	return labels, h, err
}
