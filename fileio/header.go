package fileio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/google/uuid"
)

const (
	// MagicNumber identifies binary label files (ASCII "LBL0").
	MagicNumber = 0x4C424C30
	// Version is the current binary format version (v1.0.0).
	Version = 0x00010000
	// HeaderSize is the encoded size of Header.
	HeaderSize = 64
)

var (
	ErrInvalidMagic       = errors.New("fileio: invalid magic number")
	ErrUnsupportedVersion = errors.New("fileio: unsupported version")
	ErrCorrupt            = errors.New("fileio: corrupt label file")
)

// Header is the 64-byte preamble of a binary label file.
type Header struct {
	Magic       uint32
	Version     uint32
	Compression Compression
	_           [3]byte
	Count       uint64    // number of labels
	ID          uuid.UUID // dataset identifier
	PayloadSize uint64    // bytes stored after the header
	Checksum    uint32    // CRC32 (IEEE) of the uncompressed payload
	_           [4]byte
	_           [12]byte
}

// ReadHeader reads and validates a header.
func ReadHeader(r io.Reader) (Header, error) {
	var h Header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return h, fmt.Errorf("%w: short header", ErrCorrupt)
		}
		return h, err
	}
	return h, h.validate()
}

func (h Header) validate() error {
	if h.Magic != MagicNumber {
		return fmt.Errorf("%w: %#08x", ErrInvalidMagic, h.Magic)
	}
	if h.Version>>16 != Version>>16 {
		return fmt.Errorf("%w: %#08x", ErrUnsupportedVersion, h.Version)
	}
	if !h.Compression.valid() {
		return fmt.Errorf("%w: unknown compression %d", ErrCorrupt, h.Compression)
	}
	if h.Count > math.MaxInt64/8 {
		return fmt.Errorf("%w: label count %d", ErrCorrupt, h.Count)
	}
	if h.Compression == CompressionNone {
		if h.PayloadSize != h.Count*8 {
			return fmt.Errorf("%w: payload size %d for %d labels", ErrCorrupt, h.PayloadSize, h.Count)
		}
		return nil
	}
	// A compressed block holds at most Count*8 bytes plus its header, since
	// incompressible data is stored raw.
	if h.Count*8 > math.MaxUint32 {
		return fmt.Errorf("%w: %d labels exceed the compressed block limit", ErrCorrupt, h.Count)
	}
	if h.PayloadSize < blockHeaderSize || h.PayloadSize > blockHeaderSize+h.Count*8 {
		return fmt.Errorf("%w: compressed payload size %d for %d labels", ErrCorrupt, h.PayloadSize, h.Count)
	}
	return nil
}

func writeHeader(w io.Writer, h *Header) error {
	h.Magic = MagicNumber
	h.Version = Version
	return binary.Write(w, binary.LittleEndian, h)
}
