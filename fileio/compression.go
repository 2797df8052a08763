package fileio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/labelvec/internal/conv"
)

// Compression selects block compression for binary payloads.
type Compression uint8

const (
	CompressionNone Compression = 0
	CompressionLZ4  Compression = 1
	CompressionZSTD Compression = 2
)

func (c Compression) valid() bool { return c <= CompressionZSTD }

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

// ParseCompression parses "none", "lz4" or "zstd".
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd":
		return CompressionZSTD, nil
	default:
		return CompressionNone, fmt.Errorf("fileio: unknown compression %q", s)
	}
}

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1), zstd.WithDecoderMaxMemory(math.MaxUint32))
	return dec
}

// A block is [uncompressed uint32][compressed uint32][data].
// compressed == 0 means data is stored raw.
const blockHeaderSize = 8

// An LZ4 sequence expands at most 255-fold.
const maxLZ4Ratio = 255

func compressBlock(data []byte, c Compression) ([]byte, error) {
	if c == CompressionNone {
		return data, nil
	}
	rawSize, err := conv.IntToUint32(len(data))
	if err != nil {
		return nil, fmt.Errorf("fileio: payload too large for block compression: %w", err)
	}

	var packed []byte
	switch c {
	case CompressionLZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, err
		}
		packed = buf[:n]
	case CompressionZSTD:
		enc := getZstdEncoder()
		packed = enc.EncodeAll(data, nil)
		zstdEncoderPool.Put(enc)
	}

	out := make([]byte, blockHeaderSize, blockHeaderSize+max(len(packed), len(data)))
	binary.LittleEndian.PutUint32(out[0:], rawSize)
	if len(packed) == 0 || len(packed) >= len(data) {
		binary.LittleEndian.PutUint32(out[4:], 0)
		return append(out, data...), nil
	}
	binary.LittleEndian.PutUint32(out[4:], uint32(len(packed))) //nolint:gosec // len(packed) < len(data) <= MaxUint32
	return append(out, packed...), nil
}

// decompressBlock expands block, which must decode to exactly want bytes.
func decompressBlock(block []byte, c Compression, want uint64) ([]byte, error) {
	if c == CompressionNone {
		return block, nil
	}
	if len(block) < blockHeaderSize {
		return nil, fmt.Errorf("%w: block too small", ErrCorrupt)
	}
	rawSize := uint64(binary.LittleEndian.Uint32(block[0:]))
	packedSize := uint64(binary.LittleEndian.Uint32(block[4:]))
	body := block[blockHeaderSize:]

	if rawSize != want {
		return nil, fmt.Errorf("%w: block holds %d bytes, want %d", ErrCorrupt, rawSize, want)
	}
	if packedSize == 0 {
		if uint64(len(body)) != rawSize {
			return nil, fmt.Errorf("%w: stored block size %d, want %d", ErrCorrupt, len(body), rawSize)
		}
		return body, nil
	}
	if uint64(len(body)) != packedSize {
		return nil, fmt.Errorf("%w: compressed block size %d, want %d", ErrCorrupt, len(body), packedSize)
	}

	switch c {
	case CompressionLZ4:
		if rawSize > packedSize*maxLZ4Ratio {
			return nil, fmt.Errorf("%w: lz4 block of %d bytes cannot expand to %d", ErrCorrupt, packedSize, rawSize)
		}
		out := make([]byte, rawSize)
		n, err := lz4.UncompressBlock(body, out)
		if err != nil {
			return nil, fmt.Errorf("%w: lz4: %v", ErrCorrupt, err)
		}
		if uint64(n) != rawSize {
			return nil, fmt.Errorf("%w: lz4 produced %d bytes, want %d", ErrCorrupt, n, rawSize)
		}
		return out, nil
	case CompressionZSTD:
		// Streamed so the frame's declared content size never drives an allocation.
		dec := getZstdDecoder()
		defer zstdDecoderPool.Put(dec)
		if err := dec.Reset(bytes.NewReader(body)); err != nil {
			return nil, fmt.Errorf("%w: zstd: %v", ErrCorrupt, err)
		}
		out, err := io.ReadAll(io.LimitReader(dec, int64(rawSize)+1)) //nolint:gosec // rawSize is a uint32
		if err != nil {
			return nil, fmt.Errorf("%w: zstd: %v", ErrCorrupt, err)
		}
		if uint64(len(out)) != rawSize {
			return nil, fmt.Errorf("%w: zstd produced %d bytes, want %d", ErrCorrupt, len(out), rawSize)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: unknown compression %d", ErrCorrupt, c)
	}
}
