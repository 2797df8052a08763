package fileio

import (
	"errors"
	"fmt"
	"hash/crc32"
)

// ErrChecksumMismatch is wrapped by *ChecksumMismatchError.
var ErrChecksumMismatch = errors.New("fileio: checksum mismatch")

// ChecksumMismatchError reports a payload whose CRC32 does not match its header.
type ChecksumMismatchError struct {
	Expected uint32
	Actual   uint32
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("fileio: checksum mismatch: expected %08x, got %08x", e.Expected, e.Actual)
}

func (e *ChecksumMismatchError) Unwrap() error { return ErrChecksumMismatch }

func checksum(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}

func verifyChecksum(data []byte, expected uint32) error {
	if actual := checksum(data); actual != expected {
		return &ChecksumMismatchError{Expected: expected, Actual: actual}
	}
	return nil
}
