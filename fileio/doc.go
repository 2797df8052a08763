// Package fileio moves label vectors in and out of storage.
//
// The core label store only sees two narrow interfaces, Reader and Writer.
// This package provides the adapters behind them:
//
//   - File: a local path, memory-mapped on load and atomically replaced on save
//   - Blob: a name in a blobstore.BlobStore (local, memory, S3, MinIO)
//   - Memory: an in-process slice, handy for tests and pipelines
//
// Three on-disk formats are supported. The binary format is a 64-byte header
// followed by little-endian float64 values, optionally block compressed with
// LZ4 or ZSTD and always covered by a CRC32 checksum. The text format holds
// one value per line. The JSON format is {"count": n, "labels": [...]}.
//
// Decoding sniffs the format when none is configured, so tools can read any
// label file without knowing how it was written.
package fileio
