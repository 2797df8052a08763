// Package blobstore abstracts where label files live.
//
// A BlobStore names immutable blobs. Label adapters read a blob through a
// ranged reader and write it through a streaming WritableBlob that only becomes
// visible once closed.
//
// # Built-in Implementations
//
//   - LocalStore: a directory on the local file system (mmap'd reads, atomic writes)
//   - MemoryStore: an in-process map, used by tests and dry runs
//   - s3.Store: Amazon S3
//   - minio.Store: MinIO and other S3-compatible services
package blobstore
