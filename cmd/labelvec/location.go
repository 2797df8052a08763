package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hupe1980/labelvec/blobstore"
	"github.com/hupe1980/labelvec/blobstore/minio"
	"github.com/hupe1980/labelvec/blobstore/s3"
	"github.com/hupe1980/labelvec/fileio"
	"github.com/hupe1980/labelvec/sqlite"
)

// endpoint is a place labels can be read from and written to.
type endpoint interface {
	fileio.Reader
	fileio.Writer
}

// location is an opened endpoint plus whatever must be released afterwards.
type location struct {
	uri    string
	ep     endpoint
	close  func() error
	remove func(ctx context.Context) error
}

// Remove deletes the labels stored at the location.
func (l *location) Remove(ctx context.Context) error {
	return l.remove(ctx)
}

func (l *location) Close() error {
	if l.close == nil {
		return nil
	}
	return l.close()
}

// load reads the labels once and describes where they came from.
func (l *location) load(ctx context.Context) ([]float64, []string, error) {
	switch ep := l.ep.(type) {
	case interface {
		ReadVectorInfo(context.Context) ([]float64, fileio.Info, error)
	}:
		labels, info, err := ep.ReadVectorInfo(ctx)
		if err != nil {
			return nil, nil, err
		}
		lines := []string{
			fmt.Sprintf("format:      %s", info.Format),
			fmt.Sprintf("count:       %d", info.Count),
		}
		if info.Format == fileio.FormatBinary {
			lines = append(lines,
				fmt.Sprintf("compression: %s", info.Compression),
				fmt.Sprintf("id:          %s", info.ID),
				fmt.Sprintf("checksum:    %08x", info.Checksum),
				fmt.Sprintf("stored:      %d bytes", info.StoredBytes),
			)
		}
		return labels, lines, nil
	case *sqlite.Set:
		info, err := ep.Info(ctx)
		if err != nil {
			return nil, nil, err
		}
		labels, err := ep.ReadVector(ctx)
		if err != nil {
			return nil, nil, err
		}
		return labels, []string{
			"format:      sqlite",
			fmt.Sprintf("count:       %d", info.Count),
			fmt.Sprintf("id:          %s", info.ID),
			fmt.Sprintf("updated:     %s", info.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z")),
		}, nil
	default:
		labels, err := l.ep.ReadVector(ctx)
		return labels, nil, err
	}
}

// openLocation resolves uri. Options apply to file and blob encodings.
func openLocation(ctx context.Context, uri string, opts ...fileio.Option) (*location, error) {
	scheme, rest, ok := strings.Cut(uri, "://")
	if !ok {
		return fileLocation(uri, uri, opts), nil
	}

	switch scheme {
	case "file":
		return fileLocation(uri, rest, opts), nil

	case "s3":
		bucket, key, err := splitBucketKey(rest)
		if err != nil {
			return nil, err
		}
		store, err := s3.New(ctx, bucket)
		if err != nil {
			return nil, err
		}
		return blobLocation(uri, store, key, opts), nil

	case "minio":
		bucket, key, err := splitBucketKey(rest)
		if err != nil {
			return nil, err
		}
		store, err := newMinioStore(bucket)
		if err != nil {
			return nil, err
		}
		return blobLocation(uri, store, key, opts), nil

	case "sqlite":
		path, set, ok := strings.Cut(rest, "#")
		if !ok || path == "" || set == "" {
			return nil, fmt.Errorf("sqlite location %q must look like sqlite://file.db#set", uri)
		}
		db, err := sqlite.Open(ctx, path)
		if err != nil {
			return nil, err
		}
		return &location{
			uri:   uri,
			ep:    db.Set(set),
			close: db.Close,
			remove: func(ctx context.Context) error {
				return db.Delete(ctx, set)
			},
		}, nil

	default:
		return nil, fmt.Errorf("unsupported location scheme %q", scheme)
	}
}

func fileLocation(uri, path string, opts []fileio.Option) *location {
	store := blobstore.NewLocalStore(filepath.Dir(path))
	return &location{
		uri: uri,
		ep:  fileio.NewFile(path, opts...),
		remove: func(ctx context.Context) error {
			return store.Delete(ctx, filepath.Base(path))
		},
	}
}

func blobLocation(uri string, store blobstore.BlobStore, key string, opts []fileio.Option) *location {
	b := fileio.NewBlob(store, key, opts...)
	return &location{uri: uri, ep: b, remove: b.Delete}
}

func newMinioStore(bucket string) (*minio.Store, error) {
	return minio.New(minio.Config{
		Endpoint:  os.Getenv("LABELVEC_MINIO_ENDPOINT"),
		AccessKey: os.Getenv("LABELVEC_MINIO_ACCESS_KEY"),
		SecretKey: os.Getenv("LABELVEC_MINIO_SECRET_KEY"),
		Secure:    os.Getenv("LABELVEC_MINIO_SECURE") == "true",
	}, bucket, "")
}

// entry is one item found by listLocation.
type entry struct {
	name   string
	detail string
}

// listLocation lists what a container location holds: files in a directory,
// objects under a bucket prefix, or the label sets of a SQLite database.
func listLocation(ctx context.Context, uri string) ([]entry, error) {
	scheme, rest, ok := strings.Cut(uri, "://")
	if !ok {
		scheme, rest = "file", uri
	}

	switch scheme {
	case "file":
		return listBlobs(ctx, blobstore.NewLocalStore(rest), "")

	case "s3", "minio":
		bucket, prefix, _ := strings.Cut(rest, "/")
		if bucket == "" {
			return nil, errors.New("object location must name a bucket")
		}
		var store blobstore.BlobStore
		var err error
		if scheme == "s3" {
			store, err = s3.New(ctx, bucket)
		} else {
			store, err = newMinioStore(bucket)
		}
		if err != nil {
			return nil, err
		}
		return listBlobs(ctx, store, prefix)

	case "sqlite":
		path, _, _ := strings.Cut(rest, "#")
		if path == "" {
			return nil, fmt.Errorf("sqlite location %q has no database path", uri)
		}
		db, err := sqlite.Open(ctx, path)
		if err != nil {
			return nil, err
		}
		defer db.Close()

		sets, err := db.List(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]entry, 0, len(sets))
		for _, s := range sets {
			out = append(out, entry{
				name:   s.Name,
				detail: fmt.Sprintf("%d labels, updated %s", s.Count, s.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z")),
			})
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unsupported location scheme %q", scheme)
	}
}

func listBlobs(ctx context.Context, store blobstore.BlobStore, prefix string) ([]entry, error) {
	names, err := store.List(ctx, prefix)
	if err != nil {
		return nil, err
	}
	out := make([]entry, 0, len(names))
	for _, n := range names {
		out = append(out, entry{name: n})
	}
	return out, nil
}

func splitBucketKey(s string) (bucket, key string, err error) {
	bucket, key, ok := strings.Cut(s, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", errors.New("object location must look like scheme://bucket/key")
	}
	return bucket, key, nil
}
