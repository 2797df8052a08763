// Package s3 stores label files in Amazon S3.
//
//	store, err := s3.New(ctx, "datasets",
//	    s3.WithPrefix("labels/"),
//	    s3.WithRegion("eu-central-1"),
//	)
//
// Reads use ranged GetObject requests. Streaming writes go through the
// multipart upload manager, so large label files never sit fully in memory.
package s3
