// Command labelvec inspects, converts, fills, filters, lists and removes
// label files.
//
// Locations are plain paths or URIs:
//
//	train.lbl                   local file (format from the extension)
//	s3://bucket/key             Amazon S3 (standard AWS environment)
//	minio://bucket/key          MinIO (LABELVEC_MINIO_ENDPOINT, _ACCESS_KEY, _SECRET_KEY)
//	sqlite://labels.db#train    label set "train" in a SQLite database
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
