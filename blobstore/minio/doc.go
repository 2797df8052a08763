// Package minio stores label files in MinIO or any S3-compatible service
// (Ceph, Garage, SeaweedFS) through the MinIO client.
//
//	store, err := minio.New(minio.Config{
//	    Endpoint:  "localhost:9000",
//	    AccessKey: "minioadmin",
//	    SecretKey: "minioadmin",
//	}, "datasets", "labels/")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	labels, err := labelvec.NewFromReader(ctx, fileio.NewBlob(store, "train.lbl"))
package minio
