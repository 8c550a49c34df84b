// Package storage wraps the MinIO client for the object storage used by reconciliation
// runs: input workbooks and crawl files are read from a bucket and report artifacts are
// published back under a per-run prefix.
//
// # Client Interface
//
// Client is the subset of the MinIO API the application calls. It is an interface so
// tests can substitute core/storage/mocks.Client.
//
// # Helpers
//
//   - EnsureBucket: creates the bucket when it does not exist yet.
//   - Upload: stores an in-memory payload with a content type.
//   - ListKeys: lists object keys under a prefix, recursively.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket); err != nil {
//	    return err
//	}
//	err = storage.Upload(ctx, client, cfg.Storage.Bucket, "runs/<id>/0_UPDATE_ORDER.md", data, "text/markdown")
package storage
