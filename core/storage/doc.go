// Package storage provides the object storage client used as an export destination.
//
// It wraps the MinIO Go client behind a small interface, which supports both AWS S3
// and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the storage provider so that sinks and the
// integrity checks can be tested against core/storage/mocks.
//
// # Operations
//
//   - BucketExists / MakeBucket: Verify or create the export bucket (see EnsureBucket).
//   - PutObject: Uploads an exported profile.
//   - GetObject: Retrieves a stored profile as a stream.
//   - ListObjects: Lists exports below a prefix.
//   - RemoveObject: Deletes an object.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
