package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"profile-exporter/core/storage"

	"github.com/minio/minio-go/v7"
)

// Blob is a named document to persist.
type Blob struct {
	// Folder is a sub folder of the destination; empty for the destination root.
	Folder string
	// Name is the file name, extension included.
	Name string
	// Data is the file content.
	Data []byte

	// Identity and DisplayName describe the profile the blob was made from.
	Identity    string
	DisplayName string
}

// Path returns the slash separated location of the blob below the destination root.
func (b Blob) Path() string {
	return path.Join(b.Folder, b.Name)
}

// Sink persists blobs.
type Sink interface {
	Write(ctx context.Context, b Blob) error
}

// FileSink writes blobs below a local directory.
type FileSink struct {
	root string
}

// NewFileSink creates a FileSink rooted at dir.
func NewFileSink(dir string) *FileSink {
	return &FileSink{root: dir}
}

// Root returns the directory blobs are written to.
func (s *FileSink) Root() string {
	return s.root
}

func (s *FileSink) Write(ctx context.Context, b Blob) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := filepath.Join(s.root, filepath.FromSlash(b.Folder))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create folder %s: %w", dir, err)
	}
	target := filepath.Join(dir, b.Name)
	if err := os.WriteFile(target, b.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	return nil
}

// ObjectSink uploads blobs to an object storage bucket under a prefix.
type ObjectSink struct {
	client storage.Client
	bucket string
	prefix string
}

// NewObjectSink creates an ObjectSink.
func NewObjectSink(client storage.Client, bucket, prefix string) *ObjectSink {
	return &ObjectSink{client: client, bucket: bucket, prefix: prefix}
}

// ObjectName returns the object key b is stored under.
func (s *ObjectSink) ObjectName(b Blob) string {
	return path.Join(s.prefix, b.Folder, b.Name)
}

func (s *ObjectSink) Write(ctx context.Context, b Blob) error {
	name := s.ObjectName(b)
	_, err := s.client.PutObject(ctx, s.bucket, name, bytes.NewReader(b.Data), int64(len(b.Data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to bucket %s: %w", name, s.bucket, err)
	}
	return nil
}

// MultiSink writes every blob to all of its sinks. All sinks are attempted;
// the errors are joined.
type MultiSink []Sink

func (m MultiSink) Write(ctx context.Context, b Blob) error {
	var errs []error
	for _, s := range m {
		if err := s.Write(ctx, b); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewSink builds the sink selected by cfg.Destination.
// The storage client is only required for the storage destinations.
func NewSink(cfg Config, client storage.Client, bucket string) (Sink, error) {
	switch cfg.Destination {
	case DestinationFile, "":
		return NewFileSink(cfg.FilesPath), nil
	case DestinationStorage:
		if client == nil {
			return nil, fmt.Errorf("destination %q requires a storage client", cfg.Destination)
		}
		return NewObjectSink(client, bucket, cfg.StoragePrefix), nil
	case DestinationBoth:
		if client == nil {
			return nil, fmt.Errorf("destination %q requires a storage client", cfg.Destination)
		}
		return MultiSink{NewFileSink(cfg.FilesPath), NewObjectSink(client, bucket, cfg.StoragePrefix)}, nil
	default:
		return nil, fmt.Errorf("unknown export destination: %s", cfg.Destination)
	}
}
