package catalog

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Source yields a catalog CSV stream. Implementations exist for local files
// and MinIO objects; the importer does not care which.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
}

// FileSource reads a catalog CSV from the local filesystem.
type FileSource struct {
	Path string
}

func (s FileSource) Open(_ context.Context) (io.ReadCloser, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", s.Path, err)
	}
	return f, nil
}

// ObjectSource reads a catalog CSV from a MinIO bucket.
type ObjectSource struct {
	client *minio.Client
	bucket string
	object string
}

// NewObjectSource connects to the configured MinIO endpoint and targets
// one object in the configured bucket.
func NewObjectSource(cfg Config, object string) (*ObjectSource, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("catalog: minio client: %w", err)
	}

	return &ObjectSource{client: client, bucket: cfg.Bucket, object: object}, nil
}

func (s *ObjectSource) Open(ctx context.Context) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("catalog: get object %s/%s: %w", s.bucket, s.object, err)
	}
	return obj, nil
}
