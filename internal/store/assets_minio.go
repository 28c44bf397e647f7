package store

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/Harshitk-cp/guestchat/internal/domain"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinIOOptions struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Prefix    string
	UseSSL    bool
}

// MinIOAssetStore reads tenant assets from an S3-compatible bucket.
type MinIOAssetStore struct {
	client *minio.Client
	bucket string
	prefix string
}

func NewMinIOAssetStore(ctx context.Context, opts MinIOOptions) (*MinIOAssetStore, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", opts.Bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", opts.Bucket)
	}

	return &MinIOAssetStore{client: client, bucket: opts.Bucket, prefix: opts.Prefix}, nil
}

func (s *MinIOAssetStore) Read(ctx context.Context, assetPath, name string) (string, error) {
	key, err := objectKey(s.prefix, assetPath, name)
	if err != nil {
		return "", err
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrAssetUnavailable, key, err)
	}
	defer func() { _ = obj.Close() }()

	// A missing object surfaces here as a NoSuchKey response.
	data, err := io.ReadAll(obj)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrAssetUnavailable, key, err)
	}
	return string(data), nil
}

// objectKey confines assetPath/name beneath prefix. The result never starts
// with a slash; S3 keys are relative to the bucket.
func objectKey(prefix, assetPath, name string) (string, error) {
	rel := path.Join(assetPath, name)
	if !fs.ValidPath(rel) {
		return "", fmt.Errorf("%w: invalid asset path %q", domain.ErrAssetUnavailable, rel)
	}
	return strings.TrimPrefix(path.Join(prefix, rel), "/"), nil
}
