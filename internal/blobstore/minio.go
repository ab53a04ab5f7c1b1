package blobstore

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Compile-time check that MinIO implements Store.
var _ Store = (*MinIO)(nil)

// MinIO implements Store against any S3-compatible object store.
type MinIO struct {
	client     *minio.Client
	bucket     string
	publicBase string
}

// NewMinIO connects to the given S3-compatible endpoint and ensures the
// bucket exists. publicBase is the externally reachable URL prefix under
// which objects are served (public URLs are <publicBase>/<bucket>/<key>).
func NewMinIO(ctx context.Context, endpoint, accessKey, secretKey, bucket, publicBase string, useSSL bool) (*MinIO, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("checking bucket %s: %w", bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("creating bucket %s: %w", bucket, err)
		}
	}

	return &MinIO{
		client:     client,
		bucket:     bucket,
		publicBase: strings.TrimRight(publicBase, "/"),
	}, nil
}

// Put uploads data under key with a long-lived public cache directive and
// returns the object's public URL.
func (s *MinIO) Put(ctx context.Context, key string, data io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, data, size, minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=31536000",
	})
	if err != nil {
		return "", fmt.Errorf("uploading %s: %w", key, err)
	}
	return s.publicURL(key), nil
}

// List returns all objects under prefix with their creation times.
func (s *MinIO) List(ctx context.Context, prefix string) ([]Object, error) {
	var objects []Object
	for info := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if info.Err != nil {
			return nil, fmt.Errorf("listing objects under %q: %w", prefix, info.Err)
		}
		objects = append(objects, Object{
			Key:       info.Key,
			URL:       s.publicURL(info.Key),
			CreatedAt: info.LastModified,
		})
	}
	return objects, nil
}

func (s *MinIO) publicURL(key string) string {
	return s.publicBase + "/" + s.bucket + "/" + key
}
