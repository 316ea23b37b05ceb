package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
)

// Bucket uploads standardized listing photos into one S3-compatible bucket
// and hands out publicly dereferenceable URLs.
type Bucket struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

// NewBucket returns new Bucket.
func NewBucket(client *minio.Client, bucket, publicBaseURL string) *Bucket {
	return &Bucket{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Upload stores body under path, overwriting any pre-existing object, and
// returns the public URL of the stored object.
func (b *Bucket) Upload(ctx context.Context, path string, body []byte, contentType string) (string, error) {
	_, err := b.client.PutObject(
		ctx,
		b.bucket,
		path,
		bytes.NewReader(body),
		int64(len(body)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return "", fmt.Errorf("can't put object %q: %w", path, err)
	}

	return fmt.Sprintf("%s/%s/%s", b.publicBaseURL, b.bucket, path), nil
}

// Ping verifies the bucket exists and is reachable. It is called once at
// startup; an unreachable bucket is a fatal configuration error.
func (b *Bucket) Ping(ctx context.Context) error {
	exists, err := b.client.BucketExists(ctx, b.bucket)
	if err != nil {
		return fmt.Errorf("can't check bucket %q: %w", b.bucket, err)
	}
	if !exists {
		return fmt.Errorf("bucket %q does not exist", b.bucket)
	}

	return nil
}
