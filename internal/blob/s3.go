package blob

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"property-engine/internal/config"
)

// S3FS implements the Storage interface for Amazon S3
type S3FS struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3FS creates a new S3-backed image storage
func NewS3FS(cfg config.ImageConfig) (*S3FS, error) {
	if cfg.S3Bucket == "" {
		return nil, fmt.Errorf("bucket is required for S3 image storage")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(cfg.S3Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3FS{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.S3Bucket,
		prefix: cfg.S3Prefix,
	}, nil
}

// Put uploads an object
func (s3fs *S3FS) Put(ctx context.Context, path string, data io.Reader) error {
	_, err := s3fs.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s3fs.bucket),
		Key:    aws.String(s3fs.key(path)),
		Body:   data,
	})
	return err
}

// Reader returns a reader for the specified path
func (s3fs *S3FS) Reader(ctx context.Context, path string) (io.ReadCloser, error) {
	output, err := s3fs.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s3fs.bucket),
		Key:    aws.String(s3fs.key(path)),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return output.Body, nil
}

// Delete removes an object
func (s3fs *S3FS) Delete(ctx context.Context, path string) error {
	_, err := s3fs.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s3fs.bucket),
		Key:    aws.String(s3fs.key(path)),
	})
	return err
}

// Health verifies the bucket is reachable
func (s3fs *S3FS) Health(ctx context.Context) error {
	_, err := s3fs.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(s3fs.bucket),
	})
	return err
}

func (s3fs *S3FS) key(path string) string {
	path = strings.TrimPrefix(path, "/")
	if s3fs.prefix == "" {
		return path
	}
	return strings.TrimSuffix(s3fs.prefix, "/") + "/" + path
}

func isNotFound(err error) bool {
	return err != nil && (strings.Contains(err.Error(), "NoSuchKey") ||
		strings.Contains(err.Error(), "NotFound"))
}
