package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ObjectPutter is the subset of the MinIO client used for class images.
type ObjectPutter interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// ImageStore keeps class cover images in an object storage bucket.
type ImageStore struct {
	client  ObjectPutter
	bucket  string
	baseURL string
}

// MinioOptions configure the MinIO client behind an ImageStore.
type MinioOptions struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

// NewMinioImageStore connects to MinIO. It does not touch the bucket; call
// EnsureBucket at start-up.
func NewMinioImageStore(opts MinioOptions) (*ImageStore, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}
	scheme := "http"
	if opts.UseSSL {
		scheme = "https"
	}
	return NewImageStore(client, opts.Bucket, fmt.Sprintf("%s://%s", scheme, opts.Endpoint)), nil
}

// NewImageStore returns an ImageStore writing to bucket through client.
func NewImageStore(client ObjectPutter, bucket, baseURL string) *ImageStore {
	return &ImageStore{client: client, bucket: bucket, baseURL: strings.TrimRight(baseURL, "/")}
}

// EnsureBucket creates the image bucket if it is missing.
func (s *ImageStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket %s: %w", s.bucket, err)
	}
	return nil
}

// ObjectName is the key a class image is stored under.
func ObjectName(classID primitive.ObjectID, filename string) string {
	return fmt.Sprintf("%s_%s", classID.Hex(), path.Base(filename))
}

// UploadClassImage stores the image and returns its public URL.
func (s *ImageStore) UploadClassImage(ctx context.Context, classID primitive.ObjectID, filename, contentType string, r io.Reader, size int64) (string, error) {
	objectName := ObjectName(classID, filename)
	_, err := s.client.PutObject(ctx, s.bucket, objectName, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("upload class image: %w", err)
	}
	return fmt.Sprintf("%s/%s/%s", s.baseURL, s.bucket, objectName), nil
}
