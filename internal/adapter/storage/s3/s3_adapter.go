package s3

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/muthomi-ke/land-platform/internal/platform/logger"
)

// MediaStore uploads plot media to a MinIO bucket and hands back durable
// public URLs. Nothing here ever deletes or rewrites an object.
type MediaStore struct {
	client *minio.Client
	bucket string
	logger *logger.Logger
}

func NewMediaStore(endpoint, accessKey, secretKey, bucketName string, useSSL bool, log *logger.Logger) (*MediaStore, error) {
	log.Info("Initializing media store", "endpoint", endpoint, "bucket", bucketName, "use_ssl", useSSL)

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client for endpoint %s: %w", endpoint, err)
	}

	err = client.MakeBucket(context.Background(), bucketName, minio.MakeBucketOptions{})
	if err != nil {
		exists, errBucketExists := client.BucketExists(context.Background(), bucketName)
		if errBucketExists == nil && exists {
			log.Info("MediaStore: bucket already exists", "bucket", bucketName)
		} else {
			return nil, fmt.Errorf("failed to make/verify bucket %s: (make: %v / exists_check: %v)", bucketName, err, errBucketExists)
		}
	}

	return &MediaStore{client: client, bucket: bucketName, logger: log}, nil
}

// Upload stores the blob under a collision-resistant generated name,
// timestamp plus random suffix keeping the original extension, and returns
// the public URL.
func (s *MediaStore) Upload(ctx context.Context, originalFileName string, data []byte) (string, error) {
	ext := filepath.Ext(originalFileName)
	suffix := strings.Split(uuid.New().String(), "-")[0]
	objectKey := fmt.Sprintf("plots-media/%d-%s%s", time.Now().UnixMilli(), suffix, ext)

	s.logger.Info("MediaStore.Upload: uploading file",
		"bucket", s.bucket,
		"object_key", objectKey,
		"original_filename", originalFileName,
		"size_bytes", len(data))

	_, err := s.client.PutObject(ctx, s.bucket, objectKey, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{})
	if err != nil {
		s.logger.Error("MediaStore.Upload: PutObject failed", "bucket", s.bucket, "key", objectKey, "error", err)
		return "", fmt.Errorf("failed to upload object %s to bucket %s: %w", objectKey, s.bucket, err)
	}

	fileURL := fmt.Sprintf("%s/%s/%s", s.client.EndpointURL().String(), s.bucket, objectKey)
	return fileURL, nil
}
