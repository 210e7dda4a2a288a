package upload

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"path/filepath"

	"catalog-manager/core/storage"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Service handles upload operations.
type Service struct {
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
}

// NewService creates a new upload service storing under prefix in the bucket.
func NewService(client storage.Client, bucket, prefix string, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: logger,
	}
}

// Upload stores the given bytes under a fresh object key derived from the
// original filename's extension and returns the key.
func (s *Service) Upload(ctx context.Context, filename string, size int64, r io.Reader) (string, error) {
	ext := filepath.Ext(filename)
	key := path.Join(s.prefix, "uploads", uuid.NewString()+ext)

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to store upload %s: %w", filename, err)
	}

	s.logger.Info("Stored upload",
		zap.String("filename", filename),
		zap.String("key", key),
		zap.Int64("size", size),
	)
	return key, nil
}
