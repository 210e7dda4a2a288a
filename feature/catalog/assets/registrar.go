package assets

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"catalog-manager/core/storage"
	"catalog-manager/feature/catalog/models"
	"catalog-manager/feature/catalog/store"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Registrar turns a local asset file into a persisted multimedia identity.
// Registration is a self-contained unit: either the object is stored and a
// record created, or an error is returned and no half-written reference
// leaks into the catalog.
type Registrar interface {
	Register(ctx context.Context, path string, ownerID uint) (uint, error)
}

// DryRunRegistrar satisfies Registrar without touching the bucket or the
// multimedia table. It still verifies the file is readable, so a dry run
// surfaces broken asset references in its report, and hands out synthetic
// identities to keep the entity flow intact.
type DryRunRegistrar struct {
	next uint
}

// Register checks the asset file and returns a synthetic identity.
func (r *DryRunRegistrar) Register(_ context.Context, path string, _ uint) (uint, error) {
	if _, err := os.Stat(path); err != nil {
		return 0, fmt.Errorf("failed to stat asset %s: %w", path, err)
	}
	r.next++
	return r.next, nil
}

// MinioRegistrar stores asset bytes in the bucket and records them in the
// multimedia table.
type MinioRegistrar struct {
	client storage.Client
	st     store.Store
	bucket string
	prefix string
	log    *zap.Logger
}

// NewMinioRegistrar creates a registrar writing under prefix in the bucket.
func NewMinioRegistrar(client storage.Client, st store.Store, bucket, prefix string, log *zap.Logger) *MinioRegistrar {
	return &MinioRegistrar{
		client: client,
		st:     st,
		bucket: bucket,
		prefix: prefix,
		log:    log,
	}
}

// Register uploads the file at path and creates its multimedia record,
// returning the record's identity.
func (r *MinioRegistrar) Register(ctx context.Context, path string, ownerID uint) (uint, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open asset %s: %w", path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return 0, fmt.Errorf("failed to stat asset %s: %w", path, err)
	}

	ext := filepath.Ext(path)
	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectKey := fmt.Sprintf("%s/%d/%s%s", r.prefix, ownerID, uuid.NewString(), ext)

	_, err = r.client.PutObject(ctx, r.bucket, objectKey, file, info.Size(), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to store asset %s: %w", path, err)
	}

	media := models.Multimedia{
		OwnerID:     ownerID,
		Path:        objectKey,
		ContentType: contentType,
	}
	if err := r.st.CreateMultimedia(ctx, &media); err != nil {
		// The object is orphaned in the bucket; the integrity feature
		// reports such leftovers.
		return 0, err
	}

	r.log.Debug("Registered asset",
		zap.String("path", path),
		zap.String("object", objectKey),
		zap.Uint("owner", ownerID),
	)

	return media.ID, nil
}
