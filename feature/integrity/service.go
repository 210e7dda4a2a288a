package integrity

import (
	"context"

	"catalog-manager/core/storage"
	"catalog-manager/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client        storage.Client
	bucket        string
	contentPrefix string
	db            *gorm.DB
	logger        *zap.Logger
}

// NewService creates a new integrity service.
func NewService(client storage.Client, bucket, contentPrefix string, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		client:        client,
		bucket:        bucket,
		contentPrefix: contentPrefix,
		db:            db,
		logger:        logger,
	}
}

// CheckStructure returns the required bucket prefixes that are empty.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	return checks.CheckStructure(ctx, s.client, s.bucket, s.contentPrefix)
}

// FixStructure creates the missing prefixes.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}

// CheckAssets reports multimedia records whose bucket object is gone.
func (s *Service) CheckAssets(ctx context.Context) (*checks.AssetReport, error) {
	return checks.CheckAssets(ctx, s.client, s.bucket, s.db)
}

// CheckSchema reports catalog tables missing from the database.
func (s *Service) CheckSchema(ctx context.Context) ([]string, error) {
	return checks.CheckSchema(ctx, s.db)
}
