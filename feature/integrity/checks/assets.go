package checks

import (
	"context"
	"fmt"

	"catalog-manager/core/storage"
	"catalog-manager/feature/catalog/models"

	"github.com/minio/minio-go/v7"
	"gorm.io/gorm"
)

// AssetReport lists multimedia records whose object is gone from the bucket.
type AssetReport struct {
	Checked  int      `json:"checked"`
	Orphaned []string `json:"orphaned"`
}

// CheckAssets stats every multimedia record's object key in the bucket. A
// record whose key has no object behind it is orphaned: the catalog
// references an image nobody can serve. Keys are checked individually, so
// records pointing outside the usual content prefix are covered too.
func CheckAssets(ctx context.Context, client storage.Client, bucket string, db *gorm.DB) (*AssetReport, error) {
	var records []models.Multimedia
	if err := db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load multimedia records: %w", err)
	}

	report := &AssetReport{Checked: len(records), Orphaned: []string{}}
	for _, record := range records {
		_, err := client.StatObject(ctx, bucket, record.Path, minio.StatObjectOptions{})
		if err == nil {
			continue
		}
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			report.Orphaned = append(report.Orphaned, record.Path)
			continue
		}
		return nil, fmt.Errorf("failed to stat object %s: %w", record.Path, err)
	}

	return report, nil
}
