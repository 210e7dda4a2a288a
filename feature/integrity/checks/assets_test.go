package checks_test

import (
	"context"
	"testing"

	"catalog-manager/core/database"
	"catalog-manager/core/storage/mocks"
	"catalog-manager/feature/catalog/models"
	"catalog-manager/feature/integrity/checks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))
	return db
}

func TestCheckAssets(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Create(&models.Multimedia{OwnerID: 1, Path: "content/1/logo.png"}).Error)
	require.NoError(t, db.Create(&models.Multimedia{OwnerID: 1, Path: "content/1/gone.png"}).Error)
	// A record pointing outside the content prefix still gets checked.
	require.NoError(t, db.Create(&models.Multimedia{OwnerID: 1, Path: "legacy/old.png"}).Error)

	mockClient := new(mocks.Client)
	mockClient.On("StatObject", mock.Anything, "catalog", "content/1/logo.png", mock.Anything).
		Return(minio.ObjectInfo{Key: "content/1/logo.png"}, nil)
	mockClient.On("StatObject", mock.Anything, "catalog", "content/1/gone.png", mock.Anything).
		Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey"})
	mockClient.On("StatObject", mock.Anything, "catalog", "legacy/old.png", mock.Anything).
		Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey"})

	report, err := checks.CheckAssets(context.Background(), mockClient, "catalog", db)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Checked)
	assert.Equal(t, []string{"content/1/gone.png", "legacy/old.png"}, report.Orphaned)
	mockClient.AssertExpectations(t)
}

func TestCheckAssets_Clean(t *testing.T) {
	db := setupDB(t)

	mockClient := new(mocks.Client)

	report, err := checks.CheckAssets(context.Background(), mockClient, "catalog", db)
	require.NoError(t, err)
	assert.Zero(t, report.Checked)
	assert.Empty(t, report.Orphaned)
	mockClient.AssertNotCalled(t, "StatObject")
}

func TestCheckAssets_TransientStorageError(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Create(&models.Multimedia{OwnerID: 1, Path: "content/1/logo.png"}).Error)

	mockClient := new(mocks.Client)
	mockClient.On("StatObject", mock.Anything, "catalog", "content/1/logo.png", mock.Anything).
		Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "SlowDown"})

	// Anything but a definite missing key must surface, not count as orphaned.
	_, err := checks.CheckAssets(context.Background(), mockClient, "catalog", db)
	assert.ErrorContains(t, err, "failed to stat object")
}

func TestCheckSchema(t *testing.T) {
	db := setupDB(t)

	missing, err := checks.CheckSchema(context.Background(), db)
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestCheckSchema_EmptyDatabase(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	missing, err := checks.CheckSchema(context.Background(), db)
	require.NoError(t, err)
	assert.Contains(t, missing, "owners")
	assert.Contains(t, missing, "product_skus")
	assert.Len(t, missing, 8)
}
