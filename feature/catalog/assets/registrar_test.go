package assets_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"catalog-manager/core/database"
	"catalog-manager/core/storage/mocks"
	"catalog-manager/feature/catalog/assets"
	"catalog-manager/feature/catalog/models"
	"catalog-manager/feature/catalog/store"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testStore(t *testing.T) store.Store {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))
	return store.NewGormStore(db)
}

func TestRegister(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(path, []byte("png-bytes"), 0o644))

	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "catalog", mock.MatchedBy(func(key string) bool {
		return filepath.Ext(key) == ".png"
	}), mock.Anything, int64(9), mock.Anything).
		Return(minio.UploadInfo{}, nil)

	r := assets.NewMinioRegistrar(client, testStore(t), "catalog", "content", zap.NewNop())

	id, err := r.Register(context.Background(), path, 7)
	require.NoError(t, err)
	assert.NotZero(t, id)
	client.AssertExpectations(t)
}

func TestRegister_StorageFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(path, []byte("png-bytes"), 0o644))

	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("connection refused"))

	st := testStore(t)
	r := assets.NewMinioRegistrar(client, st, "catalog", "content", zap.NewNop())

	id, err := r.Register(context.Background(), path, 7)
	assert.Error(t, err)
	assert.Zero(t, id)

	// No record without a stored object
	counts, err := st.Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), counts["multimedia"])
}

func TestDryRunRegistrar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(path, []byte("png-bytes"), 0o644))

	r := &assets.DryRunRegistrar{}

	first, err := r.Register(context.Background(), path, 7)
	require.NoError(t, err)
	second, err := r.Register(context.Background(), path, 7)
	require.NoError(t, err)
	assert.NotZero(t, first)
	assert.NotEqual(t, first, second)

	// Broken references still fail, so the dry-run report counts them.
	_, err = r.Register(context.Background(), filepath.Join(t.TempDir(), "absent.png"), 7)
	assert.Error(t, err)
}

func TestRegister_MissingFile(t *testing.T) {
	client := new(mocks.Client)
	r := assets.NewMinioRegistrar(client, testStore(t), "catalog", "content", zap.NewNop())

	_, err := r.Register(context.Background(), filepath.Join(t.TempDir(), "absent.png"), 1)
	assert.Error(t, err)
	client.AssertNotCalled(t, "PutObject")
}
