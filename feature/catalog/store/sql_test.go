package store_test

import (
	"context"
	"testing"

	"catalog-manager/feature/catalog/models"
	"catalog-manager/feature/catalog/store"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

// A new SKU must reach MySQL as an insert guarded by the unique constraint,
// so a concurrent run racing on the same code converges instead of erroring.
func TestUpsertSku_NewRowEmitsGuardedInsert(t *testing.T) {
	db, mock := setupMockDB(t)
	s := store.NewGormStore(db)

	skuColumns := []string{"id", "code", "product_id", "price"}

	mock.ExpectQuery("SELECT \\* FROM `product_skus` WHERE code = \\? AND product_id = \\?").
		WillReturnRows(sqlmock.NewRows(skuColumns))
	mock.ExpectExec("INSERT INTO `product_skus` .*ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectQuery("SELECT \\* FROM `product_skus` WHERE code = \\? AND product_id = \\?").
		WillReturnRows(sqlmock.NewRows(skuColumns).AddRow(5, "DRESS_RED_M", 3, 110.0))

	sku := models.ProductSku{Code: "DRESS_RED_M", ProductID: 3, Price: 110}
	created, err := s.UpsertSku(context.Background(), &sku)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, uint(5), sku.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// An existing SKU takes the update path keyed on the natural key.
func TestUpsertSku_ExistingRowEmitsKeyedUpdate(t *testing.T) {
	db, mock := setupMockDB(t)
	s := store.NewGormStore(db)

	skuColumns := []string{"id", "code", "product_id", "price"}

	mock.ExpectQuery("SELECT \\* FROM `product_skus` WHERE code = \\? AND product_id = \\?").
		WillReturnRows(sqlmock.NewRows(skuColumns).AddRow(5, "DRESS_RED_M", 3, 100.0))
	mock.ExpectExec("UPDATE `product_skus` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT \\* FROM `product_skus` WHERE code = \\? AND product_id = \\?").
		WillReturnRows(sqlmock.NewRows(skuColumns).AddRow(5, "DRESS_RED_M", 3, 110.0))

	sku := models.ProductSku{Code: "DRESS_RED_M", ProductID: 3, Price: 110}
	created, err := s.UpsertSku(context.Background(), &sku)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 110.0, sku.Price)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// A pure association has nothing to update; when it already exists the
// upsert must not touch the database beyond the lookup.
func TestUpsertSkuVariant_ExistingLinkIsReadOnly(t *testing.T) {
	db, mock := setupMockDB(t)
	s := store.NewGormStore(db)

	mock.ExpectQuery("SELECT \\* FROM `product_sku_property_variants`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_sku_id", "property_variant_id"}).
			AddRow(9, 5, 2))

	link := models.ProductSkuPropertyVariant{ProductSkuID: 5, PropertyVariantID: 2}
	created, err := s.UpsertSkuVariant(context.Background(), &link)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, uint(9), link.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}
