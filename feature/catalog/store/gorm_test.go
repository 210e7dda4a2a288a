package store_test

import (
	"context"
	"testing"

	"catalog-manager/core/database"
	"catalog-manager/feature/catalog/models"
	"catalog-manager/feature/catalog/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *store.GormStore {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))

	return store.NewGormStore(db)
}

func TestUpsertOwner_Idempotent(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	first := models.Owner{Email: "contact@lemanska.pl", CompanyName: "Lemanska"}
	created, err := s.UpsertOwner(ctx, &first)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotZero(t, first.ID)

	// Same natural key, changed mutable attribute
	second := models.Owner{Email: "contact@lemanska.pl", CompanyName: "Lemanska Couture"}
	created, err = s.UpsertOwner(ctx, &second)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Lemanska Couture", second.CompanyName)

	var n int64
	counts, err := s.Counts(ctx)
	require.NoError(t, err)
	n = counts["owners"]
	assert.Equal(t, int64(1), n)
}

func TestUpsertOwner_AssetRefsOnlyWhenSet(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	logo := uint(42)
	withLogo := models.Owner{Email: "a@b.c", LogoID: &logo}
	_, err := s.UpsertOwner(ctx, &withLogo)
	require.NoError(t, err)

	// A later pass whose logo registration failed passes a nil reference;
	// the previously persisted one must survive.
	withoutLogo := models.Owner{Email: "a@b.c", CompanyName: "B"}
	_, err = s.UpsertOwner(ctx, &withoutLogo)
	require.NoError(t, err)
	require.NotNil(t, withoutLogo.LogoID)
	assert.Equal(t, uint(42), *withoutLogo.LogoID)
	assert.Equal(t, "B", withoutLogo.CompanyName)
}

func TestUpsertProperty_ScopeUniqueness(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	global := models.Property{Name: "COLOR", OwnerID: 1}
	created, err := s.UpsertProperty(ctx, &global)
	require.NoError(t, err)
	assert.True(t, created)

	// Same name, product scope: a distinct property
	local := models.Property{Name: "COLOR", OwnerID: 1, ProductID: 7}
	created, err = s.UpsertProperty(ctx, &local)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, global.ID, local.ID)

	// Re-upserting the global scope finds the existing row
	again := models.Property{Name: "COLOR", OwnerID: 1}
	created, err = s.UpsertProperty(ctx, &again)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, global.ID, again.ID)
}

func TestUpsertVariant_AdjustmentGuard(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	prop := models.Property{Name: "COLOR", OwnerID: 1}
	_, err := s.UpsertProperty(ctx, &prop)
	require.NoError(t, err)

	v := models.PropertyVariant{Name: "RED", PropertyID: prop.ID, PriceAdjustment: 10}
	_, err = s.UpsertVariant(ctx, &v, true)
	require.NoError(t, err)
	assert.Equal(t, 10.0, v.PriceAdjustment)

	// Asset-only pass must not reset the adjustment
	assetOnly := models.PropertyVariant{Name: "RED", PropertyID: prop.ID}
	_, err = s.UpsertVariant(ctx, &assetOnly, false)
	require.NoError(t, err)
	assert.Equal(t, 10.0, assetOnly.PriceAdjustment)

	// Metadata pass overwrites it
	adjusted := models.PropertyVariant{Name: "RED", PropertyID: prop.ID, PriceAdjustment: 20}
	_, err = s.UpsertVariant(ctx, &adjusted, true)
	require.NoError(t, err)
	assert.Equal(t, 20.0, adjusted.PriceAdjustment)
}

func TestUpsertSkuVariant_PureAssociation(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	link := models.ProductSkuPropertyVariant{ProductSkuID: 1, PropertyVariantID: 2}
	created, err := s.UpsertSkuVariant(ctx, &link)
	require.NoError(t, err)
	assert.True(t, created)

	dup := models.ProductSkuPropertyVariant{ProductSkuID: 1, PropertyVariantID: 2}
	created, err = s.UpsertSkuVariant(ctx, &dup)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, link.ID, dup.ID)
}

func TestGlobalProperties_PreloadsVariants(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	prop := models.Property{Name: "SIZE", OwnerID: 9}
	_, err := s.UpsertProperty(ctx, &prop)
	require.NoError(t, err)
	for _, name := range []string{"S", "M", "L"} {
		v := models.PropertyVariant{Name: name, PropertyID: prop.ID}
		_, err = s.UpsertVariant(ctx, &v, false)
		require.NoError(t, err)
	}

	// Product-scoped property of the same owner must not appear
	local := models.Property{Name: "LINING", OwnerID: 9, ProductID: 3}
	_, err = s.UpsertProperty(ctx, &local)
	require.NoError(t, err)

	properties, err := s.GlobalProperties(ctx, 9)
	require.NoError(t, err)
	require.Len(t, properties, 1)
	assert.Equal(t, "SIZE", properties[0].Name)
	assert.Len(t, properties[0].Variants, 3)
}
