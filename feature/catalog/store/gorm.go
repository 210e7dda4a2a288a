package store

import (
	"context"
	"errors"
	"fmt"

	"catalog-manager/feature/catalog/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore implements Store on a GORM connection. Upserts read the row by
// its natural key first, then insert or update accordingly; the insert stays
// guarded by the natural-key unique constraint so concurrent runs racing on
// the same key converge on the constraint instead of duplicating rows.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a store over an open database connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// upsertRow reconciles one row by natural key. keyColumns name the columns
// of the unique constraint; assign holds the mutable columns to overwrite
// when the row already exists (empty means existence is all that matters).
// The existence check decides the created flag; the conflict clause on the
// insert only absorbs races, since the affected-row count MySQL and SQLite
// report for a conflicting insert differs and cannot carry that meaning.
func upsertRow[T any](ctx context.Context, db *gorm.DB, row *T, keyColumns []string, assign map[string]any, byKey func(*gorm.DB) *gorm.DB) (bool, error) {
	var existing T
	err := byKey(db.WithContext(ctx)).First(&existing).Error
	created := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !created {
		return false, fmt.Errorf("lookup by natural key: %w", err)
	}

	switch {
	case created:
		columns := make([]clause.Column, 0, len(keyColumns))
		for _, name := range keyColumns {
			columns = append(columns, clause.Column{Name: name})
		}
		onConflict := clause.OnConflict{Columns: columns}
		if len(assign) == 0 {
			onConflict.DoNothing = true
		} else {
			onConflict.DoUpdates = clause.Assignments(assign)
		}
		if err := db.WithContext(ctx).Clauses(onConflict).Create(row).Error; err != nil {
			return false, fmt.Errorf("guarded insert: %w", err)
		}
	case len(assign) > 0:
		if err := byKey(db.WithContext(ctx)).Model(new(T)).Updates(assign).Error; err != nil {
			return false, fmt.Errorf("update by natural key: %w", err)
		}
	default:
		*row = existing
		return false, nil
	}

	var fresh T
	if err := byKey(db.WithContext(ctx)).First(&fresh).Error; err != nil {
		return false, fmt.Errorf("reload after upsert: %w", err)
	}
	*row = fresh

	return created, nil
}

func (s *GormStore) UpsertOwner(ctx context.Context, row *models.Owner) (bool, error) {
	assign := map[string]any{
		"company_name": row.CompanyName,
		"company_data": row.CompanyData,
	}
	if row.LogoID != nil {
		assign["logo_id"] = *row.LogoID
	}
	if row.StartScreenID != nil {
		assign["start_screen_id"] = *row.StartScreenID
	}

	email := row.Email
	return upsertRow(ctx, s.db, row, []string{"email"}, assign, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("email = ?", email)
	})
}

func (s *GormStore) UpsertProperty(ctx context.Context, row *models.Property) (bool, error) {
	name, ownerID, productID := row.Name, row.OwnerID, row.ProductID
	// Nothing is mutable on a property itself; the conflict is ignored.
	return upsertRow(ctx, s.db, row, []string{"name", "owner_id", "product_id"}, nil, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("name = ? AND owner_id = ? AND product_id = ?", name, ownerID, productID)
	})
}

func (s *GormStore) UpsertVariant(ctx context.Context, row *models.PropertyVariant, withAdjustment bool) (bool, error) {
	assign := map[string]any{}
	if withAdjustment {
		assign["price_adjustment"] = row.PriceAdjustment
	}
	if row.ImageID != nil {
		assign["image_id"] = *row.ImageID
	}

	name, propertyID := row.Name, row.PropertyID
	return upsertRow(ctx, s.db, row, []string{"name", "property_id"}, assign, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("name = ? AND property_id = ?", name, propertyID)
	})
}

func (s *GormStore) UpsertProduct(ctx context.Context, row *models.Product) (bool, error) {
	assign := map[string]any{
		"base_price":   row.BasePrice,
		"suitable_for": row.SuitableFor,
		"style":        row.Style,
	}
	if row.MainImageID != nil {
		assign["main_image_id"] = *row.MainImageID
	}

	name, ownerID := row.Name, row.OwnerID
	return upsertRow(ctx, s.db, row, []string{"name", "owner_id"}, assign, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("name = ? AND owner_id = ?", name, ownerID)
	})
}

func (s *GormStore) UpsertSku(ctx context.Context, row *models.ProductSku) (bool, error) {
	assign := map[string]any{
		"price": row.Price,
	}
	if row.ImageID != nil {
		assign["image_id"] = *row.ImageID
	}

	code, productID := row.Code, row.ProductID
	return upsertRow(ctx, s.db, row, []string{"code", "product_id"}, assign, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("code = ? AND product_id = ?", code, productID)
	})
}

func (s *GormStore) UpsertProductProperty(ctx context.Context, row *models.ProductProperty) (bool, error) {
	assign := map[string]any{}
	if row.HotspotX != nil {
		assign["hotspot_x"] = *row.HotspotX
	}
	if row.HotspotY != nil {
		assign["hotspot_y"] = *row.HotspotY
	}

	productID, propertyID := row.ProductID, row.PropertyID
	return upsertRow(ctx, s.db, row, []string{"product_id", "property_id"}, assign, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("product_id = ? AND property_id = ?", productID, propertyID)
	})
}

func (s *GormStore) UpsertSkuVariant(ctx context.Context, row *models.ProductSkuPropertyVariant) (bool, error) {
	skuID, variantID := row.ProductSkuID, row.PropertyVariantID
	return upsertRow(ctx, s.db, row, []string{"product_sku_id", "property_variant_id"}, nil, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("product_sku_id = ? AND property_variant_id = ?", skuID, variantID)
	})
}

func (s *GormStore) CreateMultimedia(ctx context.Context, row *models.Multimedia) error {
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to create multimedia record: %w", err)
	}
	return nil
}

func (s *GormStore) GlobalProperties(ctx context.Context, ownerID uint) ([]models.Property, error) {
	var properties []models.Property
	err := s.db.WithContext(ctx).
		Preload("Variants").
		Where("owner_id = ? AND product_id = 0", ownerID).
		Order("name").
		Find(&properties).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load global properties: %w", err)
	}
	return properties, nil
}

func (s *GormStore) VariantsOf(ctx context.Context, propertyID uint) ([]models.PropertyVariant, error) {
	var variants []models.PropertyVariant
	err := s.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("name").
		Find(&variants).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load variants: %w", err)
	}
	return variants, nil
}

func (s *GormStore) Counts(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	tables := map[string]any{
		"owners":                        &models.Owner{},
		"properties":                    &models.Property{},
		"property_variants":             &models.PropertyVariant{},
		"products":                      &models.Product{},
		"product_skus":                  &models.ProductSku{},
		"product_properties":            &models.ProductProperty{},
		"product_sku_property_variants": &models.ProductSkuPropertyVariant{},
		"multimedia":                    &models.Multimedia{},
	}

	for table, model := range tables {
		var n int64
		if err := s.db.WithContext(ctx).Model(model).Count(&n).Error; err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", table, err)
		}
		counts[table] = n
	}

	return counts, nil
}
