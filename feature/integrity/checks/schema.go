package checks

import (
	"context"

	"catalog-manager/feature/catalog/models"

	"gorm.io/gorm"
)

// CheckSchema returns the catalog tables missing from the connected database.
func CheckSchema(ctx context.Context, db *gorm.DB) ([]string, error) {
	expected := []interface{}{
		&models.Owner{},
		&models.Property{},
		&models.PropertyVariant{},
		&models.Product{},
		&models.ProductSku{},
		&models.ProductProperty{},
		&models.ProductSkuPropertyVariant{},
		&models.Multimedia{},
	}

	migrator := db.WithContext(ctx).Migrator()

	var missing []string
	for _, model := range expected {
		if !migrator.HasTable(model) {
			stmt := &gorm.Statement{DB: db}
			if err := stmt.Parse(model); err != nil {
				return nil, err
			}
			missing = append(missing, stmt.Schema.Table)
		}
	}

	return missing, nil
}
