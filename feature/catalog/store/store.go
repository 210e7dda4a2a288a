package store

import (
	"context"

	"catalog-manager/feature/catalog/models"
)

// Store is the persistence boundary of the reconciliation engine.
//
// Every Upsert method is an idempotent create-or-update keyed by the
// entity's natural key: if no matching entity exists it is created from the
// given row; otherwise only the mutable attributes are overwritten and the
// natural key and immutable fields stay untouched. On return the row carries
// the persisted identity and attributes. The boolean reports whether a new
// entity was created. No method ever deletes.
type Store interface {
	// UpsertOwner reconciles by email. Mutable: company name, company data,
	// and the asset references when set on the row.
	UpsertOwner(ctx context.Context, row *models.Owner) (bool, error)

	// UpsertProperty reconciles by (name, owner, product scope). Properties
	// are never renamed once created; only the surrounding associations move.
	UpsertProperty(ctx context.Context, row *models.Property) (bool, error)

	// UpsertVariant reconciles by (name, property). The image reference is
	// overwritten when set on the row; the price adjustment only when
	// withAdjustment is true, so variants discovered from asset files alone
	// keep their previously persisted adjustment.
	UpsertVariant(ctx context.Context, row *models.PropertyVariant, withAdjustment bool) (bool, error)

	// UpsertProduct reconciles by (name, owner). Mutable: base price and
	// classification tags (always, last-write-wins), and the main image
	// reference when set on the row.
	UpsertProduct(ctx context.Context, row *models.Product) (bool, error)

	// UpsertSku reconciles by (code, product). Mutable: price (always), and
	// the image reference when set on the row.
	UpsertSku(ctx context.Context, row *models.ProductSku) (bool, error)

	// UpsertProductProperty reconciles by (product, property). Mutable:
	// hotspot coordinates when supplied.
	UpsertProductProperty(ctx context.Context, row *models.ProductProperty) (bool, error)

	// UpsertSkuVariant reconciles by (sku, variant). Pure association; never
	// updated beyond existence.
	UpsertSkuVariant(ctx context.Context, row *models.ProductSkuPropertyVariant) (bool, error)

	// CreateMultimedia records a registered asset and fills in its identity.
	CreateMultimedia(ctx context.Context, row *models.Multimedia) error

	// GlobalProperties returns the owner-global properties with variants
	// preloaded, for seeding the variant index.
	GlobalProperties(ctx context.Context, ownerID uint) ([]models.Property, error)

	// VariantsOf returns the current persisted variants of one property.
	VariantsOf(ctx context.Context, propertyID uint) ([]models.PropertyVariant, error)

	// Counts returns persisted row counts per entity table.
	Counts(ctx context.Context) (map[string]int64, error)
}
