package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Owner is a seller/producer account. Every other catalog entity is
// transitively owned by exactly one Owner; nothing is shared across owners.
type Owner struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Email       string `gorm:"uniqueIndex;size:191;not null" json:"email"`
	CompanyName string `gorm:"size:191" json:"company_name"`
	// CompanyData carries the raw structured company metadata as JSON text.
	CompanyData   string    `gorm:"type:text" json:"company_data"`
	LogoID        *uint     `json:"logo_id"`
	StartScreenID *uint     `json:"start_screen_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Owner) TableName() string {
	return "owners"
}

// Property is a named customizable attribute, scoped either globally to an
// Owner (ProductID zero) or locally to a Product. The name is unique within
// its scope. Reconciliation never renames a property once created.
type Property struct {
	ID      uint   `gorm:"primarykey" json:"id"`
	Name    string `gorm:"size:191;not null;uniqueIndex:idx_property_scope" json:"name"`
	OwnerID uint   `gorm:"not null;uniqueIndex:idx_property_scope;index" json:"owner_id"`
	// ProductID is zero for owner-global properties. Zero instead of NULL so
	// the composite unique index enforces scope uniqueness on every backend.
	ProductID uint      `gorm:"not null;default:0;uniqueIndex:idx_property_scope" json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Variants []PropertyVariant `gorm:"foreignKey:PropertyID" json:"variants,omitempty"`
}

func (Property) TableName() string {
	return "properties"
}

// IsGlobal reports whether the property is scoped to the owner rather than
// to a single product.
func (p Property) IsGlobal() bool {
	return p.ProductID == 0
}

// PropertyVariant is one concrete option of a Property. PriceAdjustment is a
// signed offset applied when a SKU selects this variant; it and the image
// reference are overwritten on each reconciliation when new metadata is
// supplied.
type PropertyVariant struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	Name            string    `gorm:"size:191;not null;uniqueIndex:idx_variant_property" json:"name"`
	PropertyID      uint      `gorm:"not null;uniqueIndex:idx_variant_property;index" json:"property_id"`
	ImageID         *uint     `json:"image_id"`
	PriceAdjustment float64   `gorm:"not null;default:0" json:"price_adjustment"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (PropertyVariant) TableName() string {
	return "property_variants"
}

// Product is a sellable item owned by an Owner. Tags and base price follow
// the descriptor on every pass: absent metadata resets them to empty rather
// than leaving stale values behind.
type Product struct {
	ID          uint    `gorm:"primarykey" json:"id"`
	Name        string  `gorm:"size:191;not null;uniqueIndex:idx_product_owner" json:"name"`
	OwnerID     uint    `gorm:"not null;uniqueIndex:idx_product_owner;index" json:"owner_id"`
	BasePrice   float64 `gorm:"not null;default:0" json:"base_price"`
	MainImageID *uint   `json:"main_image_id"`
	// SuitableFor and Style are comma-joined multi-valued classification tags.
	SuitableFor string    `gorm:"size:191" json:"suitable_for"`
	Style       string    `gorm:"size:191" json:"style"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

// ProductSku is one fully-specified purchasable variant combination of a
// Product. Price and image are recomputed and overwritten on every pass.
type ProductSku struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Code      string    `gorm:"size:191;not null;uniqueIndex:idx_sku_product" json:"code"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_sku_product;index" json:"product_id"`
	Price     float64   `gorm:"not null;default:0" json:"price"`
	ImageID   *uint     `json:"image_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ProductSku) TableName() string {
	return "product_skus"
}

// ProductProperty links a Product to a Property it exposes for configuration
// and carries the optional UI hotspot coordinates (normalized, each in [0,1]).
type ProductProperty struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	ProductID  uint      `gorm:"not null;uniqueIndex:idx_product_property" json:"product_id"`
	PropertyID uint      `gorm:"not null;uniqueIndex:idx_product_property" json:"property_id"`
	HotspotX   *float64  `json:"hotspot_x"`
	HotspotY   *float64  `json:"hotspot_y"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (ProductProperty) TableName() string {
	return "product_properties"
}

// ProductSkuPropertyVariant links a ProductSku to each PropertyVariant it
// resolved to. Pure association; never updated beyond existence.
type ProductSkuPropertyVariant struct {
	ID                uint      `gorm:"primarykey" json:"id"`
	ProductSkuID      uint      `gorm:"not null;uniqueIndex:idx_sku_variant" json:"product_sku_id"`
	PropertyVariantID uint      `gorm:"not null;uniqueIndex:idx_sku_variant" json:"property_variant_id"`
	CreatedAt         time.Time `json:"created_at"`
}

func (ProductSkuPropertyVariant) TableName() string {
	return "product_sku_property_variants"
}

// Multimedia is an opaque asset record; the catalog only stores the returned
// identity and the object key under which the bytes live in the bucket.
type Multimedia struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	OwnerID     uint      `gorm:"not null;index" json:"owner_id"`
	Path        string    `gorm:"size:512;not null" json:"path"`
	ContentType string    `gorm:"size:191" json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Multimedia) TableName() string {
	return "multimedia"
}

// JoinTags serializes a multi-valued tag list for storage.
func JoinTags(tags []string) string {
	return strings.Join(tags, ",")
}

// SplitTags deserializes a stored tag list. An empty column yields an empty
// slice, never a one-element slice holding "".
func SplitTags(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}

// Migrate creates or updates the catalog schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Owner{},
		&Property{},
		&PropertyVariant{},
		&Product{},
		&ProductSku{},
		&ProductProperty{},
		&ProductSkuPropertyVariant{},
		&Multimedia{},
	)
}
