package walker

// Company is the ordered descriptor for one company subtree: owner metadata,
// owner-global properties, and products. It is the logical contract between
// the walker and the reconciliation engine; the engine never touches the
// filesystem itself.
type Company struct {
	Owner      OwnerMeta
	Properties []GlobalProperty
	Products   []Product
}

// OwnerMeta describes the seller account behind a company directory.
type OwnerMeta struct {
	Email       string
	CompanyName string
	// CompanyData is the raw JSON of the structured company metadata.
	CompanyData string
	// LogoPath and StartScreenPath are local file paths, empty when the
	// corresponding asset is absent.
	LogoPath        string
	StartScreenPath string
}

// GlobalProperty is an owner-scoped customizable attribute discovered under
// the company's properties directory.
type GlobalProperty struct {
	Name     string
	Variants []VariantDecl
}

// VariantDecl is one variant of a global property, named after its asset file.
type VariantDecl struct {
	Name      string
	AssetPath string
}

// Product describes one product directory.
type Product struct {
	Name          string
	Meta          ProductMeta
	MainImagePath string
	Skus          []SkuDecl
}

// ProductMeta mirrors the product's metadata file. A missing file yields the
// zero value: base price 0, empty tag lists, no properties.
type ProductMeta struct {
	BasePrice   float64
	SuitableFor []string
	Style       []string
	Properties  []PropertyMeta
}

// PropertyMeta declares a property the product exposes for configuration,
// with optional hotspot coordinates and per-variant price adjustments.
type PropertyMeta struct {
	Name     string
	HotspotX *float64
	HotspotY *float64
	Variants []VariantMeta
}

// VariantMeta carries a variant's price adjustment as declared by the
// product metadata.
type VariantMeta struct {
	Name            string
	PriceAdjustment float64
}

// SkuDecl is one SKU discovered under the product's skus directory. The code
// is the file name without extension; the asset is the file itself.
type SkuDecl struct {
	Code      string
	AssetPath string
}
