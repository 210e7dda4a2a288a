package walker

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"catalog-manager/core/utils"

	"go.uber.org/zap"
)

// Walker discovers company descriptors from a directory tree.
//
// Layout, relative to the configured root:
//
//	<company>/company.json
//	<company>/logo.<ext>, start-screen.<ext>
//	<company>/properties/<property>/<variant>.<ext>
//	<company>/products/<product>/metadata.json
//	<company>/products/<product>/main.<ext>
//	<company>/products/<product>/skus/<CODE>.<ext>
//
// Missing metadata files and missing directories yield empty defaults, never
// errors; only hard I/O failures abort a walk.
type Walker struct {
	cfg Config
	log *zap.Logger
}

// New creates a walker over the configured catalog root.
func New(cfg Config, log *zap.Logger) *Walker {
	return &Walker{cfg: cfg, log: log}
}

// Walk reads the catalog root and returns one descriptor per company
// directory, in lexical order.
func (w *Walker) Walk(ctx context.Context) ([]Company, error) {
	entries, err := os.ReadDir(w.cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog root %s: %w", w.cfg.Root, err)
	}

	companies := make([]Company, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		company, err := w.walkCompany(filepath.Join(w.cfg.Root, entry.Name()), entry.Name())
		if err != nil {
			return nil, err
		}
		companies = append(companies, *company)
	}

	return companies, nil
}

func (w *Walker) walkCompany(dir, name string) (*Company, error) {
	company := &Company{
		Owner: w.readOwnerMeta(dir, name),
	}

	company.Owner.LogoPath = assetNamed(dir, "logo")
	company.Owner.StartScreenPath = assetNamed(dir, "start-screen")

	properties, err := w.walkProperties(filepath.Join(dir, "properties"))
	if err != nil {
		return nil, err
	}
	company.Properties = properties

	products, err := w.walkProducts(filepath.Join(dir, "products"))
	if err != nil {
		return nil, err
	}
	company.Products = products

	return company, nil
}

// readOwnerMeta parses company.json. A missing or malformed file falls back
// to directory-derived defaults so the company still reconciles.
func (w *Walker) readOwnerMeta(dir, name string) OwnerMeta {
	meta := OwnerMeta{
		Email:       strings.ToLower(name) + "@catalog.local",
		CompanyName: name,
	}

	data, err := os.ReadFile(filepath.Join(dir, "company.json"))
	if err != nil {
		w.log.Info("Company metadata missing, using defaults", zap.String("company", name))
		return meta
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		w.log.Warn("Company metadata malformed, using defaults",
			zap.String("company", name), zap.Error(err))
		return meta
	}

	if email := utils.ToString(raw["email"]); email != "" {
		meta.Email = strings.ToLower(email)
	}
	if companyName := utils.ToString(raw["companyName"]); companyName != "" {
		meta.CompanyName = companyName
	}
	if companyData, ok := raw["companyData"]; ok {
		if encoded, err := json.Marshal(companyData); err == nil {
			meta.CompanyData = string(encoded)
		}
	}

	return meta
}

func (w *Walker) walkProperties(dir string) ([]GlobalProperty, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			w.log.Info("No global properties directory", zap.String("dir", dir))
			return []GlobalProperty{}, nil
		}
		return nil, fmt.Errorf("failed to read properties dir %s: %w", dir, err)
	}

	properties := make([]GlobalProperty, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		property := GlobalProperty{Name: entry.Name()}

		variantDir := filepath.Join(dir, entry.Name())
		files, err := os.ReadDir(variantDir)
		if err != nil {
			return nil, fmt.Errorf("failed to read variants of %s: %w", entry.Name(), err)
		}
		for _, file := range files {
			if file.IsDir() {
				continue
			}
			property.Variants = append(property.Variants, VariantDecl{
				Name:      baseName(file.Name()),
				AssetPath: filepath.Join(variantDir, file.Name()),
			})
		}

		properties = append(properties, property)
	}

	return properties, nil
}

func (w *Walker) walkProducts(dir string) ([]Product, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			w.log.Info("No products directory", zap.String("dir", dir))
			return []Product{}, nil
		}
		return nil, fmt.Errorf("failed to read products dir %s: %w", dir, err)
	}

	products := make([]Product, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		productDir := filepath.Join(dir, entry.Name())
		product := Product{
			Name:          entry.Name(),
			Meta:          w.readProductMeta(productDir, entry.Name()),
			MainImagePath: assetNamed(productDir, "main"),
		}

		skus, err := w.walkSkus(filepath.Join(productDir, "skus"))
		if err != nil {
			return nil, err
		}
		product.Skus = skus

		products = append(products, product)
	}

	return products, nil
}

func (w *Walker) walkSkus(dir string) ([]SkuDecl, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []SkuDecl{}, nil
		}
		return nil, fmt.Errorf("failed to read skus dir %s: %w", dir, err)
	}

	skus := make([]SkuDecl, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		skus = append(skus, SkuDecl{
			Code:      baseName(entry.Name()),
			AssetPath: filepath.Join(dir, entry.Name()),
		})
	}

	return skus, nil
}

// readProductMeta parses metadata.json with tolerant scalar conversion:
// numbers-as-strings normalize, hotspots clamp into [0,1], and anything
// unconvertible defaults rather than aborting the product.
func (w *Walker) readProductMeta(dir, name string) ProductMeta {
	meta := ProductMeta{
		SuitableFor: []string{},
		Style:       []string{},
	}

	data, err := os.ReadFile(filepath.Join(dir, "metadata.json"))
	if err != nil {
		w.log.Info("Product metadata missing, using defaults", zap.String("product", name))
		return meta
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		w.log.Warn("Product metadata malformed, using defaults",
			zap.String("product", name), zap.Error(err))
		return meta
	}

	meta.BasePrice = utils.ToFloat(raw["basePrice"])
	meta.SuitableFor = utils.ToStringSlice(raw["suitableFor"])
	meta.Style = utils.ToStringSlice(raw["style"])

	rawProperties, _ := raw["properties"].([]any)
	for _, rawProperty := range rawProperties {
		fields, ok := rawProperty.(map[string]any)
		if !ok {
			continue
		}

		property := PropertyMeta{Name: utils.ToString(fields["name"])}
		if property.Name == "" {
			w.log.Warn("Skipping unnamed property in metadata", zap.String("product", name))
			continue
		}

		if v, ok := fields["hotspotX"]; ok {
			f := clamp01(utils.ToFloat(v))
			property.HotspotX = &f
		}
		if v, ok := fields["hotspotY"]; ok {
			f := clamp01(utils.ToFloat(v))
			property.HotspotY = &f
		}

		rawVariants, _ := fields["variants"].([]any)
		for _, rawVariant := range rawVariants {
			variantFields, ok := rawVariant.(map[string]any)
			if !ok {
				continue
			}
			variantName := utils.ToString(variantFields["name"])
			if variantName == "" {
				continue
			}
			property.Variants = append(property.Variants, VariantMeta{
				Name:            variantName,
				PriceAdjustment: utils.ToFloat(variantFields["priceAdjustment"]),
			})
		}

		meta.Properties = append(meta.Properties, property)
	}

	return meta
}

// assetNamed returns the path of the first file in dir whose name without
// extension equals base, or empty when absent.
func assetNamed(dir, base string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if baseName(entry.Name()) == base {
			return filepath.Join(dir, entry.Name())
		}
	}
	return ""
}

func baseName(file string) string {
	return strings.TrimSuffix(file, filepath.Ext(file))
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
