package reconcile

import (
	"context"
	"fmt"

	"catalog-manager/feature/catalog/assets"
	"catalog-manager/feature/catalog/models"
	"catalog-manager/feature/catalog/store"
	"catalog-manager/feature/catalog/walker"

	"go.uber.org/zap"
)

// Engine drives one reconciliation pass over a set of company descriptors.
//
// Per company the phases run strictly in order: owner, global properties,
// then each product (product upsert, property links, SKUs, join rows). A
// product's SKU phase never starts before its property-link phase completed,
// because SKU resolution needs the fully populated variant index for that
// product. All writes are forward-only upserts; there is no rollback.
//
// Store failures abort the run at the current entity boundary. Everything
// else degrades locally and the pass keeps moving: missing metadata,
// unresolved tokens, and failed asset registrations are warned about, and a
// re-run of the idempotent pass is the cheapest repair.
type Engine struct {
	st        store.Store
	assets    assets.Registrar
	delimiter string
	log       *zap.Logger
}

// NewEngine creates an engine over the given store and asset registrar.
func NewEngine(st store.Store, registrar assets.Registrar, delimiter string, log *zap.Logger) *Engine {
	if delimiter == "" {
		delimiter = "_"
	}
	return &Engine{
		st:        st,
		assets:    registrar,
		delimiter: delimiter,
		log:       log,
	}
}

// Run reconciles every company in order and returns the pass report.
// On error the report covers the work completed before the stop; previously
// reconciled entities remain valid.
func (e *Engine) Run(ctx context.Context, companies []walker.Company) (*Report, error) {
	report := &Report{}

	for i := range companies {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if err := e.reconcileCompany(ctx, &companies[i], report); err != nil {
			return report, fmt.Errorf("company %s: %w", companies[i].Owner.Email, err)
		}
		report.Companies++
	}

	return report, nil
}

func (e *Engine) reconcileCompany(ctx context.Context, company *walker.Company, report *Report) error {
	owner, err := e.reconcileOwner(ctx, &company.Owner, report)
	if err != nil {
		return err
	}

	if err := e.reconcileGlobalProperties(ctx, owner.ID, company.Properties, report); err != nil {
		return err
	}

	// Seed the pass-scoped index with the owner's global variants; each
	// product works on its own copy.
	globalProperties, err := e.st.GlobalProperties(ctx, owner.ID)
	if err != nil {
		return err
	}
	ownerIndex := NewVariantIndex()
	globalByName := make(map[string]models.Property, len(globalProperties))
	for _, property := range globalProperties {
		globalByName[property.Name] = property
		for _, variant := range property.Variants {
			ownerIndex.Add(variant)
		}
	}

	for i := range company.Products {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.reconcileProduct(ctx, owner, &company.Products[i], ownerIndex, globalByName, report); err != nil {
			return err
		}
	}

	return nil
}

func (e *Engine) reconcileOwner(ctx context.Context, meta *walker.OwnerMeta, report *Report) (*models.Owner, error) {
	owner := models.Owner{
		Email:         meta.Email,
		CompanyName:   meta.CompanyName,
		CompanyData:   meta.CompanyData,
		LogoID:        e.registerAsset(ctx, meta.LogoPath, 0, "owner logo", report),
		StartScreenID: e.registerAsset(ctx, meta.StartScreenPath, 0, "start screen", report),
	}

	created, err := e.st.UpsertOwner(ctx, &owner)
	if err != nil {
		return nil, err
	}
	report.Owners.add(created)

	e.log.Debug("Reconciled owner",
		zap.String("email", owner.Email),
		zap.Uint("id", owner.ID),
		zap.Bool("created", created),
	)

	return &owner, nil
}

func (e *Engine) reconcileGlobalProperties(ctx context.Context, ownerID uint, properties []walker.GlobalProperty, report *Report) error {
	for _, declared := range properties {
		property := models.Property{Name: declared.Name, OwnerID: ownerID}
		created, err := e.st.UpsertProperty(ctx, &property)
		if err != nil {
			return err
		}
		report.Properties.add(created)

		for _, declaredVariant := range declared.Variants {
			variant := models.PropertyVariant{
				Name:       declaredVariant.Name,
				PropertyID: property.ID,
				ImageID:    e.registerAsset(ctx, declaredVariant.AssetPath, ownerID, "variant image", report),
			}
			// Asset-discovered variants carry no adjustment information;
			// the persisted adjustment must survive this upsert.
			created, err := e.st.UpsertVariant(ctx, &variant, false)
			if err != nil {
				return err
			}
			report.Variants.add(created)
		}
	}

	return nil
}

func (e *Engine) reconcileProduct(ctx context.Context, owner *models.Owner, declared *walker.Product, ownerIndex *VariantIndex, globalByName map[string]models.Property, report *Report) error {
	product := models.Product{
		Name:        declared.Name,
		OwnerID:     owner.ID,
		BasePrice:   declared.Meta.BasePrice,
		SuitableFor: models.JoinTags(declared.Meta.SuitableFor),
		Style:       models.JoinTags(declared.Meta.Style),
		MainImageID: e.registerAsset(ctx, declared.MainImagePath, owner.ID, "product image", report),
	}
	created, err := e.st.UpsertProduct(ctx, &product)
	if err != nil {
		return err
	}
	report.Products.add(created)

	index := ownerIndex.Clone()

	if err := e.linkProperties(ctx, owner.ID, &product, declared.Meta.Properties, index, globalByName, report); err != nil {
		return err
	}

	return e.reconcileSkus(ctx, owner.ID, &product, declared.Skus, index, report)
}

// linkProperties reconciles the product's property metadata. A metadata
// property whose name matches an owner-global property references it: the
// hotspots land on the link row and the declared adjustments overwrite the
// global variants. Any other name becomes a product-scoped property with its
// own variants. Either way the property's current persisted variants are
// then inserted into the index, after the global seed, so product-scoped
// names shadow global ones.
func (e *Engine) linkProperties(ctx context.Context, ownerID uint, product *models.Product, declared []walker.PropertyMeta, index *VariantIndex, globalByName map[string]models.Property, report *Report) error {
	for _, meta := range declared {
		property, isGlobal := globalByName[meta.Name]
		if !isGlobal {
			property = models.Property{Name: meta.Name, OwnerID: ownerID, ProductID: product.ID}
			created, err := e.st.UpsertProperty(ctx, &property)
			if err != nil {
				return err
			}
			report.Properties.add(created)
		}

		for _, declaredVariant := range meta.Variants {
			variant := models.PropertyVariant{
				Name:            declaredVariant.Name,
				PropertyID:      property.ID,
				PriceAdjustment: declaredVariant.PriceAdjustment,
			}
			created, err := e.st.UpsertVariant(ctx, &variant, true)
			if err != nil {
				return err
			}
			report.Variants.add(created)
		}

		link := models.ProductProperty{
			ProductID:  product.ID,
			PropertyID: property.ID,
			HotspotX:   meta.HotspotX,
			HotspotY:   meta.HotspotY,
		}
		created, err := e.st.UpsertProductProperty(ctx, &link)
		if err != nil {
			return err
		}
		report.PropertyLinks.add(created)

		// Re-read so the index reflects what is persisted now, including
		// adjustments just written and variants from earlier passes.
		variants, err := e.st.VariantsOf(ctx, property.ID)
		if err != nil {
			return err
		}
		for _, variant := range variants {
			index.Add(variant)
		}
	}

	return nil
}

func (e *Engine) reconcileSkus(ctx context.Context, ownerID uint, product *models.Product, declared []walker.SkuDecl, index *VariantIndex, report *Report) error {
	for _, skuDecl := range declared {
		resolution := ResolveCode(skuDecl.Code, e.delimiter, index)

		if len(resolution.Matches) == 0 {
			e.log.Warn("SKU code has no recognizable variant tokens",
				zap.String("code", skuDecl.Code),
				zap.String("product", product.Name),
			)
			report.Warnings++
		}
		for _, token := range resolution.Unmatched {
			e.log.Warn("Unresolved SKU token skipped",
				zap.String("code", skuDecl.Code),
				zap.String("token", token),
			)
			report.Warnings++
		}

		sku := models.ProductSku{
			Code:      skuDecl.Code,
			ProductID: product.ID,
			Price:     FinalPrice(product.BasePrice, resolution.Matches),
			ImageID:   e.registerAsset(ctx, skuDecl.AssetPath, ownerID, "sku image", report),
		}
		created, err := e.st.UpsertSku(ctx, &sku)
		if err != nil {
			return err
		}
		report.Skus.add(created)

		for _, match := range resolution.Matches {
			link := models.ProductSkuPropertyVariant{
				ProductSkuID:      sku.ID,
				PropertyVariantID: match.Entry.VariantID,
			}
			created, err := e.st.UpsertSkuVariant(ctx, &link)
			if err != nil {
				return err
			}
			report.SkuVariantLinks.add(created)
		}
	}

	return nil
}

// registerAsset registers one asset file and returns its multimedia identity.
// An empty path means the asset is absent. Registration failures are
// non-fatal: the entity reconciles without the reference and the failure is
// counted, so a later run can fill the gap.
func (e *Engine) registerAsset(ctx context.Context, path string, ownerID uint, kind string, report *Report) *uint {
	if path == "" {
		return nil
	}

	id, err := e.assets.Register(ctx, path, ownerID)
	if err != nil {
		e.log.Warn("Asset registration failed, continuing without reference",
			zap.String("kind", kind),
			zap.String("asset", path),
			zap.Error(err),
		)
		report.AssetFailures++
		return nil
	}

	return &id
}
