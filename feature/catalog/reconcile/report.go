package reconcile

// Counts tracks create-versus-update outcomes for one entity kind.
type Counts struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}

func (c *Counts) add(created bool) {
	if created {
		c.Created++
	} else {
		c.Updated++
	}
}

// Total returns the number of reconciled entities of this kind.
func (c Counts) Total() int {
	return c.Created + c.Updated
}

// Report summarizes one reconciliation pass.
type Report struct {
	// Companies is the number of fully processed company descriptors.
	Companies int `json:"companies"`

	Owners          Counts `json:"owners"`
	Properties      Counts `json:"properties"`
	Variants        Counts `json:"variants"`
	Products        Counts `json:"products"`
	Skus            Counts `json:"skus"`
	PropertyLinks   Counts `json:"property_links"`
	SkuVariantLinks Counts `json:"sku_variant_links"`

	// Warnings counts non-fatal data-quality findings: unresolved SKU
	// tokens and codes with no recognizable token at all.
	Warnings int `json:"warnings"`

	// AssetFailures counts asset registrations that failed; the affected
	// entities were reconciled without their image reference.
	AssetFailures int `json:"asset_failures"`
}
