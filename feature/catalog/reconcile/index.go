package reconcile

import (
	"catalog-manager/feature/catalog/models"
)

// Entry is one resolvable variant in the index: its persisted identity, the
// property it belongs to, and its current price adjustment.
type Entry struct {
	VariantID       uint
	PropertyID      uint
	PriceAdjustment float64
}

// VariantIndex maps a variant's name to its Entry. It is transient,
// rebuilt-from-store state scoped to one reconciliation pass; it holds no
// authority over the store and is never shared across runs.
//
// Scope conflicts resolve by insertion order: product-scoped entries are
// added after the owner-global ones into the same map, so a later insertion
// under the same name overwrites and local wins over global.
type VariantIndex struct {
	entries map[string]Entry
}

// NewVariantIndex creates an empty index.
func NewVariantIndex() *VariantIndex {
	return &VariantIndex{entries: make(map[string]Entry)}
}

// Add inserts or overwrites the entry for the variant's name.
func (i *VariantIndex) Add(v models.PropertyVariant) {
	i.entries[v.Name] = Entry{
		VariantID:       v.ID,
		PropertyID:      v.PropertyID,
		PriceAdjustment: v.PriceAdjustment,
	}
}

// Lookup resolves a token to its entry.
func (i *VariantIndex) Lookup(token string) (Entry, bool) {
	e, ok := i.entries[token]
	return e, ok
}

// Len returns the number of distinct resolvable names.
func (i *VariantIndex) Len() int {
	return len(i.entries)
}

// Clone returns an independent copy, so per-product additions never leak
// back into the owner-level index.
func (i *VariantIndex) Clone() *VariantIndex {
	clone := NewVariantIndex()
	for name, entry := range i.entries {
		clone.entries[name] = entry
	}
	return clone
}
