package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"catalog-manager/feature/catalog/models"
)

func TestVariantIndexAddOverwrites(t *testing.T) {
	idx := NewVariantIndex()

	idx.Add(models.PropertyVariant{Name: "RED", PropertyID: 1, PriceAdjustment: 5})
	idx.Add(models.PropertyVariant{Name: "RED", PropertyID: 2, PriceAdjustment: 20})

	assert.Equal(t, 1, idx.Len())

	entry, ok := idx.Lookup("RED")
	assert.True(t, ok)
	assert.Equal(t, uint(2), entry.PropertyID)
	assert.Equal(t, float64(20), entry.PriceAdjustment)
}

func TestVariantIndexLookupMiss(t *testing.T) {
	idx := NewVariantIndex()

	_, ok := idx.Lookup("MISSING")
	assert.False(t, ok)
}

func TestVariantIndexCloneIsIndependent(t *testing.T) {
	base := NewVariantIndex()
	base.Add(models.PropertyVariant{Name: "RED", PropertyID: 1, PriceAdjustment: 5})

	clone := base.Clone()
	clone.Add(models.PropertyVariant{Name: "RED", PropertyID: 9, PriceAdjustment: 20})
	clone.Add(models.PropertyVariant{Name: "M", PropertyID: 3})

	// base keeps its original view
	assert.Equal(t, 1, base.Len())
	entry, ok := base.Lookup("RED")
	assert.True(t, ok)
	assert.Equal(t, uint(1), entry.PropertyID)

	// clone carries the overrides
	assert.Equal(t, 2, clone.Len())
	entry, ok = clone.Lookup("RED")
	assert.True(t, ok)
	assert.Equal(t, uint(9), entry.PropertyID)
}
