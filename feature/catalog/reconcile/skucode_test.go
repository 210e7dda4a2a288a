package reconcile

import (
	"testing"

	"catalog-manager/feature/catalog/models"

	"github.com/stretchr/testify/assert"
)

func indexOf(variants ...models.PropertyVariant) *VariantIndex {
	idx := NewVariantIndex()
	for _, v := range variants {
		idx.Add(v)
	}
	return idx
}

func matchedTokens(r Resolution) []string {
	var tokens []string
	for _, m := range r.Matches {
		tokens = append(tokens, m.Token)
	}
	return tokens
}

func TestResolveCode(t *testing.T) {
	idx := indexOf(
		models.PropertyVariant{ID: 1, PropertyID: 10, Name: "RED"},
		models.PropertyVariant{ID: 2, PropertyID: 10, Name: "BLUE"},
		models.PropertyVariant{ID: 3, PropertyID: 11, Name: "S"},
		models.PropertyVariant{ID: 4, PropertyID: 11, Name: "M"},
		models.PropertyVariant{ID: 5, PropertyID: 11, Name: "L"},
	)

	tests := []struct {
		name      string
		code      string
		matched   []string
		unmatched []string
	}{
		{
			// Prefix tokens before the first recognized one are discarded
			name:    "ProductNamePrefixIgnored",
			code:    "PRODUCT_LEMANSKA_01_RED_M",
			matched: []string{"RED", "M"},
		},
		{
			name:      "UnresolvedTrailingToken",
			code:      "SHIRT_RED_XXL",
			matched:   []string{"RED"},
			unmatched: []string{"XXL"},
		},
		{
			name: "NoRecognizableToken",
			code: "PRODUCT_FOO_BAR",
		},
		{
			name:      "UnresolvedTokenBetweenMatches",
			code:      "DRESS_RED_GLITTER_M",
			matched:   []string{"RED", "M"},
			unmatched: []string{"GLITTER"},
		},
		{
			name:    "CodeIsOnlyTokens",
			code:    "BLUE_L",
			matched: []string{"BLUE", "L"},
		},
		{
			// Both resolve to the same property; both recorded
			name:    "TwoTokensOfSameProperty",
			code:    "DRESS_RED_BLUE",
			matched: []string{"RED", "BLUE"},
		},
		{
			name: "EmptyCode",
			code: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ResolveCode(tt.code, "_", idx)
			assert.Equal(t, tt.matched, matchedTokens(r))
			assert.Equal(t, tt.unmatched, r.Unmatched)
		})
	}
}

func TestResolveCode_EmptyIndex(t *testing.T) {
	r := ResolveCode("DRESS_RED_M", "_", NewVariantIndex())
	assert.Empty(t, r.Matches)
	assert.Empty(t, r.Unmatched)
}
