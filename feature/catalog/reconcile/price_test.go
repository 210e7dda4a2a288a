package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFinalPrice(t *testing.T) {
	tests := []struct {
		name        string
		base        float64
		adjustments []float64
		want        float64
	}{
		{"BasePlusAdjustments", 100, []float64{10, 0}, 110},
		{"NoMatches", 100, nil, 100},
		{"NegativeAdjustment", 100, []float64{-30, 5}, 75},
		{"NegativeResultNotClamped", 50, []float64{-80}, -30},
		{"ZeroBase", 0, []float64{12.5}, 12.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var matches []Match
			for _, adj := range tt.adjustments {
				matches = append(matches, Match{Entry: Entry{PriceAdjustment: adj}})
			}
			assert.Equal(t, tt.want, FinalPrice(tt.base, matches))
		})
	}
}
