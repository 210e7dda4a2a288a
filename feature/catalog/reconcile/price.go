package reconcile

// FinalPrice derives a SKU's price: the product's base price plus the price
// adjustment of every resolved variant, regardless of which property each
// belongs to. Adjustments come from the index built this pass, i.e. from the
// current persisted values, so editing an adjustment and re-running updates
// every SKU that references it. The sum is not rounded and not clamped;
// negative results are permitted.
func FinalPrice(basePrice float64, matches []Match) float64 {
	price := basePrice
	for _, m := range matches {
		price += m.Entry.PriceAdjustment
	}
	return price
}
