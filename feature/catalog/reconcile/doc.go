// Package reconcile implements the catalog reconciliation engine.
//
// One pass walks company descriptors and converges the persisted catalog to
// match them through natural-key upserts: owners, global properties and
// variants, products, product-property links, SKUs, and SKU-variant join
// rows, in that order. The pass is idempotent: running it twice over
// unchanged input yields identical persisted state with no duplicates.
//
// # Variant index
//
// SKU codes reference variants by name. Before a product's SKUs are
// resolved, a transient VariantIndex is assembled from the owner's global
// variants plus the variants of every property the product's metadata
// references, inserted in that order so product-scoped names shadow global
// ones.
//
// # SKU resolution
//
// A SKU code like PRODUCT_LEMANSKA_01_RED_M splits on the delimiter; the
// first recognized token starts the variant sequence and the prefix before
// it is discarded. Unrecognized tokens inside the sequence are warnings, not
// errors, and a code with no recognized tokens still produces a SKU with an
// empty association set.
//
// # Pricing
//
// Each SKU's price is the product's base price plus the adjustments of its
// resolved variants, recomputed every pass from currently persisted values.
package reconcile
