// Package models defines the persisted catalog schema.
//
// The hierarchy is Owner → Product → Property → PropertyVariant, with
// ProductSku as the purchasable leaf and two join tables: ProductProperty
// (product ↔ property, with hotspot coordinates) and
// ProductSkuPropertyVariant (SKU ↔ variant, pure association).
//
// Every entity carries a natural key enforced by a unique index; the store's
// upsert primitives rely on those constraints for idempotence under
// concurrent reconciliation runs.
package models
