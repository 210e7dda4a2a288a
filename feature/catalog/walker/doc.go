// Package walker turns a catalog directory tree into company descriptors.
//
// The walker owns the physical representation of the catalog (directories,
// metadata JSON, asset files) and hands the reconciliation engine a fully
// typed descriptor. Duck-typed metadata never crosses this boundary: scalars
// are normalized through core/utils and hotspot coordinates are clamped into
// [0,1] before the descriptor is emitted.
//
// Missing optional inputs (company.json, metadata.json, properties/, skus/)
// produce empty defaults and an informational log entry; they are never
// errors. Hard I/O failures abort the walk.
package walker
