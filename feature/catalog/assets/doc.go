// Package assets registers catalog asset files as multimedia records.
//
// The Registrar interface is the engine's only view of asset storage; the
// Minio-backed implementation uploads the bytes under a per-owner object key
// and records the result in the multimedia table. A failed registration
// surfaces to the caller of that entity's reconciliation and never leaves
// the entity pointing at an image identity that was not created.
package assets
