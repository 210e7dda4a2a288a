// Package store implements the idempotent persistence layer of the catalog.
//
// The Store interface is the engine's only path to the database: per-entity
// natural-key upserts, the reads needed to build variant indices, and
// multimedia record creation. The GORM implementation realizes each upsert
// as a conditional insert guarded by the entity's unique constraint with an
// update fallback on conflict, which keeps repeated and concurrent
// reconciliation runs free of duplicates without read-then-write races.
package store
