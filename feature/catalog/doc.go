// Package catalog exposes the catalog reconciliation as an application
// feature: an endpoint to trigger a pass over the catalog source tree and
// one to inspect the persisted entity counts.
package catalog
