// Package upload exposes a single endpoint for pushing asset bytes into the
// bucket ahead of a reconciliation pass.
package upload
