// Package storage provides the object storage client for catalog assets.
//
// It wraps the Minio S3-compatible client behind a narrow Client interface so
// that features (multimedia registration, uploads, integrity checks) depend
// on an abstraction that can be mocked in tests.
//
// # Operations
//
//   - BucketExists / MakeBucket: bucket lifecycle
//   - PutObject / StatObject: asset payloads
//   - ListObjects: prefix scans used by integrity checks
//
// The client carries a transport with strict timeouts so that asset calls in
// the reconciliation path fail fast instead of stalling a run.
package storage
