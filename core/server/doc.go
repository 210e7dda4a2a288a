// Package server holds the HTTP server configuration.
//
// It defines the listening port, the API key protecting every route, and the
// content prefix under which uploaded catalog assets are stored in the bucket.
package server
