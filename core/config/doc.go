// Package config aggregates the application configuration.
//
// Each core package declares its own partial Config struct with mapstructure
// and default tags; this package composes them and binds environment
// variables (optionally loaded from a .env file) onto the nested keys.
//
// Example: SERVER_PORT=9090 maps to Config.Server.Port, CATALOG_ROOT=/data
// maps to Config.Catalog.Root.
package config
