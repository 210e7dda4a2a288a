// Package database manages the relational store connection.
//
// It opens a GORM connection against MySQL in production or SQLite for tests
// and local development, applies sane pool limits, and verifies connectivity
// with a bounded ping before handing the connection out.
//
// The catalog schema itself (owners, products, properties, variants, SKUs and
// their join tables) is defined and migrated by feature/catalog/models.
package database
