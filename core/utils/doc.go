// Package utils contains small conversion helpers.
//
// Catalog metadata files come from hand-edited JSON and older export tools,
// so scalar fields arrive with inconsistent types (numbers as strings,
// single values where arrays are expected). These helpers normalize such
// values at the walker boundary so the reconciliation core only ever sees
// typed descriptors.
package utils
