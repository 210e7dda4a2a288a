// Package integrity exposes consistency checks across the three places
// catalog state lives: the bucket layout, the multimedia records pointing
// into it, and the database schema itself.
package integrity
