// Package store persists profile metadata and sampled values in SQLite.
//
// It uses the pure-Go modernc.org/sqlite driver, so no cgo toolchain is
// needed. Metadata is stored as YAML text; sampled values live one row per
// coordinate and are returned ordered by (x, y).
package store
