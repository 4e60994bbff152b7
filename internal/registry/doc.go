// Package registry provides the name-to-resolved-fields store that lets
// one struct definition reference another's already-computed flat layout.
//
// Key properties:
//   - Caller-owned object, passed through the processing pass explicitly
//   - Only fully resolved (marker-free) field lists are ever stored
//   - Lookup absence signals "unknown type" to the flattening engine
//   - Duplicate names are rejected by default; last-write-wins is opt-in
package registry
