// Package object implements the generic object and reference framework shared by
// every Overseer configuration entity type.
//
// Entity types (hosts, host groups, service checks, ...) are defined in
// pkg/objects. By implementing the small contracts in this package they gain
// uniform behavior: identifier resolution against the REST API, typed
// deduplicated collections (Map and RefMap), reference derivation for nesting
// one entity inside another, and a paginated fetch-all that verifies the
// server's declared row counts across pages.
//
// All operations either return a fully-formed value or a typed error from this
// package's taxonomy; there are no partial results. In particular a fetch-all
// that detects a row-count inconsistency discards everything it accumulated,
// because a truncated collection is indistinguishable from a complete one.
package object
