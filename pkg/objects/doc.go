// Package objects defines the Overseer configuration entity types and their
// reference variants and builders.
//
// Every full entity satisfies object.Persistent and gains the framework's
// uniform behavior: Exists/Fetch/Create/Update/Remove, typed collections, and
// paginated FetchAll. Reference variants (HostRef, HostGroupRef, ...) are the
// reduced projections used when one entity nests inside another's fields.
//
// Entities are constructed through their builders, which validate every field
// before an instance exists. Validation is collect-all: Build returns an
// ozzo-validation Errors value naming every violated field, not just the
// first.
package objects
