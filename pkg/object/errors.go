package object

import (
	"errors"
	"fmt"
)

// Sentinel errors for the framework's failure taxonomy. Callers branch on
// these with errors.Is; operations never collapse distinct causes into a
// generic failure.
var (
	// ErrMissingIdentifiers indicates an object carries no ref, id, or name,
	// so no lookup, fetch, or delete can be attempted. Raised before any
	// network call is made.
	ErrMissingIdentifiers = errors.New("object has no ref, id, or name")

	// ErrNoConfigPath indicates the entity type only exists embedded inside
	// another entity and has no standalone REST collection.
	ErrNoConfigPath = errors.New("object type has no config path")

	// ErrObjectNotFound indicates the API returned no object for the resolved
	// identifier.
	ErrObjectNotFound = errors.New("object not found")

	// ErrFieldNotFound indicates an expected field was missing from the
	// response payload.
	ErrFieldNotFound = errors.New("field not found in response")

	// ErrNotAnArray indicates the response's list field was present but not
	// an array.
	ErrNotAnArray = errors.New("list field is not an array")

	// ErrIDNotFound indicates the object's id field was absent or unparsable
	// where an id was required.
	ErrIDNotFound = errors.New("object id not found or unparsable")
)

// Error wraps a sentinel (or any underlying error) with the operation that
// failed and an optional context message.
type Error struct {
	// Op is the operation that failed, e.g. "Fetch" or "FetchAll".
	Op string

	// Err is the underlying error, usually one of the package sentinels.
	Err error

	// Msg is optional human-readable context.
	Msg string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// RowCountMismatchError reports a disagreement about a collection's total row
// count, either between two pages of the same fetch or between the declared
// total and the final accumulated length. Partial data is never returned
// alongside it.
type RowCountMismatchError struct {
	// Expected is the total declared by the first page.
	Expected uint64

	// Got is the conflicting value observed later.
	Got uint64
}

// Error implements the error interface.
func (e *RowCountMismatchError) Error() string {
	return fmt.Sprintf("row count mismatch: expected %d, got %d", e.Expected, e.Got)
}

// DuplicateKeyError reports two deserialized elements computing the same
// unique name. This always indicates a contract violation in the remote data,
// so it is an error rather than a last-write-wins overwrite.
type DuplicateKeyError struct {
	// Key is the colliding unique name.
	Key string
}

// Error implements the error interface.
func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key %q in deserialized collection", e.Key)
}
