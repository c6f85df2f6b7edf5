package object

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
)

// Object is the minimal contract every configuration entity and reference
// variant satisfies: it can compute the string key under which it lives in a
// Map. The key is usually the display name; types whose remote names are not
// guaranteed unique qualify it with the id or ref so two remote objects that
// share a name never collide locally.
type Object interface {
	// UniqueName returns the collection key for this instance. It is computed
	// fresh on every call, never cached from prior state.
	UniqueName() string
}

// Persistent is satisfied by entity types that live behind a REST collection
// and can be probed, fetched, created, updated, and removed. Types that only
// exist embedded inside another entity return "" from ConfigPath; operations
// on them fail with ErrNoConfigPath rather than a network error.
type Persistent interface {
	Object

	// ConfigPath returns the REST sub-path of this type's collection,
	// e.g. "/config/host", or "" for embedded-only types.
	ConfigPath() string

	// ObjectID returns the server-assigned numeric id, if persisted.
	ObjectID() (uint64, bool)

	// ObjectRef returns the server-assigned ref string, or "" if not
	// persisted yet.
	ObjectRef() string

	// ObjectName returns the caller-assigned display name, or "".
	ObjectName() string

	// ClearReadonly resets every server-assigned or computed attribute (id,
	// ref, flags the server maintains) so the instance is treated as new on
	// the next create. Used before cloning an existing object under a new
	// name.
	ClearReadonly()
}

// Referencer is satisfied by full entity types that have a reference variant
// R: a reduced projection (name, ref, and selected denormalized fields) used
// when the entity is nested inside another entity's fields.
type Referencer[R Object] interface {
	Object

	// Reference derives the reference variant. It copies out of the receiver
	// and never mutates it.
	Reference() R
}

// Requester is the transport collaborator the framework issues requests
// through. *client.Client implements it; tests substitute a mock to assert on
// (or count) requests. Every method returns the response's raw JSON payload.
type Requester interface {
	Get(ctx context.Context, path string, params url.Values) (json.RawMessage, error)
	Post(ctx context.Context, path string, params url.Values, body interface{}) (json.RawMessage, error)
	Put(ctx context.Context, path string, params url.Values, body interface{}) (json.RawMessage, error)
	Delete(ctx context.Context, path string, params url.Values) (json.RawMessage, error)
}

// RefPath rewrites a server-assigned ref string into a request path. Refs
// arrive as "/rest/config/..." while request paths are relative to the
// client's "/rest" base, so the "/rest" prefix is stripped.
func RefPath(ref string) string {
	return strings.TrimPrefix(ref, "/rest")
}

// Envelope shapes of the API's JSON responses and request bodies.

type objectEnvelope struct {
	Object json.RawMessage `json:"object"`
}

type listEnvelope struct {
	List    json.RawMessage `json:"list"`
	Summary *PageSummary    `json:"summary,omitempty"`
}

type objectBody struct {
	Object interface{} `json:"object"`
}

type listBody struct {
	List interface{} `json:"list"`
}
