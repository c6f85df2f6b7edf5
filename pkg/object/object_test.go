package object

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"

	"github.com/overseer-monitoring/overseer-go/pkg/wire"
)

// testEntity is a plain entity: unique names, a standalone collection.
type testEntity struct {
	ID   *wire.Uint `json:"id,omitempty"`
	Ref  string     `json:"ref,omitempty"`
	Name string     `json:"name"`
}

func (e *testEntity) UniqueName() string { return e.Name }
func (e *testEntity) ConfigPath() string { return "/config/test" }
func (e *testEntity) ObjectID() (uint64, bool) {
	if e.ID == nil {
		return 0, false
	}
	return e.ID.Uint64(), true
}
func (e *testEntity) ObjectRef() string  { return e.Ref }
func (e *testEntity) ObjectName() string { return e.Name }
func (e *testEntity) ClearReadonly() {
	e.ID = nil
	e.Ref = ""
}

// testEntityRef is testEntity's reference variant.
type testEntityRef struct {
	Name string `json:"name,omitempty"`
	Ref  string `json:"ref,omitempty"`
}

func (r *testEntityRef) UniqueName() string { return r.Name }

func (e *testEntity) Reference() *testEntityRef {
	return &testEntityRef{Name: e.Name, Ref: e.Ref}
}

// qualifiedEntity mimics types whose remote names are not unique: the map key
// is qualified with the id.
type qualifiedEntity struct {
	ID   *wire.Uint `json:"id,omitempty"`
	Ref  string     `json:"ref,omitempty"`
	Name string     `json:"name"`
}

func (e *qualifiedEntity) UniqueName() string {
	if e.ID != nil {
		return fmt.Sprintf("%s-%d", e.Name, e.ID.Uint64())
	}
	return e.Name
}
func (e *qualifiedEntity) ConfigPath() string { return "/config/qualified" }
func (e *qualifiedEntity) ObjectID() (uint64, bool) {
	if e.ID == nil {
		return 0, false
	}
	return e.ID.Uint64(), true
}
func (e *qualifiedEntity) ObjectRef() string  { return e.Ref }
func (e *qualifiedEntity) ObjectName() string { return e.Name }
func (e *qualifiedEntity) ClearReadonly() {
	e.ID = nil
	e.Ref = ""
}

// embeddedEntity has no standalone collection.
type embeddedEntity struct {
	Name string `json:"name"`
}

func (e *embeddedEntity) UniqueName() string       { return e.Name }
func (e *embeddedEntity) ConfigPath() string       { return "" }
func (e *embeddedEntity) ObjectID() (uint64, bool) { return 0, false }
func (e *embeddedEntity) ObjectRef() string        { return "" }
func (e *embeddedEntity) ObjectName() string       { return e.Name }
func (e *embeddedEntity) ClearReadonly()           {}

// recordedRequest captures one request issued through the mock.
type recordedRequest struct {
	Method string
	Path   string
	Params url.Values
	Body   interface{}
}

// mockRequester is an object.Requester that records every request and answers
// via a caller-supplied handler. The zero handler fails every request.
type mockRequester struct {
	mu       sync.Mutex
	requests []recordedRequest
	handler  func(req recordedRequest) (json.RawMessage, error)
}

func (m *mockRequester) record(req recordedRequest) (json.RawMessage, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	handler := m.handler
	m.mu.Unlock()

	if handler == nil {
		return nil, fmt.Errorf("unexpected request: %s %s", req.Method, req.Path)
	}
	return handler(req)
}

func (m *mockRequester) Get(_ context.Context, path string, params url.Values) (json.RawMessage, error) {
	return m.record(recordedRequest{Method: "GET", Path: path, Params: params})
}

func (m *mockRequester) Post(_ context.Context, path string, params url.Values, body interface{}) (json.RawMessage, error) {
	return m.record(recordedRequest{Method: "POST", Path: path, Params: params, Body: body})
}

func (m *mockRequester) Put(_ context.Context, path string, params url.Values, body interface{}) (json.RawMessage, error) {
	return m.record(recordedRequest{Method: "PUT", Path: path, Params: params, Body: body})
}

func (m *mockRequester) Delete(_ context.Context, path string, params url.Values) (json.RawMessage, error) {
	return m.record(recordedRequest{Method: "DELETE", Path: path, Params: params})
}

func (m *mockRequester) requestCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}
