package object

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/overseer-monitoring/overseer-go/pkg/wire"
)

// Identifier resolution. The priorities are deliberately asymmetric: fetch and
// delete prefer the ref because it addresses exactly one persisted resource,
// while an exists probe skips the ref entirely — a ref only exists once the
// object has been persisted, so exists must also work for not-yet-persisted
// local objects via id or name.

type existsEnvelope struct {
	Exists *wire.Bool `json:"exists"`
}

// Exists probes whether obj is present on the server, resolving id before
// name. It fails with ErrMissingIdentifiers before any request when neither
// is set.
func Exists[P Persistent](ctx context.Context, c Requester, obj P) (bool, error) {
	path := obj.ConfigPath()
	if path == "" {
		return false, &Error{Op: "Exists", Err: ErrNoConfigPath}
	}

	params := url.Values{}
	if id, ok := obj.ObjectID(); ok {
		params.Set("id", strconv.FormatUint(id, 10))
	} else if name := obj.ObjectName(); name != "" {
		params.Set("name", name)
	} else {
		return false, &Error{Op: "Exists", Err: ErrMissingIdentifiers}
	}

	raw, err := c.Get(ctx, path+"/exists", params)
	if err != nil {
		return false, err
	}

	var env existsEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return false, &Error{Op: "Exists", Err: err, Msg: "decoding exists response"}
	}
	if env.Exists == nil {
		return false, &Error{Op: "Exists", Err: ErrFieldNotFound, Msg: "exists"}
	}
	return env.Exists.Bool(), nil
}

// Fetch retrieves the persisted object identified by obj, resolving ref
// before id before name, and returns a freshly decoded instance. obj itself
// is not modified.
func Fetch[T any, P interface {
	Persistent
	*T
}](ctx context.Context, c Requester, obj P) (P, error) {
	switch {
	case obj.ObjectRef() != "":
		raw, err := c.Get(ctx, RefPath(obj.ObjectRef()), nil)
		if err != nil {
			return nil, err
		}
		return decodeObject[T, P](raw)

	default:
		path := obj.ConfigPath()
		if path == "" {
			return nil, &Error{Op: "Fetch", Err: ErrNoConfigPath}
		}
		if id, ok := obj.ObjectID(); ok {
			raw, err := c.Get(ctx, fmt.Sprintf("%s/%d", path, id), nil)
			if err != nil {
				return nil, err
			}
			return decodeObject[T, P](raw)
		}
		if name := obj.ObjectName(); name != "" {
			return fetchByField[T, P](ctx, c, path, "name", name)
		}
		return nil, &Error{Op: "Fetch", Err: ErrMissingIdentifiers}
	}
}

// decodeObject unwraps a single-object envelope into a new instance.
func decodeObject[T any, P interface {
	Persistent
	*T
}](raw json.RawMessage) (P, error) {
	var env objectEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &Error{Op: "Fetch", Err: err, Msg: "decoding object envelope"}
	}
	if env.Object == nil {
		return nil, &Error{Op: "Fetch", Err: ErrFieldNotFound, Msg: "object"}
	}

	out := P(new(T))
	if err := json.Unmarshal(env.Object, out); err != nil {
		return nil, &Error{Op: "Fetch", Err: err, Msg: "decoding object"}
	}
	return out, nil
}

// fetchByField queries the collection filtered on one field and takes element
// zero; an empty result list is ErrObjectNotFound.
func fetchByField[T any, P interface {
	Persistent
	*T
}](ctx context.Context, c Requester, path, field, value string) (P, error) {
	params := url.Values{}
	params.Set("s."+field, value)

	raw, err := c.Get(ctx, path, params)
	if err != nil {
		return nil, err
	}

	var env listEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &Error{Op: "Fetch", Err: err, Msg: "decoding list envelope"}
	}
	if env.List == nil {
		return nil, &Error{Op: "Fetch", Err: ErrFieldNotFound, Msg: "list"}
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(env.List, &elems); err != nil {
		return nil, &Error{Op: "Fetch", Err: ErrNotAnArray, Msg: "list"}
	}
	if len(elems) == 0 {
		return nil, &Error{Op: "Fetch", Err: ErrObjectNotFound, Msg: field + "=" + value}
	}

	out := P(new(T))
	if err := json.Unmarshal(elems[0], out); err != nil {
		return nil, &Error{Op: "Fetch", Err: err, Msg: "decoding object"}
	}
	return out, nil
}

// Create persists obj as a new object. Existence is not pre-checked; the
// server decides whether the creation is acceptable.
func Create[P Persistent](ctx context.Context, c Requester, obj P) error {
	path := obj.ConfigPath()
	if path == "" {
		return &Error{Op: "Create", Err: ErrNoConfigPath}
	}
	_, err := c.Post(ctx, path, nil, objectBody{Object: obj})
	return err
}

// CreateAll persists every object in m with a single list-bodied request.
// An empty map is a no-op.
func CreateAll[P Persistent](ctx context.Context, c Requester, m *Map[P]) error {
	if m == nil || m.IsEmpty() {
		return nil
	}
	path := m.Values()[0].ConfigPath()
	if path == "" {
		return &Error{Op: "CreateAll", Err: ErrNoConfigPath}
	}
	_, err := c.Post(ctx, path, nil, listBody{List: m})
	return err
}

// Update sends obj with update semantics; the server decides
// create-vs-update.
func Update[P Persistent](ctx context.Context, c Requester, obj P) error {
	path := obj.ConfigPath()
	if path == "" {
		return &Error{Op: "Update", Err: ErrNoConfigPath}
	}
	_, err := c.Put(ctx, path, nil, objectBody{Object: obj})
	return err
}

// Remove deletes the persisted object identified by obj, resolving ref before
// id before name.
func Remove[P Persistent](ctx context.Context, c Requester, obj P) error {
	if ref := obj.ObjectRef(); ref != "" {
		_, err := c.Delete(ctx, RefPath(ref), nil)
		return err
	}

	path := obj.ConfigPath()
	if path == "" {
		return &Error{Op: "Remove", Err: ErrNoConfigPath}
	}
	if id, ok := obj.ObjectID(); ok {
		_, err := c.Delete(ctx, fmt.Sprintf("%s/%d", path, id), nil)
		return err
	}
	if name := obj.ObjectName(); name != "" {
		params := url.Values{}
		params.Set("s.name", name)
		_, err := c.Delete(ctx, path, params)
		return err
	}
	return &Error{Op: "Remove", Err: ErrMissingIdentifiers}
}
