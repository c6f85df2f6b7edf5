package object

import (
	"encoding/json"
	"reflect"
)

// Map is a deduplicated collection of entities keyed by their computed unique
// name. Keys are derived by calling UniqueName at insertion time; inserting an
// entity whose key already exists replaces the prior value (last-write-wins).
// Iteration order carries no meaning.
//
// A Map is a client-side accumulator, never the system of record. It
// serializes as a plain JSON array of its values; keys are recomputed on
// deserialization, and two deserialized elements computing the same key make
// the whole decode fail with a DuplicateKeyError.
type Map[T Object] struct {
	items map[string]T
}

// RefMap holds reference variants instead of full entities. Structurally it
// is the same container; the distinct name keeps signatures honest about
// which projection they carry.
type RefMap[R Object] = Map[R]

// NewMap returns an empty Map.
func NewMap[T Object]() *Map[T] {
	return &Map[T]{items: make(map[string]T)}
}

// NewRefMap returns an empty RefMap.
func NewRefMap[R Object]() *RefMap[R] {
	return NewMap[R]()
}

// Add inserts o under its computed unique name, replacing any existing entry
// with the same key.
func (m *Map[T]) Add(o T) {
	if m.items == nil {
		m.items = make(map[string]T)
	}
	m.items[o.UniqueName()] = o
}

// Get returns the entity stored under key, if any.
func (m *Map[T]) Get(key string) (T, bool) {
	o, ok := m.items[key]
	return o, ok
}

// Contains reports whether an entity is stored under key.
func (m *Map[T]) Contains(key string) bool {
	_, ok := m.items[key]
	return ok
}

// Remove deletes the entity stored under key and reports whether one existed.
func (m *Map[T]) Remove(key string) bool {
	if _, ok := m.items[key]; !ok {
		return false
	}
	delete(m.items, key)
	return true
}

// Len returns the number of entities in the map.
func (m *Map[T]) Len() int {
	return len(m.items)
}

// IsEmpty reports whether the map holds no entities.
func (m *Map[T]) IsEmpty() bool {
	return len(m.items) == 0
}

// Keys returns the computed unique names, in no particular order.
func (m *Map[T]) Keys() []string {
	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	return keys
}

// Values returns the stored entities, in no particular order.
func (m *Map[T]) Values() []T {
	values := make([]T, 0, len(m.items))
	for _, v := range m.items {
		values = append(values, v)
	}
	return values
}

// Drain removes and returns every entity, leaving the map empty. Used to
// transfer ownership between containers.
func (m *Map[T]) Drain() []T {
	values := m.Values()
	m.items = make(map[string]T)
	return values
}

// Extend drains src into m, last-write-wins on key collision. src is empty
// afterwards. A nil src is a no-op.
func (m *Map[T]) Extend(src *Map[T]) {
	if src == nil {
		return
	}
	for _, v := range src.Drain() {
		m.Add(v)
	}
}

// MarshalJSON serializes the map as a plain array of its values. Keys are not
// serialized; they are always recomputed.
func (m *Map[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Values())
}

// UnmarshalJSON deserializes a JSON array into the map, re-deriving every key.
// Two elements computing the same key fail the decode with a
// DuplicateKeyError: duplication in remote data is a contract violation, not
// a legitimate update.
func (m *Map[T]) UnmarshalJSON(data []byte) error {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return err
	}

	items := make(map[string]T, len(elems))
	for _, raw := range elems {
		o, err := decodeElement[T](raw)
		if err != nil {
			return err
		}
		key := o.UniqueName()
		if _, dup := items[key]; dup {
			return &DuplicateKeyError{Key: key}
		}
		items[key] = o
	}

	m.items = items
	return nil
}

// decodeElement unmarshals one element, allocating the pointee when T is a
// pointer type (the usual case: maps hold shared *Entity instances).
func decodeElement[T Object](raw json.RawMessage) (T, error) {
	var o T
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Pointer {
		v := reflect.New(t.Elem())
		if err := json.Unmarshal(raw, v.Interface()); err != nil {
			return o, err
		}
		return v.Interface().(T), nil
	}
	if err := json.Unmarshal(raw, &o); err != nil {
		return o, err
	}
	return o, nil
}

// References derives a RefMap from a map of full entities by calling
// Reference on each value. The source map is read, never mutated; the full
// entities and their references coexist independently.
func References[R Object, T Referencer[R]](m *Map[T]) *RefMap[R] {
	refs := NewRefMap[R]()
	if m == nil {
		return refs
	}
	for _, v := range m.items {
		refs.Add(v.Reference())
	}
	return refs
}
