package pure

import (
	"iter"
	"slices"
)

// Mapping is a string-keyed collection that iterates in insertion order.
// Setting an existing key replaces its value but keeps its position.
type Mapping[V any] struct {
	keys   []string
	values map[string]V
}

type Pair[V any] struct {
	Key   string
	Value V
}

func NewMapping[V any]() *Mapping[V] {
	return &Mapping[V]{values: make(map[string]V)}
}

func MappingOf[V any](pairs ...Pair[V]) *Mapping[V] {
	m := &Mapping[V]{
		keys:   make([]string, 0, len(pairs)),
		values: make(map[string]V, len(pairs)),
	}
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}
	return m
}

func (m *Mapping[V]) Set(key string, value V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

func (m *Mapping[V]) Get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *Mapping[V]) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Lookup exposes values to named-field lookups (Pluck, ByField).
func (m *Mapping[V]) Lookup(key string) (any, bool) {
	v, ok := m.values[key]
	if !ok {
		return nil, false
	}
	return v, true
}

func (m *Mapping[V]) Len() int {
	return len(m.keys)
}

func (m *Mapping[V]) Keys() []string {
	return slices.Clone(m.keys)
}

func (m *Mapping[V]) Values() []V {
	out := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, m.values[k])
	}
	return out
}

// All yields key/value pairs in insertion order.
func (m *Mapping[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// EachEntry calls fn(value, key, m) for every entry in insertion order.
func EachEntry[V any](m *Mapping[V], fn func(v V, key string, m *Mapping[V])) {
	for k, v := range m.All() {
		fn(v, k, m)
	}
}

func MapEntries[V, U any](m *Mapping[V], fn func(v V, key string) U) []U {
	out := make([]U, 0, m.Len())
	EachEntry(m, func(v V, k string, _ *Mapping[V]) {
		out = append(out, fn(v, k))
	})
	return out
}

func FilterEntries[V any](m *Mapping[V], pred func(V) bool) []V {
	return Filter(m.Values(), pred)
}

func RejectEntries[V any](m *Mapping[V], pred func(V) bool) []V {
	return Reject(m.Values(), pred)
}

// ReduceEntries folds values in insertion order with the same seeding rules as Reduce.
func ReduceEntries[V any](m *Mapping[V], fn func(acc, item V) V, initial Optional[V]) Optional[V] {
	return Reduce(m.Values(), fn, initial)
}

func ReduceEntriesInto[V, A any](m *Mapping[V], fn func(acc A, item V) A, initial A) A {
	return ReduceInto(m.Values(), fn, initial)
}

func ContainsValue[V comparable](m *Mapping[V], target V) bool {
	return Contains(m.Values(), target)
}

func EveryEntry[V any](m *Mapping[V], pred func(V) bool) bool {
	return Every(m.Values(), pred)
}

func SomeEntry[V any](m *Mapping[V], pred func(V) bool) bool {
	return Some(m.Values(), pred)
}
