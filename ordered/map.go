// Package ordered provides an insertion-ordered map.
package ordered

import (
	"fmt"
	"iter"
	"strings"
)

// Map keeps values by key and iterates in first-insertion order. Setting an
// existing key replaces its value but keeps its position. The zero value is
// ready to use; Map is not safe for concurrent mutation.
type Map[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// New creates a map with room for size entries.
func New[K comparable, V any](size int) *Map[K, V] {
	return &Map[K, V]{
		keys:   make([]K, 0, size),
		values: make(map[K]V, size),
	}
}

// Of builds a map from pairs, in order.
func Of[K comparable, V any](pairs ...Pair[K, V]) *Map[K, V] {
	m := New[K, V](len(pairs))
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}
	return m
}

// Pair is a single key/value entry.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Set stores value under key.
func (m *Map[K, V]) Set(key K, value V) {
	if m.values == nil {
		m.values = make(map[K]V)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Has returns true if key is present.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Len returns number of entries.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns a copy of the keys in order.
func (m *Map[K, V]) Keys() []K {
	if m == nil {
		return nil
	}
	return append([]K(nil), m.keys...)
}

// Values returns the values in key order.
func (m *Map[K, V]) Values() []V {
	if m == nil {
		return nil
	}
	out := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, m.values[k])
	}
	return out
}

// All iterates entries in order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Pairs returns the entries in order.
func (m *Map[K, V]) Pairs() []Pair[K, V] {
	if m == nil {
		return nil
	}
	out := make([]Pair[K, V], 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, Pair[K, V]{Key: k, Value: m.values[k]})
	}
	return out
}

// String renders {k1=v1, k2=v2} in order.
func (m *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	i := 0
	for k, v := range m.All() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v=%v", k, v)
		i++
	}
	b.WriteByte('}')
	return b.String()
}
