package value

import (
	"fmt"
	"iter"
	"slices"
)

// Map is an insertion-ordered mapping from [Key] to [Value].
//
// Re-setting an existing key keeps its position. [Map.Append] stores under
// the next free integer index: one past the largest integer key ever stored,
// or 0.
//
// The zero Map is empty and ready to use. A Map is not safe for concurrent
// mutation.
type Map struct {
	keys []Key
	vals map[Key]Value
	next int
}

// NewMap returns an empty Map.
func NewMap() *Map { return makeMap(0) }

func makeMap(capacity int) *Map {
	return &Map{
		keys: make([]Key, 0, capacity),
		vals: make(map[Key]Value, capacity),
	}
}

// ListOf builds a sequential Map from Go values.
func ListOf(values ...any) *Map {
	m := makeMap(len(values))
	for _, v := range values {
		m.Append(From(v))
	}
	return m
}

// MapOf builds a Map from alternating key, value arguments.
// It panics when given an odd number of arguments or an unusable key, and
// is intended for literals in code and tests.
//
//	value.MapOf("name", "Alice", "age", 30)
func MapOf(kv ...any) *Map {
	if len(kv)%2 != 0 {
		panic("value: MapOf requires key/value pairs")
	}
	m := makeMap(len(kv) / 2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := KeyOf(kv[i])
		if !ok {
			panic(fmt.Sprintf("value: MapOf: unusable key %v (%T)", kv[i], kv[i]))
		}
		m.Set(k, From(kv[i+1]))
	}
	return m
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Get returns the value stored at k.
func (m *Map) Get(k Key) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	v, ok := m.vals[k]
	return v, ok
}

// Has reports whether k is present, including when it holds null.
func (m *Map) Has(k Key) bool {
	_, ok := m.Get(k)
	return ok
}

// Set stores v at k, appending k to the order if it is new.
func (m *Map) Set(k Key, v Value) {
	if m.vals == nil {
		m.vals = make(map[Key]Value)
	}
	if _, ok := m.vals[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.vals[k] = v
	if k.isInt && k.n >= m.next {
		m.next = k.n + 1
	}
}

// Append stores v under the next free integer index and returns that key.
func (m *Map) Append(v Value) Key {
	k := IntKey(m.next)
	m.Set(k, v)
	return k
}

// NextIndex returns the key the next Append will use.
func (m *Map) NextIndex() int { return m.next }

// RecomputeNext resets the next free index to one past the largest integer
// key currently stored.
func (m *Map) RecomputeNext() {
	m.next = 0
	for _, k := range m.keys {
		if k.isInt && k.n >= m.next {
			m.next = k.n + 1
		}
	}
}

// Delete removes k and reports whether it was present.
func (m *Map) Delete(k Key) bool {
	if m == nil {
		return false
	}
	if _, ok := m.vals[k]; !ok {
		return false
	}
	delete(m.vals, k)
	if i := slices.Index(m.keys, k); i >= 0 {
		m.keys = slices.Delete(m.keys, i, i+1)
	}
	return true
}

// Index returns the position of k, or -1.
func (m *Map) Index(k Key) int {
	if m == nil {
		return -1
	}
	return slices.Index(m.keys, k)
}

// At returns the entry at position i. It panics if i is out of range.
func (m *Map) At(i int) (Key, Value) {
	k := m.keys[i]
	return k, m.vals[k]
}

// Keys returns a copy of the keys in order.
func (m *Map) Keys() []Key {
	if m == nil {
		return nil
	}
	return slices.Clone(m.keys)
}

// Values returns the values in key order. Containers are shared, not copied.
func (m *Map) Values() []Value {
	out := make([]Value, 0, m.Len())
	for _, v := range m.All() {
		out = append(out, v)
	}
	return out
}

// All iterates entries in order. Entries deleted during iteration are
// skipped; entries added during iteration are not visited.
func (m *Map) All() iter.Seq2[Key, Value] {
	return func(yield func(Key, Value) bool) {
		if m == nil {
			return
		}
		for _, k := range slices.Clone(m.keys) {
			v, ok := m.vals[k]
			if !ok {
				continue
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

// Clear removes every entry and resets the next free index.
func (m *Map) Clear() {
	m.keys = nil
	m.vals = make(map[Key]Value)
	m.next = 0
}

// IsList reports whether the keys are exactly 0..Len()-1 in order.
func (m *Map) IsList() bool {
	if m == nil {
		return true
	}
	for i, k := range m.keys {
		if !k.isInt || k.n != i {
			return false
		}
	}
	return true
}

// Clone returns a deep copy: nested maps are copied, objects are shared.
func (m *Map) Clone() *Map {
	if m == nil {
		return NewMap()
	}
	out := makeMap(len(m.keys))
	for _, k := range m.keys {
		out.keys = append(out.keys, k)
		out.vals[k] = m.vals[k].Clone()
	}
	out.next = m.next
	return out
}
