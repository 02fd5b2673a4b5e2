package collections

import (
	"fmt"
	"iter"
	"reflect"
	"strings"

	"github.com/hasbyte1/go-arrayy/arr"
	"github.com/hasbyte1/go-arrayy/value"
)

// Collection is an ordered key-value container with a fluent API.
//
// Keys are ints or strings; decimal strings such as "3" are stored as int
// keys. Values are loosely typed: nil, bool, int, float64, string, nested
// collections, or any other Go value kept as an opaque object.
//
// Every method is either mutating (it changes c and returns c itself) or
// copy-producing (it returns a new, independent Collection and leaves c
// untouched). The doc comment of each mutating method says so; everything
// else copies.
//
// A Collection is not safe for concurrent mutation.
type Collection struct {
	data *value.Map
	opts Options
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a list collection from the given values.
//
//	c := collections.New(1, "two", 3.0)
func New(values ...any) *Collection {
	return &Collection{data: value.ListOf(values...), opts: DefaultOptions()}
}

// Empty returns a collection with no entries.
func Empty() *Collection {
	return &Collection{data: value.NewMap(), opts: DefaultOptions()}
}

// From creates a collection from a slice, array, Go map, *value.Map,
// another *Collection, or a struct (see [FromObject]). Go map keys are
// ordered naturally since Go maps have no order. A bare string becomes a
// one-element list and nil becomes an empty collection; any other scalar
// fails with [ErrInvalidInput].
//
// The input is deep-copied: later changes to data do not affect the
// collection.
func From(data any) (*Collection, error) {
	return NewWithOptions(DefaultOptions(), data)
}

// MustFrom is like [From] but panics on error.
func MustFrom(data any) *Collection {
	c, err := From(data)
	if err != nil {
		panic(err)
	}
	return c
}

// NewWithOptions is like [From] with custom options.
func NewWithOptions(opts Options, data any) (*Collection, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	m, err := toMap(data)
	if err != nil {
		return nil, err
	}
	return &Collection{data: m, opts: opts}, nil
}

func toMap(data any) (*value.Map, error) {
	v := value.From(data)
	switch v.Kind() {
	case value.KindNull:
		return value.NewMap(), nil
	case value.KindString:
		return value.ListOf(v), nil
	case value.KindList, value.KindMap:
		m, _ := v.AsMap()
		return m, nil
	case value.KindObject:
		if isStruct(data) {
			return objectMap(data)
		}
	}
	return nil, fmt.Errorf("%w: %s (%T)", ErrInvalidInput, v.Kind(), data)
}

func isStruct(x any) bool {
	t := reflect.TypeOf(x)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t != nil && t.Kind() == reflect.Struct
}

// derive wraps m in a new collection sharing c's options.
func (c *Collection) derive(m *value.Map) *Collection {
	return &Collection{data: m, opts: c.opts}
}

// Options returns the collection's options.
func (c *Collection) Options() Options { return c.opts }

// WithOptions returns a copy of c using opts.
func (c *Collection) WithOptions(opts Options) (*Collection, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Collection{data: c.data.Clone(), opts: opts}, nil
}

// Copy returns an independent deep copy of c.
func (c *Collection) Copy() *Collection { return c.derive(c.data.Clone()) }

// OrderedMap returns the live backing map. It lets value.From and the arr
// package read a collection without converting it; callers must not
// retain or mutate the result. Use [Collection.ToMap] for a copy.
func (c *Collection) OrderedMap() *value.Map {
	if c == nil {
		return nil
	}
	return c.data
}

// export converts a stored value into its public form: containers become
// independent collections, everything else a plain Go value.
func (c *Collection) export(v value.Value) any {
	if m, ok := v.AsMap(); ok {
		return c.derive(m.Clone())
	}
	return value.Native(v)
}

func (c *Collection) notation() arr.Notation { return c.opts.notation() }

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the value at key, or def[0] (or nil) when it does not
// resolve. String keys are paths: "user.address.city", "tags[0]",
// "users.*.name". Other keys (ints, bools, floats) address the top level
// directly. A miss is never an error.
func (c *Collection) Get(key any, def ...any) any {
	if v, ok := c.lookup(key); ok {
		return c.export(v)
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

func (c *Collection) lookup(key any) (value.Value, bool) {
	if s, ok := key.(string); ok {
		return arr.Get(c.data, s, c.notation())
	}
	k, ok := value.KeyOf(key)
	if !ok {
		return value.Value{}, false
	}
	return c.data.Get(k)
}

// Set stores v at key, creating intermediate levels for paths. Keys that
// cannot be keys (slices, maps) are ignored. Mutates c.
func (c *Collection) Set(key any, v any) *Collection {
	if s, ok := key.(string); ok {
		arr.Set(c.data, s, value.From(v), c.notation())
		return c
	}
	if k, ok := value.KeyOf(key); ok {
		c.data.Set(k, value.From(v))
	}
	return c
}

// SetAndGet stores v at key and returns the stored value as read back.
// Mutates c.
func (c *Collection) SetAndGet(key any, v any) any {
	return c.Set(key, v).Get(key)
}

// Has reports whether key resolves, including when it holds nil, false or
// an empty value.
func (c *Collection) Has(key any) bool {
	if s, ok := key.(string); ok {
		return arr.Has(c.data, s, c.notation())
	}
	k, ok := value.KeyOf(key)
	return ok && c.data.Has(k)
}

// Remove deletes every given key or path that resolves; missing keys are
// ignored. Mutates c.
func (c *Collection) Remove(keys ...any) *Collection {
	for _, key := range keys {
		if s, ok := key.(string); ok {
			arr.Forget(c.data, s, c.notation())
			continue
		}
		if k, ok := value.KeyOf(key); ok {
			c.data.Delete(k)
		}
	}
	return c
}

// OffsetGet is the indexed-read form of [Collection.Get].
func (c *Collection) OffsetGet(key any) any { return c.Get(key) }

// OffsetSet is the indexed-write form of [Collection.Set]; a nil key
// appends. Mutates c.
func (c *Collection) OffsetSet(key any, v any) *Collection {
	if key == nil {
		c.data.Append(value.From(v))
		return c
	}
	return c.Set(key, v)
}

// OffsetExists is the indexed form of [Collection.Has].
func (c *Collection) OffsetExists(key any) bool { return c.Has(key) }

// OffsetUnset is the indexed form of [Collection.Remove]. Mutates c.
func (c *Collection) OffsetUnset(key any) *Collection { return c.Remove(key) }

// Count returns the number of top-level entries.
func (c *Collection) Count() int { return c.data.Len() }

// Size is an alias for [Collection.Count].
func (c *Collection) Size() int { return c.data.Len() }

// Length is an alias for [Collection.Count].
func (c *Collection) Length() int { return c.data.Len() }

// IsEmpty reports whether the collection has no entries.
func (c *Collection) IsEmpty() bool { return c.data.Len() == 0 }

// IsNotEmpty reports whether the collection has at least one entry.
func (c *Collection) IsNotEmpty() bool { return c.data.Len() > 0 }

// IsList reports whether the keys are exactly 0..Count()-1 in order.
func (c *Collection) IsList() bool { return c.data.IsList() }

// IsAssoc reports whether the collection is non-empty and every key is a
// string.
func (c *Collection) IsAssoc() bool {
	if c.IsEmpty() {
		return false
	}
	for k := range c.data.All() {
		if k.IsInt() {
			return false
		}
	}
	return true
}

// IsMultiArray reports whether any value is itself a container.
func (c *Collection) IsMultiArray() bool {
	for _, v := range c.data.All() {
		if v.IsContainer() {
			return true
		}
	}
	return false
}

// Keys returns the keys as a new list collection.
func (c *Collection) Keys() *Collection {
	out := value.NewMap()
	for k := range c.data.All() {
		out.Append(k.Value())
	}
	return c.derive(out)
}

// Values returns the values as a new list collection.
func (c *Collection) Values() *Collection { return c.derive(arr.List(c.data)) }

// Iter iterates key/value pairs in order.
//
//	for k, v := range c.Iter() { ... }
func (c *Collection) Iter() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for k, v := range c.data.All() {
			if !yield(k.Any(), c.export(v)) {
				return
			}
		}
	}
}

// First returns the first value. It reports false for an empty collection.
func (c *Collection) First() (any, bool) {
	if c.IsEmpty() {
		return nil, false
	}
	_, v := c.data.At(0)
	return c.export(v), true
}

// Last returns the last value. It reports false for an empty collection.
func (c *Collection) Last() (any, bool) {
	if c.IsEmpty() {
		return nil, false
	}
	_, v := c.data.At(c.data.Len() - 1)
	return c.export(v), true
}

// ToArray returns the contents as plain Go values: []any when the keys
// are 0..n-1, map[string]any otherwise, recursively.
func (c *Collection) ToArray() any {
	return value.Native(value.FromMap(c.data))
}

// ToMap returns a deep copy of the ordered backing map.
func (c *Collection) ToMap() *value.Map { return c.data.Clone() }

// ─────────────────────────────────────────────────────────────────────────────
// Rendering
// ─────────────────────────────────────────────────────────────────────────────

// ToString joins the coerced top-level values with ",".
//
//	New("foo bar", "UTF-8").ToString() // → "foo bar,UTF-8", nil
//	New(-9, 1, 0, false).ToString()    // → "-9,1,0,", nil
//
// A nested container or an object without a string form fails with an
// error matching value.ErrCoercion.
func (c *Collection) ToString() (string, error) {
	parts := make([]string, 0, c.Count())
	for _, v := range c.data.All() {
		s, err := value.ToScalarString(v)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ","), nil
}

// String implements fmt.Stringer. It falls back to %v of [Collection.ToArray]
// when [Collection.ToString] fails.
func (c *Collection) String() string {
	s, err := c.ToString()
	if err != nil {
		return fmt.Sprintf("%v", c.ToArray())
	}
	return s
}

// Implode joins the coerced values with sep. Nested containers are
// imploded recursively with the same separator.
func (c *Collection) Implode(sep string) (string, error) {
	return implode(c.data, sep)
}

func implode(m *value.Map, sep string) (string, error) {
	parts := make([]string, 0, m.Len())
	for _, v := range m.All() {
		if nested, ok := v.AsMap(); ok {
			s, err := implode(nested, sep)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
			continue
		}
		s, err := value.ToScalarString(v)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, sep), nil
}

// Dump prints the JSON form of the collection to stdout and returns c.
// Useful for debugging in a method chain.
func (c *Collection) Dump() *Collection {
	s, err := c.ToJSON()
	if err != nil {
		fmt.Println(c.String())
		return c
	}
	fmt.Println(s)
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Conditional helpers
// ─────────────────────────────────────────────────────────────────────────────

// Tap calls fn with c and returns c, for side effects inside a chain.
func (c *Collection) Tap(fn func(*Collection)) *Collection {
	fn(c)
	return c
}

// When applies fn when condition is true, otherwise returns c.
func (c *Collection) When(condition bool, fn func(*Collection) *Collection) *Collection {
	if condition {
		return fn(c)
	}
	return c
}

// Unless applies fn when condition is false, otherwise returns c.
func (c *Collection) Unless(condition bool, fn func(*Collection) *Collection) *Collection {
	return c.When(!condition, fn)
}
