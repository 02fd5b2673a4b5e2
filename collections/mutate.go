package collections

import "github.com/hasbyte1/go-arrayy/value"

// ─────────────────────────────────────────────────────────────────────────────
// In-place operations
//
// Every method in this file mutates the receiver and returns it.
// ─────────────────────────────────────────────────────────────────────────────

// Add appends v, or stores it at key[0] when a key is given. Mutates c.
func (c *Collection) Add(v any, key ...any) *Collection {
	if len(key) > 0 && key[0] != nil {
		return c.Set(key[0], v)
	}
	c.data.Append(value.From(v))
	return c
}

// Push appends values in order. Mutates c.
func (c *Collection) Push(values ...any) *Collection {
	for _, v := range values {
		c.data.Append(value.From(v))
	}
	return c
}

// Unshift inserts values at the front. Integer keys are renumbered, string
// keys kept. Mutates c.
func (c *Collection) Unshift(values ...any) *Collection {
	out := value.NewMap()
	for _, v := range values {
		out.Append(value.From(v))
	}
	for k, v := range c.data.All() {
		if k.IsInt() {
			out.Append(v)
		} else {
			out.Set(k, v)
		}
	}
	c.data = out
	return c
}

// Pop removes and returns the last value. It reports false for an empty
// collection. Mutates c.
func (c *Collection) Pop() (any, bool) {
	if c.IsEmpty() {
		return nil, false
	}
	k, v := c.data.At(c.data.Len() - 1)
	c.data.Delete(k)
	c.data.RecomputeNext()
	return c.export(v), true
}

// Shift removes and returns the first value, renumbering the remaining
// integer keys. It reports false for an empty collection. Mutates c.
func (c *Collection) Shift() (any, bool) {
	if c.IsEmpty() {
		return nil, false
	}
	k, v := c.data.At(0)
	c.data.Delete(k)
	c.data = reindexShared(c.data)
	return c.export(v), true
}

// Clear removes every entry. Mutates c.
func (c *Collection) Clear() *Collection {
	c.data.Clear()
	return c
}

// Reindex renumbers all keys from 0, dropping string keys. Mutates c.
func (c *Collection) Reindex() *Collection {
	out := value.NewMap()
	for _, v := range c.data.All() {
		out.Append(v)
	}
	c.data = out
	return c
}

// Walk replaces every value with fn(value, key). With recursive set, fn
// is applied to the leaves of nested containers instead of the containers
// themselves. Mutates c.
//
//	c.Walk(func(v, _ any) any { return v.(int) * 2 })
func (c *Collection) Walk(fn func(v, key any) any, recursive ...bool) *Collection {
	walk(c, c.data, fn, len(recursive) > 0 && recursive[0])
	return c
}

func walk(c *Collection, m *value.Map, fn func(v, key any) any, recursive bool) {
	for k, v := range m.All() {
		if nested, ok := v.AsMap(); ok && recursive {
			walk(c, nested, fn, true)
			continue
		}
		m.Set(k, value.From(fn(c.export(v), k.Any())))
	}
}

// reindexShared renumbers integer keys without copying values.
func reindexShared(m *value.Map) *value.Map {
	out := value.NewMap()
	for k, v := range m.All() {
		if k.IsInt() {
			out.Append(v)
		} else {
			out.Set(k, v)
		}
	}
	return out
}
