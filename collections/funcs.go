package collections

import "github.com/hasbyte1/go-arrayy/value"

// This file contains package-level generic functions. Go methods cannot
// introduce type parameters, so typed views of a Collection's loosely typed
// values live here:
//
//	names := collections.MapTo(users, func(v, _ any) string {
//	    return v.(*collections.Collection).Get("name").(string)
//	})

// ValuesOf returns the values that have type T, in order. Values of any
// other type are skipped.
//
//	collections.ValuesOf[int](collections.New(1, "a", 2)) // → []int{1, 2}
func ValuesOf[T any](c *Collection) []T {
	out := make([]T, 0, c.Count())
	for _, v := range c.data.All() {
		if t, ok := c.export(v).(T); ok {
			out = append(out, t)
		}
	}
	return out
}

// MapTo applies fn to every entry and returns the results as a []U.
func MapTo[U any](c *Collection, fn func(v, key any) U) []U {
	out := make([]U, 0, c.Count())
	for k, v := range c.data.All() {
		out = append(out, fn(c.export(v), k.Any()))
	}
	return out
}

// ReduceTo folds the entries into a typed accumulator.
//
//	sum := collections.ReduceTo(c, func(acc int, v, _ any) int { return acc + v.(int) }, 0)
func ReduceTo[U any](c *Collection, fn func(acc U, v, key any) U, initial U) U {
	acc := initial
	for k, v := range c.data.All() {
		acc = fn(acc, c.export(v), k.Any())
	}
	return acc
}

// KeyBy builds a Go map keyed by fn(value). When several entries share a
// key, the last one wins.
func KeyBy[K comparable](c *Collection, fn func(v any) K) map[K]any {
	out := make(map[K]any, c.Count())
	for _, v := range c.data.All() {
		ev := c.export(v)
		out[fn(ev)] = ev
	}
	return out
}

// Combine pairs keys[i] with values[i] into a collection, like PHP's
// array_combine. Returns [ErrMismatchedLengths] if the lengths differ.
//
//	c, _ := collections.Combine([]any{"a", "b"}, []any{1, 2})
//	// → {a: 1, b: 2}
func Combine(keys, values []any) (*Collection, error) {
	return Empty().combine(valuesOf(keys), valuesOf(values))
}

// Zip pairs the values of a and b position by position into a list of
// two-element lists. It stops at the shorter collection.
//
//	collections.Zip(collections.New("a", "b"), collections.New(1, 2))
//	// → [["a", 1], ["b", 2]]
func Zip(a, b *Collection) *Collection {
	av, bv := a.data.Values(), b.data.Values()
	out := value.NewMap()
	for i := range min(len(av), len(bv)) {
		out.Append(value.FromMap(value.ListOf(av[i], bv[i])))
	}
	return a.derive(out)
}

// FlattenDeep returns the leaves of c and every nested container, depth
// first, as a list.
//
//	collections.FlattenDeep(collections.New(1, []any{2, []any{3}})) // → [1, 2, 3]
func FlattenDeep(c *Collection) *Collection {
	out := value.NewMap()
	var flatten func(m *value.Map)
	flatten = func(m *value.Map) {
		for _, v := range m.All() {
			if nested, ok := v.AsMap(); ok {
				flatten(nested)
				continue
			}
			out.Append(v.Clone())
		}
	}
	flatten(c.data)
	return c.derive(out)
}
