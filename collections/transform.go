package collections

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hasbyte1/go-arrayy/arr"
	"github.com/hasbyte1/go-arrayy/value"
)

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns the entries for which fns[0](value, key) is true, keeping
// their keys. Without a predicate every entry is kept.
//
//	New(1, 2, 3, 4).Filter(func(v, _ any) bool { return v.(int)%2 != 0 })
//	// → {0: 1, 2: 3}
func (c *Collection) Filter(fns ...func(v, key any) bool) *Collection {
	out := value.NewMap()
	for k, v := range c.data.All() {
		if len(fns) == 0 || fns[0](c.export(v), k.Any()) {
			out.Set(k, v.Clone())
		}
	}
	return c.derive(out)
}

// Reject is the complement of [Collection.Filter].
func (c *Collection) Reject(fn func(v, key any) bool) *Collection {
	return c.Filter(func(v, key any) bool { return !fn(v, key) })
}

// Map returns fn(value) for every entry under the same keys.
func (c *Collection) Map(fn func(v any) any) *Collection {
	out := value.NewMap()
	for k, v := range c.data.All() {
		out.Set(k, value.From(fn(c.export(v))))
	}
	return c.derive(out)
}

// Each returns fn(value, key) for every entry under the same keys.
func (c *Collection) Each(fn func(v, key any) any) *Collection {
	out := value.NewMap()
	for k, v := range c.data.All() {
		out.Set(k, value.From(fn(c.export(v), k.Any())))
	}
	return c.derive(out)
}

// At calls fn(value, key) for every entry and returns c unchanged.
func (c *Collection) At(fn func(v, key any)) *Collection {
	for k, v := range c.data.All() {
		fn(c.export(v), k.Any())
	}
	return c
}

// Reduce folds the entries left to right. The accumulator starts at
// initial[0], or an empty collection when omitted.
func (c *Collection) Reduce(fn func(carry, v, key any) any, initial ...any) any {
	var carry any = c.derive(value.NewMap())
	if len(initial) > 0 {
		carry = initial[0]
	}
	for k, v := range c.data.All() {
		carry = fn(carry, c.export(v), k.Any())
	}
	return carry
}

// Invoke returns fn(value, args...) for every entry under the same keys.
func (c *Collection) Invoke(fn func(v any, args ...any) any, args ...any) *Collection {
	out := value.NewMap()
	for k, v := range c.data.All() {
		out.Set(k, value.From(fn(c.export(v), args...)))
	}
	return c.derive(out)
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// Matches reports whether every entry satisfies fn. It is true for an empty
// collection.
func (c *Collection) Matches(fn func(v, key any) bool) bool {
	for k, v := range c.data.All() {
		if !fn(c.export(v), k.Any()) {
			return false
		}
	}
	return true
}

// MatchesAny reports whether at least one entry satisfies fn. It is also
// true for an empty collection, where nothing contradicts fn.
func (c *Collection) MatchesAny(fn func(v, key any) bool) bool {
	if c.IsEmpty() {
		return true
	}
	for k, v := range c.data.All() {
		if fn(c.export(v), k.Any()) {
			return true
		}
	}
	return false
}

// Find returns the first value satisfying fn. It reports false when none
// does, including for an empty collection.
func (c *Collection) Find(fn func(v, key any) bool) (any, bool) {
	for k, v := range c.data.All() {
		ev := c.export(v)
		if fn(ev, k.Any()) {
			return ev, true
		}
	}
	return nil, false
}

// Contains reports whether some value loosely equals v. An empty
// collection contains nothing, not even nil.
func (c *Collection) Contains(v any) bool {
	_, ok := c.searchKey(value.From(v))
	return ok
}

// ContainsAll reports whether every one of values is contained.
func (c *Collection) ContainsAll(values ...any) bool {
	set := value.NewSet(c.data.Values()...)
	for _, v := range values {
		if !set.Contains(value.From(v)) {
			return false
		}
	}
	return true
}

// ContainsKey reports whether the top-level key exists, without path
// resolution.
func (c *Collection) ContainsKey(key any) bool {
	k, ok := value.KeyOf(key)
	return ok && c.data.Has(k)
}

// SearchIndex returns the key of the first value loosely equal to v.
// It reports false when there is none.
//
//	New(-9, 1, 0, false).SearchIndex(0) // → 2, true
func (c *Collection) SearchIndex(v any) (any, bool) {
	k, ok := c.searchKey(value.From(v))
	if !ok {
		return nil, false
	}
	return k.Any(), true
}

func (c *Collection) searchKey(needle value.Value) (value.Key, bool) {
	for k, v := range c.data.All() {
		if value.LooseEqual(v, needle) {
			return k, true
		}
	}
	return value.Key{}, false
}

// SearchValue returns a one-element list holding the value stored at key,
// or an empty collection when key is absent.
//
//	New("string", "foo").SearchValue(1) // → ["foo"]
func (c *Collection) SearchValue(key any) *Collection {
	out := value.NewMap()
	if v, ok := c.lookup(key); ok {
		out.Append(v.Clone())
	}
	return c.derive(out)
}

// Comparison is the operator used by [Collection.FilterBy].
type Comparison string

const (
	OpEq          Comparison = "eq"
	OpNe          Comparison = "ne"
	OpLt          Comparison = "lt"
	OpLe          Comparison = "le"
	OpGt          Comparison = "gt"
	OpGe          Comparison = "ge"
	OpIn          Comparison = "in"
	OpNotIn       Comparison = "notIn"
	OpContains    Comparison = "contains"
	OpNotContains Comparison = "notContains"
)

// FilterBy keeps the rows whose value at path compares to want with op,
// keeping their keys. A row where path does not resolve is compared as nil.
// Without op, a list want tests membership ([OpIn]) and anything else
// equality ([OpEq]). OpIn and OpNotIn take a list of candidates as want.
// OpContains with a list want matches rows whose value is one of its
// elements; with a scalar want it matches a substring of the row's string
// or an element of the row's container.
//
//	users.FilterBy("age", 18, collections.OpGe)
//	users.FilterBy("role", []any{"admin", "owner"})
func (c *Collection) FilterBy(path string, want any, op ...Comparison) (*Collection, error) {
	w := value.From(want)
	o := OpEq
	switch {
	case len(op) > 0:
		o = op[0]
	case w.IsContainer():
		o = OpIn
	}
	match, err := comparison(o, w)
	if err != nil {
		return nil, err
	}
	n := c.notation()
	out := value.NewMap()
	for k, v := range c.data.All() {
		var got value.Value
		if row, ok := v.AsMap(); ok {
			got, _ = arr.Get(row, path, n)
		}
		if match(got) {
			out.Set(k, v.Clone())
		}
	}
	return c.derive(out), nil
}

func comparison(op Comparison, want value.Value) (func(value.Value) bool, error) {
	switch op {
	case OpEq:
		return func(v value.Value) bool { return value.LooseEqual(v, want) }, nil
	case OpNe:
		return func(v value.Value) bool { return !value.LooseEqual(v, want) }, nil
	case OpLt:
		return func(v value.Value) bool { return value.Compare(v, want) < 0 }, nil
	case OpLe:
		return func(v value.Value) bool { return value.Compare(v, want) <= 0 }, nil
	case OpGt:
		return func(v value.Value) bool { return value.Compare(v, want) > 0 }, nil
	case OpGe:
		return func(v value.Value) bool { return value.Compare(v, want) >= 0 }, nil
	case OpIn, OpNotIn:
		set := value.NewSet(operand(want).Values()...)
		return func(v value.Value) bool { return set.Contains(v) == (op == OpIn) }, nil
	case OpContains, OpNotContains:
		if m, ok := want.AsMap(); ok {
			set := value.NewSet(m.Values()...)
			return func(v value.Value) bool { return set.Contains(v) == (op == OpContains) }, nil
		}
		return func(v value.Value) bool { return contains(v, want) == (op == OpContains) }, nil
	}
	return nil, fmt.Errorf("%w: comparison %q", ErrInvalidOption, op)
}

func contains(haystack, needle value.Value) bool {
	if m, ok := haystack.AsMap(); ok {
		return value.NewSet(m.Values()...).Contains(needle)
	}
	if haystack.IsNull() {
		return false
	}
	h, err1 := value.ToScalarString(haystack)
	n, err2 := value.ToScalarString(needle)
	return err1 == nil && err2 == nil && strings.Contains(h, n)
}

// ─────────────────────────────────────────────────────────────────────────────
// Reshaping
// ─────────────────────────────────────────────────────────────────────────────

// Clean drops falsy values: nil, false, 0, 0.0, "", "0" and empty
// containers. The result is re-indexed.
func (c *Collection) Clean() *Collection {
	kept := value.NewMap()
	for k, v := range c.data.All() {
		if value.Truthy(v) {
			kept.Set(k, v)
		}
	}
	return c.derive(arr.Reindex(kept))
}

// Unique keeps the first of each group of loosely equal values, under
// keys 0..n-1.
func (c *Collection) Unique() *Collection {
	seen := value.NewSet()
	out := value.NewMap()
	for _, v := range c.data.All() {
		if seen.Add(v) {
			out.Append(v.Clone())
		}
	}
	return c.derive(out)
}

// Group partitions entries by the value found at path in each row. Groups
// appear in first-seen order, keyed by the group value. Entries where path
// does not resolve are dropped. With saveKeys each group keeps the original
// keys; otherwise groups are lists.
func (c *Collection) Group(path string, saveKeys bool) *Collection {
	n := c.notation()
	return c.group(func(v value.Value, _ value.Key) (value.Value, bool) {
		row, ok := v.AsMap()
		if !ok {
			return value.Value{}, false
		}
		return arr.Get(row, path, n)
	}, saveKeys)
}

// GroupFunc is like [Collection.Group] with the group value computed by
// fn(value, key). A nil result drops the entry.
func (c *Collection) GroupFunc(fn func(v, key any) any, saveKeys bool) *Collection {
	return c.group(func(v value.Value, k value.Key) (value.Value, bool) {
		return value.From(fn(c.export(v), k.Any())), true
	}, saveKeys)
}

func (c *Collection) group(grouper func(value.Value, value.Key) (value.Value, bool), saveKeys bool) *Collection {
	groups := value.NewMap()
	for k, v := range c.data.All() {
		g, ok := grouper(v, k)
		if !ok || g.IsNull() {
			continue
		}
		gk, ok := value.KeyFromValue(g)
		if !ok {
			continue
		}
		cur, ok := groups.Get(gk)
		if !ok {
			cur = value.FromMap(value.NewMap())
			groups.Set(gk, cur)
		}
		bucket, _ := cur.AsMap()
		if saveKeys {
			bucket.Set(k, v.Clone())
		} else {
			bucket.Append(v.Clone())
		}
	}
	return c.derive(groups)
}

// IndexBy re-keys row-shaped entries by each row's value at path. Rows
// lacking path are dropped; later rows overwrite earlier ones with the same
// index.
func (c *Collection) IndexBy(path string) *Collection {
	n := c.notation()
	out := value.NewMap()
	for _, v := range c.data.All() {
		row, ok := v.AsMap()
		if !ok {
			continue
		}
		iv, ok := arr.Get(row, path, n)
		if !ok {
			continue
		}
		if k, ok := value.KeyFromValue(iv); ok {
			out.Set(k, v.Clone())
		}
	}
	return c.derive(out)
}

// GetColumn extracts column from every row, like PHP's array_column. An
// empty column yields whole rows. When index is non-empty and resolves to a
// usable key in a row, that row's cell is stored under it; otherwise cells
// are appended.
//
//	rows.GetColumn("title", "id") // → {3: "Foo", 5: "Bar"}
func (c *Collection) GetColumn(column, index string) *Collection {
	n := c.notation()
	out := value.NewMap()
	for _, v := range c.data.All() {
		row, ok := v.AsMap()
		if !ok {
			continue
		}
		cell := v
		if column != "" {
			if cell, ok = arr.Get(row, column, n); !ok {
				continue
			}
		}
		if index != "" {
			if iv, ok := arr.Get(row, index, n); ok {
				if k, ok := value.KeyFromValue(iv); ok {
					out.Set(k, cell.Clone())
					continue
				}
			}
		}
		out.Append(cell.Clone())
	}
	return c.derive(out)
}

// Flip swaps keys and values. Values that cannot be keys are dropped; a
// later duplicate value overwrites the earlier key.
func (c *Collection) Flip() *Collection { return c.derive(arr.Flip(c.data)) }

// Dot flattens nested containers into one level keyed by joined paths.
func (c *Collection) Dot() *Collection {
	return c.derive(arr.Dot(c.data, c.notation()))
}

// Undot expands path keys into nested containers; the inverse of
// [Collection.Dot].
func (c *Collection) Undot() *Collection {
	return c.derive(arr.Undot(c.data, c.notation()))
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

// operand converts the argument of a set or merge operation into a map.
// A bare scalar is treated as a one-element list.
func operand(other any) *value.Map {
	v := value.From(other)
	if m, ok := v.AsMap(); ok {
		return m
	}
	if v.IsNull() {
		return value.NewMap()
	}
	return value.ListOf(v)
}

// Diff returns the values of c that loosely equal no value of other,
// re-indexed, in c's order.
func (c *Collection) Diff(other any) *Collection {
	return c.derive(without(c.data, operand(other)))
}

// DiffReverse returns the values of other that loosely equal no value of
// c, re-indexed, in other's order.
func (c *Collection) DiffReverse(other any) *Collection {
	return c.derive(without(operand(other), c.data))
}

func without(m, exclude *value.Map) *value.Map {
	set := value.NewSet(exclude.Values()...)
	kept := value.NewMap()
	for k, v := range m.All() {
		if !set.Contains(v) {
			kept.Set(k, v)
		}
	}
	return arr.Reindex(kept)
}

// Intersection returns the values of c that loosely equal some value of
// other, re-indexed.
func (c *Collection) Intersection(other any) *Collection {
	set := value.NewSet(operand(other).Values()...)
	kept := value.NewMap()
	for k, v := range c.data.All() {
		if set.Contains(v) {
			kept.Set(k, v)
		}
	}
	return c.derive(arr.Reindex(kept))
}

// Intersects reports whether c and other share a loosely equal value. A
// bare scalar other is treated as a one-element set.
func (c *Collection) Intersects(other any) bool {
	return c.Intersection(other).IsNotEmpty()
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Firsts returns the first n entries, re-indexed. n <= 0 yields an empty
// collection.
func (c *Collection) Firsts(n int) *Collection {
	if n <= 0 {
		return c.derive(value.NewMap())
	}
	return c.derive(arr.Slice(c.data, 0, n, false))
}

// Lasts returns the last n entries in their original order, re-indexed.
// n <= 0 yields an empty collection.
func (c *Collection) Lasts(n int) *Collection {
	if n <= 0 {
		return c.derive(value.NewMap())
	}
	return c.derive(arr.Slice(c.data, -n, n, false))
}

// Initial returns everything but the last to entries (default 1),
// re-indexed. Initial(0) returns everything.
func (c *Collection) Initial(to ...int) *Collection {
	n := 1
	if len(to) > 0 {
		n = to[0]
	}
	if n <= 0 {
		return c.derive(arr.Reindex(c.data))
	}
	return c.derive(arr.Slice(c.data, 0, -n, false))
}

// Rest returns everything from position from (default 1) onward,
// re-indexed.
func (c *Collection) Rest(from ...int) *Collection {
	n := 1
	if len(from) > 0 {
		n = from[0]
	}
	return c.derive(arr.Slice(c.data, n, c.Count(), false))
}

// Slice follows array_slice: a negative offset counts from the end and a
// negative length stops that many entries before the end. Integer keys are
// renumbered unless preserveKeys[0] is true.
func (c *Collection) Slice(offset, length int, preserveKeys ...bool) *Collection {
	return c.derive(arr.Slice(c.data, offset, length, len(preserveKeys) > 0 && preserveKeys[0]))
}

// Chunk splits the collection into a list of collections of at most size
// entries.
func (c *Collection) Chunk(size int, preserveKeys ...bool) (*Collection, error) {
	if size <= 0 {
		return nil, ErrInvalidChunkSize
	}
	out := value.NewMap()
	for _, chunk := range arr.Chunk(c.data, size, len(preserveKeys) > 0 && preserveKeys[0]) {
		out.Append(value.FromMap(chunk))
	}
	return c.derive(out), nil
}

// Split divides the collection into parts groups of equal size, the last
// one possibly shorter.
//
//	From(map[string]any{"a": 1, "b": 2}).Split(2, true) // → [{a: 1}, {b: 2}]
func (c *Collection) Split(parts int, preserveKeys ...bool) (*Collection, error) {
	if parts <= 0 {
		return nil, ErrInvalidChunkSize
	}
	if c.IsEmpty() {
		return c.derive(value.NewMap()), nil
	}
	return c.Chunk((c.Count()+parts-1)/parts, preserveKeys...)
}

// Pad extends the collection to |size| entries with v, on the right for a
// positive size and on the left for a negative one.
func (c *Collection) Pad(size int, v any) *Collection {
	return c.derive(arr.Pad(c.data, size, value.From(v)))
}

// Reverse returns the entries in reverse order with integer keys
// renumbered.
func (c *Collection) Reverse() *Collection { return c.derive(arr.Reverse(c.data, false)) }

// ─────────────────────────────────────────────────────────────────────────────
// Copy-producing structural edits
// ─────────────────────────────────────────────────────────────────────────────

// Append returns a copy with v added at the end, under key[0] if given.
func (c *Collection) Append(v any, key ...any) *Collection {
	return c.Copy().Add(v, key...)
}

// Prepend returns a copy with v added at the front, under key[0] if given.
// Integer keys are renumbered.
func (c *Collection) Prepend(v any, key ...any) *Collection {
	if len(key) == 0 || key[0] == nil {
		return c.Copy().Unshift(v)
	}
	k, ok := value.KeyOf(key[0])
	if !ok {
		return c.Copy()
	}
	out := value.NewMap()
	out.Set(k, value.From(v))
	for ek, ev := range c.data.All() {
		if ek != k {
			out.Set(ek, ev.Clone())
		}
	}
	return c.derive(out)
}

// RemoveFirst returns a copy without the first entry; integer keys are
// renumbered.
func (c *Collection) RemoveFirst() *Collection {
	cp := c.Copy()
	cp.Shift()
	return cp
}

// RemoveLast returns a copy without the last entry; keys are kept.
func (c *Collection) RemoveLast() *Collection {
	cp := c.Copy()
	cp.Pop()
	return cp
}

// RemoveValue returns a copy without any value loosely equal to v,
// re-indexed.
func (c *Collection) RemoveValue(v any) *Collection {
	needle := value.From(v)
	kept := value.NewMap()
	for k, e := range c.data.All() {
		if !value.LooseEqual(e, needle) {
			kept.Set(k, e)
		}
	}
	return c.derive(arr.Reindex(kept))
}

// Replace returns a copy with oldKey removed and newValue stored at newKey.
func (c *Collection) Replace(oldKey, newKey, newValue any) *Collection {
	return c.Copy().Remove(oldKey).Set(newKey, newValue)
}

// ReplaceOneValue returns a copy where the first value loosely equal to
// search is replaced.
func (c *Collection) ReplaceOneValue(search, replacement any) *Collection {
	cp := c.Copy()
	if k, ok := cp.searchKey(value.From(search)); ok {
		cp.data.Set(k, value.From(replacement))
	}
	return cp
}

// ReplaceValues returns a copy where every string value has each occurrence
// of search replaced.
//
//	New("foobar", "barfoo").ReplaceValues("foo", "replaced")
//	// → ["replacedbar", "barreplaced"]
func (c *Collection) ReplaceValues(search, replacement string) *Collection {
	out := value.NewMap()
	for k, v := range c.data.All() {
		if s, ok := v.AsString(); ok {
			v = value.String(strings.ReplaceAll(s, search, replacement))
		}
		out.Set(k, v.Clone())
	}
	return c.derive(out)
}

// ReplaceKeys returns a copy with keys renamed according to mapping
// (old key → new key). Unmapped keys pass through; a renamed key that
// collides with a later one is overwritten by it.
func (c *Collection) ReplaceKeys(mapping any) *Collection {
	renames := operand(mapping)
	out := value.NewMap()
	for k, v := range c.data.All() {
		if nv, ok := renames.Get(k); ok {
			if nk, ok := value.KeyFromValue(nv); ok {
				k = nk
			}
		}
		out.Set(k, v.Clone())
	}
	return c.derive(out)
}

// ReplaceAllKeys returns a collection pairing keys with the current values
// in order.
func (c *Collection) ReplaceAllKeys(keys []any) (*Collection, error) {
	return c.combine(valuesOf(keys), c.data.Values())
}

// ReplaceAllValues returns a collection pairing the current keys with
// values in order.
func (c *Collection) ReplaceAllValues(values []any) (*Collection, error) {
	keys := make([]value.Value, 0, c.Count())
	for k := range c.data.All() {
		keys = append(keys, k.Value())
	}
	return c.combine(keys, valuesOf(values))
}

func (c *Collection) combine(keys, values []value.Value) (*Collection, error) {
	m, err := arr.Combine(keys, values)
	if err != nil {
		return nil, ErrMismatchedLengths
	}
	return c.derive(m), nil
}

func valuesOf(xs []any) []value.Value {
	out := make([]value.Value, len(xs))
	for i, x := range xs {
		out[i] = value.From(x)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregates
// ─────────────────────────────────────────────────────────────────────────────

// Sum adds the numeric reading of every value; non-numeric values count
// as 0 and true as 1.
func (c *Collection) Sum() float64 {
	var sum float64
	for _, v := range c.data.All() {
		f, _ := value.ToFloat(v)
		sum += f
	}
	return sum
}

// Average returns the mean of every value's numeric reading, rounded half
// away from zero to decimals[0] places (default 0). An empty collection
// averages to 0.
//
//	New(-9, 1, 0, false).Average(1)   // → -2
//	New(-9, -8, -7, 1.32).Average(2) // → -5.67
func (c *Collection) Average(decimals ...int) float64 {
	if c.IsEmpty() {
		return 0
	}
	d := 0
	if len(decimals) > 0 {
		d = decimals[0]
	}
	return round(c.Sum()/float64(c.Count()), d)
}

// round rounds half away from zero like PHP's round: the scaled value is
// first cut to 15 significant digits so 1.005 rounds to 1.01.
func round(f float64, decimals int) float64 {
	p := math.Pow10(decimals)
	scaled, err := strconv.ParseFloat(strconv.FormatFloat(f*p, 'g', 15, 64), 64)
	if err != nil {
		scaled = f * p
	}
	return math.Round(scaled) / p
}

// Max returns the greatest value by natural ordering, or 0 for an empty
// collection.
func (c *Collection) Max() any { return c.extreme(1) }

// Min returns the smallest value by natural ordering, or 0 for an empty
// collection.
func (c *Collection) Min() any { return c.extreme(-1) }

func (c *Collection) extreme(sign int) any {
	if c.IsEmpty() {
		return 0
	}
	_, best := c.data.At(0)
	for _, v := range c.data.All() {
		if value.Compare(v, best)*sign > 0 {
			best = v
		}
	}
	return c.export(best)
}
