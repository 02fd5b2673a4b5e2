package collections

import "github.com/hasbyte1/go-arrayy/arr"

// Merge combines c with other using strategy s and returns the result as a
// new collection. other may be a *Collection, a slice, a Go map or a bare
// value (treated as a one-element list). With recursive[0] set, nested
// containers present on both sides are merged with the same strategy.
//
//	a := New(1, 2)
//	a.Merge(New(3), arr.AppendNewIndex)  // → [1, 2, 3]
//	a.Merge(New(3), arr.AppendKeepIndex) // → [3, 2]
func (c *Collection) Merge(other any, s arr.Strategy, recursive ...bool) *Collection {
	return c.derive(arr.Merge(c.data, operand(other), s, len(recursive) > 0 && recursive[0]))
}

// MergeAppendNewIndex appends other after c, renumbering integer keys.
// Colliding string keys take other's value.
func (c *Collection) MergeAppendNewIndex(other any, recursive ...bool) *Collection {
	return c.Merge(other, arr.AppendNewIndex, recursive...)
}

// MergePrependNewIndex puts other before c, renumbering integer keys.
// Colliding string keys keep c's value.
func (c *Collection) MergePrependNewIndex(other any, recursive ...bool) *Collection {
	return c.Merge(other, arr.PrependNewIndex, recursive...)
}

// MergeAppendKeepIndex keeps every key; colliding keys take other's value.
func (c *Collection) MergeAppendKeepIndex(other any, recursive ...bool) *Collection {
	return c.Merge(other, arr.AppendKeepIndex, recursive...)
}

// MergePrependKeepIndex keeps every key; colliding keys keep c's value and
// other's keys come first.
func (c *Collection) MergePrependKeepIndex(other any, recursive ...bool) *Collection {
	return c.Merge(other, arr.PrependKeepIndex, recursive...)
}
