// Package arr provides the path resolver, merge engine and re-indexing
// helpers that operate directly on ordered [value.Map] data, in the spirit
// of Laravel's Arr facade and PHP's array_* functions.
//
// # Path notation
//
// A path such as "users.*.tags[0]" is parsed once into typed segments
// ([SegmentKey], [SegmentIndex], [SegmentWildcard]) and then resolved
// against nested maps:
//
//	p := arr.DefaultNotation.Parse("user.address.city")
//	v, ok := p.Lookup(m)
//
// The package-level helpers [Get], [Set], [Has] and [Forget] try an exact
// top-level key before splitting, so keys that themselves contain the
// separator stay addressable.
//
// A missing path is never an error: lookups report false and removals are
// no-ops.
//
// # Merging
//
// [Merge] implements four strategies, append or prepend crossed with
// renumbering or keeping integer keys, each with an optional recursive
// mode:
//
//	arr.Merge(a, b, arr.AppendNewIndex, false)  // array_merge(a, b)
//	arr.Merge(a, b, arr.AppendKeepIndex, false) // array_replace(a, b)
//
// # Portability
//
// The helpers map one-to-one onto PHP's array_slice, array_chunk,
// array_reverse, array_pad, array_flip and array_combine.
package arr
