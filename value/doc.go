// Package value defines the loose-typed data model shared by the arr and
// collections packages.
//
// # Values
//
// A [Value] is a closed tagged union over null, bool, int, float, string,
// an ordered nested [Map], and an opaque Go object:
//
//	v := value.From([]any{1, "two", nil})
//	v.Kind()                      // → KindList
//	value.LooseEqual(value.Int(1), value.String("1")) // → true
//
// Lists and maps share one representation: an ordered [Map] whose keys are
// normalised [Key]s. [Value.Kind] reports KindList when the keys are exactly
// 0..n-1 in order.
//
// # Keys
//
// Keys are either integers or strings. Strings holding a canonical decimal
// integer ("7", "-3", but not "07" or "1.0") are stored as integer keys, so
// "7" and 7 address the same entry.
//
// # Coercion and comparison
//
// [ToScalarString] is the single coercion routine; [LooseEqual] compares
// scalars by their coerced string and composites structurally; [Compare]
// provides the natural ordering used by sorting, min and max.
//
// Portability note: the model mirrors PHP arrays and zvals closely enough
// that data decoded from PHP-produced JSON keeps its key semantics.
package value
