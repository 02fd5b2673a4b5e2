// Package collections provides Collection, an ordered key-value container
// with loosely typed values and a fluent API modelled on PHP arrays.
//
// # Keys and values
//
// Keys are ints or strings and keep insertion order. Decimal strings such
// as "7" are stored as the int key 7, so Get("7") and Get(7) address the
// same entry. Values are nil, bool, int, float64, string, nested
// collections, or any other Go value carried as an opaque object.
//
//	c := collections.MustFrom(map[string]any{
//	    "user": map[string]any{"name": "Ada", "langs": []any{"en", "fr"}},
//	})
//	c.Get("user.name")     // "Ada"
//	c.Get("user.langs[1]") // "fr"
//	c.Has("user.email")    // false
//
// # Mutating and copy-producing methods
//
// Every method belongs to one of two groups. Mutating methods change the
// receiver and return the same *Collection:
//
//	Set, SetAndGet, Remove, Offset{Set,Unset}, Add, Push, Unshift, Pop,
//	Shift, Clear, Reindex, Walk, Sort, SortKeys, Sorter,
//	SortValueKeepIndex, SortValueNewIndex, CustomSortValues, CustomSortKeys
//
// Every other method returns a new, independent collection and leaves the
// receiver untouched:
//
//	odd := collections.New(1, 2, 3, 4).Filter(func(v, _ any) bool {
//	    return v.(int)%2 != 0
//	}) // {0: 1, 2: 3}
//
// Nested containers handed to callbacks or returned by Get are copies as
// well; changing them never affects the collection they came from.
//
// # Loose equality
//
// Contains, SearchIndex, Unique, Diff and Intersection compare values the
// way PHP's == does for scalars: by their string form, so 1, "1" and 1.0
// are equal. See [value.LooseEqual].
//
// # Serialised forms
//
// Collections can be built from and rendered to JSON ([FromJSON],
// [Collection.ToJSON]), JSON with comments ([FromJSONC]), YAML and TOML,
// decoded into structs ([Collection.Decode]) and patched with RFC 6902 /
// RFC 7386 documents ([Collection.Patch], [Collection.MergePatch]).
//
// # Macros
//
// Named functions can be attached at runtime with [RegisterMacro] and called
// through [Collection.Macro].
//
// A Collection is not safe for concurrent mutation; the macro registry is.
package collections
