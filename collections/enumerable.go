package collections

import "iter"

// Enumerable is the read-only surface of [Collection].
//
// Accept Enumerable in your own functions so that callers can pass
// alternative implementations without depending on *Collection.
type Enumerable interface {
	// Count returns the number of top-level entries.
	Count() int

	// Get returns the value at a key or path, or def[0] when it does not
	// resolve.
	Get(key any, def ...any) any

	// Has reports whether a key or path resolves.
	Has(key any) bool

	// Iter iterates key/value pairs in order.
	Iter() iter.Seq2[any, any]

	// IsEmpty reports whether there are no entries.
	IsEmpty() bool

	// ToArray returns the contents as plain Go values.
	ToArray() any
}

var _ Enumerable = (*Collection)(nil)
