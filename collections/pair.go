package collections

import (
	"fmt"

	"github.com/hasbyte1/go-arrayy/value"
)

// Pair is one key/value entry of a Collection.
type Pair struct {
	Key   any
	Value any
}

// String returns "key: value".
func (p Pair) String() string {
	return fmt.Sprintf("%v: %v", p.Key, p.Value)
}

// Pairs returns the entries in order.
func (c *Collection) Pairs() []Pair {
	out := make([]Pair, 0, c.Count())
	for k, v := range c.data.All() {
		out = append(out, Pair{Key: k.Any(), Value: c.export(v)})
	}
	return out
}

// FromPairs builds a collection from entries in order. A later pair with
// the same key replaces the earlier value in place; a nil key appends.
//
//	collections.FromPairs(
//		collections.Pair{Key: "b", Value: 2},
//		collections.Pair{Key: "a", Value: 1},
//	) // → {b: 2, a: 1}
func FromPairs(pairs ...Pair) (*Collection, error) {
	m := value.NewMap()
	for _, p := range pairs {
		if p.Key == nil {
			m.Append(value.From(p.Value))
			continue
		}
		k, ok := value.KeyOf(p.Key)
		if !ok {
			return nil, fmt.Errorf("%w: %T cannot be a key", ErrInvalidInput, p.Key)
		}
		m.Set(k, value.From(p.Value))
	}
	return &Collection{data: m, opts: DefaultOptions()}, nil
}
