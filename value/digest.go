package value

import (
	"encoding/binary"
	"hash"

	"golang.org/x/crypto/blake2b"
)

// Digest returns a BLAKE2b-256 digest of v such that loosely equal values
// share a digest. Objects without a string form all share one digest and
// must be told apart with [LooseEqual].
func Digest(v Value) [32]byte {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic("value: blake2b: " + err.Error())
	}
	writeCanonical(h, v)
	var out [32]byte
	h.Sum(out[:0])
	return out
}

func writeCanonical(h hash.Hash, v Value) {
	if v.kind == KindMap {
		h.Write([]byte{'{'})
		for k, e := range v.m.All() {
			if k.isInt {
				h.Write([]byte{'i'})
			} else {
				h.Write([]byte{'k'})
			}
			writeString(h, k.String())
			writeCanonical(h, e)
		}
		h.Write([]byte{'}'})
		return
	}
	s, err := ToScalarString(v)
	if err != nil {
		h.Write([]byte{'o'})
		return
	}
	h.Write([]byte{'s'})
	writeString(h, s)
}

func writeString(h hash.Hash, s string) {
	var n [binary.MaxVarintLen64]byte
	h.Write(n[:binary.PutUvarint(n[:], uint64(len(s)))])
	h.Write([]byte(s))
}

// Set is a loose-equality set of values bucketed by [Digest].
type Set struct {
	buckets map[[32]byte][]Value
	n       int
}

// NewSet returns a set holding values.
func NewSet(values ...Value) *Set {
	s := &Set{buckets: make(map[[32]byte][]Value, len(values))}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts v and reports whether no loosely equal value was present.
func (s *Set) Add(v Value) bool {
	d := Digest(v)
	for _, e := range s.buckets[d] {
		if LooseEqual(e, v) {
			return false
		}
	}
	s.buckets[d] = append(s.buckets[d], v)
	s.n++
	return true
}

// Contains reports whether a value loosely equal to v is present.
func (s *Set) Contains(v Value) bool {
	for _, e := range s.buckets[Digest(v)] {
		if LooseEqual(e, v) {
			return true
		}
	}
	return false
}

// Len returns the number of distinct values.
func (s *Set) Len() int { return s.n }
