package collections

import (
	"encoding/binary"
	"math/rand/v2"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20"

	"github.com/hasbyte1/go-arrayy/value"
)

// chachaSource is a rand.Source reading 64-bit words from a ChaCha20
// keystream.
type chachaSource struct {
	c   *chacha20.Cipher
	buf [8]byte
}

func (s *chachaSource) Uint64() uint64 {
	clear(s.buf[:])
	s.c.XORKeyStream(s.buf[:], s.buf[:])
	return binary.LittleEndian.Uint64(s.buf[:])
}

// NewSeededRand returns a deterministic generator for [Collection.Random],
// [Collection.RandomWeighted] and [Collection.Shuffle]. The same seed
// always yields the same sequence, on every platform.
//
//	r := collections.NewSeededRand(42)
//	c.Shuffle(r) // same order on every run
func NewSeededRand(seed uint64) *rand.Rand {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], seed)
	key := blake2b.Sum256(b[:])
	c, err := chacha20.NewUnauthenticatedCipher(key[:], make([]byte, chacha20.NonceSize))
	if err != nil {
		// Key and nonce lengths are constants.
		panic(err)
	}
	return rand.New(&chachaSource{c: c})
}

func rng(r *rand.Rand) *rand.Rand {
	if r != nil {
		return r
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Random returns n (default 1) distinct entries picked uniformly, as a
// list in pick order. n is capped at Count(). A nil r uses a randomly
// seeded generator.
func (c *Collection) Random(r *rand.Rand, n ...int) *Collection {
	want := 1
	if len(n) > 0 {
		want = n[0]
	}
	want = min(max(want, 0), c.Count())
	r = rng(r)

	idx := r.Perm(c.Count())[:want]
	out := value.NewMap()
	for _, i := range idx {
		_, v := c.data.At(i)
		out.Append(v.Clone())
	}
	return c.derive(out)
}

// RandomWeighted draws n (default 1) values with replacement, where
// weights maps each candidate value to a non-negative integer weight.
// Candidates not contained in c are ignored. The result is empty when no
// candidate has weight.
//
//	c := collections.New("red", "green", "blue")
//	c.RandomWeighted(r, map[string]int{"red": 1, "blue": 3}, 4)
func (c *Collection) RandomWeighted(r *rand.Rand, weights any, n ...int) *Collection {
	want := 1
	if len(n) > 0 {
		want = n[0]
	}
	r = rng(r)

	type option struct {
		v value.Value
		w int
	}
	var opts []option
	total := 0
	for k, w := range operand(weights).All() {
		wf, _ := value.ToFloat(w)
		cand := k.Value()
		if wf < 1 || !c.Contains(value.Native(cand)) {
			continue
		}
		opts = append(opts, option{cand, int(wf)})
		total += int(wf)
	}

	out := value.NewMap()
	if total == 0 {
		return c.derive(out)
	}
	for range max(want, 0) {
		pick := r.IntN(total)
		for _, o := range opts {
			if pick < o.w {
				out.Append(o.v)
				break
			}
			pick -= o.w
		}
	}
	return c.derive(out)
}

// Shuffle returns the values in random order under keys 0..n-1. A nil r
// uses a randomly seeded generator.
func (c *Collection) Shuffle(r *rand.Rand) *Collection {
	vals := c.data.Values()
	rng(r).Shuffle(len(vals), func(i, j int) { vals[i], vals[j] = vals[j], vals[i] })
	out := value.NewMap()
	for _, v := range vals {
		out.Append(v.Clone())
	}
	return c.derive(out)
}
