package arr

import "github.com/hasbyte1/go-arrayy/value"

// ─────────────────────────────────────────────────────────────────────────────
// Re-indexing
//
// Every helper below returns a fresh map and leaves its input untouched.
// "Re-indexed" output renumbers integer keys from 0 in order and keeps string
// keys, the same rule PHP's array_merge applies to a single array.
// ─────────────────────────────────────────────────────────────────────────────

// Reindex renumbers integer keys from 0 and keeps string keys.
func Reindex(m *value.Map) *value.Map {
	out := value.NewMap()
	for k, v := range m.All() {
		put(out, k, v.Clone(), false)
	}
	return out
}

// List returns the values of m under keys 0..n-1.
func List(m *value.Map) *value.Map {
	out := value.NewMap()
	for _, v := range m.All() {
		out.Append(v.Clone())
	}
	return out
}

// put stores v under k, or appends it when k is an integer key and
// preserveKeys is false.
func put(out *value.Map, k value.Key, v value.Value, preserveKeys bool) {
	if k.IsInt() && !preserveKeys {
		out.Append(v)
		return
	}
	out.Set(k, v)
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Slice follows array_slice: a negative offset counts from the end, a
// negative length stops that many entries before the end.
//
//	Slice([a b c d], 1, 2, false)  → [b c]
//	Slice([a b c d], -2, 4, false) → [c d]
//	Slice([a b c d], 0, -1, false) → [a b c]
func Slice(m *value.Map, offset, length int, preserveKeys bool) *value.Map {
	n := m.Len()
	start := offset
	if start < 0 {
		start = max(n+start, 0)
	}
	start = min(start, n)
	end := n
	switch {
	case length < 0:
		end = max(n+length, start)
	case length < n-start:
		end = start + length
	}
	out := value.NewMap()
	for i := start; i < end; i++ {
		k, v := m.At(i)
		put(out, k, v.Clone(), preserveKeys)
	}
	return out
}

// Chunk splits m into maps of at most size entries. Without preserveKeys
// each chunk is a list. A size below 1 yields no chunks.
func Chunk(m *value.Map, size int, preserveKeys bool) []*value.Map {
	if size <= 0 || m.Len() == 0 {
		return []*value.Map{}
	}
	chunks := make([]*value.Map, 0, (m.Len()+size-1)/size)
	for i := 0; i < m.Len(); i += size {
		chunk := value.NewMap()
		for j := i; j < min(i+size, m.Len()); j++ {
			k, v := m.At(j)
			if preserveKeys {
				chunk.Set(k, v.Clone())
			} else {
				chunk.Append(v.Clone())
			}
		}
		chunks = append(chunks, chunk)
	}
	return chunks
}

// Reverse returns m in reverse order. Without preserveKeys integer keys are
// renumbered.
func Reverse(m *value.Map, preserveKeys bool) *value.Map {
	out := value.NewMap()
	for i := m.Len() - 1; i >= 0; i-- {
		k, v := m.At(i)
		put(out, k, v.Clone(), preserveKeys)
	}
	return out
}

// Pad extends m to |size| entries with pad, on the right for a positive
// size and on the left for a negative one. Integer keys are renumbered.
func Pad(m *value.Map, size int, pad value.Value) *value.Map {
	missing := max(size, -size) - m.Len()
	if missing <= 0 {
		return Reindex(m)
	}
	out := value.NewMap()
	if size < 0 {
		for range missing {
			out.Append(pad.Clone())
		}
	}
	for k, v := range m.All() {
		put(out, k, v.Clone(), false)
	}
	if size > 0 {
		for range missing {
			out.Append(pad.Clone())
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Keys ↔ values
// ─────────────────────────────────────────────────────────────────────────────

// Flip swaps keys and values. Values that cannot be keys are skipped;
// later duplicates overwrite earlier ones.
func Flip(m *value.Map) *value.Map {
	out := value.NewMap()
	for k, v := range m.All() {
		if nk, ok := value.KeyFromValue(v); ok {
			out.Set(nk, k.Value())
		}
	}
	return out
}

// Combine pairs keys[i] with values[i]. Keys that cannot be used as keys
// are coerced through their string form. Later duplicate keys overwrite
// earlier ones.
func Combine(keys, values []value.Value) (*value.Map, error) {
	if len(keys) != len(values) {
		return nil, ErrMismatchedLengths
	}
	out := value.NewMap()
	for i, kv := range keys {
		k, ok := value.KeyFromValue(kv)
		if !ok {
			k = value.StringKey(kv.String())
		}
		out.Set(k, values[i].Clone())
	}
	return out, nil
}
