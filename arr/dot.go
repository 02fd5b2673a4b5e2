package arr

import "github.com/hasbyte1/go-arrayy/value"

// ─────────────────────────────────────────────────────────────────────────────
// Path-notation helpers for ordered maps
//
// These functions read, write and test values in nested *value.Map
// structures using separator-delimited key paths. An exact top-level key is
// always tried before the path is split, so a literal key "a.b" stays
// reachable.
//
// Example map:
//
//	m := value.MapOf(
//	    "user", value.MapOf(
//	        "name", "Alice",
//	        "tags", value.ListOf("admin", "ops"),
//	    ),
//	)
//
//	Get(m, "user.name", DefaultNotation)    → "Alice", true
//	Get(m, "user.tags[1]", DefaultNotation) → "ops", true
//	Set(m, "user.age", value.Int(30), DefaultNotation)
//	Has(m, "user.name", DefaultNotation)    → true
//	Forget(m, "user.tags", DefaultNotation)
// ─────────────────────────────────────────────────────────────────────────────

// Get retrieves the value at key. A miss reports false, never an error.
func Get(m *value.Map, key string, n Notation) (value.Value, bool) {
	if v, ok := m.Get(value.StringKey(key)); ok {
		return v, true
	}
	return n.Parse(key).Lookup(m)
}

// Set writes v at key, creating intermediate maps as needed.
func Set(m *value.Map, key string, v value.Value, n Notation) {
	if k := value.StringKey(key); m.Has(k) {
		m.Set(k, v)
		return
	}
	n.Parse(key).Assign(m, v)
}

// Has reports whether key resolves, including when it holds a falsy value.
func Has(m *value.Map, key string, n Notation) bool {
	if m.Has(value.StringKey(key)) {
		return true
	}
	return n.Parse(key).Exists(m)
}

// HasAll reports whether every key resolves.
func HasAll(m *value.Map, n Notation, keys ...string) bool {
	for _, key := range keys {
		if !Has(m, key, n) {
			return false
		}
	}
	return len(keys) > 0
}

// HasAny reports whether at least one key resolves.
func HasAny(m *value.Map, n Notation, keys ...string) bool {
	for _, key := range keys {
		if Has(m, key, n) {
			return true
		}
	}
	return false
}

// Forget removes key and reports whether anything was removed.
func Forget(m *value.Map, key string, n Notation) bool {
	if m.Delete(value.StringKey(key)) {
		return true
	}
	return n.Parse(key).Forget(m)
}

// Dot flattens nested maps into one level whose keys are joined paths.
// Empty nested maps are kept as leaf values.
//
//	Dot(value.MapOf("a", value.MapOf("b", 1)), DefaultNotation)
//	// → {"a.b": 1}
func Dot(m *value.Map, n Notation) *value.Map {
	out := value.NewMap()
	dotFlatten("", m, n.Separator, out)
	return out
}

func dotFlatten(prefix string, m *value.Map, sep string, out *value.Map) {
	for k, v := range m.All() {
		key := k.String()
		if prefix != "" {
			key = prefix + sep + key
		}
		if nested, ok := v.AsMap(); ok && nested.Len() > 0 {
			dotFlatten(key, nested, sep, out)
			continue
		}
		out.Set(value.StringKey(key), v.Clone())
	}
}

// Undot expands a flat path-keyed map into nested maps.
//
//	Undot(value.MapOf("a.b", 1, "a.c", 2), DefaultNotation)
//	// → {"a": {"b": 1, "c": 2}}
func Undot(m *value.Map, n Notation) *value.Map {
	out := value.NewMap()
	for k, v := range m.All() {
		n.Parse(k.String()).Assign(out, v.Clone())
	}
	return out
}
