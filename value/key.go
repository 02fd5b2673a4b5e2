package value

import (
	"math"
	"reflect"
	"strconv"
)

// Key is a normalised container key: either an int or a string.
// The zero Key is the empty string key.
type Key struct {
	s     string
	n     int
	isInt bool
}

// IntKey returns the integer key n.
func IntKey(n int) Key { return Key{n: n, isInt: true} }

// StringKey returns the key for s. Canonical decimal integers become
// integer keys.
func StringKey(s string) Key {
	if n, ok := canonicalInt(s); ok {
		return IntKey(n)
	}
	return Key{s: s}
}

func canonicalInt(s string) (int, bool) {
	if s == "" || len(s) > 20 {
		return 0, false
	}
	if c := s[0]; c != '-' && (c < '0' || c > '9') {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || strconv.Itoa(n) != s {
		return 0, false
	}
	return n, true
}

// IsInt reports whether k is an integer key.
func (k Key) IsInt() bool { return k.isInt }

// Int returns the integer form of k, or 0 for string keys.
func (k Key) Int() int { return k.n }

// String renders the key; integer keys render in decimal.
func (k Key) String() string {
	if k.isInt {
		return strconv.Itoa(k.n)
	}
	return k.s
}

// Any returns the key as a Go int or string.
func (k Key) Any() any {
	if k.isInt {
		return k.n
	}
	return k.s
}

// Value returns the key as an Int or String value.
func (k Key) Value() Value {
	if k.isInt {
		return Int(k.n)
	}
	return String(k.s)
}

// CompareKeys orders integer keys numerically before string keys, and string
// keys byte-wise.
func CompareKeys(a, b Key) int {
	switch {
	case a.isInt && b.isInt:
		switch {
		case a.n < b.n:
			return -1
		case a.n > b.n:
			return 1
		}
		return 0
	case a.isInt:
		return -1
	case b.isInt:
		return 1
	case a.s < b.s:
		return -1
	case a.s > b.s:
		return 1
	}
	return 0
}

// KeyOf converts a Go value into a Key.
//
//	nil     → ""
//	bool    → 0 / 1
//	ints    → integer key
//	floats  → truncated integer key
//	string  → StringKey(s)
//
// It reports false for values that cannot be used as keys (containers,
// objects, NaN).
func KeyOf(x any) (Key, bool) {
	switch t := x.(type) {
	case Key:
		return t, true
	case Value:
		return KeyFromValue(t)
	case nil:
		return Key{}, true
	case string:
		return StringKey(t), true
	case int:
		return IntKey(t), true
	case bool:
		if t {
			return IntKey(1), true
		}
		return IntKey(0), true
	case float64:
		return floatKey(t)
	}
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return IntKey(int(rv.Int())), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt {
			return Key{}, false
		}
		return IntKey(int(u)), true
	case reflect.Float32, reflect.Float64:
		return floatKey(rv.Float())
	case reflect.String:
		return StringKey(rv.String()), true
	case reflect.Bool:
		return KeyOf(rv.Bool())
	}
	return Key{}, false
}

// KeyFromValue converts a scalar Value into a Key.
func KeyFromValue(v Value) (Key, bool) {
	switch v.kind {
	case KindNull:
		return Key{}, true
	case KindBool:
		return KeyOf(v.b)
	case KindInt:
		return IntKey(v.n), true
	case KindFloat:
		return floatKey(v.f)
	case KindString:
		return StringKey(v.s), true
	}
	return Key{}, false
}

func floatKey(f float64) (Key, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
		return Key{}, false
	}
	return IntKey(int(f)), true
}
