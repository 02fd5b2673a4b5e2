package value

import (
	"cmp"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Truthy reports the loose boolean reading of v. Null, false, 0, 0.0, "",
// "0" and empty containers are false.
func Truthy(v Value) bool {
	switch v.kind {
	case KindNull:
		return false
	case KindBool:
		return v.b
	case KindInt:
		return v.n != 0
	case KindFloat:
		return v.f != 0
	case KindString:
		return v.s != "" && v.s != "0"
	case KindMap:
		return v.m.Len() > 0
	}
	return true
}

// ToFloat returns the numeric reading of v and whether v is numeric (an
// int, a float or a numeric string). Non-numeric values read as 0, except
// true which reads as 1.
func ToFloat(v Value) (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.n), true
	case KindFloat:
		return v.f, true
	case KindString:
		if f, ok := parseNumeric(v.s); ok {
			return f, true
		}
	case KindBool:
		if v.b {
			return 1, false
		}
	}
	return 0, false
}

// IsNumeric reports whether v is an int, a float or a numeric string.
func IsNumeric(v Value) bool {
	_, ok := ToFloat(v)
	return ok
}

func parseNumeric(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9', c == '.', c == 'e', c == 'E', c == '+', c == '-':
		default:
			return 0, false
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}

// LooseEqual compares scalars by their coerced string and containers
// structurally (same keys in the same order, loosely equal values).
// A scalar never equals a container. Objects without a string form are
// compared with reflect.DeepEqual.
func LooseEqual(a, b Value) bool {
	if a.kind == KindMap || b.kind == KindMap {
		if a.kind != b.kind {
			return false
		}
		return mapsEqual(a.m, b.m)
	}
	as, aerr := ToScalarString(a)
	bs, berr := ToScalarString(b)
	if aerr != nil || berr != nil {
		if a.kind == KindObject && b.kind == KindObject {
			return reflect.DeepEqual(a.o, b.o)
		}
		return false
	}
	return as == bs
}

func mapsEqual(a, b *Map) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := range a.keys {
		if a.keys[i] != b.keys[i] {
			return false
		}
		if !LooseEqual(a.vals[a.keys[i]], b.vals[b.keys[i]]) {
			return false
		}
	}
	return true
}

// Compare is the natural ordering used by sorting, min and max.
//
//   - numbers, and numeric strings against numbers, compare numerically
//   - two numeric strings compare numerically, other strings byte-wise
//   - a number against a non-numeric string compares as strings
//   - null against a string compares "" with the string
//   - otherwise null and bools compare by truthiness
//   - containers sort after scalars, by size then element-wise
func Compare(a, b Value) int {
	switch ac, bc := a.kind == KindMap, b.kind == KindMap; {
	case ac && bc:
		return compareMaps(a.m, b.m)
	case ac:
		return 1
	case bc:
		return -1
	}
	switch {
	case a.kind == KindNull && b.kind == KindString:
		return strings.Compare("", b.s)
	case a.kind == KindString && b.kind == KindNull:
		return strings.Compare(a.s, "")
	case a.kind <= KindBool || b.kind <= KindBool:
		return compareBools(Truthy(a), Truthy(b))
	case a.kind == KindInt && b.kind == KindInt:
		return cmp.Compare(a.n, b.n)
	}
	if a.kind != KindObject && b.kind != KindObject {
		af, an := ToFloat(a)
		bf, bn := ToFloat(b)
		if an && bn {
			return cmp.Compare(af, bf)
		}
	}
	return strings.Compare(looseString(a), looseString(b))
}

func compareBools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	}
	return -1
}

func compareMaps(a, b *Map) int {
	if c := cmp.Compare(a.Len(), b.Len()); c != 0 {
		return c
	}
	for i := range a.keys {
		if c := Compare(a.vals[a.keys[i]], b.vals[b.keys[i]]); c != 0 {
			return c
		}
	}
	return 0
}

// looseString coerces v, falling back to fmt for values with no string form.
func looseString(v Value) string {
	if s, err := ToScalarString(v); err == nil {
		return s
	}
	return fmt.Sprint(Native(v))
}
