package value

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
)

// Value is one loosely typed datum. The zero Value is null.
//
// Lists and maps both hold a *Map. Copying a Value shares that *Map; use
// [Value.Clone] for an independent copy.
type Value struct {
	kind Kind
	b    bool
	n    int
	f    float64
	s    string
	m    *Map
	o    any
}

// Mapper is implemented by types that expose their contents as an ordered
// Map, such as *collections.Collection. [From] copies the map it returns.
type Mapper interface {
	OrderedMap() *Map
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a bool value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an int value.
func Int(n int) Value { return Value{kind: KindInt, n: n} }

// Float returns a float value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// FromMap wraps m without copying it. A nil m becomes an empty map.
func FromMap(m *Map) Value {
	if m == nil {
		m = NewMap()
	}
	return Value{kind: KindMap, m: m}
}

// Object wraps an opaque Go value.
func Object(o any) Value { return Value{kind: KindObject, o: o} }

// Kind reports the variant. Maps whose keys are 0..n-1 in order report
// KindList.
func (v Value) Kind() Kind {
	if v.kind == KindMap && v.m.IsList() {
		return KindList
	}
	return v.kind
}

func (v Value) IsNull() bool { return v.kind == KindNull }
func (v Value) IsContainer() bool { return v.kind == KindMap }
func (v Value) IsNumber() bool { return v.kind == KindInt || v.kind == KindFloat }

func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }
func (v Value) AsInt() (int, bool) { return v.n, v.kind == KindInt }
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == KindFloat }
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }
func (v Value) AsObject() (any, bool) { return v.o, v.kind == KindObject }
func (v Value) AsMap() (*Map, bool) { return v.m, v.kind == KindMap }

// Clone returns a deep copy of container values; other values are returned
// as is.
func (v Value) Clone() Value {
	if v.kind == KindMap {
		return Value{kind: KindMap, m: v.m.Clone()}
	}
	return v
}

// String renders v for debugging. Scalars use their coerced form,
// containers and objects use fmt's %v of [Native].
func (v Value) String() string {
	if s, err := ToScalarString(v); err == nil {
		return s
	}
	return fmt.Sprintf("%v", Native(v))
}

// From converts a Go value into a Value. It never fails: types with no
// loose-typed counterpart become objects.
//
//	nil, bool, ints, uints, floats, string → scalars
//	slices, arrays                          → lists
//	Go maps                                 → maps, keys in natural order
//	*Map, Value, Mapper                     → deep copies
func From(x any) Value {
	switch t := x.(type) {
	case nil:
		return Value{}
	case Value:
		return t.Clone()
	case *Map:
		if t == nil {
			return Value{}
		}
		return FromMap(t.Clone())
	case Mapper:
		if rv := reflect.ValueOf(t); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return Value{}
		}
		return FromMap(t.OrderedMap().Clone())
	case bool:
		return Bool(t)
	case int:
		return Int(t)
	case int64:
		return Int(int(t))
	case float64:
		return Float(t)
	case float32:
		return Float(float32To64(t))
	case string:
		return String(t)
	case []byte:
		return String(string(t))
	case json.Number:
		return fromNumber(string(t))
	case []any:
		m := makeMap(len(t))
		for _, e := range t {
			m.Append(From(e))
		}
		return FromMap(m)
	case map[string]any:
		keys := make([]Key, 0, len(t))
		raw := make(map[Key]string, len(t))
		for s := range t {
			k := StringKey(s)
			keys = append(keys, k)
			raw[k] = s
		}
		slices.SortFunc(keys, CompareKeys)
		m := makeMap(len(t))
		for _, k := range keys {
			m.Set(k, From(t[raw[k]]))
		}
		return FromMap(m)
	}
	return fromReflect(x)
}

func fromReflect(x any) Value {
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(int(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt {
			return Float(float64(u))
		}
		return Int(int(u))
	case reflect.Float32:
		return Float(float32To64(float32(rv.Float())))
	case reflect.Float64:
		return Float(rv.Float())
	case reflect.String:
		return String(rv.String())
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Slice, reflect.Array:
		m := makeMap(rv.Len())
		for i := 0; i < rv.Len(); i++ {
			m.Append(From(rv.Index(i).Interface()))
		}
		return FromMap(m)
	case reflect.Map:
		type entry struct {
			k Key
			v reflect.Value
		}
		entries := make([]entry, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k, ok := KeyOf(iter.Key().Interface())
			if !ok {
				return Object(x)
			}
			entries = append(entries, entry{k, iter.Value()})
		}
		slices.SortFunc(entries, func(a, b entry) int { return CompareKeys(a.k, b.k) })
		m := makeMap(len(entries))
		for _, e := range entries {
			m.Set(e.k, From(e.v.Interface()))
		}
		return FromMap(m)
	case reflect.Pointer:
		if rv.IsNil() {
			return Value{}
		}
		switch rv.Elem().Kind() {
		case reflect.Slice, reflect.Array, reflect.Map:
			return From(rv.Elem().Interface())
		}
	}
	return Object(x)
}

// float32To64 widens f keeping its shortest decimal form, so 0.1 stays 0.1.
func float32To64(f float32) float64 {
	d, err := strconv.ParseFloat(strconv.FormatFloat(float64(f), 'g', -1, 32), 64)
	if err != nil {
		return float64(f)
	}
	return d
}

func fromNumber(s string) Value {
	if n, err := strconv.Atoi(s); err == nil {
		return Int(n)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return String(s)
	}
	return Float(f)
}

// Native converts v back into plain Go values: nil, bool, int, float64,
// string, []any for lists, map[string]any for maps, and the wrapped value
// for objects.
func Native(v Value) any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.n
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindObject:
		return v.o
	case KindMap:
		if v.m.IsList() {
			out := make([]any, 0, v.m.Len())
			for _, e := range v.m.All() {
				out = append(out, Native(e))
			}
			return out
		}
		out := make(map[string]any, v.m.Len())
		for k, e := range v.m.All() {
			out[k.String()] = Native(e)
		}
		return out
	}
	return nil
}
