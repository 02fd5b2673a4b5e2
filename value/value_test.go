package value_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/hasbyte1/go-arrayy/value"
)

// ─────────────────────────────────────────────────────────────────────────────
// Keys
// ─────────────────────────────────────────────────────────────────────────────

func TestStringKeyNormalisesIntegers(t *testing.T) {
	cases := []struct {
		in    string
		isInt bool
	}{
		{"12", true},
		{"-3", true},
		{"0", true},
		{"012", false},
		{"1.0", false},
		{"-0", false},
		{"+1", false},
		{"", false},
		{"abc", false},
	}
	for _, tc := range cases {
		if got := value.StringKey(tc.in).IsInt(); got != tc.isInt {
			t.Fatalf("StringKey(%q).IsInt() = %v; want %v", tc.in, got, tc.isInt)
		}
	}
	if value.StringKey("12") != value.IntKey(12) {
		t.Fatal(`StringKey("12") should equal IntKey(12)`)
	}
}

func TestKeyOf(t *testing.T) {
	cases := []struct {
		in   any
		want value.Key
	}{
		{nil, value.StringKey("")},
		{true, value.IntKey(1)},
		{false, value.IntKey(0)},
		{2.9, value.IntKey(2)},
		{int8(4), value.IntKey(4)},
		{uint16(5), value.IntKey(5)},
		{"7", value.IntKey(7)},
		{"x", value.StringKey("x")},
	}
	for _, tc := range cases {
		got, ok := value.KeyOf(tc.in)
		if !ok || got != tc.want {
			t.Fatalf("KeyOf(%v) = %v, %v; want %v", tc.in, got, ok, tc.want)
		}
	}
	if _, ok := value.KeyOf([]int{1}); ok {
		t.Fatal("a slice must not be usable as a key")
	}
	if _, ok := value.KeyOf(math.NaN()); ok {
		t.Fatal("NaN must not be usable as a key")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Map
// ─────────────────────────────────────────────────────────────────────────────

func keyStrings(m *value.Map) []string {
	out := make([]string, 0, m.Len())
	for _, k := range m.Keys() {
		out = append(out, k.String())
	}
	return out
}

func assertStrings(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %q want %q  (got=%v want=%v)", i, got[i], want[i], got, want)
		}
	}
}

func TestMapPreservesInsertionOrder(t *testing.T) {
	m := value.MapOf("b", 1, "a", 2, 10, 3)
	m.Set(value.StringKey("b"), value.Int(9))
	assertStrings(t, keyStrings(m), []string{"b", "a", "10"})
	if v, _ := m.Get(value.StringKey("b")); v.String() != "9" {
		t.Fatalf("b = %v; want 9", v)
	}
}

func TestMapAppendUsesNextIndex(t *testing.T) {
	m := value.MapOf("x", 1, 5, 2)
	if k := m.Append(value.Int(3)); k != value.IntKey(6) {
		t.Fatalf("Append key = %v; want 6", k)
	}
	m = value.MapOf(-5, "neg")
	if k := m.Append(value.Int(1)); k != value.IntKey(0) {
		t.Fatalf("Append after negative key = %v; want 0", k)
	}
}

func TestMapDeleteAndRecomputeNext(t *testing.T) {
	m := value.ListOf("a", "b", "c")
	if !m.Delete(value.IntKey(2)) {
		t.Fatal("Delete should report a present key")
	}
	if m.Delete(value.IntKey(2)) {
		t.Fatal("Delete should report an absent key")
	}
	if m.NextIndex() != 3 {
		t.Fatalf("NextIndex = %d; want 3 before recompute", m.NextIndex())
	}
	m.RecomputeNext()
	if m.NextIndex() != 2 {
		t.Fatalf("NextIndex = %d; want 2", m.NextIndex())
	}
}

func TestMapHasNull(t *testing.T) {
	m := value.MapOf("n", nil)
	if !m.Has(value.StringKey("n")) {
		t.Fatal("Has should be true for a stored null")
	}
}

func TestMapCloneIsDeep(t *testing.T) {
	inner := value.ListOf(1, 2)
	m := value.NewMap()
	m.Set(value.StringKey("in"), value.FromMap(inner))
	cp := m.Clone()
	inner.Append(value.Int(3))
	v, _ := cp.Get(value.StringKey("in"))
	if nested, _ := v.AsMap(); nested.Len() != 2 {
		t.Fatalf("clone shares nested map: len %d", nested.Len())
	}
}

func TestMapIsList(t *testing.T) {
	if !value.ListOf(1, 2).IsList() {
		t.Fatal("ListOf should be a list")
	}
	if value.MapOf(1, "a", 0, "b").IsList() {
		t.Fatal("out-of-order keys are not a list")
	}
	if !value.NewMap().IsList() {
		t.Fatal("empty map is a list")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// From / Native
// ─────────────────────────────────────────────────────────────────────────────

type stringer struct{ s string }

func (s stringer) String() string { return s.s }

type opaque struct{ n int }

func TestFromKinds(t *testing.T) {
	cases := []struct {
		in   any
		want value.Kind
	}{
		{nil, value.KindNull},
		{true, value.KindBool},
		{uint8(3), value.KindInt},
		{float32(1.5), value.KindFloat},
		{"s", value.KindString},
		{[]int{1, 2}, value.KindList},
		{map[string]int{"a": 1}, value.KindMap},
		{opaque{1}, value.KindObject},
		{(*opaque)(nil), value.KindNull},
	}
	for _, tc := range cases {
		if got := value.From(tc.in).Kind(); got != tc.want {
			t.Fatalf("From(%#v).Kind() = %v; want %v", tc.in, got, tc.want)
		}
	}
}

func TestFromSortsGoMapKeys(t *testing.T) {
	v := value.From(map[string]any{"b": 1, "a": 2, "10": 3, "2": 4})
	m, _ := v.AsMap()
	assertStrings(t, keyStrings(m), []string{"2", "10", "a", "b"})
}

func TestFromFloat32KeepsShortestForm(t *testing.T) {
	if got := value.From(float32(0.1)).String(); got != "0.1" {
		t.Fatalf("float32 0.1 = %q", got)
	}
}

func TestNativeRoundTrip(t *testing.T) {
	in := map[string]any{"list": []any{1, "x", nil}, "n": 1.5}
	out, ok := value.Native(value.From(in)).(map[string]any)
	if !ok {
		t.Fatalf("Native returned %T", value.Native(value.From(in)))
	}
	list, ok := out["list"].([]any)
	if !ok || len(list) != 3 || list[0] != 1 || list[1] != "x" || list[2] != nil {
		t.Fatalf("list = %#v", out["list"])
	}
	if out["n"] != 1.5 {
		t.Fatalf("n = %#v", out["n"])
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Coercion
// ─────────────────────────────────────────────────────────────────────────────

func TestToScalarString(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{true, "1"},
		{false, ""},
		{-9, "-9"},
		{1.18, "1.18"},
		{1.0, "1"},
		{1e21, "1e+21"},
		{" padded ", " padded "},
		{stringer{"custom"}, "custom"},
		{errors.New("boom"), "boom"},
		{time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), "2024-01-02 03:04:05 +0000 UTC"},
	}
	for _, tc := range cases {
		got, err := value.ToScalarString(value.From(tc.in))
		if err != nil || got != tc.want {
			t.Fatalf("ToScalarString(%#v) = %q, %v; want %q", tc.in, got, err, tc.want)
		}
	}
}

func TestToScalarStringFailsForContainersAndObjects(t *testing.T) {
	for _, in := range []any{[]int{1}, opaque{1}} {
		_, err := value.ToScalarString(value.From(in))
		if !errors.Is(err, value.ErrCoercion) {
			t.Fatalf("ToScalarString(%#v) err = %v; want ErrCoercion", in, err)
		}
		var ce *value.CoercionError
		if !errors.As(err, &ce) {
			t.Fatalf("error %T is not a *CoercionError", err)
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Equality & ordering
// ─────────────────────────────────────────────────────────────────────────────

func TestLooseEqual(t *testing.T) {
	eq := func(a, b any) bool { return value.LooseEqual(value.From(a), value.From(b)) }
	if !eq(1, "1") || !eq(1, 1.0) || !eq(true, "1") || !eq(nil, false) || !eq(nil, "") {
		t.Fatal("scalar loose equality failed")
	}
	if eq(0, false) || eq(1.18, 1.17) || eq("a", "A") {
		t.Fatal("unexpected scalar equality")
	}
	if !eq([]any{1, "2"}, []any{"1", 2}) {
		t.Fatal("lists with loosely equal elements should be equal")
	}
	if eq([]any{1}, 1) || eq("1", []any{"1"}) {
		t.Fatal("a scalar never equals a container")
	}
	if eq(map[string]any{"a": 1}, map[string]any{"b": 1}) {
		t.Fatal("maps with different keys are not equal")
	}
	if !eq(opaque{1}, opaque{1}) || eq(opaque{1}, opaque{2}) {
		t.Fatal("objects without a string form compare deeply")
	}
}

func TestCompare(t *testing.T) {
	cmp := func(a, b any) int { return value.Compare(value.From(a), value.From(b)) }
	cases := []struct {
		a, b any
		want int
	}{
		{1, 2, -1},
		{2.5, 2, 1},
		{"10", "9", 1},
		{"10", 9, 1},
		{"abc", "abd", -1},
		{"zoom", "string", 1},
		{10, "abc", -1},
		{nil, "a", -1},
		{nil, 0, 0},
		{true, 5, 0},
		{false, 1, -1},
		{[]int{1}, 100, 1},
		{[]int{1, 2}, []int{3}, 1},
	}
	for _, tc := range cases {
		if got := cmp(tc.a, tc.b); got != tc.want {
			t.Fatalf("Compare(%#v, %#v) = %d; want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestTruthy(t *testing.T) {
	for _, in := range []any{nil, false, 0, 0.0, "", "0", []int{}} {
		if value.Truthy(value.From(in)) {
			t.Fatalf("Truthy(%#v) = true", in)
		}
	}
	for _, in := range []any{true, -1, 0.5, "a", "0.0", " ", []int{0}, opaque{}} {
		if !value.Truthy(value.From(in)) {
			t.Fatalf("Truthy(%#v) = false", in)
		}
	}
}

func TestToFloat(t *testing.T) {
	if f, ok := value.ToFloat(value.String(" 1.5e1 ")); !ok || f != 15 {
		t.Fatalf("ToFloat numeric string = %v, %v", f, ok)
	}
	if f, ok := value.ToFloat(value.String("12abc")); ok || f != 0 {
		t.Fatalf("ToFloat non-numeric = %v, %v", f, ok)
	}
	if f, ok := value.ToFloat(value.Bool(true)); ok || f != 1 {
		t.Fatalf("ToFloat(true) = %v, %v", f, ok)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Set
// ─────────────────────────────────────────────────────────────────────────────

func TestSetUsesLooseEquality(t *testing.T) {
	s := value.NewSet(value.Int(1), value.String("1"), value.Float(1), value.Null(), value.Bool(false))
	if s.Len() != 2 {
		t.Fatalf("Len = %d; want 2", s.Len())
	}
	if !s.Contains(value.Bool(true)) || !s.Contains(value.String("")) {
		t.Fatal("Contains should match loosely equal values")
	}
	if s.Contains(value.Int(0)) {
		t.Fatal("0 is not loosely equal to null or false")
	}
	s.Add(value.From([]any{1, 2}))
	if !s.Contains(value.From([]any{"1", "2"})) {
		t.Fatal("Contains should match loosely equal containers")
	}
	s.Add(value.From(opaque{1}))
	if s.Add(value.From(opaque{1})) {
		t.Fatal("deeply equal objects should collide")
	}
	if !s.Add(value.From(opaque{2})) {
		t.Fatal("distinct objects should both be stored")
	}
}

func TestDigestDistinguishesKeyKinds(t *testing.T) {
	a := value.Digest(value.From(map[string]any{"1": "x"}))
	b := value.Digest(value.From(map[string]any{"a": "x"}))
	if a == b {
		t.Fatal("different keys should not share a digest")
	}
}

func TestToScalarStringFloatArithmetic(t *testing.T) {
	a, b := 0.1, 0.2
	if got, _ := value.ToScalarString(value.Float(a + b)); got != "0.30000000000000004" {
		t.Fatalf("0.1+0.2 = %q", got)
	}
}
