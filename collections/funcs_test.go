package collections_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hasbyte1/go-arrayy/collections"
)

func TestValuesOf(t *testing.T) {
	c := collections.New(1, "a", 2, 3.5, nil)
	if got := collections.ValuesOf[int](c); fmt.Sprint(got) != "[1 2]" {
		t.Fatalf("ValuesOf[int] = %v", got)
	}
	if got := collections.ValuesOf[string](c); fmt.Sprint(got) != "[a]" {
		t.Fatalf("ValuesOf[string] = %v", got)
	}
}

func TestMapToReduceTo(t *testing.T) {
	c := collections.MustFrom(map[string]any{"a": 1, "b": 2})
	labels := collections.MapTo(c, func(v, k any) string { return fmt.Sprintf("%v=%v", k, v) })
	if fmt.Sprint(labels) != "[a=1 b=2]" {
		t.Fatalf("MapTo = %v", labels)
	}
	sum := collections.ReduceTo(c, func(acc int, v, _ any) int { return acc + v.(int) }, 10)
	if sum != 13 {
		t.Fatalf("ReduceTo = %d", sum)
	}
}

func TestKeyBy(t *testing.T) {
	byID := collections.KeyBy(rows(), func(v any) int {
		id, _ := v.(*collections.Collection).Get("id", 0).(int)
		return id
	})
	if len(byID) != 3 || byID[5].(*collections.Collection).Get("title") != "Bar" {
		t.Fatalf("KeyBy = %v", byID)
	}
}

func TestCombine(t *testing.T) {
	c, err := collections.Combine([]any{"a", "b", 3}, []any{1, 2, "x"})
	if err != nil {
		t.Fatal(err)
	}
	assertJSON(t, c, `{"a":1,"b":2,"3":"x"}`)

	if _, err := collections.Combine([]any{"a"}, nil); !errors.Is(err, collections.ErrMismatchedLengths) {
		t.Fatalf("err = %v; want ErrMismatchedLengths", err)
	}
}

func TestZip(t *testing.T) {
	got := collections.Zip(collections.New("a", "b", "c"), collections.New(1, 2))
	assertJSON(t, got, `[["a",1],["b",2]]`)
}

func TestFlattenDeep(t *testing.T) {
	c := collections.MustFrom([]any{1, []any{2, []any{3, map[string]any{"k": 4}}}, []any{}})
	assertJSON(t, collections.FlattenDeep(c), `[1,2,3,4]`)
}

func TestPairs(t *testing.T) {
	c, err := collections.FromPairs(
		collections.Pair{Key: "b", Value: 2},
		collections.Pair{Key: "a", Value: 1},
		collections.Pair{Key: "b", Value: 3},
		collections.Pair{Value: "x"},
	)
	if err != nil {
		t.Fatal(err)
	}
	assertJSON(t, c, `{"b":3,"a":1,"0":"x"}`)

	pairs := c.Pairs()
	if len(pairs) != 3 || pairs[0].String() != "b: 3" || pairs[2].Key != 0 {
		t.Fatalf("Pairs = %v", pairs)
	}
	if _, err := collections.FromPairs(collections.Pair{Key: []int{1}}); !errors.Is(err, collections.ErrInvalidInput) {
		t.Fatalf("err = %v; want ErrInvalidInput", err)
	}
}

func TestEnumerable(t *testing.T) {
	var e collections.Enumerable = collections.New(1, 2)
	if e.Count() != 2 || !e.Has(1) || e.Get(0) != 1 || e.IsEmpty() {
		t.Fatal("Enumerable view disagrees with the collection")
	}
}
