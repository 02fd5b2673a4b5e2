package collections_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-arrayy/collections"
)

func TestFromString(t *testing.T) {
	assertJSON(t, collections.FromString("John, Doe, Anna", ","), `["John","Doe","Anna"]`)
	assertJSON(t, collections.FromString("  a \t b\nc ", ""), `["a","b","c"]`)
	assertJSON(t, collections.FromString("a,,b", ","), `["a","","b"]`)
}

func TestFromRegexp(t *testing.T) {
	c, err := collections.FromRegexp("a1b22c333", `\d+`)
	if err != nil {
		t.Fatal(err)
	}
	assertJSON(t, c, `["1","22","333"]`)

	if _, err := collections.FromRegexp("x", `(`); !errors.Is(err, collections.ErrInvalidInput) {
		t.Fatalf("err = %v; want ErrInvalidInput", err)
	}
}

func TestRange(t *testing.T) {
	cases := []struct {
		name       string
		start, end any
		step       []any
		want       string
	}{
		{"ints", 1, 4, nil, `[1,2,3,4]`},
		{"down", 22, 11, []any{2}, `[22,20,18,16,14,12]`},
		{"negative step", 1, 7, []any{-3}, `[1,4,7]`},
		{"numeric strings", "1", "3", nil, `[1,2,3]`},
		{"floats", 0, 1, []any{0.25}, `[0.0,0.25,0.5,0.75,1.0]`},
		{"chars", "a", "e", []any{2}, `["a","c","e"]`},
		{"chars down", "y", "k", []any{2}, `["y","w","u","s","q","o","m","k"]`},
		{"single", 5, 5, nil, `[5]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := collections.Range(tc.start, tc.end, tc.step...)
			if err != nil {
				t.Fatal(err)
			}
			assertJSON(t, c, tc.want)
		})
	}
}

func TestRangeErrors(t *testing.T) {
	for _, args := range [][]any{{1, 5, 0}, {1, "x", 1}, {"ab", "c", 1}, {1, 5, "two"}} {
		if _, err := collections.Range(args[0], args[1], args[2]); !errors.Is(err, collections.ErrInvalidRange) {
			t.Fatalf("Range%v err = %v; want ErrInvalidRange", args, err)
		}
	}
}
