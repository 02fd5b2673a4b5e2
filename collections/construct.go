package collections

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hasbyte1/go-arrayy/value"
)

// FromString splits s on sep and trims surrounding whitespace from each
// part. An empty sep splits on runs of whitespace.
//
//	collections.FromString("John, Doe, Anna", ",") // → ["John", "Doe", "Anna"]
func FromString(s, sep string) *Collection {
	var parts []string
	if sep == "" {
		parts = strings.Fields(s)
	} else {
		parts = strings.Split(s, sep)
	}
	m := value.NewMap()
	for _, p := range parts {
		m.Append(value.String(strings.TrimSpace(p)))
	}
	return &Collection{data: m, opts: DefaultOptions()}
}

// FromRegexp returns every match of pattern in s, in order. pattern uses
// Go's RE2 syntax.
func FromRegexp(s, pattern string) (*Collection, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: pattern %q: %v", ErrInvalidInput, pattern, err)
	}
	m := value.NewMap()
	for _, match := range re.FindAllString(s, -1) {
		m.Append(value.String(match))
	}
	return &Collection{data: m, opts: DefaultOptions()}, nil
}

// Range returns the sequence from start to end inclusive, like PHP's
// range. Bounds may be ints, floats, numeric strings or single characters.
// The sign of step is ignored: the sequence counts down when start > end.
// step defaults to 1; a zero step fails with [ErrInvalidRange].
//
//	collections.Range(22, 11, 2)   // → [22, 20, 18, 16, 14, 12]
//	collections.Range("a", "e", 2) // → ["a", "c", "e"]
func Range(start, end any, step ...any) (*Collection, error) {
	lo, hi := value.From(start), value.From(end)
	st := value.Int(1)
	if len(step) > 0 {
		st = value.From(step[0])
	}
	stepF, ok := value.ToFloat(st)
	if !ok || !value.IsNumeric(st) {
		return nil, fmt.Errorf("%w: step %v is not a number", ErrInvalidRange, step[0])
	}
	stepF = math.Abs(stepF)
	if stepF == 0 {
		return nil, fmt.Errorf("%w: step must not be zero", ErrInvalidRange)
	}

	if a, b, ok := charBounds(lo, hi); ok {
		return charRange(a, b, int(math.Max(stepF, 1))), nil
	}
	if !value.IsNumeric(lo) || !value.IsNumeric(hi) {
		return nil, fmt.Errorf("%w: bounds %v and %v", ErrInvalidRange, start, end)
	}
	from, _ := value.ToFloat(lo)
	to, _ := value.ToFloat(hi)
	ints := isIntegral(lo) && isIntegral(hi) && stepF == math.Trunc(stepF)
	return numberRange(from, to, stepF, ints), nil
}

func charBounds(lo, hi value.Value) (rune, rune, bool) {
	a, ok1 := lo.AsString()
	b, ok2 := hi.AsString()
	if !ok1 || !ok2 || value.IsNumeric(lo) || value.IsNumeric(hi) {
		return 0, 0, false
	}
	if utf8.RuneCountInString(a) != 1 || utf8.RuneCountInString(b) != 1 {
		return 0, 0, false
	}
	ra, _ := utf8.DecodeRuneInString(a)
	rb, _ := utf8.DecodeRuneInString(b)
	return ra, rb, true
}

func charRange(a, b rune, step int) *Collection {
	m := value.NewMap()
	if a <= b {
		for r := a; r <= b; r += rune(step) {
			m.Append(value.String(string(r)))
		}
	} else {
		for r := a; r >= b; r -= rune(step) {
			m.Append(value.String(string(r)))
		}
	}
	return &Collection{data: m, opts: DefaultOptions()}
}

func isIntegral(v value.Value) bool {
	if _, ok := v.AsInt(); ok {
		return true
	}
	if s, ok := v.AsString(); ok {
		_, err := strconv.Atoi(strings.TrimSpace(s))
		return err == nil
	}
	return false
}

func numberRange(from, to, step float64, ints bool) *Collection {
	m := value.NewMap()
	n := int(math.Floor(math.Abs(to-from)/step+1e-9)) + 1
	dir := 1.0
	if from > to {
		dir = -1
	}
	for i := range n {
		f := from + dir*float64(i)*step
		if ints {
			m.Append(value.Int(int(f)))
		} else {
			m.Append(value.Float(f))
		}
	}
	return &Collection{data: m, opts: DefaultOptions()}
}
