package collections

import (
	"cmp"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/hasbyte1/go-arrayy/value"
)

// Direction is a sort order.
type Direction int

const (
	Asc Direction = iota
	Desc
)

func (d Direction) String() string {
	if d == Desc {
		return "desc"
	}
	return "asc"
}

// ParseDirection parses "asc" or "desc" in any letter case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc":
		return Asc, nil
	case "desc":
		return Desc, nil
	}
	return Asc, fmt.Errorf("%w: direction %q", ErrInvalidOption, s)
}

func direction(dir []Direction) Direction {
	if len(dir) > 0 {
		return dir[0]
	}
	return Asc
}

// SortFlag selects how values (or keys) are compared while sorting.
type SortFlag int

const (
	// SortRegular uses natural ordering: numbers and numeric strings
	// numerically, other strings byte-wise.
	SortRegular SortFlag = iota
	// SortNumeric compares the numeric reading of each value.
	SortNumeric
	// SortString compares the string form of each value.
	SortString
	// SortStringCaseInsensitive is SortString ignoring letter case.
	SortStringCaseInsensitive
	// SortNatural compares strings with runs of digits read as numbers,
	// so "img12" sorts after "img2".
	SortNatural
	// SortNaturalCaseInsensitive is SortNatural ignoring letter case.
	SortNaturalCaseInsensitive
	// SortLocaleString compares strings with the collation rules of
	// Options.Locale.
	SortLocaleString
)

var sortFlagNames = [...]string{
	SortRegular:                "regular",
	SortNumeric:                "numeric",
	SortString:                 "string",
	SortStringCaseInsensitive:  "string-ci",
	SortNatural:                "natural",
	SortNaturalCaseInsensitive: "natural-ci",
	SortLocaleString:           "locale",
}

func (f SortFlag) String() string {
	if f >= 0 && int(f) < len(sortFlagNames) {
		return sortFlagNames[f]
	}
	return fmt.Sprintf("SortFlag(%d)", int(f))
}

// comparator returns the three-way comparison for flag.
func (c *Collection) comparator(flag SortFlag) func(a, b value.Value) int {
	switch flag {
	case SortNumeric:
		return func(a, b value.Value) int {
			fa, _ := value.ToFloat(a)
			fb, _ := value.ToFloat(b)
			return cmp.Compare(fa, fb)
		}
	case SortString:
		return func(a, b value.Value) int { return strings.Compare(sortString(a), sortString(b)) }
	case SortStringCaseInsensitive:
		return func(a, b value.Value) int {
			return strings.Compare(strings.ToLower(sortString(a)), strings.ToLower(sortString(b)))
		}
	case SortNatural:
		return func(a, b value.Value) int { return naturalCompare(sortString(a), sortString(b)) }
	case SortNaturalCaseInsensitive:
		return func(a, b value.Value) int {
			return naturalCompare(strings.ToLower(sortString(a)), strings.ToLower(sortString(b)))
		}
	case SortLocaleString:
		col := collate.New(language.Make(c.opts.Locale))
		return func(a, b value.Value) int { return col.CompareString(sortString(a), sortString(b)) }
	}
	return value.Compare
}

func sortString(v value.Value) string {
	if s, err := value.ToScalarString(v); err == nil {
		return s
	}
	return v.String()
}

// naturalCompare orders strings so that embedded digit runs compare by
// numeric value.
func naturalCompare(a, b string) int {
	for a != "" && b != "" {
		da, db := digitPrefix(a), digitPrefix(b)
		if da > 0 && db > 0 {
			na := strings.TrimLeft(a[:da], "0")
			nb := strings.TrimLeft(b[:db], "0")
			if r := cmp.Compare(len(na), len(nb)); r != 0 {
				return r
			}
			if r := strings.Compare(na, nb); r != 0 {
				return r
			}
			a, b = a[da:], b[db:]
			continue
		}
		if a[0] != b[0] {
			return cmp.Compare(a[0], b[0])
		}
		a, b = a[1:], b[1:]
	}
	return cmp.Compare(len(a), len(b))
}

func digitPrefix(s string) int {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}

type entry struct {
	key value.Key
	val value.Value
}

func (c *Collection) entries() []entry {
	out := make([]entry, 0, c.Count())
	for k, v := range c.data.All() {
		out = append(out, entry{k, v})
	}
	return out
}

// rebuild replaces the backing map with entries in order. Without keepKeys
// every entry is renumbered from 0.
func (c *Collection) rebuild(entries []entry, keepKeys bool) *Collection {
	out := value.NewMap()
	for _, e := range entries {
		if keepKeys {
			out.Set(e.key, e.val)
		} else {
			out.Append(e.val)
		}
	}
	c.data = out
	return c
}

func sortEntries(entries []entry, dir Direction, less func(a, b entry) int) {
	sort.SliceStable(entries, func(i, j int) bool {
		r := less(entries[i], entries[j])
		if dir == Desc {
			r = -r
		}
		return r < 0
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting
//
// Every method in this file mutates the receiver and returns it. All sorts
// are stable.
// ─────────────────────────────────────────────────────────────────────────────

// Sort orders the entries by value. With preserveKeys each value keeps its
// key (asort); otherwise the result is renumbered from 0 (sort). Mutates c.
func (c *Collection) Sort(dir Direction, flag SortFlag, preserveKeys bool) *Collection {
	compare := c.comparator(flag)
	entries := c.entries()
	sortEntries(entries, dir, func(a, b entry) int { return compare(a.val, b.val) })
	return c.rebuild(entries, preserveKeys)
}

// SortKeys orders the entries by key, keeping each value under its key.
// Mutates c.
//
//	From(map[int]any{1: "b", 0: "a"}).SortKeys(Asc) // → {0: "a", 1: "b"}
func (c *Collection) SortKeys(dir Direction, flag ...SortFlag) *Collection {
	f := SortRegular
	if len(flag) > 0 {
		f = flag[0]
	}
	compare := c.comparator(f)
	entries := c.entries()
	sortEntries(entries, dir, func(a, b entry) int { return compare(a.key.Value(), b.key.Value()) })
	return c.rebuild(entries, true)
}

// SortValueKeepIndex sorts by value with regular comparison, keeping keys.
// Mutates c.
func (c *Collection) SortValueKeepIndex(dir ...Direction) *Collection {
	return c.Sort(direction(dir), SortRegular, true)
}

// SortValueNewIndex sorts by value with regular comparison and renumbers
// from 0. Mutates c.
func (c *Collection) SortValueNewIndex(dir ...Direction) *Collection {
	return c.Sort(direction(dir), SortRegular, false)
}

// Sorter orders the entries by the sort key fn(value), compared by natural
// ordering. A nil fn sorts by the values themselves. The result is
// renumbered from 0. Mutates c.
//
//	New(1, 2, 3, 4, 5).Sorter(func(v any) any {
//		if v.(int)%2 == 0 {
//			return -1
//		}
//		return 1
//	}) // → [2, 4, 1, 3, 5]
func (c *Collection) Sorter(fn func(v any) any, dir ...Direction) *Collection {
	entries := c.entries()
	if fn == nil {
		sortEntries(entries, direction(dir), func(a, b entry) int { return value.Compare(a.val, b.val) })
		return c.rebuild(entries, false)
	}
	sortKeys := make(map[value.Key]value.Value, len(entries))
	for _, e := range entries {
		sortKeys[e.key] = value.From(fn(c.export(e.val)))
	}
	sortEntries(entries, direction(dir), func(a, b entry) int {
		return value.Compare(sortKeys[a.key], sortKeys[b.key])
	})
	return c.rebuild(entries, false)
}

// CustomSortValues orders the values with the caller's three-way
// comparison and renumbers from 0 (usort). Mutates c.
func (c *Collection) CustomSortValues(compare func(a, b any) int) *Collection {
	entries := c.entries()
	sortEntries(entries, Asc, func(a, b entry) int { return compare(c.export(a.val), c.export(b.val)) })
	return c.rebuild(entries, false)
}

// CustomSortKeys orders the entries with the caller's three-way comparison
// of keys, keeping each value under its key (uksort). Mutates c.
func (c *Collection) CustomSortKeys(compare func(a, b any) int) *Collection {
	entries := c.entries()
	sortEntries(entries, Asc, func(a, b entry) int { return compare(a.key.Any(), b.key.Any()) })
	return c.rebuild(entries, true)
}
