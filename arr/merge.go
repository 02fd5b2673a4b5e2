package arr

import "github.com/hasbyte1/go-arrayy/value"

// Strategy selects how two maps are combined by [Merge].
//
//	                   integer keys   collision winner   order
//	AppendNewIndex     renumbered     incoming           receiver, incoming
//	PrependNewIndex    renumbered     receiver           incoming, receiver
//	AppendKeepIndex    kept           incoming           receiver, then new incoming keys
//	PrependKeepIndex   kept           receiver           incoming, then new receiver keys
//
// With renumbering only string keys can collide.
type Strategy uint8

const (
	AppendNewIndex Strategy = iota
	PrependNewIndex
	AppendKeepIndex
	PrependKeepIndex
)

var strategyNames = [...]string{
	AppendNewIndex:   "appendNewIndex",
	PrependNewIndex:  "prependNewIndex",
	AppendKeepIndex:  "appendKeepIndex",
	PrependKeepIndex: "prependKeepIndex",
}

func (s Strategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return "strategy(?)"
}

// Merge combines receiver and incoming into a new map; neither input is
// modified. In recursive mode a collision where both sides hold a container
// merges the two containers with the same strategy; any other collision
// follows the overwrite rule.
func Merge(receiver, incoming *value.Map, s Strategy, recursive bool) *value.Map {
	switch s {
	case PrependNewIndex:
		return mergeNewIndex(incoming, receiver, recursive)
	case AppendKeepIndex:
		return replaceKeys(receiver, incoming, recursive)
	case PrependKeepIndex:
		return replaceKeys(incoming, receiver, recursive)
	}
	return mergeNewIndex(receiver, incoming, recursive)
}

// mergeNewIndex follows array_merge(first, second).
func mergeNewIndex(first, second *value.Map, recursive bool) *value.Map {
	out := value.NewMap()
	for _, src := range [...]*value.Map{first, second} {
		for k, v := range src.All() {
			if k.IsInt() {
				out.Append(v.Clone())
				continue
			}
			if a, b, ok := bothMaps(out, k, v, recursive); ok {
				out.Set(k, value.FromMap(mergeNewIndex(a, b, true)))
				continue
			}
			out.Set(k, v.Clone())
		}
	}
	return out
}

// replaceKeys follows array_replace(first, second).
func replaceKeys(first, second *value.Map, recursive bool) *value.Map {
	out := first.Clone()
	for k, v := range second.All() {
		if a, b, ok := bothMaps(out, k, v, recursive); ok {
			out.Set(k, value.FromMap(replaceKeys(a, b, true)))
			continue
		}
		out.Set(k, v.Clone())
	}
	return out
}

func bothMaps(out *value.Map, k value.Key, v value.Value, recursive bool) (*value.Map, *value.Map, bool) {
	if !recursive {
		return nil, nil, false
	}
	cur, ok := out.Get(k)
	if !ok {
		return nil, nil, false
	}
	a, aok := cur.AsMap()
	b, bok := v.AsMap()
	return a, b, aok && bok
}
