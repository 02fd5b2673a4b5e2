package collections

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/goccy/go-yaml"
	"github.com/mitchellh/mapstructure"
	"github.com/tailscale/hujson"

	"github.com/hasbyte1/go-arrayy/value"
)

// ─────────────────────────────────────────────────────────────────────────────
// JSON
// ─────────────────────────────────────────────────────────────────────────────

var errNonStandardJSON = errors.New("comments and trailing commas are only accepted by FromJSONC")

// FromJSON parses a JSON object or array, keeping the key order of the
// document. Objects whose keys are exactly "0".."n-1" become lists. A
// top-level scalar or malformed input fails with a [*DecodeError].
//
//	c, err := collections.FromJSON(`{"name":"Ada","tags":["math"]}`)
func FromJSON(s string) (*Collection, error) {
	v, err := hujson.Parse([]byte(s))
	if err != nil {
		return nil, &DecodeError{Format: "JSON", Err: err}
	}
	if !v.IsStandard() {
		return nil, &DecodeError{Format: "JSON", Err: errNonStandardJSON}
	}
	return fromHuJSON("JSON", v)
}

// FromJSONC is like [FromJSON] but also accepts comments and trailing
// commas.
func FromJSONC(s string) (*Collection, error) {
	v, err := hujson.Parse([]byte(s))
	if err != nil {
		return nil, &DecodeError{Format: "JSONC", Err: err}
	}
	return fromHuJSON("JSONC", v)
}

func fromHuJSON(format string, v hujson.Value) (*Collection, error) {
	root := huValue(v)
	m, ok := root.AsMap()
	if !ok {
		return nil, &DecodeError{Format: format, Err: errNotContainer}
	}
	return &Collection{data: m, opts: DefaultOptions()}, nil
}

func huValue(v hujson.Value) value.Value {
	switch t := v.Value.(type) {
	case *hujson.Object:
		m := value.NewMap()
		for _, member := range t.Members {
			name, _ := member.Name.Value.(hujson.Literal)
			m.Set(value.StringKey(name.String()), huValue(member.Value))
		}
		return value.FromMap(m)
	case *hujson.Array:
		m := value.NewMap()
		for _, e := range t.Elements {
			m.Append(huValue(e))
		}
		return value.FromMap(m)
	case hujson.Literal:
		switch t.Kind() {
		case 't', 'f':
			return value.Bool(t.Bool())
		case '"':
			return value.String(t.String())
		case '0':
			return value.From(json.Number(string(t)))
		}
	}
	return value.Null()
}

// ToJSON renders the collection as compact JSON. Lists become arrays and
// everything else objects, in key order; an empty collection is "[]".
// Floats keep a fractional part so they decode back as floats. A round trip
// through FromJSON keeps numeric values but not their spelling: 1E2 is
// written back as 100.0 and 1.10 as 1.1. Objects are
// written through json.Marshaler or their string form; an object with
// neither fails with an error matching value.ErrCoercion.
func (c *Collection) ToJSON() (string, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, value.FromMap(c.data)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeJSON(buf *bytes.Buffer, v value.Value) error {
	switch v.Kind() {
	case value.KindNull:
		buf.WriteString("null")
	case value.KindBool:
		b, _ := v.AsBool()
		if b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case value.KindInt:
		s, _ := value.ToScalarString(v)
		buf.WriteString(s)
	case value.KindFloat:
		f, _ := v.AsFloat()
		b, err := json.Marshal(f)
		if err != nil {
			return err
		}
		buf.Write(b)
		if !bytes.ContainsAny(b, ".eE") {
			buf.WriteString(".0")
		}
	case value.KindString:
		s, _ := v.AsString()
		writeJSONString(buf, s)
	case value.KindList:
		m, _ := v.AsMap()
		buf.WriteByte('[')
		for i, e := range m.Values() {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case value.KindMap:
		m, _ := v.AsMap()
		if m.Len() == 0 {
			buf.WriteString("[]")
			return nil
		}
		buf.WriteByte('{')
		i := 0
		for k, e := range m.All() {
			if i > 0 {
				buf.WriteByte(',')
			}
			i++
			writeJSONString(buf, k.String())
			buf.WriteByte(':')
			if err := writeJSON(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case value.KindObject:
		o, _ := v.AsObject()
		if m, ok := o.(json.Marshaler); ok {
			b, err := m.MarshalJSON()
			if err != nil {
				return err
			}
			buf.Write(b)
			return nil
		}
		s, err := value.ToScalarString(v)
		if err != nil {
			return err
		}
		writeJSONString(buf, s)
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	buf.Truncate(buf.Len() - 1)
}

// ─────────────────────────────────────────────────────────────────────────────
// YAML
// ─────────────────────────────────────────────────────────────────────────────

// FromYAML parses a YAML mapping or sequence, keeping mapping order.
func FromYAML(s string) (*Collection, error) {
	var doc any
	if err := yaml.UnmarshalWithOptions([]byte(s), &doc, yaml.UseOrderedMap()); err != nil {
		return nil, &DecodeError{Format: "YAML", Err: err}
	}
	m, ok := yamlValue(doc).AsMap()
	if !ok {
		return nil, &DecodeError{Format: "YAML", Err: errNotContainer}
	}
	return &Collection{data: m, opts: DefaultOptions()}, nil
}

func yamlValue(x any) value.Value {
	switch t := x.(type) {
	case yaml.MapSlice:
		m := value.NewMap()
		for _, item := range t {
			k, ok := value.KeyOf(item.Key)
			if !ok {
				k = value.StringKey(fmt.Sprint(item.Key))
			}
			m.Set(k, yamlValue(item.Value))
		}
		return value.FromMap(m)
	case []any:
		m := value.NewMap()
		for _, e := range t {
			m.Append(yamlValue(e))
		}
		return value.FromMap(m)
	}
	return value.From(x)
}

// ToYAML renders the collection as a YAML document in key order.
func (c *Collection) ToYAML() (string, error) {
	b, err := yaml.MarshalWithOptions(yamlNative(value.FromMap(c.data)), yaml.Indent(2))
	if err != nil {
		return "", fmt.Errorf("collections: encode YAML: %w", err)
	}
	return string(b), nil
}

func yamlNative(v value.Value) any {
	m, ok := v.AsMap()
	if !ok {
		return value.Native(v)
	}
	if m.IsList() {
		out := make([]any, 0, m.Len())
		for _, e := range m.All() {
			out = append(out, yamlNative(e))
		}
		return out
	}
	out := make(yaml.MapSlice, 0, m.Len())
	for k, e := range m.All() {
		out = append(out, yaml.MapItem{Key: k.Any(), Value: yamlNative(e)})
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// TOML
// ─────────────────────────────────────────────────────────────────────────────

// FromTOML parses a TOML document. Keys keep their document order.
func FromTOML(s string) (*Collection, error) {
	var raw map[string]any
	md, err := toml.Decode(s, &raw)
	if err != nil {
		return nil, &DecodeError{Format: "TOML", Err: err}
	}
	order := make(map[string][]string)
	seen := make(map[string]bool)
	for _, key := range md.Keys() {
		parent := strings.Join(key[:len(key)-1], "\x00")
		full := strings.Join(key, "\x00")
		if !seen[full] {
			seen[full] = true
			order[parent] = append(order[parent], key[len(key)-1])
		}
	}
	return &Collection{data: tomlMap(raw, "", order), opts: DefaultOptions()}, nil
}

func tomlMap(raw map[string]any, path string, order map[string][]string) *value.Map {
	names := slices.Clone(order[path])
	var rest []string
	for name := range raw {
		if !slices.Contains(names, name) {
			rest = append(rest, name)
		}
	}
	slices.Sort(rest)
	names = append(names, rest...)

	m := value.NewMap()
	for _, name := range names {
		x, ok := raw[name]
		if !ok {
			continue
		}
		child := name
		if path != "" {
			child = path + "\x00" + name
		}
		m.Set(value.StringKey(name), tomlValue(x, child, order))
	}
	return m
}

func tomlValue(x any, path string, order map[string][]string) value.Value {
	switch t := x.(type) {
	case map[string]any:
		return value.FromMap(tomlMap(t, path, order))
	case []map[string]any:
		m := value.NewMap()
		for _, e := range t {
			m.Append(value.FromMap(tomlMap(e, path, order)))
		}
		return value.FromMap(m)
	case []any:
		m := value.NewMap()
		for _, e := range t {
			m.Append(tomlValue(e, path, order))
		}
		return value.FromMap(m)
	}
	return value.From(x)
}

var errTOMLList = errors.New("collections: TOML documents must be tables, not lists")

// ToTOML renders the collection as a TOML document. TOML tables are
// written with sorted keys, so key order is not kept. A non-empty list
// cannot be a TOML document.
func (c *Collection) ToTOML() (string, error) {
	if c.IsNotEmpty() && c.IsList() {
		return "", errTOMLList
	}
	doc := map[string]any{}
	for k, v := range c.data.All() {
		doc[k.String()] = value.Native(v)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return "", fmt.Errorf("collections: encode TOML: %w", err)
	}
	return buf.String(), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Structs
// ─────────────────────────────────────────────────────────────────────────────

// Decode copies the collection into target, a pointer to a struct, map or
// slice. Struct fields are matched by their `mapstructure` tag or by name,
// case-insensitively, and scalars are converted loosely ("8080" → 8080).
//
//	var cfg struct {
//		Host string
//		Port int
//	}
//	err := c.Decode(&cfg)
func (c *Collection) Decode(target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOption, err)
	}
	return dec.Decode(c.ToArray())
}

// FromObject converts a struct (or pointer to one) into a collection keyed
// by field name or `mapstructure` tag, in field order. Nested structs
// become nested collections.
func FromObject(obj any) (*Collection, error) {
	if !isStruct(obj) {
		return nil, fmt.Errorf("%w: %T is not a struct", ErrInvalidInput, obj)
	}
	m, err := objectMap(obj)
	if err != nil {
		return nil, err
	}
	return &Collection{data: m, opts: DefaultOptions()}, nil
}

func objectMap(obj any) (*value.Map, error) {
	var raw map[string]any
	if err := mapstructure.Decode(obj, &raw); err != nil {
		return nil, &DecodeError{Format: "object", Err: err}
	}
	return fieldOrdered(reflect.TypeOf(obj), raw), nil
}

// fieldOrdered builds a map from raw with keys in the declaration order of
// t's fields. Keys with no matching field follow in natural order.
func fieldOrdered(t reflect.Type, raw map[string]any) *value.Map {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	m := value.NewMap()
	for i := range t.NumField() {
		f := t.Field(i)
		name := fieldName(f)
		x, ok := raw[name]
		if !f.IsExported() || !ok {
			continue
		}
		ft := f.Type
		for ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		if nested, ok := x.(map[string]any); ok && ft.Kind() == reflect.Struct {
			m.Set(value.StringKey(name), value.FromMap(fieldOrdered(ft, nested)))
			continue
		}
		m.Set(value.StringKey(name), value.From(x))
	}
	rest := make(map[string]any)
	for name, x := range raw {
		if !m.Has(value.StringKey(name)) {
			rest[name] = x
		}
	}
	if len(rest) > 0 {
		tail, _ := value.From(rest).AsMap()
		for k, v := range tail.All() {
			m.Set(k, v)
		}
	}
	return m
}

func fieldName(f reflect.StructField) string {
	tag := f.Tag.Get("mapstructure")
	if name, _, _ := strings.Cut(tag, ","); name != "" {
		return name
	}
	return f.Name
}

// ─────────────────────────────────────────────────────────────────────────────
// JSON Patch
// ─────────────────────────────────────────────────────────────────────────────

// Patch applies an RFC 6902 JSON Patch document and returns the result as
// a new collection.
//
//	c.Patch(`[{"op":"replace","path":"/name","value":"Grace"}]`)
func (c *Collection) Patch(ops string) (*Collection, error) {
	patch, err := jsonpatch.DecodePatch([]byte(ops))
	if err != nil {
		return nil, &DecodeError{Format: "JSON Patch", Err: err}
	}
	doc, err := c.ToJSON()
	if err != nil {
		return nil, err
	}
	out, err := patch.Apply([]byte(doc))
	if err != nil {
		return nil, fmt.Errorf("collections: apply JSON Patch: %w", err)
	}
	return c.reparse(out)
}

// MergePatch applies an RFC 7386 JSON Merge Patch and returns the result
// as a new collection.
func (c *Collection) MergePatch(patch string) (*Collection, error) {
	doc, err := c.ToJSON()
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch([]byte(doc), []byte(patch))
	if err != nil {
		return nil, &DecodeError{Format: "JSON Merge Patch", Err: err}
	}
	return c.reparse(out)
}

func (c *Collection) reparse(doc []byte) (*Collection, error) {
	out, err := FromJSON(string(doc))
	if err != nil {
		return nil, err
	}
	out.opts = c.opts
	return out, nil
}
