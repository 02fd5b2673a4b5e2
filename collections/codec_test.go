package collections_test

import (
	"errors"
	"testing"
	"time"

	"github.com/hasbyte1/go-arrayy/collections"
	"github.com/hasbyte1/go-arrayy/value"
)

// ─────────────────────────────────────────────────────────────────────────────
// JSON
// ─────────────────────────────────────────────────────────────────────────────

func TestJSONRoundTripKeepsOrder(t *testing.T) {
	const doc = `{"z":1,"a":[true,null,"x"],"m":{"b":2.5,"a":-3},"f":1.0}`
	c, err := collections.FromJSON(doc)
	if err != nil {
		t.Fatal(err)
	}
	assertJSON(t, c, doc)
	if c.Get("m.a") != -3 || c.Get("f") != 1.0 {
		t.Fatalf("m.a = %#v, f = %#v", c.Get("m.a"), c.Get("f"))
	}
}

func TestFromJSONSequentialKeysBecomeList(t *testing.T) {
	c, err := collections.FromJSON(`{"0":"a","1":"b"}`)
	if err != nil {
		t.Fatal(err)
	}
	if !c.IsList() {
		t.Fatal("want a list")
	}
	assertJSON(t, c, `["a","b"]`)
}

func TestToJSONEdgeCases(t *testing.T) {
	assertJSON(t, collections.MustFrom(map[string]any{}), `[]`)
	assertJSON(t, collections.New("<a&b>", "é"), `["<a&b>","é"]`)
	assertJSON(t, collections.New(2.0, 1e21), `[2.0,1e+21]`)

	when := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	assertJSON(t, collections.New(when), `["2024-01-02T00:00:00Z"]`)

	if _, err := collections.New(struct{}{}).ToJSON(); !errors.Is(err, value.ErrCoercion) {
		t.Fatalf("err = %v; want ErrCoercion", err)
	}
}

func TestJSONRoundTripNormalisesNumbers(t *testing.T) {
	c, err := collections.FromJSON(`[1E2, 1.10, -3]`)
	if err != nil {
		t.Fatal(err)
	}
	assertJSON(t, c, `[100.0,1.1,-3]`)
}

func TestFromJSONErrors(t *testing.T) {
	for _, in := range []string{`{`, `42`, `"x"`, `{"a":1,}`, `[1] // note`} {
		_, err := collections.FromJSON(in)
		if !errors.Is(err, collections.ErrInvalidInput) {
			t.Fatalf("FromJSON(%s) err = %v; want ErrInvalidInput", in, err)
		}
		var de *collections.DecodeError
		if !errors.As(err, &de) || de.Format != "JSON" {
			t.Fatalf("FromJSON(%s) err = %#v; want *DecodeError", in, err)
		}
	}
}

func TestFromJSONC(t *testing.T) {
	c, err := collections.FromJSONC(`{
		// listen address
		"host": "localhost",
		"ports": [80, 443,],
	}`)
	if err != nil {
		t.Fatal(err)
	}
	assertJSON(t, c, `{"host":"localhost","ports":[80,443]}`)
}

func FuzzFromJSON(f *testing.F) {
	for _, seed := range []string{`[]`, `{}`, `[1,2.5,"x"]`, `{"0":1,"a":{"b":[null,true]}}`, `{"1":"a","0":"b"}`} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, in string) {
		c, err := collections.FromJSON(in)
		if err != nil {
			return
		}
		out, err := c.ToJSON()
		if err != nil {
			t.Fatalf("ToJSON: %v", err)
		}
		again, err := collections.FromJSON(out)
		if err != nil {
			t.Fatalf("FromJSON(%s): %v", out, err)
		}
		if got := jsonOf(t, again); got != out {
			t.Fatalf("not stable: %s → %s", out, got)
		}
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// YAML & TOML
// ─────────────────────────────────────────────────────────────────────────────

func TestYAMLRoundTrip(t *testing.T) {
	c, err := collections.FromYAML("name: Ada\nborn: 1815\ntags:\n  - math\n  - poetry\nmeta:\n  z: true\n  a: 1.5\n")
	if err != nil {
		t.Fatal(err)
	}
	const want = `{"name":"Ada","born":1815,"tags":["math","poetry"],"meta":{"z":true,"a":1.5}}`
	assertJSON(t, c, want)

	out, err := c.ToYAML()
	if err != nil {
		t.Fatal(err)
	}
	back, err := collections.FromYAML(out)
	if err != nil {
		t.Fatalf("FromYAML(%q): %v", out, err)
	}
	assertJSON(t, back, want)
}

func TestFromYAMLErrors(t *testing.T) {
	if _, err := collections.FromYAML("just a string"); !errors.Is(err, collections.ErrInvalidInput) {
		t.Fatalf("err = %v; want ErrInvalidInput", err)
	}
	if _, err := collections.FromYAML("a: [1, 2"); !errors.Is(err, collections.ErrInvalidInput) {
		t.Fatalf("err = %v; want ErrInvalidInput", err)
	}
}

func TestFromTOMLKeepsDocumentOrder(t *testing.T) {
	c, err := collections.FromTOML(`
title = "demo"
debug = false

[owner]
name = "Tom"
age = 42

[[items]]
id = 2

[[items]]
id = 1
`)
	if err != nil {
		t.Fatal(err)
	}
	assertJSON(t, c, `{"title":"demo","debug":false,"owner":{"name":"Tom","age":42},"items":[{"id":2},{"id":1}]}`)
}

func TestToTOML(t *testing.T) {
	c := collections.MustFrom(map[string]any{"a": 1, "b": map[string]any{"c": "x"}})
	out, err := c.ToTOML()
	if err != nil {
		t.Fatal(err)
	}
	back, err := collections.FromTOML(out)
	if err != nil {
		t.Fatalf("FromTOML(%q): %v", out, err)
	}
	assertJSON(t, back, `{"a":1,"b":{"c":"x"}}`)

	if _, err := collections.New(1, 2).ToTOML(); err == nil {
		t.Fatal("a list cannot be a TOML document")
	}
	if _, err := collections.FromTOML("a = "); !errors.Is(err, collections.ErrInvalidInput) {
		t.Fatalf("err = %v; want ErrInvalidInput", err)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Structs
// ─────────────────────────────────────────────────────────────────────────────

func TestDecode(t *testing.T) {
	c := collections.MustFrom(map[string]any{"host": "localhost", "port": "8080", "tags": []any{"a", "b"}})
	var cfg struct {
		Host string
		Port int
		Tags []string
	}
	if err := c.Decode(&cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Host != "localhost" || cfg.Port != 8080 || len(cfg.Tags) != 2 {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestFromObjectFieldOrder(t *testing.T) {
	type inner struct {
		Y int
		X int
	}
	type outer struct {
		Name  string
		Inner inner `mapstructure:"inner"`
		Age   int   `mapstructure:"age"`
		skip  int
	}
	c, err := collections.FromObject(&outer{Name: "n", Inner: inner{Y: 1, X: 2}, Age: 3, skip: 4})
	if err != nil {
		t.Fatal(err)
	}
	assertJSON(t, c, `{"Name":"n","inner":{"Y":1,"X":2},"age":3}`)

	if _, err := collections.FromObject(42); !errors.Is(err, collections.ErrInvalidInput) {
		t.Fatalf("err = %v; want ErrInvalidInput", err)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// JSON Patch
// ─────────────────────────────────────────────────────────────────────────────

func TestPatch(t *testing.T) {
	c, _ := collections.FromJSON(`{"name":"Ada","tags":["math"]}`)
	got, err := c.Patch(`[
		{"op":"replace","path":"/name","value":"Grace"},
		{"op":"add","path":"/tags/-","value":"navy"}
	]`)
	if err != nil {
		t.Fatal(err)
	}
	assertCopy(t, got, c, `{"name":"Ada","tags":["math"]}`)
	if got.Get("name") != "Grace" || got.Get("tags.1") != "navy" {
		t.Fatalf("patched = %s", jsonOf(t, got))
	}

	if _, err := c.Patch(`[{"op":"remove","path":"/missing"}]`); err == nil {
		t.Fatal("removing a missing path should fail")
	}
	if _, err := c.Patch(`not a patch`); !errors.Is(err, collections.ErrInvalidInput) {
		t.Fatalf("err = %v; want ErrInvalidInput", err)
	}
}

func TestMergePatch(t *testing.T) {
	c, _ := collections.FromJSON(`{"name":"Ada","born":1815}`)
	got, err := c.MergePatch(`{"born":null,"died":1852}`)
	if err != nil {
		t.Fatal(err)
	}
	if got.Has("born") || got.Get("died") != 1852 || got.Get("name") != "Ada" {
		t.Fatalf("merged = %s", jsonOf(t, got))
	}
}
