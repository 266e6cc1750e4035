package parse

import (
	"errors"
	"testing"

	"github.com/hcdev/dna-format/go-dna/format"
	"github.com/hcdev/dna-format/go-dna/ir"
)

type parseTest struct {
	in string
	e  error
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{in: `null`},
		{in: `true`},
		{in: `false`},
		{in: `22`},
		{in: `-7`},
		{in: `1e14`},
		{in: `3.14`},
		{in: `"hello"`},
		{in: `""`},
		{in: `[]`},
		{in: `[1,2,3]`},
		{in: `[[]]`},
		{in: `["a",["b",["c"]]]`},
		{in: `{}`},
		{in: `{"a": "b"}`},
		{in: `{"a": {"b": 9}, "c": {"d": 8}}`},
		{in: `{"a": [1,2], "f": [0,1,2,"three"]}`},
		{in: `[0, {"f": 2, "g": 3}]`},
		{in: `{"null": null}`},
		{in: `  {"a": 1}  `},
	}
	for i, pt := range pts {
		if _, err := Parse([]byte(pt.in)); err != nil {
			t.Errorf("test %d: Parse(%q): %v", i, pt.in, err)
		}
	}
}

func TestParseMalformed(t *testing.T) {
	pts := []parseTest{
		{in: ``, e: ErrMalformed},
		{in: `   `, e: ErrMalformed},
		{in: `{`, e: ErrMalformed},
		{in: `}`, e: ErrMalformed},
		{in: `{"a":}`, e: ErrMalformed},
		{in: `{"a" 1}`, e: ErrMalformed},
		{in: `[1,2`, e: ErrMalformed},
		{in: `"unterminated`, e: ErrMalformed},
		{in: `{"a": 1} trailing`, e: ErrMalformed},
		{in: `{} {}`, e: ErrMalformed},
		{in: `nul`, e: ErrMalformed},
	}
	for i, pt := range pts {
		_, err := Parse([]byte(pt.in))
		if err == nil {
			t.Errorf("test %d: Parse(%q) succeeded, want error", i, pt.in)
			continue
		}
		if !errors.Is(err, pt.e) {
			t.Errorf("test %d: Parse(%q) = %v, want %v", i, pt.in, err, pt.e)
		}
	}
}

func TestParseValues(t *testing.T) {
	node, err := Parse([]byte(`{"s": "v", "i": 42, "f": 1.5, "b": true, "n": null, "a": [1], "o": {}}`))
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ir.ObjectType {
		t.Fatalf("got %s, want Object", node.Type)
	}
	if v := ir.Get(node, "s"); v.Type != ir.StringType || v.String != "v" {
		t.Errorf("s = %v", v)
	}
	if v := ir.Get(node, "i"); v.Int64 == nil || *v.Int64 != 42 {
		t.Errorf("i = %v", v)
	}
	if v := ir.Get(node, "f"); v.Float64 == nil || *v.Float64 != 1.5 {
		t.Errorf("f = %v", v)
	}
	if v := ir.Get(node, "b"); v.Type != ir.BoolType || !v.Bool {
		t.Errorf("b = %v", v)
	}
	if v := ir.Get(node, "n"); v.Type != ir.NullType {
		t.Errorf("n = %v", v)
	}
	if v := ir.Get(node, "a"); v.Type != ir.ArrayType || len(v.Values) != 1 {
		t.Errorf("a = %v", v)
	}
	if v := ir.Get(node, "o"); v.Type != ir.ObjectType || len(v.Fields) != 0 {
		t.Errorf("o = %v", v)
	}
}

func TestParseFieldOrder(t *testing.T) {
	node, err := Parse([]byte(`{"z": 1, "a": 2, "m": 3}`))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"z", "a", "m"}
	for i, f := range node.Fields {
		if f.String != want[i] {
			t.Errorf("field %d = %q, want %q", i, f.String, want[i])
		}
	}
}

func TestParseYAML(t *testing.T) {
	in := `
name: app
zomes:
- name: z1
  config:
    error_handling: throw-errors
`
	node, err := Parse([]byte(in), ParseFormat(format.YAMLFormat))
	if err != nil {
		t.Fatal(err)
	}
	if v := ir.Get(node, "name"); v == nil || v.String != "app" {
		t.Errorf("name = %v", v)
	}
	zomes := ir.Get(node, "zomes")
	if zomes == nil || zomes.Type != ir.ArrayType || len(zomes.Values) != 1 {
		t.Fatalf("zomes = %v", zomes)
	}
	cfg := ir.Get(zomes.Values[0], "config")
	if v := ir.Get(cfg, "error_handling"); v == nil || v.String != "throw-errors" {
		t.Errorf("error_handling = %v", v)
	}
}

func TestParseYAMLDeterministic(t *testing.T) {
	a, err := Parse([]byte("b: 2\na: 1\n"), ParseFormat(format.YAMLFormat))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse([]byte("a: 1\nb: 2\n"), ParseFormat(format.YAMLFormat))
	if err != nil {
		t.Fatal(err)
	}
	// map-sourced objects come out in sorted key order
	if !ir.Equal(a, b) {
		t.Error("yaml documents with reordered members parse unequal")
	}
}

func TestParseYAMLMalformed(t *testing.T) {
	_, err := Parse([]byte("a: [1,\n"), ParseFormat(format.YAMLFormat))
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("got %v, want ErrMalformed", err)
	}
}
