package encode

import (
	"bytes"
	"testing"

	"github.com/hcdev/dna-format/go-dna/format"
	"github.com/hcdev/dna-format/go-dna/ir"
	"github.com/hcdev/dna-format/go-dna/parse"
)

func mustParse(t *testing.T, in string) *ir.Node {
	t.Helper()
	node, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatalf("parse %q: %v", in, err)
	}
	return node
}

func encodeToString(t *testing.T, node *ir.Node, opts ...EncodeOption) string {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestEncodeWire(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{`null`, `null`},
		{`true`, `true`},
		{`-42`, `-42`},
		{`3.5`, `3.5`},
		{`"a"`, `"a"`},
		{`{}`, `{}`},
		{`[]`, `[]`},
		{`{"a":1,"b":[2,3]}`, `{"a":1,"b":[2,3]}`},
		{`{"o":{"x":"y"}}`, `{"o":{"x":"y"}}`},
	}
	for _, tt := range tests {
		got := encodeToString(t, mustParse(t, tt.in), EncodeWire(true))
		if got != tt.out {
			t.Errorf("wire(%q) = %q, want %q", tt.in, got, tt.out)
		}
	}
}

func TestEncodeIndented(t *testing.T) {
	got := encodeToString(t, mustParse(t, `{"a":1,"b":[2]}`))
	want := `{
  "a": 1,
  "b": [
    2
  ]
}
`
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeFloatKeepsPoint(t *testing.T) {
	tests := []struct {
		in  float64
		out string
	}{
		{0, "0.0"},
		{2, "2.0"},
		{-3, "-3.0"},
		{1.5, "1.5"},
		{1e21, "1000000000000000000000.0"},
	}
	for _, tt := range tests {
		got := encodeToString(t, ir.FromFloat(tt.in), EncodeWire(true))
		if got != tt.out {
			t.Errorf("float %v = %q, want %q", tt.in, got, tt.out)
		}
	}
}

func TestEncodeFloatRoundTripsAsFloat(t *testing.T) {
	for _, f := range []float64{0, 2, -7, 0.5} {
		out := encodeToString(t, ir.FromFloat(f), EncodeWire(true))
		back := mustParse(t, out)
		if back.Float64 == nil || *back.Float64 != f {
			t.Errorf("float %v re-parsed as %+v", f, back)
		}
	}
}

func TestEncodeStringEscapes(t *testing.T) {
	node := ir.FromString("a\"b\nc")
	got := encodeToString(t, node, EncodeWire(true))
	if got != `"a\"b\nc"` {
		t.Errorf("got %q", got)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	in := `{"z":1,"a":{"y":2,"b":3}}`
	node := mustParse(t, in)
	first := encodeToString(t, node, EncodeWire(true))
	for i := 0; i < 10; i++ {
		if got := encodeToString(t, node, EncodeWire(true)); got != first {
			t.Fatalf("iteration %d: %q != %q", i, got, first)
		}
	}
	if first != in {
		t.Errorf("field order not preserved: %q", first)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	ins := []string{
		`{"name":"app","zomes":[{"name":"z","config":{"error_handling":"throw-errors"}}]}`,
		`{"properties":{"k":null,"n":-1,"f":2.5,"b":false}}`,
		`[{"a":[[]]},{}]`,
	}
	for _, in := range ins {
		node := mustParse(t, in)
		out := encodeToString(t, node, EncodeWire(true))
		back := mustParse(t, out)
		if !ir.Equal(node, back) {
			t.Errorf("round trip of %q lost structure: %q", in, out)
		}
	}
}

func TestEncodeYAML(t *testing.T) {
	node := mustParse(t, `{"name":"app","n":3,"zomes":[]}`)
	got := encodeToString(t, node, EncodeFormat(format.YAMLFormat))
	want := "name: app\nn: 3\nzomes: []\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatFromOpts(t *testing.T) {
	if f := FormatFromOpts(EncodeFormat(format.YAMLFormat)); !f.IsYAML() {
		t.Errorf("got %s, want yaml", f)
	}
	if f := FormatFromOpts(); !f.IsJSON() {
		t.Errorf("got %s, want json", f)
	}
}
