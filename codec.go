package dna

import (
	"bytes"
	"io"

	"github.com/hcdev/dna-format/go-dna/debug"
	"github.com/hcdev/dna-format/go-dna/encode"
	"github.com/hcdev/dna-format/go-dna/parse"
)

// Decode parses document text into a new record.  The input format
// defaults to JSON; pass parse.ParseFormat for YAML.  Absent known fields
// take their defaults, unknown fields are ignored, and structurally
// invalid input fails with ErrMalformedDocument rather than producing a
// partially populated record.
func Decode(d []byte, opts ...parse.ParseOption) (*Dna, error) {
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	if debug.Decode() {
		debug.Logf("decoded document: %v\n", node)
	}
	res := New()
	if err := res.FromIR(node); err != nil {
		return nil, err
	}
	return res, nil
}

// Encode writes the record's document to w, indented JSON by default.
func Encode(d *Dna, w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(d.ToIR(), w, opts...)
}

// EncodeString returns the compact wire-JSON document for the record, the
// form handed across the C boundary.
func EncodeString(d *Dna) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(d.ToIR(), buf, encode.EncodeWire(true)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
