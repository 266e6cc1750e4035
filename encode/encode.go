package encode

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"encoding/json/jsontext"

	"github.com/goccy/go-yaml"

	"github.com/hcdev/dna-format/go-dna/format"
	"github.com/hcdev/dna-format/go-dna/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int
	wire          bool

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w.  The default is indented JSON; see the options
// for wire JSON and YAML.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if es.format.IsYAML() {
		return encodeYAML(node, w)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	if es.wire {
		return nil
	}
	return writeString(w, "\n")
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		return encodeString(node, w, es)
	case ir.NumberType:
		return encodeNumber(node, w, es)
	case ir.BoolType:
		return encodeBool(node, w, es)
	case ir.NullType:
		return encodeNull(node, w, es)
	default:
		panic("type")
	}
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	n := len(node.Fields)
	if n == 0 {
		return writeString(w, "{}")
	}
	if err := writeString(w, "{"); err != nil {
		return err
	}
	es.depth++
	for i, yField := range node.Fields {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeField(w, yField.String, es); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
		if i < n-1 {
			if err := writeSep(w, ",", ir.ObjectType, es); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, "}")
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	n := len(node.Values)
	if n == 0 {
		return writeString(w, "[]")
	}
	if err := writeString(w, "["); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
		if i < n-1 {
			if err := writeSep(w, ",", ir.ArrayType, es); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, "]")
}

func encodeString(node *ir.Node, w io.Writer, es *EncState) error {
	v, err := quote(node.String)
	if err != nil {
		return err
	}
	return writeString(w, applyColor(es, ir.StringType, ValueColor, v))
}

func encodeNumber(node *ir.Node, w io.Writer, es *EncState) error {
	var v string
	switch {
	case node.Int64 != nil:
		v = strconv.FormatInt(*node.Int64, 10)
	case node.Float64 != nil:
		v = strconv.FormatFloat(*node.Float64, 'f', -1, 64)
		// whole-valued floats keep a decimal point so they re-parse as
		// floats, not ints
		if !strings.ContainsAny(v, ".eE") {
			v += ".0"
		}
	default:
		return fmt.Errorf("%w: number node without value", ErrEncoding)
	}
	return writeString(w, applyColor(es, ir.NumberType, ValueColor, v))
}

func encodeBool(node *ir.Node, w io.Writer, es *EncState) error {
	v := strconv.FormatBool(node.Bool)
	return writeString(w, applyColor(es, ir.BoolType, ValueColor, v))
}

func encodeNull(_ *ir.Node, w io.Writer, es *EncState) error {
	return writeString(w, applyColor(es, ir.NullType, ValueColor, "null"))
}

// Helper functions for writing

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	indentString := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	return writeString(w, "\n"+indentString)
}

func writeField(w io.Writer, f string, es *EncState) error {
	qf, err := quote(f)
	if err != nil {
		return err
	}
	sep := ":"
	if !es.wire {
		sep = ": "
	}
	qf = applyColor(es, ir.ObjectType, FieldColor, qf)
	sep = applyColor(es, ir.ObjectType, SepColor, sep)
	return writeString(w, qf+sep)
}

func writeSep(w io.Writer, sep string, cType ir.Type, es *EncState) error {
	return writeString(w, applyColor(es, cType, SepColor, sep))
}

func quote(v string) (string, error) {
	d, err := jsontext.AppendQuote(nil, v)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return string(d), nil
}

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

// YAML encoding

func encodeYAML(node *ir.Node, w io.Writer) error {
	d, err := yaml.Marshal(toYAML(node))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return writeString(w, string(d))
}

// toYAML lowers IR into goccy values, using MapSlice so member order
// survives marshaling.
func toYAML(node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		ms := make(yaml.MapSlice, len(node.Fields))
		for i, field := range node.Fields {
			ms[i] = yaml.MapItem{Key: field.String, Value: toYAML(node.Values[i])}
		}
		return ms
	case ir.ArrayType:
		vals := make([]any, len(node.Values))
		for i, v := range node.Values {
			vals[i] = toYAML(v)
		}
		return vals
	case ir.StringType:
		return node.String
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return nil
	case ir.BoolType:
		return node.Bool
	default:
		return nil
	}
}
