package parse

import (
	"bytes"
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

// Parse decodes one document into IR.  The input format defaults to JSON;
// use ParseFormat to select YAML.  Empty or whitespace-only input is
// malformed: a document must contain exactly one value.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.JSONFormat}
	for _, f := range opts {
		f(pOpts)
	}
	switch pOpts.format {
	case format.JSONFormat:
		return parseJSON(d)
	case format.YAMLFormat:
		return parseYAML(d)
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrBadFormat, pOpts.format)
	}
}

func parseJSON(d []byte) (*ir.Node, error) {
	dec := jsontext.NewDecoder(bytes.NewReader(d))
	node, err := jsonValue(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if _, err := dec.ReadToken(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after document", ErrMalformed)
	}
	return node, nil
}

func jsonValue(dec *jsontext.Decoder) (*ir.Node, error) {
	tok, err := dec.ReadToken()
	if err != nil {
		return nil, err
	}
	return jsonFromToken(dec, tok)
}

func jsonFromToken(dec *jsontext.Decoder, tok jsontext.Token) (*ir.Node, error) {
	switch tok.Kind() {
	case 'n':
		return ir.Null(), nil
	case 't', 'f':
		return ir.FromBool(tok.Bool()), nil
	case '"':
		return ir.FromString(tok.String()), nil
	case '0':
		return numberNode(tok.String())
	case '{':
		obj := ir.Object()
		for {
			tok, err := dec.ReadToken()
			if err != nil {
				return nil, err
			}
			if tok.Kind() == '}' {
				return obj, nil
			}
			// object keys are always string tokens here
			field := tok.String()
			val, err := jsonValue(dec)
			if err != nil {
				return nil, err
			}
			obj.SetField(field, val)
		}
	case '[':
		arr := &ir.Node{Type: ir.ArrayType}
		for {
			tok, err := dec.ReadToken()
			if err != nil {
				return nil, err
			}
			if tok.Kind() == ']' {
				return arr, nil
			}
			val, err := jsonFromToken(dec, tok)
			if err != nil {
				return nil, err
			}
			arr.Values = append(arr.Values, val)
		}
	default:
		return nil, fmt.Errorf("unexpected token %s", tok)
	}
}

func numberNode(raw string) (*ir.Node, error) {
	if !strings.ContainsAny(raw, ".eE") {
		i, err := strconv.ParseInt(raw, 10, 64)
		if err == nil {
			return ir.FromInt(i), nil
		}
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("bad number %q: %w", raw, err)
	}
	return ir.FromFloat(f), nil
}

func parseYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if v == nil && len(bytes.TrimSpace(d)) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrMalformed)
	}
	return fromAny(v)
}

// fromAny lifts a decoded YAML value into IR.  Object members come back in
// map order, so FromMap's sorted construction is what keeps YAML-sourced
// documents deterministic.
func fromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint64:
		if x > uint64(1)<<63-1 {
			return nil, fmt.Errorf("%w: number %d overflows", ErrMalformed, x)
		}
		return ir.FromInt(int64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case map[string]any:
		yMap := make(map[string]*ir.Node, len(x))
		for k, mv := range x {
			node, err := fromAny(mv)
			if err != nil {
				return nil, err
			}
			yMap[k] = node
		}
		return ir.FromMap(yMap), nil
	case []any:
		vals := make([]*ir.Node, len(x))
		for i, ev := range x {
			node, err := fromAny(ev)
			if err != nil {
				return nil, err
			}
			vals[i] = node
		}
		return ir.FromSlice(vals), nil
	default:
		return nil, fmt.Errorf("%w: unsupported value %T", ErrMalformed, v)
	}
}
