package ir

import (
	"maps"
	"slices"
)

// Node is one vertex of a document tree.  For ObjectType, Fields and
// Values are parallel; Fields are StringType nodes naming the members.
// For ArrayType only Values is set.  Leaf payloads live in String, Bool,
// Int64 or Float64 according to Type.
type Node struct {
	Type   Type
	Fields []*Node
	Values []*Node

	String  string
	Bool    bool
	Float64 *float64
	Int64   *int64
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.String = y.String
	dst.Bool = y.Bool
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
		for i, yf := range y.Fields {
			dst.Fields[i] = yf.Clone()
		}
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	return dst
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Float64: &f}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func Object() *Node {
	return &Node{Type: ObjectType}
}

// ToMap flattens an object node into a field-name map.  Returns nil for
// non-object nodes.
func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		res[node.Fields[i].String] = node.Values[i]
	}
	return res
}

// FromMap builds an object node with fields in sorted key order, which is
// what makes encodings of map-built objects reproducible.
func FromMap(yMap map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, 0, len(yMap))
	res.Values = make([]*Node, 0, len(yMap))
	for _, key := range slices.Sorted(maps.Keys(yMap)) {
		res.Fields = append(res.Fields, FromString(key))
		res.Values = append(res.Values, yMap[key])
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = make([]*Node, len(ySlice))
	copy(res.Values, ySlice)
	return res
}

// Canonical returns a deep copy with object members sorted by field name
// at every level.  Array order is data and is preserved.
func Canonical(y *Node) *Node {
	switch y.Type {
	case ObjectType:
		yMap := make(map[string]*Node, len(y.Fields))
		for i := range y.Fields {
			yMap[y.Fields[i].String] = Canonical(y.Values[i])
		}
		return FromMap(yMap)
	case ArrayType:
		vals := make([]*Node, len(y.Values))
		for i, v := range y.Values {
			vals[i] = Canonical(v)
		}
		return FromSlice(vals)
	default:
		return y.Clone()
	}
}

// SetField sets or appends an object member, preserving field order for
// existing members.
func (y *Node) SetField(field string, val *Node) {
	for i := range y.Fields {
		if y.Fields[i].String == field {
			y.Values[i] = val
			return
		}
	}
	y.Fields = append(y.Fields, FromString(field))
	y.Values = append(y.Values, val)
}

func Get(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}
