package schema

import (
	"fmt"

	"github.com/hcdev/dna-format/go-dna/ir"
)

// Schema is the field table for one spec version.  Field order is the
// canonical encoding order.
type Schema struct {
	Version string
	Fields  []Field

	byName map[string]*Field
}

func New(version string, fields []Field) (*Schema, error) {
	if version == "" {
		return nil, fmt.Errorf("schema version cannot be empty")
	}
	s := &Schema{
		Version: version,
		Fields:  fields,
		byName:  make(map[string]*Field, len(fields)),
	}
	for i := range s.Fields {
		f := &s.Fields[i]
		if _, exists := s.byName[f.Name]; exists {
			return nil, fmt.Errorf("duplicate field %q in schema %s", f.Name, version)
		}
		if err := f.compile(); err != nil {
			return nil, err
		}
		s.byName[f.Name] = f
	}
	return s, nil
}

func MustNew(version string, fields []Field) *Schema {
	s, err := New(version, fields)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema) Field(name string) (*Field, bool) {
	f, ok := s.byName[name]
	return f, ok
}

// ValidateSet checks a by-name scalar write: the field must exist, be a
// writable scalar, and accept the value.
func (s *Schema) ValidateSet(name, value string) error {
	f, ok := s.byName[name]
	if !ok {
		return fmt.Errorf("%w: unknown field %q", ErrInvalidField, name)
	}
	if f.ReadOnly {
		return fmt.Errorf("%w: field %q is read-only", ErrInvalidField, name)
	}
	if !f.IsScalar() {
		return fmt.Errorf("%w: field %q is not a scalar", ErrInvalidField, name)
	}
	return f.validate(value)
}

// ValidateNode checks a decoded document value against the field's IR type.
func (s *Schema) ValidateNode(name string, node *ir.Node) error {
	f, ok := s.byName[name]
	if !ok {
		return fmt.Errorf("%w: unknown field %q", ErrInvalidField, name)
	}
	if node.Type != f.Type {
		return fmt.Errorf("%w: field %q wants %s, got %s",
			ErrInvalidField, name, f.Type, node.Type)
	}
	return nil
}
