package dna

import (
	"fmt"

	"github.com/hcdev/dna-format/go-dna/schema"
)

// Get returns the current value of a scalar field by its JSON key.
func (d *Dna) Get(field string) (string, error) {
	f, ok := d.schema().Field(field)
	if !ok {
		return "", fmt.Errorf("%w: unknown field %q", ErrInvalidField, field)
	}
	if !f.IsScalar() {
		return "", fmt.Errorf("%w: field %q is not a scalar", ErrInvalidField, field)
	}
	switch field {
	case schema.FieldName:
		return d.Name, nil
	case schema.FieldDescription:
		return d.Description, nil
	case schema.FieldVersion:
		return d.Version, nil
	case schema.FieldUUID:
		return d.UUID, nil
	case schema.FieldSpecVersion:
		return d.SpecVersion, nil
	default:
		return "", fmt.Errorf("%w: field %q has no accessor", ErrInvalidField, field)
	}
}

// Set overwrites a scalar field by its JSON key.  The write is validated
// against the record's schema; dna_spec_version is read-only by schema and
// cannot be written here.
func (d *Dna) Set(field, value string) error {
	if err := d.schema().ValidateSet(field, value); err != nil {
		return err
	}
	switch field {
	case schema.FieldName:
		d.Name = value
	case schema.FieldDescription:
		d.Description = value
	case schema.FieldVersion:
		d.Version = value
	case schema.FieldUUID:
		d.UUID = value
	default:
		return fmt.Errorf("%w: field %q has no mutator", ErrInvalidField, field)
	}
	return nil
}
