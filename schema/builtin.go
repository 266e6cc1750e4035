package schema

import "github.com/hcdev/dna-format/go-dna/ir"

// CurrentVersion is the spec version new records are constructed with.
const CurrentVersion = "2.0"

// Record field names, shared with the record model and the C boundary.
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldVersion     = "version"
	FieldUUID        = "uuid"
	FieldSpecVersion = "dna_spec_version"
	FieldProperties  = "properties"
	FieldZomes       = "zomes"
)

func (r *Registry) registerBuiltins() {
	v20 := MustNew(CurrentVersion, []Field{
		{Name: FieldName, Type: ir.StringType},
		{Name: FieldDescription, Type: ir.StringType},
		{
			Name:  FieldVersion,
			Type:  ir.StringType,
			Check: `value == "" || value matches "^[0-9]+(\\.[0-9]+)*$"`,
		},
		{
			Name:  FieldUUID,
			Type:  ir.StringType,
			Check: `value == "" || len(value) == 36`,
		},
		{
			Name:     FieldSpecVersion,
			Type:     ir.StringType,
			ReadOnly: true,
			Check:    `value matches "^[0-9]+\\.[0-9]+$"`,
		},
		{Name: FieldProperties, Type: ir.ObjectType},
		{Name: FieldZomes, Type: ir.ArrayType},
	})
	r.schemas[v20.Version] = v20
}
