package dna

import (
	"fmt"

	"github.com/hcdev/dna-format/go-dna/ir"
	"github.com/hcdev/dna-format/go-dna/schema"
)

// ToIR renders the record as a document node with fields in canonical
// (schema declaration) order and properties keys sorted.  Every field is
// emitted, defaults included, so encodings are complete and reproducible.
func (d *Dna) ToIR() *ir.Node {
	props := d.Properties
	if props == nil {
		props = ir.Object()
	}
	zomes := &ir.Node{Type: ir.ArrayType}
	for i := range d.Zomes {
		zomes.Values = append(zomes.Values, d.Zomes[i].toIR())
	}
	res := ir.Object()
	for _, f := range d.schema().Fields {
		switch f.Name {
		case schema.FieldName:
			res.SetField(f.Name, ir.FromString(d.Name))
		case schema.FieldDescription:
			res.SetField(f.Name, ir.FromString(d.Description))
		case schema.FieldVersion:
			res.SetField(f.Name, ir.FromString(d.Version))
		case schema.FieldUUID:
			res.SetField(f.Name, ir.FromString(d.UUID))
		case schema.FieldSpecVersion:
			res.SetField(f.Name, ir.FromString(d.SpecVersion))
		case schema.FieldProperties:
			res.SetField(f.Name, ir.Canonical(props))
		case schema.FieldZomes:
			res.SetField(f.Name, zomes)
		}
	}
	return res
}

// FromIR fills the record from a document node.  Known fields absent from
// the document keep their defaults; unknown document fields are ignored
// for forward compatibility; a known field with the wrong type is a
// malformed document.  The spec version in the document selects the
// schema the rest of the document is read with.
func (d *Dna) FromIR(node *ir.Node) error {
	if node == nil || node.Type != ir.ObjectType {
		return fmt.Errorf("%w: document is not an object", ErrMalformedDocument)
	}
	version := schema.CurrentVersion
	if v := ir.Get(node, schema.FieldSpecVersion); v != nil {
		if v.Type != ir.StringType {
			return fmt.Errorf("%w: %s wants String, got %s",
				ErrMalformedDocument, schema.FieldSpecVersion, v.Type)
		}
		version = v.String
	}
	sch, err := schema.Default.Resolve(version)
	if err != nil {
		return err
	}
	d.SpecVersion = version
	for i := range sch.Fields {
		f := &sch.Fields[i]
		v := ir.Get(node, f.Name)
		if v == nil || f.Name == schema.FieldSpecVersion {
			continue
		}
		if v.Type != f.Type {
			return fmt.Errorf("%w: field %q wants %s, got %s",
				ErrMalformedDocument, f.Name, f.Type, v.Type)
		}
		switch f.Name {
		case schema.FieldName:
			d.Name = v.String
		case schema.FieldDescription:
			d.Description = v.String
		case schema.FieldVersion:
			d.Version = v.String
		case schema.FieldUUID:
			d.UUID = v.String
		case schema.FieldProperties:
			d.Properties = v.Clone()
		case schema.FieldZomes:
			zomes := make([]Zome, 0, len(v.Values))
			for _, zNode := range v.Values {
				z, err := zomeFromIR(zNode)
				if err != nil {
					return err
				}
				zomes = append(zomes, z)
			}
			d.Zomes = zomes
		}
	}
	return nil
}
