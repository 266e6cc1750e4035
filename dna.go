package dna

import (
	"github.com/hcdev/dna-format/go-dna/ir"
	"github.com/hcdev/dna-format/go-dna/schema"
)

// Dna is the record.  Scalar fields are also reachable by JSON key through
// Get and Set; Properties holds free-form schema-typed configuration as an
// object node; Zomes is the ordered list of code units.
type Dna struct {
	Name        string
	Description string
	Version     string
	UUID        string
	SpecVersion string
	Properties  *ir.Node
	Zomes       []Zome
}

// New returns a record with every field at its default.  The spec version
// is the current supported format version; uuid defaults empty so that a
// fresh record and one decoded from an empty document are equivalent.
// Callers wanting a uuid assign one explicitly (see AssignUUID).
func New() *Dna {
	return &Dna{
		SpecVersion: schema.CurrentVersion,
		Properties:  ir.Object(),
		Zomes:       []Zome{},
	}
}

func (d *Dna) Clone() *Dna {
	res := &Dna{}
	*res = *d
	if d.Properties != nil {
		res.Properties = d.Properties.Clone()
	}
	res.Zomes = make([]Zome, len(d.Zomes))
	for i := range d.Zomes {
		res.Zomes[i] = d.Zomes[i].clone()
	}
	return res
}

// Equal reports field equivalence, the relation preserved by the codec
// round trip.
func (d *Dna) Equal(o *Dna) bool {
	if d == nil || o == nil {
		return d == o
	}
	return ir.Equivalent(d.ToIR(), o.ToIR())
}

func (d *Dna) schema() *schema.Schema {
	s, err := schema.Default.Resolve(d.SpecVersion)
	if err != nil {
		// both construction paths guarantee a registered version; fall
		// back to current for records built by hand
		return schema.Current()
	}
	return s
}
