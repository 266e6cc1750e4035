package dna

import (
	"fmt"

	"github.com/hcdev/dna-format/go-dna/ir"
)

const (
	zomeName          = "name"
	zomeDescription   = "description"
	zomeConfig        = "config"
	zomeEntryTypes    = "entry_types"
	configErrHandling = "error_handling"
	entryTypeName     = "name"
	entryTypeSharing  = "sharing"
)

// Zome is one named code unit of a record.
type Zome struct {
	Name        string
	Description string
	Config      ZomeConfig
	EntryTypes  []EntryType
}

type ZomeConfig struct {
	ErrorHandling string
}

type EntryType struct {
	Name    string
	Sharing string
}

func DefaultZomeConfig() ZomeConfig {
	return ZomeConfig{ErrorHandling: "throw-errors"}
}

func DefaultSharing() string { return "public" }

func (z *Zome) clone() Zome {
	res := *z
	res.EntryTypes = make([]EntryType, len(z.EntryTypes))
	copy(res.EntryTypes, z.EntryTypes)
	return res
}

func (z *Zome) toIR() *ir.Node {
	cfg := ir.Object()
	cfg.SetField(configErrHandling, ir.FromString(z.Config.ErrorHandling))
	entries := &ir.Node{Type: ir.ArrayType}
	for i := range z.EntryTypes {
		et := &z.EntryTypes[i]
		etNode := ir.Object()
		etNode.SetField(entryTypeName, ir.FromString(et.Name))
		etNode.SetField(entryTypeSharing, ir.FromString(et.Sharing))
		entries.Values = append(entries.Values, etNode)
	}
	res := ir.Object()
	res.SetField(zomeName, ir.FromString(z.Name))
	res.SetField(zomeDescription, ir.FromString(z.Description))
	res.SetField(zomeConfig, cfg)
	res.SetField(zomeEntryTypes, entries)
	return res
}

func zomeFromIR(node *ir.Node) (Zome, error) {
	z := Zome{Config: DefaultZomeConfig(), EntryTypes: []EntryType{}}
	if node.Type != ir.ObjectType {
		return z, fmt.Errorf("%w: zome wants Object, got %s", ErrMalformedDocument, node.Type)
	}
	var err error
	if z.Name, err = stringMember(node, zomeName, ""); err != nil {
		return z, err
	}
	if z.Description, err = stringMember(node, zomeDescription, ""); err != nil {
		return z, err
	}
	if cfg := ir.Get(node, zomeConfig); cfg != nil {
		if cfg.Type != ir.ObjectType {
			return z, fmt.Errorf("%w: zome config wants Object, got %s",
				ErrMalformedDocument, cfg.Type)
		}
		eh, err := stringMember(cfg, configErrHandling, z.Config.ErrorHandling)
		if err != nil {
			return z, err
		}
		z.Config.ErrorHandling = eh
	}
	ets := ir.Get(node, zomeEntryTypes)
	if ets == nil {
		return z, nil
	}
	if ets.Type != ir.ArrayType {
		return z, fmt.Errorf("%w: entry_types wants Array, got %s",
			ErrMalformedDocument, ets.Type)
	}
	for _, etNode := range ets.Values {
		if etNode.Type != ir.ObjectType {
			return z, fmt.Errorf("%w: entry type wants Object, got %s",
				ErrMalformedDocument, etNode.Type)
		}
		et := EntryType{Sharing: DefaultSharing()}
		if et.Name, err = stringMember(etNode, entryTypeName, ""); err != nil {
			return z, err
		}
		if et.Sharing, err = stringMember(etNode, entryTypeSharing, et.Sharing); err != nil {
			return z, err
		}
		z.EntryTypes = append(z.EntryTypes, et)
	}
	return z, nil
}

func stringMember(node *ir.Node, field, dflt string) (string, error) {
	v := ir.Get(node, field)
	if v == nil {
		return dflt, nil
	}
	if v.Type != ir.StringType {
		return "", fmt.Errorf("%w: %q wants String, got %s",
			ErrMalformedDocument, field, v.Type)
	}
	return v.String, nil
}
