package schema

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/hcdev/dna-format/go-dna/ir"
)

// Field describes one named member of a record.
type Field struct {
	Name     string
	Type     ir.Type
	ReadOnly bool

	// Check is an optional boolean expr program evaluated with the
	// candidate value bound to `value`.  Only scalar fields carry checks.
	Check string

	prog *vm.Program
}

func (f *Field) IsScalar() bool {
	return f.Type.IsLeaf()
}

func (f *Field) compile() error {
	if f.Check == "" {
		return nil
	}
	prog, err := expr.Compile(f.Check, expr.Env(checkEnv()), expr.AsBool())
	if err != nil {
		return fmt.Errorf("field %q check: %w", f.Name, err)
	}
	f.prog = prog
	return nil
}

func checkEnv() map[string]any {
	return map[string]any{"value": ""}
}

// validate checks a candidate scalar value against the field's type and
// constraint.
func (f *Field) validate(value string) error {
	if f.prog == nil {
		return nil
	}
	out, err := expr.Run(f.prog, map[string]any{"value": value})
	if err != nil {
		return fmt.Errorf("%w: %q check: %w", ErrInvalidField, f.Name, err)
	}
	if ok, _ := out.(bool); !ok {
		return fmt.Errorf("%w: %q rejects value %q", ErrInvalidField, f.Name, value)
	}
	return nil
}
