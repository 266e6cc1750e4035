package schema

import (
	"errors"
	"testing"

	"github.com/hcdev/dna-format/go-dna/ir"
)

func TestResolve(t *testing.T) {
	s, err := Default.Resolve(CurrentVersion)
	if err != nil {
		t.Fatal(err)
	}
	if s.Version != CurrentVersion {
		t.Errorf("got version %q", s.Version)
	}
	if _, err := Default.Resolve("9.9"); !errors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("got %v, want ErrUnsupportedVersion", err)
	}
}

func TestVersions(t *testing.T) {
	vs := Default.Versions()
	if len(vs) == 0 || vs[0] != CurrentVersion {
		t.Errorf("Versions() = %v", vs)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	reg := NewRegistry()
	s := MustNew("3.0", []Field{{Name: "name", Type: ir.StringType}})
	if err := reg.Register(s); err != nil {
		t.Fatal(err)
	}
	// same schema again is fine
	if err := reg.Register(s); err != nil {
		t.Errorf("re-registering same schema: %v", err)
	}
	other := MustNew("3.0", []Field{{Name: "name", Type: ir.StringType}})
	if err := reg.Register(other); err == nil {
		t.Error("conflicting registration succeeded")
	}
}

func TestNewRejectsDuplicateFields(t *testing.T) {
	_, err := New("x", []Field{
		{Name: "a", Type: ir.StringType},
		{Name: "a", Type: ir.StringType},
	})
	if err == nil {
		t.Error("duplicate field accepted")
	}
}

func TestValidateSet(t *testing.T) {
	s := Current()
	tests := []struct {
		name, field, value string
		e                  error
	}{
		{"name ok", FieldName, "my-app", nil},
		{"name empty ok", FieldName, "", nil},
		{"description ok", FieldDescription, "anything at all", nil},
		{"version ok", FieldVersion, "1.2.3", nil},
		{"version single ok", FieldVersion, "1", nil},
		{"version empty ok", FieldVersion, "", nil},
		{"version junk", FieldVersion, "abc", ErrInvalidField},
		{"uuid ok", FieldUUID, "00000000-0000-0000-0000-000000000000", nil},
		{"uuid empty ok", FieldUUID, "", nil},
		{"uuid short", FieldUUID, "1234", ErrInvalidField},
		{"spec version read-only", FieldSpecVersion, "2.0", ErrInvalidField},
		{"properties not scalar", FieldProperties, "{}", ErrInvalidField},
		{"zomes not scalar", FieldZomes, "[]", ErrInvalidField},
		{"unknown field", "nope", "v", ErrInvalidField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.ValidateSet(tt.field, tt.value)
			if tt.e == nil {
				if err != nil {
					t.Errorf("ValidateSet(%q, %q): %v", tt.field, tt.value, err)
				}
				return
			}
			if !errors.Is(err, tt.e) {
				t.Errorf("ValidateSet(%q, %q) = %v, want %v", tt.field, tt.value, err, tt.e)
			}
		})
	}
}

func TestValidateNode(t *testing.T) {
	s := Current()
	if err := s.ValidateNode(FieldProperties, ir.Object()); err != nil {
		t.Errorf("properties object: %v", err)
	}
	if err := s.ValidateNode(FieldProperties, ir.FromString("x")); !errors.Is(err, ErrInvalidField) {
		t.Errorf("properties string = %v, want ErrInvalidField", err)
	}
	if err := s.ValidateNode("nope", ir.Null()); !errors.Is(err, ErrInvalidField) {
		t.Errorf("unknown field = %v, want ErrInvalidField", err)
	}
}

func TestFieldCheckCompileError(t *testing.T) {
	_, err := New("x", []Field{{Name: "a", Type: ir.StringType, Check: "value +"}})
	if err == nil {
		t.Error("bad check expression accepted")
	}
}

func TestFieldOrder(t *testing.T) {
	want := []string{
		FieldName, FieldDescription, FieldVersion, FieldUUID,
		FieldSpecVersion, FieldProperties, FieldZomes,
	}
	s := Current()
	if len(s.Fields) != len(want) {
		t.Fatalf("got %d fields, want %d", len(s.Fields), len(want))
	}
	for i, f := range s.Fields {
		if f.Name != want[i] {
			t.Errorf("field %d = %q, want %q", i, f.Name, want[i])
		}
	}
}
