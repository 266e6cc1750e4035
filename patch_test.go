package dna

import (
	"errors"
	"strings"
	"testing"
)

func TestPatch(t *testing.T) {
	doc, err := EncodeString(New())
	if err != nil {
		t.Fatal(err)
	}
	out, err := Patch([]byte(doc),
		[]byte(`[{"op": "replace", "path": "/name", "value": "patched"}]`))
	if err != nil {
		t.Fatal(err)
	}
	d, err := Decode(out)
	if err != nil {
		t.Fatal(err)
	}
	if d.Name != "patched" {
		t.Errorf("Name = %q, want patched", d.Name)
	}
}

func TestPatchAddZome(t *testing.T) {
	doc, err := EncodeString(New())
	if err != nil {
		t.Fatal(err)
	}
	out, err := Patch([]byte(doc),
		[]byte(`[{"op": "add", "path": "/zomes/-", "value": {"name": "z"}}]`))
	if err != nil {
		t.Fatal(err)
	}
	d, err := Decode(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Zomes) != 1 || d.Zomes[0].Name != "z" {
		t.Errorf("Zomes = %+v", d.Zomes)
	}
	// defaults fill in through the re-decode
	if d.Zomes[0].Config.ErrorHandling != "throw-errors" {
		t.Errorf("ErrorHandling = %q", d.Zomes[0].Config.ErrorHandling)
	}
}

func TestPatchBadPatch(t *testing.T) {
	doc, err := EncodeString(New())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Patch([]byte(doc), []byte(`{"not": "a patch"`)); !errors.Is(err, ErrMalformedDocument) {
		t.Errorf("got %v, want ErrMalformedDocument", err)
	}
	if _, err := Patch([]byte(doc),
		[]byte(`[{"op": "replace", "path": "/nope", "value": 1}]`)); err == nil {
		t.Error("replacing a missing path succeeded")
	}
}

func TestPatchCannotCorrupt(t *testing.T) {
	doc, err := EncodeString(New())
	if err != nil {
		t.Fatal(err)
	}
	// a patch that sets a known field to the wrong type fails the re-decode
	if _, err := Patch([]byte(doc),
		[]byte(`[{"op": "replace", "path": "/name", "value": 42}]`)); !errors.Is(err, ErrMalformedDocument) {
		t.Errorf("got %v, want ErrMalformedDocument", err)
	}
}

func TestMergePatch(t *testing.T) {
	doc, err := EncodeString(New())
	if err != nil {
		t.Fatal(err)
	}
	out, err := MergePatch([]byte(doc), []byte(`{"name": "merged", "description": "d"}`))
	if err != nil {
		t.Fatal(err)
	}
	d, err := Decode(out)
	if err != nil {
		t.Fatal(err)
	}
	if d.Name != "merged" || d.Description != "d" {
		t.Errorf("record = %+v", d)
	}
}

func TestDiff(t *testing.T) {
	a := New()
	b := New()
	if got := Diff(a, b); got != "" {
		t.Errorf("diff of equal records = %q", got)
	}
	b.Name = "other"
	got := Diff(a, b)
	if got == "" {
		t.Fatal("diff of differing records is empty")
	}
	if !strings.Contains(got, "other") {
		t.Errorf("diff does not mention changed value:\n%s", got)
	}
}
