package dna

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/hcdev/dna-format/go-dna/debug"
)

// Patch applies an RFC 6902 JSON patch to a DNA document and returns the
// canonical wire encoding of the result.  The patched text is re-decoded
// through the codec, so a patch can never produce an invalid record.
func Patch(doc, patch []byte) ([]byte, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: patch: %w", ErrMalformedDocument, err)
	}
	out, err := ops.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("applying patch: %w", err)
	}
	if debug.Patch() {
		debug.Logf("patched document: %s\n", string(out))
	}
	return reencode(out)
}

// MergePatch applies an RFC 7386 merge patch to a DNA document.
func MergePatch(doc, patch []byte) ([]byte, error) {
	out, err := jsonpatch.MergePatch(doc, patch)
	if err != nil {
		return nil, fmt.Errorf("applying merge patch: %w", err)
	}
	return reencode(out)
}

func reencode(doc []byte) ([]byte, error) {
	d, err := Decode(doc)
	if err != nil {
		return nil, err
	}
	s, err := EncodeString(d)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}
