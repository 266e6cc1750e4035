package dna

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/hcdev/dna-format/go-dna/encode"
)

// Diff returns a human-readable character diff of the canonical encodings
// of two records, or "" when they are field-equivalent.
func Diff(a, b *Dna) string {
	if a.Equal(b) {
		return ""
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(
		encode.MustString(a.ToIR()),
		encode.MustString(b.ToIR()),
		true)
	return diffCfg.DiffPrettyText(diffs)
}
