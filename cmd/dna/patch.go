package main

import (
	"fmt"
	"os"

	dna "github.com/hcdev/dna-format/go-dna"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	if cfg.String && cfg.File {
		return fmt.Errorf("%w: -s and -f are mutually exclusive", cli.ErrUsage)
	}
	p := []byte(args[0])
	if cfg.File || !cfg.String {
		// default to a file path when it exists, matching the arg as a
		// literal patch otherwise
		d, err := os.ReadFile(args[0])
		if err == nil {
			p = d
		} else if cfg.File {
			return fmt.Errorf("error reading %s: %w", args[0], err)
		}
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	apply := dna.Patch
	if cfg.Merge {
		apply = dna.MergePatch
	}
	for _, arg := range args {
		doc, err := readArg(arg)
		if err != nil {
			return err
		}
		out, err := apply(doc, p)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		// patched output is wire json; re-render per the output options
		d, err := dna.Decode(out)
		if err != nil {
			return err
		}
		if err := dna.Encode(d, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}
