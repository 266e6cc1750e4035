package main

import (
	"fmt"

	dna "github.com/hcdev/dna-format/go-dna"

	"github.com/scott-cotton/cli"
)

func newDna(cfg *NewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.New.Parse(cc, args)
	if err != nil {
		cfg.New.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: new takes no arguments", cli.ErrUsage)
	}
	d := dna.New()
	if cfg.UUID {
		d.AssignUUID()
	}
	return dna.Encode(d, cc.Out, cfg.encOpts(cc.Out)...)
}
