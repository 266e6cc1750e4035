package main

import (
	"fmt"

	dna "github.com/hcdev/dna-format/go-dna"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	a, err := decodeArg(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	b, err := decodeArg(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		a, b = b, a
	}
	res := dna.Diff(a, b)
	if res == "" {
		return nil
	}
	_, err = fmt.Fprint(cc.Out, res)
	return err
}
