package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func validate(cfg *ValidateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Validate.Parse(cc, args)
	if err != nil {
		cfg.Validate.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	bad := 0
	for _, arg := range args {
		_, err := decodeArg(cfg.MainConfig, arg)
		if err != nil {
			bad++
			if !cfg.Quiet {
				fmt.Fprintf(os.Stderr, "%v\n", err)
			}
			continue
		}
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "%s: ok\n", arg)
		}
	}
	if bad != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
