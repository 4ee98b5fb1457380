package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	bad := 0
	for _, file := range orStdin(args) {
		if _, err := getObjFile(cfg.MainConfig, cc, file); err != nil {
			fmt.Fprintf(cc.Out, "%s %s: %v\n", errLabel(cc.Out), file, err)
			bad++
			continue
		}
		fmt.Fprintf(cc.Out, "%s %s\n", okLabel(cc.Out), file)
	}
	if bad > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
