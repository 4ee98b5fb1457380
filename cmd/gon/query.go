package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/gon-format/gon/eval"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires one argument, an expression", cli.ErrUsage)
	}
	program, err := eval.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	for _, file := range orStdin(args[1:]) {
		node, err := getObjFile(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		res, err := eval.Run(program, node)
		if err != nil {
			return fmt.Errorf("error evaluating %s: %w", file, err)
		}
		fmt.Fprintln(cc.Out, res)
	}
	return nil
}
