package main

import (
	"encoding/json/jsontext"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/gon-format/gon/gomap"
	"github.com/gon-format/gon/ir"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an object path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	p, err := ir.ParsePath(path)
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	for _, file := range orStdin(args[1:]) {
		node, err := getObjFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		res, err := p.Get(node)
		if err != nil {
			return fmt.Errorf("error getting %s from %s: %w", path, file, err)
		}
		je := jsontext.NewEncoder(cc.Out, jsontext.WithIndent("  "))
		if err := gomap.ToJSON(res, je); err != nil {
			return fmt.Errorf("error writing result: %w", err)
		}
		fmt.Fprintln(cc.Out)
	}
	return nil
}
