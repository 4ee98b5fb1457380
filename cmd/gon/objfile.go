package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/gon-format/gon/ir"
	"github.com/gon-format/gon/parse"
)

func getObjFile(cfg *MainConfig, cc *cli.Context, path string) (*ir.Node, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return parse.Parse(d, cfg.parseOpts()...)
}

func orStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
