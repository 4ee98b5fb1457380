package main

import (
	"encoding/json/jsontext"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/gon-format/gon/gomap"
)

func toJSON(cfg *JSONConfig, cc *cli.Context, args []string) error {
	args, err := cfg.JSON.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range orStdin(args) {
		node, err := getObjFile(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		var jOpts []jsontext.Options
		if !cfg.Wire {
			jOpts = append(jOpts, jsontext.WithIndent("  "))
		}
		je := jsontext.NewEncoder(cc.Out, jOpts...)
		if err := gomap.ToJSON(node, je); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
		fmt.Fprintln(cc.Out)
	}
	return nil
}
