package main

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/gon-format/gon/gomap"
)

func toYAML(cfg *YAMLConfig, cc *cli.Context, args []string) error {
	args, err := cfg.YAML.Parse(cc, args)
	if err != nil {
		return err
	}
	files := orStdin(args)
	for i, file := range files {
		node, err := getObjFile(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		d, err := yaml.Marshal(gomap.ToAny(node))
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
		if i > 0 {
			fmt.Fprintln(cc.Out, "---")
		}
		if _, err := cc.Out.Write(d); err != nil {
			return fmt.Errorf("error writing %s: %w", file, err)
		}
	}
	return nil
}
