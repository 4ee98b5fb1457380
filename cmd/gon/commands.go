package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "gon").
		WithSynopsis("gon [opts] command [opts]").
		WithDescription("gon is a tool for working with GON documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return gonMain(cfg, cc, args)
		}).
		WithSubs(
			CheckCommand(cfg),
			GetCommand(cfg),
			JSONCommand(cfg),
			YAMLCommand(cfg),
			QueryCommand(cfg))
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("check").
		WithAliases("c").
		WithSynopsis("check [files]").
		WithDescription("parse documents and report errors").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <objectpath> [files]").
		WithDescription("get object elements from documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func JSONCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &JSONConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("json").
		WithAliases("j").
		WithOpts(opts...).
		WithSynopsis("json [-w] [files]").
		WithDescription("convert documents to json").
		WithRun(func(cc *cli.Context, args []string) error {
			return toJSON(cfg, cc, args)
		})
	cfg.JSON = cmd
	return cmd
}

func YAMLCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &YAMLConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("yaml").
		WithAliases("y").
		WithSynopsis("yaml [files]").
		WithDescription("convert documents to yaml").
		WithRun(func(cc *cli.Context, args []string) error {
			return toYAML(cfg, cc, args)
		})
	cfg.YAML = cmd
	return cmd
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("query").
		WithAliases("q").
		WithSynopsis("query <expr> [files]").
		WithDescription("evaluate an expression against documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return query(cfg, cc, args)
		})
	cfg.Query = cmd
	return cmd
}
