package main

import (
	"context"
	"fmt"
	"regexp"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/rlch/gfql"
	"github.com/rlch/gfql/runner"
	"github.com/rlch/gfql/scenario"
)

func (a *app) checkCommand() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Check the translator against the conformance scenarios",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "output format: dots, verbose or json",
			},
			&cli.StringFlag{
				Name:  "run",
				Usage: "check only scenarios whose path or name matches pattern",
			},
			&cli.StringFlag{
				Name:  "where",
				Usage: `check only scenarios matching a predicate, e.g. 'status == "xfail"'`,
			},
			&cli.BoolFlag{
				Name:  "fail-fast",
				Usage: "stop on first failure",
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Usage: "number of scenarios translated at once",
			},
		},
		Action: a.runCheck,
	}
}

func (a *app) runCheck(ctx context.Context, cmd *cli.Command) error {
	cfg := a.cfg.Check

	formatter, err := runner.NewFormatter(firstNonEmpty(cmd.String("format"), cfg.Format), a.stdout)
	if err != nil {
		return err
	}

	var filter *regexp.Regexp

	if pattern := firstNonEmpty(cmd.String("run"), cfg.Filter); pattern != "" {
		filter, err = regexp.Compile(pattern)
		if err != nil {
			return fmt.Errorf("compiling filter %q: %w", pattern, err)
		}
	}

	opts := []runner.Option{
		runner.WithTranslator(gfql.NewTranslator(gfql.WithLogger(a.logger))),
		runner.WithHandler(runner.NewFormatHandler(formatter, a.stderr)),
		runner.WithFilter(filter),
		runner.WithLogger(a.logger),
		runner.WithConcurrency(firstPositive(cmd.Int("concurrency"), cfg.Concurrency)),
	}

	failFast := cfg.FailFast
	if cmd.IsSet("fail-fast") {
		failFast = cmd.Bool("fail-fast")
	}

	opts = append(opts, runner.WithFailFast(failFast))

	if where := firstNonEmpty(cmd.String("where"), cfg.Where); where != "" {
		predicate, err := scenario.Compile(where)
		if err != nil {
			return err
		}

		opts = append(opts, runner.WithPredicate(predicate))
	}

	reg := scenario.Tagged(scenario.Catalog()...)

	result, err := runner.New(opts...).Run(ctx, reg)
	if err != nil {
		return fmt.Errorf("checking scenarios: %w", err)
	}

	if err := formatter.Summary(result); err != nil {
		return err
	}

	a.logger.Debug("check finished",
		zap.Int("total", result.Total),
		zap.Int("failed", result.Failed),
		zap.Int("errors", result.Errors),
	)

	if !result.Ok() {
		return cli.Exit("", 1)
	}

	return nil
}
