package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/rlch/gfql"
	"github.com/rlch/gfql/report"
	"github.com/rlch/gfql/scenario"
)

func (a *app) reportCommand() *cli.Command {
	return &cli.Command{
		Name:  "report",
		Usage: "Print the conformance report",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "top-areas",
				Usage: "number of feature areas listed",
			},
			&cli.IntFlag{
				Name:  "top-tags",
				Usage: "number of expected-failure tags listed",
			},
			&cli.StringFlag{
				Name:    "summary",
				Usage:   "file the report is appended to",
				Sources: cli.EnvVars("GITHUB_STEP_SUMMARY"),
			},
		},
		Action: a.runReport,
	}
}

func (a *app) runReport(_ context.Context, cmd *cli.Command) error {
	cfg := a.cfg.Report

	text := report.Build(a.prepared(), report.Options{
		TopAreas: firstPositive(cmd.Int("top-areas"), cfg.TopAreas),
		TopTags:  firstPositive(cmd.Int("top-tags"), cfg.TopTags),
	})

	_, err := fmt.Fprintln(a.stdout, text)
	if err != nil {
		return err
	}

	if path := firstNonEmpty(cmd.String("summary"), cfg.SummaryPath); path != "" {
		a.logger.Debug("appending report", zap.String("path", path))

		return report.Append(path, text)
	}

	return nil
}

func (a *app) backlogCommand() *cli.Command {
	return &cli.Command{
		Name:  "backlog",
		Usage: "Print the porting backlog",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Usage:   "scenarios listed per target tag",
				Sources: cli.EnvVars("BACKLOG_LIMIT"),
			},
		},
		Action: a.runBacklog,
	}
}

func (a *app) runBacklog(_ context.Context, cmd *cli.Command) error {
	text := report.Backlog(a.prepared(), report.Options{
		BacklogLimit: firstPositive(cmd.Int("limit"), a.cfg.Report.BacklogLimit),
	})

	_, err := fmt.Fprint(a.stdout, text)

	return err
}

// prepared returns the catalog with extension tags and translated plans.
func (a *app) prepared() *scenario.Registry {
	return scenario.Prepare(gfql.NewTranslator(gfql.WithLogger(a.logger)), scenario.Catalog()...)
}
