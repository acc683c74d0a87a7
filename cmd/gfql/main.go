// Command gfql translates Cypher queries into GFQL plans and reports on
// conformance scenario coverage.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rlch/gfql"
)

func main() {
	a := &app{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	err := a.command().Run(context.Background(), os.Args)

	if a.logger != nil {
		_ = a.logger.Sync()
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "gfql:", err)
		os.Exit(1)
	}
}

// app holds state shared by every subcommand. cfg and logger are set by the
// root command's Before hook.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfg    *gfql.Config
	logger *zap.Logger
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:  "gfql",
		Usage: "Translate Cypher into GFQL plans",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config file (default: nearest .gfql.yaml)",
				Sources: cli.EnvVars("GFQL_CONFIG"),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Before: a.before,
		Commands: []*cli.Command{
			a.translateCommand(),
			a.checkCommand(),
			a.reportCommand(),
			a.backlogCommand(),
		},
	}
}

func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := loadConfig(cmd.String("config"))
	if err != nil {
		return ctx, err
	}

	logger, err := newLogger(cfg.Log, cmd.Bool("debug"))
	if err != nil {
		return ctx, fmt.Errorf("building logger: %w", err)
	}

	a.cfg = cfg
	a.logger = logger

	return ctx, nil
}

// loadConfig loads the config at path, or the nearest one above the working
// directory. A missing config is not an error.
func loadConfig(path string) (*gfql.Config, error) {
	if path != "" {
		cfg, err := gfql.LoadConfigFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config %s: %w", path, err)
		}

		return cfg, nil
	}

	cfg, err := gfql.LoadConfig(".")
	if errors.Is(err, gfql.ErrConfigNotFound) {
		return &gfql.Config{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return cfg, nil
}

// newLogger builds a logger writing to stderr.
func newLogger(cfg gfql.LogConfig, debug bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if cfg.Development {
		config = zap.NewDevelopmentConfig()
	}

	config.OutputPaths = []string{"stderr"}
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)

	if cfg.Level != "" {
		level, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}

		config.Level = zap.NewAtomicLevelAt(level)
	}

	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return config.Build()
}
