package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"runtime"
	"slices"
	"sync"

	"github.com/boyter/gocodewalker"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/rlch/gfql"
)

// Output formats for translate.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// ErrNoQueries is returned when translate finds nothing to translate.
var ErrNoQueries = errors.New("no queries to translate")

func (a *app) translateCommand() *cli.Command {
	return &cli.Command{
		Name:      "translate",
		Usage:     "Translate Cypher queries into GFQL plans",
		ArgsUsage: "[queries, files or directories...]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "inline query to translate (repeatable)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "output format: text, json or yaml",
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Usage: "number of queries translated at once",
			},
		},
		Action: a.runTranslate,
	}
}

// source is one query to translate and where it came from.
type source struct {
	Name  string
	Query string
}

// translation is a translated source.
type translation struct {
	source
	Plan gfql.Plan
}

func (a *app) runTranslate(ctx context.Context, cmd *cli.Command) error {
	format := firstNonEmpty(cmd.String("format"), a.cfg.Translate.Format, formatText)
	if format != formatText && format != formatJSON && format != formatYAML {
		return fmt.Errorf("%w: %q", gfql.ErrUnknownFormat, format)
	}

	sources, err := a.collectSources(cmd.StringSlice("query"), cmd.Args().Slice())
	if err != nil {
		return err
	}

	if len(sources) == 0 {
		return ErrNoQueries
	}

	concurrency := firstPositive(cmd.Int("concurrency"), a.cfg.Translate.Concurrency, runtime.GOMAXPROCS(0))

	results, err := translateAll(ctx, gfql.NewTranslator(gfql.WithLogger(a.logger)), sources, concurrency)
	if err != nil {
		return err
	}

	a.logger.Debug("translated sources", zap.Int("count", len(results)), zap.String("format", format))

	return writeTranslations(a.stdout, format, results)
}

// collectSources resolves inline queries and arguments into sources. An
// argument naming an existing file is read, a directory is walked for query
// files and anything else is a query. With no queries and no arguments the
// query is read from stdin.
func (a *app) collectSources(queries, args []string) ([]source, error) {
	var sources []source

	for i, q := range queries {
		sources = append(sources, source{Name: fmt.Sprintf("query %d", i+1), Query: q})
	}

	for _, arg := range args {
		info, err := os.Stat(arg)

		switch {
		case errors.Is(err, fs.ErrNotExist):
			sources = append(sources, source{Name: fmt.Sprintf("query %d", len(sources)+1), Query: arg})
		case err != nil:
			return nil, err
		case info.IsDir():
			var files []string

			err := walkDir(arg, a.cfg.Extensions(), func(path string) {
				files = append(files, path)
			})
			if err != nil {
				return nil, fmt.Errorf("walking %s: %w", arg, err)
			}

			slices.Sort(files)

			for _, f := range files {
				s, err := readSource(f)
				if err != nil {
					return nil, err
				}

				sources = append(sources, s)
			}
		default:
			s, err := readSource(arg)
			if err != nil {
				return nil, err
			}

			sources = append(sources, s)
		}
	}

	if len(queries) == 0 && len(args) == 0 {
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}

		sources = append(sources, source{Name: "stdin", Query: string(data)})
	}

	return sources, nil
}

func readSource(path string) (source, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: file path from user input is expected
	if err != nil {
		return source{}, fmt.Errorf("reading %s: %w", path, err)
	}

	return source{Name: path, Query: string(data)}, nil
}

// translateAll translates sources with at most concurrency in flight,
// preserving order.
func translateAll(ctx context.Context, t *gfql.Translator, sources []source, concurrency int) ([]translation, error) {
	results := make([]translation, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, s := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i] = translation{source: s, Plan: t.BuildPlan(s.Query)}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func writeTranslations(w io.Writer, format string, results []translation) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		for _, r := range results {
			if err := enc.Encode(encodeTranslation(r)); err != nil {
				return err
			}
		}

		return nil
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		for _, r := range results {
			if err := enc.Encode(encodeTranslation(r)); err != nil {
				return err
			}
		}

		return enc.Close()
	default:
		for i, r := range results {
			if len(results) > 1 {
				if i > 0 {
					_, _ = fmt.Fprintln(w)
				}

				_, _ = fmt.Fprintf(w, "-- %s\n", r.Name)
			}

			if _, err := fmt.Fprint(w, gfql.FormatPlan(r.Plan)); err != nil {
				return err
			}
		}

		return nil
	}
}

func encodeTranslation(r translation) map[string]any {
	return map[string]any{
		"source": r.Name,
		"query":  r.Query,
		"plan":   gfql.EncodePlan(r.Plan),
	}
}

// walkDir calls callback with every file under root whose extension is one
// of extensions, honouring .gitignore and .ignore files.
func walkDir(root string, extensions []string, callback func(path string)) error {
	fileListQueue := make(chan *gocodewalker.File, 100)

	fileWalker := gocodewalker.NewFileWalker(root, fileListQueue)
	fileWalker.AllowListExtensions = extensions

	var walkErrs errorList
	fileWalker.SetErrorHandler(func(e error) bool {
		walkErrs.add(e)
		return true
	})

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for f := range fileListQueue {
			callback(f.Location)
		}
	}()

	if err := fileWalker.Start(); err != nil {
		return err
	}

	wg.Wait()

	return walkErrs.err()
}

// errorList collects errors reported from the walker's goroutines.
type errorList struct {
	mu   sync.Mutex
	errs []error
}

func (l *errorList) add(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.errs = append(l.errs, err)
}

func (l *errorList) err() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return errors.Join(l.errs...)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}

	return 0
}
