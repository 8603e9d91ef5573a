// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/tui"
)

const (
	exitOK    = 0
	exitFatal = 1
	exitUsage = 2
)

const usageText = `Usage:
  cinematch [flags] "<movie title>" [k]

Flags:
`

func main() {
	// A missing .env is the common case.
	_ = godotenv.Load()

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options holds the parsed command line.
type options struct {
	configPath  string
	catalogPath string
	jsonOutput  bool
	interactive bool
	dumpMetrics bool

	title    string
	hasTitle bool
	k        int
	hasK     bool
}

// newFlagSet declares the command line flags on opts.
func newFlagSet(opts *options, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("cinematch", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&opts.configPath, "config", "", "path to YAML config (default: $CINEMATCH_CONFIG, cinematch.yaml, /etc/cinematch/config.yaml)")
	fs.StringVar(&opts.catalogPath, "catalog", "", "catalog file (.json, .yaml); overrides catalog.path")
	fs.BoolVar(&opts.jsonOutput, "json", false, "print recommendations as JSON")
	fs.BoolVar(&opts.interactive, "interactive", false, "open the terminal browser")
	fs.BoolVar(&opts.dumpMetrics, "metrics", false, "dump Prometheus metrics to stderr on exit")
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usageText)
		fs.PrintDefaults()
	}
	return fs
}

// parseArgs parses flags and positional arguments. Usage errors are
// reported on stderr.
func parseArgs(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := newFlagSet(opts, stderr)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	rest := fs.Args()
	switch len(rest) {
	case 0:
	case 1, 2:
		opts.title = rest[0]
		opts.hasTitle = true
		if len(rest) == 2 {
			k, err := strconv.Atoi(rest[1])
			if err != nil || k < 0 {
				err = fmt.Errorf("invalid k %q: must be a non-negative integer", rest[1])
				fmt.Fprintf(stderr, "cinematch: %v\n", err)
				fs.Usage()
				return nil, err
			}
			opts.k = k
			opts.hasK = true
		}
	default:
		err := fmt.Errorf("expected at most 2 arguments, got %d", len(rest))
		fmt.Fprintf(stderr, "cinematch: %v\n", err)
		fs.Usage()
		return nil, err
	}

	return opts, nil
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		return exitUsage
	}

	// Config errors are logged with the defaults until the real settings
	// are known.
	bootLog := logging.DefaultConfig()
	bootLog.Output = stderr
	logging.Init(bootLog)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fatal(err, "failed to load configuration")
	}
	if opts.catalogPath != "" {
		cfg.Catalog.Path = opts.catalogPath
	}

	logging.Init(buildLoggingConfig(cfg, stderr))
	logging.Debug().
		Str("config_file", config.Source(opts.configPath)).
		Str("catalog", cfg.Catalog.Path).
		Msg("configuration loaded")

	rec, err := initRecommender(cfg)
	if err != nil {
		return fatal(err, "failed to initialize recommender")
	}

	if opts.dumpMetrics {
		defer func() {
			if err := metrics.WriteDefault(stderr); err != nil {
				logging.Err(err).Msg("failed to write metrics")
			}
		}()
	}

	switch {
	case opts.interactive:
		if opts.jsonOutput {
			logging.Warn().Msg("-json is ignored in interactive mode")
		}
		model := tui.New(newQueryRunner(rec, metrics.SourceInteractive), rec.Len())
		if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(stdout)).Run(); err != nil {
			return fatal(err, "interactive session failed")
		}
		return exitOK
	case !opts.hasTitle:
		printOverview(stdout, rec)
		return exitOK
	}

	k := rec.DefaultK()
	if opts.hasK {
		k = opts.k
	}

	recs, err := newQueryRunner(rec, metrics.SourceCLI).Recommend(opts.title, k)
	var notFound *recommend.NotFoundError
	switch {
	case errors.As(err, &notFound):
		if opts.jsonOutput {
			return writeJSON(stdout, notFoundJSON{
				Query:       opts.title,
				Error:       recommend.ErrNotFound.Error(),
				Suggestions: nonNil(notFound.Suggestions),
			})
		}
		fmt.Fprintln(stdout, notFound.Error())
		return exitOK
	case err != nil:
		return fatal(err, "recommendation failed")
	}

	if opts.jsonOutput {
		return writeJSON(stdout, resultJSON{Query: opts.title, K: k, Recommendations: recs})
	}
	printRecommendations(stdout, opts.title, recs)
	return exitOK
}

// fatal logs err at fatal level without exiting and returns exitFatal.
func fatal(err error, msg string) int {
	logging.WithLevel(zerolog.FatalLevel).Err(err).Msg(msg)
	return exitFatal
}

// printOverview writes the banner, the catalog listing and the usage text.
func printOverview(w io.Writer, rec *recommend.Recommender) {
	fmt.Fprintln(w, "Cinematch: content-based movie recommendations")
	fmt.Fprintln(w, "Available:")
	for _, title := range rec.Titles() {
		m, _ := rec.Movie(title)
		fmt.Fprintf(w, "- %s\n", m.Label())
	}
	fmt.Fprintln(w)
	newFlagSet(&options{}, w).Usage()
}

// printRecommendations writes the numbered result list.
func printRecommendations(w io.Writer, title string, recs []recommend.Recommendation) {
	fmt.Fprintf(w, "Recommendations for '%s':\n", title)
	for i, r := range recs {
		fmt.Fprintf(w, "%d. %s (similarity: %.3f)\n", i+1, r.Title, r.Score)
	}
}

type resultJSON struct {
	Query           string                     `json:"query"`
	K               int                        `json:"k"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
}

type notFoundJSON struct {
	Query       string   `json:"query"`
	Error       string   `json:"error"`
	Suggestions []string `json:"suggestions"`
}

func writeJSON(w io.Writer, v any) int {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fatal(err, "failed to encode JSON output")
	}
	return exitOK
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
