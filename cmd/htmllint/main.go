// Command htmllint checks HTML files for structural and stylistic defects.
//
//	htmllint [flags] file...
//
// A file named "-" is read from standard input. With --serve, htmllint runs the lint
// service instead, linting files below the given directory on GET requests.
//
// Exit codes: 0 no defects, 1 defects found, 2 failure.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/dpotapov/go-htmllint"
	"github.com/dpotapov/go-htmllint/lint"
	"github.com/dpotapov/go-htmllint/lint/rules"
	"github.com/dpotapov/go-htmllint/report"
)

const version = "0.1.0"

const (
	exitClean   = 0
	exitDefects = 1
	exitFailure = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	only    []string
	format  string
	rules   string
	context int
	verbose bool
	serve   string
	summary bool
	version bool
}

func parseFlags(args []string, stderr io.Writer) (*options, []string, error) {
	var o options
	fs := pflag.NewFlagSet("htmllint", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: htmllint [flags] file...")
		fs.PrintDefaults()
	}
	fs.StringSliceVarP(&o.only, "only", "o", nil, "report only these categories (structure, helper, fluff)")
	fs.StringVarP(&o.format, "format", "f", "text", "output format: text, json or checkstyle")
	fs.StringVarP(&o.rules, "rules", "r", "", "YAML file with rule table overlays")
	fs.IntVarP(&o.context, "context", "C", 0, "lines of source to show around each defect (text format)")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "log debug messages to stderr")
	fs.StringVar(&o.serve, "serve", "", "run the lint service on this address")
	fs.BoolVar(&o.summary, "summary", false, "print a tally of the defects (text format)")
	fs.BoolVar(&o.version, "version", false, "print the version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	switch o.format {
	case "text", "json", "checkstyle":
	default:
		return nil, nil, fmt.Errorf("unknown format %q", o.format)
	}
	return &o, fs.Args(), nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	o, files, err := parseFlags(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return exitClean
	}
	if err != nil {
		fmt.Fprintf(stderr, "htmllint: %v\n", err)
		return exitFailure
	}
	if o.version {
		fmt.Fprintf(stdout, "htmllint %s\n", version)
		return exitClean
	}

	level := slog.LevelWarn
	if o.serve != "" {
		level = slog.LevelInfo
	}
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	r := rules.Default()
	if o.rules != "" {
		if r, err = rules.LoadFile(o.rules); err != nil {
			fmt.Fprintf(stderr, "htmllint: %v\n", err)
			return exitFailure
		}
	}

	if o.serve != "" {
		return serve(o.serve, files, r, logger)
	}

	if len(files) == 0 {
		fmt.Fprintln(stderr, "Usage: htmllint [flags] file...")
		return exitFailure
	}

	var categories []lint.Category
	for _, name := range o.only {
		c, err := lint.ParseCategory(name)
		if err != nil {
			fmt.Fprintf(stderr, "htmllint: --only: %v\n", err)
			return exitFailure
		}
		categories = append(categories, c)
	}

	l, err := lint.New(lint.WithRules(r), lint.WithFilter(categories...), lint.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(stderr, "htmllint: %v\n", err)
		return exitFailure
	}

	sources := make(map[string][]byte, len(files))
	failed := false
	for _, name := range files {
		src, err := readFile(name, stdin)
		if err != nil {
			fmt.Fprintf(stderr, "htmllint: %v\n", err)
			failed = true
			continue
		}
		sources[name] = src

		l.BeginDocument(name)
		if err := l.Parse(bytes.NewReader(src)); err != nil {
			fmt.Fprintf(stderr, "htmllint: %s: %v\n", name, err)
			failed = true
		}
	}

	errs := l.Errors()
	if err := write(stdout, o, errs, sources); err != nil {
		fmt.Fprintf(stderr, "htmllint: write report: %v\n", err)
		return exitFailure
	}

	switch {
	case failed:
		return exitFailure
	case len(errs) > 0:
		return exitDefects
	}
	return exitClean
}

func readFile(name string, stdin io.Reader) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}

func write(w io.Writer, o *options, errs []*lint.Error, sources map[string][]byte) error {
	switch o.format {
	case "json":
		return report.WriteJSON(w, errs)
	case "checkstyle":
		return report.WriteCheckstyle(w, errs)
	}

	var err error
	if o.context > 0 {
		err = report.WriteTextContext(w, errs, sources, o.context)
	} else {
		err = report.WriteText(w, errs)
	}
	if err == nil && o.summary {
		err = report.WriteSummary(w, errs)
	}
	return err
}

func serve(addr string, args []string, r *rules.Rules, logger *slog.Logger) int {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	h := &htmllint.Handler{
		FileSystem: os.DirFS(dir),
		Rules:      r,
		Logger:     logger,
	}

	logger.Info("Starting HTTP server", "address", addr, "dir", dir)

	err := http.ListenAndServe(addr, loggerMiddleware(h, logger))

	logger.Error("HTTP server error", "error", err)
	return exitFailure
}

func loggerMiddleware(next http.Handler, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Info("HTTP request", "method", r.Method, "url", r.URL, "ws", strings.EqualFold(r.Header.Get("Upgrade"), "websocket"))
		next.ServeHTTP(w, r)
	})
}
