// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	pkgerrors "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"nanocount/core/counter"
	"nanocount/core/guides"
	"nanocount/internal/cli"
	"nanocount/internal/pipeline"
	"nanocount/internal/report"
	"nanocount/internal/version"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitUsage       = 2 // bad flags or unusable guide catalog
	ExitRuntime     = 3 // reads, encoding or output failure
	ExitInterrupted = 130
)

// stageError marks which exit code a failure maps to.
type stageError struct {
	code int
	err  error
}

func (e *stageError) Error() string { return e.err.Error() }
func (e *stageError) Unwrap() error { return e.err }

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("nanocount")
	fs.SetOutput(io.Discard)

	// flush help/version text, treating a closed reader as success
	flushOr := func(code int) int {
		if err := outw.Flush(); report.IsBrokenPipe(err) {
			return ExitOK
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return ExitRuntime
		}
		return code
	}

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return flushOr(ExitOK)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		fs.SetOutput(outw)
		if errors.Is(err, flag.ErrHelp) {
			fs.Usage()
			return flushOr(ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, "error:", err)
		fs.Usage()
		return flushOr(ExitUsage)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "nanocount version %s\n", version.Version)
		return flushOr(ExitOK)
	}

	configureLogging(stderr, opts)

	err = run(parent, opts, outw)
	if ferr := outw.Flush(); err == nil && ferr != nil && !report.IsBrokenPipe(ferr) {
		err = &stageError{code: ExitRuntime, err: ferr}
	}
	return exitCode(parent, err, stderr)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func configureLogging(stderr io.Writer, opts cli.Options) {
	log.SetOutput(stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true, DisableColors: true})
	switch {
	case opts.Quiet:
		log.SetLevel(log.WarnLevel)
	case opts.Verbose:
		log.SetLevel(log.DebugLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// run executes one counting job: load the catalog, stream every read source
// through the worker pool, then write the report.
func run(ctx context.Context, opts cli.Options, stdout io.Writer) error {
	start := time.Now()

	cat, err := guides.LoadFile(opts.Patterns)
	if err != nil {
		return &stageError{code: ExitUsage, err: pkgerrors.Wrap(err, "loading guide catalog")}
	}
	log.Printf("guide catalog %s loaded, %s guides", opts.Patterns, humanize.Comma(int64(cat.Len())))
	for _, group := range cat.Duplicates() {
		first := cat.Entry(group[0])
		log.WithField("indices", group).Warnf("guides share the probe pair of %s/%s; each is counted separately", first.Construct, first.Alias)
	}

	proc := counter.New(cat, opts.MaxCost)
	cfg := pipeline.Config{
		Threads:   opts.Threads,
		BatchSize: opts.BatchSize,
		Format:    opts.InputFormat,
	}
	log.WithFields(log.Fields{
		"sources":  len(opts.Inputs),
		"max_cost": opts.MaxCost,
		"threads":  cfg.Threads,
	}).Debug("counting starting")

	sum, err := pipeline.Run(ctx, cfg, opts.Inputs, func() pipeline.Processor { return proc.Clone() })
	if err != nil {
		return &stageError{code: ExitRuntime, err: pkgerrors.Wrap(err, "counting")}
	}
	log.Printf("counting done: %s records in %s batches from %d source(s), %s",
		humanize.Comma(int64(sum.Records)), humanize.Comma(int64(sum.Batches)), sum.Sources,
		time.Since(start).Round(time.Millisecond))

	stats := proc.Stats()
	if opts.Output == "-" {
		err = report.WriteStream(stdout, opts.Format, cat, stats)
	} else {
		err = report.WriteFile(opts.Output, opts.Format, cat, stats)
	}
	if err != nil {
		return &stageError{code: ExitRuntime, err: pkgerrors.Wrap(err, "writing report")}
	}
	if opts.Output != "-" {
		log.Printf("report written to %s (%s)", opts.Output, opts.Format)
	}
	return nil
}

func exitCode(ctx context.Context, err error, stderr io.Writer) int {
	if err == nil {
		return ExitOK
	}
	if ctx.Err() != nil && errors.Is(err, context.Canceled) {
		log.Warn("interrupted")
		return ExitInterrupted
	}
	_, _ = fmt.Fprintln(stderr, "error:", err)
	var se *stageError
	if errors.As(err, &se) {
		return se.code
	}
	return ExitRuntime
}
