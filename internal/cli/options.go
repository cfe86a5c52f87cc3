// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"nanocount/core/reads"
	"nanocount/internal/cliutil"
	"nanocount/internal/pipeline"
	"nanocount/internal/report"
)

// FormatAuto picks the report format from the output file extension.
const FormatAuto = "auto"

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Inputs      []string
	Patterns    string
	InputFormat reads.Format

	// Matching
	MaxCost int

	// Performance
	Threads   int
	BatchSize int

	// Output
	Output string
	Format report.Format

	// Misc
	Quiet   bool
	Verbose bool
	Version bool
}

// NewFlagSet returns a FlagSet with ContinueOnError and the nanocount help
// text as its Usage.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	installUsage(fs, name)
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Flags and read paths may be interleaved.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool
	var format, inputFormat string

	// Input
	fs.StringVar(&opt.Patterns, "patterns", "", "guide catalog (construct, alias, g1, g2) [*]")
	fs.StringVar(&opt.Patterns, "p", "", "alias of --patterns")
	fs.StringVar(&inputFormat, "input-format", string(reads.FormatAuto), "read format: auto | fastx | bam")

	// Matching
	fs.IntVar(&opt.MaxCost, "max-cost", 1, "max edit cost per probe [1]")
	fs.IntVar(&opt.MaxCost, "k", 1, "alias of --max-cost")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "worker threads (0=all CPUs) [0]")
	fs.IntVar(&opt.Threads, "T", 0, "alias of --threads")
	fs.IntVar(&opt.BatchSize, "batch-size", pipeline.DefaultBatchSize, "records per batch")

	// Output
	fs.StringVar(&opt.Output, "output", "nanocount.tsv", "output path ('-' = stdout)")
	fs.StringVar(&opt.Output, "o", "nanocount.tsv", "alias of --output")
	fs.StringVar(&format, "format", FormatAuto, "output format: auto | tsv | csv | json | jsonl | npy")

	// Misc
	fs.BoolVar(&opt.Quiet, "quiet", false, "warnings and errors only [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Verbose, "verbose", false, "debug logging [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version")
	fs.BoolVar(&help, "help", false, "show this help message")
	fs.BoolVar(&help, "h", false, "alias of --help")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	// flag stops at the first non-flag; anything left over is a positional
	posArgs = append(posArgs, fs.Args()...)

	inputs, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return opt, err
	}
	opt.Inputs = inputs

	if opt.InputFormat, err = reads.ParseFormat(inputFormat); err != nil {
		return opt, err
	}
	if format == FormatAuto {
		opt.Format = report.FormatFromPath(opt.Output)
	} else if opt.Format, err = report.ParseFormat(format); err != nil {
		return opt, err
	}
	return opt, Validate(opt)
}

// Validate applies CLI invariants that don't depend on the filesystem.
func Validate(o Options) error {
	if o.Patterns == "" {
		return errors.New("--patterns is required")
	}
	if len(o.Inputs) == 0 {
		return errors.New("at least one read file is required ('-' for stdin)")
	}
	if o.MaxCost < 0 {
		return errors.New("--max-cost must be ≥ 0")
	}
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if o.BatchSize < 1 {
		return errors.New("--batch-size must be ≥ 1")
	}
	if o.Output == "" {
		return errors.New("--output must not be empty")
	}
	if o.Quiet && o.Verbose {
		return errors.New("--quiet conflicts with --verbose")
	}
	stdin := 0
	for _, in := range o.Inputs {
		if in == "-" {
			stdin++
		}
	}
	if stdin > 1 {
		return fmt.Errorf("stdin ('-') given %d times", stdin)
	}
	return nil
}
