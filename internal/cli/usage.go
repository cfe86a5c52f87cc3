// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"

	"nanocount/internal/version"
)

func installUsage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – count guide probe pairs in sequencing reads\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage:\n  %s -p guides.tsv [flags] reads.fq[.gz] [more reads ...]\n", name)
		fmt.Fprintf(out, "  cat reads.fa | %s -p guides.tsv -o - -\n", name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -p, --patterns file         Guide catalog: construct, alias, g1, g2 (TSV, or CSV by extension) [*]")
		fmt.Fprintf(out, "      --input-format string   Read format: auto | fastx | bam [%s]\n", def("input-format"))
		fmt.Fprintln(out, "  reads ...                   FASTA/FASTQ/BAM files, globs, or '-' for STDIN [*]")

		fmt.Fprintln(out, "\nMatching:")
		fmt.Fprintf(out, "  -k, --max-cost int          Max edit cost (substitution, insertion, deletion) per probe [%s]\n", def("max-cost"))

		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintf(out, "  -T, --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))
		fmt.Fprintf(out, "      --batch-size int        Records per batch [%s]\n", def("batch-size"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output path           Report path ('-' = STDOUT; .gz/.zst/.lz4 compress) [%s]\n", def("output"))
		fmt.Fprintf(out, "      --format string         auto | tsv | csv | json | jsonl | npy [%s]\n", def("format"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintln(out, "  -q, --quiet                 Warnings and errors only")
		fmt.Fprintln(out, "      --verbose               Debug logging")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
