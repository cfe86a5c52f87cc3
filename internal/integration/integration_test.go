// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nanocount/internal/app"
)

const header = "construct\talias\tg1\tg2\tcount_g1\tcount_g2\tcount_paired\tcount_unpaired\n"

func write(t *testing.T, dir, name, data string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func TestEndToEnd(t *testing.T) {
	dir := t.TempDir()
	guides := write(t, dir, "guides.tsv", "c1\ta1\tACGT\tTTTT\n")
	reads := write(t, dir, "reads.fa", ">r1\nAAACGTAAA\n")
	out := filepath.Join(dir, "nanocount.tsv")

	var stdout, stderr bytes.Buffer
	code := app.Run([]string{"-p", guides, "-k", "1", "-o", out, reads}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, header+"c1\ta1\tACGT\tTTTT\t1\t0\t0\t1\n", string(b))
}

func TestStdoutOutput(t *testing.T) {
	dir := t.TempDir()
	guides := write(t, dir, "guides.tsv", "c1\ta1\tacgt\tgggg\n")
	reads := write(t, dir, "reads.fq", "@r1\nACGTGGGG\n+\nIIIIIIII\n@r2\nCCCC\n+\nIIII\n")

	var stdout, stderr bytes.Buffer
	code := app.Run([]string{"-p", guides, "-k", "0", "-o", "-", "-q", reads}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, header+"c1\ta1\tACGT\tGGGG\t1\t1\t1\t0\n", stdout.String())
	assert.Empty(t, stderr.String(), "quiet run should not log")
}

func TestParallelMatchesEqualSerial(t *testing.T) {
	dir := t.TempDir()
	guides := write(t, dir, "guides.tsv",
		"c1\ta1\tACGTAC\tTTGCAA\nc2\ta2\tGGATCC\tGAATTC\nc3\ta3\tACGTAC\tCCCCCC\n")
	var fa strings.Builder
	motifs := []string{"ACGTAC", "TTGCAA", "GGATCC", "GAATTC", "ACGAAC", "GGTTCC", "CCCCCA"}
	for i := 0; i < 500; i++ {
		fmt.Fprintf(&fa, ">r%d\nAAAA%sAAAA%sAAAA\n", i, motifs[i%len(motifs)], motifs[(i*3+1)%len(motifs)])
	}
	reads := write(t, dir, "reads.fa", fa.String())

	run := func(threads int) string {
		var stdout, stderr bytes.Buffer
		code := app.Run([]string{
			"-p", guides, "-o", "-", "--format", "json",
			"--threads", fmt.Sprint(threads), "--batch-size", "7", reads,
		}, &stdout, &stderr)
		if code != 0 {
			t.Fatalf("exit %d err %s", code, stderr.String())
		}
		return stdout.String()
	}

	serial := run(1)
	parallel := run(4)
	if serial != parallel {
		t.Fatalf("parallel output differs from serial\nserial: %s\nparallel:%s", serial, parallel)
	}
	assert.Contains(t, serial, `"construct": "c3"`)
}

func TestMalformedCatalogExit2(t *testing.T) {
	dir := t.TempDir()
	guides := write(t, dir, "guides.tsv", "c1\ta1\tACGT\tTTTT\nc2\ta2\tACGT\n")
	reads := write(t, dir, "reads.fa", ">r1\nACGT\n")
	out := filepath.Join(dir, "out.tsv")

	var stdout, stderr bytes.Buffer
	code := app.Run([]string{"-p", guides, "-o", out, reads}, &stdout, &stderr)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "malformed record")
	assert.NoFileExists(t, out)
}

func TestMissingReadsExit3(t *testing.T) {
	dir := t.TempDir()
	guides := write(t, dir, "guides.tsv", "c1\ta1\tACGT\tTTTT\n")
	out := filepath.Join(dir, "out.tsv")

	var stdout, stderr bytes.Buffer
	code := app.Run([]string{"-p", guides, "-o", out, filepath.Join(dir, "missing.fq")}, &stdout, &stderr)
	assert.Equal(t, 3, code)
	assert.NoFileExists(t, out)
}

func TestCorruptRecordExit3(t *testing.T) {
	dir := t.TempDir()
	guides := write(t, dir, "guides.tsv", "c1\ta1\tACGT\tTTTT\n")
	reads := write(t, dir, "reads.fa", ">r1\nACGTACGT\n>r2\nAC\x01GT\n>r3\nTTTT\n")
	out := filepath.Join(dir, "out.tsv")

	var stdout, stderr bytes.Buffer
	code := app.Run([]string{"-p", guides, "-o", out, reads}, &stdout, &stderr)
	assert.Equal(t, 3, code)
	assert.NoFileExists(t, out)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "temporary report left behind")
}

func TestInvalidProbeExit2(t *testing.T) {
	dir := t.TempDir()
	guides := write(t, dir, "guides.tsv", "c1\ta1\tACGT \tTT1T\n")
	reads := write(t, dir, "reads.fa", ">r1\nACGT\n")
	out := filepath.Join(dir, "out.tsv")

	var stdout, stderr bytes.Buffer
	code := app.Run([]string{"-p", guides, "-o", out, reads}, &stdout, &stderr)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "g2")
	assert.NoFileExists(t, out)
}

func TestUsageErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, app.Run([]string{"reads.fq"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "--patterns")

	stdout.Reset()
	assert.Equal(t, 0, app.Run(nil, &stdout, io.Discard))
	assert.Contains(t, stdout.String(), "Usage:")

	stdout.Reset()
	assert.Equal(t, 0, app.Run([]string{"--version"}, &stdout, io.Discard))
	assert.True(t, strings.HasPrefix(stdout.String(), "nanocount version "))
}

func TestCancelledExit130(t *testing.T) {
	dir := t.TempDir()
	guides := write(t, dir, "guides.tsv", "c1\ta1\tACGTACGT\tTTTTGGGG\n")
	seq := strings.Repeat("ACGT", 1<<16)
	reads := write(t, dir, "reads.fa", ">chr1\n"+seq+"\n")
	out := filepath.Join(dir, "out.tsv")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code := app.RunContext(ctx, []string{"-p", guides, "-o", out, reads}, io.Discard, io.Discard)
	assert.Equal(t, 130, code)
	assert.NoFileExists(t, out)
}
