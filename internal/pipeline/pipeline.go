// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"io"
	"runtime"
	"sync/atomic"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"nanocount/core/reads"
)

// DefaultBatchSize is the number of records handed to a worker at once.
const DefaultBatchSize = 1024

// Config controls the scanning pipeline.
type Config struct {
	Threads   int          // number of worker goroutines (0 = all CPUs)
	BatchSize int          // records per batch (0 = DefaultBatchSize)
	Format    reads.Format // input decoder for Run
}

func (c Config) withDefaults() Config {
	if c.Threads <= 0 {
		c.Threads = runtime.NumCPU()
	}
	if c.BatchSize <= 0 {
		c.BatchSize = DefaultBatchSize
	}
	return c
}

// Summary describes a finished run.
type Summary struct {
	Sources int
	Records uint64
	Batches uint64
}

// Run opens each path in turn and feeds its records to the workers.
func Run(ctx context.Context, cfg Config, paths []string, newWorker func() Processor) (Summary, error) {
	open := make([]func() (reads.Source, error), len(paths))
	for i, p := range paths {
		p := p // per-iteration copy (go 1.21 loop semantics)
		open[i] = func() (reads.Source, error) { return reads.Open(p, cfg.Format) }
	}
	return run(ctx, cfg, open, newWorker)
}

// RunSources feeds already-open sources to the workers. Every source is
// closed before RunSources returns, including those never reached after an
// error.
func RunSources(ctx context.Context, cfg Config, sources []reads.Source, newWorker func() Processor) (Summary, error) {
	open := make([]func() (reads.Source, error), len(sources))
	for i, s := range sources {
		s := s // per-iteration copy (go 1.21 loop semantics)
		open[i] = func() (reads.Source, error) { return s, nil }
	}
	sum, err := run(ctx, cfg, open, newWorker)
	// the feeder closes every source it opened; sum.Sources counts them
	for _, s := range sources[sum.Sources:] {
		_ = s.Close()
	}
	return sum, err
}

// run cuts the sources into batches on one feeder goroutine and processes
// them on cfg.Threads workers. The first error from any goroutine cancels
// the rest and is returned.
func run(parent context.Context, cfg Config, open []func() (reads.Source, error), newWorker func() Processor) (Summary, error) {
	cfg = cfg.withDefaults()
	g, ctx := errgroup.WithContext(parent)
	batches := make(chan []reads.Record, cfg.Threads*2)

	var sum Summary
	var nrec, nbatch atomic.Uint64

	// Workers
	for w := 0; w < cfg.Threads; w++ {
		proc := newWorker()
		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case b, ok := <-batches:
					if !ok {
						return nil
					}
					for _, r := range b {
						if err := proc.ProcessRecord(r); err != nil {
							return err
						}
					}
					if err := proc.OnBatchComplete(); err != nil {
						return err
					}
					nrec.Add(uint64(len(b)))
					nbatch.Add(1)
				}
			}
		})
	}

	// Feed work
	g.Go(func() error {
		defer close(batches)
		for _, fn := range open {
			src, err := fn()
			if err != nil {
				return err
			}
			sum.Sources++
			log.WithField("source", src.Name()).Debug("reading records")
			err = feed(ctx, src, cfg.BatchSize, batches)
			if cerr := src.Close(); cerr != nil && err == nil {
				err = errors.Wrapf(cerr, "close %s", src.Name())
			}
			if err != nil {
				return err
			}
		}
		return nil
	})

	err := g.Wait()
	sum.Records = nrec.Load()
	sum.Batches = nbatch.Load()
	if err == nil && parent.Err() != nil {
		err = parent.Err()
	}
	return sum, err
}

func feed(ctx context.Context, src reads.Source, size int, out chan<- []reads.Record) error {
	batch := make([]reads.Record, 0, size)
	send := func() error {
		select {
		case out <- batch:
			batch = make([]reads.Record, 0, size)
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	for {
		r, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		batch = append(batch, r)
		if len(batch) == size {
			if err := send(); err != nil {
				return err
			}
		}
	}
	if len(batch) > 0 {
		return send()
	}
	return nil
}
