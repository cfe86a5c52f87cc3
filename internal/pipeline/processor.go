// internal/pipeline/processor.go
package pipeline

import "nanocount/core/reads"

// Processor is the minimal capability the pipeline needs. Each worker owns
// exactly one Processor; OnBatchComplete is called after every batch and
// before the worker receives the next one.
type Processor interface {
	ProcessRecord(reads.Record) error
	OnBatchComplete() error
}
