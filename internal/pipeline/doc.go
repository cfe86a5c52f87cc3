// Package pipeline streams sequence records in batches through a pool of
// worker-owned Processors.
//
// The only contract to implement is Processor (ProcessRecord and
// OnBatchComplete) plus a factory returning one private instance per
// worker.
package pipeline
