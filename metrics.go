package propgraph

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; the
// metrics/prometheus package provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordCommit is called after each successful commit. mutations is the
	// number of mutations the commit made durable.
	RecordCommit(mutations int)

	// RecordRevert is called after each revert, explicit or on Close.
	// err is nil if the graph was restored.
	RecordRevert(mutations int, err error)

	// RecordMutation is called after each mutating operation of a
	// transaction. op names the operation.
	RecordMutation(op string, err error)

	// RecordOperator is called after each graph operator run.
	RecordOperator(op string, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCommit(int)                            {}
func (NoopMetricsCollector) RecordRevert(int, error)                     {}
func (NoopMetricsCollector) RecordMutation(string, error)                {}
func (NoopMetricsCollector) RecordOperator(string, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	CommitCount        atomic.Int64
	CommittedMutations atomic.Int64
	RevertCount        atomic.Int64
	RevertErrors       atomic.Int64
	RevertedMutations  atomic.Int64
	MutationCount      atomic.Int64
	MutationErrors     atomic.Int64
	OperatorCount      atomic.Int64
	OperatorErrors     atomic.Int64
	OperatorTotalNanos atomic.Int64
}

// RecordCommit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCommit(mutations int) {
	b.CommitCount.Add(1)
	b.CommittedMutations.Add(int64(mutations))
}

// RecordRevert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRevert(mutations int, err error) {
	b.RevertCount.Add(1)
	b.RevertedMutations.Add(int64(mutations))
	if err != nil {
		b.RevertErrors.Add(1)
	}
}

// RecordMutation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMutation(_ string, err error) {
	b.MutationCount.Add(1)
	if err != nil {
		b.MutationErrors.Add(1)
	}
}

// RecordOperator implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOperator(_ string, duration time.Duration, err error) {
	b.OperatorCount.Add(1)
	b.OperatorTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.OperatorErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		CommitCount:        b.CommitCount.Load(),
		CommittedMutations: b.CommittedMutations.Load(),
		RevertCount:        b.RevertCount.Load(),
		RevertErrors:       b.RevertErrors.Load(),
		RevertedMutations:  b.RevertedMutations.Load(),
		MutationCount:      b.MutationCount.Load(),
		MutationErrors:     b.MutationErrors.Load(),
		OperatorCount:      b.OperatorCount.Load(),
		OperatorErrors:     b.OperatorErrors.Load(),
		OperatorAvgNanos:   b.getAvgOperatorNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgOperatorNanos() int64 {
	count := b.OperatorCount.Load()
	if count == 0 {
		return 0
	}
	return b.OperatorTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	CommitCount        int64
	CommittedMutations int64
	RevertCount        int64
	RevertErrors       int64
	RevertedMutations  int64
	MutationCount      int64
	MutationErrors     int64
	OperatorCount      int64
	OperatorErrors     int64
	OperatorAvgNanos   int64
}
