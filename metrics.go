package linkprep

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; the
// prommetrics package provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordPrepare is called after each sentence preparation.
	// st holds the counters of the sentence, err is nil if successful.
	RecordPrepare(st Stats, err error)

	// RecordBatch is called after each batch preparation.
	// count is the number of sentences attempted, failed the number that
	// failed, duration is the total time taken.
	RecordBatch(count, failed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordPrepare(Stats, error)          {}
func (NoopMetricsCollector) RecordBatch(int, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	PrepareCount      atomic.Int64
	PrepareErrors     atomic.Int64
	PrepareTotalNanos atomic.Int64
	Words             atomic.Int64
	Disjuncts         atomic.Int64
	Clauses           atomic.Int64
	CostDropped       atomic.Int64
	Truncated         atomic.Int64
	Duplicates        atomic.Int64
	Unreachable       atomic.Int64
	BatchCount        atomic.Int64
	BatchSentences    atomic.Int64
	BatchFailed       atomic.Int64
}

// RecordPrepare implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPrepare(st Stats, err error) {
	b.PrepareCount.Add(1)
	b.PrepareTotalNanos.Add(st.Duration.Nanoseconds())
	if err != nil {
		b.PrepareErrors.Add(1)
		return
	}
	b.Words.Add(int64(st.Words))
	b.Disjuncts.Add(int64(st.Disjuncts))
	b.Clauses.Add(int64(st.Clauses))
	b.CostDropped.Add(int64(st.CostDropped))
	b.Truncated.Add(int64(st.Truncated))
	b.Duplicates.Add(int64(st.Duplicates))
	b.Unreachable.Add(int64(st.Unreachable))
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(count, failed int, _ time.Duration) {
	b.BatchCount.Add(1)
	b.BatchSentences.Add(int64(count))
	b.BatchFailed.Add(int64(failed))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		PrepareCount:    b.PrepareCount.Load(),
		PrepareErrors:   b.PrepareErrors.Load(),
		PrepareAvgNanos: b.getAvgPrepareNanos(),
		Words:           b.Words.Load(),
		Disjuncts:       b.Disjuncts.Load(),
		Clauses:         b.Clauses.Load(),
		CostDropped:     b.CostDropped.Load(),
		Truncated:       b.Truncated.Load(),
		Duplicates:      b.Duplicates.Load(),
		Unreachable:     b.Unreachable.Load(),
		BatchCount:      b.BatchCount.Load(),
		BatchSentences:  b.BatchSentences.Load(),
		BatchFailed:     b.BatchFailed.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgPrepareNanos() int64 {
	count := b.PrepareCount.Load()
	if count == 0 {
		return 0
	}
	return b.PrepareTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	PrepareCount    int64
	PrepareErrors   int64
	PrepareAvgNanos int64
	Words           int64
	Disjuncts       int64
	Clauses         int64
	CostDropped     int64
	Truncated       int64
	Duplicates      int64
	Unreachable     int64
	BatchCount      int64
	BatchSentences  int64
	BatchFailed     int64
}
