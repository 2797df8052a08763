package labelvec

import (
	"sync/atomic"
	"time"
)

// MetricsCollector receives operational metrics from a DenseLabels.
// Implement it to bridge into Prometheus, OpenTelemetry or similar.
type MetricsCollector interface {
	// RecordLoad is called after each Load with the number of labels read.
	RecordLoad(count int, duration time.Duration, err error)
	// RecordSave is called after each Save with the number of labels written.
	RecordSave(count int, duration time.Duration, err error)
	// RecordSoftFailure is called when SetLabel or SetIntLabel rejects a write.
	RecordSoftFailure(op string)
}

// NoopMetricsCollector discards all metrics.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLoad(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordSave(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordSoftFailure(string)             {}

// BasicMetricsCollector keeps counters in memory.
type BasicMetricsCollector struct {
	LoadCount      atomic.Int64
	LoadErrors     atomic.Int64
	LoadLabels     atomic.Int64
	LoadTotalNanos atomic.Int64
	SaveCount      atomic.Int64
	SaveErrors     atomic.Int64
	SaveLabels     atomic.Int64
	SaveTotalNanos atomic.Int64
	SoftFailures   atomic.Int64
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(count int, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	b.LoadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.LoadErrors.Add(1)
		return
	}
	b.LoadLabels.Add(int64(count))
}

// RecordSave implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSave(count int, duration time.Duration, err error) {
	b.SaveCount.Add(1)
	b.SaveTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SaveErrors.Add(1)
		return
	}
	b.SaveLabels.Add(int64(count))
}

// RecordSoftFailure implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSoftFailure(string) {
	b.SoftFailures.Add(1)
}

// GetStats returns a snapshot of the counters.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LoadCount:    b.LoadCount.Load(),
		LoadErrors:   b.LoadErrors.Load(),
		LoadLabels:   b.LoadLabels.Load(),
		LoadAvgNanos: avg(b.LoadTotalNanos.Load(), b.LoadCount.Load()),
		SaveCount:    b.SaveCount.Load(),
		SaveErrors:   b.SaveErrors.Load(),
		SaveLabels:   b.SaveLabels.Load(),
		SaveAvgNanos: avg(b.SaveTotalNanos.Load(), b.SaveCount.Load()),
		SoftFailures: b.SoftFailures.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	LoadCount    int64
	LoadErrors   int64
	LoadLabels   int64
	LoadAvgNanos int64
	SaveCount    int64
	SaveErrors   int64
	SaveLabels   int64
	SaveAvgNanos int64
	SoftFailures int64
}
