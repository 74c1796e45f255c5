package surf

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordSampleTriangles is called after each triangle sampling pass.
	// generated is the number of surfels produced, duration the time
	// taken, err is nil if successful.
	RecordSampleTriangles(generated int, duration time.Duration, err error)

	// RecordBuild is called after each surface build.
	// samples is the number of indexed samples.
	RecordBuild(samples int, duration time.Duration, err error)

	// RecordQuery is called after each spatial query on a surface.
	RecordQuery(duration time.Duration)

	// RecordDump is called after each surface export. compressed
	// distinguishes gzip dumps from plain ones.
	RecordDump(compressed bool, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSampleTriangles(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordBuild(int, time.Duration, error)           {}
func (NoopMetricsCollector) RecordQuery(time.Duration)                       {}
func (NoopMetricsCollector) RecordDump(bool, time.Duration, error)           {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SampledSurfels  atomic.Int64
	SamplingErrors  atomic.Int64
	BuildCount      atomic.Int64
	BuildErrors     atomic.Int64
	BuildTotalNanos atomic.Int64
	QueryCount      atomic.Int64
	QueryTotalNanos atomic.Int64
	DumpCount       atomic.Int64
	DumpCompressed  atomic.Int64
	DumpErrors      atomic.Int64
}

// RecordSampleTriangles implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSampleTriangles(generated int, duration time.Duration, err error) {
	b.SampledSurfels.Add(int64(generated))
	if err != nil {
		b.SamplingErrors.Add(1)
	}
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(samples int, duration time.Duration, err error) {
	b.BuildCount.Add(1)
	b.BuildTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BuildErrors.Add(1)
	}
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(duration time.Duration) {
	b.QueryCount.Add(1)
	b.QueryTotalNanos.Add(duration.Nanoseconds())
}

// RecordDump implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDump(compressed bool, duration time.Duration, err error) {
	b.DumpCount.Add(1)
	if compressed {
		b.DumpCompressed.Add(1)
	}
	if err != nil {
		b.DumpErrors.Add(1)
	}
}
