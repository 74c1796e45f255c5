package surf

import (
	"iter"
	"time"

	"github.com/krachzack/aitios-surf/geom"
	"github.com/krachzack/aitios-surf/sampling"
	"github.com/krachzack/aitios-surf/spatial"
)

// SurfaceBuilder accumulates surfels and finalizes them into an immutable
// Surface. Operations chain by value: each call returns the updated builder
// and the previous value must not be reused. Build consumes the builder.
//
// Errors raised by a chained operation are sticky and surface at Build, so
// a whole chain can be written without intermediate checks.
type SurfaceBuilder[V geom.Position, D any] struct {
	samples      []Surfel[V, D]
	sampling     SurfelSampling
	samplingOpts []func(*sampling.Options)
	newIndex     func() spatial.Index
	logger       *Logger
	metrics      MetricsCollector
	err          error
}

// NewSurfaceBuilder creates an empty builder. The sampling strategy defaults
// to MinimumDistance(0.1), the spatial index to a k-d tree.
func NewSurfaceBuilder[V geom.Position, D any]() SurfaceBuilder[V, D] {
	return SurfaceBuilder[V, D]{
		sampling: MinimumDistance(0.1),
	}
}

// Sampling sets the surface sampling strategy for converting triangle
// streams to surfels. It has no effect on samples already accumulated.
func (b SurfaceBuilder[V, D]) Sampling(s SurfelSampling) SurfaceBuilder[V, D] {
	b.sampling = s
	return b
}

// SamplingOptions adds sampler options (seed, saturation cutoff) applied to
// subsequent SampleTriangles calls.
func (b SurfaceBuilder[V, D]) SamplingOptions(optFns ...func(*sampling.Options)) SurfaceBuilder[V, D] {
	b.samplingOpts = append(b.samplingOpts, optFns...)
	return b
}

// Index sets the spatial index backend constructed at Build.
// Defaults to spatial.NewKDTree.
func (b SurfaceBuilder[V, D]) Index(newIndex func() spatial.Index) SurfaceBuilder[V, D] {
	b.newIndex = newIndex
	return b
}

// Logger sets the structured logger for operation tracing.
func (b SurfaceBuilder[V, D]) Logger(l *Logger) SurfaceBuilder[V, D] {
	b.logger = l
	return b
}

// Metrics sets the metrics collector for monitoring.
func (b SurfaceBuilder[V, D]) Metrics(mc MetricsCollector) SurfaceBuilder[V, D] {
	b.metrics = mc
	return b
}

// AddSamples appends the given surface samples in order. Such samples can
// either be manually created or be the result of taking a subset of another
// surface.
func (b SurfaceBuilder[V, D]) AddSamples(samples ...Surfel[V, D]) SurfaceBuilder[V, D] {
	if b.err != nil {
		return b
	}
	b.samples = append(b.samples, samples...)
	b.log().LogAddSamples(len(samples))
	return b
}

// AddSampleSeq appends all samples produced by the sequence, in iteration
// order.
func (b SurfaceBuilder[V, D]) AddSampleSeq(samples iter.Seq[Surfel[V, D]]) SurfaceBuilder[V, D] {
	if b.err != nil {
		return b
	}
	count := 0
	for s := range samples {
		b.samples = append(b.samples, s)
		count++
	}
	b.log().LogAddSamples(count)
	return b
}

// SampleTriangles applies the builder's sampling strategy to the triangle
// stream and appends one surfel per generated point, pairing each
// interpolated vertex with an independent clone of prototypeData.
//
// It is a free function because the triangle type parameter is bound per
// call; chain it as b = surf.SampleTriangles(b, tris, proto).
func SampleTriangles[V geom.Position, D Cloneable[D], T sampling.Triangle[V, T]](
	b SurfaceBuilder[V, D],
	triangles iter.Seq[T],
	prototypeData *D,
) SurfaceBuilder[V, D] {
	if b.err != nil {
		return b
	}

	start := time.Now()
	switch b.sampling.kind {
	case samplingMinimumDistance:
		minDist := b.sampling.value
		if minDist <= 0 {
			b.err = ErrInvalidMinDistance
			break
		}
		generated := 0
		for v := range sampling.PoissonDisk[V, T](triangles, minDist, b.samplingOpts...) {
			b.samples = append(b.samples, NewSurfel(v, (*prototypeData).Clone()))
			generated++
		}
		b.log().LogSampleTriangles(b.sampling, generated, nil)
		b.metricsCollector().RecordSampleTriangles(generated, time.Since(start), nil)
	default:
		b.err = ErrNotImplemented
	}

	if b.err != nil {
		b.log().LogSampleTriangles(b.sampling, 0, b.err)
		b.metricsCollector().RecordSampleTriangles(0, time.Since(start), b.err)
	}
	return b
}

// Build consumes the builder and creates the surface. Every sample position
// is inserted into the spatial index keyed by its zero-based position in the
// final sample sequence, in sequence order. Build fails with the first
// sticky chain error, or with ErrIndexConstruction when the index rejects an
// insertion; no partially indexed surface is ever returned.
func (b SurfaceBuilder[V, D]) Build() (*Surface[V, D], error) {
	start := time.Now()
	surface, err := b.build()
	b.log().LogBuild(len(b.samples), err)
	b.metricsCollector().RecordBuild(len(b.samples), time.Since(start), err)
	return surface, err
}

func (b SurfaceBuilder[V, D]) build() (*Surface[V, D], error) {
	if b.err != nil {
		return nil, b.err
	}

	newIndex := b.newIndex
	if newIndex == nil {
		newIndex = func() spatial.Index { return spatial.NewKDTree() }
	}
	idx := newIndex()
	for i := range b.samples {
		pos := b.samples[i].Position()
		if err := idx.Insert(pos, i); err != nil {
			return nil, &ErrIndexConstruction{Sample: i, Position: pos, cause: err}
		}
	}

	return &Surface[V, D]{
		samples: b.samples,
		index:   idx,
		logger:  b.log(),
		metrics: b.metricsCollector(),
	}, nil
}

// MustBuild builds the surface, panicking on error.
func (b SurfaceBuilder[V, D]) MustBuild() *Surface[V, D] {
	surface, err := b.Build()
	if err != nil {
		panic(err)
	}
	return surface
}

var noopLogger = NoopLogger()

func (b SurfaceBuilder[V, D]) log() *Logger {
	if b.logger == nil {
		return noopLogger
	}
	return b.logger
}

func (b SurfaceBuilder[V, D]) metricsCollector() MetricsCollector {
	if b.metrics == nil {
		return NoopMetricsCollector{}
	}
	return b.metrics
}
