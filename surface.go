package surf

import (
	"io"
	"iter"
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/krachzack/aitios-surf/geom"
	"github.com/krachzack/aitios-surf/obj"
	"github.com/krachzack/aitios-surf/spatial"
)

// Surface is an immutable, spatially indexed collection of surfels. It is
// created exactly once by SurfaceBuilder.Build: the sample sequence keeps
// its insertion order, and the index holds every sample position keyed by
// its zero-based sequence position.
//
// No operation adds or removes samples after construction, so a Surface is
// safe for concurrent readers. Payload mutation through a sample's Data
// accessor is the only permitted change and must be synchronized by the
// caller when shared.
type Surface[V geom.Position, D any] struct {
	samples []Surfel[V, D]
	index   spatial.Index
	logger  *Logger
	metrics MetricsCollector
}

// Len returns the number of samples.
func (s *Surface[V, D]) Len() int {
	return len(s.samples)
}

// At returns the sample at the given zero-based sequence position. The
// position is stable and matches the id used by the spatial index.
func (s *Surface[V, D]) At(i int) *Surfel[V, D] {
	return &s.samples[i]
}

// All iterates over all samples in insertion order.
func (s *Surface[V, D]) All() iter.Seq2[int, *Surfel[V, D]] {
	return func(yield func(int, *Surfel[V, D]) bool) {
		for i := range s.samples {
			if !yield(i, &s.samples[i]) {
				return
			}
		}
	}
}

// Nearest returns the sequence position and sample closest to q, resolved
// through the spatial index. It reports false on an empty surface.
func (s *Surface[V, D]) Nearest(q r3.Vec) (int, *Surfel[V, D], bool) {
	start := time.Now()
	r, ok := s.index.Nearest(q)
	s.metrics.RecordQuery(time.Since(start))
	if !ok {
		return 0, nil, false
	}
	return r.ID, &s.samples[r.ID], true
}

// KNearest returns up to k samples closest to q, ordered by ascending
// distance. Result ids are sequence positions usable with At.
func (s *Surface[V, D]) KNearest(q r3.Vec, k int) ([]spatial.Result, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}
	start := time.Now()
	results := s.index.KNearest(q, k)
	s.metrics.RecordQuery(time.Since(start))
	return results, nil
}

// Within returns all samples no farther than radius from q, ordered by
// ascending distance.
func (s *Surface[V, D]) Within(q r3.Vec, radius float64) []spatial.Result {
	start := time.Now()
	results := s.index.Within(q, radius)
	s.metrics.RecordQuery(time.Since(start))
	return results
}

// Dump writes the sample positions, and normals and texture coordinates
// where present, to the sink as a Wavefront OBJ point cloud. Sink failures
// are wrapped in ErrSink and returned, never swallowed.
func (s *Surface[V, D]) Dump(sink io.Writer) error {
	start := time.Now()
	err := obj.Write(sink, s.positions())
	s.logger.LogDump(len(s.samples), false, err)
	s.metrics.RecordDump(false, time.Since(start), err)
	if err != nil {
		return &ErrSink{cause: err}
	}
	return nil
}

// DumpCompressed behaves like Dump but gzip-compresses the OBJ stream, for
// dumps of dense surfel sets.
func (s *Surface[V, D]) DumpCompressed(sink io.Writer) error {
	start := time.Now()
	err := obj.WriteGzip(sink, s.positions())
	s.logger.LogDump(len(s.samples), true, err)
	s.metrics.RecordDump(true, time.Since(start), err)
	if err != nil {
		return &ErrSink{cause: err}
	}
	return nil
}

func (s *Surface[V, D]) positions() iter.Seq[geom.Position] {
	return func(yield func(geom.Position) bool) {
		for i := range s.samples {
			if !yield(&s.samples[i]) {
				return
			}
		}
	}
}
