// Package sampling converts triangle streams into point sets on the described
// surface.
//
// PoissonDisk implements dart throwing: darts are thrown at area-weighted
// random locations and accepted only when no previously accepted point lies
// within the minimum distance. The result is an evenly spaced, approximately
// maximal point set. Triangles only need to support barycentric vertex
// interpolation and construction from raw vertices; the sampler subdivides
// them as needed.
package sampling

import (
	"iter"
	"math"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle is the capability required of sampled triangles. V is the vertex
// type produced by interpolation, T the triangle type itself.
type Triangle[V any, T any] interface {
	// InterpolateAt returns the vertex at barycentric coordinates (u, v),
	// weighting the corners as (1-u-v, u, v). The corners map to (0,0),
	// (1,0) and (0,1).
	InterpolateAt(u, v float64) V

	// FromVertices constructs a triangle of the same kind from three
	// vertices.
	FromVertices(a, b, c V) T

	// Area returns the world-space area of the triangle.
	Area() float64
}

// Positioned constrains sampled vertices to expose a position, which the
// dart conflict check runs on.
type Positioned interface {
	Position() r3.Vec
}

// Options configures the dart-throwing sampler.
type Options struct {
	// MaxRejections is the number of consecutive rejected darts after
	// which the point set is considered saturated. Larger values get
	// closer to a maximal set at the cost of run time.
	MaxRejections int

	// MaxAreaFactor bounds fragment size during subdivision: triangles
	// are split at their edge midpoints until their area is at most
	// MaxAreaFactor * minDist².
	MaxAreaFactor float64

	// MaxSubdivisions caps the subdivision depth per input triangle.
	MaxSubdivisions int

	// Rand is the random source for dart placement. A fixed source makes
	// sampling reproducible. Defaults to an unseeded source.
	Rand *rand.Rand
}

// DefaultOptions contains the default sampler configuration.
var DefaultOptions = Options{
	MaxRejections:   5000,
	MaxAreaFactor:   4,
	MaxSubdivisions: 12,
}

// WithMaxRejections sets the consecutive-rejection cutoff.
func WithMaxRejections(n int) func(*Options) {
	return func(o *Options) {
		o.MaxRejections = n
	}
}

// WithMaxAreaFactor sets the fragment area bound relative to minDist².
func WithMaxAreaFactor(f float64) func(*Options) {
	return func(o *Options) {
		o.MaxAreaFactor = f
	}
}

// WithMaxSubdivisions caps the subdivision depth per input triangle.
func WithMaxSubdivisions(n int) func(*Options) {
	return func(o *Options) {
		o.MaxSubdivisions = n
	}
}

// WithRand sets the random source.
func WithRand(r *rand.Rand) func(*Options) {
	return func(o *Options) {
		o.Rand = r
	}
}

// PoissonDisk lazily produces interpolated surface points on the given
// triangles such that no two points are closer than minDist. Triangles with
// (near) zero area are skipped. The sequence is empty when minDist is not
// positive or the stream contains no usable area.
func PoissonDisk[V Positioned, T Triangle[V, T]](triangles iter.Seq[T], minDist float64, optFns ...func(*Options)) iter.Seq[V] {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	return func(yield func(V) bool) {
		if minDist <= 0 {
			return
		}
		rnd := opts.Rand
		if rnd == nil {
			rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}

		frags, total := fragment[V, T](triangles, minDist, opts)
		if total <= 0 {
			return
		}

		// Cumulative area table for area-proportional fragment choice.
		cum := make([]float64, len(frags))
		running := 0.0
		for i, f := range frags {
			running += f.Area()
			cum[i] = running
		}

		grid := newConflictGrid(minDist)
		rejected := 0
		for rejected < opts.MaxRejections {
			f := frags[pickFragment(cum, rnd.Float64()*running)]
			v := f.InterpolateAt(uniformBarycentric(rnd))
			p := v.Position()
			if grid.conflicts(p) {
				rejected++
				continue
			}
			grid.add(p)
			rejected = 0
			if !yield(v) {
				return
			}
		}
	}
}

// fragment splits the input triangles until every fragment area is below the
// configured bound, so that area-weighted darts probe the whole surface at a
// scale comparable to minDist.
func fragment[V Positioned, T Triangle[V, T]](triangles iter.Seq[T], minDist float64, opts Options) ([]T, float64) {
	const degenerate = 1e-12

	maxArea := opts.MaxAreaFactor * minDist * minDist
	var frags []T
	total := 0.0

	var split func(t T, depth int)
	split = func(t T, depth int) {
		area := t.Area()
		if area <= degenerate {
			return
		}
		if area <= maxArea || depth >= opts.MaxSubdivisions {
			frags = append(frags, t)
			total += area
			return
		}
		v0 := t.InterpolateAt(0, 0)
		v1 := t.InterpolateAt(1, 0)
		v2 := t.InterpolateAt(0, 1)
		m01 := t.InterpolateAt(0.5, 0)
		m12 := t.InterpolateAt(0.5, 0.5)
		m02 := t.InterpolateAt(0, 0.5)
		split(t.FromVertices(v0, m01, m02), depth+1)
		split(t.FromVertices(m01, v1, m12), depth+1)
		split(t.FromVertices(m02, m12, v2), depth+1)
		split(t.FromVertices(m01, m12, m02), depth+1)
	}

	for t := range triangles {
		split(t, 0)
	}
	return frags, total
}

func pickFragment(cum []float64, target float64) int {
	i := sort.SearchFloat64s(cum, target)
	if i >= len(cum) {
		i = len(cum) - 1
	}
	return i
}

// uniformBarycentric returns barycentric coordinates distributed uniformly
// over the triangle.
func uniformBarycentric(rnd *rand.Rand) (u, v float64) {
	s := math.Sqrt(rnd.Float64())
	t := rnd.Float64()
	return s * (1 - t), s * t
}
