package surf

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/krachzack/aitios-surf/geom"
)

// Cloneable is the capability required of payload types used with
// SampleTriangles: producing an independent copy per generated sample.
type Cloneable[D any] interface {
	Clone() D
}

// Surfel is a surface element: an interpolated or hand-placed vertex plus
// arbitrary associated data. The vertex fixes the surfel's position for its
// whole lifetime; only the payload may change, in place through Data.
type Surfel[V geom.Position, D any] struct {
	vertex V
	data   D
}

// NewSurfel creates a surfel from a vertex and its associated data.
func NewSurfel[V geom.Position, D any](vertex V, data D) Surfel[V, D] {
	return Surfel[V, D]{vertex: vertex, data: data}
}

// Vertex returns the vertex at the surfel position.
func (s Surfel[V, D]) Vertex() V {
	return s.vertex
}

// Data returns the payload for in-place reads and mutation. The payload
// cannot be replaced wholesale.
func (s *Surfel[V, D]) Data() *D {
	return &s.data
}

// Position implements geom.Position by forwarding to the vertex.
func (s Surfel[V, D]) Position() r3.Vec {
	return s.vertex.Position()
}

// Normal reports the vertex normal when the vertex carries one.
func (s Surfel[V, D]) Normal() (r3.Vec, bool) {
	return geom.NormalOf(s.vertex)
}

// Texcoords reports the vertex texture coordinates when the vertex carries
// them.
func (s Surfel[V, D]) Texcoords() (r2.Vec, bool) {
	return geom.TexcoordsOf(s.vertex)
}

// Points wraps bare positions into payload-free surfels, for hand-placed
// sample sets and debugging dumps.
func Points(positions ...r3.Vec) []Surfel[geom.Point, struct{}] {
	samples := make([]Surfel[geom.Point, struct{}], len(positions))
	for i, p := range positions {
		samples[i] = NewSurfel[geom.Point, struct{}](geom.Point(p), struct{}{})
	}
	return samples
}
