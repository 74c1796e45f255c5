package geom

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Tri is a triangle of three attributed vertices. It supports barycentric
// interpolation of all vertex attributes and construction of derived
// triangles from raw vertices, which is what the dart-throwing sampler
// requires of its input.
type Tri struct {
	V0, V1, V2 Vertex
}

// NewTri creates a triangle from three vertices.
func NewTri(v0, v1, v2 Vertex) Tri {
	return Tri{V0: v0, V1: v1, V2: v2}
}

// Vertices returns the three corner vertices.
func (t Tri) Vertices() (Vertex, Vertex, Vertex) {
	return t.V0, t.V1, t.V2
}

// Area returns the world-space area of the triangle.
func (t Tri) Area() float64 {
	e1 := r3.Sub(t.V1.Pos, t.V0.Pos)
	e2 := r3.Sub(t.V2.Pos, t.V0.Pos)
	return 0.5 * r3.Norm(r3.Cross(e1, e2))
}

// Normal returns the geometric face normal. It is the zero vector for
// degenerate triangles.
func (t Tri) Normal() r3.Vec {
	e1 := r3.Sub(t.V1.Pos, t.V0.Pos)
	e2 := r3.Sub(t.V2.Pos, t.V0.Pos)
	n := r3.Cross(e1, e2)
	if r3.Norm(n) == 0 {
		return r3.Vec{}
	}
	return r3.Unit(n)
}

// InterpolateAt returns the vertex at barycentric coordinates (u, v),
// weighting the corners as (1-u-v)*V0 + u*V1 + v*V2. The corners map to
// (0,0), (1,0) and (0,1). Interpolated normals are re-normalized.
func (t Tri) InterpolateAt(u, v float64) Vertex {
	return blend3(t.V0, t.V1, t.V2, 1-u-v, u, v)
}

// FromVertices constructs a triangle of the same kind from three vertices.
func (Tri) FromVertices(a, b, c Vertex) Tri {
	return NewTri(a, b, c)
}

// Subdivide splits the triangle at its edge midpoints into four triangles
// covering the same surface. Vertex attributes are interpolated.
func (t Tri) Subdivide() [4]Tri {
	m01 := t.InterpolateAt(0.5, 0)
	m12 := t.InterpolateAt(0.5, 0.5)
	m02 := t.InterpolateAt(0, 0.5)
	return [4]Tri{
		t.FromVertices(t.V0, m01, m02),
		t.FromVertices(m01, t.V1, m12),
		t.FromVertices(m02, m12, t.V2),
		t.FromVertices(m01, m12, m02),
	}
}
