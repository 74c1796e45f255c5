// Package geom provides the geometric capability interfaces and concrete
// vertex/triangle types consumed by the surfel library.
//
// Any value that exposes a 3D position can act as a surface sample. Normals
// and texture coordinates are optional capabilities that are queried
// independently, so simple point types and fully attributed mesh vertices
// share the same query and export paths.
package geom

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Position is the minimal capability required of any surface sample.
type Position interface {
	// Position returns the location of the value in world space.
	Position() r3.Vec
}

// Normal is implemented by values that carry a surface normal.
type Normal interface {
	// Normal returns the surface normal, unit length by convention.
	Normal() r3.Vec
}

// Texcoords is implemented by values that carry 2D texture coordinates.
type Texcoords interface {
	// Texcoords returns the UV coordinates of the value.
	Texcoords() r2.Vec
}

// NormalOf reports the normal of v when it exposes one, either directly
// through the Normal interface or through a comma-ok forwarding accessor
// such as the one on Surfel.
func NormalOf(v any) (r3.Vec, bool) {
	switch n := v.(type) {
	case interface{ Normal() (r3.Vec, bool) }:
		return n.Normal()
	case Normal:
		return n.Normal(), true
	}
	return r3.Vec{}, false
}

// TexcoordsOf reports the texture coordinates of v when it exposes them.
func TexcoordsOf(v any) (r2.Vec, bool) {
	switch t := v.(type) {
	case interface{ Texcoords() (r2.Vec, bool) }:
		return t.Texcoords()
	case Texcoords:
		return t.Texcoords(), true
	}
	return r2.Vec{}, false
}

// Point is a bare positional sample without normal or texture coordinates.
// It trivially satisfies Position, which makes it handy for debugging and
// for dumping hand-placed points to a file.
type Point r3.Vec

// Position implements Position.
func (p Point) Position() r3.Vec { return r3.Vec(p) }

// Pt returns the point at (x, y, z).
func Pt(x, y, z float64) Point { return Point{X: x, Y: y, Z: z} }
