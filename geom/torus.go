package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Torus tessellates a torus centered at the origin into triangles. The major
// circle of radius majorRadius lies in the XZ plane, the tube has radius
// minorRadius. majorSegments and minorSegments control the resolution and
// must be at least 3. Vertices carry smooth normals and wrap-around UVs.
func Torus(majorRadius, minorRadius float64, majorSegments, minorSegments int) []Tri {
	if majorSegments < 3 {
		majorSegments = 3
	}
	if minorSegments < 3 {
		minorSegments = 3
	}

	at := func(i, j int) Vertex {
		theta := 2 * math.Pi * float64(i) / float64(majorSegments)
		phi := 2 * math.Pi * float64(j) / float64(minorSegments)
		sinT, cosT := math.Sincos(theta)
		sinP, cosP := math.Sincos(phi)
		return Vertex{
			Pos: r3.Vec{
				X: (majorRadius + minorRadius*cosP) * cosT,
				Y: minorRadius * sinP,
				Z: (majorRadius + minorRadius*cosP) * sinT,
			},
			Norm: r3.Vec{X: cosP * cosT, Y: sinP, Z: cosP * sinT},
			UV: r2.Vec{
				X: float64(i) / float64(majorSegments),
				Y: float64(j) / float64(minorSegments),
			},
		}
	}

	tris := make([]Tri, 0, 2*majorSegments*minorSegments)
	for i := 0; i < majorSegments; i++ {
		for j := 0; j < minorSegments; j++ {
			v00 := at(i, j)
			v10 := at(i+1, j)
			v01 := at(i, j+1)
			v11 := at(i+1, j+1)
			tris = append(tris,
				NewTri(v00, v10, v11),
				NewTri(v00, v11, v01),
			)
		}
	}
	return tris
}
