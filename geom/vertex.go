package geom

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vertex is a fully attributed mesh vertex: position, normal and texture
// coordinates. It satisfies all three capability interfaces.
type Vertex struct {
	Pos  r3.Vec
	Norm r3.Vec
	UV   r2.Vec
}

// Position implements Position.
func (v Vertex) Position() r3.Vec { return v.Pos }

// Normal implements Normal.
func (v Vertex) Normal() r3.Vec { return v.Norm }

// Texcoords implements Texcoords.
func (v Vertex) Texcoords() r2.Vec { return v.UV }

// Lerp linearly blends two vertices with weight t in [0, 1].
// The blended normal is re-normalized unless it degenerates to zero.
func (v Vertex) Lerp(o Vertex, t float64) Vertex {
	return blend3(v, o, Vertex{}, 1-t, t, 0)
}

func blend3(a, b, c Vertex, wa, wb, wc float64) Vertex {
	pos := r3.Add(r3.Add(r3.Scale(wa, a.Pos), r3.Scale(wb, b.Pos)), r3.Scale(wc, c.Pos))
	norm := r3.Add(r3.Add(r3.Scale(wa, a.Norm), r3.Scale(wb, b.Norm)), r3.Scale(wc, c.Norm))
	if r3.Norm(norm) > 0 {
		norm = r3.Unit(norm)
	}
	uv := r2.Add(r2.Add(r2.Scale(wa, a.UV), r2.Scale(wb, b.UV)), r2.Scale(wc, c.UV))
	return Vertex{Pos: pos, Norm: norm, UV: uv}
}
