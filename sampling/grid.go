package sampling

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// conflictGrid is a uniform hash grid for minimum-distance rejection. The
// cell edge is minDist/√3, so any two points in the same cell conflict and
// a candidate only needs to check the surrounding 5×5×5 cell block.
type conflictGrid struct {
	cellSize float64
	minDist2 float64
	cells    map[gridKey][]r3.Vec
}

type gridKey [3]int

func newConflictGrid(minDist float64) *conflictGrid {
	return &conflictGrid{
		cellSize: minDist / math.Sqrt(3),
		minDist2: minDist * minDist,
		cells:    make(map[gridKey][]r3.Vec),
	}
}

func (g *conflictGrid) keyOf(p r3.Vec) gridKey {
	return gridKey{
		int(math.Floor(p.X / g.cellSize)),
		int(math.Floor(p.Y / g.cellSize)),
		int(math.Floor(p.Z / g.cellSize)),
	}
}

func (g *conflictGrid) add(p r3.Vec) {
	k := g.keyOf(p)
	g.cells[k] = append(g.cells[k], p)
}

func (g *conflictGrid) conflicts(p r3.Vec) bool {
	center := g.keyOf(p)
	for dx := -2; dx <= 2; dx++ {
		for dy := -2; dy <= 2; dy++ {
			for dz := -2; dz <= 2; dz++ {
				k := gridKey{center[0] + dx, center[1] + dy, center[2] + dz}
				for _, q := range g.cells[k] {
					if r3.Norm2(r3.Sub(p, q)) < g.minDist2 {
						return true
					}
				}
			}
		}
	}
	return false
}
