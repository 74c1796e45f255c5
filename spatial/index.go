// Package spatial provides nearest-neighbor indexes over 3D points.
//
// An Index maps point coordinates to caller-chosen integer ids. It is filled
// once while a surface is built and is query-only afterwards; none of the
// backends support removal. Two backends are provided: a k-d tree (default)
// and an R-tree. Both answer exact nearest, k-nearest and radius queries.
package spatial

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Result is a single indexed point returned from a query.
type Result struct {
	// ID is the id the point was inserted with.
	ID int

	// Position is the indexed coordinate.
	Position r3.Vec

	// Distance is the Euclidean distance between the query point and
	// Position.
	Distance float64
}

// Index is a nearest-neighbor index over 3D points.
//
// Coordinate collisions are legal: inserting two points with equal
// coordinates keeps both, and tied queries return one of the tied ids.
type Index interface {
	// Insert adds a point under the given id. It fails if the coordinate
	// is not finite.
	Insert(p r3.Vec, id int) error

	// Nearest returns the indexed point closest to q. It reports false
	// when the index is empty.
	Nearest(q r3.Vec) (Result, bool)

	// KNearest returns up to k indexed points closest to q, ordered by
	// ascending distance.
	KNearest(q r3.Vec, k int) []Result

	// Within returns all indexed points with distance to q no greater
	// than radius, ordered by ascending distance.
	Within(q r3.Vec, radius float64) []Result

	// Len returns the number of indexed points.
	Len() int
}

// ErrInvalidCoordinate indicates an insert with a NaN or infinite component.
type ErrInvalidCoordinate struct {
	Position r3.Vec
}

func (e *ErrInvalidCoordinate) Error() string {
	return fmt.Sprintf("invalid coordinate: (%g, %g, %g)", e.Position.X, e.Position.Y, e.Position.Z)
}

func checkFinite(p r3.Vec) error {
	for _, c := range [3]float64{p.X, p.Y, p.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return &ErrInvalidCoordinate{Position: p}
		}
	}
	return nil
}
