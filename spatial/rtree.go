package spatial

import (
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"
	"gonum.org/v1/gonum/spatial/r3"
)

// Compile-time check that RTree satisfies the Index interface.
var _ Index = (*RTree)(nil)

// rtreeTol is the half-width of the degenerate rectangle an indexed point
// occupies. rtreego rejects zero-extent rectangles.
const rtreeTol = 1e-9

// RTree is a nearest-neighbor index backed by an R-tree. It answers the
// same exact queries as KDTree; substitute it when the surrounding code
// already maintains R-tree bounding volumes.
type RTree struct {
	tree *rtreego.Rtree
}

// NewRTree creates an empty R-tree index.
func NewRTree() *RTree {
	return &RTree{tree: rtreego.NewTree(3, 2, 16)}
}

// Insert implements Index.
func (t *RTree) Insert(p r3.Vec, id int) error {
	if err := checkFinite(p); err != nil {
		return err
	}
	t.tree.Insert(&rtreeEntry{pt: rtreego.Point{p.X, p.Y, p.Z}, id: id})
	return nil
}

// Len implements Index.
func (t *RTree) Len() int { return t.tree.Size() }

// Nearest implements Index.
func (t *RTree) Nearest(q r3.Vec) (Result, bool) {
	if t.tree.Size() == 0 {
		return Result{}, false
	}
	got := t.tree.NearestNeighbor(rtreego.Point{q.X, q.Y, q.Z})
	e, ok := got.(*rtreeEntry)
	if !ok {
		return Result{}, false
	}
	return e.result(q), true
}

// KNearest implements Index.
func (t *RTree) KNearest(q r3.Vec, k int) []Result {
	if k <= 0 || t.tree.Size() == 0 {
		return nil
	}
	got := t.tree.NearestNeighbors(k, rtreego.Point{q.X, q.Y, q.Z})
	results := make([]Result, 0, len(got))
	for _, s := range got {
		if e, ok := s.(*rtreeEntry); ok {
			results = append(results, e.result(q))
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Distance < results[j].Distance })
	return results
}

// Within implements Index.
func (t *RTree) Within(q r3.Vec, radius float64) []Result {
	if radius < 0 || t.tree.Size() == 0 {
		return nil
	}
	// Candidate search over the bounding box of the query ball, then an
	// exact distance filter.
	half := radius + rtreeTol
	bb, err := rtreego.NewRect(
		rtreego.Point{q.X - half, q.Y - half, q.Z - half},
		[]float64{2 * half, 2 * half, 2 * half},
	)
	if err != nil {
		return nil
	}
	var results []Result
	for _, s := range t.tree.SearchIntersect(bb) {
		e, ok := s.(*rtreeEntry)
		if !ok {
			continue
		}
		r := e.result(q)
		if r.Distance <= radius {
			results = append(results, r)
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Distance < results[j].Distance })
	return results
}

// rtreeEntry adapts an indexed point to rtreego.Spatial.
type rtreeEntry struct {
	pt rtreego.Point
	id int
}

func (e *rtreeEntry) Bounds() rtreego.Rect {
	return e.pt.ToRect(rtreeTol)
}

func (e *rtreeEntry) result(q r3.Vec) Result {
	pos := r3.Vec{X: e.pt[0], Y: e.pt[1], Z: e.pt[2]}
	return Result{
		ID:       e.id,
		Position: pos,
		Distance: math.Sqrt(r3.Norm2(r3.Sub(pos, q))),
	}
}
