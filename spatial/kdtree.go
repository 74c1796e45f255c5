package spatial

import (
	"math"
	"sort"
	"sync"

	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

// Compile-time check that KDTree satisfies the Index interface.
var _ Index = (*KDTree)(nil)

// KDTree is an exact nearest-neighbor index backed by a k-d tree.
//
// Inserts are buffered; the balanced tree is built on the first query and
// queries are safe to run concurrently. This is the default backend for
// surfaces.
type KDTree struct {
	pts kdPoints

	mu   sync.Mutex
	tree *kdtree.Tree
}

// NewKDTree creates an empty k-d tree index.
func NewKDTree() *KDTree {
	return &KDTree{}
}

// Insert implements Index.
func (t *KDTree) Insert(p r3.Vec, id int) error {
	if err := checkFinite(p); err != nil {
		return err
	}
	t.pts = append(t.pts, kdPoint{vec: p, id: id})
	t.tree = nil
	return nil
}

// Len implements Index.
func (t *KDTree) Len() int { return len(t.pts) }

// Nearest implements Index.
func (t *KDTree) Nearest(q r3.Vec) (Result, bool) {
	if len(t.pts) == 0 {
		return Result{}, false
	}
	got, dist := t.ensure().Nearest(kdPoint{vec: q})
	p := got.(kdPoint)
	return Result{ID: p.id, Position: p.vec, Distance: math.Sqrt(dist)}, true
}

// KNearest implements Index.
func (t *KDTree) KNearest(q r3.Vec, k int) []Result {
	if k <= 0 || len(t.pts) == 0 {
		return nil
	}
	keep := kdtree.NewNKeeper(k)
	t.ensure().NearestSet(keep, kdPoint{vec: q})
	return resultsFromHeap(keep.Heap, q)
}

// Within implements Index.
func (t *KDTree) Within(q r3.Vec, radius float64) []Result {
	if radius < 0 || len(t.pts) == 0 {
		return nil
	}
	// The keeper compares against the squared metric used by Distance.
	keep := kdtree.NewDistKeeper(radius * radius)
	t.ensure().NearestSet(keep, kdPoint{vec: q})
	return resultsFromHeap(keep.Heap, q)
}

func (t *KDTree) ensure() *kdtree.Tree {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.tree == nil {
		t.tree = kdtree.New(t.pts, false)
	}
	return t.tree
}

func resultsFromHeap(h kdtree.Heap, q r3.Vec) []Result {
	results := make([]Result, 0, len(h))
	for _, cd := range h {
		p, ok := cd.Comparable.(kdPoint)
		if !ok {
			// Keepers start out with an infinite-distance sentinel.
			continue
		}
		results = append(results, Result{
			ID:       p.id,
			Position: p.vec,
			Distance: math.Sqrt(r3.Norm2(r3.Sub(p.vec, q))),
		})
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Distance < results[j].Distance })
	return results
}

// kdPoint adapts an indexed point to kdtree.Comparable. Distances are
// squared Euclidean, matching the metric kdtree.Point uses.
type kdPoint struct {
	vec r3.Vec
	id  int
}

func (p kdPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(kdPoint)
	return component(p.vec, d) - component(q.vec, d)
}

func (p kdPoint) Dims() int { return 3 }

func (p kdPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(kdPoint)
	return r3.Norm2(r3.Sub(p.vec, q.vec))
}

func component(v r3.Vec, d kdtree.Dim) float64 {
	switch d {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic("spatial: dimension out of range")
}

// kdPoints implements kdtree.Interface for balanced construction.
type kdPoints []kdPoint

func (p kdPoints) Index(i int) kdtree.Comparable { return p[i] }

func (p kdPoints) Len() int { return len(p) }

func (p kdPoints) Pivot(d kdtree.Dim) int {
	return kdPlane{dim: d, pts: p}.Pivot()
}

func (p kdPoints) Slice(start, end int) kdtree.Interface { return p[start:end] }

// kdPlane sorts kdPoints along a single dimension.
type kdPlane struct {
	dim kdtree.Dim
	pts kdPoints
}

func (p kdPlane) Less(i, j int) bool {
	return component(p.pts[i].vec, p.dim) < component(p.pts[j].vec, p.dim)
}

func (p kdPlane) Pivot() int {
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}

func (p kdPlane) Slice(start, end int) kdtree.SortSlicer {
	return kdPlane{dim: p.dim, pts: p.pts[start:end]}
}

func (p kdPlane) Swap(i, j int) {
	p.pts[i], p.pts[j] = p.pts[j], p.pts[i]
}

func (p kdPlane) Len() int { return len(p.pts) }
