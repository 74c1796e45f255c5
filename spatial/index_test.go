package spatial

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func backends() map[string]func() Index {
	return map[string]func() Index{
		"kdtree": func() Index { return NewKDTree() },
		"rtree":  func() Index { return NewRTree() },
	}
}

func TestIndexSelfLookup(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))

	for name, newIndex := range backends() {
		t.Run(name, func(t *testing.T) {
			idx := newIndex()
			pts := make([]r3.Vec, 200)
			for i := range pts {
				pts[i] = r3.Vec{
					X: rnd.Float64()*20 - 10,
					Y: rnd.Float64()*20 - 10,
					Z: rnd.Float64()*20 - 10,
				}
				require.NoError(t, idx.Insert(pts[i], i))
			}
			require.Equal(t, len(pts), idx.Len())

			for i, p := range pts {
				r, ok := idx.Nearest(p)
				require.True(t, ok)
				assert.Equal(t, i, r.ID)
				assert.InDelta(t, 0, r.Distance, 1e-12)
			}
		})
	}
}

func TestIndexKNearestOrdered(t *testing.T) {
	for name, newIndex := range backends() {
		t.Run(name, func(t *testing.T) {
			idx := newIndex()
			// Points on the X axis at x = 0, 1, 2, ...
			for i := 0; i < 10; i++ {
				require.NoError(t, idx.Insert(r3.Vec{X: float64(i)}, i))
			}

			got := idx.KNearest(r3.Vec{X: 0.1}, 3)
			require.Len(t, got, 3)
			assert.Equal(t, 0, got[0].ID)
			assert.Equal(t, 1, got[1].ID)
			assert.Equal(t, 2, got[2].ID)
			for i := 1; i < len(got); i++ {
				assert.LessOrEqual(t, got[i-1].Distance, got[i].Distance)
			}

			// Asking for more neighbors than points returns all of them.
			assert.Len(t, idx.KNearest(r3.Vec{}, 50), 10)
			assert.Nil(t, idx.KNearest(r3.Vec{}, 0))
		})
	}
}

func TestIndexWithin(t *testing.T) {
	for name, newIndex := range backends() {
		t.Run(name, func(t *testing.T) {
			idx := newIndex()
			for i := 0; i < 10; i++ {
				require.NoError(t, idx.Insert(r3.Vec{X: float64(i)}, i))
			}

			got := idx.Within(r3.Vec{}, 2.5)
			require.Len(t, got, 3)
			for _, r := range got {
				assert.LessOrEqual(t, r.Distance, 2.5)
			}
			for i := 1; i < len(got); i++ {
				assert.LessOrEqual(t, got[i-1].Distance, got[i].Distance)
			}

			assert.Empty(t, idx.Within(r3.Vec{X: 100}, 0.5))
		})
	}
}

func TestIndexDuplicateCoordinates(t *testing.T) {
	p := r3.Vec{X: 1, Y: 2, Z: 3}

	for name, newIndex := range backends() {
		t.Run(name, func(t *testing.T) {
			idx := newIndex()
			require.NoError(t, idx.Insert(p, 0))
			require.NoError(t, idx.Insert(p, 1))
			require.Equal(t, 2, idx.Len())

			r, ok := idx.Nearest(p)
			require.True(t, ok)
			assert.Contains(t, []int{0, 1}, r.ID)

			assert.Len(t, idx.Within(p, 0.1), 2)
		})
	}
}

func TestIndexRejectsNonFinite(t *testing.T) {
	bad := []r3.Vec{
		{X: math.NaN()},
		{Y: math.Inf(1)},
		{Z: math.Inf(-1)},
	}

	// NaN components never compare equal, so positions are matched
	// component-wise.
	sameComponent := func(want, got float64) bool {
		if math.IsNaN(want) {
			return math.IsNaN(got)
		}
		return want == got
	}

	for name, newIndex := range backends() {
		t.Run(name, func(t *testing.T) {
			idx := newIndex()
			for _, p := range bad {
				err := idx.Insert(p, 0)
				require.Error(t, err)
				var ic *ErrInvalidCoordinate
				require.ErrorAs(t, err, &ic)
				assert.True(t, sameComponent(p.X, ic.Position.X))
				assert.True(t, sameComponent(p.Y, ic.Position.Y))
				assert.True(t, sameComponent(p.Z, ic.Position.Z))
			}
			assert.Equal(t, 0, idx.Len())
		})
	}
}

func TestIndexEmpty(t *testing.T) {
	for name, newIndex := range backends() {
		t.Run(name, func(t *testing.T) {
			idx := newIndex()
			_, ok := idx.Nearest(r3.Vec{})
			assert.False(t, ok)
			assert.Nil(t, idx.KNearest(r3.Vec{}, 3))
			assert.Nil(t, idx.Within(r3.Vec{}, 1))
		})
	}
}
