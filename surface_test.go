package surf_test

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"

	surf "github.com/krachzack/aitios-surf"
	"github.com/krachzack/aitios-surf/geom"
	"github.com/krachzack/aitios-surf/spatial"
)

func buildRandomSurface(t *testing.T, n int, newIndex func() spatial.Index) *surf.Surface[geom.Point, struct{}] {
	t.Helper()
	rnd := rand.New(rand.NewPCG(21, 42))
	positions := make([]r3.Vec, n)
	for i := range positions {
		positions[i] = r3.Vec{
			X: rnd.Float64()*10 - 5,
			Y: rnd.Float64()*10 - 5,
			Z: rnd.Float64()*10 - 5,
		}
	}

	builder := surf.NewSurfaceBuilder[geom.Point, struct{}]().
		AddSamples(surf.Points(positions...)...)
	if newIndex != nil {
		builder = builder.Index(newIndex)
	}
	surface, err := builder.Build()
	require.NoError(t, err)
	return surface
}

func TestSurfaceSelfLookup(t *testing.T) {
	tests := map[string]func() spatial.Index{
		"kdtree": nil, // builder default
		"rtree":  func() spatial.Index { return spatial.NewRTree() },
	}

	for name, newIndex := range tests {
		t.Run(name, func(t *testing.T) {
			surface := buildRandomSurface(t, 150, newIndex)
			for i := 0; i < surface.Len(); i++ {
				idx, sample, ok := surface.Nearest(surface.At(i).Position())
				require.True(t, ok)
				assert.Equal(t, i, idx)
				assert.Equal(t, surface.At(i).Position(), sample.Position())
			}
		})
	}
}

func TestSurfaceKNearest(t *testing.T) {
	surface, err := surf.NewSurfaceBuilder[geom.Point, struct{}]().
		AddSamples(surf.Points(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{X: 2}, r3.Vec{X: 3})...).
		Build()
	require.NoError(t, err)

	got, err := surface.KNearest(r3.Vec{X: 0.9}, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 0, got[1].ID)

	_, err = surface.KNearest(r3.Vec{}, 0)
	assert.ErrorIs(t, err, surf.ErrInvalidK)
}

func TestSurfaceWithin(t *testing.T) {
	surface, err := surf.NewSurfaceBuilder[geom.Point, struct{}]().
		AddSamples(surf.Points(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{X: 5})...).
		Build()
	require.NoError(t, err)

	got := surface.Within(r3.Vec{}, 1.5)
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].ID)
	assert.Equal(t, 1, got[1].ID)
}

func TestSurfaceAllInsertionOrder(t *testing.T) {
	positions := []r3.Vec{{X: 3}, {X: 1}, {X: 2}}
	surface, err := surf.NewSurfaceBuilder[geom.Point, struct{}]().
		AddSamples(surf.Points(positions...)...).
		Build()
	require.NoError(t, err)

	var seen []r3.Vec
	for i, sample := range surface.All() {
		assert.Equal(t, len(seen), i)
		seen = append(seen, sample.Position())
	}
	assert.Equal(t, positions, seen)
}

func TestSurfaceEmpty(t *testing.T) {
	surface, err := surf.NewSurfaceBuilder[geom.Point, struct{}]().Build()
	require.NoError(t, err)

	assert.Zero(t, surface.Len())
	_, _, ok := surface.Nearest(r3.Vec{})
	assert.False(t, ok)
}

func TestSurfaceDump(t *testing.T) {
	surface, err := surf.NewSurfaceBuilder[geom.Point, struct{}]().
		AddSamples(surf.Points(r3.Vec{X: 1, Y: 2, Z: 3})...).
		Build()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, surface.Dump(&buf))
	assert.Contains(t, buf.String(), "v 1 2 3\n")

	var compressed bytes.Buffer
	require.NoError(t, surface.DumpCompressed(&compressed))
	assert.Positive(t, compressed.Len())
}

func TestSurfaceDumpMetricsDistinguishCompression(t *testing.T) {
	mc := &surf.BasicMetricsCollector{}
	surface, err := surf.NewSurfaceBuilder[geom.Point, struct{}]().
		AddSamples(surf.Points(r3.Vec{X: 1})...).
		Metrics(mc).
		Build()
	require.NoError(t, err)

	var plain, compressed bytes.Buffer
	require.NoError(t, surface.Dump(&plain))
	require.NoError(t, surface.DumpCompressed(&compressed))

	assert.Equal(t, int64(2), mc.DumpCount.Load())
	assert.Equal(t, int64(1), mc.DumpCompressed.Load())
	assert.Zero(t, mc.DumpErrors.Load())
}

type brokenSink struct{}

var errBroken = errors.New("disk full")

func (brokenSink) Write([]byte) (int, error) { return 0, errBroken }

func TestSurfaceDumpPropagatesSinkFailure(t *testing.T) {
	surface := buildRandomSurface(t, 2000, nil)

	err := surface.Dump(brokenSink{})
	require.Error(t, err)

	var sink *surf.ErrSink
	require.ErrorAs(t, err, &sink)
	assert.ErrorIs(t, err, errBroken)
}

func TestSurfaceConcurrentReaders(t *testing.T) {
	surface := buildRandomSurface(t, 500, nil)

	var g errgroup.Group
	for w := 0; w < 8; w++ {
		g.Go(func() error {
			for i := 0; i < surface.Len(); i++ {
				p := surface.At(i).Position()
				idx, _, ok := surface.Nearest(p)
				if !ok || idx != i {
					return errors.New("self lookup failed under concurrency")
				}
				if _, err := surface.KNearest(p, 4); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
