package surf_test

import (
	"bytes"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	surf "github.com/krachzack/aitios-surf"
	"github.com/krachzack/aitios-surf/geom"
	"github.com/krachzack/aitios-surf/sampling"
)

// TestTorus builds a surfel set for a whole torus mesh, the way simulation
// code would seed material properties over a scene.
func TestTorus(t *testing.T) {
	torus := geom.Torus(1, 0.35, 32, 16)
	prototype := weathering{Prop: -1}

	builder := surf.NewSurfaceBuilder[geom.Vertex, weathering]().
		Sampling(surf.MinimumDistance(0.1)).
		SamplingOptions(sampling.WithRand(rand.New(rand.NewPCG(7, 7))))
	builder = surf.SampleTriangles(builder, slices.Values(torus), &prototype)
	surface, err := builder.Build()
	require.NoError(t, err)
	require.Positive(t, surface.Len())

	// Every surfel carries an independent copy of the prototype payload.
	for _, sample := range surface.All() {
		assert.Equal(t, -1, sample.Data().Prop)
	}

	// Sampled vertices keep their interpolated attributes.
	first := surface.At(0)
	n, ok := first.Normal()
	require.True(t, ok)
	assert.InDelta(t, 1, r3.Norm(n), 1e-9)
	_, ok = first.Texcoords()
	assert.True(t, ok)

	// Spatial queries resolve through the index.
	idx, _, ok := surface.Nearest(surface.At(10).Position())
	require.True(t, ok)
	assert.Equal(t, 10, idx)

	// The dump contains one vertex line per surfel, with normals and
	// texcoords interleaved.
	var sink bytes.Buffer
	require.NoError(t, surface.Dump(&sink))
	out := sink.String()
	assert.Equal(t, surface.Len(), strings.Count(out, "\nv ")+boolToInt(strings.HasPrefix(out, "v ")))
	assert.Contains(t, out, "vn ")
	assert.Contains(t, out, "vt ")
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// TestSurfaceSubsetInjection reuses samples of one surface to build another,
// which is how callers carve sub-surfaces out of a scene.
func TestSurfaceSubsetInjection(t *testing.T) {
	torus := geom.Torus(1, 0.35, 16, 8)
	prototype := weathering{Prop: 5}

	builder := surf.NewSurfaceBuilder[geom.Vertex, weathering]().
		Sampling(surf.MinimumDistance(0.2)).
		SamplingOptions(sampling.WithRand(rand.New(rand.NewPCG(3, 1))))
	builder = surf.SampleTriangles(builder, slices.Values(torus), &prototype)
	whole, err := builder.Build()
	require.NoError(t, err)
	require.GreaterOrEqual(t, whole.Len(), 4)

	// Keep only samples above the XZ plane.
	subset := surf.NewSurfaceBuilder[geom.Vertex, weathering]()
	kept := 0
	for _, sample := range whole.All() {
		if sample.Position().Y > 0 {
			subset = subset.AddSamples(*sample)
			kept++
		}
	}
	half, err := subset.Build()
	require.NoError(t, err)
	assert.Equal(t, kept, half.Len())
}
