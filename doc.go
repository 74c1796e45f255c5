// Package surf manages collections of points that represent a surface.
//
// A Surface is an immutable, spatially indexed set of surfels ("surface
// elements"): sampled points that carry a position, optionally a normal and
// texture coordinates, and an arbitrary per-point payload. Surfaces are the
// input for simulation code that transports material over a mesh and needs
// fast nearest-neighbor and radius lookups at arbitrary surface locations.
//
// # Building a surface
//
// Surfaces are assembled with a fluent builder. Samples are either supplied
// directly or generated from a triangle stream with Poisson-disk sampling:
//
//	proto := Weathering{Humidity: 0.2}
//	builder := surf.NewSurfaceBuilder[geom.Vertex, Weathering]().
//	    Sampling(surf.MinimumDistance(0.1))
//	builder = surf.SampleTriangles(builder, slices.Values(tris), &proto)
//	surface, err := builder.Build()
//
// Build constructs the spatial index over the final sample positions; the
// returned Surface is query-only. Payloads remain mutable in place through
// each sample's Data accessor, which never invalidates the index because
// index keys are positions.
//
// # Querying and exporting
//
//	idx, s, ok := surface.Nearest(r3.Vec{X: 1, Y: 2, Z: 3})
//	hits := surface.Within(r3.Vec{}, 0.5)
//	err := surface.Dump(objFile)
//
// A built Surface performs no further writes and is safe for concurrent
// readers; synchronizing payload mutation is the caller's responsibility.
package surf
