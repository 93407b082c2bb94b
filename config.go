package qhull

import "github.com/hullworks/qhull/internal/engine"

// Named option setters. Each maps one option onto a raw field of the engine
// context through the deferred configuration queue, so setters compose with
// arbitrary Configure closures in registration order.

// Delaunay marks the input as paraboloid-lifted; facets on the upper
// envelope are flagged and excluded from the good set.
func (b *Builder) Delaunay(on bool) *Builder {
	return b.Configure(func(ctx *engine.Context) { ctx.Delaunay = on })
}

// Voronoi additionally computes facet circumcenters, the Voronoi vertices.
func (b *Builder) Voronoi(on bool) *Builder {
	return b.Configure(func(ctx *engine.Context) { ctx.Voronoi = on })
}

// ScaleLast rescales the last coordinate column to the extent of the others.
// Used with lifted input, where the paraboloid height grows quadratically.
func (b *Builder) ScaleLast(on bool) *Builder {
	return b.Configure(func(ctx *engine.Context) { ctx.ScaleLast = on })
}

// Triangulate requests simplicial output. The engine only ever produces
// simplicial facets, so this is recorded for option parity.
func (b *Builder) Triangulate(on bool) *Builder {
	return b.Configure(func(ctx *engine.Context) { ctx.Triangulate = on })
}

// KeepCoplanar records points within tolerance of a facet on that facet's
// coplanar set instead of dropping them.
func (b *Builder) KeepCoplanar(on bool) *Builder {
	return b.Configure(func(ctx *engine.Context) { ctx.KeepCoplanar = on })
}

// UpperDelaunay keeps upper-envelope facets in the good set (furthest-site
// triangulation).
func (b *Builder) UpperDelaunay(on bool) *Builder {
	return b.Configure(func(ctx *engine.Context) { ctx.UpperDelaunay = on })
}

// CheckFrequently verifies the mesh topology after every point insertion.
func (b *Builder) CheckFrequently(on bool) *Builder {
	return b.Configure(func(ctx *engine.Context) { ctx.CheckFrequently = on })
}

// Tolerance overrides the derived distance tolerance.
func (b *Builder) Tolerance(eps float64) *Builder {
	return b.Configure(func(ctx *engine.Context) { ctx.Tolerance = eps })
}
