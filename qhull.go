// Package qhull computes convex hulls, Delaunay triangulations, Voronoi
// diagrams and halfspace intersections in arbitrary dimension.
//
// The geometry lives in an internal engine that behaves like the classic C
// library this package is modeled on: one non-reentrant context per
// computation, facets and vertices on sentinel-terminated doubly-linked
// lists, and failures signaled by unwinding to a recovery point. This
// package is the safe surface over that engine: builders for configuration,
// typed errors with captured diagnostic text, and read-only views bounded by
// the lifetime of the owning Qh.
//
// A Qh and everything viewed through it is single-goroutine only.
package qhull

import (
	"github.com/hullworks/qhull/internal/engine"
)

type mode int

const (
	modeHull mode = iota
	modeDelaunay
	modeVoronoi
	modeHalfspace
)

// Qh is one computation: the engine context, its capture buffers, and the
// coordinate buffer it borrows or owns. Views handed out by a Qh are valid
// until Close.
type Qh struct {
	ctx          *engine.Context
	buffers      ioBuffers
	coordsHolder []float64
	dim          int // hull dimension (inputDim+1 in lifted modes)
	inputDim     int
	feasible     []float64
	mode         mode
	closed       bool
}

// New computes the convex hull of a point list with default options.
func New(points [][]float64) (*Qh, error) {
	return NewBuilder().BuildFromPoints(points)
}

// NewDelaunay computes the Delaunay triangulation of a point list by lifting
// it one dimension onto a paraboloid and taking the convex hull. The
// simplices of the triangulation are the hull's lower facets, which is what
// Simplices returns on the result.
func NewDelaunay(points [][]float64) (*Qh, error) {
	cc, err := PrepareDelaunayPoints(points)
	if err != nil {
		return nil, err
	}
	qh, err := NewBuilder().
		Dim(cc.Dim).
		Delaunay(true).
		ScaleLast(true).
		Triangulate(true).
		KeepCoplanar(true).
		Build(cc.Coords)
	if err != nil {
		return nil, err
	}
	qh.coordsHolder = cc.Coords
	qh.inputDim = cc.Dim - 1
	qh.mode = modeDelaunay
	return qh, nil
}

// NewVoronoi computes the Voronoi diagram of a point list: the Delaunay
// triangulation plus the circumcenters of its simplices, which are the
// diagram's vertices.
func NewVoronoi(points [][]float64) (*Qh, error) {
	cc, err := PrepareDelaunayPoints(points)
	if err != nil {
		return nil, err
	}
	qh, err := NewBuilder().
		Dim(cc.Dim).
		Delaunay(true).
		Voronoi(true).
		ScaleLast(true).
		Triangulate(true).
		KeepCoplanar(true).
		Build(cc.Coords)
	if err != nil {
		return nil, err
	}
	qh.coordsHolder = cc.Coords
	qh.inputDim = cc.Dim - 1
	qh.mode = modeVoronoi
	return qh, nil
}

// NewHalfspace intersects halfspaces around a strictly feasible interior
// point. Each halfspace is dim+1 values (normal..., offset) meaning
// normal·x + offset <= 0. The intersection's vertices are recovered through
// HalfspaceIntersections.
func NewHalfspace(interior []float64, halfspaces [][]float64) (*Qh, error) {
	cc, err := HalfspaceDual(interior, halfspaces)
	if err != nil {
		return nil, err
	}
	feasible := append([]float64(nil), interior...)
	qh, err := NewBuilder().
		Dim(cc.Dim).
		Configure(func(ctx *engine.Context) {
			ctx.FeasiblePoint = feasible
		}).
		Build(cc.Coords)
	if err != nil {
		return nil, err
	}
	qh.coordsHolder = cc.Coords
	qh.feasible = feasible
	qh.mode = modeHalfspace
	return qh, nil
}

// Compute runs the hull computation. Builders do this by default; it is
// separate for callers that disabled it to do raw configuration first.
func (qh *Qh) Compute() error {
	return qh.Try(func(ctx *engine.Context) { ctx.Qhull() })
}

// CheckOutput runs the engine's post-compute consistency checks.
func (qh *Qh) CheckOutput() error {
	return qh.Try(func(ctx *engine.Context) { ctx.CheckOutput() })
}

// Dim is the hull dimension the engine ran in. For Delaunay and Voronoi
// modes this is InputDim+1 because of the lifting.
func (qh *Qh) Dim() int { return qh.dim }

// InputDim is the dimensionality of the caller's points.
func (qh *Qh) InputDim() int { return qh.inputDim }

func (qh *Qh) NumFaces() int { return qh.ctx.NumFacets }
func (qh *Qh) NumVertices() int { return qh.ctx.NumVertices }
func (qh *Qh) NumPoints() int { return qh.ctx.NumPoints }

// Point returns the i-th stored point as a slice into the context's buffer,
// in the engine's dimension (lifted coordinates included, in lifted modes).
func (qh *Qh) Point(i int) []float64 { return qh.ctx.Point(i) }

// InputPoint returns the i-th point restricted to the caller's dimension.
func (qh *Qh) InputPoint(i int) []float64 { return qh.ctx.Point(i)[:qh.inputDim] }

// AllFaces walks the facet list in order, sentinel included as the final
// element, exactly like walking the raw list in the engine.
func (qh *Qh) AllFaces() *FaceIterator {
	return &FaceIterator{cur: qh.ctx.FacetList, dim: qh.dim, remaining: -1}
}

// AllFacesBackward walks the facet list from the sentinel tail toward the
// head; forward then backward visits the same facets in reverse.
func (qh *Qh) AllFacesBackward() *FaceIterator {
	return &FaceIterator{cur: qh.ctx.FacetTail, dim: qh.dim, backward: true, remaining: -1}
}

// Faces is the sentinel-filtered walk, pre-sized with the facet count.
func (qh *Qh) Faces() *FaceIterator {
	return &FaceIterator{
		cur:          qh.ctx.FacetList,
		dim:          qh.dim,
		remaining:    qh.ctx.NumFacets,
		skipSentinel: true,
	}
}

// Simplices are the good simplicial facets: the clean result set. For plain
// hulls that is every facet; for Delaunay modes the upper envelope is
// excluded unless the UpperDelaunay option kept it.
func (qh *Qh) Simplices() *FaceIterator {
	return &FaceIterator{
		cur:            qh.ctx.FacetList,
		dim:            qh.dim,
		remaining:      -1,
		skipSentinel:   true,
		simplicialOnly: true,
		goodOnly:       true,
	}
}

// AllVertices walks the vertex list in order, sentinel included.
func (qh *Qh) AllVertices() *VertexIterator {
	return &VertexIterator{cur: qh.ctx.VertexList, dim: qh.dim, remaining: -1}
}

func (qh *Qh) AllVerticesBackward() *VertexIterator {
	return &VertexIterator{cur: qh.ctx.VertexTail, dim: qh.dim, backward: true, remaining: -1}
}

// Vertices is the sentinel-filtered walk, pre-sized with the vertex count.
func (qh *Qh) Vertices() *VertexIterator {
	return &VertexIterator{
		cur:          qh.ctx.VertexList,
		dim:          qh.dim,
		remaining:    qh.ctx.NumVertices,
		skipSentinel: true,
	}
}

// VoronoiVertices returns the circumcenters of the lower Delaunay facets, in
// facet list order. Only meaningful on a Qh built by NewVoronoi.
func (qh *Qh) VoronoiVertices() [][]float64 {
	var out [][]float64
	it := qh.Faces()
	for f, ok := it.Next(); ok; f, ok = it.Next() {
		if f.UpperDelaunay() || f.Center() == nil {
			continue
		}
		out = append(out, f.Center())
	}
	return out
}

// VoronoiRegions maps each input site (point index) to the indices of its
// Voronoi vertices, as positions into VoronoiVertices. Regions of sites on
// the hull of the input are unbounded; only the finite vertices appear.
func (qh *Qh) VoronoiRegions() map[int][]int {
	centerIdx := make(map[uint32]int)
	idx := 0
	it := qh.Faces()
	for f, ok := it.Next(); ok; f, ok = it.Next() {
		if f.UpperDelaunay() || f.Center() == nil {
			continue
		}
		centerIdx[f.ID()] = idx
		idx++
	}
	regions := make(map[int][]int)
	vit := qh.Vertices()
	for v, ok := vit.Next(); ok; v, ok = vit.Next() {
		var region []int
		for _, f := range v.Neighbors().Collect() {
			if i, ok := centerIdx[f.ID()]; ok {
				region = append(region, i)
			}
		}
		regions[v.Index()] = region
	}
	return regions
}

// HalfspaceIntersections recovers the vertices of the halfspace
// intersection from the facets of the dual hull: each facet with normal n
// and offset c maps back to interior + n/(-c). Facets through the dual
// origin (within tolerance) correspond to unbounded directions and are
// skipped.
func (qh *Qh) HalfspaceIntersections() [][]float64 {
	if qh.feasible == nil {
		return nil
	}
	var out [][]float64
	it := qh.Faces()
	for f, ok := it.Next(); ok; f, ok = it.Next() {
		n := f.Normal()
		c := f.Offset()
		if n == nil || c > -qh.ctx.DistRound {
			continue
		}
		p := make([]float64, qh.dim)
		for j := range p {
			p[j] = qh.feasible[j] + n[j]/(-c)
		}
		out = append(out, p)
	}
	return out
}

// CapturedOutput drains the engine's captured output stream. Fails unless
// the builder enabled CaptureStdout.
func (qh *Qh) CapturedOutput() (string, error) {
	if qh.closed {
		return "", inputErrorf("context is closed")
	}
	return qh.buffers.takeOutText(qh.ctx)
}

// RawContext exposes the engine context for low-level work. Anything
// fallible run against it belongs inside Qh.Try.
func (qh *Qh) RawContext() *engine.Context { return qh.ctx }

// Close tears the computation down: the engine's allocations are released
// and the capture files deleted. Every Face, Vertex, Ridge and Set view
// obtained from this Qh is invalid afterwards. Close is idempotent.
func (qh *Qh) Close() error {
	if qh.closed {
		return nil
	}
	qh.closed = true
	qh.buffers.close()
	qh.ctx.FreeAll()
	qh.coordsHolder = nil
	return nil
}
