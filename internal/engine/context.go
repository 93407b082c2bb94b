package engine

import (
	"io"
	"math"
	"os"
)

// Context is the engine's single mutable state, the counterpart of the C
// library's qhT. Exactly one computation per context; it is not reentrant and
// must not be shared across goroutines. Option fields are raw and public on
// purpose: the wrapping package's configuration setters write them directly,
// after Init and before AttachPoints.
type Context struct {
	// Options.
	Delaunay        bool    // input was lifted to a paraboloid
	Voronoi         bool    // compute facet circumcenters after the hull
	ScaleLast       bool    // rescale the lifted coordinate to the input range
	Triangulate     bool    // kept for option parity; facets are always simplicial here
	KeepCoplanar    bool    // record near-coplanar points on their facet
	UpperDelaunay   bool    // keep upper-Delaunay facets in the good set
	CheckFrequently bool    // verify topology after every insertion
	Tolerance       float64 // 0 means derive from the input extents

	// Diagnostic streams. The wrapper points these at capture files.
	Fout io.Writer
	Ferr io.Writer

	// True whenever no recovery point is installed. TryOn flips it for the
	// duration of the guarded call; a nested TryOn observes false and refuses.
	NoErrexit bool

	// Input. Points is a flat row-major buffer, NumPoints rows of HullDim.
	HullDim       int
	NumPoints     int
	Points        []float64
	FeasiblePoint []float64 // interior point for halfspace intersection mode

	// The mesh. FacetTail and VertexTail are the ID-0 sentinels; the heads
	// equal the sentinels while the lists are empty.
	FacetList   *Facet
	FacetTail   *Facet
	VertexList  *Vertex
	VertexTail  *Vertex
	NumFacets   int
	NumVertices int
	VisitID     uint32

	InteriorPoint []float64 // strictly inside the hull, orients hyperplanes
	DistRound     float64   // distance tolerance actually used
	MaxWidth      float64   // widest coordinate extent of the input

	facetID  uint32
	vertexID uint32
	ridgeID  uint32
	hasRun   bool
	freed    bool
}

// Init prepares an empty context: sentinels in place, recovery flag armed,
// streams attached. Counterpart of the library's first initialization entry
// point. A nil writer falls back to the process's own stream.
func (ctx *Context) Init(out, errw io.Writer) {
	if out == nil {
		out = os.Stdout
	}
	if errw == nil {
		errw = os.Stderr
	}
	ctx.Fout = out
	ctx.Ferr = errw
	ctx.NoErrexit = true
	ctx.FacetTail = &Facet{}
	ctx.FacetList = ctx.FacetTail
	ctx.VertexTail = &Vertex{}
	ctx.VertexList = ctx.VertexTail
	ctx.facetID = 1
	ctx.vertexID = 1
	ctx.ridgeID = 1
}

// AttachPoints borrows the flat coordinate buffer for the lifetime of the
// context. Counterpart of the library's second initialization entry point.
// The buffer may be rewritten in place when ScaleLast is set, as the C
// library does with its own scaling options.
func (ctx *Context) AttachPoints(points []float64, numPoints, dim int) {
	if ctx.freed {
		ctx.Errexit(ErrQhull, "context already freed")
	}
	if dim < 1 {
		ctx.Errexit(ErrInput, "dimension must be at least 1, got %d", dim)
	}
	if numPoints < 1 {
		ctx.Errexit(ErrInput, "no points")
	}
	if len(points) != numPoints*dim {
		ctx.Errexit(ErrInput, "coordinate buffer holds %d values, want %d points x %d dimensions = %d",
			len(points), numPoints, dim, numPoints*dim)
	}
	ctx.Points = points
	ctx.NumPoints = numPoints
	ctx.HullDim = dim

	maxAbs := 0.0
	ctx.MaxWidth = 0
	for col := 0; col < dim; col++ {
		lo, hi := math.Inf(1), math.Inf(-1)
		for row := 0; row < numPoints; row++ {
			c := points[row*dim+col]
			lo = math.Min(lo, c)
			hi = math.Max(hi, c)
			maxAbs = math.Max(maxAbs, math.Abs(c))
		}
		ctx.MaxWidth = math.Max(ctx.MaxWidth, hi-lo)
	}
	if ctx.Tolerance > 0 {
		ctx.DistRound = ctx.Tolerance
	} else {
		ctx.DistRound = 1e-10 * float64(dim) * math.Max(1, maxAbs)
	}
	if ctx.ScaleLast && dim > 1 {
		ctx.scaleLastColumn()
	}
}

// scaleLastColumn maps the last coordinate column onto the extent of the
// other columns. Used for lifted Delaunay input, where the paraboloid height
// can otherwise dwarf the site coordinates.
func (ctx *Context) scaleLastColumn() {
	dim := ctx.HullDim
	last := dim - 1
	width := 0.0
	for col := 0; col < last; col++ {
		lo, hi := math.Inf(1), math.Inf(-1)
		for row := 0; row < ctx.NumPoints; row++ {
			c := ctx.Points[row*dim+col]
			lo = math.Min(lo, c)
			hi = math.Max(hi, c)
		}
		width = math.Max(width, hi-lo)
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for row := 0; row < ctx.NumPoints; row++ {
		c := ctx.Points[row*dim+last]
		lo = math.Min(lo, c)
		hi = math.Max(hi, c)
	}
	if hi-lo <= 0 || width <= 0 {
		return
	}
	scale := width / (hi - lo)
	for row := 0; row < ctx.NumPoints; row++ {
		ctx.Points[row*dim+last] = (ctx.Points[row*dim+last] - lo) * scale
	}
}

// Point returns the idx-th input point as a slice into the attached buffer.
func (ctx *Context) Point(i int) []float64 {
	return ctx.Points[i*ctx.HullDim : (i+1)*ctx.HullDim]
}

// HasRun reports whether the compute step has completed on this context.
func (ctx *Context) HasRun() bool { return ctx.hasRun }

// Freed reports whether FreeAll has torn the context down.
func (ctx *Context) Freed() bool { return ctx.freed }

// FreeAll releases everything the context holds. Counterpart of the
// library's teardown call; any view into the mesh is invalid afterwards.
func (ctx *Context) FreeAll() {
	ctx.FacetList = nil
	ctx.FacetTail = nil
	ctx.VertexList = nil
	ctx.VertexTail = nil
	ctx.Points = nil
	ctx.InteriorPoint = nil
	ctx.FeasiblePoint = nil
	ctx.NumFacets = 0
	ctx.NumVertices = 0
	ctx.NumPoints = 0
	ctx.freed = true
}
