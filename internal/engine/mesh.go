package engine

// The hull is stored as two doubly-linked lists, one of facets and one of
// vertices, each terminated by a sentinel node with ID 0 instead of a nil
// pointer. The sentinel carries no geometry; list-walking code checks
// IsSentinel rather than testing Next against nil.

// Facet is an (n-1)-dimensional face of the hull under construction.
type Facet struct {
	ID      uint32
	VisitID uint32

	Normal []float64 // outward unit normal
	Offset float64   // plane equation: Normal·x + Offset == 0
	Center []float64 // circumcenter of the projected simplex (Voronoi mode)

	FurthestDist float64
	MaxOutside   float64

	Previous *Facet
	Next     *Facet

	Vertices    *Set[*Vertex]
	Ridges      *Set[*Ridge]
	Neighbors   *Set[*Facet]
	Coplanarset *Set[*Vertex] // detached vertices for near-coplanar points

	NumMerge int

	Simplicial    bool
	Visible       bool
	TopOrient     bool
	Seen          bool
	Seen2         bool
	Flipped       bool
	UpperDelaunay bool
	NotFurthest   bool
	Good          bool
	NewFacet      bool
	Degenerate    bool
	Redundant     bool
	Tested        bool
}

func (f *Facet) IsSentinel() bool { return f.ID == 0 }

// Vertex is a node of the vertex list, referencing one point of the input
// buffer. Neighbors is the set of facets the vertex belongs to.
type Vertex struct {
	ID      uint32
	VisitID uint32

	Point []float64 // slice into the input buffer, len == hull dimension
	Index int       // index of the point in the input buffer

	Previous *Vertex
	Next     *Vertex

	Neighbors *Set[*Facet]

	Seen    bool
	Deleted bool
}

func (v *Vertex) IsSentinel() bool { return v.ID == 0 }

// Ridge is the (n-2)-dimensional boundary shared by exactly two facets.
type Ridge struct {
	ID uint32

	Vertices *Set[*Vertex]
	Top      *Facet
	Bottom   *Facet

	Seen          bool
	Tested        bool
	NonConvex     bool
	MergeVertex   bool
	SimplicialTop bool
	SimplicialBot bool
}

// newFacet allocates a facet, assigns the next ID and links it in front of
// the facet sentinel.
func (ctx *Context) newFacet() *Facet {
	f := &Facet{
		ID:        ctx.facetID,
		Vertices:  NewSet[*Vertex](ctx.HullDim),
		Neighbors: NewSet[*Facet](ctx.HullDim),
	}
	ctx.facetID++
	ctx.appendFacet(f)
	return f
}

func (ctx *Context) appendFacet(f *Facet) {
	tail := ctx.FacetTail
	prev := tail.Previous
	if prev == nil {
		ctx.FacetList = f
	} else {
		prev.Next = f
	}
	f.Previous = prev
	f.Next = tail
	tail.Previous = f
	ctx.NumFacets++
}

func (ctx *Context) removeFacet(f *Facet) {
	if f.Previous == nil {
		ctx.FacetList = f.Next
	} else {
		f.Previous.Next = f.Next
	}
	f.Next.Previous = f.Previous
	f.Previous = nil
	f.Next = nil
	ctx.NumFacets--
}

// newVertex allocates a vertex for point index idx and links it in front of
// the vertex sentinel.
func (ctx *Context) newVertex(idx int) *Vertex {
	v := &Vertex{
		ID:        ctx.vertexID,
		Point:     ctx.Point(idx),
		Index:     idx,
		Neighbors: NewSet[*Facet](ctx.HullDim + 1),
	}
	ctx.vertexID++
	ctx.appendVertex(v)
	return v
}

// detachedVertex allocates a vertex that is not part of the vertex list, used
// for coplanar-point bookkeeping on facets.
func (ctx *Context) detachedVertex(idx int) *Vertex {
	v := &Vertex{
		ID:        ctx.vertexID,
		Point:     ctx.Point(idx),
		Index:     idx,
		Neighbors: NewSet[*Facet](1),
	}
	ctx.vertexID++
	return v
}

func (ctx *Context) appendVertex(v *Vertex) {
	tail := ctx.VertexTail
	prev := tail.Previous
	if prev == nil {
		ctx.VertexList = v
	} else {
		prev.Next = v
	}
	v.Previous = prev
	v.Next = tail
	tail.Previous = v
	ctx.NumVertices++
}

func (ctx *Context) removeVertex(v *Vertex) {
	if v.Previous == nil {
		ctx.VertexList = v.Next
	} else {
		v.Previous.Next = v.Next
	}
	v.Next.Previous = v.Previous
	v.Previous = nil
	v.Next = nil
	v.Deleted = true
	ctx.NumVertices--
}

// sharedVertices collects the vertices two neighboring facets have in common,
// in a's vertex order. For simplicial neighbors this is their common ridge.
func sharedVertices(a, b *Facet) []*Vertex {
	shared := make([]*Vertex, 0, a.Vertices.Size())
	for _, v := range a.Vertices.Elems() {
		if b.Vertices.Contains(v) {
			shared = append(shared, v)
		}
	}
	return shared
}
