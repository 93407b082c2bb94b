package qhull

import (
	"fmt"

	"github.com/hullworks/qhull/internal/engine"
)

// Vertex is a non-owning view of one vertex node, valid while the owning Qh
// is open.
type Vertex struct {
	v   *engine.Vertex
	dim int
}

// IsSentinel reports whether this is the ID-0 list terminator.
func (v Vertex) IsSentinel() bool { return v.v.ID == 0 }

func (v Vertex) ID() uint32 { return v.v.ID }
func (v Vertex) VisitID() uint32 { return v.v.VisitID }

// Point is the vertex's coordinates: a slice into the original input
// buffer, not a copy, so it compares exactly equal to what was passed in.
func (v Vertex) Point() []float64 { return v.v.Point }

// Index is the position of the vertex's point in the input buffer.
func (v Vertex) Index() int { return v.v.Index }

func (v Vertex) Previous() (Vertex, bool) {
	if v.v.Previous == nil {
		return Vertex{}, false
	}
	return Vertex{v.v.Previous, v.dim}, true
}

func (v Vertex) Next() (Vertex, bool) {
	if v.v.Next == nil {
		return Vertex{}, false
	}
	return Vertex{v.v.Next, v.dim}, true
}

// Neighbors is the set of facets this vertex belongs to.
func (v Vertex) Neighbors() FaceSet { return FaceSet{v.v.Neighbors, v.dim} }

func (v Vertex) String() string {
	if v.IsSentinel() {
		return "Vertex(sentinel)"
	}
	return fmt.Sprintf("Vertex(v%d p%d)", v.v.ID, v.v.Index)
}
