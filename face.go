package qhull

import (
	"fmt"

	"github.com/hullworks/qhull/dbg"
	"github.com/hullworks/qhull/internal/engine"
)

// Face is a non-owning view of one facet. It stays valid while the owning
// Qh is open; holding one across Close is the same mistake as holding a
// pointer into a freed arena.
type Face struct {
	f   *engine.Facet
	dim int
}

// IsSentinel reports whether this is the ID-0 list terminator, which
// carries no geometry.
func (f Face) IsSentinel() bool { return f.f.ID == 0 }

func (f Face) ID() uint32 { return f.f.ID }
func (f Face) VisitID() uint32 { return f.f.VisitID }

// Normal is the outward unit normal, nil on the sentinel.
func (f Face) Normal() []float64 { return f.f.Normal }

// Offset completes the plane equation Normal·x + Offset == 0.
func (f Face) Offset() float64 { return f.f.Offset }

// Center is the circumcenter of the facet's simplex in input coordinates.
// Only computed in Voronoi mode; nil otherwise.
func (f Face) Center() []float64 { return f.f.Center }

func (f Face) FurthestDist() float64 { return f.f.FurthestDist }
func (f Face) MaxOutside() float64 { return f.f.MaxOutside }

func (f Face) Previous() (Face, bool) {
	if f.f.Previous == nil {
		return Face{}, false
	}
	return Face{f.f.Previous, f.dim}, true
}

func (f Face) Next() (Face, bool) {
	if f.f.Next == nil {
		return Face{}, false
	}
	return Face{f.f.Next, f.dim}, true
}

func (f Face) Vertices() VertexSet { return VertexSet{f.f.Vertices, f.dim} }
func (f Face) Ridges() RidgeSet { return RidgeSet{f.f.Ridges, f.dim} }
func (f Face) Neighbors() FaceSet { return FaceSet{f.f.Neighbors, f.dim} }
func (f Face) CoplanarSet() VertexSet {
	return VertexSet{f.f.Coplanarset, f.dim}
}

func (f Face) NumMerge() int { return f.f.NumMerge }

func (f Face) Simplicial() bool { return f.f.Simplicial }
func (f Face) Visible() bool { return f.f.Visible }
func (f Face) TopOrient() bool { return f.f.TopOrient }
func (f Face) Seen() bool { return f.f.Seen }
func (f Face) Flipped() bool { return f.f.Flipped }
func (f Face) UpperDelaunay() bool { return f.f.UpperDelaunay }
func (f Face) Good() bool { return f.f.Good }
func (f Face) NewFacet() bool { return f.f.NewFacet }
func (f Face) Degenerate() bool { return f.f.Degenerate }
func (f Face) Redundant() bool { return f.f.Redundant }
func (f Face) Tested() bool { return f.f.Tested }

func (f Face) String() string {
	if f.IsSentinel() {
		return "Face(sentinel)"
	}
	return fmt.Sprintf("Face(f%d)", f.f.ID)
}

// DbgName is a readable, run-local name for the facet, for debug output.
func (f Face) DbgName() string { return dbg.Name(f.f) }
