package qhull

import (
	"fmt"

	"github.com/hullworks/qhull/internal/engine"
)

// Ridge is a non-owning view of the boundary face shared by exactly two
// facets, valid while the owning Qh is open.
type Ridge struct {
	r   *engine.Ridge
	dim int
}

func (r Ridge) ID() uint32 { return r.r.ID }

// Top and Bottom are the two facets the ridge separates; the facet with the
// lower ID is always Top.
func (r Ridge) Top() Face { return Face{r.r.Top, r.dim} }
func (r Ridge) Bottom() Face { return Face{r.r.Bottom, r.dim} }

func (r Ridge) Vertices() VertexSet { return VertexSet{r.r.Vertices, r.dim} }

func (r Ridge) Seen() bool { return r.r.Seen }
func (r Ridge) Tested() bool { return r.r.Tested }
func (r Ridge) NonConvex() bool { return r.r.NonConvex }
func (r Ridge) MergeVertex() bool { return r.r.MergeVertex }
func (r Ridge) SimplicialTop() bool { return r.r.SimplicialTop }
func (r Ridge) SimplicialBot() bool { return r.r.SimplicialBot }

func (r Ridge) String() string {
	return fmt.Sprintf("Ridge(r%d f%d|f%d)", r.r.ID, r.r.Top.ID, r.r.Bottom.ID)
}
