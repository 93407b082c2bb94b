package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Incremental convex hull over the attached point buffer. Every facet is a
// simplex; there is no facet merging and no exact-arithmetic fallback, only
// the single DistRound tolerance. Points are inserted in input order: the
// facets visible from the new point are removed and the horizon ridges are
// joined to the point with a cone of fresh simplicial facets.

// Qhull runs the compute step. Counterpart of the library's qh_qhull entry
// point; all failures unwind to the nearest recovery point.
func (ctx *Context) Qhull() {
	if ctx.freed {
		ctx.Errexit(ErrQhull, "context already freed")
	}
	if ctx.Points == nil {
		ctx.Errexit(ErrInput, "no point buffer attached")
	}
	if ctx.hasRun {
		ctx.Errexit(ErrQhull, "hull already computed on this context")
	}
	if ctx.NumPoints < ctx.HullDim+1 {
		ctx.Errexit(ErrInput, "need at least %d points for dimension %d, got %d",
			ctx.HullDim+1, ctx.HullDim, ctx.NumPoints)
	}

	used := ctx.initialSimplex()
	for i := 0; i < ctx.NumPoints; i++ {
		if used[i] {
			continue
		}
		ctx.addPoint(i)
		if ctx.CheckFrequently {
			ctx.checkStructure()
		}
	}
	ctx.buildRidges()
	if ctx.Delaunay {
		ctx.classifyDelaunay()
	} else {
		for f := ctx.FacetList; !f.IsSentinel(); f = f.Next {
			f.Good = true
		}
	}
	if ctx.Voronoi {
		ctx.computeCenters()
	}
	ctx.hasRun = true
	fmt.Fprintf(ctx.Fout, "qhull: %d points in %d-d: %d facets, %d vertices\n",
		ctx.NumPoints, ctx.HullDim, ctx.NumFacets, ctx.NumVertices)
}

// initialSimplex greedily picks dim+1 affinely independent points, creates
// the first dim+1 facets and returns which point indexes were consumed.
// Throws a singular-input failure when the input spans fewer than dim
// dimensions.
func (ctx *Context) initialSimplex() []bool {
	dim := ctx.HullDim
	used := make([]bool, ctx.NumPoints)
	chosen := make([]int, 0, dim+1)
	chosen = append(chosen, 0)
	used[0] = true
	p0 := ctx.Point(0)
	basis := make([][]float64, 0, dim)

	for len(chosen) < dim+1 {
		best, bestDist := -1, 0.0
		for i := 0; i < ctx.NumPoints; i++ {
			if used[i] {
				continue
			}
			if r := residualNorm(ctx.Point(i), p0, basis); r > bestDist {
				best, bestDist = i, r
			}
		}
		if best < 0 || bestDist <= ctx.DistRound {
			ctx.Errexit(ErrSingular,
				"singular input: %d-d points span only %d dimension(s)", dim, len(chosen)-1)
		}
		dir := residualVector(ctx.Point(best), p0, basis)
		n := norm(dir)
		for j := range dir {
			dir[j] /= n
		}
		basis = append(basis, dir)
		chosen = append(chosen, best)
		used[best] = true
	}

	ctx.InteriorPoint = make([]float64, dim)
	for _, idx := range chosen {
		p := ctx.Point(idx)
		for j := 0; j < dim; j++ {
			ctx.InteriorPoint[j] += p[j]
		}
	}
	for j := 0; j < dim; j++ {
		ctx.InteriorPoint[j] /= float64(dim + 1)
	}

	verts := make([]*Vertex, dim+1)
	for i, idx := range chosen {
		verts[i] = ctx.newVertex(idx)
	}
	facets := make([]*Facet, dim+1)
	for j := 0; j <= dim; j++ {
		f := ctx.newFacet()
		f.Simplicial = true
		for k := 0; k <= dim; k++ {
			if k != j {
				f.Vertices.Append(verts[k])
				verts[k].Neighbors.Append(f)
			}
		}
		ctx.setHyperplane(f)
		facets[j] = f
	}
	for j := 0; j <= dim; j++ {
		for k := 0; k <= dim; k++ {
			if k != j {
				facets[j].Neighbors.Append(facets[k])
			}
		}
	}
	return used
}

// residualVector is the component of p-p0 orthogonal to the given
// orthonormal basis.
func residualVector(p, p0 []float64, basis [][]float64) []float64 {
	v := make([]float64, len(p))
	for j := range p {
		v[j] = p[j] - p0[j]
	}
	for _, b := range basis {
		c := dot(v, b)
		for j := range v {
			v[j] -= c * b[j]
		}
	}
	return v
}

func residualNorm(p, p0 []float64, basis [][]float64) float64 {
	return norm(residualVector(p, p0, basis))
}

// addPoint inserts one point. Interior points are dropped (or recorded as
// coplanar when requested); otherwise the visible facets are replaced by a
// cone of new facets over the horizon ridges.
func (ctx *Context) addPoint(idx int) {
	p := ctx.Point(idx)
	ctx.VisitID++

	var visible []*Facet
	var nearest *Facet
	nearestDist := math.Inf(-1)
	furthest := 0.0
	for f := ctx.FacetList; !f.IsSentinel(); f = f.Next {
		d := ctx.distPlane(f, p)
		if d > nearestDist {
			nearest, nearestDist = f, d
		}
		if d > ctx.DistRound {
			f.Visible = true
			f.VisitID = ctx.VisitID
			visible = append(visible, f)
			furthest = math.Max(furthest, d)
		}
	}

	if len(visible) == 0 {
		// Inside the hull. Near-coplanar points can be kept on their facet.
		if ctx.KeepCoplanar && nearest != nil && nearestDist > -ctx.DistRound {
			if nearest.Coplanarset == nil {
				nearest.Coplanarset = NewSet[*Vertex](1)
			}
			nearest.Coplanarset.Append(ctx.detachedVertex(idx))
			nearest.MaxOutside = math.Max(nearest.MaxOutside, nearestDist)
		}
		return
	}

	apex := ctx.newVertex(idx)
	subridges := make(map[string]*Facet)
	var newFacets []*Facet
	for _, f := range visible {
		for _, n := range f.Neighbors.Elems() {
			if n.Visible {
				continue
			}
			// f/n straddle the horizon; their shared ridge plus the apex
			// makes one new facet.
			rv := sharedVertices(f, n)
			nf := ctx.newFacet()
			nf.Simplicial = true
			nf.NewFacet = true
			nf.FurthestDist = furthest
			for _, v := range rv {
				nf.Vertices.Append(v)
				v.Neighbors.Append(nf)
			}
			nf.Vertices.Append(apex)
			apex.Neighbors.Append(nf)
			ctx.setHyperplane(nf)

			nf.Neighbors.Append(n)
			n.Neighbors.Replace(f, nf)

			// New facets pairwise share a subridge: the horizon ridge minus
			// one vertex, plus the apex. Match them up as they appear.
			for skip := range rv {
				key := subridgeKey(rv, skip)
				if other, ok := subridges[key]; ok {
					nf.Neighbors.Append(other)
					other.Neighbors.Append(nf)
				} else {
					subridges[key] = nf
				}
			}
			newFacets = append(newFacets, nf)
		}
	}

	// Retire the visible facets and any vertex that no longer belongs to a
	// facet (a hull vertex swallowed by the new point).
	candidates := make(map[*Vertex]struct{})
	for _, f := range visible {
		for _, v := range f.Vertices.Elems() {
			v.Neighbors.Remove(f)
			if v != apex {
				candidates[v] = struct{}{}
			}
		}
		ctx.removeFacet(f)
	}
	for v := range candidates {
		if v.Neighbors.Size() == 0 {
			ctx.removeVertex(v)
		}
	}

	for _, nf := range newFacets {
		nf.NewFacet = false
	}
}

func subridgeKey(rv []*Vertex, skip int) string {
	ids := make([]int, 0, len(rv)-1)
	for i, v := range rv {
		if i != skip {
			ids = append(ids, int(v.ID))
		}
	}
	sort.Ints(ids)
	var sb strings.Builder
	for _, id := range ids {
		fmt.Fprintf(&sb, "%d:", id)
	}
	return sb.String()
}

// buildRidges materializes one ridge per neighboring facet pair. The lower
// ID becomes the top facet, matching the deterministic ordering the views
// rely on.
func (ctx *Context) buildRidges() {
	for f := ctx.FacetList; !f.IsSentinel(); f = f.Next {
		f.Ridges = NewSet[*Ridge](f.Neighbors.Size())
	}
	for f := ctx.FacetList; !f.IsSentinel(); f = f.Next {
		for _, n := range f.Neighbors.Elems() {
			if f.ID > n.ID {
				continue
			}
			rv := sharedVertices(f, n)
			r := &Ridge{
				ID:            ctx.ridgeID,
				Vertices:      NewSet[*Vertex](len(rv)),
				Top:           f,
				Bottom:        n,
				SimplicialTop: f.Simplicial,
				SimplicialBot: n.Simplicial,
			}
			ctx.ridgeID++
			for _, v := range rv {
				r.Vertices.Append(v)
			}
			f.Ridges.Append(r)
			n.Ridges.Append(r)
		}
	}
}

// classifyDelaunay flags facets of the lifted hull whose normal points up;
// those are the upper envelope and are not part of the triangulation.
func (ctx *Context) classifyDelaunay() {
	last := ctx.HullDim - 1
	for f := ctx.FacetList; !f.IsSentinel(); f = f.Next {
		f.UpperDelaunay = f.Normal[last] > -ctx.DistRound
		f.Good = !f.UpperDelaunay || ctx.UpperDelaunay
	}
}

// computeCenters fills in circumcenters of the input-space simplices, the
// Voronoi vertices dual to the Delaunay facets.
func (ctx *Context) computeCenters() {
	pdim := ctx.HullDim - 1
	if pdim < 1 {
		return
	}
	for f := ctx.FacetList; !f.IsSentinel(); f = f.Next {
		if c, ok := circumcenter(f.Vertices.Elems(), pdim); ok {
			f.Center = c
		}
	}
}

// CheckOutput verifies the finished hull: simplicial vertex counts,
// reciprocal neighbor links, ridge arity, and convexity of every input point
// against every facet. Counterpart of the library's post-compute check entry
// point; violations unwind as typed failures.
func (ctx *Context) CheckOutput() {
	if ctx.freed {
		ctx.Errexit(ErrQhull, "context already freed")
	}
	if !ctx.hasRun {
		ctx.Errexit(ErrQhull, "nothing to check: hull has not been computed")
	}
	ctx.checkStructure()
	slack := 10 * ctx.DistRound
	for i := 0; i < ctx.NumPoints; i++ {
		p := ctx.Point(i)
		for f := ctx.FacetList; !f.IsSentinel(); f = f.Next {
			if d := ctx.distPlane(f, p); d > slack {
				ctx.Errexit(ErrQhull, "point p%d is %g above facet f%d", i, d, f.ID)
			}
		}
	}
}

func (ctx *Context) checkStructure() {
	for f := ctx.FacetList; !f.IsSentinel(); f = f.Next {
		if f.Simplicial && f.Vertices.Size() != ctx.HullDim {
			ctx.Errexit(ErrTopology, "simplicial facet f%d has %d vertices, want %d",
				f.ID, f.Vertices.Size(), ctx.HullDim)
		}
		for _, n := range f.Neighbors.Elems() {
			if !n.Neighbors.Contains(f) {
				ctx.Errexit(ErrTopology, "facet f%d: neighbor f%d does not link back", f.ID, n.ID)
			}
			if got := len(sharedVertices(f, n)); got != ctx.HullDim-1 {
				ctx.Errexit(ErrTopology, "facets f%d and f%d share %d vertices, want %d",
					f.ID, n.ID, got, ctx.HullDim-1)
			}
		}
	}
	for v := ctx.VertexList; !v.IsSentinel(); v = v.Next {
		for _, f := range v.Neighbors.Elems() {
			if !f.Vertices.Contains(v) {
				ctx.Errexit(ErrTopology, "vertex v%d lists facet f%d which does not contain it", v.ID, f.ID)
			}
		}
	}
}
