package qhull

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// simplexIndexSets drains Simplices into sorted input-point index triples,
// themselves sorted, so triangulations compare independently of facet order.
func simplexIndexSets(qh *Qh) [][]int {
	var out [][]int
	it := qh.Simplices()
	for f, ok := it.Next(); ok; f, ok = it.Next() {
		idx := f.Vertices().Indices()
		sort.Ints(idx)
		out = append(out, idx)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		for k := range a {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})
	return out
}

func TestDelaunayTriangleWithInteriorPoint(t *testing.T) {
	qh, err := NewDelaunay([][]float64{{0, 0}, {1, 0}, {0, 1}, {0.25, 0.25}})
	require.NoError(t, err)
	defer qh.Close()

	assert.Equal(t, 2, qh.InputDim())
	assert.Equal(t, 3, qh.Dim())

	// The lifted hull is a tetrahedron; its single upper facet is excluded,
	// leaving the three triangles around the interior point.
	want := [][]int{{0, 1, 3}, {0, 2, 3}, {1, 2, 3}}
	if diff := cmp.Diff(want, simplexIndexSets(qh)); diff != "" {
		t.Errorf("simplices mismatch (-want +got):\n%s", diff)
	}

	upper := 0
	it := qh.Faces()
	for f, ok := it.Next(); ok; f, ok = it.Next() {
		if f.UpperDelaunay() {
			upper++
			assert.False(t, f.Good())
		}
	}
	assert.Equal(t, 1, upper)
}

func TestDelaunayUpperEnvelopeKept(t *testing.T) {
	cc, err := PrepareDelaunayPoints([][]float64{{0, 0}, {1, 0}, {0, 1}, {0.25, 0.25}})
	require.NoError(t, err)
	qh, err := NewBuilder().
		Dim(cc.Dim).
		Delaunay(true).
		ScaleLast(true).
		UpperDelaunay(true).
		Build(cc.Coords)
	require.NoError(t, err)
	defer qh.Close()

	// With the furthest-site option the upper facet stays in the good set.
	want := [][]int{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}}
	if diff := cmp.Diff(want, simplexIndexSets(qh)); diff != "" {
		t.Errorf("simplices mismatch (-want +got):\n%s", diff)
	}
}

func TestDelaunaySquareWithCenter(t *testing.T) {
	qh, err := NewDelaunay([][]float64{
		{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0.5, 0.5},
	})
	require.NoError(t, err)
	defer qh.Close()

	simplices := simplexIndexSets(qh)
	require.Len(t, simplices, 4)
	// Every triangle is fanned around the center point.
	for _, s := range simplices {
		assert.Contains(t, s, 4)
	}
}

func TestDelaunayCollinearInputFails(t *testing.T) {
	_, err := NewDelaunay([][]float64{{0, 0}, {1, 1}, {2, 2}, {3, 3}})
	var qerr *Error
	require.ErrorAs(t, err, &qerr)
	assert.Equal(t, KindSingular, qerr.Kind)
	assert.NotEmpty(t, qerr.Message)
}

func TestVoronoiSquareWithCenter(t *testing.T) {
	qh, err := NewVoronoi([][]float64{
		{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0.5, 0.5},
	})
	require.NoError(t, err)
	defer qh.Close()

	centers := qh.VoronoiVertices()
	require.Len(t, centers, 4)

	// The circumcenters are the edge midpoints of the square.
	want := [][]float64{{0, 0.5}, {0.5, 0}, {0.5, 1}, {1, 0.5}}
	got := make([][]float64, len(centers))
	for i, c := range centers {
		got[i] = []float64{c[0], c[1]}
	}
	sort.Slice(got, func(i, j int) bool {
		if got[i][0] != got[j][0] {
			return got[i][0] < got[j][0]
		}
		return got[i][1] < got[j][1]
	})
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i][0], got[i][0], 1e-9)
		assert.InDelta(t, want[i][1], got[i][1], 1e-9)
	}

	// The center site's region touches all four Voronoi vertices; the corner
	// sites are unbounded and touch two finite ones each.
	regions := qh.VoronoiRegions()
	require.Contains(t, regions, 4)
	assert.Len(t, regions[4], 4)
	for site := 0; site < 4; site++ {
		require.Contains(t, regions, site)
		assert.Len(t, regions[site], 2)
	}
}

func TestVoronoiCentersEquidistantFromSites(t *testing.T) {
	points := [][]float64{
		{0.1, 0.2}, {2.3, 0.1}, {1.1, 1.9}, {0.9, 0.8}, {2.0, 1.5},
	}
	qh, err := NewVoronoi(points)
	require.NoError(t, err)
	defer qh.Close()

	it := qh.Faces()
	for f, ok := it.Next(); ok; f, ok = it.Next() {
		if f.UpperDelaunay() || f.Center() == nil {
			continue
		}
		c := f.Center()
		var dists []float64
		for _, idx := range f.Vertices().Indices() {
			p := points[idx]
			dx, dy := p[0]-c[0], p[1]-c[1]
			dists = append(dists, dx*dx+dy*dy)
		}
		require.NotEmpty(t, dists)
		for _, d := range dists[1:] {
			assert.InDelta(t, dists[0], d, 1e-9)
		}
	}
}
