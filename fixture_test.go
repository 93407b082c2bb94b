package qhull

import (
	"embed"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// This file parses the svg fixtures and outputs point sets. This is not a
// full (or even correct) svg parser. It parses the SVG, finds whatever the
// first polygon is, and returns its points. The polygon's winding and
// self-intersections are irrelevant here: a fixture is just a point cloud.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func loadFixture(t *testing.T, name string) [][]float64 {
	t.Helper()
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	require.NoError(t, err, "could not load fixture %q", name)
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, true)
	require.NoError(t, err, "failed to parse fixture %q", name)

	polygons := rootEl.FindAll("polygon")
	require.Len(t, polygons, 1, "fixture %q should hold exactly one polygon", name)

	var points [][]float64
	for _, pointString := range strings.Split(polygons[0].Attributes["points"], " ") {
		if pointString == "" {
			continue
		}
		coords := strings.Split(pointString, ",")
		require.Len(t, coords, 2, "invalid point string %q", pointString)
		x, err := strconv.ParseFloat(coords[0], 64)
		require.NoError(t, err)
		y, err := strconv.ParseFloat(coords[1], 64)
		require.NoError(t, err)
		points = append(points, []float64{x, y})
	}
	return points
}

// starPoints is an ad hoc code specified fixture: a ten-point star with the
// radii slightly perturbed per point, so no four points are cocircular.
func starPoints() [][]float64 {
	var points [][]float64
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		radius := innerRadius + 0.1*float64(i)
		if i%2 == 0 {
			radius = outerRadius + 0.1*float64(i)
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, []float64{
			radius * math.Cos(angle),
			radius * math.Sin(angle),
		})
	}
	return points
}

func TestHullSquareFixture(t *testing.T) {
	points := loadFixture(t, "square")
	require.Len(t, points, 4)

	qh, err := New(points)
	require.NoError(t, err)
	defer qh.Close()
	assert.Equal(t, 4, qh.NumFaces())
	assert.Equal(t, 4, qh.NumVertices())
	AssertValidHull(t, qh, points)
}

func TestHullBlobFixture(t *testing.T) {
	// A convex octagon with three interior points.
	points := loadFixture(t, "blob")
	require.Len(t, points, 11)

	qh, err := New(points)
	require.NoError(t, err)
	defer qh.Close()
	assert.Equal(t, 8, qh.NumFaces())
	assert.Equal(t, 8, qh.NumVertices())
	assert.Equal(t, 11, qh.NumPoints())
	AssertValidHull(t, qh, points)
}

func TestHullStar(t *testing.T) {
	// Only the outer points survive onto the hull.
	points := starPoints()
	qh, err := New(points)
	require.NoError(t, err)
	defer qh.Close()
	assert.Equal(t, 5, qh.NumFaces())
	assert.Equal(t, 5, qh.NumVertices())
	AssertValidHull(t, qh, points)

	vit := qh.Vertices()
	for v, ok := vit.Next(); ok; v, ok = vit.Next() {
		assert.Equal(t, 0, v.Index()%2, "inner point %d ended up on the hull", v.Index())
	}
}

func TestDelaunayStar(t *testing.T) {
	points := starPoints()
	qh, err := NewDelaunay(points)
	require.NoError(t, err)
	defer qh.Close()

	// Ten sites, five on the hull: 2n - h - 2 triangles, every site a vertex.
	assert.Equal(t, 10, qh.NumVertices())
	simplices := qh.Simplices().Collect()
	assert.Len(t, simplices, 13)

	used := map[int]bool{}
	for _, f := range simplices {
		idx := f.Vertices().Indices()
		require.Len(t, idx, 3)
		for _, i := range idx {
			used[i] = true
		}
	}
	assert.Len(t, used, 10)
}
