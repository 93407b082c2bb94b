package qhull

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertValidHull checks the convexity invariant from the outside: every
// input point must be on or below the plane of every facet.
func AssertValidHull(t *testing.T, qh *Qh, points [][]float64) {
	t.Helper()
	faces := qh.Faces().Collect()
	require.NotEmpty(t, faces)
	for i, p := range points {
		for _, f := range faces {
			d := f.Offset()
			for j, n := range f.Normal() {
				d += n * p[j]
			}
			assert.LessOrEqual(t, d, 1e-7, "point %d is above facet f%d", i, f.ID())
		}
	}
}

func TestHullSquare(t *testing.T) {
	points := [][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	qh, err := New(points)
	require.NoError(t, err)
	defer qh.Close()

	// Four corners, four edges.
	assert.Equal(t, 4, qh.NumFaces())
	assert.Equal(t, 4, qh.NumVertices())
	AssertValidHull(t, qh, points)
}

func TestHullTriangleWithInteriorPoint(t *testing.T) {
	points := [][]float64{{0, 0}, {1, 0}, {0, 1}, {0.25, 0.25}}
	qh, err := New(points)
	require.NoError(t, err)
	defer qh.Close()

	assert.Equal(t, 3, qh.NumFaces())
	assert.Equal(t, 3, qh.NumVertices())
	AssertValidHull(t, qh, points)

	// The interior point is not a vertex of the hull.
	vit := qh.Vertices()
	for v, ok := vit.Next(); ok; v, ok = vit.Next() {
		assert.NotEqual(t, 3, v.Index())
	}
}

func TestVertexPointRoundTrip(t *testing.T) {
	// Coordinates with no exact binary representation: the round trip must
	// still be bit-exact because views alias the stored buffer.
	points := [][]float64{{0.1, 0.2}, {1.3, 0.4}, {0.5, 1.7}, {2.1, 2.2}}
	qh, err := New(points)
	require.NoError(t, err)
	defer qh.Close()

	vit := qh.Vertices()
	for v, ok := vit.Next(); ok; v, ok = vit.Next() {
		idx := v.Index()
		require.Equal(t, points[idx], v.Point())
		require.Equal(t, points[idx], qh.InputPoint(idx))
	}
}

func TestFaceIterationForwardBackward(t *testing.T) {
	qh, err := New([][]float64{{0, 0}, {4, 0}, {4, 3}, {0, 3}, {2, 1}})
	require.NoError(t, err)
	defer qh.Close()

	forward := qh.AllFaces().IDs()
	backward := qh.AllFacesBackward().IDs()
	require.Len(t, backward, len(forward))
	for i, id := range forward {
		assert.Equal(t, id, backward[len(backward)-1-i])
	}

	// The unbounded walk includes the sentinel as its final element.
	require.NotEmpty(t, forward)
	assert.Equal(t, uint32(0), forward[len(forward)-1])

	// The pre-sized, filtered walk sees everything but the sentinel.
	faces := qh.Faces().Collect()
	assert.Len(t, faces, len(forward)-1)
	assert.Equal(t, qh.NumFaces(), len(faces))
	for _, f := range faces {
		assert.False(t, f.IsSentinel())
	}
}

func TestSimplicesMatchFacesForPlainHull(t *testing.T) {
	qh, err := New([][]float64{{0, 0}, {3, 0}, {0, 3}, {1, 1}})
	require.NoError(t, err)
	defer qh.Close()
	assert.Len(t, qh.Simplices().Collect(), qh.NumFaces())
}

func TestFaceViewAccessors(t *testing.T) {
	qh, err := New([][]float64{{0, 0}, {1, 0}, {0, 1}})
	require.NoError(t, err)
	defer qh.Close()

	fit := qh.Faces()
	for f, ok := fit.Next(); ok; f, ok = fit.Next() {
		assert.True(t, f.Simplicial())
		assert.False(t, f.UpperDelaunay())
		assert.Len(t, f.Normal(), 2)
		assert.Equal(t, 2, f.Vertices().Size())
		assert.Equal(t, 2, f.Neighbors().Size())
		assert.Equal(t, 2, f.Ridges().Size())
		for _, r := range f.Ridges().Collect() {
			assert.True(t, r.Top().ID() == f.ID() || r.Bottom().ID() == f.ID())
			assert.Equal(t, 1, r.Vertices().Size())
		}
		// Walking through Next from a face eventually hits the sentinel.
		cur := f
		for !cur.IsSentinel() {
			next, ok := cur.Next()
			require.True(t, ok)
			cur = next
		}
	}

	vit := qh.Vertices()
	for v, ok := vit.Next(); ok; v, ok = vit.Next() {
		assert.Equal(t, 2, v.Neighbors().Size())
		for _, f := range v.Neighbors().Collect() {
			found := false
			for _, fv := range f.Vertices().Collect() {
				if fv.ID() == v.ID() {
					found = true
				}
			}
			assert.True(t, found)
		}
	}
}

func TestCapturedOutput(t *testing.T) {
	qh, err := NewBuilder().
		CaptureStdout(true).
		BuildFromPoints([][]float64{{0, 0}, {1, 0}, {0, 1}})
	require.NoError(t, err)
	defer qh.Close()

	text, err := qh.CapturedOutput()
	require.NoError(t, err)
	assert.Contains(t, text, "qhull:")

	// The stream was swapped out; a second read comes back empty.
	text, err = qh.CapturedOutput()
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestCapturedOutputRequiresToggle(t *testing.T) {
	qh, err := New([][]float64{{0, 0}, {1, 0}, {0, 1}})
	require.NoError(t, err)
	defer qh.Close()
	_, err = qh.CapturedOutput()
	assert.Error(t, err)
}

func TestClose(t *testing.T) {
	qh, err := New([][]float64{{0, 0}, {1, 0}, {0, 1}})
	require.NoError(t, err)

	require.NoError(t, qh.Close())
	require.NoError(t, qh.Close()) // idempotent

	err = qh.Compute()
	var qerr *Error
	require.ErrorAs(t, err, &qerr)
	assert.Equal(t, KindQhull, qerr.Kind)

	// Iterators from a closed Qh are empty rather than walking freed state.
	assert.Empty(t, qh.AllFaces().Collect())
}
