package qhull

// CollectedCoords is a flat row-major coordinate buffer plus its shape,
// the layout the engine consumes directly.
type CollectedCoords struct {
	Coords []float64
	Count  int
	Dim    int
}

// CollectCoords flattens a point list into a single coordinate buffer,
// inferring the dimension from the first point and rejecting ragged input.
func CollectCoords(points [][]float64) (CollectedCoords, error) {
	if len(points) == 0 {
		return CollectedCoords{}, inputErrorf("no points")
	}
	dim := len(points[0])
	if dim == 0 {
		return CollectedCoords{}, inputErrorf("points have dimension 0")
	}
	coords := make([]float64, 0, len(points)*dim)
	for i, p := range points {
		if len(p) != dim {
			return CollectedCoords{}, inputErrorf(
				"point %d has dimension %d, want %d", i, len(p), dim)
		}
		coords = append(coords, p...)
	}
	return CollectedCoords{Coords: coords, Count: len(points), Dim: dim}, nil
}

// PrepareDelaunayPoints lifts each point onto a paraboloid by appending one
// height coordinate: the sum of squared offsets from the centroid, each axis
// normalized by its half-width. Lower facets of the lifted hull are exactly
// the Delaunay simplices of the input.
func PrepareDelaunayPoints(points [][]float64) (CollectedCoords, error) {
	base, err := CollectCoords(points)
	if err != nil {
		return CollectedCoords{}, err
	}
	odim := base.Dim
	dim := odim + 1

	center := make([]float64, odim)
	minc := make([]float64, odim)
	maxc := make([]float64, odim)
	for j := 0; j < odim; j++ {
		minc[j] = base.Coords[j]
		maxc[j] = base.Coords[j]
	}
	for i := 0; i < base.Count; i++ {
		row := base.Coords[i*odim : (i+1)*odim]
		for j, c := range row {
			center[j] += c
			if c < minc[j] {
				minc[j] = c
			}
			if c > maxc[j] {
				maxc[j] = c
			}
		}
	}
	widths := make([]float64, odim)
	for j := 0; j < odim; j++ {
		center[j] /= float64(base.Count)
		widths[j] = (maxc[j] - minc[j]) / 2
		if widths[j] == 0 {
			// A flat axis would divide by zero here; the hull itself will
			// report the input as singular, so any finite height will do.
			widths[j] = 1
		}
	}

	coords := make([]float64, 0, base.Count*dim)
	for i := 0; i < base.Count; i++ {
		row := base.Coords[i*odim : (i+1)*odim]
		height := 0.0
		for j, c := range row {
			d := (c - center[j]) / widths[j]
			height += d * d
		}
		coords = append(coords, row...)
		coords = append(coords, height)
	}
	return CollectedCoords{Coords: coords, Count: base.Count, Dim: dim}, nil
}

// HalfspaceDual maps halfspaces onto their dual points relative to a
// strictly feasible interior point. A halfspace is dim+1 values (n..., b)
// meaning n·x + b <= 0; its dual point is n scaled by 1/(-b - n·interior).
// The convex hull of the dual points is dual to the halfspace intersection.
func HalfspaceDual(interior []float64, halfspaces [][]float64) (CollectedCoords, error) {
	dim := len(interior)
	if dim == 0 {
		return CollectedCoords{}, inputErrorf("interior point has dimension 0")
	}
	if len(halfspaces) == 0 {
		return CollectedCoords{}, inputErrorf("no halfspaces")
	}
	coords := make([]float64, 0, len(halfspaces)*dim)
	for i, h := range halfspaces {
		if len(h) != dim+1 {
			return CollectedCoords{}, inputErrorf(
				"halfspace %d has %d values, want normal plus offset = %d", i, len(h), dim+1)
		}
		denom := -h[dim]
		for j := 0; j < dim; j++ {
			denom -= h[j] * interior[j]
		}
		if denom <= 0 {
			return CollectedCoords{}, inputErrorf(
				"halfspace %d does not strictly contain the interior point", i)
		}
		for j := 0; j < dim; j++ {
			coords = append(coords, h[j]/denom)
		}
	}
	return CollectedCoords{Coords: coords, Count: len(halfspaces), Dim: dim}, nil
}
