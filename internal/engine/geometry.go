package engine

import "math"

// Numerical primitives for the hull construction. Plain Gaussian elimination
// with partial pivoting throughout; the engine does not attempt the original
// library's roundoff model, it only carries a single distance tolerance.

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func norm(a []float64) float64 {
	return math.Sqrt(dot(a, a))
}

// setHyperplane computes the outward normal and offset of a simplicial facet
// from its vertex points, oriented so the context's interior point lies
// strictly below the plane. Throws a precision failure when the vertices do
// not span a hyperplane.
func (ctx *Context) setHyperplane(f *Facet) {
	dim := ctx.HullDim
	verts := f.Vertices.Elems()
	if len(verts) != dim {
		ctx.Errexit(ErrTopology, "facet f%d has %d vertices, want %d", f.ID, len(verts), dim)
	}
	base := verts[0].Point
	rows := make([][]float64, dim-1)
	for i := 1; i < dim; i++ {
		row := make([]float64, dim)
		for j := 0; j < dim; j++ {
			row[j] = verts[i].Point[j] - base[j]
		}
		rows[i-1] = row
	}
	normal, ok := nullSpaceVector(rows, dim)
	if !ok {
		f.Degenerate = true
		ctx.Errexit(ErrPrec, "facet f%d is degenerate: vertices do not span a hyperplane", f.ID)
	}
	n := norm(normal)
	if n == 0 {
		f.Degenerate = true
		ctx.Errexit(ErrPrec, "facet f%d has a zero normal", f.ID)
	}
	for j := range normal {
		normal[j] /= n
	}
	offset := -dot(normal, base)
	if dot(normal, ctx.InteriorPoint)+offset > 0 {
		for j := range normal {
			normal[j] = -normal[j]
		}
		offset = -offset
	}
	f.Normal = normal
	f.Offset = offset
}

// distPlane is the signed distance of p from the facet's hyperplane;
// positive means outside.
func (ctx *Context) distPlane(f *Facet, p []float64) float64 {
	return dot(f.Normal, p) + f.Offset
}

// nullSpaceVector finds a non-zero vector orthogonal to every row. The rows
// must number dim-1; a rank deficiency reports failure.
func nullSpaceVector(rows [][]float64, dim int) ([]float64, bool) {
	r := len(rows)
	m := make([][]float64, r)
	for i := range rows {
		m[i] = append([]float64(nil), rows[i]...)
	}
	pivotCol := make([]int, 0, r)
	isPivot := make([]bool, dim)
	row := 0
	for col := 0; col < dim && row < r; col++ {
		best, bestAbs := -1, 0.0
		for i := row; i < r; i++ {
			if a := math.Abs(m[i][col]); a > bestAbs {
				best, bestAbs = i, a
			}
		}
		if best < 0 || bestAbs == 0 {
			continue
		}
		m[row], m[best] = m[best], m[row]
		for i := 0; i < r; i++ {
			if i == row || m[i][col] == 0 {
				continue
			}
			factor := m[i][col] / m[row][col]
			for j := col; j < dim; j++ {
				m[i][j] -= factor * m[row][j]
			}
		}
		pivotCol = append(pivotCol, col)
		isPivot[col] = true
		row++
	}
	if row < r {
		return nil, false // rank deficient: rows were linearly dependent
	}
	free := -1
	for col := 0; col < dim; col++ {
		if !isPivot[col] {
			free = col
			break
		}
	}
	if free < 0 {
		return nil, false
	}
	x := make([]float64, dim)
	x[free] = 1
	for i := r - 1; i >= 0; i-- {
		col := pivotCol[i]
		sum := 0.0
		for j := col + 1; j < dim; j++ {
			sum += m[i][j] * x[j]
		}
		x[col] = -sum / m[i][col]
	}
	return x, true
}

// solveLinear solves a*x = b in place for a square system. Reports failure
// on a singular matrix.
func solveLinear(a [][]float64, b []float64) ([]float64, bool) {
	n := len(b)
	for col := 0; col < n; col++ {
		best, bestAbs := -1, 0.0
		for i := col; i < n; i++ {
			if v := math.Abs(a[i][col]); v > bestAbs {
				best, bestAbs = i, v
			}
		}
		if best < 0 || bestAbs == 0 {
			return nil, false
		}
		a[col], a[best] = a[best], a[col]
		b[col], b[best] = b[best], b[col]
		for i := col + 1; i < n; i++ {
			factor := a[i][col] / a[col][col]
			if factor == 0 {
				continue
			}
			for j := col; j < n; j++ {
				a[i][j] -= factor * a[col][j]
			}
			b[i] -= factor * b[col]
		}
	}
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := b[i]
		for j := i + 1; j < n; j++ {
			sum -= a[i][j] * x[j]
		}
		x[i] = sum / a[i][i]
	}
	return x, true
}

// circumcenter of the facet's vertices projected to the first pdim
// coordinates. Solves 2(v_i - v_0)·x = |v_i|^2 - |v_0|^2.
func circumcenter(verts []*Vertex, pdim int) ([]float64, bool) {
	if len(verts) != pdim+1 {
		return nil, false
	}
	v0 := verts[0].Point
	a := make([][]float64, pdim)
	b := make([]float64, pdim)
	for i := 1; i <= pdim; i++ {
		vi := verts[i].Point
		row := make([]float64, pdim)
		rhs := 0.0
		for j := 0; j < pdim; j++ {
			row[j] = 2 * (vi[j] - v0[j])
			rhs += vi[j]*vi[j] - v0[j]*v0[j]
		}
		a[i-1] = row
		b[i-1] = rhs
	}
	return solveLinear(a, b)
}
