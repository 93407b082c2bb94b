package qhull

import "github.com/hullworks/qhull/internal/engine"

// Set views over the engine's nil-terminated pointer arrays. Iteration
// walks the raw array and stops at the first nil, or at the pre-fetched
// size, whichever comes first. A zero set (nil backing array) is empty.

type FaceSet struct {
	s   *engine.Set[*engine.Facet]
	dim int
}

func (s FaceSet) Size() int {
	if s.s == nil {
		return 0
	}
	return s.s.Size()
}

func (s FaceSet) At(i int) Face { return Face{s.s.At(i), s.dim} }

func (s FaceSet) Collect() []Face {
	if s.s == nil {
		return nil
	}
	out := make([]Face, 0, s.s.Size())
	for _, raw := range s.s.Raw() {
		if raw == nil {
			break
		}
		out = append(out, Face{raw, s.dim})
	}
	return out
}

type VertexSet struct {
	s   *engine.Set[*engine.Vertex]
	dim int
}

func (s VertexSet) Size() int {
	if s.s == nil {
		return 0
	}
	return s.s.Size()
}

func (s VertexSet) At(i int) Vertex { return Vertex{s.s.At(i), s.dim} }

func (s VertexSet) Collect() []Vertex {
	if s.s == nil {
		return nil
	}
	out := make([]Vertex, 0, s.s.Size())
	for _, raw := range s.s.Raw() {
		if raw == nil {
			break
		}
		out = append(out, Vertex{raw, s.dim})
	}
	return out
}

// Indices collects the point index of every vertex in the set.
func (s VertexSet) Indices() []int {
	verts := s.Collect()
	out := make([]int, len(verts))
	for i, v := range verts {
		out[i] = v.Index()
	}
	return out
}

type RidgeSet struct {
	s   *engine.Set[*engine.Ridge]
	dim int
}

func (s RidgeSet) Size() int {
	if s.s == nil {
		return 0
	}
	return s.s.Size()
}

func (s RidgeSet) At(i int) Ridge { return Ridge{s.s.At(i), s.dim} }

func (s RidgeSet) Collect() []Ridge {
	if s.s == nil {
		return nil
	}
	out := make([]Ridge, 0, s.s.Size())
	for _, raw := range s.s.Raw() {
		if raw == nil {
			break
		}
		out = append(out, Ridge{raw, s.dim})
	}
	return out
}
