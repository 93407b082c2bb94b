package qhull

import "github.com/hullworks/qhull/internal/engine"

// List iterators over the engine's doubly-linked facet and vertex lists.
// An unbounded iterator runs until it falls off the list, which includes
// the sentinel as the final element; a pre-sized iterator additionally
// stops after a fixed number of yields. Filters skip the sentinel and
// non-qualifying nodes without consuming the bound.

type FaceIterator struct {
	cur            *engine.Facet
	dim            int
	remaining      int // < 0 means unbounded
	backward       bool
	skipSentinel   bool
	simplicialOnly bool
	goodOnly       bool
}

func (it *FaceIterator) Next() (Face, bool) {
	for it.cur != nil && it.remaining != 0 {
		f := it.cur
		if it.backward {
			it.cur = f.Previous
		} else {
			it.cur = f.Next
		}
		if it.skipSentinel && f.IsSentinel() {
			continue
		}
		if it.simplicialOnly && !f.Simplicial {
			continue
		}
		if it.goodOnly && !f.Good {
			continue
		}
		if it.remaining > 0 {
			it.remaining--
		}
		return Face{f, it.dim}, true
	}
	return Face{}, false
}

// Collect drains the iterator.
func (it *FaceIterator) Collect() []Face {
	var out []Face
	for f, ok := it.Next(); ok; f, ok = it.Next() {
		out = append(out, f)
	}
	return out
}

// IDs drains the iterator into the sequence of facet IDs.
func (it *FaceIterator) IDs() []uint32 {
	var out []uint32
	for f, ok := it.Next(); ok; f, ok = it.Next() {
		out = append(out, f.ID())
	}
	return out
}

type VertexIterator struct {
	cur          *engine.Vertex
	dim          int
	remaining    int // < 0 means unbounded
	backward     bool
	skipSentinel bool
}

func (it *VertexIterator) Next() (Vertex, bool) {
	for it.cur != nil && it.remaining != 0 {
		v := it.cur
		if it.backward {
			it.cur = v.Previous
		} else {
			it.cur = v.Next
		}
		if it.skipSentinel && v.IsSentinel() {
			continue
		}
		if it.remaining > 0 {
			it.remaining--
		}
		return Vertex{v, it.dim}, true
	}
	return Vertex{}, false
}

func (it *VertexIterator) Collect() []Vertex {
	var out []Vertex
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		out = append(out, v)
	}
	return out
}
