package engine

// Set is the engine's counterpart of the C library's setT: a length-prefixed,
// nil-terminated array of element pointers. The terminator is stored
// explicitly so raw iteration can stop on the first zero value without
// consulting the size, exactly like walking a setT's element array in C.
type Set[T comparable] struct {
	e []T // elements followed by a single zero-value terminator
}

func NewSet[T comparable](capacity int) *Set[T] {
	return &Set[T]{e: make([]T, 1, capacity+1)}
}

func (s *Set[T]) Size() int { return len(s.e) - 1 }

// Raw returns the backing array including the trailing terminator.
func (s *Set[T]) Raw() []T { return s.e }

// Elems returns the elements without the terminator.
func (s *Set[T]) Elems() []T { return s.e[:len(s.e)-1] }

func (s *Set[T]) At(i int) T { return s.e[i] }

func (s *Set[T]) Append(x T) {
	var zero T
	s.e[len(s.e)-1] = x
	s.e = append(s.e, zero)
}

func (s *Set[T]) Contains(x T) bool {
	for _, v := range s.Elems() {
		if v == x {
			return true
		}
	}
	return false
}

// Replace swaps the first occurrence of old for repl, preserving order.
func (s *Set[T]) Replace(old, repl T) bool {
	for i, v := range s.Elems() {
		if v == old {
			s.e[i] = repl
			return true
		}
	}
	return false
}

// Remove deletes the first occurrence of x, shifting later elements down so
// the terminator stays in place.
func (s *Set[T]) Remove(x T) bool {
	for i, v := range s.Elems() {
		if v == x {
			copy(s.e[i:], s.e[i+1:])
			s.e = s.e[:len(s.e)-1]
			return true
		}
	}
	return false
}
