// Package linset implements a set on top of the linearmap package, storing
// each element as a key with an empty value. It inherits the linear scan
// cost model and the unsorted, swap-removal entry order of the map.
package linset

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/scottcagno/linmap/pkg/linearmap"
)

// LinearSet represents a linear scan set implementation
type LinearSet[E any] struct {
	m *linearmap.LinearMap[E, struct{}]
}

// New returns a new LinearSet matching elements with the == operator
func New[E comparable]() *LinearSet[E] {
	return NewWithCapacity[E](0)
}

// NewWithCapacity returns a new LinearSet with room reserved for the
// specified number of elements
func NewWithCapacity[E comparable](capacity int) *LinearSet[E] {
	return &LinearSet[E]{m: linearmap.NewWithCapacity[E, struct{}](capacity)}
}

// NewOrdered returns a new LinearSet matching elements by total order
func NewOrdered[E cmp.Ordered]() *LinearSet[E] {
	return &LinearSet[E]{m: linearmap.NewOrdered[E, struct{}]()}
}

// NewMatcher returns a new LinearSet using the supplied match function to
// decide element identity
func NewMatcher[E any](match linearmap.MatchFunc[E]) *LinearSet[E] {
	return &LinearSet[E]{m: linearmap.NewMatcher[E, struct{}](match)}
}

// Add inserts an element and returns true if it was not already present
func (s *LinearSet[E]) Add(elem E) bool {
	_, replaced := s.m.Set(elem, struct{}{})
	return !replaced
}

// Has returns true if the set contains the specified element
func (s *LinearSet[E]) Has(elem E) bool {
	return s.m.Has(elem)
}

// Del removes an element and returns true if it was present
func (s *LinearSet[E]) Del(elem E) bool {
	_, ok := s.m.Del(elem)
	return ok
}

// Len returns the number of elements currently in the set
func (s *LinearSet[E]) Len() int {
	return s.m.Len()
}

// IsEmpty returns true if the set holds no elements
func (s *LinearSet[E]) IsEmpty() bool {
	return s.m.IsEmpty()
}

// Cap returns the number of elements the set can hold without reallocating
func (s *LinearSet[E]) Cap() int {
	return s.m.Cap()
}

// Clear removes all elements from the set, keeping the allocated memory
// for reuse
func (s *LinearSet[E]) Clear() {
	s.m.Clear()
}

// Append moves every element out of other into s, afterwards other is
// empty but keeps its allocated capacity
func (s *LinearSet[E]) Append(other *LinearSet[E]) {
	s.m.Append(other.m)
}

// Range takes an iterator function and ranges the set for as long as the
// function continues to return true
func (s *LinearSet[E]) Range(it func(elem E) bool) {
	s.m.Range(func(key E, _ struct{}) bool {
		return it(key)
	})
}

// All returns a range-over-func view of the elements in current index order
func (s *LinearSet[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		it := s.m.Keys()
		for elem, ok := it.Next(); ok; elem, ok = it.Next() {
			if !yield(elem) {
				return
			}
		}
	}
}

func (s *LinearSet[E]) String() string {
	var sb strings.Builder
	sb.WriteString("linset[")
	first := true
	s.m.Range(func(elem E, _ struct{}) bool {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%v", elem)
		return true
	})
	sb.WriteByte(']')
	return sb.String()
}
