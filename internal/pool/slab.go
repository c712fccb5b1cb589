// Package pool provides slab allocators for the disjunct preparation hot path.
//
// A Slab hands out pointers into fixed-size segments. Segments are never moved
// or shrunk, so a pointer stays valid until the next Reset. Reset rewinds the
// allocation cursor and keeps every segment for reuse, which turns the many
// small allocations of a word's expansion into a handful of segment allocations
// per sentence.
package pool

import "unsafe"

// DefaultSegmentSize is the number of elements per segment when none is given.
const DefaultSegmentSize = 4096

// Stats describes slab usage.
type Stats struct {
	Name          string
	Live          int   // elements handed out since the last Reset
	Capacity      int   // elements backed by segments
	Segments      int   // segments allocated
	BytesReserved int64 // Capacity * element size
	HighWater     int   // largest Live ever observed
	Resets        int   // Reset calls
}

// Slab is a bump allocator for values of type T.
//
// Slab is not safe for concurrent use. One sentence owns its slabs.
type Slab[T any] struct {
	name      string
	segSize   int
	segments  [][]T
	next      int
	highWater int
	resets    int
}

// NewSlab creates a slab whose segments hold segmentSize elements.
func NewSlab[T any](name string, segmentSize int) *Slab[T] {
	if segmentSize <= 0 {
		segmentSize = DefaultSegmentSize
	}
	return &Slab[T]{
		name:    name,
		segSize: segmentSize,
	}
}

// Alloc returns a pointer to a zeroed element.
func (s *Slab[T]) Alloc() *T {
	seg := s.next / s.segSize
	if seg == len(s.segments) {
		s.segments = append(s.segments, make([]T, s.segSize))
	}
	p := &s.segments[seg][s.next%s.segSize]
	var zero T
	*p = zero
	s.next++
	if s.next > s.highWater {
		s.highWater = s.next
	}
	return p
}

// Len returns the number of elements allocated since the last Reset.
func (s *Slab[T]) Len() int {
	return s.next
}

// Cap returns the number of elements the current segments can hold.
func (s *Slab[T]) Cap() int {
	return len(s.segments) * s.segSize
}

// Reset invalidates every pointer handed out so far. Segments are retained.
func (s *Slab[T]) Reset() {
	s.next = 0
	s.resets++
}

// Free drops all segments.
func (s *Slab[T]) Free() {
	s.segments = nil
	s.next = 0
}

// BytesReserved returns the memory held by the segments.
func (s *Slab[T]) BytesReserved() int64 {
	var zero T
	return int64(s.Cap()) * int64(unsafe.Sizeof(zero))
}

// Stats returns a snapshot of the slab's usage.
func (s *Slab[T]) Stats() Stats {
	return Stats{
		Name:          s.name,
		Live:          s.next,
		Capacity:      s.Cap(),
		Segments:      len(s.segments),
		BytesReserved: s.BytesReserved(),
		HighWater:     s.highWater,
		Resets:        s.resets,
	}
}
