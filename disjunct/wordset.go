package disjunct

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// WordSet is the set of input-word ids a disjunct originates from.
//
// Disjuncts built from the same expression share one WordSet.
type WordSet struct {
	rb *roaring.Bitmap
}

// NewWordSet creates a set holding ids.
func NewWordSet(ids ...uint32) *WordSet {
	return &WordSet{rb: roaring.BitmapOf(ids...)}
}

// Add inserts id.
func (s *WordSet) Add(id uint32) {
	s.rb.Add(id)
}

// Contains reports whether id is in the set.
func (s *WordSet) Contains(id uint32) bool {
	if s == nil {
		return false
	}
	return s.rb.Contains(id)
}

// Len returns the number of ids.
func (s *WordSet) Len() int {
	if s == nil {
		return 0
	}
	return int(s.rb.GetCardinality()) //nolint:gosec // word counts are small
}

// IDs returns the ids in ascending order.
func (s *WordSet) IDs() []uint32 {
	if s == nil {
		return nil
	}
	return s.rb.ToArray()
}

// Union returns a new set with the ids of both sets.
func (s *WordSet) Union(o *WordSet) *WordSet {
	switch {
	case s == nil && o == nil:
		return nil
	case s == nil:
		return &WordSet{rb: o.rb.Clone()}
	case o == nil:
		return &WordSet{rb: s.rb.Clone()}
	}
	return &WordSet{rb: roaring.Or(s.rb, o.rb)}
}

// Equal reports whether both sets hold the same ids.
func (s *WordSet) Equal(o *WordSet) bool {
	if s == nil || o == nil {
		return s.Len() == 0 && o.Len() == 0
	}
	return s.rb.Equals(o.rb)
}
