package tracon

import (
	"github.com/hupe1980/linkprep/disjunct"
)

const (
	primaryMultiplier = 7
	strideMultiplier  = 17
)

type slot struct {
	head *disjunct.Connector
	hash uint32
}

// Set is the tracon interning table.
type Set struct {
	table    []slot
	primeIdx int
	count    int
	shallow  bool
	gen      uint64 // bumped whenever slot indexes change meaning
	pending  int    // reserved slot index, -1 if none
	deleted  bool
}

// Ref is the result of Add: either a slot holding the canonical chain or a
// reservation for a new one.
type Ref struct {
	s    *Set
	idx  int
	gen  uint64
	hash uint32
}

// New creates an empty set at the smallest capacity.
func New() *Set {
	return &Set{
		table:   make([]slot, primes[0]),
		pending: -1,
	}
}

// SetShallow selects whether the first connector's shallow flag is part of
// the key. Change it only while the set is empty.
func (s *Set) SetShallow(shallow bool) {
	s.shallow = shallow
}

// Shallow reports whether shallow mode is enabled.
func (s *Set) Shallow() bool {
	return s.shallow
}

// Len returns the number of interned tracons.
func (s *Set) Len() int {
	return s.count
}

// Cap returns the current table capacity.
func (s *Set) Cap() int {
	return len(s.table)
}

// Add looks up the chain starting at c. The returned Ref holds the canonical
// head if an equal chain was interned before; otherwise it is a reservation
// that must be completed with Commit or Cancel before the next Add.
func (s *Set) Add(c *disjunct.Connector) Ref {
	s.checkUsable()
	if c == nil {
		panic("tracon: cannot add an empty chain")
	}
	if s.pending >= 0 {
		panic("tracon: Add called while a reservation is pending")
	}

	if 8*(s.count+1) > 3*len(s.table) {
		s.grow()
	}

	h := s.hashChain(primaryMultiplier, c)
	idx := s.findPlace(c, h)
	if s.table[idx].head == nil {
		s.pending = idx
	}
	return Ref{s: s, idx: idx, gen: s.gen, hash: h}
}

// Lookup returns the canonical chain equal to c, or nil.
func (s *Set) Lookup(c *disjunct.Connector) *disjunct.Connector {
	s.checkUsable()
	if c == nil {
		return nil
	}
	h := s.hashChain(primaryMultiplier, c)
	return s.table[s.findPlace(c, h)].head
}

// Reset empties every slot. Capacity is kept.
func (s *Set) Reset() {
	s.checkUsable()
	clear(s.table)
	s.count = 0
	s.pending = -1
	s.gen++
}

// Delete releases the table. The set must not be used afterwards.
func (s *Set) Delete() {
	s.table = nil
	s.count = 0
	s.pending = -1
	s.deleted = true
	s.gen++
}

// Head returns the canonical chain, or nil for a reservation.
func (r Ref) Head() *disjunct.Connector {
	r.check()
	return r.s.table[r.idx].head
}

// Found reports whether the chain was already interned.
func (r Ref) Found() bool {
	return r.Head() != nil
}

// Commit stores head as the canonical chain of a reservation.
func (r Ref) Commit(head *disjunct.Connector) {
	r.check()
	if r.s.pending != r.idx {
		panic("tracon: Commit on a slot that is not reserved")
	}
	if head == nil {
		panic("tracon: cannot commit an empty chain")
	}
	r.s.table[r.idx] = slot{head: head, hash: r.hash}
	r.s.count++
	r.s.pending = -1
}

// Cancel abandons a reservation. It is a no-op for found chains.
func (r Ref) Cancel() {
	r.check()
	if r.s.pending == r.idx {
		r.s.pending = -1
	}
}

func (r Ref) check() {
	if r.s == nil {
		panic("tracon: zero Ref")
	}
	if r.gen != r.s.gen {
		panic("tracon: stale Ref")
	}
}

func (s *Set) checkUsable() {
	if s.deleted {
		panic("tracon: set used after Delete")
	}
}

func (s *Set) hashChain(k uint32, c *disjunct.Connector) uint32 {
	var accum uint32
	if s.shallow && c.Shallow {
		accum = 1
	}
	for ; c != nil; c = c.Next {
		var multi uint32
		if c.Multi {
			multi = 1
		}
		accum = k*accum + (c.Desc.UC << 18) + (multi << 31) + c.Desc.LC
	}
	return accum
}

func (s *Set) stride(c *disjunct.Connector) uint32 {
	st := s.hashChain(strideMultiplier, c) % uint32(len(s.table)) //nolint:gosec // table sizes fit uint32
	if st == 0 {
		st = 1
	}
	return st
}

func (s *Set) placeFound(c *disjunct.Connector, sl *slot, h uint32) bool {
	if sl.head == nil {
		return true
	}
	if sl.hash != h {
		return false
	}
	if s.shallow && sl.head.Shallow != c.Shallow {
		return false
	}
	return disjunct.ChainEqual(sl.head, c)
}

// findPlace returns the slot holding c or the empty slot where it belongs.
func (s *Set) findPlace(c *disjunct.Connector, h uint32) int {
	size := uint32(len(s.table)) //nolint:gosec // table sizes fit uint32
	key := h % size
	if s.placeFound(c, &s.table[key], h) {
		return int(key)
	}

	st := s.stride(c)
	for {
		key += st
		if key >= size {
			key %= size
		}
		if s.placeFound(c, &s.table[key], h) {
			return int(key)
		}
	}
}

func (s *Set) grow() {
	old := s.table
	s.primeIdx++
	if s.primeIdx >= len(primes) {
		panic("tracon: table exceeds largest capacity")
	}
	s.table = make([]slot, primes[s.primeIdx])
	s.gen++
	for i := range old {
		if old[i].head != nil {
			s.table[s.findPlace(old[i].head, old[i].hash)] = old[i]
		}
	}
}
