// Package rng provides a small reproducible pseudo-random generator.
//
// RandR reproduces the glibc rand_r algorithm bit for bit so that random
// disjunct truncation selects the same disjuncts as existing regression
// corpora for a given seed.
package rng

// RandMax is the largest value Next can return.
const RandMax = 1<<31 - 1

// RandR is a rand_r compatible generator. The zero value is seeded with 0.
//
// RandR is not safe for concurrent use.
type RandR struct {
	state uint32
}

// New creates a generator with the given seed.
func New(seed uint32) *RandR {
	return &RandR{state: seed}
}

// State returns the current state. Feeding it to New continues the sequence.
func (r *RandR) State() uint32 {
	return r.state
}

// Seed replaces the current state.
func (r *RandR) Seed(seed uint32) {
	r.state = seed
}

// Next returns a value in [0, RandMax].
func (r *RandR) Next() uint32 {
	next := r.state

	next = next*1103515245 + 12345
	result := (next / 65536) % 2048

	next = next*1103515245 + 12345
	result <<= 10
	result ^= (next / 65536) % 1024

	next = next*1103515245 + 12345
	result <<= 10
	result ^= (next / 65536) % 1024

	r.state = next
	return result
}

// Uintn returns Next() modulo n. n must be positive.
func (r *RandR) Uintn(n uint32) uint32 {
	return r.Next() % n
}
