// Package tracon interns trailing connector sequences (tracons).
//
// A tracon is a connector chain suffix identified by the sequence of
// (descriptor, multi) pairs from its first connector to the end of the chain.
// Set is an open-addressed hash table keyed by that sequence, so that
// structurally identical chains map to one canonical head. In shallow mode the
// shallow flag of the first connector is part of the key as well; pruning
// needs to tell a shallow-headed tracon from an otherwise identical deep one.
//
// # Two-phase insertion
//
// Add either finds the canonical chain or reserves an empty slot:
//
//	ref := set.Add(c)
//	if head := ref.Head(); head != nil {
//		return head // already interned
//	}
//	ref.Commit(c)
//
// A reservation must be committed or cancelled before the next Add. Set is
// not safe for concurrent use; each sentence owns its own Set.
//
// # Capacity
//
// Capacity is always a prime from a fixed ascending table. The table grows to
// the next prime before an insertion would make it more than 3/8 full.
// Growing rehashes every occupied slot with its stored hash.
package tracon
