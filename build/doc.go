// Package build expands expressions into disjuncts.
//
// Expansion runs in two steps. The clause builder walks an expression tree and
// produces a list of clauses, each a flat list of connector leaves with the
// summed cost of its derivation: And nodes multiply clause lists, Or nodes
// concatenate them. The disjunct builder then turns every clause within the
// cost cutoff into a Disjunct with a left and a right connector chain.
//
// Clause connector lists share their trailing parts: an And node copies the
// connectors of the operand being added and links them in front of the list
// accumulated so far. The disjunct builder materializes a shared trailing
// list into connectors only once and reuses that chain for every clause that
// contains it, so connector allocation grows with the number of distinct
// suffixes rather than with the number of clauses.
//
// All transient memory comes from slab pools owned by a Context. A Context
// belongs to one sentence and must not be shared between goroutines.
package build
