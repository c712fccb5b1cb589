// Package linkprep turns the dictionary expressions of a sentence's words
// into the disjuncts a link-grammar parser matches.
//
// # Quick Start
//
//	descs := expr.NewDescTable()
//	s := descs.MustIntern("S")
//	o := descs.MustIntern("O")
//
//	sent := linkprep.NewSentence(
//	    linkprep.NewWord("John", expr.NewConnector(s, expr.Right)),
//	    linkprep.NewWord("saw", expr.NewAnd(
//	        expr.NewConnector(s, expr.Left),
//	        expr.Optional(expr.NewConnector(o, expr.Right)),
//	    )),
//	    linkprep.NewWord("Mary", expr.NewConnector(o, expr.Left)),
//	)
//
//	p, _ := linkprep.New(linkprep.WithCostCutoff(2.7))
//	res, _ := p.Prepare(ctx, sent)
//	defer res.Release()
//
//	for w, d := range res.Words {
//	    for ; d != nil; d = d.Next {
//	        fmt.Println(w, d)
//	    }
//	}
//
// # Pipeline
//
// For every word, each expression is expanded into clauses (package build):
// an And node forms the cross product of its operands' clauses and an Or node
// concatenates them. Clauses above the cost cutoff are dropped and the rest
// become disjuncts, whose connector chains share common tails. With
// WithMaxDisjuncts set, long disjunct lists are thinned by a seeded,
// reproducible random selection.
//
// The disjuncts of a word are then deduplicated, and those whose chains
// would reach past either end of the sentence are discarded. Finally every
// connector is assigned a tracon id (package tracon): connectors heading
// structurally identical chain suffixes share an id.
//
// # Concurrency
//
// A single sentence is prepared on one goroutine. PrepareBatch prepares
// sentences in parallel, each with its own pools and tracon set.
//
// # Memory
//
// Disjuncts and connectors live in slab pools owned by the Prepared result.
// Call Release when done; WithMemoryLimit bounds the pool memory of all
// unreleased results.
package linkprep
