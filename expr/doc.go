// Package expr defines the dictionary expressions that are expanded into
// disjuncts.
//
// An expression is a tree of And, Or and Connector nodes. Every node carries a
// cost; a Connector leaf additionally refers to an interned connector
// descriptor, a direction and a multi-connect flag.
//
//	d := expr.NewDescTable()
//	a := expr.NewConnector(d.MustIntern("A"), expr.Left)
//	b := expr.NewConnector(d.MustIntern("B"), expr.Right)
//	c := expr.NewConnector(d.MustIntern("C"), expr.Right)
//	e := expr.NewAnd(a, expr.NewOr(b, c)) // A- & (B+ or C+)
//
// Expressions are produced by a dictionary and are never modified by the
// preparation core, so one expression may be expanded by several goroutines.
package expr
