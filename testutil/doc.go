// Package testutil provides testing utilities for linkprep.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for writing expressions in dictionary notation and for
// generating random expression trees.
//
// # Fixtures
//
//	d := testutil.NewDict()
//	e := d.Expr("A- & {B+ or C+}")
//
// # Random Expressions
//
//	rng := testutil.NewRNG(seed)
//	e := rng.Expr(d, testutil.ExprShape{MaxDepth: 3, MaxFanout: 3})
package testutil
