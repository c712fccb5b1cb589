package testutil

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/hupe1980/linkprep/expr"
)

// Dict interns connector names for test expressions.
type Dict struct {
	*expr.DescTable
}

// NewDict creates an empty Dict.
func NewDict() *Dict {
	return &Dict{DescTable: expr.NewDescTable()}
}

// Expr parses s and panics on error.
func (d *Dict) Expr(s string) expr.Node {
	return expr.MustParse(d.DescTable, s)
}

// L returns a left connector leaf.
func (d *Dict) L(name string) *expr.Connector {
	return expr.NewConnector(d.MustIntern(name), expr.Left)
}

// R returns a right connector leaf.
func (d *Dict) R(name string) *expr.Connector {
	return expr.NewConnector(d.MustIntern(name), expr.Right)
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // test data
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// ExprShape bounds the trees generated by Expr.
type ExprShape struct {
	MaxDepth  int // levels of And/Or nodes, 0 gives a single leaf
	MaxFanout int // operands per node, at least 1
	Names     int // distinct connector heads, at most 26
}

func (s ExprShape) withDefaults() ExprShape {
	if s.MaxFanout <= 0 {
		s.MaxFanout = 3
	}
	if s.Names <= 0 || s.Names > 26 {
		s.Names = 6
	}
	return s
}

// costs are chosen to be exact in binary so sums compare equal.
var costs = []float64{0, 0, 0, 0.5, 1, 2}

// Expr generates a random expression tree. Optional subexpressions, multi
// connectors and costs are mixed in.
func (r *RNG) Expr(d *Dict, shape ExprShape) expr.Node {
	return r.expr(d, shape.withDefaults(), shape.MaxDepth)
}

func (r *RNG) expr(d *Dict, shape ExprShape, depth int) expr.Node {
	if depth <= 0 || r.Intn(4) == 0 {
		name := fmt.Sprintf("%c", 'A'+r.Intn(shape.Names))
		var c *expr.Connector
		if r.Intn(2) == 0 {
			c = d.L(name)
		} else {
			c = d.R(name)
		}
		c.Multi = r.Intn(5) == 0
		c.Cost = costs[r.Intn(len(costs))]
		return c
	}

	ops := make([]expr.Node, 1+r.Intn(shape.MaxFanout))
	for i := range ops {
		ops[i] = r.expr(d, shape, depth-1)
	}

	var n expr.Node
	switch r.Intn(3) {
	case 0:
		n = expr.NewAnd(ops...)
	case 1:
		n = expr.NewOr(ops...)
	default:
		n = expr.Optional(expr.NewAnd(ops...))
	}
	return expr.WithCost(n, costs[r.Intn(len(costs))])
}
