package build

import (
	"fmt"

	"github.com/hupe1980/linkprep/expr"
)

// tconnector is one connector leaf in a clause's flat list. Lists are kept
// nearest-operand-last: the connectors of a later And operand sit in front of
// those of earlier operands, and the earlier part is shared between clauses.
type tconnector struct {
	next *tconnector
	leaf *expr.Connector
	pos  int
	id   int // index into the suffix table
}

// Clause is one way of satisfying an expression: a list of connector leaves
// and the cost of choosing it.
type Clause struct {
	next  *Clause
	conns *tconnector
	cost  float64
}

// Next returns the following clause of the list.
func (c *Clause) Next() *Clause { return c.next }

// Cost returns the summed cost of the clause.
func (c *Clause) Cost() float64 { return c.cost }

// Len returns the number of connector leaves.
func (c *Clause) Len() int {
	n := 0
	for t := c.conns; t != nil; t = t.next {
		n++
	}
	return n
}

// Leaves returns the connector leaves in expression order.
func (c *Clause) Leaves() []*expr.Connector {
	out := make([]*expr.Connector, c.Len())
	i := len(out)
	for t := c.conns; t != nil; t = t.next {
		i--
		out[i] = t.leaf
	}
	return out
}

// Positions returns the expression position of each leaf, in the order of
// Leaves.
func (c *Clause) Positions() []int {
	out := make([]int, c.Len())
	i := len(out)
	for t := c.conns; t != nil; t = t.next {
		i--
		out[i] = t.pos
	}
	return out
}

// ClauseCount returns the length of a clause list.
func ClauseCount(c *Clause) int {
	n := 0
	for ; c != nil; c = c.next {
		n++
	}
	return n
}

// Clauses expands e into its clause list. The list stays valid until the next
// call on c that expands an expression.
func (c *Context) Clauses(e expr.Node) (*Clause, error) {
	c.transientPools()
	c.reuseTransient()
	c.expPos = 0

	head, _, err := c.expand(e, 1)
	if err != nil {
		return nil, err
	}
	return head, nil
}

// expand returns the head and last element of e's clause list.
func (c *Context) expand(e expr.Node, depth int) (*Clause, *Clause, error) {
	if c.cfg.MaxDepth > 0 && depth > c.cfg.MaxDepth {
		return nil, nil, fmt.Errorf("%w: exceeds %d levels", ErrExpressionTooDeep, c.cfg.MaxDepth)
	}

	var head, last *Clause

	switch n := e.(type) {
	case *expr.And:
		// Start from a single empty clause; each operand multiplies it.
		head = c.newClause(nil, 0)
		last = head

		for _, op := range n.Operands {
			opHead, _, err := c.expand(op, depth+1)
			if err != nil {
				return nil, nil, err
			}

			var prod, prodLast *Clause
			for acc := head; acc != nil; acc = acc.next {
				for oc := opHead; oc != nil; oc = oc.next {
					nc := c.newClause(c.catenate(oc.conns, acc.conns), acc.cost+oc.cost)
					nc.next = prod
					if prod == nil {
						prodLast = nc
					}
					prod = nc
				}
			}
			head, last = prod, prodLast
		}
	case *expr.Or:
		for _, op := range n.Operands {
			opHead, opLast, err := c.expand(op, depth+1)
			if err != nil {
				return nil, nil, err
			}
			if opHead == nil {
				continue
			}
			if head == nil {
				head = opHead
			} else {
				last.next = opHead
			}
			last = opLast
		}
	case *expr.Connector:
		t := c.newTconnector(n)
		t.pos = c.expPos
		c.expPos++
		head = c.newClause(t, 0)
		last = head
	default:
		panic(fmt.Sprintf("build: unknown expression node %T", e))
	}

	if cost := e.NodeCost(); cost != 0 {
		for cl := head; cl != nil; cl = cl.next {
			cl.cost += cost
		}
	}
	return head, last, nil
}

func (c *Context) newClause(conns *tconnector, cost float64) *Clause {
	cl := c.clausePool.Alloc()
	cl.conns = conns
	cl.cost = cost
	return cl
}

func (c *Context) newTconnector(leaf *expr.Connector) *tconnector {
	t := c.tconnPool.Alloc()
	t.leaf = leaf
	t.id = c.tconnPool.Len() - 1
	return t
}

// catenate copies front and links the copy to back, which is shared.
func (c *Context) catenate(front, back *tconnector) *tconnector {
	var head *tconnector
	link := &head
	for t := front; t != nil; t = t.next {
		cp := c.newTconnector(t.leaf)
		cp.pos = t.pos
		*link = cp
		link = &cp.next
	}
	*link = back
	return head
}
