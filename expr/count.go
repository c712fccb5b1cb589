package expr

import "fmt"

// CountClauses returns the number of clauses n expands into: the product of
// the operand counts for And and their sum for Or. Cost cutoffs are not
// applied.
func CountClauses(n Node) uint64 {
	switch v := n.(type) {
	case *And:
		cnt := uint64(1)
		for _, op := range v.Operands {
			cnt *= CountClauses(op)
		}
		return cnt
	case *Or:
		var cnt uint64
		for _, op := range v.Operands {
			cnt += CountClauses(op)
		}
		return cnt
	case *Connector:
		return 1
	default:
		panic(fmt.Sprintf("expr: unknown node type %T", n))
	}
}

// Depth returns the height of the tree rooted at n. A leaf has depth 1.
func Depth(n Node) int {
	var ops []Node
	switch v := n.(type) {
	case *And:
		ops = v.Operands
	case *Or:
		ops = v.Operands
	case *Connector:
		return 1
	default:
		panic(fmt.Sprintf("expr: unknown node type %T", n))
	}
	d := 0
	for _, op := range ops {
		d = max(d, Depth(op))
	}
	return d + 1
}

// Leaves returns the connector leaves of n in textual order.
func Leaves(n Node) []*Connector {
	var out []*Connector
	Walk(n, func(m Node) bool {
		if c, ok := m.(*Connector); ok {
			out = append(out, c)
		}
		return true
	})
	return out
}
