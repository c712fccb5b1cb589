package expr

import "fmt"

// Dir is the direction a connector points to.
type Dir byte

const (
	// Left connectors link to words before the germ.
	Left Dir = '-'
	// Right connectors link to words after the germ.
	Right Dir = '+'
)

// String returns "-" or "+".
func (d Dir) String() string {
	return string(rune(d))
}

// Node is an expression tree node. It is implemented only by *And, *Or and
// *Connector.
type Node interface {
	// NodeCost returns the cost added to every clause derived through the node.
	NodeCost() float64
	// NodeTag returns the optional display tag.
	NodeTag() string

	sealed()
}

// And requires all of its operands.
type And struct {
	Cost     float64
	Tag      string
	Operands []Node
}

// Or requires exactly one of its operands.
type Or struct {
	Cost     float64
	Tag      string
	Operands []Node
}

// Connector is a leaf naming one link endpoint.
type Connector struct {
	Cost  float64
	Tag   string
	Desc  *Desc
	Dir   Dir
	Multi bool

	// FarthestWord is the farthest word distance the dictionary allows for
	// this connector. Zero means unlimited.
	FarthestWord int
}

func (n *And) NodeCost() float64       { return n.Cost }
func (n *Or) NodeCost() float64        { return n.Cost }
func (n *Connector) NodeCost() float64 { return n.Cost }

func (n *And) NodeTag() string       { return n.Tag }
func (n *Or) NodeTag() string        { return n.Tag }
func (n *Connector) NodeTag() string { return n.Tag }

func (*And) sealed()       {}
func (*Or) sealed()        {}
func (*Connector) sealed() {}

// NewAnd returns an And node over the operands.
func NewAnd(operands ...Node) *And {
	return &And{Operands: operands}
}

// NewOr returns an Or node over the operands.
func NewOr(operands ...Node) *Or {
	return &Or{Operands: operands}
}

// NewConnector returns a connector leaf.
func NewConnector(desc *Desc, dir Dir) *Connector {
	return &Connector{Desc: desc, Dir: dir}
}

// NewMulti returns a multi-connect connector leaf (written @X in dictionaries).
func NewMulti(desc *Desc, dir Dir) *Connector {
	return &Connector{Desc: desc, Dir: dir, Multi: true}
}

// Optional returns {n}: an Or of the empty And and n.
func Optional(n Node) *Or {
	return NewOr(NewAnd(), n)
}

// WithCost sets the cost of n and returns it.
func WithCost[N Node](n N, cost float64) N {
	switch v := any(n).(type) {
	case *And:
		v.Cost = cost
	case *Or:
		v.Cost = cost
	case *Connector:
		v.Cost = cost
	default:
		panic(fmt.Sprintf("expr: unknown node type %T", n))
	}
	return n
}

// Walk calls fn for n and every node below it in depth-first, left-to-right
// order. It stops descending into a node when fn returns false.
func Walk(n Node, fn func(Node) bool) {
	if !fn(n) {
		return
	}
	switch v := n.(type) {
	case *And:
		for _, op := range v.Operands {
			Walk(op, fn)
		}
	case *Or:
		for _, op := range v.Operands {
			Walk(op, fn)
		}
	case *Connector:
	default:
		panic(fmt.Sprintf("expr: unknown node type %T", n))
	}
}
