package disjunct

import (
	"strings"

	"github.com/hupe1980/linkprep/expr"
)

// Connector is one element of a disjunct's left or right chain.
type Connector struct {
	Desc  *expr.Desc
	Multi bool

	// Shallow is set on the first connector of each chain.
	Shallow bool

	// NearestWord is the nearest word index this connector could link to.
	NearestWord int
	// FarthestWord is the dictionary's limit on link length, 0 if unlimited.
	FarthestWord int
	// ExpPos is the expression position of the originating leaf.
	ExpPos int

	// TraconID identifies the canonical tracon headed by this connector, 0
	// before tracon encoding.
	TraconID int

	Next *Connector
}

// Len returns the number of connectors in the chain starting at c.
func (c *Connector) Len() int {
	n := 0
	for ; c != nil; c = c.Next {
		n++
	}
	return n
}

// Last returns the final connector of the chain.
func (c *Connector) Last() *Connector {
	if c == nil {
		return nil
	}
	for c.Next != nil {
		c = c.Next
	}
	return c
}

// Equal reports whether two connectors have the same descriptor and multi
// flag.
func (c *Connector) Equal(o *Connector) bool {
	return c.Desc == o.Desc && c.Multi == o.Multi
}

// ChainEqual reports whether two chains are structurally identical.
func ChainEqual(a, b *Connector) bool {
	for a != nil && b != nil {
		if a == b {
			return true
		}
		if !a.Equal(b) {
			return false
		}
		a, b = a.Next, b.Next
	}
	return a == nil && b == nil
}

// ChainString renders a chain such as "@A- B-".
func ChainString(c *Connector, dir expr.Dir) string {
	var sb strings.Builder
	for ; c != nil; c = c.Next {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		if c.Multi {
			sb.WriteByte('@')
		}
		sb.WriteString(c.Desc.Name)
		sb.WriteByte(byte(dir))
	}
	return sb.String()
}
