package build

import (
	"strconv"
	"strings"

	"github.com/hupe1980/linkprep/disjunct"
	"github.com/hupe1980/linkprep/expr"
	"github.com/hupe1980/linkprep/internal/rng"
)

// maxCategory bounds generation-mode category numbers.
const maxCategory = 1 << 16

// Disjuncts expands e into the disjuncts of the word str. Clauses
// costing more than cutoff are dropped. The list is then truncated when it is
// longer than the configured maximum.
//
// In a chain the first connector is the farthest-reaching one and is marked
// shallow; the last connector links nearest to the word. Reachability is left
// to the caller, so NearestWord is not set here.
func (c *Context) Disjuncts(e expr.Node, str string, words *disjunct.WordSet, cutoff float64) (*disjunct.Disjunct, error) {
	cl, err := c.Clauses(e)
	if err != nil {
		return nil, err
	}
	c.persistentPools()
	c.stats.Expressions++

	category := uint32(0)
	if c.cfg.Generation {
		category = categoryNumber(str)
	}

	var list *disjunct.Disjunct
	for ; cl != nil; cl = cl.next {
		c.stats.Clauses++
		if cl.cost > cutoff {
			c.stats.CostDropped++
			continue
		}

		d := c.disjuncts.Alloc()
		d.Words = words
		if category != 0 {
			d.AddCategory(category, cl.cost)
		} else {
			d.Cost = cl.cost
			d.Word = str
		}
		d.Left, d.Right = c.chains(cl)

		d.Next = list
		list = d
		c.stats.Disjuncts++
	}
	c.reuseTransient()

	if c.cfg.MaxDisjuncts > 0 {
		r := rng.New(c.randState)
		var removed int
		list, removed = Truncate(list, c.cfg.MaxDisjuncts, r)
		if c.randState != 0 {
			c.randState = r.State()
		}
		c.stats.Truncated += removed
		c.stats.Disjuncts -= removed
	}
	return list, nil
}

// chains builds the left and right connector chains of one clause.
func (c *Context) chains(cl *Clause) (left, right *disjunct.Connector) {
	var started, done [2]bool
	tails := [2]**disjunct.Connector{&left, &right}

	for t := cl.conns; t != nil; t = t.next {
		side := 0
		if t.leaf.Dir == expr.Right {
			side = 1
		}
		if done[side] {
			continue
		}
		shallow := !started[side]
		started[side] = true

		if shared, ok := c.suffixes.lookup(t, shallow); ok {
			*tails[side] = shared
			done[side] = true
			c.stats.SharedSuffix++
			continue
		}

		n := c.connectors.Alloc()
		n.Desc = t.leaf.Desc
		n.Multi = t.leaf.Multi
		n.Shallow = shallow
		n.FarthestWord = t.leaf.FarthestWord
		n.ExpPos = t.pos
		c.suffixes.commit(t, n)
		c.stats.Connectors++

		*tails[side] = n
		tails[side] = &n.Next
	}

	return left, right
}

// categoryNumber parses the hexadecimal category of a word string that
// starts with a space. It returns 0 for ordinary words.
func categoryNumber(str string) uint32 {
	if !strings.HasPrefix(str, " ") {
		return 0
	}
	digits := strings.TrimLeft(str, " ")
	end := 0
	for end < len(digits) && isHex(digits[end]) {
		end++
	}
	n, err := strconv.ParseUint(digits[:end], 16, 32)
	if err != nil || n == 0 || n >= maxCategory {
		panic("build: insane category " + strconv.Quote(str))
	}
	return uint32(n)
}

func isHex(b byte) bool {
	return '0' <= b && b <= '9' || 'a' <= b && b <= 'f' || 'A' <= b && b <= 'F'
}
