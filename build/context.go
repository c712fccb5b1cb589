package build

import (
	"github.com/hupe1980/linkprep/disjunct"
	"github.com/hupe1980/linkprep/internal/pool"
)

// Segment sizes of the slab pools.
const (
	clauseSegment     = 4096
	tconnectorSegment = 32768
	disjunctSegment   = 2048
	connectorSegment  = 8192
)

// Config holds the per-sentence expansion settings.
type Config struct {
	// Generation enables category disjuncts for words whose string starts
	// with a space followed by a hexadecimal category number.
	Generation bool

	// MaxDisjuncts, when positive, randomly thins an expression's disjunct
	// list that is longer than this.
	MaxDisjuncts int

	// Seed is the initial truncation generator state. A zero seed restarts
	// from zero for every expression instead of advancing.
	Seed uint32

	// MaxDepth rejects deeper expressions. Zero disables the check.
	MaxDepth int
}

// Stats counts the work done by a Context.
type Stats struct {
	Expressions   int
	Clauses       int // clauses produced by the clause builder
	Disjuncts     int // disjuncts kept after cutoff and truncation
	CostDropped   int // clauses above the cost cutoff
	Truncated     int // disjuncts removed by truncation
	Connectors    int // connectors allocated
	SharedSuffix  int // chain tails reused instead of allocated
	BytesReserved int64
}

// Context owns the pools and settings used to expand the expressions of one
// sentence. Disjuncts and connectors it returns stay valid until Release.
type Context struct {
	cfg Config

	// Transient pools, reset after every expression.
	clausePool *pool.Slab[Clause]
	tconnPool  *pool.Slab[tconnector]

	// Sentence-lifetime pools.
	disjuncts  *pool.Slab[disjunct.Disjunct]
	connectors *pool.Slab[disjunct.Connector]

	suffixes  suffixTable
	expPos    int
	randState uint32
	stats     Stats
}

// NewContext creates a Context. Pools are allocated on first use.
func NewContext(cfg Config) *Context {
	return &Context{
		cfg:       cfg,
		randState: cfg.Seed,
	}
}

// Config returns the settings the Context was created with.
func (c *Context) Config() Config {
	return c.cfg
}

// Stats returns the accumulated counters.
func (c *Context) Stats() Stats {
	st := c.stats
	st.BytesReserved = c.BytesReserved()
	return st
}

// BytesReserved returns the memory held by the Context's pools.
func (c *Context) BytesReserved() int64 {
	var n int64
	if c.clausePool != nil {
		n += c.clausePool.BytesReserved() + c.tconnPool.BytesReserved()
	}
	if c.disjuncts != nil {
		n += c.disjuncts.BytesReserved() + c.connectors.BytesReserved()
	}
	return n
}

// PoolStats returns usage snapshots of the allocated pools.
func (c *Context) PoolStats() []pool.Stats {
	var out []pool.Stats
	if c.clausePool != nil {
		out = append(out, c.clausePool.Stats(), c.tconnPool.Stats())
	}
	if c.disjuncts != nil {
		out = append(out, c.disjuncts.Stats(), c.connectors.Stats())
	}
	return out
}

// Release drops all pools. Disjuncts returned earlier become invalid.
func (c *Context) Release() {
	c.freeTransient()
	c.freePersistent()
}

func (c *Context) freeTransient() {
	if c.clausePool != nil {
		c.clausePool.Free()
		c.tconnPool.Free()
		c.clausePool, c.tconnPool = nil, nil
	}
	c.suffixes.reset()
}

func (c *Context) freePersistent() {
	if c.disjuncts != nil {
		c.disjuncts.Free()
		c.connectors.Free()
		c.disjuncts, c.connectors = nil, nil
	}
}

func (c *Context) transientPools() {
	if c.clausePool == nil {
		c.clausePool = pool.NewSlab[Clause]("Clause", clauseSegment)
		c.tconnPool = pool.NewSlab[tconnector]("Tconnector", tconnectorSegment)
	}
}

func (c *Context) persistentPools() {
	if c.disjuncts == nil {
		c.disjuncts = pool.NewSlab[disjunct.Disjunct]("Disjunct", disjunctSegment)
		c.connectors = pool.NewSlab[disjunct.Connector]("Connector", connectorSegment)
	}
}

// reuseTransient rewinds the clause pools once an expression is done.
func (c *Context) reuseTransient() {
	c.clausePool.Reset()
	c.tconnPool.Reset()
	c.suffixes.reset()
}
