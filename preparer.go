package linkprep

import (
	"context"
	"time"

	"github.com/hupe1980/linkprep/build"
	"github.com/hupe1980/linkprep/disjunct"
	"github.com/hupe1980/linkprep/expr"
	"github.com/hupe1980/linkprep/internal/resource"
	"github.com/hupe1980/linkprep/tracon"
)

// Stats describes one prepared sentence.
type Stats struct {
	Words        int
	Disjuncts    int // disjuncts left after all filters
	Clauses      int
	CostDropped  int
	Truncated    int
	Duplicates   int
	Unreachable  int
	Connectors   int // connectors allocated
	SharedSuffix int // chain tails reused during expansion

	TraconsLeft  int
	TraconsRight int

	BytesReserved int64
	Duration      time.Duration
}

// Prepared holds the disjuncts of a sentence. They stay valid until Release.
type Prepared struct {
	// Words holds the disjunct list of every word, in sentence order.
	Words []*disjunct.Disjunct
	Stats Stats

	bctx *build.Context
	acct *resource.Account
}

// Disjuncts returns the disjuncts of word i as a slice.
func (p *Prepared) Disjuncts(i int) []*disjunct.Disjunct {
	return disjunct.Slice(p.Words[i])
}

// Release frees the pools backing the disjuncts and returns their memory to
// the Preparer's budget. Calling Release more than once is a no-op.
func (p *Prepared) Release() {
	if p == nil || p.bctx == nil {
		return
	}
	p.bctx.Release()
	p.acct.Close()
	p.bctx = nil
	p.Words = nil
}

// Preparer expands the word expressions of sentences into disjuncts.
//
// A Preparer is safe for concurrent use; every sentence gets its own pools
// and tracon set.
type Preparer struct {
	opts    options
	rc      *resource.Controller
	metrics MetricsCollector
	logger  *Logger
}

// New creates a Preparer.
func New(optFns ...Option) (*Preparer, error) {
	opts, err := applyOptions(optFns)
	if err != nil {
		return nil, err
	}
	return &Preparer{
		opts: opts,
		rc: resource.NewController(resource.Config{
			MemoryLimitBytes: opts.memoryLimit,
			MaxWorkers:       int64(opts.maxParallel),
		}),
		metrics: opts.metricsCollector,
		logger:  opts.logger,
	}, nil
}

// MemoryUsage returns the pool memory held by unreleased prepared sentences.
func (p *Preparer) MemoryUsage() int64 {
	return p.rc.MemoryUsage()
}

// Prepare builds the disjuncts of every word, removes duplicates and
// disjuncts that cannot be linked within the sentence, and assigns tracon ids
// to all connectors.
func (p *Preparer) Prepare(ctx context.Context, s *Sentence) (*Prepared, error) {
	start := time.Now()
	logger := p.logger.WithSentence(s.Len())

	res, err := p.prepare(ctx, s, logger)
	if err != nil {
		st := Stats{Words: s.Len(), Duration: time.Since(start)}
		p.metrics.RecordPrepare(st, err)
		logger.LogPrepare(ctx, st, err)
		return nil, err
	}

	res.Stats.Duration = time.Since(start)
	p.metrics.RecordPrepare(res.Stats, nil)
	logger.LogPrepare(ctx, res.Stats, nil)
	return res, nil
}

func (p *Preparer) prepare(ctx context.Context, s *Sentence, logger *Logger) (*Prepared, error) {
	if s.Len() == 0 {
		return nil, ErrEmptySentence
	}

	res := &Prepared{
		Words: make([]*disjunct.Disjunct, s.Len()),
		bctx: build.NewContext(build.Config{
			Generation:   p.opts.generation,
			MaxDisjuncts: p.opts.maxDisjuncts,
			Seed:         p.opts.randSeed,
			MaxDepth:     p.opts.maxDepth,
		}),
		acct: p.rc.NewAccount(),
	}

	for w := range s.Words {
		if err := ctx.Err(); err != nil {
			res.Release()
			return nil, err
		}
		if err := p.buildWord(ctx, res, s, w, logger); err != nil {
			res.Release()
			return nil, err
		}
		// Pools only grow, so checking after each word bounds the overshoot
		// to one word's expansion.
		if err := res.acct.Resize(res.bctx.BytesReserved()); err != nil {
			res.Release()
			return nil, err
		}
	}

	p.finish(res)
	return res, nil
}

func (p *Preparer) buildWord(ctx context.Context, res *Prepared, s *Sentence, w int, logger *Logger) error {
	var list *disjunct.Disjunct
	for _, x := range s.Words[w].Expressions {
		words := x.Words
		if words == nil {
			words = disjunct.NewWordSet(uint32(w))
		}

		before := res.bctx.Stats().Truncated
		d, err := res.bctx.Disjuncts(x.Expr, x.String, words, p.opts.costCutoff)
		if err != nil {
			return &ErrWordExpression{Word: w, String: x.String, cause: err}
		}
		if removed := res.bctx.Stats().Truncated - before; removed > 0 {
			logger.WithWord(w, x.String).LogTruncation(ctx, w, removed, p.opts.maxDisjuncts)
		}
		list = disjunct.Catenate(d, list)
	}
	res.Words[w] = list
	return nil
}

// finish removes duplicates and unreachable disjuncts, then encodes tracons.
func (p *Preparer) finish(res *Prepared) {
	n := len(res.Words)
	st := &res.Stats
	st.Words = n

	for w := range res.Words {
		var removed int
		res.Words[w], removed = disjunct.EliminateDuplicates(res.Words[w])
		st.Duplicates += removed

		res.Words[w], removed = disjunct.Filter(res.Words[w], func(d *disjunct.Disjunct) bool {
			return reachable(d, w, n)
		})
		st.Unreachable += removed
		st.Disjuncts += disjunct.Count(res.Words[w])
	}

	enc := tracon.EncodeSentence(tracon.New(), res.Words)
	st.TraconsLeft, st.TraconsRight = enc.Left, enc.Right

	bst := res.bctx.Stats()
	st.Clauses = bst.Clauses
	st.CostDropped = bst.CostDropped
	st.Truncated = bst.Truncated
	st.Connectors = bst.Connectors
	st.SharedSuffix = bst.SharedSuffix
	st.BytesReserved = bst.BytesReserved
}

// reachable sets the NearestWord fields of d's chains and reports whether
// both fit within a sentence of n words. The chain heads are marked shallow.
func reachable(d *disjunct.Disjunct, w, n int) bool {
	if disjunct.SetReach(d.Left, w, expr.Left) < 0 {
		return false
	}
	if disjunct.SetReach(d.Right, w, expr.Right) >= n {
		return false
	}
	if d.Left != nil {
		d.Left.Shallow = true
	}
	if d.Right != nil {
		d.Right.Shallow = true
	}
	return true
}
