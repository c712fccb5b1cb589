package linkprep

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// PrepareBatch prepares independent sentences in parallel, at most
// WithMaxParallel at a time. Results are in input order. If any sentence
// fails, the others are released and the first error is returned.
func (p *Preparer) PrepareBatch(ctx context.Context, sentences []*Sentence) ([]*Prepared, error) {
	start := time.Now()
	results := make([]*Prepared, len(sentences))

	g, gctx := errgroup.WithContext(ctx)
	for i, s := range sentences {
		if err := p.rc.AcquireWorker(gctx); err != nil {
			break // cancelled, reported below
		}
		g.Go(func() error {
			defer p.rc.ReleaseWorker()

			res, err := p.Prepare(gctx, s)
			if err != nil {
				return fmt.Errorf("sentence %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	failed := 0
	if err != nil {
		for i, res := range results {
			if res == nil {
				failed++
				continue
			}
			res.Release()
			results[i] = nil
		}
	}

	duration := time.Since(start)
	p.metrics.RecordBatch(len(sentences), failed, duration)
	p.logger.LogBatch(ctx, len(sentences), failed)

	if err != nil {
		return nil, err
	}
	return results, nil
}
