package license

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// PackageAnalyzer analyzes a single package. [Analyzer] implements it.
type PackageAnalyzer interface {
	Analyze(ctx context.Context, ref PackageRef) (Outcome, error)
}

// Batch analyzes many packages with a bounded number of concurrent workers.
type Batch struct {
	analyzer PackageAnalyzer
	workers  int
}

// NewBatch creates a Batch running at most workers analyses at once.
// workers <= 1 processes packages strictly one after another.
func NewBatch(analyzer PackageAnalyzer, workers int) *Batch {
	return &Batch{analyzer: analyzer, workers: max(workers, 1)}
}

// Run analyzes refs and returns their outcomes in input order.
//
// onDone, if non-nil, is called once per finished package; calls are
// serialized but arrive in completion order. The first fatal error cancels
// the remaining work and is returned; outcomes are then nil.
func (b *Batch) Run(ctx context.Context, refs []PackageRef, onDone func(Outcome)) ([]Outcome, error) {
	outcomes := make([]Outcome, len(refs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)

	var mu sync.Mutex
	for i, ref := range refs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := b.analyzer.Analyze(gctx, ref)
			if err != nil {
				return err
			}
			outcomes[i] = out
			if onDone != nil {
				mu.Lock()
				onDone(out)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return outcomes, nil
}
