package trial

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mincut/bfs"
	"github.com/katalvlaran/mincut/builder"
	"github.com/katalvlaran/mincut/karger"
)

// Run performs the trials described by opts over the graph nb and returns
// the merged Report.
//
// Steps:
//  1. Build the graph once to validate nb and to measure it (vertices,
//     edges, connected components).
//  2. Resolve the trial count (n² by default) and clamp workers to it.
//  3. Start one goroutine per chunk; each rebuilds the graph per trial,
//     contracts it with its own stream and records into a partial Report.
//  4. Merge partial reports in chunk order.
//
// Returns ErrOptionViolation, a wrapped builder error for malformed nb, a
// wrapped karger error, or ctx.Err() on cancellation.
func Run(ctx context.Context, nb [][]int, opts ...Option) (*Report, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	probe, err := builder.Neighbors(nb)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	comps, err := bfs.Components(probe, bfs.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	n := probe.VertexCount()
	total := newReport(n, probe.EdgeCount(), len(comps))

	trials := o.Trials
	if trials == 0 {
		trials = n * n
	}
	if trials < 1 {
		trials = 1
	}
	workers := min(o.Workers, trials)

	var (
		mu        sync.Mutex
		remaining = trials
	)
	progress := func(cut int) {
		mu.Lock()
		defer mu.Unlock()
		remaining--
		o.Progress(remaining, cut)
	}

	parts := make([]*Report, workers)
	eg, ctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		lo, hi := i*trials/workers, (i+1)*trials/workers
		part := newReport(total.Vertices, total.Edges, total.Components)
		parts[i] = part
		rng := karger.DeriveRand(o.Seed, uint64(i))

		eg.Go(func() error {
			for k := lo; k < hi; k++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				g, err := builder.Neighbors(nb)
				if err != nil {
					return fmt.Errorf("Run: trial %d: %w", k, err)
				}
				res, err := karger.MinCut(g, karger.WithRand(rng))
				if err != nil {
					return fmt.Errorf("Run: trial %d: %w", k, err)
				}
				part.record(res)
				progress(res.Cut)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	for _, part := range parts {
		total.Merge(part)
	}

	return total, nil
}
