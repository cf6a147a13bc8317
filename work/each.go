package work

import (
	"context"
)

import (
	"golang.org/x/sync/errgroup"
)

// Each calls do for every i in [0, n) using at most workers goroutines. A
// call is the unit of cancellation: once ctx is done or a call fails no new
// calls start. Callers write results into slot i of their own output so that
// order does not depend on scheduling.
func Each(ctx context.Context, workers, n int, do func(ctx context.Context, i int) error) error {
	if workers < 1 {
		workers = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return do(gctx, i)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
