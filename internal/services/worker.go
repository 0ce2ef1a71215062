package services

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"
)

// Worker runs a fixed number of indexed tasks. Callers write results by
// index, so input order survives any fan-out.
type Worker interface {
	Run(ctx context.Context, n int, task func(ctx context.Context, i int) error) error
	Concurrency() int
}

type worker struct {
	concurrency int
}

func NewWorker(concurrency int) Worker {
	if concurrency < 1 {
		concurrency = 1
	}
	return &worker{concurrency: concurrency}
}

// Concurrency implements Worker.
func (w *worker) Concurrency() int {
	return w.concurrency
}

// Run implements Worker. With concurrency 1 tasks run one after another and
// the first error stops the loop. Otherwise the first error cancels the
// context of the tasks still running and no new task starts.
func (w *worker) Run(ctx context.Context, n int, task func(ctx context.Context, i int) error) error {
	if w.concurrency == 1 || n <= 1 {
		for i := 0; i < n; i++ {
			if err := task(ctx, i); err != nil {
				return err
			}
		}
		return nil
	}

	log.Printf("👷 Fanning out %d tasks over %d workers", n, w.concurrency)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.concurrency)

	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return task(gctx, i)
		})
	}

	return g.Wait()
}
