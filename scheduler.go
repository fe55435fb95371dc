package url2pdf

import (
	"context"
	"path/filepath"
	"sync"
)

// ConvertAll runs retry-wrapped conversions for every target with at
// most pool.Size() in flight at once. Each worker owns one Service for
// the duration of the run and drives whole retry loops to completion,
// so retries for one target never block another worker.
//
// Cancellation stops dispatching: targets not yet started are finalized
// with the context error, in-flight attempts abort at their timeout
// boundary. Every target yields exactly one Result and the Summary
// preserves input order regardless of completion order.
func ConvertAll(ctx context.Context, pool *ServicePool, targets []Target, outDir string) Summary {
	if len(targets) == 0 {
		return Summary{}
	}

	concurrency := pool.Size()
	if concurrency > len(targets) {
		concurrency = len(targets)
	}

	agg := NewAggregator(len(targets))
	jobs := make(chan int, len(targets))

	var wg sync.WaitGroup
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			svc := pool.Acquire()
			defer pool.Release(svc)

			for slot := range jobs {
				target := targets[slot]
				if err := ctx.Err(); err != nil {
					agg.Record(slot, Result{Target: target, Err: err})
					continue
				}

				outPath := filepath.Join(outDir, OutputFileName(target))
				agg.Record(slot, svc.Convert(ctx, target, outPath))
			}
		}()
	}

	for i := range targets {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return agg.Summary()
}
