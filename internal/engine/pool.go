package engine

import (
	"context"
	"runtime"

	"github.com/sourcegraph/conc/pool"

	"quotefetcher/internal/quote"
)

// Pool fans requests out over a fixed worker pool sized to twice the
// available CPU cores. Workers pull from a shared queue, so slow pages
// don't strand the rest of a chunk the way static partitioning can.
type Pool struct {
	fetcher PageFetcher
	workers int
}

// NewPool creates a pool engine with 2x CPU core count workers
func NewPool(fetcher PageFetcher) *Pool {
	return &Pool{
		fetcher: fetcher,
		workers: 2 * runtime.NumCPU(),
	}
}

// FetchAll implements Engine
func (e *Pool) FetchAll(ctx context.Context, reqs []quote.Request) []quote.Result {
	results := make([]quote.Result, len(reqs))

	p := pool.New().WithMaxGoroutines(e.workers)
	for i, req := range reqs {
		p.Go(func() {
			results[i] = fetchOne(ctx, e.fetcher, req)
		})
	}
	p.Wait()

	return results
}
