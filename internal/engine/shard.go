package engine

import (
	"context"
	"runtime"
	"sync"

	"quotefetcher/internal/quote"
)

// Shard fans requests out over a fixed set of workers sized to the
// available CPU cores. The request slice is split into contiguous
// chunks up front and each worker owns exactly one chunk: no shared
// queue, no locking — a worker writes only its own result indices.
type Shard struct {
	fetcher PageFetcher
	workers int
}

// NewShard creates a shard engine with one worker per CPU core
func NewShard(fetcher PageFetcher) *Shard {
	return &Shard{
		fetcher: fetcher,
		workers: runtime.NumCPU(),
	}
}

// FetchAll implements Engine
func (e *Shard) FetchAll(ctx context.Context, reqs []quote.Request) []quote.Result {
	results := make([]quote.Result, len(reqs))
	if len(reqs) == 0 {
		return results
	}

	workers := e.workers
	if workers > len(reqs) {
		workers = len(reqs)
	}

	// Contiguous chunks; the remainder spreads over the first workers
	chunk := len(reqs) / workers
	rem := len(reqs) % workers

	var wg sync.WaitGroup
	start := 0
	for w := 0; w < workers; w++ {
		end := start + chunk
		if w < rem {
			end++
		}

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				results[i] = fetchOne(ctx, e.fetcher, reqs[i])
			}
		}(start, end)

		start = end
	}

	wg.Wait()
	return results
}
