package engine

import (
	"context"
	"time"

	"github.com/sourcegraph/conc"

	"quotefetcher/internal/quote"
)

// defaultTaskTimeout bounds each page fetch when no timeout is configured
const defaultTaskTimeout = 10 * time.Second

// Task launches one goroutine per request with no worker cap:
// concurrency is bounded only by the remote server and the per-request
// timeout. This is the only strategy that times out individual pages;
// a hung request under the pooled strategies stalls until the caller's
// context expires.
type Task struct {
	fetcher PageFetcher
	timeout time.Duration
}

// NewTask creates a task engine with the given per-request timeout
func NewTask(fetcher PageFetcher, timeout time.Duration) *Task {
	if timeout <= 0 {
		timeout = defaultTaskTimeout
	}
	return &Task{
		fetcher: fetcher,
		timeout: timeout,
	}
}

// FetchAll implements Engine
func (e *Task) FetchAll(ctx context.Context, reqs []quote.Request) []quote.Result {
	results := make([]quote.Result, len(reqs))

	var wg conc.WaitGroup
	for i, req := range reqs {
		wg.Go(func() {
			reqCtx, cancel := context.WithTimeout(ctx, e.timeout)
			defer cancel()

			results[i] = fetchOne(reqCtx, e.fetcher, req)
		})
	}
	wg.Wait()

	return results
}
