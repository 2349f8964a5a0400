// Package engine provides interchangeable concurrency strategies for
// fanning page fetches out and collecting their results.
package engine

import (
	"context"
	"fmt"
	"time"

	"quotefetcher/internal/quote"
)

// PageFetcher is the core interface the engines drive. Each call
// retrieves one page of records; a failed page returns an error.
type PageFetcher interface {
	FetchPage(ctx context.Context, req quote.Request) ([]quote.Record, error)
}

// Engine dispatches all page requests at once under one concurrency
// strategy and returns exactly one Result per Request, index-aligned
// with the input. A failed page yields a Result carrying its error;
// FetchAll itself never fails.
type Engine interface {
	FetchAll(ctx context.Context, reqs []quote.Request) []quote.Result
}

// Strategy names accepted by New.
const (
	// StrategyShard statically partitions requests across NumCPU
	// shared-nothing workers, each owning a contiguous chunk.
	StrategyShard = "shard"
	// StrategyPool drains a shared queue with a fixed pool of
	// 2xNumCPU workers.
	StrategyPool = "pool"
	// StrategyTask runs one goroutine per request, bounded only by
	// a fixed per-request timeout.
	StrategyTask = "task"
)

// Strategies lists the known strategy names.
func Strategies() []string {
	return []string{StrategyShard, StrategyPool, StrategyTask}
}

// New returns the engine for the named strategy. The timeout applies
// only to the task strategy; the pooled strategies rely on the
// caller's context alone.
func New(strategy string, fetcher PageFetcher, timeout time.Duration) (Engine, error) {
	switch strategy {
	case StrategyShard:
		return NewShard(fetcher), nil
	case StrategyPool:
		return NewPool(fetcher), nil
	case StrategyTask:
		return NewTask(fetcher, timeout), nil
	default:
		return nil, fmt.Errorf("unknown engine strategy %q", strategy)
	}
}

// fetchOne executes a single page fetch and wraps the outcome,
// converting a fetch error into a failed Result for that page only.
func fetchOne(ctx context.Context, fetcher PageFetcher, req quote.Request) quote.Result {
	records, err := fetcher.FetchPage(ctx, req)
	if err != nil {
		return quote.Result{Offset: req.Offset, Err: err}
	}
	return quote.Result{Offset: req.Offset, Records: records}
}
