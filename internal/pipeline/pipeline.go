// Package pipeline wires the count probe, concurrency engine,
// aggregator and sink into one fetch run.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"quotefetcher/internal/aggregate"
	"quotefetcher/internal/engine"
	"quotefetcher/internal/quote"
	"quotefetcher/internal/sink"
)

// CountProbe discovers the total record count from one page-0 request.
// A lookup failure must come back as an error, never as a zero count.
type CountProbe interface {
	Total(ctx context.Context, size int) (int, error)
}

// Pipeline runs one bounded fetch: probe the total, fan the page
// requests out through the engine, flatten, write the CSV.
type Pipeline struct {
	probe     CountProbe
	engine    engine.Engine
	sink      *sink.CSVSink
	pageSize  int
	outputDir string
	logger    *slog.Logger
}

// New creates a Pipeline from its collaborators
func New(probe CountProbe, eng engine.Engine, s *sink.CSVSink, pageSize int, outputDir string, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		probe:     probe,
		engine:    eng,
		sink:      s,
		pageSize:  pageSize,
		outputDir: outputDir,
		logger:    logger,
	}
}

// Run executes one fetch run and returns the path of the written file.
//
// A failed count probe aborts the run: it is not the same thing as a
// total of zero, which legitimately produces a header-only file.
// Individual page failures are logged and reduce output completeness
// but never fail the run; only a sink error is terminal after that.
func (p *Pipeline) Run(ctx context.Context) (string, error) {
	start := time.Now()
	log := p.logger.With("run_id", uuid.NewString())

	total, err := p.probe.Total(ctx, p.pageSize)
	if err != nil {
		return "", fmt.Errorf("count probe failed: %w", err)
	}

	reqs := quote.Requests(total, p.pageSize)
	log.Info("count probe complete", "total", total, "pages", len(reqs), "page_size", p.pageSize)

	results := p.engine.FetchAll(ctx, reqs)

	failed := aggregate.Failed(results)
	for _, f := range failed {
		log.Warn("page fetch failed, dropping page", "offset", f.Offset, "error", f.Err)
	}

	records := aggregate.Flatten(results)
	log.Info("fetch complete",
		"pages", len(reqs),
		"failed_pages", len(failed),
		"records", len(records),
		"duration", time.Since(start))

	path := sink.Filename(p.outputDir, time.Now())
	if err := p.sink.Write(path, records); err != nil {
		return "", fmt.Errorf("failed to write output: %w", err)
	}

	log.Info("run complete", "path", path, "records", len(records))
	return path, nil
}
