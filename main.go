package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"

	"quotefetcher/internal/config"
	"quotefetcher/internal/engine"
	"quotefetcher/internal/pipeline"
	"quotefetcher/internal/sink"
	"quotefetcher/internal/yahoo"
)

func main() {
	// Load configuration
	flags := config.Flags()
	if err := flags.Parse(os.Args[1:]); err != nil {
		log.Fatalf("Failed to parse flags: %v", err)
	}

	cfg, err := config.Load(flags)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// Create context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	// Wire the pipeline: screener client behind the configured engine,
	// CSV sink on the OS filesystem
	client := yahoo.NewClient(cfg.BaseURL)

	eng, err := engine.New(cfg.Engine, client, cfg.RequestTimeout)
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	p := pipeline.New(client, eng, sink.NewCSVSink(afero.NewOsFs()), cfg.PageSize, cfg.OutputDir, logger)

	// Add timeout to prevent hanging indefinitely
	runCtx, runCancel := context.WithTimeout(ctx, cfg.RunTimeout)
	defer runCancel()

	path, err := p.Run(runCtx)
	if err != nil {
		log.Fatalf("Run failed: %v", err)
	}

	fmt.Printf("Wrote %s\n", path)
}
