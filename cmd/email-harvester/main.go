package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hassankhalil8/FLE-email-extractor-pipeline/internal/di"
	"github.com/hassankhalil8/FLE-email-extractor-pipeline/internal/ports"
	"github.com/hassankhalil8/FLE-email-extractor-pipeline/internal/worker"
	"go.uber.org/zap"
)

func main() {
	// Build the dependency injection container
	container, err := di.BuildContainer()
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	// Run the application
	if err := container.Invoke(run); err != nil {
		fmt.Printf("Application error: %v\n", err)
		os.Exit(1)
	}
}

// run is the main application function that gets all dependencies injected
func run(
	logger *zap.Logger,
	harvester *worker.Harvester,
	store ports.LeadRepository,
) error {
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start consuming harvest jobs
	errCh := make(chan error, 1)
	go func() {
		errCh <- harvester.Run(ctx)
	}()
	logger.Info("Harvest worker started")

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("Shutting down...", zap.String("signal", sig.String()))
		cancel()
		<-errCh
	case err := <-errCh:
		if err != nil && ctx.Err() == nil {
			logger.Error("Worker stopped unexpectedly", zap.Error(err))
		}
	}

	// Close any resources that need closing
	if err := store.Close(); err != nil {
		logger.Error("Failed to close lead store", zap.Error(err))
	}

	logger.Info("Shutdown complete")
	return nil
}
