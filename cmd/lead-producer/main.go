package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/hassankhalil8/FLE-email-extractor-pipeline/internal/config"
	"github.com/hassankhalil8/FLE-email-extractor-pipeline/internal/factory"
	"github.com/hassankhalil8/FLE-email-extractor-pipeline/internal/ingest"
	"github.com/hassankhalil8/FLE-email-extractor-pipeline/internal/logging"
	"go.uber.org/zap"
)

var (
	inputFile = flag.String("file", "", "CSV file of organization leads (website/url column)")
	redisAddr = flag.String("redis-addr", "localhost:6379", "Redis address for the task queue")
	redisDB   = flag.Int("redis-db", 0, "Redis database number")
	queueKey  = flag.String("queue", "harvest:jobs", "Redis key of the job queue")
	verbose   = flag.Bool("verbose", false, "Enable verbose logging")
	jsonLog   = flag.Bool("json-log", false, "Output logs in JSON format")
)

func main() {
	flag.Parse()

	// Initialize logger
	logger, err := logging.InitConsoleLogger(*verbose, *jsonLog)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *inputFile == "" {
		logger.Fatal("No input file specified, use -file")
	}

	file, err := os.Open(*inputFile)
	if err != nil {
		logger.Fatal("Failed to open input file", zap.Error(err), zap.String("file", *inputFile))
	}
	defer file.Close()

	urls, err := ingest.ReadLeads(file)
	if err != nil {
		logger.Fatal("Failed to read lead file", zap.Error(err))
	}
	if len(urls) == 0 {
		color.Yellow("No leads found in %s", *inputFile)
		return
	}

	// Build the queue from flags
	cfg := createConfigFromFlags()
	queueFactory := factory.NewQueueFactory(cfg, logger)
	queue, err := queueFactory.CreateTaskQueue()
	if err != nil {
		logger.Fatal("Failed to create task queue", zap.Error(err))
	}

	color.Cyan("Queueing %d leads from %s...", len(urls), *inputFile)

	ctx := context.Background()
	queued := 0
	for _, url := range urls {
		if err := queue.Enqueue(ctx, url); err != nil {
			color.Red("  ✗ %s: %v", url, err)
			continue
		}
		queued++
		if *verbose {
			fmt.Printf("  queued %s\n", url)
		}
	}

	if queued == len(urls) {
		color.Green("✓ All %d leads queued", queued)
	} else {
		color.Yellow("Queued %d of %d leads", queued, len(urls))
	}
}

// createConfigFromFlags creates a configuration from command line flags
func createConfigFromFlags() *config.Config {
	v := config.NewEmptyViper()
	v.Set("queue.redis_addr", strings.TrimSpace(*redisAddr))
	v.Set("queue.redis_db", *redisDB)
	v.Set("queue.key", *queueKey)
	return config.NewFromViper(v)
}
