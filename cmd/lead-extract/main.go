package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/hassankhalil8/FLE-email-extractor-pipeline/internal/config"
	"github.com/hassankhalil8/FLE-email-extractor-pipeline/internal/core"
	"github.com/hassankhalil8/FLE-email-extractor-pipeline/internal/factory"
	"github.com/hassankhalil8/FLE-email-extractor-pipeline/internal/logging"
	"go.uber.org/zap"
)

var (
	// Input flags
	targetURL  = flag.String("url", "", "Website URL to crawl and extract from")
	inputFile  = flag.String("file", "", "Read page text from file instead of crawling (use stdin if \"-\")")
	configFile = flag.String("config", "", "Optional config file applied before flag overrides")

	// Crawler flags
	maxPages     = flag.Int("max-pages", 4, "Maximum pages to crawl")
	maxDepth     = flag.Int("max-depth", 1, "Maximum crawl depth")
	crawlTimeout = flag.String("request-timeout", "15s", "Per-request timeout for page fetches")

	// DNS flags
	dnsTimeout = flag.String("dns-timeout", "3s", "Per-lookup DNS timeout")
	dnsWorkers = flag.Int("dns-workers", 20, "Concurrent DNS lookups")

	// Output flags
	minScore = flag.Int("min-score", 20, "Minimum score to keep a candidate")
	verbose  = flag.Bool("verbose", false, "Enable verbose logging")
	jsonLog  = flag.Bool("json-log", false, "Output logs in JSON format")
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

	cfg, err := createConfigFromFlags()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Obtain the page text: crawl a site or read it from a file
	var pageText string
	switch {
	case *inputFile != "":
		pageText, err = readInput(*inputFile)
		if err != nil {
			logger.Fatal("Failed to read input", zap.Error(err))
		}
	case *targetURL != "":
		crawlerFactory := factory.NewCrawlerFactory(cfg, logger)
		crawler, err := crawlerFactory.CreateSiteCrawler()
		if err != nil {
			logger.Fatal("Failed to create crawler", zap.Error(err))
		}
		logger.Info("Crawling site", zap.String("url", *targetURL))
		pageText, err = crawler.Crawl(context.Background(), *targetURL)
		if err != nil {
			logger.Fatal("Crawl failed", zap.Error(err), zap.String("url", *targetURL))
		}
	default:
		logger.Fatal("Specify either -url or -file")
	}

	// Build and run the extraction pipeline
	extractorFactory := factory.NewExtractorFactory(cfg, logger)
	extractor, err := extractorFactory.CreateExtractorService()
	if err != nil {
		logger.Fatal("Failed to create extractor", zap.Error(err))
	}

	startTime := time.Now()
	results, err := extractor.Extract(context.Background(), pageText)
	if err != nil {
		logger.Fatal("Extraction failed", zap.Error(err))
	}
	duration := time.Since(startTime)

	// Print results
	fmt.Printf("\n=== Results ===\n")
	fmt.Printf("Input size: %d bytes\n", len(pageText))
	fmt.Printf("Candidates kept: %d\n", len(results))
	fmt.Printf("Processing time: %v\n\n", duration)

	for _, result := range results {
		line := fmt.Sprintf("%3d  %-8s %s  (mx=%t count=%d prio=%d a=%t)",
			result.Score, result.Confidence, result.Normalized,
			result.Deliverability.HasMX, result.Deliverability.MXCount,
			result.Deliverability.MXPriority, result.Deliverability.HasARecord)

		switch result.Confidence {
		case core.ConfidenceHigh:
			color.Green(line)
		case core.ConfidenceMedium:
			color.Yellow(line)
		default:
			color.Red(line)
		}
	}
}

func readInput(path string) (string, error) {
	var reader io.Reader
	if path == "-" {
		reader = os.Stdin
	} else {
		file, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer file.Close()
		reader = file
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// flagKeys maps flag names to the configuration keys they override.
var flagKeys = map[string]string{
	"max-pages":       "crawler.max_pages",
	"max-depth":       "crawler.max_depth",
	"request-timeout": "crawler.request_timeout",
	"dns-timeout":     "dns.lookup_timeout",
	"dns-workers":     "dns.max_workers",
	"min-score":       "extractor.min_score",
}

// createConfigFromFlags creates a configuration from the optional config
// file plus command line flags. Only flags the user actually passed win
// over file values; everything else falls back to the defaults.
func createConfigFromFlags() (*config.Config, error) {
	v := config.NewEmptyViper()

	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", *configFile, err)
		}
	}

	flag.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			v.Set(key, f.Value.String())
		}
	})

	return config.NewFromViper(v), nil
}
