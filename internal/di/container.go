package di

import (
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/hassankhalil8/FLE-email-extractor-pipeline/internal/config"
	"github.com/hassankhalil8/FLE-email-extractor-pipeline/internal/core"
	"github.com/hassankhalil8/FLE-email-extractor-pipeline/internal/factory"
	"github.com/hassankhalil8/FLE-email-extractor-pipeline/internal/logging"
	"github.com/hassankhalil8/FLE-email-extractor-pipeline/internal/ports"
	"github.com/hassankhalil8/FLE-email-extractor-pipeline/internal/worker"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewExtractorFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewCrawlerFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewStoreFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewQueueFactory); err != nil {
		return nil, err
	}

	// Register extractor service
	if err := container.Provide(func(f *factory.ExtractorFactory) (*core.ExtractorService, error) {
		return f.CreateExtractorService()
	}); err != nil {
		return nil, err
	}

	// Register site crawler
	if err := container.Provide(func(f *factory.CrawlerFactory) (ports.SiteCrawler, error) {
		return f.CreateSiteCrawler()
	}); err != nil {
		return nil, err
	}

	// Register lead repository
	if err := container.Provide(func(f *factory.StoreFactory) (ports.LeadRepository, error) {
		return f.CreateLeadRepository()
	}); err != nil {
		return nil, err
	}

	// Register task queue
	if err := container.Provide(func(f *factory.QueueFactory) (ports.TaskQueue, error) {
		return f.CreateTaskQueue()
	}); err != nil {
		return nil, err
	}

	// Register harvest worker
	if err := container.Provide(func(
		crawler ports.SiteCrawler,
		extractor *core.ExtractorService,
		store ports.LeadRepository,
		queue ports.TaskQueue,
		cfg *config.Config,
		logger *zap.Logger,
	) (*worker.Harvester, error) {
		queueCfg, err := cfg.GetQueue()
		if err != nil {
			return nil, err
		}
		extractorCfg := cfg.GetExtractor()
		return worker.NewHarvester(crawler, extractor, store, queue, logger,
			extractorCfg.KeepConfidence, queueCfg.Concurrency), nil
	}); err != nil {
		return nil, err
	}

	return container, nil
}
