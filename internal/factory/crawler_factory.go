package factory

import (
	"fmt"

	"github.com/hassankhalil8/FLE-email-extractor-pipeline/internal/adapters/crawler"
	"github.com/hassankhalil8/FLE-email-extractor-pipeline/internal/config"
	"github.com/hassankhalil8/FLE-email-extractor-pipeline/internal/ports"
	"go.uber.org/zap"
)

// CrawlerFactory creates site crawlers based on configuration
type CrawlerFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewCrawlerFactory creates a new crawler factory
func NewCrawlerFactory(cfg *config.Config, logger *zap.Logger) *CrawlerFactory {
	return &CrawlerFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateSiteCrawler creates a site crawler from the configuration
func (f *CrawlerFactory) CreateSiteCrawler() (ports.SiteCrawler, error) {
	crawlerCfg, err := f.cfg.GetCrawler()
	if err != nil {
		return nil, fmt.Errorf("invalid crawler configuration: %w", err)
	}

	return crawler.NewSiteCrawler(crawler.Config{
		MaxDepth:          crawlerCfg.MaxDepth,
		MaxPages:          crawlerCfg.MaxPages,
		MaxConcurrency:    crawlerCfg.MaxConcurrency,
		RequestTimeout:    crawlerCfg.RequestTimeout,
		RequestsPerSecond: crawlerCfg.RequestsPerSecond,
		UserAgent:         crawlerCfg.UserAgent,
		PriorityKeywords:  crawlerCfg.PriorityKeywords,
	}, f.logger), nil
}
