package factory

import (
	"fmt"

	"github.com/hassankhalil8/FLE-email-extractor-pipeline/internal/adapters/cache"
	"github.com/hassankhalil8/FLE-email-extractor-pipeline/internal/adapters/dns"
	"github.com/hassankhalil8/FLE-email-extractor-pipeline/internal/config"
	"github.com/hassankhalil8/FLE-email-extractor-pipeline/internal/core"
	"go.uber.org/zap"
)

// ExtractorFactory assembles the extraction pipeline from configuration
type ExtractorFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewExtractorFactory creates a new extractor factory
func NewExtractorFactory(cfg *config.Config, logger *zap.Logger) *ExtractorFactory {
	return &ExtractorFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateExtractorService wires resolver, domain cache and deliverability
// checker into a ready-to-use extractor service. The domain cache is
// owned by the returned service's checker and lives as long as it does.
func (f *ExtractorFactory) CreateExtractorService() (*core.ExtractorService, error) {
	dnsCfg, err := f.cfg.GetDNS()
	if err != nil {
		return nil, fmt.Errorf("invalid dns configuration: %w", err)
	}

	resolver := dns.NewResolver(f.logger)
	domainCache := cache.NewMemoryCache(f.logger)
	checker := core.NewDeliverabilityChecker(resolver, domainCache, f.logger, dnsCfg.MaxWorkers, dnsCfg.LookupTimeout)

	return core.NewExtractorService(checker, f.logger, f.cfg.GetExtractor().MinScore), nil
}
