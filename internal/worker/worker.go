package worker

import (
	"context"
	"fmt"

	"github.com/hassankhalil8/FLE-email-extractor-pipeline/internal/core"
	"github.com/hassankhalil8/FLE-email-extractor-pipeline/internal/ports"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Harvester consumes crawl jobs from the task queue and persists the
// extracted leads. One ProcessURL call is one retryable unit of work:
// data-quality rejections inside the pipeline are not errors, while
// crawl and storage failures propagate so the queue can retry.
type Harvester struct {
	crawler     ports.SiteCrawler
	extractor   *core.ExtractorService
	store       ports.LeadRepository
	queue       ports.TaskQueue
	logger      *zap.Logger
	keepTiers   map[core.Confidence]struct{}
	concurrency int
}

// NewHarvester creates a new harvest worker
func NewHarvester(
	crawler ports.SiteCrawler,
	extractor *core.ExtractorService,
	store ports.LeadRepository,
	queue ports.TaskQueue,
	logger *zap.Logger,
	keepConfidence []string,
	concurrency int,
) *Harvester {
	if concurrency <= 0 {
		concurrency = 1
	}

	keepTiers := make(map[core.Confidence]struct{}, len(keepConfidence))
	for _, tier := range keepConfidence {
		keepTiers[core.Confidence(tier)] = struct{}{}
	}

	return &Harvester{
		crawler:     crawler,
		extractor:   extractor,
		store:       store,
		queue:       queue,
		logger:      logger,
		keepTiers:   keepTiers,
		concurrency: concurrency,
	}
}

// Run starts the configured number of queue consumers and blocks until
// the context is cancelled.
func (h *Harvester) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < h.concurrency; i++ {
		g.Go(func() error {
			return h.queue.Consume(gctx, h.ProcessURL)
		})
	}
	return g.Wait()
}

// ProcessURL crawls one organization website, extracts and scores email
// candidates, and persists those in the configured confidence tiers.
func (h *Harvester) ProcessURL(ctx context.Context, url string) error {
	pageText, err := h.crawler.Crawl(ctx, url)
	if err != nil {
		return fmt.Errorf("crawl %s: %w", url, err)
	}

	results, err := h.extractor.Extract(ctx, pageText)
	if err != nil {
		return fmt.Errorf("extract %s: %w", url, err)
	}

	keep := make([]core.ScoredEmail, 0, len(results))
	for _, result := range results {
		if _, ok := h.keepTiers[result.Confidence]; ok {
			keep = append(keep, result)
		}
	}

	orgID, err := h.store.UpsertOrganization(ctx, url)
	if err != nil {
		return fmt.Errorf("upsert organization %s: %w", url, err)
	}
	if err := h.store.SaveEmails(ctx, orgID, url, keep); err != nil {
		return fmt.Errorf("save emails for %s: %w", url, err)
	}

	h.logger.Info("Processed organization",
		zap.String("url", url),
		zap.Int("extracted", len(results)),
		zap.Int("persisted", len(keep)))
	return nil
}
