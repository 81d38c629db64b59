package core

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DeliverabilityChecker resolves mail-related DNS records for validated
// candidates through a bounded worker pool, with a shared per-domain
// cache so repeated candidates from the same organization cost one
// lookup per checker lifetime.
type DeliverabilityChecker struct {
	resolver      DomainResolver
	cache         DeliverabilityCache
	logger        *zap.Logger
	maxWorkers    int
	lookupTimeout time.Duration
}

// NewDeliverabilityChecker creates a new deliverability checker
func NewDeliverabilityChecker(
	resolver DomainResolver,
	cache DeliverabilityCache,
	logger *zap.Logger,
	maxWorkers int,
	lookupTimeout time.Duration,
) *DeliverabilityChecker {
	if maxWorkers <= 0 {
		maxWorkers = 1
	}
	return &DeliverabilityChecker{
		resolver:      resolver,
		cache:         cache,
		logger:        logger,
		maxWorkers:    maxWorkers,
		lookupTimeout: lookupTimeout,
	}
}

// CheckBatch resolves deliverability for every record and keeps those
// whose domain shows at least one mail signal. Distinct domains are
// resolved concurrently and joined as they complete; a slow or failing
// domain never blocks or aborts the rest. Input order is preserved in
// the returned slice.
func (c *DeliverabilityChecker) CheckBatch(ctx context.Context, emails []ValidatedEmail) []DeliverableEmail {
	if len(emails) == 0 {
		return nil
	}

	domains := make([]string, 0, len(emails))
	seen := make(map[string]struct{}, len(emails))
	for _, email := range emails {
		key := strings.ToLower(email.Domain)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		domains = append(domains, key)
	}

	type resolution struct {
		domain string
		info   DeliverabilityInfo
	}

	jobs := make(chan string, len(domains))
	results := make(chan resolution, len(domains))

	workers := c.maxWorkers
	if workers > len(domains) {
		workers = len(domains)
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for domain := range jobs {
				results <- resolution{domain: domain, info: c.checkDomain(ctx, domain)}
			}
		}()
	}

	for _, domain := range domains {
		jobs <- domain
	}
	close(jobs)
	wg.Wait()
	close(results)

	infoByDomain := make(map[string]DeliverabilityInfo, len(domains))
	for result := range results {
		infoByDomain[result.domain] = result.info
	}

	kept := make([]DeliverableEmail, 0, len(emails))
	for _, email := range emails {
		info := infoByDomain[strings.ToLower(email.Domain)]
		if info.Deliverable() {
			kept = append(kept, DeliverableEmail{ValidatedEmail: email, Deliverability: info})
		}
	}
	return kept
}

// checkDomain consults the cache before resolving and records the
// outcome afterwards, failures included.
func (c *DeliverabilityChecker) checkDomain(ctx context.Context, domain string) DeliverabilityInfo {
	if info, ok := c.cache.Get(domain); ok {
		return info
	}

	info := c.resolveDomain(ctx, domain)
	c.cache.Set(domain, info)
	return info
}

func (c *DeliverabilityChecker) resolveDomain(ctx context.Context, domain string) DeliverabilityInfo {
	info := DeliverabilityInfo{MXPriority: UnknownMXPriority}

	mxCtx, cancel := context.WithTimeout(ctx, c.lookupTimeout)
	records, err := c.resolver.LookupMX(mxCtx, domain)
	cancel()

	switch {
	case err == nil && len(records) > 0:
		info.HasMX = true
		info.MXCount = len(records)
		info.MXPriority = int(records[0].Pref)
		for _, record := range records[1:] {
			if int(record.Pref) < info.MXPriority {
				info.MXPriority = int(record.Pref)
			}
		}

	case errors.Is(err, ErrNoSuchDomain) || (err == nil && len(records) == 0):
		// No MX records; some servers accept mail on a bare A record.
		aCtx, aCancel := context.WithTimeout(ctx, c.lookupTimeout)
		addrs, aErr := c.resolver.LookupA(aCtx, domain)
		aCancel()
		if aErr == nil && len(addrs) > 0 {
			info.HasARecord = true
		}

	default:
		// Timeout or transient resolver trouble is not evidence that the
		// domain cannot receive mail; keep the candidate and let scoring
		// weigh it. The MX priority stays at its sentinel.
		c.logger.Debug("DNS lookup failed, assuming deliverable",
			zap.String("domain", domain),
			zap.Error(err))
		info.HasMX = true
	}

	return info
}
