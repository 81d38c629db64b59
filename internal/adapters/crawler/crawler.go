package crawler

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Config holds the crawl parameters for one SiteCrawler instance.
type Config struct {
	MaxDepth          int
	MaxPages          int
	MaxConcurrency    int
	RequestTimeout    time.Duration
	RequestsPerSecond float64
	UserAgent         string
	PriorityKeywords  []string
}

// SiteCrawler fetches an organization's landing page plus the most
// promising same-host links (ranked by priority keywords) and returns
// their combined visible text. It implements ports.SiteCrawler.
type SiteCrawler struct {
	client   *http.Client
	limiter  *rate.Limiter
	logger   *zap.Logger
	cfg      Config
	keywords []string
}

// NewSiteCrawler creates a new site crawler
func NewSiteCrawler(cfg Config, logger *zap.Logger) *SiteCrawler {
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 1
	}
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = 1
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	keywords := make([]string, 0, len(cfg.PriorityKeywords))
	for _, keyword := range cfg.PriorityKeywords {
		keywords = append(keywords, strings.ToLower(strings.TrimSpace(keyword)))
	}

	return &SiteCrawler{
		client:   &http.Client{Timeout: cfg.RequestTimeout},
		limiter:  rate.NewLimiter(limit, 1),
		logger:   logger,
		cfg:      cfg,
		keywords: keywords,
	}
}

// Crawl fetches the landing page and, one level deep, the highest-ranked
// internal links up to the page budget. A failed landing page fails the
// crawl; a failed subordinate page is skipped.
func (c *SiteCrawler) Crawl(ctx context.Context, rawURL string) (string, error) {
	base, err := normalizeURL(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid url %q: %w", rawURL, err)
	}

	doc, err := c.fetch(ctx, base.String())
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", base, err)
	}

	texts := []string{pageText(doc)}

	if c.cfg.MaxDepth > 0 && c.cfg.MaxPages > 1 {
		links := c.rankLinks(doc, base)
		if len(links) > c.cfg.MaxPages-1 {
			links = links[:c.cfg.MaxPages-1]
		}

		var mu sync.Mutex
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(c.cfg.MaxConcurrency)
		for _, link := range links {
			link := link
			g.Go(func() error {
				sub, fetchErr := c.fetch(gctx, link)
				if fetchErr != nil {
					c.logger.Debug("Skipping page",
						zap.String("url", link),
						zap.Error(fetchErr))
					return nil
				}
				mu.Lock()
				texts = append(texts, pageText(sub))
				mu.Unlock()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return "", err
		}
	}

	c.logger.Debug("Crawl finished",
		zap.String("url", base.String()),
		zap.Int("pages", len(texts)))

	return strings.Join(texts, "\n"), nil
}

func (c *SiteCrawler) fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return goquery.NewDocumentFromReader(resp.Body)
}

// rankLinks collects same-host links and orders them by how many
// priority keywords appear in the URL or anchor text. The stable sort
// keeps document order between equally ranked links.
func (c *SiteCrawler) rankLinks(doc *goquery.Document, base *url.URL) []string {
	type rankedLink struct {
		url   string
		score int
	}

	var links []rankedLink
	seen := map[string]struct{}{base.String(): {}}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "tel:") {
			return
		}

		resolved, err := base.Parse(href)
		if err != nil {
			return
		}
		resolved.Fragment = ""
		if resolved.Host != base.Host || (resolved.Scheme != "http" && resolved.Scheme != "https") {
			return
		}

		target := resolved.String()
		if _, dup := seen[target]; dup {
			return
		}
		seen[target] = struct{}{}

		haystack := strings.ToLower(target + " " + sel.Text())
		score := 0
		for _, keyword := range c.keywords {
			if keyword != "" && strings.Contains(haystack, keyword) {
				score++
			}
		}
		links = append(links, rankedLink{url: target, score: score})
	})

	sort.SliceStable(links, func(i, j int) bool {
		return links[i].score > links[j].score
	})

	ordered := make([]string, 0, len(links))
	for _, link := range links {
		ordered = append(ordered, link.url)
	}
	return ordered
}

// pageText extracts the visible text of a page plus any mailto targets,
// which only live in href attributes and would otherwise be lost.
func pageText(doc *goquery.Document) string {
	doc.Find("script, style, noscript").Remove()

	var sb strings.Builder
	sb.WriteString(doc.Find("body").Text())

	doc.Find(`a[href^="mailto:"]`).Each(func(_ int, sel *goquery.Selection) {
		if href, ok := sel.Attr("href"); ok {
			sb.WriteString("\n")
			sb.WriteString(href)
		}
	})

	return sb.String()
}

func normalizeURL(rawURL string) (*url.URL, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, fmt.Errorf("empty url")
	}
	if !strings.Contains(rawURL, "://") {
		rawURL = "https://" + rawURL
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("missing host")
	}
	return parsed, nil
}
