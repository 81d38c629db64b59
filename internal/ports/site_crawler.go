package ports

import "context"

// SiteCrawler defines the interface for fetching an organization's most
// relevant pages as one combined text payload
type SiteCrawler interface {
	// Crawl fetches the site starting at url and returns the combined
	// visible text of the pages it chose to visit
	Crawl(ctx context.Context, url string) (string, error)
}
