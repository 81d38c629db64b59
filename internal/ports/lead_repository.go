package ports

import (
	"context"

	"github.com/hassankhalil8/FLE-email-extractor-pipeline/internal/core"
)

// LeadRepository defines the interface for persisting organizations and
// their extracted emails. Implementations must be idempotent under
// re-delivery: saving the same organization or email twice is a no-op.
type LeadRepository interface {
	// UpsertOrganization stores the organization if new and returns its id
	UpsertOrganization(ctx context.Context, websiteURL string) (int64, error)

	// SaveEmails stores the extracted emails for an organization,
	// ignoring duplicates
	SaveEmails(ctx context.Context, orgID int64, sourcePage string, emails []core.ScoredEmail) error

	// Close releases the underlying storage resources
	Close() error
}
