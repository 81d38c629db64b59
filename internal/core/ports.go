package core

import (
	"context"
	"errors"
)

// ErrNoSuchDomain is returned by DomainResolver implementations when the
// queried domain does not exist or has no records of the requested type.
// Callers use it to tell "no mail service configured" apart from
// transient resolver trouble.
var ErrNoSuchDomain = errors.New("no such domain")

// DomainResolver defines the interface for the DNS lookups the
// deliverability checker needs
type DomainResolver interface {
	// LookupMX returns the mail-exchanger records for a domain
	LookupMX(ctx context.Context, domain string) ([]MXRecord, error)

	// LookupA returns the addresses a domain resolves to
	LookupA(ctx context.Context, domain string) ([]string, error)
}

// DeliverabilityCache defines the interface for caching per-domain
// resolution outcomes. Implementations must be safe for concurrent use;
// entries live for the lifetime of the owning checker and are never
// invalidated.
type DeliverabilityCache interface {
	// Get retrieves the cached outcome for a lower-cased domain
	Get(domain string) (DeliverabilityInfo, bool)

	// Set stores the outcome for a lower-cased domain
	Set(domain string, info DeliverabilityInfo)
}
