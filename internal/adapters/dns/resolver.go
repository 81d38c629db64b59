package dns

import (
	"context"
	"errors"
	"net"

	"github.com/hassankhalil8/FLE-email-extractor-pipeline/internal/core"
	"go.uber.org/zap"
)

// Resolver is a net.Resolver backed implementation of the
// core.DomainResolver interface. "No such host" answers are mapped to
// core.ErrNoSuchDomain so the checker can tell them apart from
// transient resolver failures.
type Resolver struct {
	resolver *net.Resolver
	logger   *zap.Logger
}

// NewResolver creates a new DNS resolver adapter
func NewResolver(logger *zap.Logger) *Resolver {
	return &Resolver{
		resolver: &net.Resolver{},
		logger:   logger,
	}
}

// LookupMX returns the mail-exchanger records for a domain
func (r *Resolver) LookupMX(ctx context.Context, domain string) ([]core.MXRecord, error) {
	records, err := r.resolver.LookupMX(ctx, domain)
	if err != nil {
		return nil, classify(err)
	}

	out := make([]core.MXRecord, 0, len(records))
	for _, record := range records {
		out = append(out, core.MXRecord{Host: record.Host, Pref: record.Pref})
	}
	return out, nil
}

// LookupA returns the addresses a domain resolves to
func (r *Resolver) LookupA(ctx context.Context, domain string) ([]string, error) {
	addrs, err := r.resolver.LookupHost(ctx, domain)
	if err != nil {
		return nil, classify(err)
	}
	return addrs, nil
}

func classify(err error) error {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
		return core.ErrNoSuchDomain
	}
	return err
}
