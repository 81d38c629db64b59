package core

// Confidence is the coarse retention tier derived from a numeric score.
// Downstream consumers decide what to persist based on it.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// UnknownMXPriority is the sentinel preference recorded when no MX
// record was observed for a domain.
const UnknownMXPriority = 999

// ValidatedEmail represents a candidate that survived normalization and
// structural validation, split into its local part and domain.
type ValidatedEmail struct {
	Original   string
	Normalized string
	Local      string
	Domain     string
}

// MXRecord is one mail-exchanger entry for a domain. Lower preference
// values are preferred by sending servers.
type MXRecord struct {
	Host string
	Pref uint16
}

// DeliverabilityInfo captures the DNS-level mail signals observed for a
// single domain.
type DeliverabilityInfo struct {
	HasMX      bool
	HasARecord bool
	MXPriority int
	MXCount    int
}

// Deliverable reports whether the domain shows any sign of accepting mail.
func (d DeliverabilityInfo) Deliverable() bool {
	return d.HasMX || d.HasARecord
}

// DeliverableEmail pairs a validated candidate with the resolution
// outcome of its domain.
type DeliverableEmail struct {
	ValidatedEmail
	Deliverability DeliverabilityInfo
}

// ScoredEmail is the terminal output unit of one extraction run.
type ScoredEmail struct {
	DeliverableEmail
	Score      int
	Confidence Confidence
}
