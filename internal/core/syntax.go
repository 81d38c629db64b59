package core

import (
	"strings"

	"github.com/badoux/checkmail"
)

// ValidateSyntax performs RFC-shaped structural validation of one
// normalized candidate and splits it into local part and domain.
// Failure is an expected outcome, reported through the boolean rather
// than an error. No network access happens here.
func ValidateSyntax(candidate string) (ValidatedEmail, bool) {
	if err := checkmail.ValidateFormat(candidate); err != nil {
		return ValidatedEmail{}, false
	}

	at := strings.LastIndex(candidate, "@")
	if at <= 0 || at == len(candidate)-1 {
		return ValidatedEmail{}, false
	}
	local, domain := candidate[:at], candidate[at+1:]

	// The domain needs at least one dot and a plausible alphabetic TLD.
	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return ValidatedEmail{}, false
	}
	for _, label := range labels {
		if label == "" {
			return ValidatedEmail{}, false
		}
	}
	tld := labels[len(labels)-1]
	if len(tld) < 2 || !isAlpha(tld) {
		return ValidatedEmail{}, false
	}

	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") || strings.Contains(candidate, "..") {
		return ValidatedEmail{}, false
	}

	return ValidatedEmail{
		Original:   candidate,
		Normalized: candidate,
		Local:      local,
		Domain:     domain,
	}, true
}

func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
