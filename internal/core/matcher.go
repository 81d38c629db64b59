package core

import (
	"regexp"
	"strings"
)

// candidatePatterns is the ordered library of surface patterns the
// matcher runs over page text. Several patterns overlap on purpose;
// duplicates collapse because the matcher returns a set.
var candidatePatterns = []*regexp.Regexp{
	// Standard addresses
	regexp.MustCompile(`(?i)\b[a-z0-9][a-z0-9._%+-]{0,63}@[a-z0-9][a-z0-9.-]{0,253}\.[a-z]{2,63}\b`),

	// Plus addressing (gmail style)
	regexp.MustCompile(`(?i)\b[a-z0-9._%+-]+\+[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}\b`),

	// Obfuscated: user [at] domain [dot] com
	regexp.MustCompile(`(?i)\b[a-z0-9._%+-]+\s*[\[(]?\s*at\s*[\])]?\s*[a-z0-9.-]+\s*[\[(]?\s*dot\s*[\])]?\s*[a-z]{2,}\b`),

	// Obfuscated: user AT domain DOT com
	regexp.MustCompile(`(?i)\b[a-z0-9._%+-]+\s+at\s+[a-z0-9.-]+\s+dot\s+[a-z]{2,}\b`),

	// mailto: links
	regexp.MustCompile(`(?i)mailto:\s*([a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,})`),

	// Addresses in parentheses or brackets
	regexp.MustCompile(`(?i)[(\[]\s*([a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,})\s*[)\]]`),

	// Addresses after a contextual label
	regexp.MustCompile(`(?i)(?:email|e-mail|contact|reach):\s*([a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,})`),
}

// MatchCandidates scans text with every surface pattern and returns the
// distinct raw candidates found. When a pattern carries capture groups,
// the first non-empty group wins over the whole match. Pure function,
// no I/O.
func MatchCandidates(text string) map[string]struct{} {
	candidates := make(map[string]struct{})

	for _, pattern := range candidatePatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			candidate := match[0]
			for _, group := range match[1:] {
				if group != "" {
					candidate = group
					break
				}
			}

			candidate = strings.TrimSpace(candidate)
			if candidate != "" {
				candidates[candidate] = struct{}{}
			}
		}
	}

	return candidates
}
