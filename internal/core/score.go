package core

import (
	"strings"
	"unicode"
)

// keywordWindow is how many characters around the email literal are
// searched for relevance keywords.
const keywordWindow = 200

var professionalTLDs = []string{".com", ".law", ".legal", ".org", ".net", ".us", ".uk"}

var relevanceKeywords = []string{
	"attorney", "lawyer", "partner", "counsel", "esq",
	"contact", "team", "staff", "about", "reach",
}

var genericPrefixes = []string{
	"info", "contact", "admin", "support", "sales",
	"hello", "help", "service", "office",
}

// ScoreEmail rates one deliverable candidate from 0 to 100 starting at a
// neutral 50, applying every signal rule whose predicate holds. The
// surrounding page text doubles as scoring context. Pure and
// deterministic: the same record and context always yield the same score.
func ScoreEmail(email DeliverableEmail, pageText string) ScoredEmail {
	score := 50
	local := email.Local
	delivery := email.Deliverability

	// Positive signals

	if delivery.HasMX && delivery.MXPriority < 20 {
		score += 15
	}
	if delivery.MXCount >= 2 {
		score += 10
	}
	// Looks like firstname.lastname or f.lastname
	if strings.Contains(local, ".") && !strings.HasPrefix(local, ".") && !strings.HasSuffix(local, ".") {
		score += 20
	}
	if strings.Contains(local, "_") {
		score += 5
	}
	for _, tld := range professionalTLDs {
		if strings.HasSuffix(email.Domain, tld) {
			score += 10
			break
		}
	}
	if appearsNearKeyword(email.Normalized, pageText) {
		score += 15
	}

	// Negative signals

	// Role addresses are demoted, never excluded outright
	for _, prefix := range genericPrefixes {
		if strings.HasPrefix(local, prefix) {
			score -= 20
			break
		}
	}
	if strings.Contains(local, "noreply") || strings.Contains(local, "no-reply") || strings.Contains(local, "donotreply") {
		score -= 30
	}
	if len(local) > 30 {
		score -= 10
	}
	digits := 0
	for _, r := range local {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if digits*2 > len(local) {
		score -= 15
	}
	if !delivery.HasMX && delivery.HasARecord {
		score -= 10
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return ScoredEmail{
		DeliverableEmail: email,
		Score:            score,
		Confidence:       ConfidenceForScore(score),
	}
}

// ConfidenceForScore buckets a score into the retention tiers downstream
// consumers filter on.
func ConfidenceForScore(score int) Confidence {
	switch {
	case score >= 70:
		return ConfidenceHigh
	case score >= 40:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// appearsNearKeyword reports whether the email literal occurs in the
// page text within keywordWindow characters of a relevance keyword.
// Both sides are compared lower-cased.
func appearsNearKeyword(email, pageText string) bool {
	textLower := strings.ToLower(pageText)
	emailLower := strings.ToLower(email)

	idx := strings.Index(textLower, emailLower)
	if idx < 0 {
		return false
	}

	start := idx - keywordWindow
	if start < 0 {
		start = 0
	}
	end := idx + keywordWindow
	if end > len(textLower) {
		end = len(textLower)
	}

	window := textLower[start:end]
	for _, keyword := range relevanceKeywords {
		if strings.Contains(window, keyword) {
			return true
		}
	}
	return false
}
