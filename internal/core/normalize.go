package core

import (
	"regexp"
	"strings"
)

// Obfuscation tokens are only rewritten when set off by whitespace or
// brackets, so the "at" inside a local part like "kate" survives intact.
var (
	atTokenPattern  = regexp.MustCompile(`(?i)(?:\s*[\[(]\s*at\s*[\])]\s*|\s+at\s+)`)
	dotTokenPattern = regexp.MustCompile(`(?i)(?:\s*[\[(]\s*dot\s*[\])]\s*|\s+dot\s+)`)
)

// exclusionPatterns reject candidates that match email syntax but are
// known garbage: file names, numeric artifacts, placeholder domains.
var exclusionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)@.*\.(png|jpg|jpeg|gif|svg|webp|pdf|css|js)$`),
	regexp.MustCompile(`^[0-9.]+@`),
	regexp.MustCompile(`@[0-9.]+$`),
	regexp.MustCompile(`(?i)@example\.(com|org|net)`),
	regexp.MustCompile(`(?i)@test\.`),
	regexp.MustCompile(`(?i)^(test|demo|sample|example)`),
	regexp.MustCompile(`(?i)@(localhost|127\.0\.0\.1)`),
	regexp.MustCompile(`(?i)\.\.[a-z]`),
}

// forbiddenExtensions are final domain labels that mark a candidate as a
// scraped file name rather than an address. The non-file tokens at the
// end leak from image alt text and srcset attributes.
var forbiddenExtensions = map[string]struct{}{
	"png": {}, "jpg": {}, "jpeg": {}, "gif": {}, "svg": {}, "webp": {}, "bmp": {}, "ico": {},
	"pdf": {}, "doc": {}, "docx": {}, "xls": {}, "xlsx": {}, "ppt": {}, "pptx": {},
	"zip": {}, "rar": {}, "tar": {}, "gz": {}, "7z": {},
	"mp3": {}, "mp4": {}, "avi": {}, "mov": {}, "wmv": {},
	"css": {}, "js": {}, "json": {}, "xml": {},
	"scaled": {}, "circle": {}, "thumbnail": {}, "icon": {},
}

// NormalizeCandidate maps one raw candidate to its canonical lower-cased
// form, or reports false when the candidate should be silently dropped.
func NormalizeCandidate(raw string) (string, bool) {
	cleaned := strings.ToLower(strings.TrimSpace(raw))

	// De-obfuscate: user [at] domain [dot] com -> user@domain.com
	cleaned = atTokenPattern.ReplaceAllString(cleaned, "@")
	cleaned = dotTokenPattern.ReplaceAllString(cleaned, ".")

	// Strip wrapping quotes, parentheses, brackets and trailing punctuation
	cleaned = strings.Trim(cleaned, `"'()[]<> `)
	cleaned = strings.TrimRight(cleaned, ".,;:")

	if len(cleaned) < 6 {
		return "", false
	}

	for _, pattern := range exclusionPatterns {
		if pattern.MatchString(cleaned) {
			return "", false
		}
	}

	if at := strings.Index(cleaned, "@"); at >= 0 {
		labels := strings.Split(cleaned[at+1:], ".")
		last := labels[len(labels)-1]
		if _, forbidden := forbiddenExtensions[last]; forbidden {
			return "", false
		}
	}

	return cleaned, true
}
