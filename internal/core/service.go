package core

import (
	"context"
	"sort"

	"go.uber.org/zap"
)

// ExtractorService runs the full candidate-to-scored-email pipeline over
// one page-text payload: match, normalize, validate, check
// deliverability, score, filter. It is safe to invoke repeatedly; the
// only state surviving a run is the checker's domain cache.
type ExtractorService struct {
	checker  *DeliverabilityChecker
	logger   *zap.Logger
	minScore int
}

// NewExtractorService creates a new extractor service
func NewExtractorService(checker *DeliverabilityChecker, logger *zap.Logger, minScore int) *ExtractorService {
	return &ExtractorService{
		checker:  checker,
		logger:   logger,
		minScore: minScore,
	}
}

// Extract turns raw page text into a ranked set of plausible,
// deliverable email addresses. Data-quality rejections are silent;
// an error is only returned for infrastructural failures such as a
// cancelled context.
func (s *ExtractorService) Extract(ctx context.Context, pageText string) ([]ScoredEmail, error) {
	candidates := MatchCandidates(pageText)

	normalized := make([]string, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for candidate := range candidates {
		cleaned, ok := NormalizeCandidate(candidate)
		if !ok {
			continue
		}
		if _, dup := seen[cleaned]; dup {
			continue
		}
		seen[cleaned] = struct{}{}
		normalized = append(normalized, cleaned)
	}
	// Candidates come out of a map; fix the order so tie-breaking in the
	// final sort is reproducible across runs.
	sort.Strings(normalized)

	validated := make([]ValidatedEmail, 0, len(normalized))
	for _, candidate := range normalized {
		if email, ok := ValidateSyntax(candidate); ok {
			validated = append(validated, email)
		}
	}

	deliverable := s.checker.CheckBatch(ctx, validated)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scored := make([]ScoredEmail, 0, len(deliverable))
	for _, email := range deliverable {
		scored = append(scored, ScoreEmail(email, pageText))
	}

	results := FilterResults(scored, s.minScore)

	s.logger.Debug("Extraction pipeline finished",
		zap.Int("candidates", len(candidates)),
		zap.Int("normalized", len(normalized)),
		zap.Int("validated", len(validated)),
		zap.Int("deliverable", len(deliverable)),
		zap.Int("kept", len(results)))

	return results, nil
}
