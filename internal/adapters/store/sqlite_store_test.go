package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/hassankhalil8/FLE-email-extractor-pipeline/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "leads.db")
	s, err := NewSQLiteStore(dbPath, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func scoredEmail(normalized string, score int) core.ScoredEmail {
	return core.ScoredEmail{
		DeliverableEmail: core.DeliverableEmail{
			ValidatedEmail: core.ValidatedEmail{Normalized: normalized},
			Deliverability: core.DeliverabilityInfo{HasMX: true, MXCount: 1, MXPriority: 10},
		},
		Score:      score,
		Confidence: core.ConfidenceForScore(score),
	}
}

func TestUpsertOrganizationIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.UpsertOrganization(ctx, "https://acme.law")
	require.NoError(t, err)

	second, err := s.UpsertOrganization(ctx, "https://acme.law")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := s.UpsertOrganization(ctx, "https://smithco.com")
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestSaveEmailsIgnoresDuplicates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	orgID, err := s.UpsertOrganization(ctx, "https://acme.law")
	require.NoError(t, err)

	emails := []core.ScoredEmail{
		scoredEmail("jane.doe@acme.law", 95),
		scoredEmail("info@acme.law", 45),
	}
	require.NoError(t, s.SaveEmails(ctx, orgID, "https://acme.law", emails))

	// Re-delivery of the same job must not duplicate rows
	require.NoError(t, s.SaveEmails(ctx, orgID, "https://acme.law", emails))

	var count int
	err = s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM extracted_emails WHERE org_id = ?", orgID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSaveEmailsPersistsFields(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	orgID, err := s.UpsertOrganization(ctx, "https://acme.law")
	require.NoError(t, err)

	require.NoError(t, s.SaveEmails(ctx, orgID, "https://acme.law/contact",
		[]core.ScoredEmail{scoredEmail("jane.doe@acme.law", 95)}))

	var email, confidence, sourcePage string
	var score int
	err = s.db.QueryRowContext(ctx, `
		SELECT email, score, confidence, source_page
		FROM extracted_emails WHERE org_id = ?`, orgID).
		Scan(&email, &score, &confidence, &sourcePage)
	require.NoError(t, err)

	assert.Equal(t, "jane.doe@acme.law", email)
	assert.Equal(t, 95, score)
	assert.Equal(t, "high", confidence)
	assert.Equal(t, "https://acme.law/contact", sourcePage)
}

func TestSaveEmailsEmptyBatch(t *testing.T) {
	s := newTestStore(t)
	assert.NoError(t, s.SaveEmails(context.Background(), 1, "https://acme.law", nil))
}
