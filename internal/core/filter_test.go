package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoredFixture(normalized string, score int, info DeliverabilityInfo) ScoredEmail {
	return ScoredEmail{
		DeliverableEmail: DeliverableEmail{
			ValidatedEmail: ValidatedEmail{Normalized: normalized},
			Deliverability: info,
		},
		Score:      score,
		Confidence: ConfidenceForScore(score),
	}
}

func TestFilterResultsDropsBelowMinScore(t *testing.T) {
	emails := []ScoredEmail{
		scoredFixture("keep@acme.law", 45, neutralDelivery),
		scoredFixture("drop@acme.law", 19, neutralDelivery),
		scoredFixture("edge@acme.law", 20, neutralDelivery),
	}

	results := FilterResults(emails, 20)

	require.Len(t, results, 2)
	assert.Equal(t, "keep@acme.law", results[0].Normalized)
	assert.Equal(t, "edge@acme.law", results[1].Normalized)
}

func TestFilterResultsDropsUndeliverable(t *testing.T) {
	emails := []ScoredEmail{
		scoredFixture("ghost@acme.law", 80, DeliverabilityInfo{MXPriority: UnknownMXPriority}),
		scoredFixture("real@acme.law", 60, neutralDelivery),
	}

	results := FilterResults(emails, 20)

	require.Len(t, results, 1)
	assert.Equal(t, "real@acme.law", results[0].Normalized)
}

func TestFilterResultsSortsByScoreDescending(t *testing.T) {
	emails := []ScoredEmail{
		scoredFixture("medium@acme.law", 55, neutralDelivery),
		scoredFixture("top@acme.law", 90, neutralDelivery),
		scoredFixture("low@acme.law", 30, neutralDelivery),
	}

	results := FilterResults(emails, 20)

	require.Len(t, results, 3)
	assert.Equal(t, "top@acme.law", results[0].Normalized)
	assert.Equal(t, "medium@acme.law", results[1].Normalized)
	assert.Equal(t, "low@acme.law", results[2].Normalized)
}

func TestFilterResultsStableOnTies(t *testing.T) {
	emails := []ScoredEmail{
		scoredFixture("first@acme.law", 60, neutralDelivery),
		scoredFixture("second@acme.law", 60, neutralDelivery),
		scoredFixture("third@acme.law", 60, neutralDelivery),
	}

	results := FilterResults(emails, 20)

	require.Len(t, results, 3)
	assert.Equal(t, "first@acme.law", results[0].Normalized)
	assert.Equal(t, "second@acme.law", results[1].Normalized)
	assert.Equal(t, "third@acme.law", results[2].Normalized)
}

func TestFilterResultsEmptyInput(t *testing.T) {
	assert.Empty(t, FilterResults(nil, 20))
}
