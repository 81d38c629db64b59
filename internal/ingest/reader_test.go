package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLeadsWithHeader(t *testing.T) {
	input := strings.NewReader(
		"Firm Name,Website,Phone\n" +
			"Acme Law,https://acme.law,555-0100\n" +
			"Smith & Co,smithco.com,555-0101\n")

	urls, err := ReadLeads(input)

	require.NoError(t, err)
	assert.Equal(t, []string{"https://acme.law", "smithco.com"}, urls)
}

func TestReadLeadsURLHeaderVariant(t *testing.T) {
	input := strings.NewReader(
		"name,site_url\n" +
			"Acme Law,https://acme.law\n")

	urls, err := ReadLeads(input)

	require.NoError(t, err)
	assert.Equal(t, []string{"https://acme.law"}, urls)
}

func TestReadLeadsWithoutHeader(t *testing.T) {
	input := strings.NewReader(
		"acme.law\n" +
			"smithco.com\n")

	urls, err := ReadLeads(input)

	require.NoError(t, err)
	assert.Equal(t, []string{"acme.law", "smithco.com"}, urls)
}

func TestReadLeadsDeduplicates(t *testing.T) {
	input := strings.NewReader(
		"website\n" +
			"acme.law\n" +
			"smithco.com\n" +
			"acme.law\n")

	urls, err := ReadLeads(input)

	require.NoError(t, err)
	assert.Equal(t, []string{"acme.law", "smithco.com"}, urls)
}

func TestReadLeadsSkipsBlankAndShortRows(t *testing.T) {
	input := strings.NewReader(
		"name,website\n" +
			"Acme Law,acme.law\n" +
			"No Site,\n" +
			"Short Row\n")

	urls, err := ReadLeads(input)

	require.NoError(t, err)
	assert.Equal(t, []string{"acme.law"}, urls)
}

func TestReadLeadsEmptyInput(t *testing.T) {
	urls, err := ReadLeads(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, urls)
}

func TestReadLeadsMalformedCSV(t *testing.T) {
	_, err := ReadLeads(strings.NewReader("website\n\"unterminated\n"))
	assert.Error(t, err)
}
