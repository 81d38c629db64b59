package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ReadLeads parses a CSV of organization leads and returns the website
// URLs to enqueue, deduplicated in file order. The column is picked by a
// header named like "website" or "url"; files without a recognizable
// header fall back to the first column.
func ReadLeads(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse lead file: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	column, skipHeader := findURLColumn(records[0])
	rows := records
	if skipHeader {
		rows = records[1:]
	}

	urls := make([]string, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		if column >= len(row) {
			continue
		}
		url := strings.TrimSpace(row[column])
		if url == "" {
			continue
		}
		if _, dup := seen[url]; dup {
			continue
		}
		seen[url] = struct{}{}
		urls = append(urls, url)
	}
	return urls, nil
}

// findURLColumn locates the website column in a header row. The second
// return value reports whether the row actually was a header.
func findURLColumn(header []string) (int, bool) {
	for i, field := range header {
		name := strings.ToLower(strings.TrimSpace(field))
		if strings.Contains(name, "website") || strings.Contains(name, "url") {
			return i, true
		}
	}
	// No header: if the first field looks like a URL, treat every row as data
	if len(header) > 0 {
		first := strings.ToLower(strings.TrimSpace(header[0]))
		if strings.Contains(first, ".") || strings.Contains(first, "://") {
			return 0, false
		}
	}
	return 0, true
}
