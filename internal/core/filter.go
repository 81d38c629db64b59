package core

import "sort"

// FilterResults drops records scored below minScore or lacking any
// deliverability signal, then orders the rest by score descending.
// The sort is stable so ties keep their insertion order.
func FilterResults(emails []ScoredEmail, minScore int) []ScoredEmail {
	kept := make([]ScoredEmail, 0, len(emails))
	for _, email := range emails {
		if email.Score < minScore {
			continue
		}
		// Defensive: undeliverable records are already excluded upstream
		if !email.Deliverability.Deliverable() {
			continue
		}
		kept = append(kept, email)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Score > kept[j].Score
	})
	return kept
}
