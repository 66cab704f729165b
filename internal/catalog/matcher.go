// internal/catalog/matcher.go
package catalog

import (
	edlib "github.com/hbollon/go-edlib"

	"moviebot-fulfillment/internal/models"
)

// DefaultThreshold is the acceptance threshold for fuzzy title matches.
// Similarity is the OSA Damerau-Levenshtein ratio in [0, 1]; one adjacent
// transposition in a nine-letter title still clears 0.80.
const DefaultThreshold = 0.80

// Matcher scores a query against catalog titles and accepts the best candidate
// at or above the threshold.
type Matcher struct {
	threshold float64
}

func NewMatcher(threshold float64) *Matcher {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Matcher{threshold: threshold}
}

// Match normalizes the query, scores it against every entry, and returns the
// first entry holding the maximum score if that score clears the threshold.
// Below threshold the result carries the best score with a nil entry.
// Deterministic: ties resolve to the earliest entry in catalog order.
func (m *Matcher) Match(query string, entries []models.CatalogEntry) models.MatchResult {
	normQuery := Normalize(query)
	if normQuery == "" || len(entries) == 0 {
		return models.MatchResult{}
	}

	bestScore := 0.0
	bestIdx := -1
	for i := range entries {
		score := similarity(normQuery, entries[i].NormalizedTitle)
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	if bestIdx >= 0 && bestScore >= m.threshold {
		return models.MatchResult{Entry: &entries[bestIdx], Score: bestScore}
	}
	return models.MatchResult{Score: bestScore}
}

func similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	res, err := edlib.StringsSimilarity(a, b, edlib.OSADamerauLevenshtein)
	if err != nil {
		return 0
	}
	return float64(res)
}
