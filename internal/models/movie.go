// internal/models/movie.go
package models

// CatalogEntry is one row of the local movie dataset. NormalizedTitle is derived
// once at load time and reused for every fuzzy comparison.
type CatalogEntry struct {
	Title           string `json:"title"`
	NormalizedTitle string `json:"-"`
	ReleaseYear     string `json:"releaseYear"`
	Duration        string `json:"duration"`
	Description     string `json:"description"`
}

// MatchResult is the outcome of one fuzzy lookup. Entry is nil when no catalog
// title reached the acceptance threshold; Score then holds the best score seen,
// for diagnostics only.
type MatchResult struct {
	Entry *CatalogEntry `json:"entry,omitempty"`
	Score float64       `json:"score"`
}

// Matched reports whether the lookup produced an accepted entry.
func (m MatchResult) Matched() bool {
	return m.Entry != nil
}

// TrendingMovie is one title from the TMDB trending feed, kept in upstream rank
// order and discarded after the turn is rendered.
type TrendingMovie struct {
	Title       string  `json:"title"`
	ReleaseYear string  `json:"releaseYear"`
	Popularity  float64 `json:"popularity"`
}
