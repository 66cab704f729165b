// internal/catalog/store.go
package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"moviebot-fulfillment/internal/common/logger"
	"moviebot-fulfillment/internal/models"
)

// Store is the in-memory indexed form of the local movie dataset. Immutable
// after Load, safe for unsynchronized concurrent reads.
type Store struct {
	entries []models.CatalogEntry
	matcher *Matcher
	logger  logger.Logger
}

// Load reads and indexes the dataset file. A missing file or malformed content
// is an error; the caller decides whether that is fatal for the process or only
// for the movie-info capability.
func Load(path string, threshold float64, log logger.Logger) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("catalog %s: missing header row", path)
	}

	cols, err := headerIndex(records[0])
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	entries := make([]models.CatalogEntry, 0, len(records)-1)
	skipped := 0
	for _, row := range records[1:] {
		title := strings.TrimSpace(field(row, cols["title"]))
		if title == "" {
			skipped++
			continue
		}
		entries = append(entries, models.CatalogEntry{
			Title:           title,
			NormalizedTitle: Normalize(title),
			ReleaseYear:     strings.TrimSpace(field(row, cols["release_year"])),
			Duration:        strings.TrimSpace(field(row, cols["duration"])),
			Description:     strings.TrimSpace(field(row, cols["description"])),
		})
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("catalog %s: no usable rows", path)
	}

	log.Info("catalog loaded", map[string]interface{}{
		"path":    path,
		"entries": len(entries),
		"skipped": skipped,
	})

	return &Store{
		entries: entries,
		matcher: NewMatcher(threshold),
		logger:  log,
	}, nil
}

// headerIndex maps the required columns case-insensitively. Only the title
// column is mandatory; other columns degrade to empty values.
func headerIndex(header []string) (map[string]int, error) {
	cols := map[string]int{
		"title":        -1,
		"release_year": -1,
		"duration":     -1,
		"description":  -1,
	}
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, ok := cols[key]; ok {
			cols[key] = i
		}
	}
	if cols["title"] < 0 {
		return nil, fmt.Errorf("header has no title column")
	}
	return cols, nil
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// Entries returns the loaded catalog in insertion order.
func (s *Store) Entries() []models.CatalogEntry {
	return s.entries
}

// Size returns the number of loaded entries.
func (s *Store) Size() int {
	return len(s.entries)
}

// LookupByTitle fuzzy-matches the query against the catalog and returns the
// full entry on an accepted match, so the caller can answer either a plot or a
// duration question from the same lookup.
func (s *Store) LookupByTitle(query string) models.MatchResult {
	result := s.matcher.Match(query, s.entries)
	if !result.Matched() {
		s.logger.Debug("catalog lookup below threshold", map[string]interface{}{
			"query":     query,
			"bestScore": result.Score,
		})
	}
	return result
}
