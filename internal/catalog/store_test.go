// internal/catalog/store_test.go
package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviebot-fulfillment/internal/common/logger"
)

const sampleCSV = `title,release_year,duration,description
Inception,2010,148 min,"A thief who steals corporate secrets through dream-sharing technology."
Interstellar,2014,169 min,"A team of explorers travel through a wormhole in space."
The Matrix,1999,136 min,"A computer hacker learns the true nature of his reality."
,2001,90 min,"Row without a title is skipped."
Parasite,2019,132 min,"Greed and class discrimination threaten a symbiotic relationship."
`

func writeTempCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "movies.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Success(t *testing.T) {
	path := writeTempCatalog(t, sampleCSV)

	store, err := Load(path, DefaultThreshold, logger.NewTestLogger(t))
	require.NoError(t, err)

	assert.Equal(t, 4, store.Size())
	assert.Equal(t, "Inception", store.Entries()[0].Title)
	assert.Equal(t, "inception", store.Entries()[0].NormalizedTitle)
	assert.Equal(t, "148 min", store.Entries()[0].Duration)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"), DefaultThreshold, logger.NewTestLogger(t))
	assert.Error(t, err)
}

func TestLoad_MissingTitleColumn(t *testing.T) {
	path := writeTempCatalog(t, "name,release_year\nInception,2010\n")

	_, err := Load(path, DefaultThreshold, logger.NewTestLogger(t))
	assert.ErrorContains(t, err, "title")
}

func TestLoad_NoUsableRows(t *testing.T) {
	path := writeTempCatalog(t, "title,release_year,duration,description\n")

	_, err := Load(path, DefaultThreshold, logger.NewTestLogger(t))
	assert.ErrorContains(t, err, "no usable rows")
}

func TestLoad_MalformedCSV(t *testing.T) {
	path := writeTempCatalog(t, "title,release_year\n\"Inception,2010\n")

	_, err := Load(path, DefaultThreshold, logger.NewTestLogger(t))
	assert.Error(t, err)
}

func TestLoad_CaseInsensitiveHeader(t *testing.T) {
	path := writeTempCatalog(t, "Title,Release_Year,Duration,Description\nInception,2010,148 min,Dreams.\n")

	store, err := Load(path, DefaultThreshold, logger.NewTestLogger(t))
	require.NoError(t, err)

	result := store.LookupByTitle("inception")
	require.True(t, result.Matched())
	assert.Equal(t, "2010", result.Entry.ReleaseYear)
	assert.Equal(t, "Dreams.", result.Entry.Description)
}

func TestLookupByTitle_TypoResolves(t *testing.T) {
	path := writeTempCatalog(t, sampleCSV)
	store, err := Load(path, DefaultThreshold, logger.NewTestLogger(t))
	require.NoError(t, err)

	result := store.LookupByTitle("inceptoin")
	require.True(t, result.Matched())
	assert.Equal(t, "Inception", result.Entry.Title)
	assert.Equal(t, "148 min", result.Entry.Duration)
}

func TestLookupByTitle_NoMatchKeepsBestScore(t *testing.T) {
	path := writeTempCatalog(t, sampleCSV)
	store, err := Load(path, DefaultThreshold, logger.NewTestLogger(t))
	require.NoError(t, err)

	result := store.LookupByTitle("Xyzzy Nonexistent Film")
	assert.False(t, result.Matched())
	assert.Greater(t, result.Score, 0.0)
	assert.Less(t, result.Score, DefaultThreshold)
}
