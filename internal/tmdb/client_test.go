// internal/tmdb/client_test.go
package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "moviebot-fulfillment/internal/common/errors"
	"moviebot-fulfillment/internal/common/logger"
)

func testConfig(baseURL string) *Config {
	return &Config{
		BaseURL:    baseURL,
		APIKey:     "test-key",
		TimeWindow: "day",
		Language:   "en-US",
		Timeout:    2 * time.Second,
	}
}

const trendingBody = `{
	"results": [
		{"title": "Dune: Part Two", "release_date": "2024-02-27", "popularity": 512.3},
		{"title": "Oppenheimer", "release_date": "2023-07-19", "popularity": 401.8},
		{"title": "", "release_date": "2023-01-01", "popularity": 99.0},
		{"title": "Poor Things", "release_date": "2023-12-08", "popularity": 320.1},
		{"title": "The Zone of Interest", "release_date": "", "popularity": 150.4},
		{"title": "Anatomy of a Fall", "release_date": "2023-08-23", "popularity": 140.0},
		{"title": "Past Lives", "release_date": "2023-06-02", "popularity": 130.0}
	]
}`

func TestFetchTrending_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/trending/movie/day", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "en-US", r.URL.Query().Get("language"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(trendingBody))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), logger.NewTestLogger(t))
	movies, err := client.FetchTrending(context.Background(), 5)
	require.NoError(t, err)

	require.Len(t, movies, 5)
	assert.Equal(t, "Dune: Part Two", movies[0].Title)
	assert.Equal(t, "2024", movies[0].ReleaseYear)
	assert.Equal(t, "Oppenheimer", movies[1].Title)
	assert.Equal(t, "", movies[3].ReleaseYear) // empty release_date degrades to no year
	assert.Equal(t, "Anatomy of a Fall", movies[4].Title)
}

func TestFetchTrending_MissingAPIKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected when the API key is missing")
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.APIKey = ""
	client := NewClient(cfg, logger.NewTestLogger(t))

	_, err := client.FetchTrending(context.Background(), 5)
	stdErr := apperrors.Normalize(err)
	assert.Equal(t, apperrors.ErrCodeConfigurationError, stdErr.Code)
}

func TestFetchTrending_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), logger.NewTestLogger(t))

	_, err := client.FetchTrending(context.Background(), 5)
	stdErr := apperrors.Normalize(err)
	assert.Equal(t, apperrors.ErrCodeServiceUnavailable, stdErr.Code)
	assert.True(t, stdErr.Retryable)
}

func TestFetchTrending_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), logger.NewTestLogger(t))

	_, err := client.FetchTrending(context.Background(), 5)
	stdErr := apperrors.Normalize(err)
	assert.Equal(t, apperrors.ErrCodeServiceUnavailable, stdErr.Code)
}

func TestFetchTrending_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.Timeout = 50 * time.Millisecond
	client := NewClient(cfg, logger.NewTestLogger(t))

	_, err := client.FetchTrending(context.Background(), 5)
	stdErr := apperrors.Normalize(err)
	assert.Equal(t, apperrors.ErrCodeServiceUnavailable, stdErr.Code)
}

func TestFetchTrending_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": [`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), logger.NewTestLogger(t))

	_, err := client.FetchTrending(context.Background(), 5)
	stdErr := apperrors.Normalize(err)
	assert.Equal(t, apperrors.ErrCodeServiceUnavailable, stdErr.Code)
}

func TestFetchTrending_EmptyResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": []}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), logger.NewTestLogger(t))

	_, err := client.FetchTrending(context.Background(), 5)
	stdErr := apperrors.Normalize(err)
	assert.Equal(t, apperrors.ErrCodeEmptyResult, stdErr.Code)
}

func TestFetchTrending_AllTitlesBlank(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": [{"title": "  "}, {"title": ""}]}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), logger.NewTestLogger(t))

	_, err := client.FetchTrending(context.Background(), 5)
	stdErr := apperrors.Normalize(err)
	assert.Equal(t, apperrors.ErrCodeEmptyResult, stdErr.Code)
}

func TestFetchTrending_LimitTruncates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(trendingBody))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), logger.NewTestLogger(t))

	movies, err := client.FetchTrending(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, "Dune: Part Two", movies[0].Title)
	assert.Equal(t, "Oppenheimer", movies[1].Title)
}
