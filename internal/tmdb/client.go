// internal/tmdb/client.go
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "moviebot-fulfillment/internal/common/errors"
	"moviebot-fulfillment/internal/common/logger"
	"moviebot-fulfillment/internal/common/metrics"
	"moviebot-fulfillment/internal/models"
)

// Config holds the trending endpoint settings. APIKey comes from the
// TMDB_API_KEY environment variable via the config loader.
type Config struct {
	BaseURL    string
	APIKey     string
	TimeWindow string
	Language   string
	Timeout    time.Duration
}

// Client wraps the TMDB trending-movies API: one bounded attempt per call,
// no caching, no retry. Stateless apart from configuration, safe for
// concurrent use.
type Client struct {
	config *Config
	client *http.Client
	logger logger.Logger
}

func NewClient(config *Config, log logger.Logger) *Client {
	return &Client{
		config: config,
		client: &http.Client{
			Timeout: config.Timeout,
		},
		logger: log.With(map[string]interface{}{
			"component": "tmdb",
		}),
	}
}

// FetchTrending returns at most limit titles in the rank order supplied by the
// upstream feed. Failures are typed: a missing API key is reported before any
// network call, transport errors and non-success statuses collapse into
// SERVICE_UNAVAILABLE, and a successful call with zero usable titles is
// EMPTY_RESULT.
func (c *Client) FetchTrending(ctx context.Context, limit int) ([]models.TrendingMovie, error) {
	if strings.TrimSpace(c.config.APIKey) == "" {
		metrics.TrendingRequests.WithLabelValues("configuration_error").Inc()
		return nil, apperrors.NewConfigurationError("TMDB_API_KEY is not set")
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", c.buildTrendingURL(), nil)
	if err != nil {
		metrics.TrendingRequests.WithLabelValues("unavailable").Inc()
		return nil, apperrors.NewServiceUnavailableError("tmdb", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.TrendingRequests.WithLabelValues("unavailable").Inc()
		if ctx.Err() == context.DeadlineExceeded ||
			strings.Contains(err.Error(), "timeout") ||
			strings.Contains(err.Error(), "deadline") ||
			strings.Contains(err.Error(), "Client.Timeout") {
			return nil, apperrors.NewServiceUnavailableError("tmdb", fmt.Errorf("request timed out after %s", c.config.Timeout))
		}
		return nil, apperrors.NewServiceUnavailableError("tmdb", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.TrendingRequests.WithLabelValues("unavailable").Inc()
		return nil, apperrors.NewServiceUnavailableError("tmdb", fmt.Errorf("trending API returned %d", resp.StatusCode))
	}

	var apiResponse struct {
		Results []struct {
			Title       string  `json:"title"`
			ReleaseDate string  `json:"release_date"`
			Popularity  float64 `json:"popularity"`
		} `json:"results"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		metrics.TrendingRequests.WithLabelValues("unavailable").Inc()
		return nil, apperrors.NewServiceUnavailableError("tmdb", fmt.Errorf("decode trending response: %w", err))
	}

	movies := make([]models.TrendingMovie, 0, limit)
	for _, item := range apiResponse.Results {
		if strings.TrimSpace(item.Title) == "" {
			continue
		}
		movies = append(movies, models.TrendingMovie{
			Title:       item.Title,
			ReleaseYear: releaseYear(item.ReleaseDate),
			Popularity:  item.Popularity,
		})
		if len(movies) == limit {
			break
		}
	}

	if len(movies) == 0 {
		metrics.TrendingRequests.WithLabelValues("empty").Inc()
		return nil, apperrors.NewEmptyResultError("tmdb")
	}

	metrics.TrendingRequests.WithLabelValues("success").Inc()
	c.logger.Info("trending fetched", map[string]interface{}{
		"count":  len(movies),
		"window": c.config.TimeWindow,
	})

	return movies, nil
}

func (c *Client) buildTrendingURL() string {
	baseURL, _ := url.Parse(fmt.Sprintf("%s/trending/movie/%s",
		strings.TrimRight(c.config.BaseURL, "/"), c.config.TimeWindow))
	params := url.Values{}
	params.Add("api_key", c.config.APIKey)
	params.Add("language", c.config.Language)
	baseURL.RawQuery = params.Encode()
	return baseURL.String()
}

func releaseYear(releaseDate string) string {
	if len(releaseDate) >= 4 {
		return releaseDate[:4]
	}
	return ""
}
