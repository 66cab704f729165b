// internal/handlers/get-trending/handler.go
package gettrending

import (
	"context"
	"fmt"
	"strings"

	"moviebot-fulfillment/internal/common/logger"
	"moviebot-fulfillment/internal/models"
)

const Intent = models.IntentGetTrending

// TrendingFetcher is the narrow view of the TMDB client the handler needs.
type TrendingFetcher interface {
	FetchTrending(ctx context.Context, limit int) ([]models.TrendingMovie, error)
}

type Handler struct {
	config  *Config
	fetcher TrendingFetcher
	logger  logger.Logger
}

func NewHandler(config *Config, fetcher TrendingFetcher, log logger.Logger) *Handler {
	return &Handler{
		config:  config,
		fetcher: fetcher,
		logger: log.With(map[string]interface{}{
			"handler": Intent,
		}),
	}
}

func (h *Handler) Intent() string {
	return Intent
}

// Execute fetches the current trending titles. One attempt, no caching; typed
// failures propagate to the dispatcher, which renders them as a single
// unavailable message.
func (h *Handler) Execute(ctx context.Context, req *models.FulfillmentRequest) (*models.FulfillmentResponse, error) {
	movies, err := h.fetcher.FetchTrending(ctx, h.config.MaxResults)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(movies))
	for _, m := range movies {
		if m.ReleaseYear != "" {
			lines = append(lines, fmt.Sprintf("%s (%s)", m.Title, m.ReleaseYear))
		} else {
			lines = append(lines, m.Title)
		}
	}

	return &models.FulfillmentResponse{
		Success: true,
		Text:    "Trending today:\n- " + strings.Join(lines, "\n- "),
		Payload: &Output{Movies: movies},
	}, nil
}
