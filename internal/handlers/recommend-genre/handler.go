// internal/handlers/recommend-genre/handler.go
package recommendgenre

import (
	"context"
	"fmt"
	"strings"

	apperrors "moviebot-fulfillment/internal/common/errors"
	"moviebot-fulfillment/internal/common/logger"
	"moviebot-fulfillment/internal/models"
)

const Intent = models.IntentRecommendByGenre

// recommendations is the static genre table. Every known genre maps to exactly
// five titles in a fixed order; an unknown genre is a distinct outcome, never
// an empty or partial list.
var recommendations = map[string][]string{
	"comedy":   {"Superbad", "The Hangover", "Mean Girls", "Step Brothers", "Booksmart"},
	"action":   {"Mad Max: Fury Road", "John Wick", "Gladiator", "Die Hard", "The Dark Knight"},
	"drama":    {"Forrest Gump", "The Shawshank Redemption", "Fight Club", "The Godfather", "Parasite"},
	"thriller": {"Se7en", "Gone Girl", "Shutter Island", "The Silence of the Lambs", "Nightcrawler"},
	"horror":   {"Get Out", "The Conjuring", "Hereditary", "A Quiet Place", "It"},
	"sci-fi":   {"Inception", "Interstellar", "The Matrix", "Blade Runner 2049", "Arrival"},
}

// Recommend returns the fixed five-title list for a known genre. The boolean
// distinguishes "unknown genre" from any list outcome.
func Recommend(genre string) ([]string, bool) {
	movies, ok := recommendations[genre]
	return movies, ok
}

// KnownGenres returns the genres the table can serve.
func KnownGenres() []string {
	genres := make([]string, 0, len(recommendations))
	for g := range recommendations {
		genres = append(genres, g)
	}
	return genres
}

type Handler struct {
	config *Config
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		logger: log.With(map[string]interface{}{
			"handler": Intent,
		}),
	}
}

func (h *Handler) Intent() string {
	return Intent
}

// Execute serves a recommendation turn from the static table. Pure lookup, no
// I/O; the only failure is a missing genre slot.
func (h *Handler) Execute(ctx context.Context, req *models.FulfillmentRequest) (*models.FulfillmentResponse, error) {
	genre := strings.ToLower(strings.TrimSpace(req.Slot(models.SlotGenre)))
	if genre == "" {
		return nil, apperrors.NewInvalidSlotError(models.SlotGenre, "genre slot is empty")
	}

	movies, ok := Recommend(genre)
	if !ok {
		h.logger.Info("unknown genre", map[string]interface{}{
			"genre": genre,
		})
		return &models.FulfillmentResponse{
			Success: true,
			Text:    fmt.Sprintf("I don't have 5 suggestions for '%s' yet.", genre),
			Payload: &Output{Genre: genre},
		}, nil
	}

	return &models.FulfillmentResponse{
		Success: true,
		Text:    fmt.Sprintf("Here are 5 %s movies you might like: %s.", genre, strings.Join(movies, ", ")),
		Payload: &Output{Genre: genre, Movies: movies},
	}, nil
}
