// internal/handlers/fallback/handler.go
package fallback

import (
	"context"

	"moviebot-fulfillment/internal/common/logger"
	"moviebot-fulfillment/internal/models"
)

const Intent = "fallback"

// Message is the fixed response for any turn no other handler claims.
const Message = "Sorry, I didn't get that. I can recommend movies by genre, show what's trending, or look up a movie's details."

type Handler struct {
	logger logger.Logger
}

func NewHandler(log logger.Logger) *Handler {
	return &Handler{
		logger: log.With(map[string]interface{}{
			"handler": Intent,
		}),
	}
}

func (h *Handler) Intent() string {
	return Intent
}

// Execute always succeeds with the fixed fallback message. The unrecognized
// intent is logged for later NLU tuning.
func (h *Handler) Execute(ctx context.Context, req *models.FulfillmentRequest) (*models.FulfillmentResponse, error) {
	h.logger.Info("unrecognized intent", map[string]interface{}{
		"intent": req.Intent,
	})

	return &models.FulfillmentResponse{
		Success: true,
		Text:    Message,
	}, nil
}
