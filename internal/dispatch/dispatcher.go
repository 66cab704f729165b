// internal/dispatch/dispatcher.go
package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	apperrors "moviebot-fulfillment/internal/common/errors"
	"moviebot-fulfillment/internal/common/logger"
	"moviebot-fulfillment/internal/common/metrics"
	"moviebot-fulfillment/internal/common/observability"
	"moviebot-fulfillment/internal/models"
)

// Handler fulfills one intent. Success comes back as a rendered response;
// failures come back as typed errors the dispatcher turns into user-facing
// text.
type Handler interface {
	Intent() string
	Execute(ctx context.Context, req *models.FulfillmentRequest) (*models.FulfillmentResponse, error)
}

// User-facing failure texts. All trending failures collapse into one message:
// the user cannot act differently on a missing key vs a timeout.
const (
	trendingUnavailableText = "Trending service is currently unavailable."
	movieInfoDisabledText   = "Movie details are currently unavailable."
	internalErrorText       = "Sorry, something went wrong while handling that."
)

// slotPrompts maps a missing slot to the re-ask the user sees.
var slotPrompts = map[string]string{
	models.SlotGenre: "What genre are you in the mood for?",
	models.SlotTitle: "Which movie are you interested in?",
}

// Dispatcher routes one turn to exactly one handler. Closed-world: an intent
// without a registered handler goes to fallback, never to a silent no-op.
type Dispatcher struct {
	handlers map[string]Handler
	fallback Handler
	obs      *observability.Observability
	logger   logger.Logger
}

func New(fallback Handler, obs *observability.Observability, log logger.Logger) *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string]Handler),
		fallback: fallback,
		obs:      obs,
		logger: log.With(map[string]interface{}{
			"component": "dispatcher",
		}),
	}
}

// Register adds a handler under its own intent name. Later registrations for
// the same intent replace earlier ones.
func (d *Dispatcher) Register(h Handler) {
	d.handlers[h.Intent()] = h
}

// Intents returns the registered intent names, fallback excluded.
func (d *Dispatcher) Intents() []string {
	intents := make([]string, 0, len(d.handlers))
	for intent := range d.handlers {
		intents = append(intents, intent)
	}
	return intents
}

// Dispatch processes one turn synchronously and always returns a response: a
// handler success, a rendered failure, or the fallback message. Handler panics
// are contained per turn.
func (d *Dispatcher) Dispatch(ctx context.Context, req *models.FulfillmentRequest) (resp *models.FulfillmentResponse) {
	turnID := uuid.New().String()
	start := time.Now()

	handler, ok := d.handlers[req.Intent]
	if !ok {
		handler = d.fallback
	}
	intentLabel := handler.Intent()

	log := d.logger.With(map[string]interface{}{
		"turnId": turnID,
		"intent": req.Intent,
	})
	log.Info("turn started", map[string]interface{}{
		"routedTo": intentLabel,
	})

	defer func() {
		if r := recover(); r != nil {
			log.Error("handler panic", map[string]interface{}{
				"panic": fmt.Sprintf("%v", r),
			})
			metrics.TurnsFailed.WithLabelValues(intentLabel, "PANIC").Inc()
			resp = &models.FulfillmentResponse{
				Success: false,
				Text:    internalErrorText,
			}
		}
		duration := time.Since(start)
		metrics.TurnDuration.WithLabelValues(intentLabel).Observe(duration.Seconds())
		if d.obs != nil {
			d.obs.RecordTurnDuration(ctx, duration, intentLabel)
		}
	}()

	resp, err := handler.Execute(ctx, req)
	if err != nil {
		stdErr := apperrors.Normalize(err)
		log.WithError(stdErr).Warn("turn failed", map[string]interface{}{
			"errorCode": string(stdErr.Code),
			"retryable": stdErr.Retryable,
		})
		metrics.TurnsFailed.WithLabelValues(intentLabel, string(stdErr.Code)).Inc()
		if d.obs != nil {
			d.obs.RecordTurnProcessed(ctx, intentLabel, "failed")
		}
		return d.renderFailure(stdErr)
	}

	log.Info("turn completed", map[string]interface{}{
		"durationMs": time.Since(start).Milliseconds(),
	})
	metrics.TurnsCompleted.WithLabelValues(intentLabel).Inc()
	if d.obs != nil {
		d.obs.RecordTurnProcessed(ctx, intentLabel, "completed")
	}
	return resp
}

// renderFailure maps a typed handler error onto the text the user sees.
func (d *Dispatcher) renderFailure(stdErr *apperrors.StandardError) *models.FulfillmentResponse {
	text := internalErrorText

	switch {
	case apperrors.IsTrendingFailure(stdErr.Code):
		text = trendingUnavailableText
	case stdErr.Code == apperrors.ErrCodeNotFound:
		text = fmt.Sprintf("I couldn't find '%s' in the dataset.", stdErr.Meta("query"))
	case stdErr.Code == apperrors.ErrCodeInvalidSlot:
		if prompt, ok := slotPrompts[stdErr.Meta("slot")]; ok {
			text = prompt
		} else {
			text = "Could you rephrase that?"
		}
	case stdErr.Code == apperrors.ErrCodeCapabilityDisabled:
		text = movieInfoDisabledText
	}

	return &models.FulfillmentResponse{
		Success: false,
		Text:    text,
	}
}
