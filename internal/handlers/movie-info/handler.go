// internal/handlers/movie-info/handler.go
package movieinfo

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"moviebot-fulfillment/internal/catalog"
	apperrors "moviebot-fulfillment/internal/common/errors"
	"moviebot-fulfillment/internal/common/logger"
	"moviebot-fulfillment/internal/models"
)

const Intent = models.IntentGetMovieInfo

var (
	durationWords = []string{"long", "duration", "time", "length"}
	plotWords     = []string{"plot", "story", "about", "summary"}

	quotedTitleRe = regexp.MustCompile(`"([^"]+)"`)

	// Leading phrases stripped when the title has to be recovered from the raw
	// utterance instead of a slot.
	leadingPhrases = []string{
		"tell me about", "what is", "info for", "details for",
		"plot of", "duration of", "story of", "how long is",
	}
)

// CatalogLookup is the narrow view of the catalog store the handler needs.
type CatalogLookup interface {
	LookupByTitle(query string) models.MatchResult
}

type Handler struct {
	config *Config
	store  CatalogLookup
	logger logger.Logger
}

// NewHandler builds the movie-info handler. A nil store marks the capability
// disabled for this process; turns then fail with CAPABILITY_DISABLED instead
// of panicking.
func NewHandler(config *Config, store CatalogLookup, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		store:  store,
		logger: log.With(map[string]interface{}{
			"handler": Intent,
		}),
	}
}

func (h *Handler) Intent() string {
	return Intent
}

// Execute answers a title lookup. The title comes from the title slot, falling
// back to extraction from the raw utterance; the requested field comes from the
// field slot, falling back to trigger words in the utterance, falling back to a
// general summary.
func (h *Handler) Execute(ctx context.Context, req *models.FulfillmentRequest) (*models.FulfillmentResponse, error) {
	if h.store == nil {
		return nil, apperrors.NewCapabilityDisabledError(Intent, "catalog not loaded")
	}

	userText := strings.ToLower(req.Slot(models.SlotText))

	raw := strings.TrimSpace(req.Slot(models.SlotTitle))
	if raw == "" {
		raw = ExtractTitle(userText)
	}
	if catalog.Normalize(raw) == "" {
		return nil, apperrors.NewInvalidSlotError(models.SlotTitle, "no usable title in slot or utterance")
	}

	result := h.store.LookupByTitle(raw)
	if !result.Matched() {
		return nil, apperrors.NewNotFoundError(raw, result.Score)
	}

	entry := result.Entry
	field := DetectField(req.Slot(models.SlotField), userText)

	h.logger.Info("catalog match", map[string]interface{}{
		"query":      raw,
		"title":      entry.Title,
		"field":      field,
		"confidence": result.Score,
	})

	var text string
	switch field {
	case FieldDuration:
		text = fmt.Sprintf("The duration of '%s' is %s.", entry.Title, entry.Duration)
	case FieldPlot:
		text = fmt.Sprintf("The plot of '%s': %s", entry.Title, entry.Description)
	default:
		text = fmt.Sprintf("%s (%s)\n- Duration: %s\n- Summary: %s...",
			entry.Title, entry.ReleaseYear, entry.Duration,
			truncate(entry.Description, h.config.SummaryMaxChars))
	}

	return &models.FulfillmentResponse{
		Success: true,
		Text:    text,
		Payload: &Output{
			Title:       entry.Title,
			ReleaseYear: entry.ReleaseYear,
			Duration:    entry.Duration,
			Description: entry.Description,
			Field:       field,
			Confidence:  result.Score,
		},
	}, nil
}

// DetectField resolves the sub-question: an explicit field slot wins, then
// trigger words in the utterance, then the general summary.
func DetectField(fieldSlot, userText string) string {
	switch strings.ToLower(strings.TrimSpace(fieldSlot)) {
	case FieldDuration:
		return FieldDuration
	case FieldPlot:
		return FieldPlot
	}
	if containsAny(userText, durationWords) {
		return FieldDuration
	}
	if containsAny(userText, plotWords) {
		return FieldPlot
	}
	return FieldGeneral
}

// ExtractTitle recovers a movie title from a raw utterance when no title slot
// was filled. A quoted span wins; otherwise known leading phrases are stripped.
func ExtractTitle(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))

	if m := quotedTitleRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}

	cleaned := text
	for _, p := range leadingPhrases {
		if strings.HasPrefix(cleaned, p) {
			cleaned = strings.Replace(cleaned, p, "", 1)
		}
	}
	return strings.Trim(cleaned, ` ?!.,'"`)
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
