// internal/models/fulfillment.go
package models

// Intent names recognized by the dispatcher. Anything else routes to fallback.
const (
	IntentRecommendByGenre = "recommend_by_genre"
	IntentGetTrending      = "get_trending"
	IntentGetMovieInfo     = "get_movie_info"
)

// Slot names supplied by the NLU layer.
const (
	SlotGenre = "genre"
	SlotTitle = "title"
	SlotField = "field"
	SlotText  = "text"
)

// FulfillmentRequest is one conversational turn as handed over by the NLU layer.
type FulfillmentRequest struct {
	Intent string            `json:"intent"`
	Slots  map[string]string `json:"slots,omitempty"`
}

// Slot returns the named slot value, "" if absent.
func (r *FulfillmentRequest) Slot(name string) string {
	if r.Slots == nil {
		return ""
	}
	return r.Slots[name]
}

// FulfillmentResponse is the rendered answer for one turn.
type FulfillmentResponse struct {
	Success bool        `json:"success"`
	Text    string      `json:"text"`
	Payload interface{} `json:"payload,omitempty"`
}
