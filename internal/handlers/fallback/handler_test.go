// internal/handlers/fallback/handler_test.go
package fallback

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviebot-fulfillment/internal/common/logger"
	"moviebot-fulfillment/internal/models"
)

func TestExecute_FixedMessage(t *testing.T) {
	h := NewHandler(logger.NewTestLogger(t))

	resp, err := h.Execute(context.Background(), &models.FulfillmentRequest{
		Intent: "order_pizza",
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, Message, resp.Text)
	assert.Nil(t, resp.Payload)
}

func TestExecute_SameMessageForAnyIntent(t *testing.T) {
	h := NewHandler(logger.NewTestLogger(t))

	for _, intent := range []string{"", "unknown", "get_weather", "recommend_by_genre_v2"} {
		resp, err := h.Execute(context.Background(), &models.FulfillmentRequest{Intent: intent})
		require.NoError(t, err)
		assert.Equal(t, Message, resp.Text)
	}
}
