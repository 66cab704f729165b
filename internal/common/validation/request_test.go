// internal/common/validation/request_test.go
package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFulfillmentRequest(t *testing.T) {
	tests := []struct {
		name  string
		body  map[string]interface{}
		valid bool
	}{
		{
			name: "intent with slots",
			body: map[string]interface{}{
				"intent": "get_movie_info",
				"slots":  map[string]interface{}{"title": "Inception"},
			},
			valid: true,
		},
		{
			name:  "intent alone",
			body:  map[string]interface{}{"intent": "get_trending"},
			valid: true,
		},
		{
			name:  "missing intent",
			body:  map[string]interface{}{"slots": map[string]interface{}{}},
			valid: false,
		},
		{
			name:  "empty intent",
			body:  map[string]interface{}{"intent": ""},
			valid: false,
		},
		{
			name: "non-string slot value",
			body: map[string]interface{}{
				"intent": "get_movie_info",
				"slots":  map[string]interface{}{"title": 42},
			},
			valid: false,
		},
		{
			name: "unexpected top-level field",
			body: map[string]interface{}{
				"intent":  "get_trending",
				"session": "abc",
			},
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateFulfillmentRequest(tt.body)
			require.NoError(t, err)
			assert.Equal(t, tt.valid, result.Valid)
			if !tt.valid {
				assert.NotEmpty(t, result.Errors)
			}
		})
	}
}
