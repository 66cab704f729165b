// internal/common/validation/request.go
package validation

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// fulfillmentRequestSchema constrains the inbound turn payload: a non-empty
// intent plus an optional string-valued slot map.
var fulfillmentRequestSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"intent": map[string]interface{}{
			"type":      "string",
			"minLength": 1,
		},
		"slots": map[string]interface{}{
			"type": "object",
			"additionalProperties": map[string]interface{}{
				"type": "string",
			},
		},
	},
	"required":             []string{"intent"},
	"additionalProperties": false,
}

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateFulfillmentRequest checks a decoded request body against the turn schema.
func ValidateFulfillmentRequest(body map[string]interface{}) (*ValidationResult, error) {
	schemaLoader := gojsonschema.NewGoLoader(fulfillmentRequestSchema)
	documentLoader := gojsonschema.NewGoLoader(body)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	out := &ValidationResult{Valid: result.Valid()}
	for _, desc := range result.Errors() {
		out.Errors = append(out.Errors, ValidationError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return out, nil
}
