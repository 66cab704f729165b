// pkg/registry/schema.go
package registry

type IntentRegistry struct {
	Version     string   `json:"version"`
	LastUpdated string   `json:"lastUpdated"`
	Intents     []Intent `json:"intents"`
}

type Intent struct {
	ID            string   `json:"id"`
	DisplayName   string   `json:"displayName"`
	Description   string   `json:"description"`
	Handler       string   `json:"handler"`
	RequiredSlots []string `json:"requiredSlots"`
	OptionalSlots []string `json:"optionalSlots"`
	ErrorCodes    []string `json:"errorCodes"`
	Tags          []string `json:"tags"`
}
