// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"
)

func LoadRegistry(path string) (*IntentRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg IntentRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

// FindByID returns the registered intent with the given id, nil if absent.
func (r *IntentRegistry) FindByID(id string) *Intent {
	for i := range r.Intents {
		if r.Intents[i].ID == id {
			return &r.Intents[i]
		}
	}
	return nil
}

// Validate checks structural consistency: non-empty ids, no duplicates, and a
// handler name per intent.
func (r *IntentRegistry) Validate() error {
	seen := make(map[string]bool, len(r.Intents))
	for _, intent := range r.Intents {
		if intent.ID == "" {
			return fmt.Errorf("registry contains an intent with empty id")
		}
		if seen[intent.ID] {
			return fmt.Errorf("duplicate intent id %q", intent.ID)
		}
		seen[intent.ID] = true
		if intent.Handler == "" {
			return fmt.Errorf("intent %q has no handler", intent.ID)
		}
	}
	return nil
}
