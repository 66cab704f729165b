// pkg/registry/registry_test.go
package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRegistry = `{
  "version": "1.0.0",
  "lastUpdated": "2026-08-24",
  "intents": [
    {
      "id": "get_trending",
      "displayName": "Get Trending Movies",
      "handler": "get-trending",
      "requiredSlots": [],
      "errorCodes": ["CONFIGURATION_ERROR", "SERVICE_UNAVAILABLE", "EMPTY_RESULT"]
    },
    {
      "id": "get_movie_info",
      "displayName": "Get Movie Info",
      "handler": "movie-info",
      "requiredSlots": ["title"],
      "optionalSlots": ["field", "text"]
    }
  ]
}`

func writeRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "intent-registry.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRegistry(t *testing.T) {
	reg, err := LoadRegistry(writeRegistry(t, sampleRegistry))
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", reg.Version)
	require.Len(t, reg.Intents, 2)
	assert.Equal(t, "get_trending", reg.Intents[0].ID)
	assert.NoError(t, reg.Validate())
}

func TestLoadRegistry_MissingFile(t *testing.T) {
	_, err := LoadRegistry(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadRegistry_MalformedJSON(t *testing.T) {
	_, err := LoadRegistry(writeRegistry(t, `{"intents": [`))
	assert.Error(t, err)
}

func TestFindByID(t *testing.T) {
	reg, err := LoadRegistry(writeRegistry(t, sampleRegistry))
	require.NoError(t, err)

	intent := reg.FindByID("get_movie_info")
	require.NotNil(t, intent)
	assert.Equal(t, "movie-info", intent.Handler)
	assert.Equal(t, []string{"title"}, intent.RequiredSlots)

	assert.Nil(t, reg.FindByID("order_pizza"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		reg     IntentRegistry
		wantErr string
	}{
		{
			name: "duplicate id",
			reg: IntentRegistry{Intents: []Intent{
				{ID: "get_trending", Handler: "a"},
				{ID: "get_trending", Handler: "b"},
			}},
			wantErr: "duplicate",
		},
		{
			name:    "empty id",
			reg:     IntentRegistry{Intents: []Intent{{Handler: "a"}}},
			wantErr: "empty id",
		},
		{
			name:    "missing handler",
			reg:     IntentRegistry{Intents: []Intent{{ID: "get_trending"}}},
			wantErr: "no handler",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorContains(t, tt.reg.Validate(), tt.wantErr)
		})
	}
}
