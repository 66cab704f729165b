// cmd/tools/registry-updater/main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"moviebot-fulfillment/pkg/registry"
)

var registryPath string

func main() {
	addCmd := flag.NewFlagSet("add", flag.ExitOnError)
	updateCmd := flag.NewFlagSet("update", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)

	// Add command flags
	idAdd := addCmd.String("id", "", "Intent ID (e.g., get_trending)")
	displayName := addCmd.String("displayName", "", "Display Name (e.g., Get Trending Movies)")
	description := addCmd.String("description", "", "Description")
	handler := addCmd.String("handler", "", "Handler package (e.g., get-trending)")
	requiredSlots := addCmd.String("requiredSlots", "", "Comma-separated required slot names")
	optionalSlots := addCmd.String("optionalSlots", "", "Comma-separated optional slot names")
	addCmd.StringVar(&registryPath, "path", "configs/intent-registry.json", "Path to registry file")

	// Update command flags
	idUpdate := updateCmd.String("id", "", "Intent ID to update")
	field := updateCmd.String("field", "", "Field to update (displayName, description, handler)")
	value := updateCmd.String("value", "", "New value for the field")
	updateCmd.StringVar(&registryPath, "path", "configs/intent-registry.json", "Path to registry file")

	// Validate command flags
	validateCmd.StringVar(&registryPath, "path", "configs/intent-registry.json", "Path to registry file")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "add":
		addCmd.Parse(os.Args[2:])
		if *idAdd == "" || *displayName == "" || *handler == "" {
			fmt.Println("Error: id, displayName, and handler are required for add.")
			addCmd.Usage()
			os.Exit(1)
		}
		intent := registry.Intent{
			ID:            *idAdd,
			DisplayName:   *displayName,
			Description:   *description,
			Handler:       *handler,
			RequiredSlots: splitList(*requiredSlots),
			OptionalSlots: splitList(*optionalSlots),
			ErrorCodes:    []string{},
			Tags:          []string{},
		}
		if err := addIntent(&intent); err != nil {
			fmt.Printf("Error adding intent: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Added intent: %s\n", *idAdd)

	case "update":
		updateCmd.Parse(os.Args[2:])
		if *idUpdate == "" || *field == "" || *value == "" {
			fmt.Println("Error: id, field, and value are required for update.")
			updateCmd.Usage()
			os.Exit(1)
		}
		if err := updateIntent(*idUpdate, *field, *value); err != nil {
			fmt.Printf("Error updating intent: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Updated intent %s, field %s to %s\n", *idUpdate, *field, *value)

	case "validate":
		validateCmd.Parse(os.Args[2:])
		if err := validateRegistry(); err != nil {
			fmt.Printf("Registry validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Registry validation passed.")

	case "help":
		fallthrough
	default:
		help()
	}
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func addIntent(intent *registry.Intent) error {
	reg, err := registry.LoadRegistry(registryPath)
	if err != nil {
		// If file doesn't exist, create new registry
		if os.IsNotExist(err) {
			reg = &registry.IntentRegistry{
				Version:     "1.0.0",
				LastUpdated: time.Now().Format(time.RFC3339),
				Intents:     []registry.Intent{},
			}
		} else {
			return fmt.Errorf("failed to load registry: %w", err)
		}
	}

	if reg.FindByID(intent.ID) != nil {
		return fmt.Errorf("intent with ID %s already exists", intent.ID)
	}

	reg.Intents = append(reg.Intents, *intent)
	reg.LastUpdated = time.Now().Format(time.RFC3339)

	return saveRegistry(reg, registryPath)
}

func updateIntent(id, field, value string) error {
	reg, err := registry.LoadRegistry(registryPath)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	intent := reg.FindByID(id)
	if intent == nil {
		return fmt.Errorf("intent with ID %s not found", id)
	}

	switch field {
	case "displayName":
		intent.DisplayName = value
	case "description":
		intent.Description = value
	case "handler":
		intent.Handler = value
	case "requiredSlots":
		intent.RequiredSlots = splitList(value)
	case "optionalSlots":
		intent.OptionalSlots = splitList(value)
	default:
		return fmt.Errorf("unknown field: %s", field)
	}

	reg.LastUpdated = time.Now().Format(time.RFC3339)
	return saveRegistry(reg, registryPath)
}

func validateRegistry() error {
	reg, err := registry.LoadRegistry(registryPath)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	if len(reg.Intents) == 0 {
		return fmt.Errorf("registry contains no intents")
	}

	if err := reg.Validate(); err != nil {
		return err
	}

	fmt.Printf("Registry validation passed. Found %d intents.\n", len(reg.Intents))
	return nil
}

// saveRegistry handles saving the registry to file
func saveRegistry(reg *registry.IntentRegistry, path string) error {
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write registry file: %w", err)
	}

	return nil
}

func help() {
	fmt.Println(`
Usage: registry-updater <command> [flags]

Commands:
  add      Add a new intent to the registry
  update   Update an existing intent's field
  validate Validate the registry file
  help     Show this help message

Examples:
  registry-updater add -id get_trending -displayName "Get Trending Movies" -description "Fetches trending titles" -handler get-trending
  registry-updater update -id get_trending -field description -value "Fetches today's trending titles"
  registry-updater validate -path configs/intent-registry.json

Use 'registry-updater <command> -h' for more information about a command.`)
}
