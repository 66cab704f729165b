// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	loadEnvFile()

	// Base config
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	// Enable ENV override like TMDB_API_KEY
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	// Environment-specific overlay, ignored if not found
	viper.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = viper.MergeInConfig()

	expandEnvVars(viper.GetViper())

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// LoadFromFile loads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	expandEnvVars(viper.GetViper())

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// loadEnvFile tries .env from a few locations so tests and tools work from
// nested directories.
func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
		"../../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// findProjectRoot walks up directories looking for go.mod.
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		val := v.Get(key)

		if strVal, ok := val.(string); ok {
			if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
				expanded := os.ExpandEnv(strVal)
				if expanded != strVal && expanded != "" {
					v.Set(key, expanded)
				}
			}
		}
	}
}

// overrideEmptyConfig applies direct environment fallbacks for values that
// stayed empty after expansion. The TMDB key deliberately stays optional here:
// its absence is reported per-call as a configuration failure, not at startup.
func overrideEmptyConfig(cfg *Config) {
	if cfg.TMDB.APIKey == "" {
		if val := os.Getenv("TMDB_API_KEY"); val != "" {
			cfg.TMDB.APIKey = val
		}
	}
	if cfg.Catalog.Path == "" {
		if val := os.Getenv("MOVIE_CATALOG_PATH"); val != "" {
			cfg.Catalog.Path = val
		}
	}
}

// applyDefaults sets default values for optional configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.Server.Address == "" {
		cfg.Server.Address = ":8080"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10000
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15000
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 30000
	}

	if cfg.Catalog.Path == "" {
		cfg.Catalog.Path = "data/movies.csv"
	}
	if cfg.Catalog.MatchThreshold == 0 {
		cfg.Catalog.MatchThreshold = 0.80
	}

	if cfg.TMDB.BaseURL == "" {
		cfg.TMDB.BaseURL = "https://api.themoviedb.org/3"
	}
	if cfg.TMDB.TimeWindow == "" {
		cfg.TMDB.TimeWindow = "day"
	}
	if cfg.TMDB.Language == "" {
		cfg.TMDB.Language = "en-US"
	}
	if cfg.TMDB.Timeout == 0 {
		cfg.TMDB.Timeout = 10000
	}
	if cfg.TMDB.MaxResults == 0 {
		cfg.TMDB.MaxResults = 5
	}

	if cfg.Registry.Path == "" {
		cfg.Registry.Path = "configs/intent-registry.json"
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}

	for key, handler := range cfg.Handlers {
		if handler.Timeout == 0 {
			handler.Timeout = 15000
		}
		cfg.Handlers[key] = handler
	}
}

// validateConfig validates critical configuration fields.
func validateConfig(cfg *Config) error {
	if cfg.Catalog.Path == "" {
		return fmt.Errorf("catalog.path is required")
	}
	if cfg.Catalog.MatchThreshold <= 0 || cfg.Catalog.MatchThreshold > 1 {
		return fmt.Errorf("catalog.match_threshold must be in (0, 1]")
	}
	if cfg.TMDB.BaseURL == "" {
		return fmt.Errorf("tmdb.base_url is required")
	}
	if cfg.TMDB.TimeWindow != "day" && cfg.TMDB.TimeWindow != "week" {
		return fmt.Errorf("tmdb.time_window must be 'day' or 'week'")
	}
	return nil
}

// GetDuration converts milliseconds from config to time.Duration.
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}

// GetHandlerConfig retrieves handler-specific configuration with fallback to defaults.
func GetHandlerConfig(cfg *Config, intent string) HandlerConfig {
	if handler, exists := cfg.Handlers[intent]; exists {
		return handler
	}

	return HandlerConfig{
		Enabled: true,
		Timeout: 15000,
	}
}

// IsHandlerEnabled checks if a specific intent handler is enabled.
func IsHandlerEnabled(cfg *Config, intent string) bool {
	if handler, exists := cfg.Handlers[intent]; exists {
		return handler.Enabled
	}
	return true
}
