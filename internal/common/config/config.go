// internal/common/config/config.go
package config

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig                `mapstructure:"app"`
	Server   ServerConfig             `mapstructure:"server"`
	Catalog  CatalogConfig            `mapstructure:"catalog"`
	TMDB     TMDBConfig               `mapstructure:"tmdb"`
	Handlers map[string]HandlerConfig `mapstructure:"handlers"`
	Registry RegistryConfig           `mapstructure:"registry"`
	Logging  LoggingConfig            `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// ServerConfig holds the inbound HTTP listener settings.
type ServerConfig struct {
	Address         string `mapstructure:"address"`
	ReadTimeout     int    `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int    `mapstructure:"write_timeout"`    // milliseconds
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // milliseconds
}

// CatalogConfig holds settings for the local movie dataset.
type CatalogConfig struct {
	Path           string  `mapstructure:"path"`
	MatchThreshold float64 `mapstructure:"match_threshold"`
}

// TMDBConfig holds settings for the trending-movies API.
type TMDBConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	APIKey     string `mapstructure:"api_key"`
	TimeWindow string `mapstructure:"time_window"` // "day" or "week"
	Language   string `mapstructure:"language"`
	Timeout    int    `mapstructure:"timeout"` // milliseconds
	MaxResults int    `mapstructure:"max_results"`
}

// HandlerConfig holds the core settings applicable to every intent handler.
type HandlerConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Timeout int  `mapstructure:"timeout"` // milliseconds
}

// RegistryConfig points at the declarative intent registry file.
type RegistryConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
